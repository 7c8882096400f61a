/* Copyright 2025 Cozinha Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"
	"strings"

	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	// commands
	"github.com/cozinha/cozinha/pkg/cli/cmd/favorite"
	"github.com/cozinha/cozinha/pkg/cli/cmd/ls"
	"github.com/cozinha/cozinha/pkg/cli/cmd/rate"
	"github.com/cozinha/cozinha/pkg/cli/cmd/root"
	"github.com/cozinha/cozinha/pkg/cli/cmd/sync"
	"github.com/cozinha/cozinha/pkg/cli/cmd/unfavorite"
	"github.com/cozinha/cozinha/pkg/cli/cmd/version"
	"github.com/cozinha/cozinha/pkg/cli/cmd/view"
)

// apiEndpoint and versionTag are populated during link time
var apiEndpoint string
var versionTag = "master"

// parseDBPath extracts --dbPath flag value from command line arguments
// regardless of where it appears (before or after subcommand).
// Returns empty string if not found.
func parseDBPath(args []string) string {
	for i, arg := range args {
		// Handle --dbPath=value
		if strings.HasPrefix(arg, "--dbPath=") {
			return strings.TrimPrefix(arg, "--dbPath=")
		}
		// Handle --dbPath value
		if arg == "--dbPath" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// parseOffline extracts the --offline flag from command line arguments. Like
// --dbPath it must be known before the context is assembled, which happens
// before cobra parses flags.
func parseOffline(args []string) bool {
	for _, arg := range args {
		if arg == "--offline" || arg == "--offline=true" {
			return true
		}
	}
	return false
}

func main() {
	// Parse flags early because they can appear after the subcommand
	// (e.g., "cozinha view 12 --offline") and root.ParseFlags only parses
	// flags before the subcommand.
	dbPath := parseDBPath(os.Args[1:])
	offline := parseOffline(os.Args[1:])

	ctx, err := infra.Init(versionTag, apiEndpoint, dbPath)
	if err != nil {
		panic(errors.Wrap(err, "initializing context"))
	}
	defer ctx.DB.Close()

	ctx.Offline = offline

	root.Register(view.NewCmd(*ctx))
	root.Register(ls.NewCmd(*ctx))
	root.Register(favorite.NewCmd(*ctx))
	root.Register(unfavorite.NewCmd(*ctx))
	root.Register(sync.NewCmd(ctx))
	root.Register(rate.NewCmd(*ctx))
	root.Register(version.NewCmd(*ctx))

	if err := root.Execute(); err != nil {
		log.Errorf("%s\n", err.Error())
		os.Exit(1)
	}
}
