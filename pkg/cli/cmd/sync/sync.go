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

// Package sync provides the sync command, reconciling local reference data
// with the server and provisioning the local identity
package sync

import (
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/foodtypes"
	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/cozinha/cozinha/pkg/cli/user"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 cozinha sync`

// NewCmd returns a new sync command
func NewCmd(ctx *context.CozinhaCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Sync reference data and identity with the server",
		Example: example,
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx *context.CozinhaCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if ctx.Offline {
			return errors.New("cannot sync while offline")
		}

		log.Infof("syncing food types\n")
		if err := foodtypes.SyncIfNeeded(*ctx); err != nil {
			return errors.Wrap(err, "syncing food types")
		}

		if err := user.EnsureLocalUser(ctx); err != nil {
			return errors.Wrap(err, "provisioning local user")
		}

		if ctx.UserID == "" {
			log.Warnf("no local user provisioned; rating recipes will be unavailable\n")
		}

		log.Success("done\n")

		return nil
	}
}
