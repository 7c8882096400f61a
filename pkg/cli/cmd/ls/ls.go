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

// Package ls provides the ls command, listing cached favorites
package ls

import (
	"fmt"
	"io"
	"os"

	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/favorites"
	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 cozinha ls`

// NewCmd returns a new ls command
func NewCmd(ctx context.CozinhaCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List favorite recipes",
		Example: example,
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.CozinhaCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		items, err := favorites.GetAll(ctx)
		if err != nil {
			return errors.Wrap(err, "listing favorites")
		}

		printItems(os.Stdout, items)

		return nil
	}
}

func printItems(w io.Writer, items []favorites.ListItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no favorite recipes")
		return
	}

	for _, item := range items {
		fmt.Fprintf(w, "%s %s %s\n", log.ColorYellow.Sprintf("(%s)", item.ID), item.Name, log.ColorGray.Sprintf("%smin · %s", item.Time, item.Difficulty))
	}
}
