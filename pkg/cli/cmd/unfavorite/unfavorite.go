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

// Package unfavorite provides the unfavorite command, evicting a recipe
// from the local cache
package unfavorite

import (
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/favorites"
	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/cozinha/cozinha/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * Remove the recipe with id 12 from favorites
 cozinha unfavorite 12`

var yesFlag bool

// NewCmd returns a new unfavorite command
func NewCmd(ctx context.CozinhaCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unfavorite <recipe id>",
		Aliases: []string{"unfav"},
		Short:   "Remove a recipe from favorites",
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&yesFlag, "yes", "y", false, "remove without asking for confirmation")

	return cmd
}

func newRun(ctx context.CozinhaCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !yesFlag {
			confirmed, err := ui.Confirm("remove this recipe from favorites?", false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !confirmed {
				log.Info("aborted\n")
				return nil
			}
		}

		if err := favorites.Unfavorite(ctx, id); err != nil {
			return errors.Wrap(err, "removing favorite")
		}

		log.Successf("removed recipe %s from favorites\n", id)

		return nil
	}
}
