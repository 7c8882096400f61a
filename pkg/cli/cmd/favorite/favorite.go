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

// Package favorite provides the favorite command, pinning a recipe to the
// local cache
package favorite

import (
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/favorites"
	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/cozinha/cozinha/pkg/cli/recipes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * Add the recipe with id 12 to favorites
 cozinha favorite 12`

// NewCmd returns a new favorite command
func NewCmd(ctx context.CozinhaCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite <recipe id>",
		Aliases: []string{"fav"},
		Short:   "Add a recipe to favorites",
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.CozinhaCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]

		existing, err := favorites.GetByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "checking the local cache")
		}
		if existing != nil {
			log.Infof("recipe %s is already a favorite\n", id)
			return nil
		}

		if ctx.Offline {
			return errors.New("cannot favorite a recipe while offline")
		}

		recipe, err := recipes.Fetch(ctx, id)
		if err != nil {
			return errors.Wrap(err, "fetching recipe")
		}

		if err := favorites.Favorite(ctx, recipe); err != nil {
			return errors.Wrap(err, "saving favorite")
		}

		log.Successf("added %s to favorites\n", recipe.Name)

		return nil
	}
}
