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

// Package view provides the view command, rendering a recipe detail
package view

import (
	"fmt"
	"io"
	"os"

	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/cozinha/cozinha/pkg/cli/recipes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
 * View the recipe with id 12
 cozinha view 12

 * View from the local cache only
 cozinha view 12 --offline`

// NewCmd returns a new view command
func NewCmd(ctx context.CozinhaCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view <recipe id>",
		Short:   "View a recipe",
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.CozinhaCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		recipe, err := recipes.Fetch(ctx, args[0])
		if err == recipes.ErrNotAvailableOffline {
			log.Error("this recipe is not in your favorites and cannot be fetched offline\n")
			return err
		} else if err != nil {
			return errors.Wrap(err, "fetching recipe")
		}

		printRecipe(os.Stdout, recipe)

		return nil
	}
}

func printRecipe(w io.Writer, recipe client.RecipeDetail) {
	fmt.Fprintf(w, "%s\n", log.ColorGreen.Sprint(recipe.Name))
	fmt.Fprintf(w, "%s · %s · %s ingredientes\n", formatMinutes(recipe.Time), recipe.Difficulty, recipe.TotalIngredients)
	if recipe.Calories != "" {
		fmt.Fprintf(w, "%s\n", recipe.Calories)
	}
	if recipe.Rating != "" {
		fmt.Fprintf(w, "Avaliação: %s\n", recipe.Rating)
	}

	fmt.Fprintf(w, "\n%s\n", log.ColorYellow.Sprint("Ingredientes"))
	for _, section := range groupIngredients(recipe.Ingredients) {
		fmt.Fprintf(w, "\n%s\n", section.Name)
		for _, ingredient := range section.Ingredients {
			if ingredient.Amount == "" {
				fmt.Fprintf(w, "  - %s\n", ingredient.Name)
			} else {
				fmt.Fprintf(w, "  - %s (%s)\n", ingredient.Name, ingredient.Amount)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", log.ColorYellow.Sprint("Modo de preparo"))
	for _, step := range groupInstructions(recipe.Instructions) {
		fmt.Fprintf(w, "\n%s\n", step.Name)
		for _, entry := range step.Entries {
			if entry.Number == 0 {
				fmt.Fprintf(w, "  %s\n", entry.Text)
			} else {
				fmt.Fprintf(w, "  %d. %s\n", entry.Number, entry.Text)
			}
		}
	}

	if recipe.Observation != "" {
		fmt.Fprintf(w, "\n%s\n", recipe.Observation)
	}
}
