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

// Package rate provides the rate command, submitting a recipe rating
package rate

import (
	"strconv"

	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/infra"
	"github.com/cozinha/cozinha/pkg/cli/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrNoLocalUser is an error for rating without a provisioned identity
var ErrNoLocalUser = errors.New("no local user provisioned. Run 'cozinha sync' while online first")

var example = `
 * Rate the recipe with id 12 with 5 stars
 cozinha rate 12 5`

// NewCmd returns a new rate command
func NewCmd(ctx context.CozinhaCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rate <recipe id> <score>",
		Short:   "Rate a recipe from 1 to 5",
		Example: example,
		Args:    cobra.ExactArgs(2),
		RunE:    newRun(ctx),
	}

	return cmd
}

func newRun(ctx context.CozinhaCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if ctx.Offline {
			return errors.New("cannot rate a recipe while offline")
		}
		if ctx.UserID == "" {
			return ErrNoLocalUser
		}

		score, err := strconv.Atoi(args[1])
		if err != nil || score < 1 || score > 5 {
			return errors.Errorf("invalid score %q: expected a number from 1 to 5", args[1])
		}

		resp, err := client.RateRecipe(ctx, args[0], ctx.UserID, score)
		if err != nil {
			return errors.Wrap(err, "submitting rating")
		}

		log.Successf("rated recipe %s. New average: %s\n", args[0], resp.Data.Average)

		return nil
	}
}
