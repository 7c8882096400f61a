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

// Package recipes is the read-path decision point between the local
// favorites cache and the remote source
package recipes

import (
	"fmt"

	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/favorites"
	"github.com/pkg/errors"
)

// ErrIDRequired is an error for fetching a recipe without an id
var ErrIDRequired = errors.New("recipe id is required")

// ErrNotAvailableOffline is an error for a recipe that is neither cached
// locally nor reachable while offline
var ErrNotAvailableOffline = errors.New("recipe not available offline")

// Fetch resolves a recipe detail. The local cache is probed first and a
// local favorite always wins, even when online, because the user has
// explicitly pinned that version. On a cache miss the recipe is fetched
// from the server, with its cover joined onto the configured image endpoint.
func Fetch(ctx context.CozinhaCtx, id string) (client.RecipeDetail, error) {
	var ret client.RecipeDetail

	if id == "" {
		return ret, ErrIDRequired
	}

	local, err := favorites.GetByID(ctx, id)
	if err != nil {
		return ret, errors.Wrap(err, "probing the local cache")
	}
	if local != nil {
		return *local, nil
	}

	if ctx.Offline {
		return ret, ErrNotAvailableOffline
	}

	remote, err := client.GetRecipe(ctx, id, ctx.UserID)
	if err != nil {
		return ret, errors.Wrap(err, "fetching recipe from the server")
	}

	remote.Cover = fmt.Sprintf("%s%s", ctx.ImageEndpoint, remote.Cover)

	return remote, nil
}
