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

// Package foodtypes keeps the local food type taxonomy consistent with the
// remote source
package foodtypes

import (
	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/database"
	"github.com/pkg/errors"
)

// GetLocal reads all local food type rows
func GetLocal(db *database.DB) ([]database.FoodType, error) {
	rows, err := db.Query("SELECT id, name FROM food_types")
	if err != nil {
		return nil, errors.Wrap(err, "querying food types")
	}
	defer rows.Close()

	ret := []database.FoodType{}
	for rows.Next() {
		var foodType database.FoodType
		if err := rows.Scan(&foodType.ID, &foodType.Name); err != nil {
			return nil, errors.Wrap(err, "scanning a row")
		}

		ret = append(ret, foodType)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	return ret, nil
}

func bulkInsert(db *database.DB, foodTypes []client.RemoteFoodType) error {
	stmt, err := db.Prepare("INSERT INTO food_types (id, name) VALUES (?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing insert statement")
	}
	defer stmt.Close()

	for _, foodType := range foodTypes {
		if _, err := stmt.Exec(foodType.ID, foodType.Name); err != nil {
			return errors.Wrapf(err, "inserting food type with id %d", foodType.ID)
		}
	}

	return nil
}

// SyncIfNeeded reconciles the local food type table against the remote
// taxonomy using a row count check: an empty local table is bulk-loaded and
// a count mismatch triggers a full wipe and reload. Matching counts are
// treated as converged; same-count content drift is not detected.
func SyncIfNeeded(ctx context.CozinhaCtx) error {
	local, err := GetLocal(ctx.DB)
	if err != nil {
		return errors.Wrap(err, "reading local food types")
	}

	remote, err := client.GetFoodTypes(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching remote food types")
	}

	if len(local) == 0 {
		if err := bulkInsert(ctx.DB, remote); err != nil {
			return errors.Wrap(err, "loading food types")
		}

		return nil
	}

	if len(local) != len(remote) {
		if _, err := ctx.DB.Exec("DELETE FROM food_types"); err != nil {
			return errors.Wrap(err, "clearing food types")
		}
		if err := bulkInsert(ctx.DB, remote); err != nil {
			return errors.Wrap(err, "reloading food types")
		}
	}

	return nil
}
