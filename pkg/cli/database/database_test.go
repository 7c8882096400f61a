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

package database

import (
	"testing"

	"github.com/cozinha/cozinha/pkg/assert"
)

func TestInitSchemaIdempotent(t *testing.T) {
	db := InitTestMemoryDB(t)

	// the schema uses IF NOT EXISTS throughout, so a second run is a no-op
	if err := InitSchema(db); err != nil {
		t.Fatal(err)
	}

	tables := []string{"recipes", "recipe_ingredients", "recipe_instructions", "food_types", "recipe_food_types", "users"}
	for _, table := range tables {
		var count int
		MustScan(t, "counting schema entries",
			db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table), &count)
		assert.Equal(t, count, 1, "table count mismatch")
	}
}

func TestRecipeUpsert(t *testing.T) {
	db := InitTestMemoryDB(t)

	row := Recipe{
		ID:               1,
		Name:             "Sopa",
		TotalIngredients: 3,
		Time:             45,
		Cover:            "/tmp/sopa.jpg",
		Rating:           4.5,
		Difficulty:       "Fácil",
		Calories:         "100 Kcal",
	}
	if err := row.Upsert(db); err != nil {
		t.Fatal(err)
	}

	row.Name = "Sopa de Legumes"
	row.Rating = 4.7
	if err := row.Upsert(db); err != nil {
		t.Fatal(err)
	}

	var count int
	MustScan(t, "counting recipes", db.QueryRow("SELECT count(*) FROM recipes"), &count)
	assert.Equal(t, count, 1, "recipe count mismatch")

	var name string
	var rating float64
	MustScan(t, "reading recipe", db.QueryRow("SELECT name, rating FROM recipes WHERE id = 1"), &name, &rating)
	assert.Equal(t, name, "Sopa de Legumes", "name mismatch")
	assert.Equal(t, rating, 4.7, "rating mismatch")
}

func TestRecipeFoodTypeUpsert(t *testing.T) {
	db := InitTestMemoryDB(t)

	association := RecipeFoodType{RecipeID: 1, FoodTypeID: 3}
	if err := association.Upsert(db); err != nil {
		t.Fatal(err)
	}
	if err := association.Upsert(db); err != nil {
		t.Fatal(err)
	}

	// the composite primary key collapses the duplicate
	var count int
	MustScan(t, "counting associations", db.QueryRow("SELECT count(*) FROM recipe_food_types"), &count)
	assert.Equal(t, count, 1, "association count mismatch")
}
