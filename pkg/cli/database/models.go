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
	"github.com/pkg/errors"
)

// Recipe is a locally cached favorite recipe
type Recipe struct {
	ID               int
	Name             string
	TotalIngredients int
	Time             int
	Cover            string
	Video            string
	Rating           float64
	Difficulty       string
	Calories         string
	Observation      string
}

// Ingredient is an ingredient of a locally cached recipe
type Ingredient struct {
	ID       int
	RecipeID int
	Name     string
	Amount   string
	Section  string
}

// Instruction is an instruction of a locally cached recipe
type Instruction struct {
	ID       int
	RecipeID int
	Step     string
	Text     string
}

// FoodType is a shared reference taxonomy entry. Rows are global and
// deduplicated by id; they are never owned by a single recipe.
type FoodType struct {
	ID   int
	Name string
}

// RecipeFoodType is an association between a recipe and a food type
type RecipeFoodType struct {
	RecipeID   int
	FoodTypeID int
}

// LocalUser is the locally provisioned user identity
type LocalUser struct {
	ID   int
	Name string
}

// Upsert writes the recipe row, replacing any existing row with the same id
func (r Recipe) Upsert(q Queryable) error {
	_, err := q.Exec(`INSERT OR REPLACE INTO recipes
	(id, name, total_ingredients, time, cover, video, rating, difficulty, calories, observation)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.TotalIngredients, r.Time, r.Cover, r.Video, r.Rating, r.Difficulty, r.Calories, r.Observation)

	if err != nil {
		return errors.Wrapf(err, "upserting recipe with id %d", r.ID)
	}

	return nil
}

// Upsert writes the ingredient row, replacing any existing row with the same id
func (i Ingredient) Upsert(q Queryable) error {
	_, err := q.Exec(`INSERT OR REPLACE INTO recipe_ingredients
	(id, recipe_id, name, amount, section)
	VALUES (?, ?, ?, ?, ?)`,
		i.ID, i.RecipeID, i.Name, i.Amount, i.Section)

	if err != nil {
		return errors.Wrapf(err, "upserting ingredient with id %d", i.ID)
	}

	return nil
}

// Upsert writes the instruction row, replacing any existing row with the same id
func (i Instruction) Upsert(q Queryable) error {
	_, err := q.Exec(`INSERT OR REPLACE INTO recipe_instructions
	(id, recipe_id, step, text)
	VALUES (?, ?, ?, ?)`,
		i.ID, i.RecipeID, i.Step, i.Text)

	if err != nil {
		return errors.Wrapf(err, "upserting instruction with id %d", i.ID)
	}

	return nil
}

// Upsert writes the food type row, replacing any existing row with the same id
func (f FoodType) Upsert(q Queryable) error {
	_, err := q.Exec("INSERT OR REPLACE INTO food_types (id, name) VALUES (?, ?)", f.ID, f.Name)
	if err != nil {
		return errors.Wrapf(err, "upserting food type with id %d", f.ID)
	}

	return nil
}

// Upsert writes the association row, replacing any existing row with the same key
func (r RecipeFoodType) Upsert(q Queryable) error {
	_, err := q.Exec("INSERT OR REPLACE INTO recipe_food_types (recipe_id, food_type_id) VALUES (?, ?)",
		r.RecipeID, r.FoodTypeID)

	if err != nil {
		return errors.Wrapf(err, "upserting recipe food type association for recipe %d", r.RecipeID)
	}

	return nil
}

// Insert inserts a new local user row
func (u LocalUser) Insert(q Queryable) error {
	_, err := q.Exec("INSERT INTO users (id, name) VALUES (?, ?)", u.ID, u.Name)
	if err != nil {
		return errors.Wrapf(err, "inserting local user with id %d", u.ID)
	}

	return nil
}
