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

// Package favorites is the transactional read/write boundary of the local
// recipe cache. Identifiers and measures are stored as numbers and exposed
// as strings; the conversion happens here and nowhere deeper.
package favorites

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/cozinha/cozinha/pkg/cli/assets"
	"github.com/cozinha/cozinha/pkg/cli/client"
	"github.com/cozinha/cozinha/pkg/cli/context"
	"github.com/cozinha/cozinha/pkg/cli/database"
	"github.com/pkg/errors"
)

// ListItem is the lighter list-view shape of a cached favorite. It carries
// no ingredients, instructions or food types.
type ListItem struct {
	ID               string
	Name             string
	TotalIngredients string
	Time             string
	Cover            string
	Rating           string
	Difficulty       string
	Video            string
	Calories         string
}

// coverFileName determines the local file name for a recipe cover. An
// absolute url contributes its last path segment; anything else is used
// verbatim.
func coverFileName(cover string) string {
	if !strings.HasPrefix(cover, "http") {
		return cover
	}

	segments := strings.Split(cover, "/")
	return segments[len(segments)-1]
}

func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing id %q", id)
	}

	return n, nil
}

func toRecipeRow(recipe client.RecipeDetail) (database.Recipe, error) {
	var ret database.Recipe

	id, err := parseID(recipe.ID)
	if err != nil {
		return ret, errors.Wrap(err, "recipe id")
	}
	totalIngredients, err := strconv.Atoi(recipe.TotalIngredients)
	if err != nil {
		return ret, errors.Wrapf(err, "parsing total_ingredients %q", recipe.TotalIngredients)
	}
	time, err := strconv.Atoi(recipe.Time)
	if err != nil {
		return ret, errors.Wrapf(err, "parsing time %q", recipe.Time)
	}
	rating, err := strconv.ParseFloat(recipe.Rating, 64)
	if err != nil {
		return ret, errors.Wrapf(err, "parsing rating %q", recipe.Rating)
	}

	ret = database.Recipe{
		ID:               id,
		Name:             recipe.Name,
		TotalIngredients: totalIngredients,
		Time:             time,
		Cover:            recipe.Cover,
		Video:            recipe.Video,
		Rating:           rating,
		Difficulty:       recipe.Difficulty,
		Calories:         recipe.Calories,
		Observation:      recipe.Observation,
	}

	return ret, nil
}

// Favorite caches the given recipe locally. The cover image is downloaded
// before any row is written so that the stored cover always points at a
// local file, and a failed download leaves the store untouched. All rows
// are written inside one transaction, parent first.
func Favorite(ctx context.CozinhaCtx, recipe client.RecipeDetail) error {
	fileName := coverFileName(recipe.Cover)

	localCover, err := assets.DownloadImage(ctx, recipe.Cover, fileName)
	if err != nil {
		return errors.Wrap(err, "downloading cover image")
	}
	recipe.Cover = localCover

	recipeRow, err := toRecipeRow(recipe)
	if err != nil {
		return errors.Wrap(err, "building recipe row")
	}

	tx, err := ctx.DB.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning a transaction")
	}

	if err := recipeRow.Upsert(tx); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "upserting recipe")
	}

	for _, ingredient := range recipe.Ingredients {
		id, err := parseID(ingredient.ID)
		if err != nil {
			tx.Rollback()
			return errors.Wrap(err, "ingredient id")
		}

		row := database.Ingredient{
			ID:       id,
			RecipeID: recipeRow.ID,
			Name:     ingredient.Name,
			Amount:   ingredient.Amount,
			Section:  ingredient.Section,
		}
		if err := row.Upsert(tx); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "upserting ingredient")
		}
	}

	for _, instruction := range recipe.Instructions {
		id, err := parseID(instruction.ID)
		if err != nil {
			tx.Rollback()
			return errors.Wrap(err, "instruction id")
		}

		row := database.Instruction{
			ID:       id,
			RecipeID: recipeRow.ID,
			Step:     instruction.Step,
			Text:     instruction.Text,
		}
		if err := row.Upsert(tx); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "upserting instruction")
		}
	}

	for _, foodType := range recipe.FoodTypes {
		id, err := parseID(foodType.ID)
		if err != nil {
			tx.Rollback()
			return errors.Wrap(err, "food type id")
		}

		row := database.FoodType{ID: id, Name: foodType.Name}
		if err := row.Upsert(tx); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "upserting food type")
		}

		association := database.RecipeFoodType{RecipeID: recipeRow.ID, FoodTypeID: id}
		if err := association.Upsert(tx); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "upserting food type association")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}

	return nil
}

// Unfavorite evicts the recipe with the given id from the local cache. The
// cover file deletion is best-effort; the rows are removed inside one
// transaction, children first. Unfavoriting an id that was never favorited
// is a no-op.
func Unfavorite(ctx context.CozinhaCtx, id string) error {
	recipe, err := GetByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "looking up the local recipe")
	}
	if recipe != nil {
		assets.DeleteImage(recipe.Cover)
	}

	recipeID, err := parseID(id)
	if err != nil {
		return errors.Wrap(err, "recipe id")
	}

	tx, err := ctx.DB.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning a transaction")
	}

	if _, err := tx.Exec("DELETE FROM recipe_food_types WHERE recipe_id = ?", recipeID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting food type associations")
	}
	if _, err := tx.Exec("DELETE FROM recipe_ingredients WHERE recipe_id = ?", recipeID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting ingredients")
	}
	if _, err := tx.Exec("DELETE FROM recipe_instructions WHERE recipe_id = ?", recipeID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting instructions")
	}
	if _, err := tx.Exec("DELETE FROM recipes WHERE id = ?", recipeID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "deleting recipe")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "committing transaction")
	}

	return nil
}

// GetByID looks up a cached favorite by id. It returns nil without an error
// when the recipe is not cached.
func GetByID(ctx context.CozinhaCtx, id string) (*client.RecipeDetail, error) {
	recipeID, err := parseID(id)
	if err != nil {
		return nil, errors.Wrap(err, "recipe id")
	}

	db := ctx.DB

	var row database.Recipe
	var cover, video, calories, observation sql.NullString
	err = db.QueryRow(`SELECT id, name, total_ingredients, time, cover, video, rating, difficulty, calories, observation
	FROM recipes
	WHERE id = ?`, recipeID).Scan(&row.ID, &row.Name, &row.TotalIngredients, &row.Time, &cover, &video, &row.Rating, &row.Difficulty, &calories, &observation)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "querying recipe")
	}

	ingredients, err := getIngredients(db, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "querying ingredients")
	}
	instructions, err := getInstructions(db, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "querying instructions")
	}
	foodTypes, err := getFoodTypes(db, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "querying food types")
	}

	ret := client.RecipeDetail{
		ID:               strconv.Itoa(row.ID),
		Name:             row.Name,
		TotalIngredients: strconv.Itoa(row.TotalIngredients),
		Time:             strconv.Itoa(row.Time),
		Cover:            cover.String,
		Video:            video.String,
		Rating:           formatRating(row.Rating),
		Difficulty:       row.Difficulty,
		Calories:         calories.String,
		Observation:      observation.String,
		Ingredients:      ingredients,
		Instructions:     instructions,
		FoodTypes:        foodTypes,
	}

	return &ret, nil
}

// GetAll reads all cached favorites in the list-view shape. It touches the
// recipes table only.
func GetAll(ctx context.CozinhaCtx) ([]ListItem, error) {
	rows, err := ctx.DB.Query(`SELECT id, name, total_ingredients, time, cover, rating, difficulty, video, calories
	FROM recipes`)
	if err != nil {
		return nil, errors.Wrap(err, "querying recipes")
	}
	defer rows.Close()

	ret := []ListItem{}
	for rows.Next() {
		var id, totalIngredients, time int
		var rating float64
		var name, difficulty string
		var cover, video, calories sql.NullString

		err = rows.Scan(&id, &name, &totalIngredients, &time, &cover, &rating, &difficulty, &video, &calories)
		if err != nil {
			return nil, errors.Wrap(err, "scanning a row")
		}

		ret = append(ret, ListItem{
			ID:               strconv.Itoa(id),
			Name:             name,
			TotalIngredients: strconv.Itoa(totalIngredients),
			Time:             strconv.Itoa(time),
			Cover:            cover.String,
			Rating:           formatRating(rating),
			Difficulty:       difficulty,
			Video:            video.String,
			Calories:         calories.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	return ret, nil
}

func getIngredients(db *database.DB, recipeID int) ([]client.IngredientData, error) {
	rows, err := db.Query(`SELECT id, recipe_id, name, amount, section
	FROM recipe_ingredients
	WHERE recipe_id = ?`, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "querying ingredients")
	}
	defer rows.Close()

	ret := []client.IngredientData{}
	for rows.Next() {
		var id, rid int
		var name string
		var amount, section sql.NullString

		if err := rows.Scan(&id, &rid, &name, &amount, &section); err != nil {
			return nil, errors.Wrap(err, "scanning a row")
		}

		ret = append(ret, client.IngredientData{
			ID:       strconv.Itoa(id),
			RecipeID: strconv.Itoa(rid),
			Name:     name,
			Amount:   amount.String,
			Section:  section.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	return ret, nil
}

func getInstructions(db *database.DB, recipeID int) ([]client.InstructionData, error) {
	rows, err := db.Query(`SELECT id, recipe_id, step, text
	FROM recipe_instructions
	WHERE recipe_id = ?`, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "querying instructions")
	}
	defer rows.Close()

	ret := []client.InstructionData{}
	for rows.Next() {
		var id, rid int
		var step, text string

		if err := rows.Scan(&id, &rid, &step, &text); err != nil {
			return nil, errors.Wrap(err, "scanning a row")
		}

		ret = append(ret, client.InstructionData{
			ID:       strconv.Itoa(id),
			RecipeID: strconv.Itoa(rid),
			Step:     step,
			Text:     text,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	return ret, nil
}

func getFoodTypes(db *database.DB, recipeID int) ([]client.FoodTypeData, error) {
	rows, err := db.Query(`SELECT ft.id, ft.name
	FROM food_types ft
	JOIN recipe_food_types rft ON ft.id = rft.food_type_id
	WHERE rft.recipe_id = ?`, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "querying food types")
	}
	defer rows.Close()

	ret := []client.FoodTypeData{}
	for rows.Next() {
		var id int
		var name string

		if err := rows.Scan(&id, &name); err != nil {
			return nil, errors.Wrap(err, "scanning a row")
		}

		ret = append(ret, client.FoodTypeData{
			ID:   strconv.Itoa(id),
			Name: name,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating rows")
	}

	return ret, nil
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
