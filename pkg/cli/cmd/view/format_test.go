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

package view

import (
	"fmt"
	"testing"

	"github.com/cozinha/cozinha/pkg/assert"
	"github.com/cozinha/cozinha/pkg/cli/client"
)

func TestFormatMinutes(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "0", expected: "0 minutos"},
		{input: "1", expected: "1 minuto"},
		{input: "30", expected: "30 minutos"},
		{input: "59", expected: "59 minutos"},
		{input: "60", expected: "1 hora"},
		{input: "61", expected: "1 hora e 1 minuto"},
		{input: "90", expected: "1 hora e 30 minutos"},
		{input: "120", expected: "2 horas"},
		{input: "150", expected: "2 horas e 30 minutos"},
		{input: "not-a-number", expected: "not-a-number"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("input %s", tc.input), func(t *testing.T) {
			got := formatMinutes(tc.input)
			assert.Equal(t, got, tc.expected, "duration mismatch")
		})
	}
}

func TestGroupIngredients(t *testing.T) {
	ingredients := []client.IngredientData{
		{ID: "1", Name: "Proteína de soja", Section: "Para os bifés"},
		{ID: "2", Name: "Farinha de rosca", Section: "Para empanar"},
		{ID: "3", Name: "Alho", Section: "Para os bifés"},
		{ID: "4", Name: "Sal"},
	}

	got := groupIngredients(ingredients)

	expected := []ingredientSection{
		{
			Name: "Para os bifés",
			Ingredients: []client.IngredientData{
				{ID: "1", Name: "Proteína de soja", Section: "Para os bifés"},
				{ID: "3", Name: "Alho", Section: "Para os bifés"},
			},
		},
		{
			Name: "Para empanar",
			Ingredients: []client.IngredientData{
				{ID: "2", Name: "Farinha de rosca", Section: "Para empanar"},
			},
		},
		{
			Name: "Outros",
			Ingredients: []client.IngredientData{
				{ID: "4", Name: "Sal"},
			},
		},
	}

	assert.DeepEqual(t, got, expected, "sections mismatch")
}

func TestGroupInstructions(t *testing.T) {
	instructions := []client.InstructionData{
		{ID: "1", Step: "Passo 1", Text: "Hidrate a proteína de soja."},
		{ID: "2", Step: "Passo 1", Text: "Escorra bem."},
		{ID: "3", Step: "Dicas extras", Text: "Sirva com limão."},
		{ID: "4", Step: "Passo 2", Text: "Frite até dourar."},
	}

	got := groupInstructions(instructions)

	expected := []instructionStep{
		{
			Name: "Passo 1",
			Entries: []instructionEntry{
				{Number: 1, Text: "Hidrate a proteína de soja."},
				{Number: 2, Text: "Escorra bem."},
			},
		},
		{
			Name: "Dicas extras",
			Entries: []instructionEntry{
				{Number: 0, Text: "Sirva com limão."},
			},
		},
		{
			Name: "Passo 2",
			Entries: []instructionEntry{
				{Number: 3, Text: "Frite até dourar."},
			},
		},
	}

	assert.DeepEqual(t, got, expected, "steps mismatch")
}
