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
	"strconv"

	"github.com/cozinha/cozinha/pkg/cli/client"
)

// extraStep is the sentinel step label marking a non-actionable tip entry.
// Entries under it are excluded from instruction numbering.
const extraStep = "Dicas extras"

// ungroupedSection is the section label for ingredients with no section
const ungroupedSection = "Outros"

// formatMinutes renders a minute count as a human readable duration
func formatMinutes(minutes string) string {
	n, err := strconv.Atoi(minutes)
	if err != nil {
		return minutes
	}

	if n < 60 {
		if n == 1 {
			return "1 minuto"
		}
		return fmt.Sprintf("%d minutos", n)
	}

	hours := n / 60
	remaining := n % 60

	hoursLabel := "horas"
	if hours == 1 {
		hoursLabel = "hora"
	}

	if remaining == 0 {
		return fmt.Sprintf("%d %s", hours, hoursLabel)
	}

	minutesLabel := "minutos"
	if remaining == 1 {
		minutesLabel = "minuto"
	}

	return fmt.Sprintf("%d %s e %d %s", hours, hoursLabel, remaining, minutesLabel)
}

// ingredientSection is a group of ingredients sharing a section label
type ingredientSection struct {
	Name        string
	Ingredients []client.IngredientData
}

// groupIngredients groups ingredients by their section label, preserving the
// order in which sections first appear. Ingredients without a section fall
// under "Outros".
func groupIngredients(ingredients []client.IngredientData) []ingredientSection {
	ret := []ingredientSection{}
	indexes := map[string]int{}

	for _, ingredient := range ingredients {
		section := ingredient.Section
		if section == "" {
			section = ungroupedSection
		}

		idx, ok := indexes[section]
		if !ok {
			idx = len(ret)
			indexes[section] = idx
			ret = append(ret, ingredientSection{Name: section})
		}

		ret[idx].Ingredients = append(ret[idx].Ingredients, ingredient)
	}

	return ret
}

// instructionEntry is a single instruction line. Number is 0 for tip entries,
// which are not part of the actionable sequence.
type instructionEntry struct {
	Number int
	Text   string
}

// instructionStep is a group of instructions sharing a step label
type instructionStep struct {
	Name    string
	Entries []instructionEntry
}

// groupInstructions groups instructions by their step label, preserving the
// order in which steps first appear. Actionable entries are numbered
// sequentially across all steps; entries under the tips sentinel are left
// unnumbered.
func groupInstructions(instructions []client.InstructionData) []instructionStep {
	ret := []instructionStep{}
	indexes := map[string]int{}
	number := 0

	for _, instruction := range instructions {
		idx, ok := indexes[instruction.Step]
		if !ok {
			idx = len(ret)
			indexes[instruction.Step] = idx
			ret = append(ret, instructionStep{Name: instruction.Step})
		}

		entry := instructionEntry{Text: instruction.Text}
		if instruction.Step != extraStep {
			number++
			entry.Number = number
		}

		ret[idx].Entries = append(ret[idx].Entries, entry)
	}

	return ret
}
