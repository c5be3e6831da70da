package score

import (
	"fmt"

	"github.com/benvisser/call-of-doody-sub000/schema"
	"github.com/benvisser/call-of-doody-sub000/utils"
)

var defaultCategoryLabels = map[schema.RatingCategory]schema.RatingCategoryLabels{
	schema.RatingCleanliness: {
		ID: schema.RatingCleanliness, Label: "Cleanliness",
		Levels: [5]string{"Disgusting", "Dirty", "Acceptable", "Clean", "Spotless"},
	},
	schema.RatingSupplies: {
		ID: schema.RatingSupplies, Label: "Supplies",
		Levels: [5]string{"Nothing stocked", "Mostly empty", "Some supplies", "Well stocked", "Fully stocked"},
	},
	schema.RatingAccessibility: {
		ID: schema.RatingAccessibility, Label: "Accessibility",
		Levels: [5]string{"Not accessible", "Difficult", "Manageable", "Easy", "Fully accessible"},
	},
	schema.RatingWaitTime: {
		ID: schema.RatingWaitTime, Label: "Wait Time",
		Levels: [5]string{"Very long", "Long", "Some wait", "Short", "No wait"},
	},
}

// RatingCategories returns every category with its labels in lang.
func RatingCategories(lang string) []schema.RatingCategoryLabels {
	localizer := utils.NewLocalizer(lang, utils.DefaultLanguage)

	result := make([]schema.RatingCategoryLabels, 0, len(schema.RatingCategories))
	for _, c := range schema.RatingCategories {
		labels := defaultCategoryLabels[c]
		labels.Label = utils.Localize(localizer, fmt.Sprintf("ratings.%s.label", c), labels.Label)
		for i := range labels.Levels {
			labels.Levels[i] = utils.Localize(localizer, fmt.Sprintf("ratings.%s.level_%d", c, i+1), labels.Levels[i])
		}
		result = append(result, labels)
	}
	return result
}

// LevelLabel returns the english label of a 1-5 value.
func LevelLabel(category schema.RatingCategory, value int) string {
	if value < MinRating || value > MaxRating {
		return ""
	}
	return defaultCategoryLabels[category].Levels[value-1]
}
