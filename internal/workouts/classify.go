package workouts

import "strings"

// Keyword sets checked in strict priority order: walk beats strength beats
// cardio, so e.g. "Strength Bootcamp Walk" counts as a walk.
var (
	walkKeywords     = []string{"walk"}
	strengthKeywords = []string{"bootcamp", "core", "strength", "weights", "weight", "resistance", "circuit"}
	cardioKeywords   = []string{"run", "bike", "spinning", "elliptical", "row", "swim", "hiit", "cardio"}
)

func containsKeyword(activityName string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(activityName, keyword) {
			return true
		}
	}
	return false
}

// Classify maps a free-text activity name to a training category and a
// training flag. Pure and total: any string, including empty, classifies
// without error, and the same input always yields the same output, so
// historical records can be reclassified at any point.
func Classify(activityName string) (Category, bool) {
	normalized := strings.ToLower(activityName)

	if containsKeyword(normalized, walkKeywords) {
		return CategoryWalk, false
	}

	if containsKeyword(normalized, strengthKeywords) {
		return CategoryStrength, true
	}

	if containsKeyword(normalized, cardioKeywords) {
		return CategoryCardio, true
	}

	return CategoryOther, false
}
