package validation

import "strings"

// minEventFieldLen is the minimum length for every required event field.
const minEventFieldLen = 6

// ValidateEventFields checks the five required event fields and accumulates
// every violation into a single error message so the client sees them all at
// once. Returns "" when the event is valid.
func ValidateEventFields(title, description, date, location, timeOfDay string) string {
	var problems []string

	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		} else if len(value) < minEventFieldLen {
			problems = append(problems, field+" must be at least 6 characters long")
		}
	}

	check("title", title)
	check("description", description)
	check("date", date)
	check("location", location)
	check("time", timeOfDay)

	return strings.Join(problems, "; ")
}

// ValidateNameLength checks a display name against inclusive length bounds.
// Used for category (2-50) and recipe group (3-50) names.
func ValidateNameLength(name string, min, max int) bool {
	n := len(strings.TrimSpace(name))
	return n >= min && n <= max
}
