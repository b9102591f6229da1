package validation

import "regexp"

// Errors collects validation failures, one entry per offending field.
// It marshals directly into the `errors` object of a 422 body.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Colors are accepted as 3- or 6-digit hex, with or without the leading '#'.
var hexColorPattern = regexp.MustCompile(`^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`)

func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// NormalizeHexColor guarantees the stored form carries a leading '#'.
// The input must already have passed IsHexColor.
func NormalizeHexColor(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s
	}
	return "#" + s
}

func RequiredMessage(field string) string {
	return "The " + field + " field is required."
}

func StringMessage(field string) string {
	return "The " + field + " must be a string."
}

func TakenMessage(field string) string {
	return "The " + field + " has already been taken."
}

func FormatMessage(field string) string {
	return "The " + field + " format is invalid."
}

func BooleanMessage(field string) string {
	return "The " + field + " field must be true or false."
}
