package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// LabelKey turns a snippet label such as "Region Assigned:" into the
// field key "region_assigned".
func LabelKey(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimSuffix(label, ":")
	label = strings.TrimSpace(label)
	label = whitespaceRegex.ReplaceAllString(label, "_")
	return strings.ToLower(label)
}

// AfterLabel returns the text following the first colon, or the whole text
// when there is none.
func AfterLabel(text string) string {
	_, value, found := strings.Cut(text, ":")
	if !found {
		value = text
	}
	return strings.TrimSpace(value)
}
