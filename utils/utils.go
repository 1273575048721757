package utils

import (
	"strings"
)

const yesAnswer = "yes"

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IsYes returns true if the answer is "yes", ignoring case and surrounding spaces
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), yesAnswer)
}

// GetRoutingKeyPart returns value as a routing key word: lowercase and without spaces or dots
func GetRoutingKeyPart(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return strings.NewReplacer(" ", "_", ".", "_").Replace(value)
}
