package utils

import (
	"strings"
	"unicode"
)

// Title converts the first letter of each word to uppercase and the rest to lowercase.
func Title(s string) string {
	return strings.Join(titleWords(strings.Fields(s)), " ")
}

// FieldLabel turns a snake_case field name into a human readable label.
func FieldLabel(name string) string {
	return Title(strings.ReplaceAll(name, "_", " "))
}

func titleWords(words []string) []string {
	for i, word := range words {
		if len(word) == 0 {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return words
}
