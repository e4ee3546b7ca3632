package manacost

import (
	"regexp"
	"strings"
)

var symbolPattern = regexp.MustCompile(`\{([^}]*)\}`)

// ExtractSymbols returns the payloads of every {...} group in source order.
// Text outside brackets and unterminated groups are ignored.
func ExtractSymbols(raw string) []string {
	if raw == "" {
		return nil
	}
	matches := symbolPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	symbols := make([]string, 0, len(matches))
	for _, m := range matches {
		symbols = append(symbols, m[1])
	}
	return symbols
}

// Expand turns a mana cost such as "{2}{W/P}" into a description like
// "2 colourless mana, white or 2 life hybrid mana".
//
// The boolean is false when there is nothing to describe: empty input, no
// bracket groups, or only empty groups. Expand never returns ("", true).
func Expand(raw string) (string, bool) {
	symbols := ExtractSymbols(raw)
	if len(symbols) == 0 {
		return "", false
	}

	phrases := make([]string, 0, len(symbols))
	for _, payload := range symbols {
		if normalize(payload) == "" {
			continue
		}
		if phrase := ExpandSymbol(payload); phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	if len(phrases) == 0 {
		return "", false
	}
	return strings.Join(phrases, ", "), true
}

// ExpandPtr is Expand for nullable fields: nil in or nothing to describe gives nil.
func ExpandPtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	expanded, ok := Expand(*raw)
	if !ok {
		return nil
	}
	return &expanded
}
