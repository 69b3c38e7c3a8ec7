package indexer

import (
	"regexp"
	"strings"
	"unicode"
)

// Compound-identifier boundaries, applied in order:
//   - an acronym run followed by a capitalized word (HTTPRequest -> HTTP Request)
//   - a lowercase letter followed by an uppercase one (baseButton -> base Button)
//   - a letter followed by a digit (Camera3D -> Camera 3D)
//   - a digit followed by a capitalized word (Area2Player -> Area2 Player)
//
// There is deliberately no digit-to-trailing-capital rule: "3D" stays one
// fragment, so Camera3D tokenizes to {camera, 3d} rather than {camera, 3, d}.
var (
	reAcronym   = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	reCamel     = regexp.MustCompile(`([a-z])([A-Z])`)
	reLetterNum = regexp.MustCompile(`([A-Za-z])([0-9])`)
	reNumWord   = regexp.MustCompile(`([0-9])([A-Z][a-z])`)
)

// TokenizeName splits an identifier into lowercase search tokens. When the
// split produced more than one fragment, the compact lowercase concatenation
// is appended as one extra token so both the decomposed and the compact
// forms are searchable: Camera3D -> {camera, 3d, camera3d}.
func TokenizeName(name string) []string {
	fields := strings.FieldsFunc(name, isSeparator)

	tokens := make([]string, 0, 4)
	var compact strings.Builder
	for _, field := range fields {
		s := reAcronym.ReplaceAllString(field, "$1 $2")
		s = reCamel.ReplaceAllString(s, "$1 $2")
		s = reLetterNum.ReplaceAllString(s, "$1 $2")
		s = reNumWord.ReplaceAllString(s, "$1 $2")
		for _, part := range strings.Fields(s) {
			lower := strings.ToLower(part)
			tokens = append(tokens, lower)
			compact.WriteString(lower)
		}
	}

	if len(tokens) > 1 {
		tokens = append(tokens, compact.String())
	}
	return tokens
}

// TokenizeText splits free text into lowercase search tokens: non-alphanumeric
// characters are separators and tokens shorter than 2 characters are dropped.
func TokenizeText(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
