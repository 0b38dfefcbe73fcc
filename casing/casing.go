// Package casing converts between the identifier conventions the schema
// language and its generated code use: snake_case (field names in
// source), PascalCase (data type names in source and in generated Go),
// and camelCase (generated setter parameter names). It is a
// small, self-contained word-splitting utility, so it leans on the
// standard library rather than a third-party casing package.
package casing

import "strings"

// Words splits an identifier into lowercase words, recognizing
// underscore separation and embedded case changes (so both snake_case
// and PascalCase/camelCase inputs split sensibly).
func Words(s string) []string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-':
			flush()
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				prev := runes[i-1]
				startsNewWord := prev >= 'a' && prev <= 'z'
				if !startsNewWord && i+1 < len(runes) {
					next := runes[i+1]
					startsNewWord = next >= 'a' && next <= 'z'
				}
				if startsNewWord {
					flush()
				}
			}
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return words
}

// Pascal renders an identifier as PascalCase, e.g. "user_id" -> "UserId".
func Pascal(s string) string {
	words := Words(s)
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// Camel renders an identifier as camelCase, e.g. "user_id" -> "userId".
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// Snake renders an identifier as snake_case, e.g. "UserID" -> "user_id".
func Snake(s string) string {
	return strings.Join(Words(s), "_")
}
