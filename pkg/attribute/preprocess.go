package attribute

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TokenList splits values on whitespace and drops repeated tokens, keeping
// the first occurrence of each.
func TokenList(values []string, _ Context) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, tok := range strings.Fields(v) {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// Lowercase folds every value to lower case.
func Lowercase(values []string, _ Context) []string {
	// A Caser keeps state between calls and must not be shared.
	caser := cases.Lower(language.Und)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = caser.String(v)
	}
	return out
}

// Chain runs preprocessors left to right.
func Chain(ps ...Preprocessor) Preprocessor {
	return func(values []string, ctx Context) []string {
		for _, p := range ps {
			if p != nil {
				values = p(values, ctx)
			}
		}
		return values
	}
}
