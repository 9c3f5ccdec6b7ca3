package rankcode

import "github.com/dlclark/regexp2"

// A token is a maximal run of non-whitespace characters. Whitespace follows
// the regex engine's Unicode classification, so tabs, newlines, and Unicode
// space separators all act as boundaries.
var tokenRegex = regexp2.MustCompile(`\S+`, regexp2.None)

// Tokenize splits the text into its ordered sequence of tokens. Runs of
// whitespace collapse to a single boundary and never produce empty tokens.
// The function is a pure function of the text: the same input always yields
// the same sequence.
func Tokenize(text string) []string {
	var tokens []string

	m, _ := tokenRegex.FindStringMatch(text)

	for m != nil {
		tokens = append(tokens, m.String())
		m, _ = tokenRegex.FindNextMatch(m)
	}

	return tokens
}
