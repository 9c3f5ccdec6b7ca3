// Package rankcode converts free-form text into a compact positional code
// and back. Each distinct token in the input is assigned a rank based on how
// often it occurs (rank 1 is the most frequent, ties broken lexicographically)
// and the original token sequence is rewritten as the sequence of ranks.
// Decoding reverses the substitution against the same rank table.
package rankcode

import "fmt"

// Encode tokenizes the text, builds the rank table from the token
// frequencies, and produces the code sequence for the original token order.
// The text is tokenized exactly once and that sequence feeds both the
// frequency count and the encoding, so the two can never disagree.
func Encode(text string) (*RankTable, []int, error) {
	tokens := Tokenize(text)

	table := NewRankTable(Frequencies(tokens))

	code, err := table.Encode(tokens)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding tokens: %w", err)
	}

	return table, code, nil
}
