package rankcode

import "fmt"

// UnknownTokenError reports a token in the encoder input that has no entry in
// the rank table. It means the table was not built from the same token
// sequence being encoded. Dropping the token instead would silently shorten
// the code sequence and break the decoder's positional assumption, so the
// encoder fails on the first occurrence.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("token %q has no rank assignment", e.Token)
}

// InvalidRankError reports a rank in the decoder input that falls outside the
// table's range [1, Size]. The code sequence is corrupt or was produced
// against a different table.
type InvalidRankError struct {
	Rank int
	Size int
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("rank %d outside table range [1, %d]", e.Rank, e.Size)
}

// =============================================================================

// Encode maps each token of the sequence to its rank, preserving order. The
// code sequence always has exactly one rank per input token; a token missing
// from the table aborts the encode with an UnknownTokenError.
func (rt *RankTable) Encode(tokens []string) ([]int, error) {
	code := make([]int, len(tokens))

	for i, tok := range tokens {
		r, ok := rt.ranks[tok]
		if !ok {
			return nil, &UnknownTokenError{Token: tok}
		}
		code[i] = r
	}

	return code, nil
}

// Decode maps each rank of the code sequence back to its token, preserving
// order. A rank outside [1, Len] aborts the decode with an InvalidRankError;
// no partial output is returned.
func (rt *RankTable) Decode(code []int) ([]string, error) {
	tokens := make([]string, len(code))

	for i, r := range code {
		if r < 1 || r > len(rt.ranked) {
			return nil, &InvalidRankError{Rank: r, Size: len(rt.ranked)}
		}
		tokens[i] = rt.ranked[r-1]
	}

	return tokens, nil
}
