package rankcode

import (
	"fmt"
	"slices"
	"strings"
)

// Frequencies counts how many times each distinct token occurs in the
// sequence. An empty sequence yields an empty map.
func Frequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))

	for _, tok := range tokens {
		freq[tok]++
	}

	return freq
}

// =============================================================================

// RankTable is the bijection between distinct tokens and their 1-based ranks.
// Both lookup directions are built from one sorted pass and the table is
// immutable after construction, so they cannot diverge:
// Rank(t) == r iff Token(r) == t for every entry.
type RankTable struct {
	ranked []string       // ranked[r-1] is the token holding rank r
	ranks  map[string]int // token to rank
}

// NewRankTable assigns ranks to the distinct tokens of the frequency map.
// The ordering key is occurrence count descending, then token ascending by
// byte-wise comparison. Token values are unique, so the combined key is a
// strict total order and the resulting ranks are exactly 1..D with no gaps.
// An empty frequency map builds an empty table.
func NewRankTable(freq map[string]int) *RankTable {
	ranked := make([]string, 0, len(freq))
	for tok := range freq {
		ranked = append(ranked, tok)
	}

	slices.SortFunc(ranked, func(a, b string) int {
		if freq[a] != freq[b] {
			return freq[b] - freq[a]
		}
		return strings.Compare(a, b)
	})

	ranks := make(map[string]int, len(ranked))
	for i, tok := range ranked {
		ranks[tok] = i + 1
	}

	rt := RankTable{
		ranked: ranked,
		ranks:  ranks,
	}

	return &rt
}

// RankTableFromOrder rebuilds a table from a distinct token list already in
// rank order, such as the token line of an encoded document. The list must
// not repeat a token: a duplicate would break the bijection.
func RankTableFromOrder(tokens []string) (*RankTable, error) {
	ranked := make([]string, len(tokens))
	copy(ranked, tokens)

	ranks := make(map[string]int, len(ranked))
	for i, tok := range ranked {
		if prev, exists := ranks[tok]; exists {
			return nil, fmt.Errorf("duplicate token %q at ranks %d and %d", tok, prev, i+1)
		}
		ranks[tok] = i + 1
	}

	rt := RankTable{
		ranked: ranked,
		ranks:  ranks,
	}

	return &rt, nil
}

// Len returns D, the number of distinct tokens in the table.
func (rt *RankTable) Len() int {
	return len(rt.ranked)
}

// Rank looks up the rank assigned to the token.
func (rt *RankTable) Rank(token string) (int, bool) {
	r, ok := rt.ranks[token]
	return r, ok
}

// Token looks up the token holding the rank. Ranks outside [1, Len] report
// false.
func (rt *RankTable) Token(rank int) (string, bool) {
	if rank < 1 || rank > len(rt.ranked) {
		return "", false
	}
	return rt.ranked[rank-1], true
}

// Tokens returns the distinct tokens in rank order. The slice is a copy, so
// the caller cannot disturb the table.
func (rt *RankTable) Tokens() []string {
	tokens := make([]string, len(rt.ranked))
	copy(tokens, rt.ranked)
	return tokens
}
