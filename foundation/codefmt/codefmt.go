// Package codefmt reads and writes the text form of a rank encoding. An
// encoded document is three lines: the distinct tokens in rank order, a
// separator line, and the code sequence as decimal integers. Tokens and
// integers are space separated.
package codefmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/textkit/rankcode/foundation/rankcode"
)

// Separator is the line dividing the token list from the code sequence.
const Separator = "**********"

// WriteEncoding renders the table and code sequence as an encoded document.
// An empty table still produces all three lines, with the token and code
// lines empty.
func WriteEncoding(w io.Writer, table *rankcode.RankTable, code []int) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(table.Tokens(), " "), Separator); err != nil {
		return fmt.Errorf("write token line: %w", err)
	}

	nums := make([]string, len(code))
	for i, r := range code {
		nums[i] = strconv.Itoa(r)
	}

	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(nums, " ")); err != nil {
		return fmt.Errorf("write code line: %w", err)
	}

	return nil
}

// WriteText renders a decoded token sequence as a single space-separated
// line. Only token content and order survive an encode/decode cycle, not the
// original whitespace style.
func WriteText(w io.Writer, tokens []string) error {
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(tokens, " ")); err != nil {
		return fmt.Errorf("write text line: %w", err)
	}

	return nil
}

// ReadEncoding parses an encoded document back into its rank table and code
// sequence. The first line supplies the tokens in rank order, the second must
// be the separator, and everything after it is read as code values.
func ReadEncoding(r io.Reader) (*rankcode.RankTable, []int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 2 || lines[1] != Separator {
		return nil, nil, fmt.Errorf("missing separator line %q", Separator)
	}

	table, err := rankcode.RankTableFromOrder(strings.Fields(lines[0]))
	if err != nil {
		return nil, nil, fmt.Errorf("token line: %w", err)
	}

	var code []int
	for _, field := range strings.Fields(strings.Join(lines[2:], " ")) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, nil, fmt.Errorf("code value %q: %w", field, err)
		}
		code = append(code, v)
	}

	return table, code, nil
}
