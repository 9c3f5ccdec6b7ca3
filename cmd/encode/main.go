// This program rank-encodes text. With no arguments it reads stdin and
// writes the encoded document to stdout. With file arguments it encodes each
// file to an <input>.rnk sibling, converting document formats (PDF, DOCX,
// and friends) to plain text first. Files are processed concurrently up to
// the configured worker count.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/textkit/rankcode/foundation/codefmt"
	"github.com/textkit/rankcode/foundation/conf"
	"github.com/textkit/rankcode/foundation/rankcode"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := conf.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	workers := flag.Int("workers", cfg.Workers, "concurrent file encodes")
	trace := flag.Bool("trace", cfg.Trace, "log a trace line per encoded file")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		return encodeStream(os.Stdin, os.Stdout)
	}

	ch := make(chan bool, *workers)

	var g errgroup.Group

	for _, file := range files {
		file := file
		g.Go(func() error {
			ch <- true
			defer func() {
				<-ch
			}()

			traceID := uuid.NewString()

			table, code, err := encodeFile(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			if *trace {
				log.Printf("encode: trace(%s) file(%s) tokens(%d) distinct(%d)", traceID, file, len(code), table.Len())
			}

			return nil
		})
	}

	return g.Wait()
}

func encodeStream(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	table, code, err := rankcode.Encode(string(data))
	if err != nil {
		return err
	}

	return codefmt.WriteEncoding(w, table, code)
}

func encodeFile(file string) (*rankcode.RankTable, []int, error) {
	text, err := readInput(file)
	if err != nil {
		return nil, nil, err
	}

	table, code, err := rankcode.Encode(text)
	if err != nil {
		return nil, nil, err
	}

	output, err := os.Create(file + ".rnk")
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	defer output.Close()

	if err := codefmt.WriteEncoding(output, table, code); err != nil {
		return nil, nil, err
	}

	return table, code, nil
}

// readInput returns the text content of the file. Document formats go
// through docconv for text extraction; everything else is read as-is.
func readInput(file string) (string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".pdf", ".docx", ".doc", ".odt", ".rtf", ".pages":
		res, err := docconv.ConvertPath(file)
		if err != nil {
			return "", fmt.Errorf("convert document: %w", err)
		}
		return res.Body, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	return string(data), nil
}
