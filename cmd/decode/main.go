// This program reverses a rank encoding. With no arguments it reads an
// encoded document from stdin and writes the reconstructed text to stdout.
// With file arguments it decodes each document to an <input>.txt sibling.
// A malformed document or a rank outside the table aborts with a nonzero
// exit; nothing partial is written.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/textkit/rankcode/foundation/codefmt"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		return decodeStream(os.Stdin, os.Stdout)
	}

	for _, file := range files {
		if err := decodeFile(file); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}

	return nil
}

func decodeStream(r io.Reader, w io.Writer) error {
	table, code, err := codefmt.ReadEncoding(r)
	if err != nil {
		return err
	}

	tokens, err := table.Decode(code)
	if err != nil {
		return err
	}

	return codefmt.WriteText(w, tokens)
}

func decodeFile(file string) error {
	input, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer input.Close()

	table, code, err := codefmt.ReadEncoding(input)
	if err != nil {
		return err
	}

	tokens, err := table.Decode(code)
	if err != nil {
		return err
	}

	output, err := os.Create(file + ".txt")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer output.Close()

	return codefmt.WriteText(output, tokens)
}
