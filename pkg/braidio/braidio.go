// Package braidio provides the JSON file format for braid words.
//
// The format is deliberately tiny and human-writable:
//
//	{
//	  "strands": 3,
//	  "word": [1, -2, 1]
//	}
//
// Reading always goes through [braid.New], so a file that decodes but
// violates the word invariants is rejected with the same validation
// errors as programmatic construction.
package braidio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/strandlab/braidviz/pkg/braid"
)

// fileFormat is the JSON shape of a braid file.
type fileFormat struct {
	Strands int   `json:"strands"`
	Word    []int `json:"word"`
}

// Read decodes a braid word from an io.Reader.
func Read(r io.Reader) (*braid.Word, error) {
	var f fileFormat
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return braid.New(f.Strands, f.Word...)
}

// ReadFile reads a braid word from a JSON file.
func ReadFile(path string) (*braid.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write encodes a braid word as JSON to an io.Writer.
func Write(w *braid.Word, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toFile(w)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a braid word to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(w *braid.Word, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(w, f)
}

// Marshal returns the JSON encoding of a braid word.
func Marshal(w *braid.Word) ([]byte, error) {
	return json.MarshalIndent(toFile(w), "", "  ")
}

// toFile keeps an empty word serialized as [] rather than null.
func toFile(w *braid.Word) fileFormat {
	gens := w.Generators()
	if gens == nil {
		gens = []int{}
	}
	return fileFormat{Strands: w.Strands(), Word: gens}
}
