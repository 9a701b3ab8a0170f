//go:build ignore

// Process UD English Web Treebank CoNLL-U files into gold vertical files.
// Writes one .vrt file per treebank document with a blank line after every
// gold sentence.
// Usage: go run ./scripts/process-ud-ewt.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/bench"
	"github.com/jamesainslie/go-sentsplit/internal/vertical"
)

// Document is one "# newdoc" section of a CoNLL-U file.
type Document struct {
	ID        string
	Sentences [][]sentsplit.Token
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

func main() {
	inDir := "testdata/ud-ewt"
	outDir := "testdata/gold"

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	splits := []string{"train", "dev", "test"}

	for _, split := range splits {
		inFile := filepath.Join(inDir, fmt.Sprintf("en_ewt-ud-%s.conllu", split))

		fmt.Printf("Processing %s...\n", split)
		docs, err := processCoNLLU(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		var sentences int
		for _, doc := range docs {
			if err := writeDocument(outDir, split, doc); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", doc.ID, err)
				continue
			}
			sentences += len(doc.Sentences)
		}

		fmt.Printf("  -> %d documents, %d sentences\n", len(docs), sentences)
	}

	fmt.Printf("\nDone! Gold files created in %s/\n", outDir)
}

func processCoNLLU(path string) ([]*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		docs    []*Document
		current []sentsplit.Token
	)
	doc := func() *Document {
		if len(docs) == 0 {
			docs = append(docs, &Document{ID: strings.TrimSuffix(filepath.Base(path), ".conllu")})
		}
		return docs[len(docs)-1]
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if id, ok := strings.CutPrefix(line, "# newdoc id = "); ok {
			docs = append(docs, &Document{ID: strings.TrimSpace(id)})
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		// Empty line marks end of sentence
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				d := doc()
				d.Sentences = append(d.Sentences, current)
				current = nil
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 10 {
			return nil, fmt.Errorf("malformed token line: %q", line)
		}
		// Multiword ranges and empty nodes carry no surface token
		if strings.ContainsAny(fields[0], "-.") {
			continue
		}

		tok := sentsplit.Word(fields[1])
		for _, misc := range strings.Split(fields[9], "|") {
			if misc == "SpaceAfter=No" {
				tok = sentsplit.WordNoSpace(fields[1])
			}
		}
		current = append(current, tok)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	if len(current) > 0 {
		d := doc()
		d.Sentences = append(d.Sentences, current)
	}

	return docs, nil
}

func writeDocument(outDir, split string, doc *Document) error {
	name := unsafeName.ReplaceAllString(doc.ID, "_") + bench.Ext
	f, err := os.Create(filepath.Join(outDir, split+"_"+name))
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Source: UD_English-EWT %s\n# Language: en\n# Title: %s\n\n", split, doc.ID)
	if err := w.Flush(); err != nil {
		return err
	}
	return vertical.Write(f, doc.Sentences)
}
