// Package bench provides benchmarking utilities for sentence boundary detection.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/vertical"
)

// Ext is the file extension of gold documents.
const Ext = ".vrt"

// Header contains metadata parsed from the comment lines of a gold file.
type Header struct {
	Source   string
	Language string
	Title    string
}

// ParseHeader extracts metadata from leading "#" comment lines.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}
		bodyStart = lineEnd

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Language:"); ok {
			h.Language = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	if bodyStart > len(text) {
		bodyStart = len(text)
	}
	return h, text[bodyStart:], nil
}

// Document is a gold standard document: a token stream and the offsets at
// which its sentences end.
type Document struct {
	ID       string // filename without extension
	Source   string
	Language string
	Title    string
	Tokens   []sentsplit.Token

	// Boundaries holds the exclusive end offset of every sentence except
	// the last, whose end is the end of the document.
	Boundaries []int
}

// ParseDocument reads a gold document. Blank lines in the body separate
// sentences.
func ParseDocument(id, text string) (*Document, error) {
	header, body, err := ParseHeader(text)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	sentences, err := vertical.ReadSentences(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}

	doc := &Document{
		ID:       id,
		Source:   header.Source,
		Language: header.Language,
		Title:    header.Title,
	}
	for _, sent := range sentences {
		doc.Tokens = append(doc.Tokens, sent...)
		doc.Boundaries = append(doc.Boundaries, len(doc.Tokens))
	}
	if n := len(doc.Boundaries); n > 0 {
		doc.Boundaries = doc.Boundaries[:n-1]
	}
	return doc, nil
}

// LoadDocument loads and parses a gold file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	base := filepath.Base(path)
	return ParseDocument(strings.TrimSuffix(base, filepath.Ext(base)), string(data))
}

// LoadCorpus loads all gold files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != Ext {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
