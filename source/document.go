// Package source provides the input document type fed to the pipeline.
package source

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Document is one raw ontology file.
type Document struct {
	// ID is derived from the file name and content, stable across runs.
	ID string `json:"id"`

	// Filename is the name used for format detection and reporting.
	Filename string `json:"filename"`

	// Content is the raw RDF text.
	Content string `json:"-"`

	// Hash is the sha256 of Content, hex encoded.
	Hash string `json:"hash"`
}

// NewDocument builds a Document from a name and its content.
func NewDocument(filename string, content []byte) Document {
	return Document{
		ID:       generateID(filename, content),
		Filename: filename,
		Content:  string(content),
		Hash:     ContentHash(content),
	}
}

// ReadDocument reads a Document from disk.
func ReadDocument(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return NewDocument(path, content), nil
}

// ContentHash returns the hex sha256 of content.
func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

var invalidIDChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// generateID builds "doc.<name>.<hash12>" from the base name without its
// extension and a short content hash.
func generateID(filename string, content []byte) string {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Trim(invalidIDChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if name == "" {
		name = "document"
	}
	return fmt.Sprintf("doc.%s.%s", name, ContentHash(content)[:12])
}
