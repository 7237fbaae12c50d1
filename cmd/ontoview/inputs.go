package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/ontoview/source"
)

// resolveInputs expands file, directory and glob arguments into a
// de-duplicated file list. Directories contribute every file with one of
// extensions, recursively.
func resolveInputs(args []string, extensions []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, arg := range args {
		matches, err := expandInput(arg, extensions)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", arg)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	return files, nil
}

func expandInput(arg string, extensions []string) ([]string, error) {
	if containsGlob(arg) {
		return globFiles(arg, nil)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	return globFiles(filepath.Join(arg, "**", "*"), extensions)
}

func globFiles(pattern string, extensions []string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, m := range matches {
		if extensions == nil || hasExtension(m, extensions) {
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func readDocuments(paths []string) ([]source.Document, error) {
	docs := make([]source.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := source.ReadDocument(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
