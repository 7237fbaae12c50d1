package parser

import (
	"path/filepath"
	"strings"
)

// Serialization hints understood by the registry.
const (
	FormatTurtle   = "text/turtle"
	FormatNTriples = "application/n-triples"
	FormatNQuads   = "application/n-quads"
	FormatTriG     = "application/trig"
)

// FormatInfo provides metadata about an RDF serialization.
type FormatInfo struct {
	// MIMEType is the serialization hint.
	MIMEType string

	// Extensions are the file extensions mapped to it (with dot).
	Extensions []string

	// Description describes the format.
	Description string
}

// FormatRegistry describes every supported serialization.
var FormatRegistry = map[string]FormatInfo{
	FormatTurtle: {
		MIMEType:    FormatTurtle,
		Extensions:  []string{".ttl", ".n3"},
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		MIMEType:    FormatNTriples,
		Extensions:  []string{".nt"},
		Description: "N-Triples - Line-based RDF format",
	},
	FormatNQuads: {
		MIMEType:    FormatNQuads,
		Extensions:  []string{".nq"},
		Description: "N-Quads - Line-based RDF dataset format",
	},
	FormatTriG: {
		MIMEType:    FormatTriG,
		Extensions:  []string{".trig"},
		Description: "TriG - Turtle with named graphs",
	},
}

// GetFormatInfo returns metadata for a MIME type.
func GetFormatInfo(mimeType string) (FormatInfo, bool) {
	info, ok := FormatRegistry[mimeType]
	return info, ok
}

// DetectFormat maps a filename to a serialization hint by its extension,
// ignoring case. Unknown or missing extensions default to Turtle.
func DetectFormat(filename string) string {
	return MimeTypeFromExtension(filepath.Ext(filename))
}

// MimeTypeFromExtension returns the serialization hint for an extension.
func MimeTypeFromExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".nt":
		return FormatNTriples
	case ".nq":
		return FormatNQuads
	case ".trig":
		return FormatTriG
	default:
		return FormatTurtle
	}
}

// ExtensionFromMimeType returns the preferred file extension for a MIME type.
func ExtensionFromMimeType(mimeType string) string {
	info, ok := FormatRegistry[mimeType]
	if !ok || len(info.Extensions) == 0 {
		return ""
	}
	return info.Extensions[0]
}

// SupportedExtensions returns every extension in FormatRegistry.
func SupportedExtensions() []string {
	exts := make([]string, 0, 5)
	for _, mime := range []string{FormatTurtle, FormatNTriples, FormatNQuads, FormatTriG} {
		exts = append(exts, FormatRegistry[mime].Extensions...)
	}
	return exts
}
