package overlay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agentic-research/buildaux/api"
)

// Format selects the overlay document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown overlay format %q (want yaml or json)", s)
}

// Encoder receives an overlay document piece by piece.
type Encoder interface {
	// Begin writes the document header.
	Begin() error
	// Directory adds one directory record.
	Directory(d api.Directory) error
	// End completes the document.
	End() error
}

// NewEncoder returns the encoder for f writing to w.
func NewEncoder(f Format, w io.Writer) (Encoder, error) {
	switch f {
	case FormatYAML:
		return &YAMLEncoder{w: w}, nil
	case FormatJSON:
		return &JSONEncoder{w: w}, nil
	}
	return nil, fmt.Errorf("unknown overlay format %q", f)
}

// YAMLEncoder streams the overlay in the indented text layout read by
// Clang's -ivfsoverlay. Values are written verbatim, without YAML escaping.
type YAMLEncoder struct {
	w io.Writer
}

// Begin writes the version, case-sensitive and roots header lines.
func (e *YAMLEncoder) Begin() error {
	_, err := io.WriteString(e.w, "version: 0\ncase-sensitive: false\nroots:\n")
	return err
}

// Directory writes d and its contents immediately.
func (e *YAMLEncoder) Directory(d api.Directory) error {
	if _, err := fmt.Fprintf(e.w, "  - name: \"%s\"\n    type: %s\n    contents:\n", d.Name, d.Type); err != nil {
		return err
	}
	for _, f := range d.Contents {
		_, err := fmt.Fprintf(e.w,
			"      - name: %s\n        type: %s\n        external-contents: \"%s\"\n",
			f.Name, f.Type, f.ExternalContents)
		if err != nil {
			return err
		}
	}
	return nil
}

// End is a no-op; the text layout has no trailer.
func (e *YAMLEncoder) End() error { return nil }

// JSONEncoder buffers the records and writes one indented JSON document
// on End.
type JSONEncoder struct {
	w   io.Writer
	doc api.Overlay
}

// Begin resets the buffered document.
func (e *JSONEncoder) Begin() error {
	e.doc = api.Overlay{Version: 0, CaseSensitive: false, Roots: []api.Directory{}}
	return nil
}

// Directory buffers d.
func (e *JSONEncoder) Directory(d api.Directory) error {
	e.doc.Roots = append(e.doc.Roots, d)
	return nil
}

// End writes the buffered document.
func (e *JSONEncoder) End() error {
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(e.doc)
}
