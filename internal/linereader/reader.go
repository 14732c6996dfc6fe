// =============================================================================
// Beer Review Extractor - Input Line Reader
// =============================================================================
//
// This module loads the review dump into memory as a slice of lines. The
// whole file is read before parsing starts; the parse pass then walks the
// slice in order.
//
// FEATURES:
//   - Character set decoding (UTF-8, ISO-8859-1, Windows-1252)
//   - Byte order mark detection and removal
//   - "\n" and "\r\n" line endings
//
// =============================================================================

package linereader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/beer-review-extractor/internal/config"
)

// ReadLines reads the file at path and returns its lines.
//
// A final empty line produced by a trailing newline is dropped, so a file
// ending in "\n" has as many lines as it has line breaks. An empty file
// yields no lines.
func ReadLines(path string, settings config.InputSettings) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file, settings.Encoding)
}

// Decode reads r to the end using the named encoding and splits it into
// lines.
func Decode(r io.Reader, encodingName string) ([]string, error) {
	decoder, err := newDecoder(encodingName)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return splitLines(data), nil
}

// newDecoder returns a decoder for the named encoding. A byte order mark,
// when present, overrides the configured encoding and is stripped.
func newDecoder(name string) (transform.Transformer, error) {
	var enc encoding.Encoding

	switch strings.ToUpper(strings.ReplaceAll(name, "_", "-")) {
	case "", "UTF-8", "UTF8":
		enc = unicode.UTF8
	case "ISO-8859-1", "LATIN1", "LATIN-1":
		enc = charmap.ISO8859_1
	case "WINDOWS-1252", "CP1252":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}

	return unicode.BOMOverride(enc.NewDecoder()), nil
}

// splitLines splits decoded content on "\n" and trims a trailing "\r" from
// each line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	raw := bytes.Split(data, []byte{'\n'})
	if len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}

	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = string(bytes.TrimSuffix(line, []byte{'\r'}))
	}
	return lines
}
