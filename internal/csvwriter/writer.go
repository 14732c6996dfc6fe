// =============================================================================
// Beer Review Extractor - CSV Writer Module
// =============================================================================
//
// This module renders extracted fields as CSV rows and writes finished tables
// to disk.
//
// ROW FORMAT:
//   Every value is wrapped in double quotes and the values are joined with
//   commas:
//
//     "Sample","IPA","5.0","1","2"
//
//   Nothing is escaped. A value that itself contains a double quote produces
//   a malformed row; that is a known limitation of the format, not something
//   the writer tries to repair.
//
// FILE FORMAT:
//   One header row, then one line per data row, joined with "\n". There is no
//   trailing newline.
//
// =============================================================================

package csvwriter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/beer-review-extractor/internal/types"
)

// =============================================================================
// ROW FORMATTING
// =============================================================================

// FormatRow renders the values of pairs as one quoted, comma-joined row.
func FormatRow(pairs []types.FieldPair) string {
	var b strings.Builder

	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(p.Value)
		b.WriteByte('"')
	}

	return b.String()
}

// FormatValue renders a single value the same way FormatRow renders each
// column. Used for single-column tables such as users.csv.
func FormatValue(value string) string {
	return `"` + value + `"`
}

// SplitRow reverses FormatRow for rows whose values contain no `","`
// sequence. It is used to lay rows out as spreadsheet cells.
func SplitRow(row string) []string {
	if len(row) >= 2 && strings.HasPrefix(row, `"`) && strings.HasSuffix(row, `"`) {
		return strings.Split(row[1:len(row)-1], `","`)
	}
	return strings.Split(row, ",")
}

// =============================================================================
// TABLES
// =============================================================================

// Table is a finished output table.
type Table struct {
	// Name is the output file name, e.g. "beers.csv".
	Name string

	// Header is the header row, already comma-joined.
	Header string

	// Rows are the data rows, already formatted.
	Rows []string
}

// Columns returns the header split into column names.
func (t Table) Columns() []string {
	return strings.Split(t.Header, ",")
}

// Render returns the full file content of the table.
func (t Table) Render() []byte {
	var b strings.Builder
	b.WriteString(t.Header)
	for _, row := range t.Rows {
		b.WriteByte('\n')
		b.WriteString(row)
	}
	return []byte(b.String())
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// WriteTable writes the table into dir under its Name and returns the path.
//
// The content goes to a temporary file in dir first and is renamed into
// place once it is complete, so a failure never leaves a half-written table
// behind.
func WriteTable(dir string, table Table) (string, error) {
	paths, err := WriteTables(dir, table)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// WriteTables writes every table into dir and returns the written paths in
// the same order.
//
// All tables are staged as temporary files before any of them is renamed
// into place. If staging fails for one table, every staged file is removed
// and no existing table in dir is touched.
func WriteTables(dir string, tables ...Table) ([]string, error) {
	staged := make([]string, 0, len(tables))
	cleanup := func() {
		for _, tmpPath := range staged {
			os.Remove(tmpPath)
		}
	}

	for _, table := range tables {
		tmpPath, err := stageTable(dir, table)
		if err != nil {
			cleanup()
			return nil, err
		}
		staged = append(staged, tmpPath)
	}

	paths := make([]string, 0, len(tables))
	for i, table := range tables {
		target := filepath.Join(dir, table.Name)
		if err := os.Rename(staged[i], target); err != nil {
			staged = staged[i:]
			cleanup()
			return paths, fmt.Errorf("failed to move %s into place: %w", table.Name, err)
		}
		paths = append(paths, target)
	}

	return paths, nil
}

// stageTable writes the rendered table to a temporary file in dir and returns
// its path. The temporary file is removed on every failure path.
func stageTable(dir string, table Table) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+table.Name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", table.Name, err)
	}
	tmpPath := tmp.Name()

	staged := false
	defer func() {
		if !staged {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(table.Render()); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", table.Name, err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", table.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", table.Name, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", table.Name, err)
	}

	staged = true
	return tmpPath, nil
}
