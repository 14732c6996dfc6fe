// =============================================================================
// Beer Review Extractor - XLSX Workbook Export
// =============================================================================
//
// This module writes the finished CSV tables into a single spreadsheet, one
// sheet per table. It is an optional extra; the CSV files stay the primary
// output.
//
// WORKBOOK STRUCTURE:
//
//   | Sheet    | Row 1               | Rows 2..N             |
//   |----------|---------------------|-----------------------|
//   | beers    | Name,Style,...      | one row per beer      |
//   | reviews  | BeerName,Rating,... | one row per review    |
//   | users    | Username            | one row per user      |
//
//   Cell values are unquoted. Rows are streamed, so large review tables do
//   not have to be held as cell objects in memory.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/beer-review-extractor/internal/csvwriter"
)

// maxSheetRows is the row limit of a single worksheet.
const maxSheetRows = 1048576

// defaultSheet is the sheet every new workbook starts with.
const defaultSheet = "Sheet1"

// WriteWorkbook writes each table to its own sheet of the workbook at path.
// Sheet names are the table names without their extension.
func WriteWorkbook(path string, tables ...csvwriter.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, table := range tables {
		if len(table.Rows)+1 > maxSheetRows {
			return fmt.Errorf("table %s has %d rows, a sheet holds at most %d", table.Name, len(table.Rows), maxSheetRows-1)
		}

		name := SheetName(table.Name)
		index, err := f.NewSheet(name)
		if err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}

		if err := writeSheet(f, name, table); err != nil {
			return err
		}
	}

	if SheetName(tables[0].Name) != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// writeSheet streams the header and rows of table into sheet.
func writeSheet(f *excelize.File, sheet string, table csvwriter.Table) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("failed to open sheet %s: %w", sheet, err)
	}

	if err := sw.SetRow("A1", toCells(table.Columns())); err != nil {
		return fmt.Errorf("failed to write header of sheet %s: %w", sheet, err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toCells(csvwriter.SplitRow(row))); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, sheet, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet %s: %w", sheet, err)
	}

	return nil
}

// SheetName derives a sheet name from a table file name.
func SheetName(tableName string) string {
	return strings.TrimSuffix(filepath.Base(tableName), filepath.Ext(tableName))
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
