package xlsxwriter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/beer-review-extractor/internal/csvwriter"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.xlsx")

	err := WriteWorkbook(path,
		csvwriter.Table{Name: "beers.csv", Header: "Name,Style", Rows: []string{`"Sample","IPA"`}},
		csvwriter.Table{Name: "users.csv", Header: "Username", Rows: []string{`"user1"`, `"user2"`}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"beers", "users"}, f.GetSheetList())

	beers, err := f.GetRows("beers")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "Style"}, {"Sample", "IPA"}}, beers)

	users, err := f.GetRows("users")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Username"}, {"user1"}, {"user2"}}, users)
}

func TestWriteWorkbook_NoTables(t *testing.T) {
	require.Error(t, WriteWorkbook(filepath.Join(t.TempDir(), "x.xlsx")))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "beers", SheetName("beers.csv"))
	assert.Equal(t, "reviews", SheetName("out/reviews.csv"))
	assert.Equal(t, "users", SheetName("users"))
}
