package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Layout.ReviewStartIndex)
	assert.Equal(t, 11, cfg.Layout.ProfileNameIndex)
	assert.Equal(t, 0, cfg.Layout.BeerNameIndex)
	assert.True(t, cfg.Layout.ShouldVerifyKeys())
	assert.Equal(t, 12, cfg.Layout.MinPairs())
	assert.Equal(t, "UTF-8", cfg.Input.Encoding)
	assert.Equal(t, "beers.csv", cfg.Output.BeersFile)
	assert.Equal(t, "reviews.csv", cfg.Output.ReviewsFile)
	assert.Equal(t, "users.csv", cfg.Output.UsersFile)
	assert.False(t, cfg.Output.WriteToCWD)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 100000, cfg.ProgressInterval)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
layout:
  review_start_index: 4
  profile_name_index: 9
  verify_keys: false
input:
  encoding: ISO-8859-1
output:
  write_to_cwd: true
  workbook: reviews.xlsx
logging:
  level: debug
progress_interval: 10
`))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Layout.ReviewStartIndex)
	assert.Equal(t, 9, cfg.Layout.ProfileNameIndex)
	assert.False(t, cfg.Layout.ShouldVerifyKeys())
	assert.Equal(t, "ISO-8859-1", cfg.Input.Encoding)
	assert.True(t, cfg.Output.WriteToCWD)
	assert.Equal(t, "reviews.xlsx", cfg.Output.Workbook)
	assert.Equal(t, "beers.csv", cfg.Output.BeersFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.ProgressInterval)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "layout: [unclosed"},
		{"bad log level", "logging:\n  level: loud\n"},
		{"negative interval", "progress_interval: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  summary: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Summary)
}

func TestParse_ExplicitZeroIndexIsKept(t *testing.T) {
	cfg, err := Parse([]byte("layout:\n  review_start_index: 0\n  profile_name_index: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Layout.ReviewStartIndex)
	assert.Equal(t, 0, cfg.Layout.ProfileNameIndex)
}

func TestParse_AbsentIndicesUseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("layout:\n  beer_name_index: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Layout.ReviewStartIndex)
	assert.Equal(t, 11, cfg.Layout.ProfileNameIndex)
	assert.Equal(t, 1, cfg.Layout.BeerNameIndex)
	assert.True(t, cfg.Layout.ShouldVerifyKeys())
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
