package lineparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/beer-review-extractor/internal/config"
	"github.com/ginjaninja78/beer-review-extractor/internal/types"
)

const sampleLine = `{'beer/name': 'Sample', 'beer/style': 'IPA', 'beer/ABV': '5.0', 'beer/brewerId': '1', 'beer/beerId': '2', 'review/rating': '4.0', 'review/text': 'Good', 'review/appearance':'4','review/aroma':'4','review/palate':'4','review/taste':'4','review/profileName': 'user1'}`

var sampleKeys = []string{
	"name", "style", "ABV", "brewerId", "beerId",
	"rating", "text", "appearance", "aroma", "palate", "taste", "profileName",
}

func TestExtractFields_SampleLine(t *testing.T) {
	pairs := ExtractFields(sampleLine)

	require.Len(t, pairs, 12)
	assert.Equal(t, sampleKeys, types.Keys(pairs))
	assert.Equal(t, types.FieldPair{Key: "name", Value: "Sample"}, pairs[0])
	assert.Equal(t, types.FieldPair{Key: "appearance", Value: "4"}, pairs[7])
	assert.Equal(t, types.FieldPair{Key: "profileName", Value: "user1"}, pairs[11])
}

func TestExtractFields(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []types.FieldPair
	}{
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "double quoted value",
			line: `{'beer/name': "Dogfish 60", 'beer/ABV': '6.0'}`,
			want: []types.FieldPair{{Key: "name", Value: "Dogfish 60"}, {Key: "ABV", Value: "6.0"}},
		},
		{
			name: "double quoted keys",
			line: `{"beer/name": "Dogfish", "beer/ABV": "6.0"}`,
			want: []types.FieldPair{{Key: "name", Value: "Dogfish"}, {Key: "ABV", Value: "6.0"}},
		},
		{
			name: "apostrophe inside value",
			line: `{'review/text': 'It's fine, really', 'review/taste': '3'}`,
			want: []types.FieldPair{{Key: "text", Value: "It's fine, really"}, {Key: "taste", Value: "3"}},
		},
		{
			name: "empty value",
			line: `{'beer/style': '', 'beer/ABV': '5'}`,
			want: []types.FieldPair{{Key: "style", Value: ""}, {Key: "ABV", Value: "5"}},
		},
		{
			name: "truncated after second field",
			line: `{'beer/name': 'A', 'beer/style': 'B', 'beer/ABV': '5`,
			want: []types.FieldPair{{Key: "name", Value: "A"}, {Key: "style", Value: "B"}},
		},
		{
			name: "key without namespace is ignored",
			line: `{'name': 'A', 'beer/style': 'B'}`,
			want: []types.FieldPair{{Key: "style", Value: "B"}},
		},
		{
			name: "key glued to a word is ignored",
			line: `{x'beer/name': 'A', 'beer/style': 'B'}`,
			want: []types.FieldPair{{Key: "style", Value: "B"}},
		},
		{
			name: "non-ASCII field name",
			line: `{'beer/name': 'A', 'beer/goût': 'x', 'beer/ABV': '5'}`,
			want: []types.FieldPair{{Key: "name", Value: "A"}, {Key: "goût", Value: "x"}, {Key: "ABV", Value: "5"}},
		},
		{
			name: "trailing carriage return",
			line: "{'beer/name': 'A'}\r",
			want: []types.FieldPair{{Key: "name", Value: "A"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFields(tt.line)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractKeys(t *testing.T) {
	assert.Equal(t, sampleKeys, ExtractKeys(sampleLine))

	// Declaration lines need not carry quoted values.
	line := `{'beer/name': x, 'beer/ABV': 5.0, 'review/profileName': -}`
	assert.Equal(t, []string{"name", "ABV", "profileName"}, ExtractKeys(line))

	assert.Equal(t, []string{"name", "goût", "évaluation"},
		ExtractKeys(`{'beer/name': '', 'beer/goût': '', 'review/évaluation': ''}`))

	assert.Empty(t, ExtractKeys("not a header"))
	assert.Empty(t, ExtractKeys(""))
}

func TestDeriveHeader(t *testing.T) {
	header, err := DeriveHeader(sampleKeys)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Name", "Style", "ABV", "BrewerId", "BeerId",
		"Rating", "Text", "Appearance", "Aroma", "Palate", "Taste", "ProfileName",
	}, header.Names)
	assert.Equal(t, sampleKeys, header.Keys)

	assert.Equal(t, "Name,Style,ABV,BrewerId,BeerId", header.BeerColumns(5))
	assert.Equal(t, "BeerName,Rating,Text,Appearance,Aroma,Palate,Taste,ProfileName", header.ReviewColumns(5))
}

func TestDeriveHeader_UnicodeFirstRune(t *testing.T) {
	header, err := DeriveHeader([]string{"évaluation", "_x", "ñame"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Évaluation", "_x", "Ñame"}, header.Names)
}

func TestDeriveHeader_Empty(t *testing.T) {
	_, err := DeriveHeader(nil)
	require.ErrorIs(t, err, ErrEmptyHeader)
}

func newTestSplitter(t *testing.T) *Splitter {
	t.Helper()
	header, err := DeriveHeader(sampleKeys)
	require.NoError(t, err)
	return NewSplitter(config.Default().Layout, header)
}

func TestSplitter_Parsed(t *testing.T) {
	s := newTestSplitter(t)

	out := s.Split(1, ExtractFields(sampleLine))
	require.Equal(t, Parsed, out.Kind)
	require.Nil(t, out.Err)

	rec := out.Record
	assert.Equal(t, 1, rec.Line)
	assert.Equal(t, "Sample", rec.BeerName)
	assert.Equal(t, "user1", rec.Username)
	assert.Equal(t, []string{"Sample", "IPA", "5.0", "1", "2"}, types.Values(rec.Beer))
	assert.Equal(t, []string{"Sample", "4.0", "Good", "4", "4", "4", "4", "user1"}, types.Values(rec.Review))
	assert.Equal(t, "name", rec.Review[0].Key)
}

func TestSplitter_BeerSliceIsIsolated(t *testing.T) {
	s := newTestSplitter(t)
	out := s.Split(1, ExtractFields(sampleLine))
	require.Equal(t, Parsed, out.Kind)

	// Appending to the beer prefix must not clobber the review attributes.
	_ = append(out.Record.Beer, types.FieldPair{Key: "x", Value: "y"})
	assert.Equal(t, "4.0", out.Record.Review[1].Value)
}

func TestSplitter_Truncated(t *testing.T) {
	s := newTestSplitter(t)

	pairs := ExtractFields(sampleLine)
	for n := 0; n < 12; n++ {
		out := s.Split(3, pairs[:n])
		assert.Equal(t, Truncated, out.Kind, "pairs=%d", n)
		assert.Nil(t, out.Err)
	}
}

func TestSplitter_FatalOnKeyDrift(t *testing.T) {
	s := newTestSplitter(t)

	pairs := ExtractFields(sampleLine)
	pairs[6].Key = "comment"

	out := s.Split(7, pairs)
	require.Equal(t, Fatal, out.Kind)
	require.NotNil(t, out.Err)
	assert.Equal(t, 7, out.Err.Line)
	assert.True(t, errors.Is(out.Err, ErrKeyMismatch))
	assert.Contains(t, out.Err.Error(), "line 7")
}

func TestSplitter_FatalOnExtraFields(t *testing.T) {
	s := newTestSplitter(t)

	pairs := append(ExtractFields(sampleLine), types.FieldPair{Key: "extra", Value: "1"})
	out := s.Split(2, pairs)
	require.Equal(t, Fatal, out.Kind)
	assert.ErrorIs(t, out.Err, ErrKeyMismatch)
}

func TestSplitter_FatalOnMissingFields(t *testing.T) {
	header, err := DeriveHeader(append(append([]string{}, sampleKeys...), "time"))
	require.NoError(t, err)
	s := NewSplitter(config.Default().Layout, header)

	out := s.Split(4, ExtractFields(sampleLine))
	require.Equal(t, Fatal, out.Kind)
	assert.Equal(t, 4, out.Err.Line)
	assert.ErrorIs(t, out.Err, ErrKeyMismatch)
}

func TestSplitter_VerifyKeysDisabled(t *testing.T) {
	layout := config.Default().Layout
	off := false
	layout.VerifyKeys = &off

	s := NewSplitter(layout, types.Header{})
	pairs := ExtractFields(sampleLine)
	pairs[6].Key = "comment"

	out := s.Split(1, pairs)
	assert.Equal(t, Parsed, out.Kind)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "parsed", Parsed.String())
	assert.Equal(t, "truncated", Truncated.String())
	assert.Equal(t, "fatal", Fatal.String())
	assert.Equal(t, "OutcomeKind(9)", OutcomeKind(9).String())
}
