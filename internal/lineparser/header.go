package lineparser

import (
	"unicode"
	"unicode/utf8"

	"github.com/ginjaninja78/beer-review-extractor/internal/types"
)

// DeriveHeader builds the column names from the keys declared on line 0.
// Each name is the key with its first rune upper-cased.
//
// An empty key list is ErrEmptyHeader: every later index into the header
// would be meaningless, so the pass must not continue.
func DeriveHeader(keys []string) (types.Header, error) {
	if len(keys) == 0 {
		return types.Header{}, ErrEmptyHeader
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = capitalize(k)
	}

	return types.Header{
		Names: names,
		Keys:  append([]string(nil), keys...),
	}, nil
}

// capitalize upper-cases the first rune of s and leaves the rest alone.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
