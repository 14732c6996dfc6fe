// =============================================================================
// Beer Review Extractor - Field Extractor
// =============================================================================
//
// A review line looks like a flattened object literal:
//
//   {'beer/name': 'Sample', 'beer/beerId': '2', ..., 'review/profileName': 'user1'}
//
// The line is not parsed as JSON. A small scanner walks the line and picks
// out every assignment of the shape
//
//   <boundary> '<namespace>/<field>' : <space>* '<value>' <terminator>
//
// where boundary is a brace, a comma, whitespace or the start of the line,
// either quote style may be used, and terminator is a comma or a closing
// brace. Only the field name (namespace dropped) and the value are kept.
//
// A value ends at the first quote that is directly followed by a terminator,
// so quotes and commas inside a value survive as long as they do not appear
// in that exact combination.
//
// =============================================================================

package lineparser

import (
	"unicode"
	"unicode/utf8"

	"github.com/ginjaninja78/beer-review-extractor/internal/types"
)

// ExtractFields returns the key/value pairs of a data line in source order.
// A truncated or malformed line yields a shorter slice, possibly empty.
func ExtractFields(line string) []types.FieldPair {
	var pairs []types.FieldPair

	for i := 0; i < len(line); {
		key, next, ok := scanKey(line, i)
		if !ok {
			i++
			continue
		}

		value, end, ok := scanQuotedValue(line, next)
		if !ok {
			i++
			continue
		}

		pairs = append(pairs, types.FieldPair{Key: key, Value: value})
		i = end
	}

	return pairs
}

// ExtractKeys returns the field names declared on a header line. Values on
// that line carry no meaning, so anything up to the next terminator is
// accepted in place of a quoted value.
func ExtractKeys(line string) []string {
	var keys []string

	for i := 0; i < len(line); {
		key, next, ok := scanKey(line, i)
		if !ok {
			i++
			continue
		}

		end, ok := skipToTerminator(line, next)
		if !ok {
			break
		}

		keys = append(keys, key)
		i = end
	}

	return keys
}

// scanKey tries to read "'ns/field':" starting at i. On success it returns
// the field name and the index just past the colon.
func scanKey(line string, i int) (string, int, bool) {
	if !isBoundary(line, i) {
		return "", 0, false
	}

	quote := line[i]
	if !isQuote(quote) {
		return "", 0, false
	}

	pos := i + 1
	nsEnd := scanWord(line, pos)
	if nsEnd == pos || nsEnd >= len(line) || line[nsEnd] != '/' {
		return "", 0, false
	}

	fieldStart := nsEnd + 1
	fieldEnd := scanWord(line, fieldStart)
	if fieldEnd == fieldStart || fieldEnd+1 >= len(line) {
		return "", 0, false
	}

	if line[fieldEnd] != quote || line[fieldEnd+1] != ':' {
		return "", 0, false
	}

	return line[fieldStart:fieldEnd], fieldEnd + 2, true
}

// scanQuotedValue reads optional spaces, an opening quote and the value up to
// the first quote followed by a terminator. It returns the value and the index
// just past the terminator.
func scanQuotedValue(line string, i int) (string, int, bool) {
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i >= len(line) || !isQuote(line[i]) {
		return "", 0, false
	}

	start := i + 1
	for j := start; j+1 < len(line); j++ {
		if isQuote(line[j]) && isTerminator(line[j+1]) {
			return line[start:j], j + 2, true
		}
	}

	return "", 0, false
}

// skipToTerminator returns the index just past the next terminator, which
// must be preceded by at least one character.
func skipToTerminator(line string, i int) (int, bool) {
	for j := i + 1; j < len(line); j++ {
		if isTerminator(line[j]) {
			return j + 1, true
		}
	}
	return 0, false
}

// scanWord returns the end of the run of word characters starting at i.
// Word characters are Unicode letters, numbers and the underscore.
func scanWord(line string, i int) int {
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !isWord(r) {
			break
		}
		i += size
	}
	return i
}

func isBoundary(line string, i int) bool {
	if i == 0 {
		return true
	}
	c := line[i-1]
	return c == '{' || c == ',' || isSpace(c)
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

func isTerminator(c byte) bool {
	return c == ',' || c == '}'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
