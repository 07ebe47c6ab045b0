// Package token provides the lexical vocabulary of gstr notation and the
// scanners used to pick it apart: leading thickness numbers, marker-keyed
// metadata numbers, and bracket pairing for the identifier wrapper.
package token

import (
	"fmt"
	"regexp"
	"strconv"
)

// Protocol characters of gstr notation. A buildup string is dispatched on
// these separators rather than on a formal grammar: `_` splits the lites of
// an insulated unit, `&` splits the plies of a laminate, `-` starts the
// metadata tail, and `#code[x](...)` wraps a buildup with a catalog code.
const (
	IGDBStart    = "#"
	OpenBracket  = "("
	CloseBracket = ")"
	FlipSuffix   = "x"

	GasSeparator        = "_"
	InterlayerSeparator = "&"
	MetaSeparator       = "-"

	WidthMarker   = "W"
	HeightMarker  = "H"
	SupportMarker = "SUPPORT"

	// LamTag prefixes legacy catalog laminates that carry only an overall
	// thickness, e.g. "LAM16.89".
	LamTag = "LAM"
)

// markerNumber matches an optionally signed integer or decimal literal.
// Compiled per marker in NumberAfterMarker; markers are quoted so arbitrary
// marker text is safe.
const markerNumber = `([-+]?\d*\.?\d+)`

// LeadingNumber scans s for its leftmost numeric substring (digits with an
// optional fractional part) and returns everything after the match together
// with the parsed value. ok is false when s contains no digit. Text before
// the number is discarded, which is what the LAM-prefixed legacy forms rely
// on.
func LeadingNumber(s string) (rest string, n float64, ok bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return s, 0, false
	}

	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	// A dot belongs to the number only when digits follow it.
	if end+1 < len(s) && s[end] == '.' && isDigit(s[end+1]) {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
		}
	}

	n, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return s, 0, false
	}
	return s[end:], n, true
}

// NumberAfterMarker finds every occurrence of marker immediately followed by
// a numeric literal and returns the first or the last match per preferLast.
// The metadata tail is scanned this way: each of the W, H and SUPPORT markers
// independently, last occurrence winning.
func NumberAfterMarker(marker, s string, preferLast bool) (float64, bool) {
	re := regexp.MustCompile(regexp.QuoteMeta(marker) + markerNumber)
	matches := re.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, false
	}
	pick := matches[0]
	if preferLast {
		pick = matches[len(matches)-1]
	}
	n, err := strconv.ParseFloat(pick[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Pair is a matched pair of bracket indices in a scanned string.
type Pair struct {
	Open  int
	Close int
}

// BracketPairs pairs the parentheses of s in a single left-to-right scan.
// Each closing bracket pops the most recent open, so pairs appear in the
// order they are closed: innermost first, the outermost enclosing pair last.
// Unmatched brackets on either side are an error, never ignored.
func BracketPairs(s string) ([]Pair, error) {
	var stack []int
	var pairs []Pair
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("unmatched closing bracket at index %d", i)
			}
			pairs = append(pairs, Pair{Open: stack[len(stack)-1], Close: i})
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unmatched opening bracket at index %d", stack[0])
	}
	return pairs, nil
}

// FormatNumber renders a value in canonical gstr form: whole values collapse
// to their integer representation ("6", never "6.0"), fractional values keep
// the shortest decimal form that round-trips ("0.76", "13.2").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
