package glass

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/glasslab/gstr/glass/token"
)

// meta holds what every standalone buildup carries beyond its layers:
// physical dimensions, the support condition and the IGDB identifier.
// Unset values stay nil and render as nothing.
type meta struct {
	width    *float64
	height   *float64
	support  *Support
	igdbCode string
	igdbFlip bool
}

func (m *meta) Width() (float64, bool) {
	if m.width == nil {
		return 0, false
	}
	return *m.width, true
}

func (m *meta) Height() (float64, bool) {
	if m.height == nil {
		return 0, false
	}
	return *m.height, true
}

func (m *meta) Support() (Support, bool) {
	if m.support == nil {
		return 0, false
	}
	return *m.support, true
}

func (m *meta) SetWidth(w float64)   { m.width = &w }
func (m *meta) SetHeight(h float64)  { m.height = &h }
func (m *meta) SetSupport(s Support) { m.support = &s }
func (m *meta) IGDBFlipped() bool    { return m.igdbFlip }

func (m *meta) IGDBCode() (string, bool) {
	return m.igdbCode, m.igdbCode != ""
}

// SetIGDBCode records the IGDB identifier and its flip flag. An empty code
// clears the identifier.
func (m *meta) SetIGDBCode(code string, flipped bool) {
	m.igdbCode = code
	m.igdbFlip = flipped
}

func (m *meta) AspectRatio() (float64, error) {
	if m.width == nil || m.height == nil {
		return 0, ErrNoDimensions
	}
	w, h := *m.width, *m.height
	if w > h {
		return w / h, nil
	}
	return h / w, nil
}

// wrapIGDB puts the identifier wrapper around rendered core text, or returns
// it unchanged when no code is set.
func (m *meta) wrapIGDB(core string) string {
	if m.igdbCode == "" {
		return core
	}
	flip := ""
	if m.igdbFlip {
		flip = token.FlipSuffix
	}
	return token.IGDBStart + m.igdbCode + flip + token.OpenBracket + core + token.CloseBracket
}

// appendMeta appends the metadata tail to rendered text. Markers render in
// the fixed order width, height, support; nothing is appended when all three
// are unset.
func (m *meta) appendMeta(s string) string {
	var tail strings.Builder
	if m.width != nil {
		tail.WriteString(token.WidthMarker)
		tail.WriteString(token.FormatNumber(*m.width))
	}
	if m.height != nil {
		tail.WriteString(token.HeightMarker)
		tail.WriteString(token.FormatNumber(*m.height))
	}
	if m.support != nil {
		tail.WriteString(token.SupportMarker)
		tail.WriteString(strconv.Itoa(int(*m.support)))
	}
	if tail.Len() == 0 {
		return s
	}
	return s + token.MetaSeparator + tail.String()
}

// splitMeta cuts the metadata tail off a raw gstr string. Everything after
// the first metadata separator is scanned for width, height and support
// markers, which may appear in any order; when a marker repeats, the last
// occurrence wins. The support condition counts supported edges, so a
// fractional value is rejected rather than truncated.
func splitMeta(s string) (core string, width, height *float64, support *Support, err error) {
	i := strings.Index(s, token.MetaSeparator)
	if i < 0 {
		return s, nil, nil, nil, nil
	}
	tail := s[i+1:]
	if w, ok := token.NumberAfterMarker(token.WidthMarker, tail, true); ok {
		width = &w
	}
	if h, ok := token.NumberAfterMarker(token.HeightMarker, tail, true); ok {
		height = &h
	}
	if n, ok := token.NumberAfterMarker(token.SupportMarker, tail, true); ok {
		if n != math.Trunc(n) {
			return "", nil, nil, nil, fmt.Errorf("%w: support condition %s is not a whole number in %q", ErrMalformed, token.FormatNumber(n), tail)
		}
		sv := Support(int(n))
		support = &sv
	}
	return s[:i], width, height, support, nil
}

// splitIGDB strips the identifier wrapper from a metadata-free core. A
// wrapper is recognized when the string starts with the identifier prefix,
// ends with a closing bracket, and the first opening bracket closes last.
// Unbalanced brackets anywhere are rejected.
//
// When the shape matches but the first pair is not outermost, leaf parses
// reject the string: brackets in a pane token can only be a wrapper.
// Composite parses pass it through instead, since their cores may begin and
// end with wrapped children, as in "#20(6A)_12AIR_#30(6A)".
func splitIGDB(s string, leaf bool) (core, code string, flipped bool, err error) {
	wrapped := strings.HasPrefix(s, token.IGDBStart) && strings.HasSuffix(s, token.CloseBracket)
	if !wrapped && !strings.ContainsAny(s, token.OpenBracket+token.CloseBracket) {
		return s, "", false, nil
	}
	pairs, perr := token.BracketPairs(s)
	if perr != nil {
		return "", "", false, fmt.Errorf("%w: %v", ErrMalformed, perr)
	}
	if !wrapped {
		return s, "", false, nil
	}
	outer := pairs[len(pairs)-1]
	if strings.Index(s, token.OpenBracket) != outer.Open {
		if leaf {
			return "", "", false, fmt.Errorf("%w: identifier wrapper is not the outermost bracket pair in %q", ErrMalformed, s)
		}
		return s, "", false, nil
	}
	tag := s[len(token.IGDBStart):outer.Open]
	flipped = strings.HasSuffix(tag, token.FlipSuffix)
	code = strings.TrimSuffix(tag, token.FlipSuffix)
	if code == "" {
		return "", "", false, fmt.Errorf("%w: empty identifier code in %q", ErrMalformed, s)
	}
	return s[outer.Open+1 : outer.Close], code, flipped, nil
}
