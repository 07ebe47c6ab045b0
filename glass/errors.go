package glass

import "errors"

// Parse and construction failures are classified by these sentinels so
// callers can branch with errors.Is. Context is joined at the point of
// detection; errors bubbling out of a nested lite parse are returned as-is.
var (
	// ErrMalformed indicates gstr text that does not fit the notation:
	// unmatched brackets, a broken identifier wrapper, an empty segment
	// between separators.
	ErrMalformed = errors.New("glass: malformed gstr")

	// ErrBadDescriptor indicates a heat-treatment code or a material not in
	// the enumerated set for its layer kind.
	ErrBadDescriptor = errors.New("glass: descriptor not in allowed set")

	// ErrMissingThickness indicates a layer token with no numeric thickness.
	ErrMissingThickness = errors.New("glass: no thickness in layer token")

	// ErrLayerCount indicates a direct construction where the separator
	// layers do not number one less than the glass layers.
	ErrLayerCount = errors.New("glass: separator layers must number one less than glass layers")

	// ErrNoDimensions indicates an aspect-ratio request on a buildup whose
	// width or height was never set.
	ErrNoDimensions = errors.New("glass: width and height not both set")
)
