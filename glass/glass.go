// Package glass models architectural glass buildups and converts them to and
// from gstr, a compact line notation used on schedules and shop drawings.
//
// The notation composes three variants. A pane is a thickness followed by a
// heat-treatment code ("6A"). A laminate joins panes with interlayer tokens
// using "&" ("6A&0.76PVB&6A"). An insulated unit joins lites with gas-gap
// tokens using "_" ("6A_12AIR_6A"), where each lite may itself be a laminate.
// Any buildup may carry an IGDB identifier wrapper ("#20(6A)", "#20x(...)"
// when flipped) and a metadata tail after "-" holding width, height and
// support markers ("-W3000H4000SUPPORT4").
//
// Parse picks the variant from the separators present; GStr renders the
// canonical text back. Parsing a rendered string yields an equivalent
// buildup, and rendering is idempotent.
package glass

import (
	"strings"

	"github.com/glasslab/gstr/glass/token"
)

// Layer is one stratum of a buildup: a glass-bearing layer (Mono, Laminated,
// Insulated) or a separator layer between them (Interlayer, GasGap). The set
// of implementations is closed.
type Layer interface {
	// NominalThickness is the build height in millimetres counted toward a
	// stack-up: interlayers report false inside a laminate sum. ok is false
	// when no thickness is known.
	NominalThickness() (float64, bool)

	// ActualThickness is the physical thickness in millimetres including
	// every layer. ok is false when no thickness is known.
	ActualThickness() (float64, bool)

	// GStr renders the layer as canonical gstr text.
	GStr() string

	// gstrInner renders the layer as it appears inside an enclosing
	// buildup: identifier wrapper kept, metadata tail dropped.
	gstrInner() string
}

// Buildup is a glass-bearing Layer that can stand on its own: it carries
// dimensions, a support condition and an optional IGDB identifier. Setting
// width, height or support on a composite writes through to every owned
// glass-bearing child.
type Buildup interface {
	Layer

	Width() (float64, bool)
	Height() (float64, bool)
	Support() (Support, bool)
	SetWidth(float64)
	SetHeight(float64)
	SetSupport(Support)

	// AspectRatio is the long side divided by the short side. It fails with
	// ErrNoDimensions unless both width and height are set.
	AspectRatio() (float64, error)

	IGDBCode() (string, bool)
	IGDBFlipped() bool
	SetIGDBCode(code string, flipped bool)
}

// Parse builds the buildup described by a gstr string. The variant is chosen
// from the raw text: a gas separator anywhere makes it an insulated unit, an
// interlayer separator or a LAM prefix makes it a laminate, anything else is
// a single pane. The same rule applies recursively to the lites of an
// insulated unit.
func Parse(s string) (Buildup, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, token.GasSeparator):
		return ParseInsulated(s)
	case strings.Contains(s, token.InterlayerSeparator) || strings.HasPrefix(s, token.LamTag):
		return ParseLaminated(s)
	default:
		return ParseMono(s)
	}
}
