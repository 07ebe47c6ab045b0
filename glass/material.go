package glass

// HeatTreatment is the thermal processing code carried after the thickness
// of a pane, e.g. the "A" in "6A".
type HeatTreatment string

const (
	HeatNone         HeatTreatment = ""   // unspecified; renders as nothing
	HeatAnnealed     HeatTreatment = "A"  // annealed float glass
	HeatStrengthened HeatTreatment = "HS" // heat-strengthened
	HeatToughened    HeatTreatment = "T"  // fully toughened
	HeatSoaked       HeatTreatment = "TS" // toughened and heat-soak tested
)

func (h HeatTreatment) valid() bool {
	switch h {
	case HeatNone, HeatAnnealed, HeatStrengthened, HeatToughened, HeatSoaked:
		return true
	}
	return false
}

// Name returns the long form of the treatment code for reports and hovers.
func (h HeatTreatment) Name() string {
	switch h {
	case HeatAnnealed:
		return "annealed"
	case HeatStrengthened:
		return "heat-strengthened"
	case HeatToughened:
		return "toughened"
	case HeatSoaked:
		return "toughened, heat-soak tested"
	}
	return "untreated"
}

// InterlayerMaterial is the polymer bonding the plies of a laminate.
type InterlayerMaterial string

const (
	PVB InterlayerMaterial = "PVB" // polyvinyl butyral
	SG  InterlayerMaterial = "SG"  // stiff structural ionoplast
	EVA InterlayerMaterial = "EVA" // ethylene-vinyl acetate
)

func (m InterlayerMaterial) valid() bool {
	switch m {
	case PVB, SG, EVA:
		return true
	}
	return false
}

// Gas is the fill of the cavity between the lites of an insulated unit.
type Gas string

const (
	Air     Gas = "AIR"
	Argon   Gas = "AR"
	Xenon   Gas = "XE"
	Krypton Gas = "KR"
)

func (g Gas) valid() bool {
	switch g {
	case Air, Argon, Xenon, Krypton:
		return true
	}
	return false
}

// Name returns the long form of the gas code.
func (g Gas) Name() string {
	switch g {
	case Air:
		return "air"
	case Argon:
		return "argon"
	case Xenon:
		return "xenon"
	case Krypton:
		return "krypton"
	}
	return string(g)
}

// Support is the number of supported edges of a glazed buildup.
type Support int

const (
	SupportTwoEdge  Support = 2
	SupportFourEdge Support = 4
)

// Catalog thicknesses in millimetres. They describe what is commonly
// manufactured; the model accepts any non-negative thickness, and tooling
// built on top warns when a value falls outside these sets.
var (
	// PaneThicknesses lists stock float glass thicknesses.
	PaneThicknesses = []float64{4, 5, 6, 8, 10, 12, 15, 19, 25}

	// InterlayerThicknesses lists stock polymer foil gauges.
	InterlayerThicknesses = []float64{0.38, 0.76, 1.52}

	// GasGapThicknesses lists stock spacer widths (15/32", 1/2", 9/16").
	GasGapThicknesses = []float64{12, 13.2, 14}
)

// StandardThickness reports whether t appears in the given catalog set.
func StandardThickness(t float64, set []float64) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}
