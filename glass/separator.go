package glass

import (
	"fmt"
	"strings"

	"github.com/glasslab/gstr/glass/token"
)

// Interlayer is the polymer sheet bonding two plies of a laminate. It adds
// to the actual thickness of the laminate but not to its nominal stack-up.
type Interlayer struct {
	material  InterlayerMaterial
	thickness *float64
}

// NewInterlayer builds an interlayer from a material in the enumerated set
// and a foil thickness in millimetres.
func NewInterlayer(m InterlayerMaterial, thickness float64) (*Interlayer, error) {
	if !m.valid() {
		return nil, fmt.Errorf("interlayer material %q: %w", string(m), ErrBadDescriptor)
	}
	return &Interlayer{material: m, thickness: &thickness}, nil
}

// ParseInterlayer reads an interlayer token such as "0.76PVB".
func ParseInterlayer(s string) (*Interlayer, error) {
	s = strings.TrimSpace(s)
	rest, t, ok := token.LeadingNumber(s)
	if !ok {
		return nil, fmt.Errorf("interlayer %q: %w", s, ErrMissingThickness)
	}
	m := InterlayerMaterial(rest)
	if !m.valid() {
		return nil, fmt.Errorf("interlayer material %q: %w", rest, ErrBadDescriptor)
	}
	return &Interlayer{material: m, thickness: &t}, nil
}

func (il *Interlayer) Material() InterlayerMaterial { return il.material }

func (il *Interlayer) Thickness() (float64, bool) {
	if il.thickness == nil {
		return 0, false
	}
	return *il.thickness, true
}

func (il *Interlayer) NominalThickness() (float64, bool) { return il.Thickness() }
func (il *Interlayer) ActualThickness() (float64, bool)  { return il.Thickness() }

func (il *Interlayer) GStr() string { return il.gstrInner() }

func (il *Interlayer) gstrInner() string {
	t := ""
	if il.thickness != nil {
		t = token.FormatNumber(*il.thickness)
	}
	return t + string(il.material)
}

// GasGap is the spacer cavity between the lites of an insulated unit.
type GasGap struct {
	gas       Gas
	thickness *float64
}

// NewGasGap builds a gas gap from a fill gas in the enumerated set and a
// cavity width in millimetres.
func NewGasGap(g Gas, thickness float64) (*GasGap, error) {
	if !g.valid() {
		return nil, fmt.Errorf("gas %q: %w", string(g), ErrBadDescriptor)
	}
	return &GasGap{gas: g, thickness: &thickness}, nil
}

// ParseGasGap reads a gas-gap token such as "12AIR" or "13.2AR".
func ParseGasGap(s string) (*GasGap, error) {
	s = strings.TrimSpace(s)
	rest, t, ok := token.LeadingNumber(s)
	if !ok {
		return nil, fmt.Errorf("gas gap %q: %w", s, ErrMissingThickness)
	}
	g := Gas(rest)
	if !g.valid() {
		return nil, fmt.Errorf("gas %q: %w", rest, ErrBadDescriptor)
	}
	return &GasGap{gas: g, thickness: &t}, nil
}

func (gg *GasGap) Gas() Gas { return gg.gas }

func (gg *GasGap) Thickness() (float64, bool) {
	if gg.thickness == nil {
		return 0, false
	}
	return *gg.thickness, true
}

func (gg *GasGap) NominalThickness() (float64, bool) { return gg.Thickness() }
func (gg *GasGap) ActualThickness() (float64, bool)  { return gg.Thickness() }

func (gg *GasGap) GStr() string { return gg.gstrInner() }

func (gg *GasGap) gstrInner() string {
	t := ""
	if gg.thickness != nil {
		t = token.FormatNumber(*gg.thickness)
	}
	return t + string(gg.gas)
}
