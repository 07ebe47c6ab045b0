package glass

import (
	"fmt"
	"strings"

	"github.com/glasslab/gstr/glass/token"
)

// Mono is a single glass pane: a thickness and a heat-treatment code. It is
// a complete buildup on its own and also the ply of a laminate.
type Mono struct {
	meta
	heat      HeatTreatment
	thickness *float64
}

// NewMono builds a pane from a heat treatment in the enumerated set and a
// thickness in millimetres.
func NewMono(heat HeatTreatment, thickness float64) (*Mono, error) {
	if !heat.valid() {
		return nil, fmt.Errorf("heat treatment %q: %w", string(heat), ErrBadDescriptor)
	}
	return &Mono{heat: heat, thickness: &thickness}, nil
}

// ParseMono reads a pane such as "6A", with optional identifier wrapper and
// metadata tail.
func ParseMono(s string) (*Mono, error) {
	core, width, height, support, err := splitMeta(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	core, code, flipped, err := splitIGDB(core, true)
	if err != nil {
		return nil, err
	}
	rest, t, ok := token.LeadingNumber(core)
	if !ok {
		return nil, fmt.Errorf("pane %q: %w", core, ErrMissingThickness)
	}
	heat := HeatTreatment(rest)
	if !heat.valid() {
		return nil, fmt.Errorf("heat treatment %q: %w", rest, ErrBadDescriptor)
	}
	m := &Mono{heat: heat, thickness: &t}
	m.SetIGDBCode(code, flipped)
	applyMeta(m, width, height, support)
	return m, nil
}

func (m *Mono) Heat() HeatTreatment { return m.heat }

// HeatTreated reports whether the pane received any thermal strengthening
// beyond annealing.
func (m *Mono) HeatTreated() bool {
	switch m.heat {
	case HeatStrengthened, HeatToughened, HeatSoaked:
		return true
	}
	return false
}

func (m *Mono) Thickness() (float64, bool) {
	if m.thickness == nil {
		return 0, false
	}
	return *m.thickness, true
}

func (m *Mono) NominalThickness() (float64, bool) { return m.Thickness() }
func (m *Mono) ActualThickness() (float64, bool)  { return m.Thickness() }

func (m *Mono) GStr() string { return m.appendMeta(m.gstrInner()) }

func (m *Mono) gstrInner() string {
	t := ""
	if m.thickness != nil {
		t = token.FormatNumber(*m.thickness)
	}
	return m.wrapIGDB(t + string(m.heat))
}
