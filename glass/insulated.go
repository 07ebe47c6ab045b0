package glass

import (
	"fmt"
	"strings"

	"github.com/glasslab/gstr/glass/token"
)

// Insulated is a sealed unit of lites with a gas-filled cavity between each
// neighbouring pair, e.g. "6A_12AIR_6A". A lite is any glass-bearing
// buildup, so laminates nest: "6A_12AIR_6A&0.76PVB&6A".
type Insulated struct {
	multiLayer
}

// NewInsulated builds an insulated unit from lites and the gas gaps between
// them. Unless both are empty, the gaps must number one less than the lites.
func NewInsulated(lites []Buildup, gaps []*GasGap) (*Insulated, error) {
	if len(lites) > 0 && len(gaps) != len(lites)-1 {
		return nil, fmt.Errorf("%d lites with %d gas gaps: %w", len(lites), len(gaps), ErrLayerCount)
	}
	if len(lites) == 0 && len(gaps) > 0 {
		return nil, fmt.Errorf("%d gas gaps with no lites: %w", len(gaps), ErrLayerCount)
	}
	ins := &Insulated{}
	for i, lite := range lites {
		ins.layers = append(ins.layers, lite)
		if i < len(gaps) {
			ins.layers = append(ins.layers, gaps[i])
		}
	}
	return ins, nil
}

// ParseInsulated reads an insulated unit, with optional identifier wrapper
// and metadata tail. Lite and gas-gap tokens alternate between separators;
// each lite token is parsed with the full variant rule.
func ParseInsulated(s string) (*Insulated, error) {
	core, width, height, support, err := splitMeta(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	core, code, flipped, err := splitIGDB(core, false)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(core, token.GasSeparator)
	if len(parts)%2 == 0 {
		return nil, fmt.Errorf("%w: unit ends on a gas-gap token in %q", ErrMalformed, core)
	}
	ins := &Insulated{}
	for i, tok := range parts {
		if strings.TrimSpace(tok) == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrMalformed, i, core)
		}
		if i%2 == 0 {
			lite, err := Parse(tok)
			if err != nil {
				return nil, err
			}
			ins.layers = append(ins.layers, lite)
		} else {
			gap, err := ParseGasGap(tok)
			if err != nil {
				return nil, err
			}
			ins.layers = append(ins.layers, gap)
		}
	}
	ins.SetIGDBCode(code, flipped)
	applyMeta(ins, width, height, support)
	return ins, nil
}

// Lites returns the glass-bearing lites in order.
func (u *Insulated) Lites() []Buildup {
	var out []Buildup
	for i := 0; i < len(u.layers); i += 2 {
		out = append(out, u.layers[i].(Buildup))
	}
	return out
}

// Gaps returns the gas gaps in order.
func (u *Insulated) Gaps() []*GasGap {
	var out []*GasGap
	for i := 1; i < len(u.layers); i += 2 {
		out = append(out, u.layers[i].(*GasGap))
	}
	return out
}

func (u *Insulated) GStr() string { return u.appendMeta(u.gstrInner()) }

func (u *Insulated) gstrInner() string {
	parts := make([]string, 0, len(u.layers))
	for _, layer := range u.layers {
		parts = append(parts, layer.gstrInner())
	}
	return u.wrapIGDB(strings.Join(parts, token.GasSeparator))
}
