package glass

import (
	"fmt"
	"strings"

	"github.com/glasslab/gstr/glass/token"
)

// Laminated is a bonded assembly of glass plies with an interlayer between
// each neighbouring pair, e.g. "6A&0.76PVB&6A". The legacy form "LAM16.89"
// parses as a laminate with a single untreated ply.
type Laminated struct {
	multiLayer
}

// NewLaminated builds a laminate from plies and the interlayers between
// them. Unless both are empty, the interlayers must number one less than
// the plies.
func NewLaminated(plies []*Mono, interlayers []*Interlayer) (*Laminated, error) {
	if len(plies) > 0 && len(interlayers) != len(plies)-1 {
		return nil, fmt.Errorf("%d plies with %d interlayers: %w", len(plies), len(interlayers), ErrLayerCount)
	}
	if len(plies) == 0 && len(interlayers) > 0 {
		return nil, fmt.Errorf("%d interlayers with no plies: %w", len(interlayers), ErrLayerCount)
	}
	lam := &Laminated{}
	for i, p := range plies {
		lam.layers = append(lam.layers, p)
		if i < len(interlayers) {
			lam.layers = append(lam.layers, interlayers[i])
		}
	}
	return lam, nil
}

// ParseLaminated reads a laminate, with optional identifier wrapper and
// metadata tail. Ply and interlayer tokens alternate between separators.
func ParseLaminated(s string) (*Laminated, error) {
	core, width, height, support, err := splitMeta(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	core, code, flipped, err := splitIGDB(core, false)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(core, token.InterlayerSeparator)
	if len(parts)%2 == 0 {
		return nil, fmt.Errorf("%w: laminate ends on an interlayer token in %q", ErrMalformed, core)
	}
	lam := &Laminated{}
	for i, tok := range parts {
		if strings.TrimSpace(tok) == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrMalformed, i, core)
		}
		if i%2 == 0 {
			ply, err := ParseMono(tok)
			if err != nil {
				return nil, err
			}
			lam.layers = append(lam.layers, ply)
		} else {
			il, err := ParseInterlayer(tok)
			if err != nil {
				return nil, err
			}
			lam.layers = append(lam.layers, il)
		}
	}
	lam.SetIGDBCode(code, flipped)
	applyMeta(lam, width, height, support)
	return lam, nil
}

// Plies returns the glass plies in order.
func (l *Laminated) Plies() []*Mono {
	var out []*Mono
	for i := 0; i < len(l.layers); i += 2 {
		out = append(out, l.layers[i].(*Mono))
	}
	return out
}

// Interlayers returns the interlayers in order.
func (l *Laminated) Interlayers() []*Interlayer {
	var out []*Interlayer
	for i := 1; i < len(l.layers); i += 2 {
		out = append(out, l.layers[i].(*Interlayer))
	}
	return out
}

func (l *Laminated) GStr() string { return l.appendMeta(l.gstrInner()) }

func (l *Laminated) gstrInner() string {
	parts := make([]string, 0, len(l.layers))
	for _, layer := range l.layers {
		parts = append(parts, layer.gstrInner())
	}
	return l.wrapIGDB(strings.Join(parts, token.InterlayerSeparator))
}
