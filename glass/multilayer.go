package glass

// multiLayer is the shared body of Laminated and Insulated: an interleaved
// sequence of glass-bearing and separator layers plus write-through
// attribute setters.
type multiLayer struct {
	meta
	layers []Layer
}

// Layers returns the interleaved layer sequence, glass-bearing layers at
// even positions and separators at odd ones. The slice is a copy.
func (m *multiLayer) Layers() []Layer {
	out := make([]Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// ActualThickness sums the physical thickness of every layer. Layers with
// no thickness set contribute nothing.
func (m *multiLayer) ActualThickness() (float64, bool) {
	total := 0.0
	for _, l := range m.layers {
		if t, ok := l.ActualThickness(); ok {
			total += t
		}
	}
	return total, true
}

// NominalThickness sums the stack-up thickness of the layers. Interlayers
// are bonding, not stack-up, and are skipped.
func (m *multiLayer) NominalThickness() (float64, bool) {
	total := 0.0
	for _, l := range m.layers {
		if _, bonding := l.(*Interlayer); bonding {
			continue
		}
		if t, ok := l.NominalThickness(); ok {
			total += t
		}
	}
	return total, true
}

// SetWidth writes the width through to every owned glass-bearing layer.
func (m *multiLayer) SetWidth(w float64) {
	m.meta.SetWidth(w)
	for _, l := range m.layers {
		if b, ok := l.(Buildup); ok {
			b.SetWidth(w)
		}
	}
}

// SetHeight writes the height through to every owned glass-bearing layer.
func (m *multiLayer) SetHeight(h float64) {
	m.meta.SetHeight(h)
	for _, l := range m.layers {
		if b, ok := l.(Buildup); ok {
			b.SetHeight(h)
		}
	}
}

// SetSupport writes the support condition through to every owned
// glass-bearing layer.
func (m *multiLayer) SetSupport(s Support) {
	m.meta.SetSupport(s)
	for _, l := range m.layers {
		if b, ok := l.(Buildup); ok {
			b.SetSupport(s)
		}
	}
}

// applyMeta installs parsed metadata through the setters so composites
// cascade to their children.
func applyMeta(b Buildup, width, height *float64, support *Support) {
	if width != nil {
		b.SetWidth(*width)
	}
	if height != nil {
		b.SetHeight(*height)
	}
	if support != nil {
		b.SetSupport(*support)
	}
}
