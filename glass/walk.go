package glass

// Walk calls fn for b and for every layer beneath it, outermost first.
// Glass-bearing children are visited as buildups before their own layers.
func Walk(b Buildup, fn func(Layer)) {
	fn(b)
	var layers []Layer
	switch v := b.(type) {
	case *Laminated:
		layers = v.Layers()
	case *Insulated:
		layers = v.Layers()
	default:
		return
	}
	for _, l := range layers {
		if child, ok := l.(Buildup); ok {
			Walk(child, fn)
		} else {
			fn(l)
		}
	}
}
