package format

import (
	"io"
	"strings"

	"github.com/glasslab/gstr/glass"
	"github.com/glasslab/gstr/glass/token"
)

// TextEncoder writes an indented plain-text report of a buildup, one layer
// per line, outermost first.
type TextEncoder struct {
	w       io.Writer
	buildup glass.Buildup
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(b glass.Buildup) error {
	e.buildup = b
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeLayer(&sb, e.buildup, 0)
	writeDimensions(&sb, e.buildup)
	return []byte(sb.String()), nil
}

func writeLayer(sb *strings.Builder, l glass.Layer, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	switch v := l.(type) {
	case *glass.Mono:
		sb.WriteString(thicknessText(v.Thickness()))
		sb.WriteString(" pane, ")
		sb.WriteString(v.Heat().Name())
		writeIdentifier(sb, v)
		sb.WriteString("\n")
	case *glass.Interlayer:
		sb.WriteString(thicknessText(v.Thickness()))
		sb.WriteString(" ")
		sb.WriteString(string(v.Material()))
		sb.WriteString(" interlayer\n")
	case *glass.GasGap:
		sb.WriteString(thicknessText(v.Thickness()))
		sb.WriteString(" ")
		sb.WriteString(v.Gas().Name())
		sb.WriteString(" gap\n")
	case *glass.Laminated:
		sb.WriteString("laminate, ")
		writeComposite(sb, v, v.Layers(), depth)
	case *glass.Insulated:
		sb.WriteString("insulated unit, ")
		writeComposite(sb, v, v.Layers(), depth)
	}
}

func writeComposite(sb *strings.Builder, b glass.Buildup, layers []glass.Layer, depth int) {
	actual, _ := b.ActualThickness()
	nominal, _ := b.NominalThickness()
	sb.WriteString(token.FormatNumber(actual))
	sb.WriteString(" mm actual (")
	sb.WriteString(token.FormatNumber(nominal))
	sb.WriteString(" mm nominal)")
	writeIdentifier(sb, b)
	sb.WriteString("\n")
	for _, l := range layers {
		writeLayer(sb, l, depth+1)
	}
}

func writeIdentifier(sb *strings.Builder, b glass.Buildup) {
	code, ok := b.IGDBCode()
	if !ok {
		return
	}
	sb.WriteString(", IGDB ")
	sb.WriteString(code)
	if b.IGDBFlipped() {
		sb.WriteString(" (flipped)")
	}
}

func writeDimensions(sb *strings.Builder, b glass.Buildup) {
	w, wok := b.Width()
	h, hok := b.Height()
	s, sok := b.Support()
	if !wok && !hok && !sok {
		return
	}
	sb.WriteString("size ")
	if wok {
		sb.WriteString(token.FormatNumber(w))
	} else {
		sb.WriteString("?")
	}
	sb.WriteString(" x ")
	if hok {
		sb.WriteString(token.FormatNumber(h))
	} else {
		sb.WriteString("?")
	}
	sb.WriteString(" mm")
	if sok {
		sb.WriteString(", ")
		sb.WriteString(token.FormatNumber(float64(s)))
		sb.WriteString("-edge support")
	}
	sb.WriteString("\n")
}

func thicknessText(t float64, ok bool) string {
	if !ok {
		return "? mm"
	}
	return token.FormatNumber(t) + " mm"
}
