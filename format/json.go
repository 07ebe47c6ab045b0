package format

import (
	"encoding/json"
	"io"

	"github.com/glasslab/gstr/glass"
)

type JSONEncoder struct {
	w       io.Writer
	buildup glass.Buildup
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(b glass.Buildup) error {
	e.buildup = b
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildBuildup()
	return json.MarshalIndent(data, "", "  ")
}

type jsonLayer struct {
	Kind             string      `json:"kind"`
	Thickness        *float64    `json:"thickness,omitempty"`
	HeatTreatment    string      `json:"heatTreatment,omitempty"`
	Material         string      `json:"material,omitempty"`
	Gas              string      `json:"gas,omitempty"`
	NominalThickness *float64    `json:"nominalThickness,omitempty"`
	ActualThickness  *float64    `json:"actualThickness,omitempty"`
	Width            *float64    `json:"width,omitempty"`
	Height           *float64    `json:"height,omitempty"`
	AspectRatio      *float64    `json:"aspectRatio,omitempty"`
	Support          *int        `json:"support,omitempty"`
	IGDB             *jsonIGDB   `json:"igdb,omitempty"`
	Layers           []jsonLayer `json:"layers,omitempty"`
	GStr             string      `json:"gstr,omitempty"`
}

type jsonIGDB struct {
	Code    string `json:"code"`
	Flipped bool   `json:"flipped,omitempty"`
}

func (e *JSONEncoder) buildBuildup() jsonLayer {
	data := buildLayer(e.buildup)
	data.GStr = e.buildup.GStr()
	if ar, err := e.buildup.AspectRatio(); err == nil {
		data.AspectRatio = &ar
	}
	return data
}

func buildLayer(l glass.Layer) jsonLayer {
	var data jsonLayer
	switch v := l.(type) {
	case *glass.Mono:
		data.Kind = "pane"
		if t, ok := v.Thickness(); ok {
			data.Thickness = &t
		}
		data.HeatTreatment = string(v.Heat())
		buildMeta(v, &data)
	case *glass.Interlayer:
		data.Kind = "interlayer"
		if t, ok := v.Thickness(); ok {
			data.Thickness = &t
		}
		data.Material = string(v.Material())
	case *glass.GasGap:
		data.Kind = "gasGap"
		if t, ok := v.Thickness(); ok {
			data.Thickness = &t
		}
		data.Gas = string(v.Gas())
	case *glass.Laminated:
		data.Kind = "laminate"
		buildComposite(v, v.Layers(), &data)
	case *glass.Insulated:
		data.Kind = "insulatedUnit"
		buildComposite(v, v.Layers(), &data)
	}
	return data
}

func buildComposite(b glass.Buildup, layers []glass.Layer, data *jsonLayer) {
	if t, ok := b.NominalThickness(); ok {
		data.NominalThickness = &t
	}
	if t, ok := b.ActualThickness(); ok {
		data.ActualThickness = &t
	}
	buildMeta(b, data)
	data.Layers = make([]jsonLayer, len(layers))
	for i, l := range layers {
		data.Layers[i] = buildLayer(l)
	}
}

func buildMeta(b glass.Buildup, data *jsonLayer) {
	if w, ok := b.Width(); ok {
		data.Width = &w
	}
	if h, ok := b.Height(); ok {
		data.Height = &h
	}
	if s, ok := b.Support(); ok {
		n := int(s)
		data.Support = &n
	}
	if code, ok := b.IGDBCode(); ok {
		data.IGDB = &jsonIGDB{Code: code, Flipped: b.IGDBFlipped()}
	}
}
