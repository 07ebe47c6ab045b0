package format

import (
	"io"

	"github.com/glasslab/gstr/glass"
)

// GStrEncoder writes the canonical gstr rendering of a buildup. Feeding it a
// parsed buildup normalizes whitespace and marker order.
type GStrEncoder struct {
	w       io.Writer
	buildup glass.Buildup
}

func NewGStrEncoder(w io.Writer) *GStrEncoder {
	return &GStrEncoder{w: w}
}

func (e *GStrEncoder) Encode(b glass.Buildup) error {
	e.buildup = b
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *GStrEncoder) MarshalText() ([]byte, error) {
	return []byte(e.buildup.GStr() + "\n"), nil
}
