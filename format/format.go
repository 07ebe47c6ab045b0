package format

import (
	"encoding"

	"github.com/glasslab/gstr/glass"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(b glass.Buildup) error
}
