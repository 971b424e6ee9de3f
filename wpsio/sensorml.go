package wpsio

import (
	"io"

	"github.com/pkg/errors"

	"github.com/andaru/owsbind/sml"
)

// SensorMLConverter converts SensorML 1.0.1 documents. Any sml.Node
// may be encoded; decoding always yields a *sml.SensorML.
type SensorMLConverter struct{}

func (SensorMLConverter) Decode(r io.Reader, _ Format) (any, error) {
	return sml.Decode(r)
}

func (SensorMLConverter) Encode(w io.Writer, v any, f Format) error {
	n, ok := v.(sml.Node)
	if !ok {
		return errors.Errorf("sensorml: cannot encode %T", v)
	}
	return sml.EncodeCharset(w, n, charsetOf(f.Encoding))
}
