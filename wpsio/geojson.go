package wpsio

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/venicegeo/geojson-go/geojson"
)

// GeoJSONConverter converts GeoJSON feature collections. On output a
// single *geojson.Feature is written as a collection of one.
type GeoJSONConverter struct{}

func (GeoJSONConverter) Decode(r io.Reader, _ Format) (any, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	fc, err := geojson.FeatureCollectionFromBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "geojson")
	}
	return fc, nil
}

func (GeoJSONConverter) Encode(w io.Writer, v any, _ Format) error {
	var fc *geojson.FeatureCollection
	switch v := v.(type) {
	case *geojson.FeatureCollection:
		fc = v
	case *geojson.Feature:
		fc = geojson.NewFeatureCollection([]*geojson.Feature{v})
	default:
		return errors.Errorf("geojson: cannot encode %T", v)
	}
	b, err := json.Marshal(fc)
	if err != nil {
		return errors.Wrap(err, "geojson")
	}
	_, err = w.Write(b)
	return errors.WithStack(err)
}
