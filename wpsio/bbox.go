package wpsio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/andaru/owsbind/xmlutil"
)

// DefaultCRS is written on bounding boxes when the converter names none.
const DefaultCRS = "urn:ogc:def:crs:EPSG::4326"

// BoundingBoxConverter converts ows:BoundingBox elements to and from
// geojson.BoundingBox values, all lower corner coordinates followed by
// all upper corner coordinates.
type BoundingBoxConverter struct {
	// CRS is written in the crs attribute; DefaultCRS if empty.
	CRS string
}

type owsBoundingBox struct {
	XMLName    xml.Name `xml:"http://www.opengis.net/ows/1.1 BoundingBox"`
	CRS        string   `xml:"crs,attr,omitempty"`
	Dimensions int      `xml:"dimensions,attr,omitempty"`
	Lower      string   `xml:"LowerCorner"`
	Upper      string   `xml:"UpperCorner"`
}

func (BoundingBoxConverter) Decode(r io.Reader, _ Format) (any, error) {
	var bb owsBoundingBox
	dec := xml.NewDecoder(r)
	dec.CharsetReader = xmlutil.CharsetReader
	if err := dec.Decode(&bb); err != nil {
		return nil, errors.Wrap(err, "bbox")
	}
	lower, err := corner(bb.Lower)
	if err != nil {
		return nil, errors.Wrap(err, "bbox: LowerCorner")
	}
	upper, err := corner(bb.Upper)
	if err != nil {
		return nil, errors.Wrap(err, "bbox: UpperCorner")
	}
	switch {
	case len(lower) != len(upper):
		return nil, errors.Errorf("bbox: corners have %d and %d coordinates", len(lower), len(upper))
	case len(lower) < 2:
		return nil, errors.Errorf("bbox: need at least 2 dimensions, got %d", len(lower))
	case bb.Dimensions != 0 && bb.Dimensions != len(lower):
		return nil, errors.Errorf("bbox: dimensions=%d but corners have %d coordinates", bb.Dimensions, len(lower))
	}
	return geojson.BoundingBox(append(lower, upper...)), nil
}

func corner(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		out[i] = v
	}
	return out, nil
}

func (c BoundingBoxConverter) Encode(w io.Writer, v any, f Format) error {
	bbox, ok := v.(geojson.BoundingBox)
	if !ok {
		return errors.Errorf("bbox: cannot encode %T", v)
	}
	if len(bbox) < 4 || len(bbox)%2 != 0 {
		return errors.Errorf("bbox: bad coordinate count %d", len(bbox))
	}
	n := len(bbox) / 2
	out := owsBoundingBox{
		CRS:        c.CRS,
		Dimensions: n,
		Lower:      cornerText(bbox[:n]),
		Upper:      cornerText(bbox[n:]),
	}
	if out.CRS == "" {
		out.CRS = DefaultCRS
	}
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", charsetOf(f.Encoding)); err != nil {
		return errors.WithStack(err)
	}
	if err := xml.NewEncoder(w).Encode(out); err != nil {
		return errors.Wrap(err, "bbox")
	}
	return nil
}

func cornerText(coords []float64) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
