package wpsio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestBoundingBoxDecode(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want geojson.BoundingBox
		err  string
	}{
		{
			name: "2d",
			in: `<ows:BoundingBox xmlns:ows="http://www.opengis.net/ows/1.1" crs="EPSG:4326" dimensions="2">` +
				`<ows:LowerCorner>13.0 52.3</ows:LowerCorner><ows:UpperCorner>13.8 52.7</ows:UpperCorner></ows:BoundingBox>`,
			want: geojson.BoundingBox{13, 52.3, 13.8, 52.7},
		},
		{
			name: "3d without dimensions",
			in: `<BoundingBox xmlns="http://www.opengis.net/ows/1.1">` +
				`<LowerCorner>0 0 -10</LowerCorner><UpperCorner>1 1 10</UpperCorner></BoundingBox>`,
			want: geojson.BoundingBox{0, 0, -10, 1, 1, 10},
		},
		{
			name: "corner mismatch",
			in: `<BoundingBox xmlns="http://www.opengis.net/ows/1.1">` +
				`<LowerCorner>0 0 0</LowerCorner><UpperCorner>1 1</UpperCorner></BoundingBox>`,
			err: "bbox: corners have 3 and 2 coordinates",
		},
		{
			name: "dimensions mismatch",
			in: `<BoundingBox xmlns="http://www.opengis.net/ows/1.1" dimensions="3">` +
				`<LowerCorner>0 0</LowerCorner><UpperCorner>1 1</UpperCorner></BoundingBox>`,
			err: "bbox: dimensions=3 but corners have 2 coordinates",
		},
		{
			name: "one dimension",
			in: `<BoundingBox xmlns="http://www.opengis.net/ows/1.1">` +
				`<LowerCorner>0</LowerCorner><UpperCorner>1</UpperCorner></BoundingBox>`,
			err: "bbox: need at least 2 dimensions, got 1",
		},
		{
			name: "bad number",
			in: `<BoundingBox xmlns="http://www.opengis.net/ows/1.1">` +
				`<LowerCorner>0 x</LowerCorner><UpperCorner>1 1</UpperCorner></BoundingBox>`,
			err: "bbox: LowerCorner",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := BoundingBoxConverter{}.Decode(strings.NewReader(tc.in), Format{})
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestBoundingBoxEncode(t *testing.T) {
	var b bytes.Buffer
	bbox := geojson.BoundingBox{13, 52.3, 13.8, 52.7}
	require.NoError(t, BoundingBoxConverter{}.Encode(&b, bbox, Format{}))
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
		`<BoundingBox xmlns="http://www.opengis.net/ows/1.1" crs="urn:ogc:def:crs:EPSG::4326" dimensions="2">`+
		`<LowerCorner>13 52.3</LowerCorner><UpperCorner>13.8 52.7</UpperCorner></BoundingBox>`, b.String())

	v, err := BoundingBoxConverter{}.Decode(&b, Format{})
	require.NoError(t, err)
	assert.Equal(t, bbox, v)

	assert.Error(t, BoundingBoxConverter{}.Encode(&b, geojson.BoundingBox{1, 2, 3}, Format{}))
	assert.Error(t, BoundingBoxConverter{}.Encode(&b, []float64{1, 2, 3, 4}, Format{}))
}

func TestBoundingBoxRegistry(t *testing.T) {
	r := NewStandardRegistry()
	var b bytes.Buffer
	bbox := geojson.BoundingBox{-1, -2, 1, 2}
	require.NoError(t, r.Write(&b, bbox, FormBoundingBox, Format{}))
	v, err := r.Read(boundingBoxType, FormBoundingBox, Format{}, &b)
	require.NoError(t, err)
	assert.Equal(t, bbox, v)
}
