package wpsio

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/andaru/owsbind/xmlutil"
)

func decodeGML(t *testing.T, r *bytes.Reader) *geojson.FeatureCollection {
	t.Helper()
	v, err := GMLConverter{}.Decode(r, Format{})
	require.NoError(t, err)
	fc, ok := v.(*geojson.FeatureCollection)
	require.True(t, ok)
	return fc
}

func TestGMLDecode(t *testing.T) {
	check := assert.New(t)
	b, err := os.ReadFile("testdata/stations.gml")
	require.NoError(t, err)
	fc := decodeGML(t, bytes.NewReader(b))
	require.Len(t, fc.Features, 2)

	st1 := fc.Features[0]
	check.Equal(map[string]any{
		"gml:id":   "st1",
		"gml:name": "Alpha",
		"height":   12.5,
		"active":   true,
		"code":     "A-1",
	}, st1.Properties)
	coords, err := pointCoordinates(st1.Geometry)
	require.NoError(t, err)
	check.Equal([]float64{52.5, 13.4}, coords)

	st2 := fc.Features[1]
	check.Equal(map[string]any{"gml:id": "st2", "code": "B"}, st2.Properties)
	coords, err = pointCoordinates(st2.Geometry)
	require.NoError(t, err)
	check.Equal([]float64{52.1, 13.2}, coords)
}

func TestGMLDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		msg  string
	}{
		{"not xml", "{}", "gml"},
		{"not a collection", `<a xmlns="urn:x"/>`, "gml: document is not a feature collection"},
		{
			name: "short point",
			in: `<gml:FeatureCollection xmlns:gml="http://www.opengis.net/gml"><gml:featureMember><F>` +
				`<g><gml:Point><gml:pos>1</gml:pos></gml:Point></g></F></gml:featureMember></gml:FeatureCollection>`,
			msg: "gml: feature 0: gml: Point needs at least 2 coordinates, got 1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GMLConverter{}.Decode(strings.NewReader(tc.in), Format{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestGMLRoundTrip(t *testing.T) {
	check := assert.New(t)
	in := geojson.NewFeatureCollection([]*geojson.Feature{
		{
			Type:     "Feature",
			Geometry: geojson.NewPoint([]float64{1.5, 2}),
			Properties: map[string]any{
				"gml:id":          "f1",
				"gml:description": "first",
				"name":            "x",
				"count":           3,
				"empty":           nil,
			},
		},
		{
			Type:       "Feature",
			Properties: map[string]any{"name": "y"},
		},
	})

	var b bytes.Buffer
	require.NoError(t, GMLConverter{}.Encode(&b, in, Format{}))
	out := b.String()
	check.True(strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	check.Contains(out, `gml:id="f1"`)
	check.Contains(out, `<pos>1.5 2</pos>`)
	check.Contains(out, `<Feature xmlns="urn:owsbind:feature"`)
	check.Contains(out, `<name xmlns="urn:owsbind:feature">x</name>`)
	check.NotContains(out, `xmlns=""`)

	fc := decodeGML(t, bytes.NewReader(b.Bytes()))
	require.Len(t, fc.Features, 2)
	check.Equal(map[string]any{
		"gml:id":          "f1",
		"gml:description": "first",
		"name":            "x",
		"count":           3.0,
	}, fc.Features[0].Properties)
	coords, err := pointCoordinates(fc.Features[0].Geometry)
	require.NoError(t, err)
	check.Equal([]float64{1.5, 2}, coords)
	check.Equal(map[string]any{"name": "y"}, fc.Features[1].Properties)
	check.Nil(fc.Features[1].Geometry)
}

func TestGMLEncodeFeatureType(t *testing.T) {
	f := &geojson.Feature{Type: "Feature", Properties: map[string]any{"code": "A"}}
	c := GMLConverter{FeatureType: DefaultFeatureType}
	c.FeatureType.Local = "Station"

	var b bytes.Buffer
	require.NoError(t, c.Encode(&b, f, Format{Encoding: "ISO-8859-1"}))
	assert.True(t, strings.HasPrefix(b.String(), `<?xml version="1.0" encoding="ISO-8859-1"?>`))
	assert.Contains(t, b.String(), `<Station xmlns="urn:owsbind:feature">`)
	assert.Contains(t, b.String(), `<code xmlns="urn:owsbind:feature">A</code>`)
	assert.NotContains(t, b.String(), `xmlns=""`)
}

func TestGMLEncodeErrors(t *testing.T) {
	assert.Error(t, GMLConverter{}.Encode(&bytes.Buffer{}, "x", Format{}))

	line := &geojson.Feature{
		Type:     "Feature",
		Geometry: map[string]any{"type": "LineString"},
	}
	err := GMLConverter{}.Encode(&bytes.Buffer{}, line, Format{})
	require.Error(t, err)
	assert.Equal(t, "gml: feature 0: unsupported geometry LineString", err.Error())
}

func TestPointCoordinates(t *testing.T) {
	coords, err := pointCoordinates(map[string]any{"type": "Point", "coordinates": []any{1.0, 2.0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, coords)

	coords, err = pointCoordinates(nil)
	assert.NoError(t, err)
	assert.Nil(t, coords)

	_, err = pointCoordinates(map[string]any{"type": "Point", "coordinates": []any{"a"}})
	assert.Error(t, err)
}

func TestGMLForeignNamespaces(t *testing.T) {
	check := assert.New(t)
	in := `<gml:FeatureCollection xmlns:gml="http://www.opengis.net/gml" xmlns:app="urn:example:app">` +
		`<gml:featureMember><app:Station xmlns:ext="urn:example:ext">` +
		`<app:name>local</app:name><ext:name>foreign</ext:name>` +
		`<name xmlns="urn:example:bare">bare</name><gml:name>Alpha</gml:name>` +
		`</app:Station></gml:featureMember></gml:FeatureCollection>`
	fc := decodeGML(t, bytes.NewReader([]byte(in)))
	require.Len(t, fc.Features, 1)
	props := fc.Features[0].Properties
	check.Equal(map[string]any{
		"name":                   "local",
		"ext:name":               "foreign",
		"{urn:example:bare}name": "bare",
		"gml:name":               "Alpha",
	}, props)

	c := GMLConverter{Prefixes: xmlutil.PrefixMap{"ext": "urn:example:ext"}}
	var b bytes.Buffer
	require.NoError(t, c.Encode(&b, fc, Format{}))
	out := b.String()
	check.Contains(out, `xmlns:ext="urn:example:ext"`)
	check.Contains(out, `<name xmlns="urn:example:ext">foreign</name>`)
	check.Contains(out, `<name xmlns="urn:example:bare">bare</name>`)
	check.NotContains(out, `xmlns=""`)

	again := decodeGML(t, bytes.NewReader(b.Bytes()))
	require.Len(t, again.Features, 1)
	check.Equal(props, again.Features[0].Properties)
}
