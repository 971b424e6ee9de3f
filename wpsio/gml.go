package wpsio

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/andaru/owsbind/xmlutil"
)

// DefaultFeatureType names features the GMLConverter writes.
var DefaultFeatureType = xml.Name{Space: "urn:owsbind:feature", Local: "Feature"}

// idProperty is the GeoJSON property holding a feature's gml:id.
const idProperty = "gml:id"

// GMLConverter converts GML 3.1.1 feature collections to and from
// GeoJSON feature collections. Point geometries and simple-valued
// properties are carried; other geometries and complex properties are
// dropped on input.
//
// Properties in a feature's own namespace are keyed by local name,
// others by prefixed name (e.g. "gml:name") when the namespace has a
// prefix, else by "{namespace}local".
type GMLConverter struct {
	// FeatureType names written features; DefaultFeatureType if zero.
	FeatureType xml.Name
	// Prefixes binds property key prefixes beyond sml, swe, gml and
	// xlink. Prefixes declared by a decoded document are used as well.
	Prefixes xmlutil.PrefixMap
}

func (c GMLConverter) prefixes() xmlutil.PrefixMap {
	return xmlutil.OGCPrefixes().Merge(c.Prefixes)
}

func (c GMLConverter) Decode(r io.Reader, _ Format) (any, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "gml")
	}
	root := xmlquery.QuerySelector(doc, xpFeatureCollection)
	if root == nil {
		return nil, errors.New("gml: document is not a feature collection")
	}
	pm := c.prefixes().Merge(declaredPrefixes(root))
	var features []*geojson.Feature
	for i, fe := range xmlquery.QuerySelectorAll(doc, xpFeatures) {
		f, err := decodeFeature(fe, maps.Clone(pm).Merge(declaredPrefixes(fe)))
		if err != nil {
			return nil, errors.Wrapf(err, "gml: feature %d", i)
		}
		features = append(features, f)
	}
	return geojson.NewFeatureCollection(features), nil
}

func decodeFeature(fe *xmlquery.Node, pm xmlutil.PrefixMap) (*geojson.Feature, error) {
	ns := namespaceOf(fe)
	props := map[string]any{}
	for _, a := range fe.Attr {
		if a.Name.Local == "id" {
			props[idProperty] = a.Value
		}
	}

	var point *geojson.Point
	for c := fe.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if pt := xmlquery.QuerySelector(c, xpPoint); pt != nil {
			if point == nil {
				p, err := decodePoint(pt)
				if err != nil {
					return nil, err
				}
				point = p
			}
			continue
		}
		if xmlquery.QuerySelector(c, xpChild) != nil {
			continue
		}
		key := propertyKey(pm, xml.Name{Space: namespaceOf(c), Local: c.Data}, ns)
		props[key] = propertyValue(c.InnerText())
	}

	f := &geojson.Feature{Type: "Feature", Properties: props}
	if point != nil {
		f.Geometry = point
	}
	return f, nil
}

// propertyKey names a property element of a feature in namespace
// featureNS.
func propertyKey(pm xmlutil.PrefixMap, name xml.Name, featureNS string) string {
	switch {
	case name.Space == featureNS:
		return name.Local
	case len(pm.Prefix(name.Space)) > 0:
		return pm.QName(name)
	}
	return "{" + name.Space + "}" + name.Local
}

// propertyName is the inverse of propertyKey. Unprefixed keys and
// unknown prefixes are in the feature's namespace.
func propertyName(pm xmlutil.PrefixMap, key string, ft xml.Name) xml.Name {
	if strings.HasPrefix(key, "{") {
		if i := strings.IndexByte(key, '}'); i > 0 {
			return xml.Name{Space: key[1:i], Local: key[i+1:]}
		}
	}
	name := pm.Resolve(key)
	if name.Space == "" {
		name.Space = ft.Space
	}
	return name
}

// declaredPrefixes returns the xmlns:prefix declarations on n.
func declaredPrefixes(n *xmlquery.Node) xmlutil.PrefixMap {
	attrs := make([]xml.Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrs = append(attrs, xml.Attr{Name: a.Name, Value: a.Value})
	}
	return xmlutil.NewPrefixMap(attrs...)
}

func decodePoint(pt *xmlquery.Node) (*geojson.Point, error) {
	pos := xmlquery.QuerySelector(pt, xpPos)
	if pos == nil {
		return nil, errors.New("gml: Point has no pos")
	}
	fields := strings.Fields(pos.InnerText())
	if pos.Data == "coordinates" && len(fields) > 0 {
		fields = strings.Split(fields[0], ",")
	}
	if len(fields) < 2 {
		return nil, errors.Errorf("gml: Point needs at least 2 coordinates, got %d", len(fields))
	}
	coords := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrap(err, "gml: Point")
		}
		coords[i] = v
	}
	return geojson.NewPoint(coords), nil
}

func namespaceOf(n *xmlquery.Node) string {
	s, _ := xpNamespace.Evaluate(xmlquery.CreateXPathNavigator(n)).(string)
	return s
}

// propertyValue types a simple property's text as a number, a boolean
// or a string.
func propertyValue(text string) any {
	s := strings.TrimSpace(text)
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func (c GMLConverter) Encode(w io.Writer, v any, f Format) error {
	var features []*geojson.Feature
	switch v := v.(type) {
	case *geojson.FeatureCollection:
		features = v.Features
	case *geojson.Feature:
		features = []*geojson.Feature{v}
	default:
		return errors.Errorf("gml: cannot encode %T", v)
	}

	ft := c.FeatureType
	if ft.Local == "" {
		ft = DefaultFeatureType
	}
	pm := c.prefixes()
	used := xmlutil.PrefixMap{"gml": xmlutil.NSGML}
	out := gmlCollection{}
	for i, feature := range features {
		gf, err := encodeFeature(feature, ft, pm)
		if err != nil {
			return errors.Wrapf(err, "gml: feature %d", i)
		}
		for _, p := range gf.Properties {
			if pfxes := pm.Prefix(p.XMLName.Space); len(pfxes) > 0 {
				used.Bind(pfxes[0], p.XMLName.Space)
			}
		}
		out.Members = append(out.Members, gmlMember{Feature: gf})
	}
	for _, a := range used.Attr() {
		// written verbatim: the encoder would otherwise treat "xmlns"
		// as a namespace URI
		out.Namespaces = append(out.Namespaces, xml.Attr{Name: xml.Name{Local: "xmlns:" + a.Name.Local}, Value: a.Value})
	}

	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", charsetOf(f.Encoding)); err != nil {
		return errors.WithStack(err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "gml")
	}
	_, err := io.WriteString(w, "\n")
	return errors.WithStack(err)
}

func encodeFeature(f *geojson.Feature, ft xml.Name, pm xmlutil.PrefixMap) (gmlFeature, error) {
	gf := gmlFeature{XMLName: ft}
	if f == nil {
		return gf, nil
	}

	keys := make([]string, 0, len(f.Properties))
	for k := range f.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := f.Properties[k]
		if v == nil {
			continue
		}
		text, err := propertyText(v)
		if err != nil {
			return gf, errors.Wrapf(err, "property %q", k)
		}
		if k == idProperty {
			gf.ID = text
			continue
		}
		gf.Properties = append(gf.Properties, gmlProperty{XMLName: propertyName(pm, k, ft), Value: text})
	}

	coords, err := pointCoordinates(f.Geometry)
	if err != nil {
		return gf, err
	}
	if coords != nil {
		pos := make([]string, len(coords))
		for i, c := range coords {
			pos[i] = strconv.FormatFloat(c, 'g', -1, 64)
		}
		gf.Geometry = &gmlGeometry{Point: gmlPoint{Pos: strings.Join(pos, " ")}}
	}
	return gf, nil
}

func propertyText(v any) (string, error) {
	if s, err := FormatLiteral(v); err == nil {
		return s, nil
	}
	b, err := json.Marshal(v)
	return string(b), errors.WithStack(err)
}

// pointCoordinates returns the coordinates of a point geometry, either
// a *geojson.Point or its decoded JSON map form. A nil geometry has
// none.
func pointCoordinates(g any) ([]float64, error) {
	switch g := g.(type) {
	case nil:
		return nil, nil
	case *geojson.Point:
		if g == nil {
			return nil, nil
		}
		return g.Coordinates, nil
	case map[string]any:
		if g["type"] != "Point" {
			return nil, errors.Errorf("unsupported geometry %v", g["type"])
		}
		raw, _ := g["coordinates"].([]any)
		coords := make([]float64, 0, len(raw))
		for _, c := range raw {
			f, ok := c.(float64)
			if !ok {
				return nil, errors.Errorf("bad coordinate %v", c)
			}
			coords = append(coords, f)
		}
		return coords, nil
	}
	return nil, errors.Errorf("unsupported geometry %T", g)
}

type gmlCollection struct {
	XMLName    xml.Name    `xml:"http://www.opengis.net/gml FeatureCollection"`
	Namespaces []xml.Attr  `xml:",any,attr"`
	Members    []gmlMember `xml:"featureMember"`
}

type gmlMember struct {
	Feature gmlFeature
}

type gmlFeature struct {
	XMLName    xml.Name
	ID         string `xml:"http://www.opengis.net/gml id,attr,omitempty"`
	Properties []gmlProperty
	Geometry   *gmlGeometry `xml:"geometry,omitempty"`
}

type gmlProperty struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type gmlGeometry struct {
	Point gmlPoint `xml:"http://www.opengis.net/gml Point"`
}

type gmlPoint struct {
	Pos string `xml:"pos"`
}

var (
	xpFeatureCollection = xpath.MustCompile(`/*[local-name()='FeatureCollection']`)
	xpFeatures          = xpath.MustCompile(`/*/*[(local-name()='featureMember' or local-name()='featureMembers') and namespace-uri()='http://www.opengis.net/gml']/*`)
	xpPoint             = xpath.MustCompile(`.//*[local-name()='Point' and namespace-uri()='http://www.opengis.net/gml']`)
	xpPos               = xpath.MustCompile(`*[(local-name()='pos' or local-name()='coordinates') and namespace-uri()='http://www.opengis.net/gml']`)
	xpChild             = xpath.MustCompile(`*`)
	xpNamespace         = xpath.MustCompile(`namespace-uri()`)
)
