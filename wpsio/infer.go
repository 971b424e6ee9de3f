package wpsio

import (
	"reflect"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/venicegeo/geojson-go/geojson"
)

var (
	stringType  = TypeOf[string]()
	boolType    = TypeOf[bool]()
	intType     = TypeOf[int]()
	int32Type   = TypeOf[int32]()
	int64Type   = TypeOf[int64]()
	float32Type = TypeOf[float32]()
	float64Type = TypeOf[float64]()
	timeType    = TypeOf[time.Time]()

	featureType           = TypeOf[*geojson.Feature]()
	featureCollectionType = TypeOf[*geojson.FeatureCollection]()
)

// literalTypes maps the Go and XML Schema names of the built-in literal
// types.
var literalTypes = map[string]reflect.Type{
	"string":      stringType,
	"bool":        boolType,
	"int":         intType,
	"int32":       int32Type,
	"int64":       int64Type,
	"float32":     float32Type,
	"float64":     float64Type,
	"time.Time":   timeType,
	"xs:string":   stringType,
	"xs:anyURI":   stringType,
	"xs:boolean":  boolType,
	"xs:integer":  intType,
	"xs:int":      int32Type,
	"xs:long":     int64Type,
	"xs:float":    float32Type,
	"xs:double":   float64Type,
	"xs:dateTime": timeType,
}

// literalFragments is the fallback for names not in literalTypes, tried
// in order against the lowercased name.
var literalFragments = []struct {
	fragment string
	t        reflect.Type
}{
	{"double", float64Type},
	{"boolean", boolType},
	{"float", float32Type},
	{"integer", intType},
	{"long", int64Type},
}

// InferType returns the Go type for a WPS input or output.
//
// For FormLiteral the declared data type name decides: a Go or XML
// Schema type name maps exactly, otherwise a best-effort substring
// match ("double", "boolean", "float", "integer", "long") applies, and
// anything else, including no name at all, is a string. Literal
// inference never fails.
//
// For other forms the type is that of the first descriptor with the
// direction, form and mime type requested, preferring one whose schema
// matches hints.Schema as well. A single feature type is widened to a
// feature collection.
func (r *Registry) InferType(form Form, dir Direction, hints Format, declared string) (reflect.Type, error) {
	if form == FormLiteral {
		return inferLiteral(declared), nil
	}

	var first reflect.Type
	for _, d := range r.descs {
		if d.Direction != dir || !form.matches(d.Form) || !strings.EqualFold(d.MimeType, hints.MimeType) {
			continue
		}
		if hints.Schema != "" && strings.EqualFold(d.Schema, hints.Schema) {
			first = d.Type
			break
		}
		if first == nil {
			first = d.Type
		}
	}
	if first == nil {
		return nil, errors.WithStack(&NoConverterError{Direction: dir, Form: form, Hints: hints})
	}
	if first == featureType {
		first = featureCollectionType
	}
	glog.V(1).Infof("wpsio: inferred %v for %s %s %s", first, dir, form, hints)
	return first, nil
}

func inferLiteral(declared string) reflect.Type {
	if declared == "" {
		return stringType
	}
	if t, ok := literalTypes[declared]; ok {
		return t
	}
	lower := strings.ToLower(declared)
	for _, f := range literalFragments {
		if strings.Contains(lower, f.fragment) {
			glog.V(1).Infof("wpsio: literal type %q taken as %v", declared, f.t)
			return f.t
		}
	}
	glog.Warningf("wpsio: unknown literal type %q, using string", declared)
	return stringType
}
