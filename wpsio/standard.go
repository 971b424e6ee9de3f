package wpsio

import (
	"reflect"

	"github.com/venicegeo/geojson-go/geojson"

	"github.com/andaru/owsbind/sml"
)

// Mime types and schemas of the standard registry.
const (
	MimeText         = "text/plain"
	MimeTextXML      = "text/xml"
	MimeJSON         = "application/json"
	MimeGeoJSON      = "application/geo+json"
	MimeGML          = "application/gml+xml"
	MimeGMLSubtype   = "text/xml; subtype=gml/3.1.1"
	SchemaSensorML   = "http://schemas.opengis.net/sensorML/1.0.1/sensorML.xsd"
	SchemaGMLFeature = "http://schemas.opengis.net/gml/3.1.1/base/feature.xsd"
)

var (
	sensorMLType    = TypeOf[*sml.SensorML]()
	boundingBoxType = TypeOf[geojson.BoundingBox]()
)

// Catalog maps converter names to constructors. The constructor is
// given the type of the descriptor being built.
type Catalog map[string]func(t reflect.Type) Converter

// StandardCatalog returns the built-in converters: literal, sensorml,
// geojson, gml and bbox.
func StandardCatalog() Catalog {
	return Catalog{
		"literal":  func(t reflect.Type) Converter { return LiteralConverter{Type: t} },
		"sensorml": func(reflect.Type) Converter { return SensorMLConverter{} },
		"geojson":  func(reflect.Type) Converter { return GeoJSONConverter{} },
		"gml":      func(reflect.Type) Converter { return GMLConverter{} },
		"bbox":     func(reflect.Type) Converter { return BoundingBoxConverter{} },
	}
}

// StandardTypes returns the type names a Config may use: the literal
// type names understood by InferType plus the document types.
func StandardTypes() map[string]reflect.Type {
	types := map[string]reflect.Type{
		"sml.SensorML":              sensorMLType,
		"geojson.Feature":           featureType,
		"geojson.FeatureCollection": featureCollectionType,
		"geojson.BoundingBox":       boundingBoxType,
	}
	for name, t := range literalTypes {
		types[name] = t
	}
	return types
}

var standardLiterals = []string{"string", "bool", "int", "int32", "int64", "float32", "float64", "time.Time"}

// StandardConfig describes the standard registry. Order matters: each
// type lists its formats most preferred first.
func StandardConfig() Config {
	var c Config
	add := func(conv, typ, dir, form, mime, schema string, def bool) {
		c.Formats = append(c.Formats, FormatEntry{
			Converter: conv,
			Type:      typ,
			Direction: dir,
			Form:      form,
			MimeType:  mime,
			Schema:    schema,
			Default:   def,
		})
	}
	for _, dir := range []string{"input", "output"} {
		for _, name := range standardLiterals {
			add("literal", name, dir, "literal", MimeText, "", true)
		}
	}
	for _, dir := range []string{"input", "output"} {
		add("sensorml", "sml.SensorML", dir, "complex", MimeTextXML, SchemaSensorML, true)
		add("sensorml", "sml.SensorML", dir, "reference", MimeTextXML, SchemaSensorML, true)
	}

	add("geojson", "geojson.FeatureCollection", "input", "complex", MimeJSON, "", true)
	add("geojson", "geojson.FeatureCollection", "input", "complex", MimeGeoJSON, "", false)
	add("gml", "geojson.FeatureCollection", "input", "complex", MimeTextXML, SchemaGMLFeature, false)
	add("gml", "geojson.FeatureCollection", "input", "complex", MimeGML, SchemaGMLFeature, true)
	add("gml", "geojson.FeatureCollection", "input", "complex", MimeGMLSubtype, SchemaGMLFeature, true)

	add("geojson", "geojson.Feature", "output", "complex", MimeJSON, "", true)
	add("geojson", "geojson.FeatureCollection", "output", "complex", MimeJSON, "", true)
	add("geojson", "geojson.FeatureCollection", "output", "complex", MimeGeoJSON, "", false)
	add("gml", "geojson.FeatureCollection", "output", "complex", MimeGML, SchemaGMLFeature, false)
	add("gml", "geojson.FeatureCollection", "output", "complex", MimeTextXML, SchemaGMLFeature, false)

	add("bbox", "geojson.BoundingBox", "input", "bbox", "", "", true)
	add("bbox", "geojson.BoundingBox", "output", "bbox", "", "", true)
	return c
}

// NewStandardRegistry returns a registry of the built-in converters.
func NewStandardRegistry() *Registry {
	r, err := StandardConfig().Registry(StandardCatalog(), StandardTypes())
	if err != nil {
		panic(err)
	}
	return r
}
