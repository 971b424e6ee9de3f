/*
Package owsbind is a set of OGC Web Services data binding libraries.

The sml package models SensorML 1.0.1 documents as typed Go trees:
conversion from any implementation of its node interfaces into the
concrete types, structural equality and hashing, XML decoding and
encoding, and validation of the occurrence constraints the types cannot
express.

The wpsio package resolves converters for WPS process inputs and
outputs. A Registry holds ordered format descriptors (type, direction,
form, mime type, encoding, schema) and picks the best one for a request
by its format hints. Built-in converters cover literal values, SensorML
documents, GeoJSON and GML feature collections and OWS bounding boxes.

The owserr package carries OWS exceptions, and xmlutil the namespace
and character set helpers shared by the others.

The owsbind command in cmd/owsbind exposes registry resolution,
conversion and SensorML validation on the command line.
*/
package owsbind
