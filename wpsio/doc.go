/*
Package wpsio resolves converters for WPS process inputs and outputs.

A Registry is an ordered, immutable list of FormatDescriptors. Each
descriptor pairs a Go type, a direction (Input or Output) and a form
(literal, complex, bounding box or reference) with a payload Format
(mime type, encoding, schema) and the Converter moving values of the
type to and from payloads in that format.

# Resolution

FindConverter filters the registry down to descriptors for the
requested type, direction and form, then scores each candidate by the
format hints the caller supplied: one point per hint equal,
case-insensitively, to the candidate's value. A candidate matching every
supplied hint is returned at once; otherwise the best score wins and
ties go to the candidate registered first. With no hints the first
candidate wins. Registry order is therefore significant, and
DefaultSupport likewise returns the first default-flagged candidate.

When nothing is registered for the request a *NoConverterError names
the request and the nearest registered alternative for the type.

# Inference

InferType maps a WPS data type name to a Go type for literal values,
falling back on a substring heuristic and finally on string. For other
forms it picks the type registered for the requested mime type.

# Registries

NewStandardRegistry builds the built-in set of converters: literal
scalars, SensorML documents, GeoJSON and GML feature collections and
OWS bounding boxes. Config describes a registry in YAML, naming
converters from a catalog and types from a type table.
*/
package wpsio
