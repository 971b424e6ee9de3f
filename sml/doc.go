// Package sml binds OGC SensorML 1.0.1 documents onto Go types.
//
// Each schema complex type is a struct whose fields follow the schema's
// element order, so encoding/xml writes elements in document order.
// Optional child elements are pointers, repeated ones are slices and
// optional attributes are strings marshaled with omitempty. Fields
// absent from a source stay absent through conversion and round trip.
//
// # Node types
//
// Every node type T has:
//
//	Equal(*T) bool      structural equality; nil equals only nil
//	Hash() uint64       consistent with Equal
//	String() string     a compact description; "" for a nil node
//	GetX()              nil-safe accessors
//
// and implements its capability interface AbstractT, which exposes the
// same accessors returning capability interfaces for children.
//
// # Conversion
//
// NewTFrom copies any AbstractT into a new *T, converting nested
// capability values recursively. Children drawn from a substitution
// group (processes in members and component lists, position values,
// SWE field values) are dispatched over the known capability
// interfaces; a value matching none of them fails the conversion with
// an *UnsupportedTypeError. Types whose subtree has no such group
// cannot fail and return only the node.
//
// # Processes
//
// ProcessModel, Component, System and ProcessChain embed the shared
// ProcessFields set rather than modelling the schema's derivation
// chain. ProcessVariant holds one of the four where the schema admits
// any process.
//
// # Codec
//
// Decode probes the document root with XPath before unmarshaling, and
// Validate reports min-occurs/max-occurs violations as ConstraintError
// values.
package sml
