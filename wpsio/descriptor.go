package wpsio

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Direction says whether a descriptor serves process inputs or outputs.
type Direction int

const (
	// Input descriptors decode request payloads into Go values
	Input Direction = iota
	// Output descriptors encode Go values into response payloads
	Output
)

var directionNames = [...]string{
	Input:  "input",
	Output: "output",
}

func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d *Direction) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range directionNames {
		if strings.EqualFold(name, string(b)) {
			*d = Direction(i)
			return nil
		}
	}
	return errors.Errorf("unknown direction %q", b)
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Form is the WPS data form of an input or output.
type Form int

const (
	// FormLiteral is a scalar value
	FormLiteral Form = iota
	// FormComplex is an embedded payload such as an XML document
	FormComplex
	// FormBoundingBox is an OWS bounding box
	FormBoundingBox
	// FormReference is a payload passed by URL
	FormReference
	// FormAll matches every form when resolving; descriptors never carry it
	FormAll
)

var formNames = [...]string{
	FormLiteral:     "literal",
	FormComplex:     "complex",
	FormBoundingBox: "bbox",
	FormReference:   "reference",
	FormAll:         "all",
}

func (f Form) String() string {
	if f >= 0 && int(f) < len(formNames) {
		return formNames[f]
	}
	return fmt.Sprintf("Form(%d)", int(f))
}

func (f *Form) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range formNames {
		if strings.EqualFold(name, string(b)) {
			*f = Form(i)
			return nil
		}
	}
	return errors.Errorf("unknown form %q", b)
}

func (f Form) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f Form) matches(o Form) bool { return f == FormAll || f == o }

// Format describes a payload. Empty fields are unspecified.
type Format struct {
	MimeType string `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Schema   string `json:"schema,omitempty" yaml:"schema,omitempty"`
}

func (f Format) IsZero() bool { return f == Format{} }

// hints returns how many fields of f are specified.
func (f Format) hints() int {
	n := 0
	for _, v := range [...]string{f.MimeType, f.Encoding, f.Schema} {
		if v != "" {
			n++
		}
	}
	return n
}

// score counts the specified fields of h that d has an equal value
// for, ignoring case.
func (h Format) score(d Format) int {
	n := 0
	for _, p := range [...][2]string{
		{h.MimeType, d.MimeType},
		{h.Encoding, d.Encoding},
		{h.Schema, d.Schema},
	} {
		if p[0] != "" && p[1] != "" && strings.EqualFold(p[0], p[1]) {
			n++
		}
	}
	return n
}

func (f Format) String() string {
	var parts []string
	for _, p := range [...][2]string{
		{"mimeType", f.MimeType},
		{"encoding", f.Encoding},
		{"schema", f.Schema},
	} {
		if p[1] != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", p[0], p[1]))
		}
	}
	return strings.Join(parts, " ")
}

// Converter moves values between payloads and Go values. The Format
// passed is the resolved one: the descriptor's format with the caller's
// encoding, if any.
type Converter interface {
	Decode(r io.Reader, f Format) (any, error)
	Encode(w io.Writer, v any, f Format) error
}

// FormatDescriptor is one supported (type, direction, form, format)
// combination and the converter serving it.
type FormatDescriptor struct {
	Type      reflect.Type
	Direction Direction
	Form      Form
	Format
	Default   bool
	Converter Converter
}

// matches reports whether d serves values of type t. A descriptor
// registered for an interface serves every type implementing it.
func (d FormatDescriptor) matches(t reflect.Type) bool {
	return t != nil && d.Type != nil && (t == d.Type || t.AssignableTo(d.Type))
}

func (d FormatDescriptor) String() string {
	s := fmt.Sprintf("%s %s %v", d.Direction, d.Form, d.Type)
	if f := d.Format.String(); f != "" {
		s += " " + f
	}
	if d.Default {
		s += " (default)"
	}
	return s
}

// TypeOf returns the reflect.Type of T, which may be an interface.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
