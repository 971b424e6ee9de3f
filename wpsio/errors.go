package wpsio

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/andaru/owsbind/owserr"
)

// NoConverterError is returned when no descriptor serves a request.
type NoConverterError struct {
	Type      reflect.Type
	Direction Direction
	Form      Form
	Hints     Format
	// Default is set when candidates exist but none is flagged default.
	Default bool
	// Nearest is the registered descriptor for Type best matching Hints
	// in any direction and form, or nil if Type has none.
	Nearest *FormatDescriptor
}

func (e *NoConverterError) Error() string {
	what := "converter"
	if e.Default {
		what = "default converter"
	}
	typ := "any type"
	if e.Type != nil {
		typ = e.Type.String()
	}
	s := fmt.Sprintf("wpsio: no %s %s %s for %s", e.Direction, e.Form, what, typ)
	if h := e.Hints.String(); h != "" {
		s += " (" + h + ")"
	}
	if e.Nearest != nil {
		s += "; nearest: " + e.Nearest.String()
	}
	return s
}

// Exception maps e to an OWS InvalidParameterValue exception. The
// locator names the first hint the nearest alternative does not
// satisfy, or "dataType" when the type itself is unsupported.
func (e *NoConverterError) Exception() *owserr.Error {
	return owserr.InvalidParameterValue(e.locator(), owserr.WithText(e.Error()))
}

func (e *NoConverterError) locator() string {
	if e.Nearest == nil {
		return "dataType"
	}
	near := e.Nearest.Format
	for _, p := range [...]struct {
		name       string
		hint, have string
	}{
		{"mimeType", e.Hints.MimeType, near.MimeType},
		{"encoding", e.Hints.Encoding, near.Encoding},
		{"schema", e.Hints.Schema, near.Schema},
	} {
		if p.hint != "" && !strings.EqualFold(p.hint, p.have) {
			return p.name
		}
	}
	return "dataType"
}

// ConversionError wraps a converter failure with the descriptor that
// was used.
type ConversionError struct {
	Descriptor FormatDescriptor
	Err        error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("wpsio: %s: %v", e.Descriptor, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Exception maps e to an OWS exception: an InvalidParameterValue for
// inputs, NoApplicableCode for outputs.
func (e *ConversionError) Exception() *owserr.Error {
	if e.Descriptor.Direction == Input {
		return owserr.InvalidParameterValue("data", owserr.WithText(e.Error()))
	}
	return owserr.NoApplicableCode(owserr.WithText(e.Error()))
}
