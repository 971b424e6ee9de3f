package owserr

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Code represents the OWS exceptionCode enumerate
type Code int

const (
	// CodeNoApplicableCode is used when no other code applies
	CodeNoApplicableCode Code = iota
	// CodeOperationNotSupported indicates the requested operation is not implemented
	CodeOperationNotSupported
	// CodeMissingParameterValue indicates a required parameter was not supplied
	CodeMissingParameterValue
	// CodeInvalidParameterValue indicates a parameter value is not acceptable
	CodeInvalidParameterValue
	// CodeVersionNegotiationFailed indicates no common version was found
	CodeVersionNegotiationFailed
	// CodeInvalidUpdateSequence indicates an update sequence value is invalid
	CodeInvalidUpdateSequence
	// CodeOptionNotSupported indicates a requested option is not implemented
	CodeOptionNotSupported
)

var codeNames = [...]string{
	CodeNoApplicableCode:         "NoApplicableCode",
	CodeOperationNotSupported:    "OperationNotSupported",
	CodeMissingParameterValue:    "MissingParameterValue",
	CodeInvalidParameterValue:    "InvalidParameterValue",
	CodeVersionNegotiationFailed: "VersionNegotiationFailed",
	CodeInvalidUpdateSequence:    "InvalidUpdateSequence",
	CodeOptionNotSupported:       "OptionNotSupported",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

func (c *Code) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	for i, name := range codeNames {
		if name == string(b) {
			*c = Code(i)
			return nil
		}
	}
	return errors.Errorf("unknown exception code %q", b)
}

func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Error represents a single OWS exception.
//
// Marshaled as XML, it is framed as an <ows:Exception> element; use
// Report to produce a complete <ows:ExceptionReport> document.
type Error struct {
	XMLName xml.Name `xml:"http://www.opengis.net/ows/1.1 Exception" json:"-"`
	Code    Code     `xml:"exceptionCode,attr" json:"exceptionCode"`
	Locator string   `xml:"locator,attr,omitempty" json:"locator,omitempty"`
	Text    []string `xml:"ExceptionText,omitempty" json:"exceptionText,omitempty"`
}

func (e Error) Error() string {
	s := e.Code.String()
	if e.Locator != "" {
		s += " locator:" + e.Locator
	}
	if len(e.Text) > 0 {
		s += " " + strings.Join(e.Text, "; ")
	}
	return s
}

// As returns the *Error in err's chain, if there is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newError(code Code, locator string, opts []Option) *Error {
	e := &Error{Code: code, Locator: locator}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NoApplicableCode(opts ...Option) *Error {
	return newError(CodeNoApplicableCode, "", opts)
}

// OperationNotSupported reports that operation is not implemented; the
// operation name is the locator.
func OperationNotSupported(operation string, opts ...Option) *Error {
	return newError(CodeOperationNotSupported, operation, opts)
}

func MissingParameterValue(parameter string, opts ...Option) *Error {
	return newError(CodeMissingParameterValue, parameter, opts)
}

func InvalidParameterValue(parameter string, opts ...Option) *Error {
	return newError(CodeInvalidParameterValue, parameter, opts)
}

func VersionNegotiationFailed(opts ...Option) *Error {
	return newError(CodeVersionNegotiationFailed, "", opts)
}

func InvalidUpdateSequence(opts ...Option) *Error {
	return newError(CodeInvalidUpdateSequence, "", opts)
}

func OptionNotSupported(option string, opts ...Option) *Error {
	return newError(CodeOptionNotSupported, option, opts)
}

// Report is an <ows:ExceptionReport> document.
type Report struct {
	XMLName    xml.Name `xml:"http://www.opengis.net/ows/1.1 ExceptionReport" json:"-"`
	Version    string   `xml:"version,attr" json:"version"`
	Lang       string   `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty" json:"lang,omitempty"`
	Exceptions []*Error `xml:"http://www.opengis.net/ows/1.1 Exception" json:"exceptions"`
}

// ReportVersion is the exception report schema version written by NewReport
const ReportVersion = "1.0.0"

// NewReport returns a Report holding the given exceptions
func NewReport(errs ...*Error) *Report {
	return &Report{Version: ReportVersion, Exceptions: errs}
}

func (r *Report) Error() string {
	msgs := make([]string, 0, len(r.Exceptions))
	for _, e := range r.Exceptions {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}
