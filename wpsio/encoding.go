package wpsio

import (
	"encoding/base64"
	"io"
	"reflect"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/owsbind/xmlutil"
)

// Payload encodings with special handling. Any other encoding is taken
// as an IANA character set name.
const (
	EncodingBase64 = "base64"
	EncodingUTF8   = "UTF-8"
)

// Read resolves the input descriptor for t and decodes a payload from
// r with it. A base64 encoding is removed before the converter runs.
// Character sets are transcoded to UTF-8 for non-XML payloads; XML
// payloads declare their own.
func (r *Registry) Read(t reflect.Type, form Form, hints Format, rd io.Reader) (any, error) {
	d, err := r.FindDescriptor(t, Input, form, hints)
	if err != nil {
		return nil, err
	}
	f := effective(d.Format, hints)
	in := rd
	switch {
	case strings.EqualFold(f.Encoding, EncodingBase64):
		in = base64.NewDecoder(base64.StdEncoding, rd)
	case f.Encoding != "" && !isXML(f.MimeType):
		if in, err = xmlutil.CharsetReader(f.Encoding, rd); err != nil {
			return nil, errors.WithStack(&ConversionError{Descriptor: d, Err: err})
		}
	}
	glog.V(1).Infof("wpsio: reading %v with %s", t, f)
	v, err := d.Converter.Decode(in, f)
	if err != nil {
		return nil, errors.WithStack(&ConversionError{Descriptor: d, Err: err})
	}
	return v, nil
}

// Write resolves the output descriptor for the type of v and encodes v
// to w with it, applying the format's base64 or character set
// encoding.
func (r *Registry) Write(w io.Writer, v any, form Form, hints Format) error {
	t := reflect.TypeOf(v)
	d, err := r.FindDescriptor(t, Output, form, hints)
	if err != nil {
		return err
	}
	f := effective(d.Format, hints)

	var out io.WriteCloser
	switch {
	case strings.EqualFold(f.Encoding, EncodingBase64):
		out = base64.NewEncoder(base64.StdEncoding, w)
	case f.Encoding != "":
		if out, err = xmlutil.CharsetWriter(f.Encoding, w); err != nil {
			return errors.WithStack(&ConversionError{Descriptor: d, Err: err})
		}
	default:
		out = nopWriteCloser{w}
	}
	glog.V(1).Infof("wpsio: writing %v with %s", t, f)
	if err := d.Converter.Encode(out, v, f); err != nil {
		return errors.WithStack(&ConversionError{Descriptor: d, Err: err})
	}
	if err := out.Close(); err != nil {
		return errors.WithStack(&ConversionError{Descriptor: d, Err: err})
	}
	return nil
}

// effective is the format a converter works with: the descriptor's,
// with the caller's encoding hint in place of its own.
func effective(d, hints Format) Format {
	if hints.Encoding != "" {
		d.Encoding = hints.Encoding
	}
	return d
}

// charsetOf returns the character set a payload with the given
// encoding is written in.
func charsetOf(encoding string) string {
	if encoding == "" || strings.EqualFold(encoding, EncodingBase64) {
		return EncodingUTF8
	}
	return encoding
}

func isXML(mimeType string) bool {
	return strings.Contains(strings.ToLower(mimeType), "xml")
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
