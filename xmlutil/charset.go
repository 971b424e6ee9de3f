package xmlutil

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset returns the encoding registered with IANA under name, e.g.
// "ISO-8859-1" or "windows-1252". Matching is case-insensitive.
func Charset(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", name)
	}
	if enc == nil {
		return nil, errors.Errorf("charset %q is not supported", name)
	}
	return enc, nil
}

// IsUTF8 reports whether name is an IANA name of UTF-8.
func IsUTF8(name string) bool {
	if strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	return err == nil && enc == unicode.UTF8
}

// CharsetReader converts input in the named character set to UTF-8.
// Its signature matches xml.Decoder's CharsetReader field.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	if IsUTF8(label) {
		return input, nil
	}
	enc, err := Charset(label)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

// CharsetWriter returns a writer converting UTF-8 written to it into
// the named character set. Close flushes any buffered output.
func CharsetWriter(label string, output io.Writer) (io.WriteCloser, error) {
	if IsUTF8(label) {
		return nopCloser{output}, nil
	}
	enc, err := Charset(label)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(output, enc.NewEncoder()), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
