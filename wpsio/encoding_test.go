package wpsio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/owsbind/owserr"
	"github.com/andaru/owsbind/sml"
)

func TestReadLiteral(t *testing.T) {
	r := NewStandardRegistry()
	for _, tc := range []struct {
		name  string
		hints Format
		in    string
		want  any
	}{
		{"plain", Format{}, " 2.5\n", "2.5"},
		{"base64", Format{Encoding: "base64"}, "aGVsbG8=", "hello"},
		{"latin-1", Format{Encoding: "ISO-8859-1"}, "caf\xe9", "café"},
		{"utf-8", Format{MimeType: MimeText, Encoding: "utf-8"}, "café", "café"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := r.Read(stringType, FormLiteral, tc.hints, strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestWriteLiteral(t *testing.T) {
	r := NewStandardRegistry()
	for _, tc := range []struct {
		name  string
		v     any
		hints Format
		want  string
	}{
		{"float", 2.5, Format{}, "2.5"},
		{"bool", true, Format{}, "true"},
		{"base64", "hello", Format{Encoding: "BASE64"}, "aGVsbG8="},
		{"latin-1", "café", Format{Encoding: "ISO-8859-1"}, "caf\xe9"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, r.Write(&b, tc.v, FormLiteral, tc.hints))
			assert.Equal(t, tc.want, b.String())
		})
	}
}

func TestReadConversionError(t *testing.T) {
	check := assert.New(t)
	r := NewStandardRegistry()
	_, err := r.Read(intType, FormLiteral, Format{}, strings.NewReader("twelve"))
	require.Error(t, err)

	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	check.Equal(intType, ce.Descriptor.Type)
	ex := ce.Exception()
	check.Equal(owserr.CodeInvalidParameterValue, ex.Code)
	check.Equal("data", ex.Locator)
}

func TestWriteErrors(t *testing.T) {
	r := NewStandardRegistry()

	err := r.Write(&bytes.Buffer{}, struct{}{}, FormLiteral, Format{})
	var nce *NoConverterError
	assert.True(t, errors.As(err, &nce))

	err = r.Write(&bytes.Buffer{}, "x", FormLiteral, Format{Encoding: "no-such-charset"})
	var ce *ConversionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, owserr.CodeNoApplicableCode, ce.Exception().Code)
}

func TestSensorMLPayload(t *testing.T) {
	check := assert.New(t)
	r := NewStandardRegistry()
	doc := sml.New(&sml.Member{Href: "urn:example:sensor:1"})

	var b bytes.Buffer
	require.NoError(t, r.Write(&b, doc, FormComplex, Format{Encoding: "base64"}))
	check.NotContains(b.String(), "<")

	v, err := r.Read(sensorMLType, FormComplex, Format{Encoding: "base64"}, &b)
	require.NoError(t, err)
	got, ok := v.(*sml.SensorML)
	require.True(t, ok)
	check.True(doc.Equal(got), "got %v", got)
}

func TestSensorMLCharset(t *testing.T) {
	check := assert.New(t)
	r := NewStandardRegistry()
	doc := sml.New(&sml.Member{Href: "urn:example:capteur:météo"})

	var b bytes.Buffer
	require.NoError(t, r.Write(&b, doc, FormComplex, Format{Encoding: "ISO-8859-1"}))
	check.True(strings.HasPrefix(b.String(), `<?xml version="1.0" encoding="ISO-8859-1"?>`))
	check.Contains(b.String(), "m\xe9t\xe9o")

	v, err := r.Read(sensorMLType, FormComplex, Format{Encoding: "ISO-8859-1"}, &b)
	require.NoError(t, err)
	check.True(doc.Equal(v.(*sml.SensorML)))
}
