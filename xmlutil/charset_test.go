package xmlutil

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharsetReader(t *testing.T) {
	for _, tc := range []struct {
		label string
		in    []byte
		want  string
		err   bool
	}{
		{label: "UTF-8", in: []byte("caf\xc3\xa9"), want: "café"},
		{label: "utf8", in: []byte("caf\xc3\xa9"), want: "café"},
		{label: "ISO-8859-1", in: []byte("caf\xe9"), want: "café"},
		{label: "windows-1252", in: []byte("\x80 5"), want: "€ 5"},
		{label: "no-such-charset", err: true},
	} {
		t.Run(tc.label, func(t *testing.T) {
			r, err := CharsetReader(tc.label, bytes.NewReader(tc.in))
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestCharsetWriter(t *testing.T) {
	check := assert.New(t)
	var buf bytes.Buffer
	w, err := CharsetWriter("ISO-8859-1", &buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, "café")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	check.Equal([]byte("caf\xe9"), buf.Bytes())

	buf.Reset()
	w, err = CharsetWriter("UTF-8", &buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, "café")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	check.Equal("café", buf.String())
}

func TestCharsetReaderDecodesDeclaredXML(t *testing.T) {
	var v struct {
		City string `xml:"city"`
	}
	dec := xml.NewDecoder(strings.NewReader("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><a><city>M\xfcnchen</city></a>"))
	dec.CharsetReader = CharsetReader
	require.NoError(t, dec.Decode(&v))
	assert.Equal(t, "München", v.City)
}

func TestIsUTF8(t *testing.T) {
	check := assert.New(t)
	check.True(IsUTF8("UTF-8"))
	check.True(IsUTF8("utf-8"))
	check.False(IsUTF8("ISO-8859-1"))
	check.False(IsUTF8(""))
}
