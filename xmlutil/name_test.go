package xmlutil

import (
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXMLName(t *testing.T) {
	for _, tc := range []struct {
		local  string
		spaces []string
		want   xml.Name
	}{
		{local: "Term", want: xml.Name{Local: "Term"}},
		{local: "Term", spaces: []string{NSSensorML}, want: xml.Name{Local: "Term", Space: NSSensorML}},
		{local: "pos", spaces: []string{NSGML, NSSWE}, want: xml.Name{Local: "pos", Space: NSGML}},
		{want: xml.Name{}},
	} {
		t.Run(fmt.Sprintf("%v", tc.want), func(t *testing.T) { assert.New(t).Equal(tc.want, XMLName(tc.local, tc.spaces...)) })
	}
}

func TestSplitQName(t *testing.T) {
	for _, tc := range []struct {
		in, prefix, local string
	}{
		{in: "gml:pos", prefix: "gml", local: "pos"},
		{in: "pos", local: "pos"},
		{in: ":pos", local: "pos"},
		{in: "a:b:c", prefix: "a", local: "b:c"},
		{},
	} {
		t.Run(tc.in, func(t *testing.T) {
			check := assert.New(t)
			prefix, local := SplitQName(tc.in)
			check.Equal(tc.prefix, prefix)
			check.Equal(tc.local, local)
		})
	}
}
