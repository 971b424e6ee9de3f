package xmlutil

import (
	"encoding/xml"
	"strings"
)

// Namespace URIs of the schemas bound by this module.
const (
	NSSensorML = "http://www.opengis.net/sensorML/1.0.1"
	NSSWE      = "http://www.opengis.net/swe/1.0.1"
	NSGML      = "http://www.opengis.net/gml"
	NSXLink    = "http://www.w3.org/1999/xlink"
)

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// SplitQName splits a qualified name such as "gml:pos" into its
// prefix and local part. Names without a colon have an empty prefix.
func SplitQName(qname string) (prefix, local string) {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[:i], qname[i+1:]
	}
	return "", qname
}
