package xmlutil

import (
	"encoding/xml"
	"sort"
)

// PrefixMap is a prefix to namespace URI map
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the passed XML attributes
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			pmap[attr.Name.Local] = attr.Value
		}
	}
	return pmap
}

// OGCPrefixes returns the conventional prefixes used in SensorML and
// GML documents.
func OGCPrefixes() PrefixMap {
	return PrefixMap{
		"sml":   NSSensorML,
		"swe":   NSSWE,
		"gml":   NSGML,
		"xlink": NSXLink,
	}
}

// Attr returns the prefix map contents as a series of xmlns:<prefix>=<nsuri> attributes,
// sorted lexically by prefix.
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		a = append(a, xml.Attr{Name: xml.Name{Space: "xmlns", Local: k}, Value: v})
	}
	if len(a) > 0 {
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted lexically.
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Resolve expands a qualified name using the map. An unknown prefix
// leaves the namespace empty.
func (m PrefixMap) Resolve(qname string) xml.Name {
	prefix, local := SplitQName(qname)
	return xml.Name{Space: m[prefix], Local: local}
}

// QName returns the prefixed form of n, or the bare local name when no
// prefix is bound to its namespace.
func (m PrefixMap) QName(n xml.Name) string {
	if pfxes := m.Prefix(n.Space); len(pfxes) > 0 && pfxes[0] != "" {
		return pfxes[0] + ":" + n.Local
	}
	return n.Local
}

// Bind adds prefix for nsURI unless the prefix is already bound or the
// namespace already has a prefix, and reports whether it did.
func (m PrefixMap) Bind(prefix, nsURI string) bool {
	if prefix == "" || nsURI == "" || m.Namespace(prefix) != "" || len(m.Prefix(nsURI)) > 0 {
		return false
	}
	m[prefix] = nsURI
	return true
}

// Merge binds every prefix of o not in conflict with m, see Bind.
func (m PrefixMap) Merge(o PrefixMap) PrefixMap {
	for _, a := range o.Attr() {
		m.Bind(a.Name.Local, a.Value)
	}
	return m
}
