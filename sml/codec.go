package sml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/owsbind/owserr"
	"github.com/andaru/owsbind/xmlutil"
)

// Decode reads a SensorML document from r. The document root must be
// sml:SensorML with version 1.0.1; other documents are rejected with
// an *owserr.Error before unmarshaling.
func Decode(r io.Reader) (*SensorML, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "sml: read document")
	}

	doc, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, errors.WithStack(owserr.InvalidParameterValue("document", owserr.WithText(err.Error())))
	}
	root := xmlquery.QuerySelector(doc, xpSensorML)
	if root == nil {
		return nil, errors.WithStack(owserr.InvalidParameterValue("document",
			owserr.WithText("document root is not a SensorML "+Version+" element")))
	}
	if v := root.SelectAttr("version"); v != Version {
		return nil, errors.WithStack(owserr.InvalidParameterValue("version",
			owserr.WithText("unsupported SensorML version "+quoteOrMissing(v))))
	}
	glog.V(1).Infof("sml: decoding document with %d members", len(xmlquery.QuerySelectorAll(doc, xpMember)))

	s := &SensorML{}
	dec := xml.NewDecoder(bytes.NewReader(b))
	dec.CharsetReader = xmlutil.CharsetReader
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrap(err, "sml: decode")
	}
	return s, nil
}

// Encode writes n to w as an indented UTF-8 XML document.
func Encode(w io.Writer, n Node) error {
	return EncodeCharset(w, n, "UTF-8")
}

// EncodeCharset is Encode with the given charset named in the XML
// declaration. The document itself is still written as UTF-8; callers
// transcode w, for instance with xmlutil.CharsetWriter.
func EncodeCharset(w io.Writer, n Node, charset string) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", charset); err != nil {
		return errors.WithStack(err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(n); err != nil {
		return errors.Wrap(err, "sml: encode")
	}
	_, err := io.WriteString(w, "\n")
	return errors.WithStack(err)
}

func quoteOrMissing(v string) string {
	if v == "" {
		return "(missing)"
	}
	return `"` + v + `"`
}

var (
	xpSensorML = xpath.MustCompile(`/*[local-name()='SensorML' and namespace-uri()='http://www.opengis.net/sensorML/1.0.1']`)
	xpMember   = xpath.MustCompile(`/*[local-name()='SensorML']/*[local-name()='member' and namespace-uri()='http://www.opengis.net/sensorML/1.0.1']`)
)
