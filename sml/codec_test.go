package sml

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/owsbind/owserr"
)

func decodeFile(t *testing.T, name string) *SensorML {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	doc, err := Decode(f)
	require.NoError(t, err)
	return doc
}

func TestDecode(t *testing.T) {
	check := assert.New(t)
	doc := decodeFile(t, "testdata/station.xml")

	check.Equal(Version, doc.Version)
	require.Len(t, doc.Members, 1)
	sys := doc.Members[0].System
	require.NotNil(t, sys)
	check.Equal(1, doc.Members[0].count())

	check.Equal("aws-17", sys.ID)
	check.Equal("Automatic weather station", sys.Description)
	check.Equal([]string{"weather", "wind"}, sys.Keywords[0].KeywordList.Keywords)
	check.Equal("AWS-17", sys.Identification[0].IdentifierList.Identifiers[0].Term.Value)
	check.Equal("2009-01-01", sys.ValidTime.TimePeriod.BeginPosition)
	check.Nil(sys.ValidTime.TimeInstant)

	fields := sys.Capabilities[0].DataRecord.Fields
	require.Len(t, fields, 2)
	check.Equal("m/s", fields[0].Quantity.UOM.Code)
	check.Equal(60.0, *fields[0].Quantity.Value)
	check.True(*fields[1].Boolean.Value)
	check.Nil(fields[1].Quantity)

	check.Equal("urn:ogc:def:role:OGC:operator", sys.Contacts[0].Role)
	check.Equal("operator", sys.Contacts[0].ResponsibleParty.ID)
	check.Equal("Berlin", sys.Contacts[0].ResponsibleParty.ContactInfo.Address.City)

	pos := sys.Position.SwePosition
	require.NotNil(t, pos)
	check.Equal("urn:ogc:def:crs:EPSG:4326", pos.ReferenceFrame)
	check.Equal("longitude", pos.Location.Coordinates[1].Name)
	check.Equal(13.4, *pos.Location.Coordinates[1].Quantity.Value)
	check.Nil(pos.Orientation)

	components := sys.Components.Components
	require.Len(t, components, 2)
	comp := components[0].Component
	require.NotNil(t, comp)
	check.Equal([]string{"anemometer"}, comp.Names)
	check.Equal("urn:example:method:cup", comp.Method.Href)
	check.Equal("2010-03-04", comp.History[0].EventList.Members[0].Event.Date)
	check.Equal("http://www.example.org/logger.xml", components[1].Href)
	check.Nil(components[1].GetProcess())

	require.Len(t, sys.Connections, 1)
	check.Equal("this/outputs/windSpeed", sys.Connections[0].Link.Destination.Ref)

	check.Empty(Validate(doc))
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  func(t *testing.T) *SensorML
	}{
		{"decoded", func(t *testing.T) *SensorML { return decodeFile(t, "testdata/station.xml") }},
		{"constructed", func(*testing.T) *SensorML { return sampleSensorML() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			doc := tc.doc(t)

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc))
			out := buf.String()
			check.True(strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
			check.Contains(out, `<SensorML xmlns="http://www.opengis.net/sensorML/1.0.1" version="1.0.1">`)

			again, err := Decode(&buf)
			require.NoError(t, err)
			check.True(doc.Equal(again), "round trip differs:\n%s\n%s", doc, again)
			check.Equal(doc.Hash(), again.Hash())
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		locator string
		text    string
	}{
		{
			name:    "malformed",
			input:   `<a><b></a>`,
			locator: "document",
		},
		{
			name:    "other root",
			input:   `<Capabilities xmlns="http://www.opengis.net/wps/1.0.0"/>`,
			locator: "document",
			text:    "document root is not a SensorML 1.0.1 element",
		},
		{
			name:    "other namespace",
			input:   `<SensorML xmlns="http://www.opengis.net/sensorML/2.0" version="1.0.1"/>`,
			locator: "document",
		},
		{
			name:    "missing version",
			input:   `<SensorML xmlns="http://www.opengis.net/sensorML/1.0.1"/>`,
			locator: "version",
			text:    "unsupported SensorML version (missing)",
		},
		{
			name:    "other version",
			input:   `<SensorML xmlns="http://www.opengis.net/sensorML/1.0.1" version="1.0.0"/>`,
			locator: "version",
			text:    `unsupported SensorML version "1.0.0"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			doc, err := Decode(strings.NewReader(tc.input))
			check.Nil(doc)
			require.Error(t, err)
			oe, ok := owserr.As(err)
			require.True(t, ok, "%+v", err)
			check.Equal(owserr.CodeInvalidParameterValue, oe.Code)
			check.Equal(tc.locator, oe.Locator)
			if tc.text != "" {
				check.Equal([]string{tc.text}, oe.Text)
			}
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	check := assert.New(t)
	doc, err := Decode(strings.NewReader(`<sml:SensorML xmlns:sml="http://www.opengis.net/sensorML/1.0.1" version="1.0.1"/>`))
	require.NoError(t, err)
	check.Empty(doc.Members)
	errs := Validate(doc)
	require.Len(t, errs, 1)
	ce, ok := IsConstraintError(errs[0])
	require.True(t, ok)
	check.Equal(ConstraintError{Path: "/SensorML", Name: "min-occurs", Element: "member", Args: []int{0, 1}}, ce)
}

func TestDecodeNaN(t *testing.T) {
	const in = `<sml:SensorML xmlns:sml="http://www.opengis.net/sensorML/1.0.1"
    xmlns:swe="http://www.opengis.net/swe/1.0.1" version="1.0.1">
  <sml:member>
    <sml:ProcessModel>
      <sml:capabilities>
        <swe:DataRecord>
          <swe:field name="gain">
            <swe:Quantity><swe:uom code="1"/><swe:value>NaN</swe:value></swe:Quantity>
          </swe:field>
        </swe:DataRecord>
      </sml:capabilities>
    </sml:ProcessModel>
  </sml:member>
</sml:SensorML>`
	check := assert.New(t)
	a, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	b, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	v := a.Members[0].ProcessModel.Capabilities[0].DataRecord.Fields[0].Quantity.Value
	require.NotNil(t, v)
	check.True(math.IsNaN(*v))
	check.True(a.Equal(a))
	check.True(a.Equal(b))
	check.Equal(a.Hash(), b.Hash())
}
