package sml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		modify func(doc *SensorML)
		want   []string
	}{
		{
			name:   "valid",
			modify: func(*SensorML) {},
		},
		{
			name:   "no members",
			modify: func(doc *SensorML) { doc.Members = nil },
			want:   []string{"constraint min-occurs:1 (saw 0) failed on element member at /SensorML"},
		},
		{
			name:   "empty member",
			modify: func(doc *SensorML) { doc.Members[1] = &Member{} },
			want:   []string{"constraint min-occurs:1 (saw 0) failed on element process at /SensorML/member[1]"},
		},
		{
			name:   "member by reference",
			modify: func(doc *SensorML) { doc.Members[1] = &Member{Href: "http://www.example.org/chain.xml"} },
		},
		{
			name: "two processes",
			modify: func(doc *SensorML) {
				doc.Members[1].ProcessModel = &ProcessModel{}
			},
			want: []string{"constraint max-occurs:1 (saw 2) failed on element process at /SensorML/member[1]"},
		},
		{
			name: "term without value",
			modify: func(doc *SensorML) {
				doc.Members[0].System.Identification[0].IdentifierList.Identifiers[1].Term.Value = ""
			},
			want: []string{"constraint min-occurs:1 (saw 0) failed on element value at " +
				"/SensorML/member[0]/System/identification[0]/IdentifierList/identifier[1]/Term"},
		},
		{
			name: "classifier without term",
			modify: func(doc *SensorML) {
				comp := doc.Members[0].System.Components.Components[0].Component
				comp.Classification[0].ClassifierList.Classifiers[0].Term = nil
			},
			want: []string{"constraint min-occurs:1 (saw 0) failed on element Term at " +
				"/SensorML/member[0]/System/components/ComponentList/component[0]/Component/classification[0]/ClassifierList/classifier[0]"},
		},
		{
			name: "event without date",
			modify: func(doc *SensorML) {
				comp := doc.Members[0].System.Components.Components[0].Component
				comp.History[0].EventList.Members[0].Event.Date = ""
			},
			want: []string{"constraint min-occurs:1 (saw 0) failed on element date at " +
				"/SensorML/member[0]/System/components/ComponentList/component[0]/Component/history[0]/EventList/member[0]/Event"},
		},
		{
			name: "quantity without unit",
			modify: func(doc *SensorML) {
				doc.Members[0].System.Capabilities[0].DataRecord.Fields[0].Quantity.UOM = nil
			},
			want: []string{"constraint min-occurs:1 (saw 0) failed on element uom at " +
				"/SensorML/member[0]/System/capabilities[0]/DataRecord/field[0]/Quantity"},
		},
		{
			name: "empty position",
			modify: func(doc *SensorML) {
				doc.Members[0].System.Positions.Positions[0] = &Position{Name: "anemometerPosition"}
			},
			want: []string{"constraint min-occurs:1 (saw 0) failed on element value at " +
				"/SensorML/member[0]/System/positions/PositionList/position[0]"},
		},
		{
			name: "position with two values",
			modify: func(doc *SensorML) {
				doc.Members[0].System.Position.Vector = sampleVector()
			},
			want: []string{"constraint max-occurs:1 (saw 2) failed on element value at /SensorML/member[0]/System/position"},
		},
		{
			name: "several violations in document order",
			modify: func(doc *SensorML) {
				doc.Members[0].System.Identification[0].IdentifierList.Identifiers[0].Term = nil
				doc.Members[1] = &Member{}
			},
			want: []string{
				"constraint min-occurs:1 (saw 0) failed on element Term at " +
					"/SensorML/member[0]/System/identification[0]/IdentifierList/identifier[0]",
				"constraint min-occurs:1 (saw 0) failed on element process at /SensorML/member[1]",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleSensorML()
			tc.modify(doc)
			var got []string
			for _, err := range Validate(doc) {
				_, ok := IsConstraintError(err)
				require.True(t, ok)
				got = append(got, err.Error())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateNil(t *testing.T) {
	assert.Empty(t, Validate(nil))
}

func TestIsConstraintError(t *testing.T) {
	check := assert.New(t)
	ce := ConstraintError{Path: "/SensorML", Name: "min-occurs", Element: "member", Args: []int{0, 1}}

	got, ok := IsConstraintError(errors.Wrap(ce, "validate"))
	check.True(ok)
	check.Equal(ce, got)

	_, ok = IsConstraintError(errors.New("other"))
	check.False(ok)
}
