package sml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type equalNode[T any] interface {
	Node
	Equal(T) bool
}

func checkCopy[T equalNode[T]](t *testing.T, n, cp T) {
	check := assert.New(t)
	check.True(n.Equal(cp), "copy differs:\n%s\n%s", n, cp)
	check.True(cp.Equal(n))
	check.Equal(n.Hash(), cp.Hash())
	check.Equal(n.String(), cp.String())
	check.NotEmpty(cp.String())
}

func TestCopyRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		run  func(t *testing.T)
	}{
		{"Term", func(t *testing.T) { n := sampleTerm("AWS-17"); checkCopy(t, n, NewTermFrom(n)) }},
		{"Identification", func(t *testing.T) { n := sampleIdentification(); checkCopy(t, n, NewIdentificationFrom(n)) }},
		{"Classification", func(t *testing.T) { n := sampleClassification(); checkCopy(t, n, NewClassificationFrom(n)) }},
		{"Contact", func(t *testing.T) { n := sampleContact(); checkCopy(t, n, NewContactFrom(n)) }},
		{"Documentation", func(t *testing.T) { n := sampleDocumentation(); checkCopy(t, n, NewDocumentationFrom(n)) }},
		{"History", func(t *testing.T) { n := sampleHistory(); checkCopy(t, n, NewHistoryFrom(n)) }},
		{"Vector", func(t *testing.T) { n := sampleVector(); checkCopy(t, n, NewVectorFrom(n)) }},
		{"ValidTime", func(t *testing.T) {
			n := &ValidTime{TimePeriod: &TimePeriod{BeginPosition: "2009", EndPosition: "2010"}}
			checkCopy(t, n, NewValidTimeFrom(n))
		}},
		{"DataRecord", func(t *testing.T) {
			n := sampleDataRecord()
			cp, err := NewDataRecordFrom(n)
			require.NoError(t, err)
			checkCopy(t, n, cp)
		}},
		{"Component", func(t *testing.T) {
			n := sampleComponent()
			cp, err := NewComponentFrom(n)
			require.NoError(t, err)
			checkCopy(t, n, cp)
		}},
		{"System", func(t *testing.T) {
			n := sampleSystem()
			cp, err := NewSystemFrom(n)
			require.NoError(t, err)
			checkCopy(t, n, cp)
		}},
		{"ProcessChain", func(t *testing.T) {
			n := sampleChain()
			cp, err := NewProcessChainFrom(n)
			require.NoError(t, err)
			checkCopy(t, n, cp)
		}},
		{"SensorML", func(t *testing.T) {
			n := sampleSensorML()
			cp, err := NewSensorMLFrom(n)
			require.NoError(t, err)
			checkCopy(t, n, cp)
		}},
	} {
		t.Run(tc.name, tc.run)
	}
}

func TestCopyIsDeep(t *testing.T) {
	check := assert.New(t)
	src := sampleSensorML()
	cp, err := NewSensorMLFrom(src)
	require.NoError(t, err)

	cp.Members[0].System.Keywords[0].KeywordList.Keywords[0] = "changed"
	*cp.Members[0].System.Capabilities[0].DataRecord.Fields[0].Quantity.Value = 1
	cp.Members[1].ProcessChain.Names = append(cp.Members[1].ProcessChain.Names, "added")

	check.False(src.Equal(cp))
	check.Equal("weather", src.Members[0].System.Keywords[0].KeywordList.Keywords[0])
	check.Equal(60.0, *src.Members[0].System.Capabilities[0].DataRecord.Fields[0].Quantity.Value)
	check.Empty(src.Members[1].ProcessChain.Names)
}

func TestConvertDeterministic(t *testing.T) {
	check := assert.New(t)
	src := sampleSensorML()
	a, err := NewSensorMLFrom(src)
	require.NoError(t, err)
	b, err := NewSensorMLFrom(src)
	require.NoError(t, err)
	check.NotNil(a)
	check.True(a.Equal(b))
	check.Equal(a.Hash(), b.Hash())
	check.NotSame(a.Members[0], b.Members[0])
}

func TestConvertNil(t *testing.T) {
	check := assert.New(t)
	check.Nil(NewTermFrom(nil))
	check.Nil(NewTermFrom((*Term)(nil)))
	check.Nil(NewVectorFrom((*Vector)(nil)))

	s, err := NewSystemFrom(nil)
	check.NoError(err)
	check.Nil(s)

	doc, err := NewSensorMLFrom((*SensorML)(nil))
	check.NoError(err)
	check.Nil(doc)
}

func TestConvertKeepsAbsentFields(t *testing.T) {
	check := assert.New(t)
	n := &Component{ProcessFields: ProcessFields{ID: "c"}}
	cp, err := NewComponentFrom(n)
	require.NoError(t, err)
	check.Nil(cp.Position)
	check.Nil(cp.Method)
	check.Nil(cp.Keywords)
	check.Nil(cp.ValidTime)
	check.True(n.Equal(cp))
}

func TestEqual(t *testing.T) {
	for _, tc := range []struct {
		name string
		got  bool
		want bool
	}{
		{"nil terms", (*Term)(nil).Equal(nil), true},
		{"nil and empty", (*Term)(nil).Equal(&Term{}), false},
		{"empty and nil", (&Term{}).Equal(nil), false},
		{"same term", sampleTerm("a").Equal(sampleTerm("a")), true},
		{"different term", sampleTerm("a").Equal(sampleTerm("b")), false},
		{
			"keyword order",
			(&KeywordList{Keywords: []string{"a", "b"}}).Equal(&KeywordList{Keywords: []string{"b", "a"}}),
			false,
		},
		{"absent value", (&Quantity{}).Equal(&Quantity{Value: ptrFloat(0)}), false},
		{"signed zero", (&Quantity{Value: ptrFloat(0)}).Equal(&Quantity{Value: ptrFloat(math.Copysign(0, -1))}), true},
		{"NaN", (&Quantity{Value: ptrFloat(math.NaN())}).Equal(&Quantity{Value: ptrFloat(math.NaN())}), true},
		{"NaN and number", (&Quantity{Value: ptrFloat(math.NaN())}).Equal(&Quantity{Value: ptrFloat(0)}), false},
		{"absent boolean", (&Boolean{}).Equal(&Boolean{Value: ptrBool(false)}), false},
		{
			"process kind",
			(&Member{ProcessVariant: ProcessVariant{System: &System{ProcessFields: ProcessFields{ID: "p"}}}}).Equal(
				&Member{ProcessVariant: ProcessVariant{ProcessChain: &ProcessChain{ProcessFields: ProcessFields{ID: "p"}}}}),
			false,
		},
		{
			"position kind",
			(&Position{Vector: &Vector{}}).Equal(&Position{SwePosition: &SwePosition{}}),
			false,
		},
		{"system", sampleSystem().Equal(sampleSystem()), true},
		{"document", sampleSensorML().Equal(sampleSensorML()), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestHash(t *testing.T) {
	check := assert.New(t)

	doc := sampleSensorML()
	h := doc.Hash()
	check.Equal(h, doc.Hash())
	check.Equal(h, sampleSensorML().Hash())

	doc.Members[0].System.ID = "other"
	check.NotEqual(h, doc.Hash())

	check.Zero((*SensorML)(nil).Hash())
	check.Zero((*Term)(nil).Hash())
	check.NotZero((&Term{}).Hash())

	check.Equal(
		(&Quantity{Value: ptrFloat(0)}).Hash(),
		(&Quantity{Value: ptrFloat(math.Copysign(0, -1))}).Hash())
	check.NotEqual((&Quantity{}).Hash(), (&Quantity{Value: ptrFloat(0)}).Hash())
	negNaN := math.Float64frombits(math.Float64bits(math.NaN()) | 1<<63 | 1)
	check.Equal(
		(&Quantity{Value: ptrFloat(math.NaN())}).Hash(),
		(&Quantity{Value: &negNaN}).Hash())

	// same fields, different kinds
	check.NotEqual(
		(&Identifier{Name: "n", Term: sampleTerm("v")}).Hash(),
		(&Classifier{Name: "n", Term: sampleTerm("v")}).Hash())
	check.NotEqual(
		(&KeywordList{Keywords: []string{"a", "b"}}).Hash(),
		(&KeywordList{Keywords: []string{"b", "a"}}).Hash())
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		name string
		node Node
		want string
	}{
		{"nil", (*Term)(nil), ""},
		{"empty", &Term{}, "Term{}"},
		{"term", &Term{Definition: "urn:x", Value: "v"}, `Term{definition="urn:x" value="v"}`},
		{
			"identifier",
			&Identifier{Name: "shortName", Term: &Term{Value: "AWS-17"}},
			`Identifier{name="shortName" term=Term{value="AWS-17"}}`,
		},
		{
			"quantity",
			&Quantity{UOM: &UnitOfMeasure{Code: "m/s"}, Value: ptrFloat(2.5)},
			`Quantity{uom=UnitOfMeasure{code="m/s"} value=2.5}`,
		},
		{
			"keywords",
			&KeywordList{Keywords: []string{"a", "b"}},
			`KeywordList{keywords=["a" "b"]}`,
		},
		{
			"member",
			&Member{ProcessVariant: ProcessVariant{ProcessModel: &ProcessModel{ProcessFields: ProcessFields{ID: "m"}}}},
			`Member{processModel=ProcessModel{id="m"}}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.String())
		})
	}
}
