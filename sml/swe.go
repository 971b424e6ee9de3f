package sml

// UnitOfMeasure is a swe:uom: a UCUM code or a reference to a unit
// definition.
type UnitOfMeasure struct {
	Code string `xml:"code,attr,omitempty"`
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
}

type AbstractUnitOfMeasure interface {
	GetCode() string
	GetHref() string
}

func NewUnitOfMeasureFrom(src AbstractUnitOfMeasure) *UnitOfMeasure {
	if isNil(src) {
		return nil
	}
	return &UnitOfMeasure{Code: src.GetCode(), Href: src.GetHref()}
}

func (u *UnitOfMeasure) GetCode() string {
	if u == nil {
		return ""
	}
	return u.Code
}

func (u *UnitOfMeasure) GetHref() string {
	if u == nil {
		return ""
	}
	return u.Href
}

func (u *UnitOfMeasure) Equal(o *UnitOfMeasure) bool {
	if u == nil || o == nil {
		return u == o
	}
	return *u == *o
}

func (u *UnitOfMeasure) Hash() uint64 {
	if u == nil {
		return 0
	}
	return newHasher("UnitOfMeasure").str(u.Code).str(u.Href).sum()
}

func (u *UnitOfMeasure) String() string {
	if u == nil {
		return ""
	}
	return describe("UnitOfMeasure").str("code", u.Code).str("href", u.Href).String()
}

// AbstractScalar is implemented by the SWE simple components a Field
// can hold.
type AbstractScalar interface {
	GetDefinition() string
}

type Quantity struct {
	Definition string         `xml:"definition,attr,omitempty"`
	UOM        *UnitOfMeasure `xml:"uom,omitempty"`
	Value      *float64       `xml:"value,omitempty"`
}

type AbstractQuantity interface {
	AbstractScalar
	GetUOM() AbstractUnitOfMeasure
	GetValue() *float64
}

func NewQuantityFrom(src AbstractQuantity) *Quantity {
	if isNil(src) {
		return nil
	}
	return &Quantity{
		Definition: src.GetDefinition(),
		UOM:        NewUnitOfMeasureFrom(src.GetUOM()),
		Value:      copyFloat(src.GetValue()),
	}
}

func (q *Quantity) GetDefinition() string {
	if q == nil {
		return ""
	}
	return q.Definition
}

func (q *Quantity) GetUOM() AbstractUnitOfMeasure {
	if q == nil || q.UOM == nil {
		return nil
	}
	return q.UOM
}

func (q *Quantity) GetValue() *float64 {
	if q == nil {
		return nil
	}
	return q.Value
}

func (q *Quantity) Equal(o *Quantity) bool {
	if q == nil || o == nil {
		return q == o
	}
	return q.Definition == o.Definition && q.UOM.Equal(o.UOM) && equalFloat(q.Value, o.Value)
}

func (q *Quantity) Hash() uint64 {
	if q == nil {
		return 0
	}
	return newHasher("Quantity").str(q.Definition).node(q.UOM).float(q.Value).sum()
}

func (q *Quantity) String() string {
	if q == nil {
		return ""
	}
	return describe("Quantity").
		str("definition", q.Definition).
		node("uom", q.UOM).
		float("value", q.Value).String()
}

type Text struct {
	Definition string `xml:"definition,attr,omitempty"`
	Value      string `xml:"value,omitempty"`
}

type AbstractText interface {
	AbstractScalar
	GetValue() string
}

func NewTextFrom(src AbstractText) *Text {
	if isNil(src) {
		return nil
	}
	return &Text{Definition: src.GetDefinition(), Value: src.GetValue()}
}

func (t *Text) GetDefinition() string {
	if t == nil {
		return ""
	}
	return t.Definition
}

func (t *Text) GetValue() string {
	if t == nil {
		return ""
	}
	return t.Value
}

func (t *Text) Equal(o *Text) bool {
	if t == nil || o == nil {
		return t == o
	}
	return *t == *o
}

func (t *Text) Hash() uint64 {
	if t == nil {
		return 0
	}
	return newHasher("Text").str(t.Definition).str(t.Value).sum()
}

func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return describe("Text").str("definition", t.Definition).str("value", t.Value).String()
}

type Boolean struct {
	Definition string `xml:"definition,attr,omitempty"`
	Value      *bool  `xml:"value,omitempty"`
}

type AbstractBoolean interface {
	AbstractScalar
	GetValue() *bool
}

func NewBooleanFrom(src AbstractBoolean) *Boolean {
	if isNil(src) {
		return nil
	}
	return &Boolean{Definition: src.GetDefinition(), Value: copyBool(src.GetValue())}
}

func (b *Boolean) GetDefinition() string {
	if b == nil {
		return ""
	}
	return b.Definition
}

func (b *Boolean) GetValue() *bool {
	if b == nil {
		return nil
	}
	return b.Value
}

func (b *Boolean) Equal(o *Boolean) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Definition == o.Definition && equalBool(b.Value, o.Value)
}

func (b *Boolean) Hash() uint64 {
	if b == nil {
		return 0
	}
	return newHasher("Boolean").str(b.Definition).boolean(b.Value).sum()
}

func (b *Boolean) String() string {
	if b == nil {
		return ""
	}
	return describe("Boolean").str("definition", b.Definition).boolean("value", b.Value).String()
}

// Field is a named swe:field of a DataRecord holding one scalar.
type Field struct {
	Name     string    `xml:"name,attr,omitempty"`
	Quantity *Quantity `xml:"Quantity,omitempty"`
	Text     *Text     `xml:"Text,omitempty"`
	Boolean  *Boolean  `xml:"Boolean,omitempty"`
}

type AbstractField interface {
	GetName() string
	GetValue() AbstractScalar
}

// NewFieldFrom copies src. The field value must be a quantity, text or
// boolean; any other scalar is an *UnsupportedTypeError.
func NewFieldFrom(src AbstractField) (*Field, error) {
	if isNil(src) {
		return nil, nil
	}
	f := &Field{Name: src.GetName()}
	switch v := src.GetValue().(type) {
	case nil:
	case AbstractQuantity:
		f.Quantity = NewQuantityFrom(v)
	case AbstractText:
		f.Text = NewTextFrom(v)
	case AbstractBoolean:
		f.Boolean = NewBooleanFrom(v)
	default:
		return nil, unsupported("field", v)
	}
	return f, nil
}

func (f *Field) GetName() string {
	if f == nil {
		return ""
	}
	return f.Name
}

// GetValue returns the field's scalar, or nil if none is set.
func (f *Field) GetValue() AbstractScalar {
	switch {
	case f == nil:
		return nil
	case f.Quantity != nil:
		return f.Quantity
	case f.Text != nil:
		return f.Text
	case f.Boolean != nil:
		return f.Boolean
	}
	return nil
}

func (f *Field) Equal(o *Field) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.Name == o.Name &&
		f.Quantity.Equal(o.Quantity) &&
		f.Text.Equal(o.Text) &&
		f.Boolean.Equal(o.Boolean)
}

func (f *Field) Hash() uint64 {
	if f == nil {
		return 0
	}
	return newHasher("Field").str(f.Name).node(f.Quantity).node(f.Text).node(f.Boolean).sum()
}

func (f *Field) String() string {
	if f == nil {
		return ""
	}
	return describe("Field").
		str("name", f.Name).
		node("quantity", f.Quantity).
		node("text", f.Text).
		node("boolean", f.Boolean).String()
}

type DataRecord struct {
	Definition string   `xml:"definition,attr,omitempty"`
	Fields     []*Field `xml:"field,omitempty"`
}

type AbstractDataRecord interface {
	GetDefinition() string
	GetFields() []AbstractField
}

func NewDataRecordFrom(src AbstractDataRecord) (*DataRecord, error) {
	if isNil(src) {
		return nil, nil
	}
	fields, err := convertAllErr(src.GetFields(), NewFieldFrom)
	if err != nil {
		return nil, err
	}
	return &DataRecord{Definition: src.GetDefinition(), Fields: fields}, nil
}

func (r *DataRecord) GetDefinition() string {
	if r == nil {
		return ""
	}
	return r.Definition
}

func (r *DataRecord) GetFields() []AbstractField {
	if r == nil {
		return nil
	}
	return abstracts[AbstractField](r.Fields)
}

func (r *DataRecord) Equal(o *DataRecord) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Definition == o.Definition && equalNodes(r.Fields, o.Fields)
}

func (r *DataRecord) Hash() uint64 {
	if r == nil {
		return 0
	}
	return hashNodes(newHasher("DataRecord").str(r.Definition), r.Fields).sum()
}

func (r *DataRecord) String() string {
	if r == nil {
		return ""
	}
	return describeNodes(describe("DataRecord").str("definition", r.Definition), "fields", r.Fields).String()
}

// Coordinate is one named axis value of a Vector.
type Coordinate struct {
	Name     string    `xml:"name,attr,omitempty"`
	Quantity *Quantity `xml:"Quantity,omitempty"`
}

type AbstractCoordinate interface {
	GetName() string
	GetQuantity() AbstractQuantity
}

func NewCoordinateFrom(src AbstractCoordinate) *Coordinate {
	if isNil(src) {
		return nil
	}
	return &Coordinate{Name: src.GetName(), Quantity: NewQuantityFrom(src.GetQuantity())}
}

func (c *Coordinate) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Coordinate) GetQuantity() AbstractQuantity {
	if c == nil || c.Quantity == nil {
		return nil
	}
	return c.Quantity
}

func (c *Coordinate) Equal(o *Coordinate) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name && c.Quantity.Equal(o.Quantity)
}

func (c *Coordinate) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Coordinate").str(c.Name).node(c.Quantity).sum()
}

func (c *Coordinate) String() string {
	if c == nil {
		return ""
	}
	return describe("Coordinate").str("name", c.Name).node("quantity", c.Quantity).String()
}

type Vector struct {
	Definition     string        `xml:"definition,attr,omitempty"`
	ReferenceFrame string        `xml:"referenceFrame,attr,omitempty"`
	Coordinates    []*Coordinate `xml:"coordinate,omitempty"`
}

type AbstractVector interface {
	GetDefinition() string
	GetReferenceFrame() string
	GetCoordinates() []AbstractCoordinate
}

func NewVectorFrom(src AbstractVector) *Vector {
	if isNil(src) {
		return nil
	}
	return &Vector{
		Definition:     src.GetDefinition(),
		ReferenceFrame: src.GetReferenceFrame(),
		Coordinates:    convertAll(src.GetCoordinates(), NewCoordinateFrom),
	}
}

func (v *Vector) GetDefinition() string {
	if v == nil {
		return ""
	}
	return v.Definition
}

func (v *Vector) GetReferenceFrame() string {
	if v == nil {
		return ""
	}
	return v.ReferenceFrame
}

func (v *Vector) GetCoordinates() []AbstractCoordinate {
	if v == nil {
		return nil
	}
	return abstracts[AbstractCoordinate](v.Coordinates)
}

func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.Definition == o.Definition &&
		v.ReferenceFrame == o.ReferenceFrame &&
		equalNodes(v.Coordinates, o.Coordinates)
}

func (v *Vector) Hash() uint64 {
	if v == nil {
		return 0
	}
	return hashNodes(newHasher("Vector").str(v.Definition).str(v.ReferenceFrame), v.Coordinates).sum()
}

func (v *Vector) String() string {
	if v == nil {
		return ""
	}
	d := describe("Vector").str("definition", v.Definition).str("referenceFrame", v.ReferenceFrame)
	return describeNodes(d, "coordinates", v.Coordinates).String()
}

// SwePosition is a swe:Position: a location and orientation of a local
// frame within a reference frame.
type SwePosition struct {
	ReferenceFrame string  `xml:"referenceFrame,attr,omitempty"`
	LocalFrame     string  `xml:"localFrame,attr,omitempty"`
	Location       *Vector `xml:"location>Vector,omitempty"`
	Orientation    *Vector `xml:"orientation>Vector,omitempty"`
}

type AbstractSwePosition interface {
	GetReferenceFrame() string
	GetLocalFrame() string
	GetLocation() AbstractVector
	GetOrientation() AbstractVector
}

func NewSwePositionFrom(src AbstractSwePosition) *SwePosition {
	if isNil(src) {
		return nil
	}
	return &SwePosition{
		ReferenceFrame: src.GetReferenceFrame(),
		LocalFrame:     src.GetLocalFrame(),
		Location:       NewVectorFrom(src.GetLocation()),
		Orientation:    NewVectorFrom(src.GetOrientation()),
	}
}

func (p *SwePosition) GetReferenceFrame() string {
	if p == nil {
		return ""
	}
	return p.ReferenceFrame
}

func (p *SwePosition) GetLocalFrame() string {
	if p == nil {
		return ""
	}
	return p.LocalFrame
}

func (p *SwePosition) GetLocation() AbstractVector {
	if p == nil || p.Location == nil {
		return nil
	}
	return p.Location
}

func (p *SwePosition) GetOrientation() AbstractVector {
	if p == nil || p.Orientation == nil {
		return nil
	}
	return p.Orientation
}

func (p *SwePosition) Equal(o *SwePosition) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.ReferenceFrame == o.ReferenceFrame &&
		p.LocalFrame == o.LocalFrame &&
		p.Location.Equal(o.Location) &&
		p.Orientation.Equal(o.Orientation)
}

func (p *SwePosition) Hash() uint64 {
	if p == nil {
		return 0
	}
	return newHasher("SwePosition").
		str(p.ReferenceFrame).
		str(p.LocalFrame).
		node(p.Location).
		node(p.Orientation).sum()
}

func (p *SwePosition) String() string {
	if p == nil {
		return ""
	}
	return describe("SwePosition").
		str("referenceFrame", p.ReferenceFrame).
		str("localFrame", p.LocalFrame).
		node("location", p.Location).
		node("orientation", p.Orientation).String()
}

var (
	_ AbstractUnitOfMeasure = (*UnitOfMeasure)(nil)
	_ AbstractQuantity      = (*Quantity)(nil)
	_ AbstractText          = (*Text)(nil)
	_ AbstractBoolean       = (*Boolean)(nil)
	_ AbstractField         = (*Field)(nil)
	_ AbstractDataRecord    = (*DataRecord)(nil)
	_ AbstractCoordinate    = (*Coordinate)(nil)
	_ AbstractVector        = (*Vector)(nil)
	_ AbstractSwePosition   = (*SwePosition)(nil)
)
