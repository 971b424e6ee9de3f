package sml

import "slices"

// ProcessFields holds the elements and attributes every SensorML
// process type shares. It is embedded, flattened, in ProcessModel,
// Component, System and ProcessChain. The promoted accessors need a
// non-nil process.
type ProcessFields struct {
	ID              string             `xml:"http://www.opengis.net/gml id,attr,omitempty"`
	Description     string             `xml:"http://www.opengis.net/gml description,omitempty"`
	Names           []string           `xml:"http://www.opengis.net/gml name,omitempty"`
	Keywords        []*Keywords        `xml:"keywords,omitempty"`
	Identification  []*Identification  `xml:"identification,omitempty"`
	Classification  []*Classification  `xml:"classification,omitempty"`
	ValidTime       *ValidTime         `xml:"validTime,omitempty"`
	Characteristics []*Characteristics `xml:"characteristics,omitempty"`
	Capabilities    []*Capabilities    `xml:"capabilities,omitempty"`
	Contacts        []*Contact         `xml:"contact,omitempty"`
	Documentation   []*Documentation   `xml:"documentation,omitempty"`
	History         []*History         `xml:"history,omitempty"`
}

// AbstractProcess is the capability set shared by all process types.
type AbstractProcess interface {
	GetID() string
	GetDescription() string
	GetNames() []string
	GetKeywords() []AbstractKeywords
	GetIdentification() []AbstractIdentification
	GetClassification() []AbstractClassification
	GetValidTime() AbstractValidTime
	GetCharacteristics() []AbstractCharacteristics
	GetCapabilities() []AbstractCapabilities
	GetContacts() []AbstractContact
	GetDocumentation() []AbstractDocumentation
	GetHistory() []AbstractHistory
}

func newProcessFieldsFrom(src AbstractProcess) (ProcessFields, error) {
	chars, err := convertAllErr(src.GetCharacteristics(), NewCharacteristicsFrom)
	if err != nil {
		return ProcessFields{}, err
	}
	caps, err := convertAllErr(src.GetCapabilities(), NewCapabilitiesFrom)
	if err != nil {
		return ProcessFields{}, err
	}
	return ProcessFields{
		ID:              src.GetID(),
		Description:     src.GetDescription(),
		Names:           slices.Clone(src.GetNames()),
		Keywords:        convertAll(src.GetKeywords(), NewKeywordsFrom),
		Identification:  convertAll(src.GetIdentification(), NewIdentificationFrom),
		Classification:  convertAll(src.GetClassification(), NewClassificationFrom),
		ValidTime:       NewValidTimeFrom(src.GetValidTime()),
		Characteristics: chars,
		Capabilities:    caps,
		Contacts:        convertAll(src.GetContacts(), NewContactFrom),
		Documentation:   convertAll(src.GetDocumentation(), NewDocumentationFrom),
		History:         convertAll(src.GetHistory(), NewHistoryFrom),
	}, nil
}

func (p *ProcessFields) GetID() string {
	if p == nil {
		return ""
	}
	return p.ID
}

func (p *ProcessFields) GetDescription() string {
	if p == nil {
		return ""
	}
	return p.Description
}

func (p *ProcessFields) GetNames() []string {
	if p == nil {
		return nil
	}
	return p.Names
}

func (p *ProcessFields) GetKeywords() []AbstractKeywords {
	if p == nil {
		return nil
	}
	return abstracts[AbstractKeywords](p.Keywords)
}

func (p *ProcessFields) GetIdentification() []AbstractIdentification {
	if p == nil {
		return nil
	}
	return abstracts[AbstractIdentification](p.Identification)
}

func (p *ProcessFields) GetClassification() []AbstractClassification {
	if p == nil {
		return nil
	}
	return abstracts[AbstractClassification](p.Classification)
}

func (p *ProcessFields) GetValidTime() AbstractValidTime {
	if p == nil || p.ValidTime == nil {
		return nil
	}
	return p.ValidTime
}

func (p *ProcessFields) GetCharacteristics() []AbstractCharacteristics {
	if p == nil {
		return nil
	}
	return abstracts[AbstractCharacteristics](p.Characteristics)
}

func (p *ProcessFields) GetCapabilities() []AbstractCapabilities {
	if p == nil {
		return nil
	}
	return abstracts[AbstractCapabilities](p.Capabilities)
}

func (p *ProcessFields) GetContacts() []AbstractContact {
	if p == nil {
		return nil
	}
	return abstracts[AbstractContact](p.Contacts)
}

func (p *ProcessFields) GetDocumentation() []AbstractDocumentation {
	if p == nil {
		return nil
	}
	return abstracts[AbstractDocumentation](p.Documentation)
}

func (p *ProcessFields) GetHistory() []AbstractHistory {
	if p == nil {
		return nil
	}
	return abstracts[AbstractHistory](p.History)
}

func (p *ProcessFields) equal(o *ProcessFields) bool {
	return p.ID == o.ID &&
		p.Description == o.Description &&
		slices.Equal(p.Names, o.Names) &&
		equalNodes(p.Keywords, o.Keywords) &&
		equalNodes(p.Identification, o.Identification) &&
		equalNodes(p.Classification, o.Classification) &&
		p.ValidTime.Equal(o.ValidTime) &&
		equalNodes(p.Characteristics, o.Characteristics) &&
		equalNodes(p.Capabilities, o.Capabilities) &&
		equalNodes(p.Contacts, o.Contacts) &&
		equalNodes(p.Documentation, o.Documentation) &&
		equalNodes(p.History, o.History)
}

func (p *ProcessFields) hash(h hasher) hasher {
	h = h.str(p.ID).str(p.Description).strs(p.Names)
	h = hashNodes(h, p.Keywords)
	h = hashNodes(h, p.Identification)
	h = hashNodes(h, p.Classification)
	h = h.node(p.ValidTime)
	h = hashNodes(h, p.Characteristics)
	h = hashNodes(h, p.Capabilities)
	h = hashNodes(h, p.Contacts)
	h = hashNodes(h, p.Documentation)
	return hashNodes(h, p.History)
}

func (p *ProcessFields) describe(d *describer) *describer {
	d.str("id", p.ID).str("description", p.Description).strs("names", p.Names)
	d = describeNodes(d, "keywords", p.Keywords)
	d = describeNodes(d, "identification", p.Identification)
	d = describeNodes(d, "classification", p.Classification)
	d.node("validTime", p.ValidTime)
	d = describeNodes(d, "characteristics", p.Characteristics)
	d = describeNodes(d, "capabilities", p.Capabilities)
	d = describeNodes(d, "contacts", p.Contacts)
	d = describeNodes(d, "documentation", p.Documentation)
	return describeNodes(d, "history", p.History)
}

// ProcessMethod references the description of a process's algorithm.
type ProcessMethod struct {
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
}

type AbstractProcessMethod interface {
	GetHref() string
}

func NewProcessMethodFrom(src AbstractProcessMethod) *ProcessMethod {
	if isNil(src) {
		return nil
	}
	return &ProcessMethod{Href: src.GetHref()}
}

func (m *ProcessMethod) GetHref() string {
	if m == nil {
		return ""
	}
	return m.Href
}

func (m *ProcessMethod) Equal(o *ProcessMethod) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Href == o.Href
}

func (m *ProcessMethod) Hash() uint64 {
	if m == nil {
		return 0
	}
	return newHasher("ProcessMethod").str(m.Href).sum()
}

func (m *ProcessMethod) String() string {
	if m == nil {
		return ""
	}
	return describe("ProcessMethod").str("href", m.Href).String()
}

// ProcessModel is an atomic, non-physical process.
type ProcessModel struct {
	ProcessFields
	Method *ProcessMethod `xml:"method,omitempty"`
}

type AbstractProcessModel interface {
	AbstractProcess
	GetMethod() AbstractProcessMethod
}

func NewProcessModelFrom(src AbstractProcessModel) (*ProcessModel, error) {
	if isNil(src) {
		return nil, nil
	}
	fields, err := newProcessFieldsFrom(src)
	if err != nil {
		return nil, err
	}
	return &ProcessModel{ProcessFields: fields, Method: NewProcessMethodFrom(src.GetMethod())}, nil
}

func (m *ProcessModel) GetMethod() AbstractProcessMethod {
	if m == nil || m.Method == nil {
		return nil
	}
	return m.Method
}

func (m *ProcessModel) Equal(o *ProcessModel) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.ProcessFields.equal(&o.ProcessFields) && m.Method.Equal(o.Method)
}

func (m *ProcessModel) Hash() uint64 {
	if m == nil {
		return 0
	}
	return m.ProcessFields.hash(newHasher("ProcessModel")).node(m.Method).sum()
}

func (m *ProcessModel) String() string {
	if m == nil {
		return ""
	}
	return m.ProcessFields.describe(describe("ProcessModel")).node("method", m.Method).String()
}

// Component is an atomic physical process, such as a detector.
type Component struct {
	ProcessFields
	Position *Position      `xml:"position,omitempty"`
	Method   *ProcessMethod `xml:"method,omitempty"`
}

type AbstractComponent interface {
	AbstractProcess
	GetPosition() AbstractPosition
	GetMethod() AbstractProcessMethod
}

func NewComponentFrom(src AbstractComponent) (*Component, error) {
	if isNil(src) {
		return nil, nil
	}
	fields, err := newProcessFieldsFrom(src)
	if err != nil {
		return nil, err
	}
	pos, err := NewPositionFrom(src.GetPosition())
	if err != nil {
		return nil, err
	}
	return &Component{
		ProcessFields: fields,
		Position:      pos,
		Method:        NewProcessMethodFrom(src.GetMethod()),
	}, nil
}

func (c *Component) GetPosition() AbstractPosition {
	if c == nil || c.Position == nil {
		return nil
	}
	return c.Position
}

func (c *Component) GetMethod() AbstractProcessMethod {
	if c == nil || c.Method == nil {
		return nil
	}
	return c.Method
}

func (c *Component) Equal(o *Component) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ProcessFields.equal(&o.ProcessFields) &&
		c.Position.Equal(o.Position) &&
		c.Method.Equal(o.Method)
}

func (c *Component) Hash() uint64 {
	if c == nil {
		return 0
	}
	return c.ProcessFields.hash(newHasher("Component")).node(c.Position).node(c.Method).sum()
}

func (c *Component) String() string {
	if c == nil {
		return ""
	}
	return c.ProcessFields.describe(describe("Component")).
		node("position", c.Position).
		node("method", c.Method).String()
}

// ProcessVariant holds the one process a member element carries. At
// most one field is set.
type ProcessVariant struct {
	ProcessModel *ProcessModel `xml:"ProcessModel,omitempty"`
	Component    *Component    `xml:"Component,omitempty"`
	System       *System       `xml:"System,omitempty"`
	ProcessChain *ProcessChain `xml:"ProcessChain,omitempty"`
}

func (v *ProcessVariant) process() AbstractProcess {
	switch {
	case v.System != nil:
		return v.System
	case v.ProcessChain != nil:
		return v.ProcessChain
	case v.Component != nil:
		return v.Component
	case v.ProcessModel != nil:
		return v.ProcessModel
	}
	return nil
}

// count returns how many processes are set.
func (v *ProcessVariant) count() int {
	n := 0
	for _, set := range []bool{v.ProcessModel != nil, v.Component != nil, v.System != nil, v.ProcessChain != nil} {
		if set {
			n++
		}
	}
	return n
}

func (v *ProcessVariant) equal(o *ProcessVariant) bool {
	return v.ProcessModel.Equal(o.ProcessModel) &&
		v.Component.Equal(o.Component) &&
		v.System.Equal(o.System) &&
		v.ProcessChain.Equal(o.ProcessChain)
}

func (v *ProcessVariant) hash(h hasher) hasher {
	return h.node(v.ProcessModel).node(v.Component).node(v.System).node(v.ProcessChain)
}

func (v *ProcessVariant) describe(d *describer) *describer {
	return d.node("processModel", v.ProcessModel).
		node("component", v.Component).
		node("system", v.System).
		node("processChain", v.ProcessChain)
}

// convertProcess dispatches src over the process capability interfaces.
// System is tested before ProcessChain and Component before
// ProcessModel, as each of the former also satisfies the latter.
func convertProcess(element string, src AbstractProcess) (ProcessVariant, error) {
	var (
		v   ProcessVariant
		err error
	)
	switch p := src.(type) {
	case nil:
	case AbstractSystem:
		v.System, err = NewSystemFrom(p)
	case AbstractProcessChain:
		v.ProcessChain, err = NewProcessChainFrom(p)
	case AbstractComponent:
		v.Component, err = NewComponentFrom(p)
	case AbstractProcessModel:
		v.ProcessModel, err = NewProcessModelFrom(p)
	default:
		err = unsupported(element, p)
	}
	if err != nil {
		return ProcessVariant{}, err
	}
	return v, nil
}

var (
	_ AbstractProcess       = (*ProcessFields)(nil)
	_ AbstractProcessMethod = (*ProcessMethod)(nil)
	_ AbstractProcessModel  = (*ProcessModel)(nil)
	_ AbstractComponent     = (*Component)(nil)
)
