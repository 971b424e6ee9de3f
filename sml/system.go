package sml

// LinkRef points at a port of a component, e.g. "this/inputs/speed".
type LinkRef struct {
	Ref string `xml:"ref,attr,omitempty"`
}

type AbstractLinkRef interface {
	GetRef() string
}

func NewLinkRefFrom(src AbstractLinkRef) *LinkRef {
	if isNil(src) {
		return nil
	}
	return &LinkRef{Ref: src.GetRef()}
}

func (l *LinkRef) GetRef() string {
	if l == nil {
		return ""
	}
	return l.Ref
}

func (l *LinkRef) Equal(o *LinkRef) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.Ref == o.Ref
}

func (l *LinkRef) Hash() uint64 {
	if l == nil {
		return 0
	}
	return newHasher("LinkRef").str(l.Ref).sum()
}

func (l *LinkRef) String() string {
	if l == nil {
		return ""
	}
	return describe("LinkRef").str("ref", l.Ref).String()
}

type Link struct {
	Source      *LinkRef `xml:"source,omitempty"`
	Destination *LinkRef `xml:"destination,omitempty"`
}

type AbstractLink interface {
	GetSource() AbstractLinkRef
	GetDestination() AbstractLinkRef
}

func NewLinkFrom(src AbstractLink) *Link {
	if isNil(src) {
		return nil
	}
	return &Link{
		Source:      NewLinkRefFrom(src.GetSource()),
		Destination: NewLinkRefFrom(src.GetDestination()),
	}
}

func (l *Link) GetSource() AbstractLinkRef {
	if l == nil || l.Source == nil {
		return nil
	}
	return l.Source
}

func (l *Link) GetDestination() AbstractLinkRef {
	if l == nil || l.Destination == nil {
		return nil
	}
	return l.Destination
}

func (l *Link) Equal(o *Link) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.Source.Equal(o.Source) && l.Destination.Equal(o.Destination)
}

func (l *Link) Hash() uint64 {
	if l == nil {
		return 0
	}
	return newHasher("Link").node(l.Source).node(l.Destination).sum()
}

func (l *Link) String() string {
	if l == nil {
		return ""
	}
	return describe("Link").node("source", l.Source).node("destination", l.Destination).String()
}

// Connection is one named data link between component ports.
type Connection struct {
	Name string `xml:"name,attr,omitempty"`
	Link *Link  `xml:"Link,omitempty"`
}

type AbstractConnection interface {
	GetName() string
	GetLink() AbstractLink
}

func NewConnectionFrom(src AbstractConnection) *Connection {
	if isNil(src) {
		return nil
	}
	return &Connection{Name: src.GetName(), Link: NewLinkFrom(src.GetLink())}
}

func (c *Connection) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Connection) GetLink() AbstractLink {
	if c == nil || c.Link == nil {
		return nil
	}
	return c.Link
}

func (c *Connection) Equal(o *Connection) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name && c.Link.Equal(o.Link)
}

func (c *Connection) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Connection").str(c.Name).node(c.Link).sum()
}

func (c *Connection) String() string {
	if c == nil {
		return ""
	}
	return describe("Connection").str("name", c.Name).node("link", c.Link).String()
}

// ComponentListMember is an sml:component entry, holding a process
// inline or by xlink reference.
type ComponentListMember struct {
	Name string `xml:"name,attr,omitempty"`
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	ProcessVariant
}

type AbstractComponentListMember interface {
	GetName() string
	GetHref() string
	GetProcess() AbstractProcess
}

func NewComponentListMemberFrom(src AbstractComponentListMember) (*ComponentListMember, error) {
	if isNil(src) {
		return nil, nil
	}
	v, err := convertProcess("component", src.GetProcess())
	if err != nil {
		return nil, err
	}
	return &ComponentListMember{Name: src.GetName(), Href: src.GetHref(), ProcessVariant: v}, nil
}

func (m *ComponentListMember) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *ComponentListMember) GetHref() string {
	if m == nil {
		return ""
	}
	return m.Href
}

// GetProcess returns the member's process, or nil if it has none.
func (m *ComponentListMember) GetProcess() AbstractProcess {
	if m == nil {
		return nil
	}
	return m.ProcessVariant.process()
}

func (m *ComponentListMember) Equal(o *ComponentListMember) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Name == o.Name && m.Href == o.Href && m.ProcessVariant.equal(&o.ProcessVariant)
}

func (m *ComponentListMember) Hash() uint64 {
	if m == nil {
		return 0
	}
	return m.ProcessVariant.hash(newHasher("ComponentListMember").str(m.Name).str(m.Href)).sum()
}

func (m *ComponentListMember) String() string {
	if m == nil {
		return ""
	}
	d := describe("ComponentListMember").str("name", m.Name).str("href", m.Href)
	return m.ProcessVariant.describe(d).String()
}

type ComponentList struct {
	Components []*ComponentListMember `xml:"component,omitempty"`
}

type AbstractComponentList interface {
	GetComponents() []AbstractComponentListMember
}

func NewComponentListFrom(src AbstractComponentList) (*ComponentList, error) {
	if isNil(src) {
		return nil, nil
	}
	members, err := convertAllErr(src.GetComponents(), NewComponentListMemberFrom)
	if err != nil {
		return nil, err
	}
	return &ComponentList{Components: members}, nil
}

func (l *ComponentList) GetComponents() []AbstractComponentListMember {
	if l == nil {
		return nil
	}
	return abstracts[AbstractComponentListMember](l.Components)
}

func (l *ComponentList) Equal(o *ComponentList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return equalNodes(l.Components, o.Components)
}

func (l *ComponentList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return hashNodes(newHasher("ComponentList"), l.Components).sum()
}

func (l *ComponentList) String() string {
	if l == nil {
		return ""
	}
	return describeNodes(describe("ComponentList"), "components", l.Components).String()
}

// ProcessChain is a non-physical composite process: components joined
// by connections.
type ProcessChain struct {
	ProcessFields
	Components  *ComponentList `xml:"components>ComponentList,omitempty"`
	Connections []*Connection  `xml:"connections>ConnectionList>connection,omitempty"`
}

type AbstractProcessChain interface {
	AbstractProcess
	GetComponents() AbstractComponentList
	GetConnections() []AbstractConnection
}

func NewProcessChainFrom(src AbstractProcessChain) (*ProcessChain, error) {
	if isNil(src) {
		return nil, nil
	}
	fields, err := newProcessFieldsFrom(src)
	if err != nil {
		return nil, err
	}
	components, err := NewComponentListFrom(src.GetComponents())
	if err != nil {
		return nil, err
	}
	return &ProcessChain{
		ProcessFields: fields,
		Components:    components,
		Connections:   convertAll(src.GetConnections(), NewConnectionFrom),
	}, nil
}

func (c *ProcessChain) GetComponents() AbstractComponentList {
	if c == nil || c.Components == nil {
		return nil
	}
	return c.Components
}

func (c *ProcessChain) GetConnections() []AbstractConnection {
	if c == nil {
		return nil
	}
	return abstracts[AbstractConnection](c.Connections)
}

func (c *ProcessChain) Equal(o *ProcessChain) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ProcessFields.equal(&o.ProcessFields) &&
		c.Components.Equal(o.Components) &&
		equalNodes(c.Connections, o.Connections)
}

func (c *ProcessChain) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := c.ProcessFields.hash(newHasher("ProcessChain")).node(c.Components)
	return hashNodes(h, c.Connections).sum()
}

func (c *ProcessChain) String() string {
	if c == nil {
		return ""
	}
	d := c.ProcessFields.describe(describe("ProcessChain")).node("components", c.Components)
	return describeNodes(d, "connections", c.Connections).String()
}

// System is a physical composite process. Unlike ProcessChain it is
// located, and may locate each of its components.
type System struct {
	ProcessFields
	Position    *Position      `xml:"position,omitempty"`
	Components  *ComponentList `xml:"components>ComponentList,omitempty"`
	Positions   *PositionList  `xml:"positions>PositionList,omitempty"`
	Connections []*Connection  `xml:"connections>ConnectionList>connection,omitempty"`
}

type AbstractSystem interface {
	AbstractProcessChain
	GetPosition() AbstractPosition
	GetPositions() AbstractPositionList
}

func NewSystemFrom(src AbstractSystem) (*System, error) {
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
	components, err := NewComponentListFrom(src.GetComponents())
	if err != nil {
		return nil, err
	}
	positions, err := NewPositionListFrom(src.GetPositions())
	if err != nil {
		return nil, err
	}
	return &System{
		ProcessFields: fields,
		Position:      pos,
		Components:    components,
		Positions:     positions,
		Connections:   convertAll(src.GetConnections(), NewConnectionFrom),
	}, nil
}

func (s *System) GetPosition() AbstractPosition {
	if s == nil || s.Position == nil {
		return nil
	}
	return s.Position
}

func (s *System) GetComponents() AbstractComponentList {
	if s == nil || s.Components == nil {
		return nil
	}
	return s.Components
}

func (s *System) GetPositions() AbstractPositionList {
	if s == nil || s.Positions == nil {
		return nil
	}
	return s.Positions
}

func (s *System) GetConnections() []AbstractConnection {
	if s == nil {
		return nil
	}
	return abstracts[AbstractConnection](s.Connections)
}

func (s *System) Equal(o *System) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.ProcessFields.equal(&o.ProcessFields) &&
		s.Position.Equal(o.Position) &&
		s.Components.Equal(o.Components) &&
		s.Positions.Equal(o.Positions) &&
		equalNodes(s.Connections, o.Connections)
}

func (s *System) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := s.ProcessFields.hash(newHasher("System")).
		node(s.Position).
		node(s.Components).
		node(s.Positions)
	return hashNodes(h, s.Connections).sum()
}

func (s *System) String() string {
	if s == nil {
		return ""
	}
	d := s.ProcessFields.describe(describe("System")).
		node("position", s.Position).
		node("components", s.Components).
		node("positions", s.Positions)
	return describeNodes(d, "connections", s.Connections).String()
}

var (
	_ AbstractLinkRef             = (*LinkRef)(nil)
	_ AbstractLink                = (*Link)(nil)
	_ AbstractConnection          = (*Connection)(nil)
	_ AbstractComponentListMember = (*ComponentListMember)(nil)
	_ AbstractComponentList       = (*ComponentList)(nil)
	_ AbstractProcessChain        = (*ProcessChain)(nil)
	_ AbstractSystem              = (*System)(nil)
)
