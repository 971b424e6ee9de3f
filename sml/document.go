package sml

// Document describes one piece of external documentation.
type Document struct {
	Description     string            `xml:"http://www.opengis.net/gml description,omitempty"`
	Date            string            `xml:"date,omitempty"`
	Contact         *Contact          `xml:"contact,omitempty"`
	Format          string            `xml:"format,omitempty"`
	OnlineResources []*OnlineResource `xml:"onlineResource,omitempty"`
}

type AbstractDocument interface {
	GetDescription() string
	GetDate() string
	GetContact() AbstractContact
	GetFormat() string
	GetOnlineResources() []AbstractOnlineResource
}

func NewDocumentFrom(src AbstractDocument) *Document {
	if isNil(src) {
		return nil
	}
	return &Document{
		Description:     src.GetDescription(),
		Date:            src.GetDate(),
		Contact:         NewContactFrom(src.GetContact()),
		Format:          src.GetFormat(),
		OnlineResources: convertAll(src.GetOnlineResources(), NewOnlineResourceFrom),
	}
}

func (d *Document) GetDescription() string {
	if d == nil {
		return ""
	}
	return d.Description
}

func (d *Document) GetDate() string {
	if d == nil {
		return ""
	}
	return d.Date
}

func (d *Document) GetContact() AbstractContact {
	if d == nil || d.Contact == nil {
		return nil
	}
	return d.Contact
}

func (d *Document) GetFormat() string {
	if d == nil {
		return ""
	}
	return d.Format
}

func (d *Document) GetOnlineResources() []AbstractOnlineResource {
	if d == nil {
		return nil
	}
	return abstracts[AbstractOnlineResource](d.OnlineResources)
}

func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Description == o.Description &&
		d.Date == o.Date &&
		d.Contact.Equal(o.Contact) &&
		d.Format == o.Format &&
		equalNodes(d.OnlineResources, o.OnlineResources)
}

func (d *Document) Hash() uint64 {
	if d == nil {
		return 0
	}
	h := newHasher("Document").str(d.Description).str(d.Date).node(d.Contact).str(d.Format)
	return hashNodes(h, d.OnlineResources).sum()
}

func (d *Document) String() string {
	if d == nil {
		return ""
	}
	s := describe("Document").
		str("description", d.Description).
		str("date", d.Date).
		node("contact", d.Contact).
		str("format", d.Format)
	return describeNodes(s, "onlineResources", d.OnlineResources).String()
}

type DocumentListMember struct {
	Name     string    `xml:"name,attr,omitempty"`
	Document *Document `xml:"Document,omitempty"`
}

type AbstractDocumentListMember interface {
	GetName() string
	GetDocument() AbstractDocument
}

func NewDocumentListMemberFrom(src AbstractDocumentListMember) *DocumentListMember {
	if isNil(src) {
		return nil
	}
	return &DocumentListMember{Name: src.GetName(), Document: NewDocumentFrom(src.GetDocument())}
}

func (m *DocumentListMember) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *DocumentListMember) GetDocument() AbstractDocument {
	if m == nil || m.Document == nil {
		return nil
	}
	return m.Document
}

func (m *DocumentListMember) Equal(o *DocumentListMember) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Name == o.Name && m.Document.Equal(o.Document)
}

func (m *DocumentListMember) Hash() uint64 {
	if m == nil {
		return 0
	}
	return newHasher("DocumentListMember").str(m.Name).node(m.Document).sum()
}

func (m *DocumentListMember) String() string {
	if m == nil {
		return ""
	}
	return describe("DocumentListMember").str("name", m.Name).node("document", m.Document).String()
}

type DocumentList struct {
	Description string                `xml:"http://www.opengis.net/gml description,omitempty"`
	Members     []*DocumentListMember `xml:"member,omitempty"`
}

type AbstractDocumentList interface {
	GetDescription() string
	GetMembers() []AbstractDocumentListMember
}

func NewDocumentListFrom(src AbstractDocumentList) *DocumentList {
	if isNil(src) {
		return nil
	}
	return &DocumentList{
		Description: src.GetDescription(),
		Members:     convertAll(src.GetMembers(), NewDocumentListMemberFrom),
	}
}

func (l *DocumentList) GetDescription() string {
	if l == nil {
		return ""
	}
	return l.Description
}

func (l *DocumentList) GetMembers() []AbstractDocumentListMember {
	if l == nil {
		return nil
	}
	return abstracts[AbstractDocumentListMember](l.Members)
}

func (l *DocumentList) Equal(o *DocumentList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.Description == o.Description && equalNodes(l.Members, o.Members)
}

func (l *DocumentList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return hashNodes(newHasher("DocumentList").str(l.Description), l.Members).sum()
}

func (l *DocumentList) String() string {
	if l == nil {
		return ""
	}
	return describeNodes(describe("DocumentList").str("description", l.Description), "members", l.Members).String()
}

// Documentation is the sml:documentation property, holding a single
// document or a list of them.
type Documentation struct {
	Role         string        `xml:"http://www.w3.org/1999/xlink role,attr,omitempty"`
	Document     *Document     `xml:"Document,omitempty"`
	DocumentList *DocumentList `xml:"DocumentList,omitempty"`
}

type AbstractDocumentation interface {
	GetRole() string
	GetDocument() AbstractDocument
	GetDocumentList() AbstractDocumentList
}

func NewDocumentationFrom(src AbstractDocumentation) *Documentation {
	if isNil(src) {
		return nil
	}
	return &Documentation{
		Role:         src.GetRole(),
		Document:     NewDocumentFrom(src.GetDocument()),
		DocumentList: NewDocumentListFrom(src.GetDocumentList()),
	}
}

func (d *Documentation) GetRole() string {
	if d == nil {
		return ""
	}
	return d.Role
}

func (d *Documentation) GetDocument() AbstractDocument {
	if d == nil || d.Document == nil {
		return nil
	}
	return d.Document
}

func (d *Documentation) GetDocumentList() AbstractDocumentList {
	if d == nil || d.DocumentList == nil {
		return nil
	}
	return d.DocumentList
}

func (d *Documentation) Equal(o *Documentation) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Role == o.Role && d.Document.Equal(o.Document) && d.DocumentList.Equal(o.DocumentList)
}

func (d *Documentation) Hash() uint64 {
	if d == nil {
		return 0
	}
	return newHasher("Documentation").str(d.Role).node(d.Document).node(d.DocumentList).sum()
}

func (d *Documentation) String() string {
	if d == nil {
		return ""
	}
	return describe("Documentation").
		str("role", d.Role).
		node("document", d.Document).
		node("documentList", d.DocumentList).String()
}

var (
	_ AbstractDocument           = (*Document)(nil)
	_ AbstractDocumentListMember = (*DocumentListMember)(nil)
	_ AbstractDocumentList       = (*DocumentList)(nil)
	_ AbstractDocumentation      = (*Documentation)(nil)
)
