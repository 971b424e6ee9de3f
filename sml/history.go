package sml

// Event records one dated occurrence in a process history, such as a
// calibration or a deployment.
type Event struct {
	Date           string            `xml:"date,omitempty"`
	Description    string            `xml:"http://www.opengis.net/gml description,omitempty"`
	Keywords       []*Keywords       `xml:"keywords,omitempty"`
	Identification []*Identification `xml:"identification,omitempty"`
	Classification []*Classification `xml:"classification,omitempty"`
	Contacts       []*Contact        `xml:"contact,omitempty"`
	Documentation  []*Documentation  `xml:"documentation,omitempty"`
}

type AbstractEvent interface {
	GetDate() string
	GetDescription() string
	GetKeywords() []AbstractKeywords
	GetIdentification() []AbstractIdentification
	GetClassification() []AbstractClassification
	GetContacts() []AbstractContact
	GetDocumentation() []AbstractDocumentation
}

func NewEventFrom(src AbstractEvent) *Event {
	if isNil(src) {
		return nil
	}
	return &Event{
		Date:           src.GetDate(),
		Description:    src.GetDescription(),
		Keywords:       convertAll(src.GetKeywords(), NewKeywordsFrom),
		Identification: convertAll(src.GetIdentification(), NewIdentificationFrom),
		Classification: convertAll(src.GetClassification(), NewClassificationFrom),
		Contacts:       convertAll(src.GetContacts(), NewContactFrom),
		Documentation:  convertAll(src.GetDocumentation(), NewDocumentationFrom),
	}
}

func (e *Event) GetDate() string {
	if e == nil {
		return ""
	}
	return e.Date
}

func (e *Event) GetDescription() string {
	if e == nil {
		return ""
	}
	return e.Description
}

func (e *Event) GetKeywords() []AbstractKeywords {
	if e == nil {
		return nil
	}
	return abstracts[AbstractKeywords](e.Keywords)
}

func (e *Event) GetIdentification() []AbstractIdentification {
	if e == nil {
		return nil
	}
	return abstracts[AbstractIdentification](e.Identification)
}

func (e *Event) GetClassification() []AbstractClassification {
	if e == nil {
		return nil
	}
	return abstracts[AbstractClassification](e.Classification)
}

func (e *Event) GetContacts() []AbstractContact {
	if e == nil {
		return nil
	}
	return abstracts[AbstractContact](e.Contacts)
}

func (e *Event) GetDocumentation() []AbstractDocumentation {
	if e == nil {
		return nil
	}
	return abstracts[AbstractDocumentation](e.Documentation)
}

func (e *Event) Equal(o *Event) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Date == o.Date &&
		e.Description == o.Description &&
		equalNodes(e.Keywords, o.Keywords) &&
		equalNodes(e.Identification, o.Identification) &&
		equalNodes(e.Classification, o.Classification) &&
		equalNodes(e.Contacts, o.Contacts) &&
		equalNodes(e.Documentation, o.Documentation)
}

func (e *Event) Hash() uint64 {
	if e == nil {
		return 0
	}
	h := newHasher("Event").str(e.Date).str(e.Description)
	h = hashNodes(h, e.Keywords)
	h = hashNodes(h, e.Identification)
	h = hashNodes(h, e.Classification)
	h = hashNodes(h, e.Contacts)
	return hashNodes(h, e.Documentation).sum()
}

func (e *Event) String() string {
	if e == nil {
		return ""
	}
	d := describe("Event").str("date", e.Date).str("description", e.Description)
	d = describeNodes(d, "keywords", e.Keywords)
	d = describeNodes(d, "identification", e.Identification)
	d = describeNodes(d, "classification", e.Classification)
	d = describeNodes(d, "contacts", e.Contacts)
	return describeNodes(d, "documentation", e.Documentation).String()
}

type EventListMember struct {
	Name  string `xml:"name,attr,omitempty"`
	Event *Event `xml:"Event,omitempty"`
}

type AbstractEventListMember interface {
	GetName() string
	GetEvent() AbstractEvent
}

func NewEventListMemberFrom(src AbstractEventListMember) *EventListMember {
	if isNil(src) {
		return nil
	}
	return &EventListMember{Name: src.GetName(), Event: NewEventFrom(src.GetEvent())}
}

func (m *EventListMember) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *EventListMember) GetEvent() AbstractEvent {
	if m == nil || m.Event == nil {
		return nil
	}
	return m.Event
}

func (m *EventListMember) Equal(o *EventListMember) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Name == o.Name && m.Event.Equal(o.Event)
}

func (m *EventListMember) Hash() uint64 {
	if m == nil {
		return 0
	}
	return newHasher("EventListMember").str(m.Name).node(m.Event).sum()
}

func (m *EventListMember) String() string {
	if m == nil {
		return ""
	}
	return describe("EventListMember").str("name", m.Name).node("event", m.Event).String()
}

type EventList struct {
	Members []*EventListMember `xml:"member,omitempty"`
}

type AbstractEventList interface {
	GetMembers() []AbstractEventListMember
}

func NewEventListFrom(src AbstractEventList) *EventList {
	if isNil(src) {
		return nil
	}
	return &EventList{Members: convertAll(src.GetMembers(), NewEventListMemberFrom)}
}

func (l *EventList) GetMembers() []AbstractEventListMember {
	if l == nil {
		return nil
	}
	return abstracts[AbstractEventListMember](l.Members)
}

func (l *EventList) Equal(o *EventList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return equalNodes(l.Members, o.Members)
}

func (l *EventList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return hashNodes(newHasher("EventList"), l.Members).sum()
}

func (l *EventList) String() string {
	if l == nil {
		return ""
	}
	return describeNodes(describe("EventList"), "members", l.Members).String()
}

// History is the sml:history property.
type History struct {
	Href      string     `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	EventList *EventList `xml:"EventList,omitempty"`
}

type AbstractHistory interface {
	GetHref() string
	GetEventList() AbstractEventList
}

func NewHistoryFrom(src AbstractHistory) *History {
	if isNil(src) {
		return nil
	}
	return &History{Href: src.GetHref(), EventList: NewEventListFrom(src.GetEventList())}
}

func (h *History) GetHref() string {
	if h == nil {
		return ""
	}
	return h.Href
}

func (h *History) GetEventList() AbstractEventList {
	if h == nil || h.EventList == nil {
		return nil
	}
	return h.EventList
}

func (h *History) Equal(o *History) bool {
	if h == nil || o == nil {
		return h == o
	}
	return h.Href == o.Href && h.EventList.Equal(o.EventList)
}

func (h *History) Hash() uint64 {
	if h == nil {
		return 0
	}
	return newHasher("History").str(h.Href).node(h.EventList).sum()
}

func (h *History) String() string {
	if h == nil {
		return ""
	}
	return describe("History").str("href", h.Href).node("eventList", h.EventList).String()
}

var (
	_ AbstractEvent           = (*Event)(nil)
	_ AbstractEventListMember = (*EventListMember)(nil)
	_ AbstractEventList       = (*EventList)(nil)
	_ AbstractHistory         = (*History)(nil)
)
