package sml

import (
	"encoding/xml"
	"slices"

	"github.com/andaru/owsbind/xmlutil"
)

// Version is the SensorML version this package binds.
const Version = "1.0.1"

// Member is an sml:member of a SensorML document.
type Member struct {
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	ProcessVariant
}

type AbstractMember interface {
	GetHref() string
	GetProcess() AbstractProcess
}

func NewMemberFrom(src AbstractMember) (*Member, error) {
	if isNil(src) {
		return nil, nil
	}
	v, err := convertProcess("member", src.GetProcess())
	if err != nil {
		return nil, err
	}
	return &Member{Href: src.GetHref(), ProcessVariant: v}, nil
}

func (m *Member) GetHref() string {
	if m == nil {
		return ""
	}
	return m.Href
}

// GetProcess returns the member's process, or nil if it has none.
func (m *Member) GetProcess() AbstractProcess {
	if m == nil {
		return nil
	}
	return m.ProcessVariant.process()
}

func (m *Member) Equal(o *Member) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Href == o.Href && m.ProcessVariant.equal(&o.ProcessVariant)
}

func (m *Member) Hash() uint64 {
	if m == nil {
		return 0
	}
	return m.ProcessVariant.hash(newHasher("Member").str(m.Href)).sum()
}

func (m *Member) String() string {
	if m == nil {
		return ""
	}
	return m.ProcessVariant.describe(describe("Member").str("href", m.Href)).String()
}

// SensorML is the document root.
type SensorML struct {
	XMLName        xml.Name          `xml:"http://www.opengis.net/sensorML/1.0.1 SensorML"`
	Version        string            `xml:"version,attr,omitempty"`
	Keywords       []*Keywords       `xml:"keywords,omitempty"`
	Identification []*Identification `xml:"identification,omitempty"`
	Classification []*Classification `xml:"classification,omitempty"`
	ValidTime      *ValidTime        `xml:"validTime,omitempty"`
	Contacts       []*Contact        `xml:"contact,omitempty"`
	Documentation  []*Documentation  `xml:"documentation,omitempty"`
	Members        []*Member         `xml:"member,omitempty"`
}

type AbstractSensorML interface {
	GetVersion() string
	GetKeywords() []AbstractKeywords
	GetIdentification() []AbstractIdentification
	GetClassification() []AbstractClassification
	GetValidTime() AbstractValidTime
	GetContacts() []AbstractContact
	GetDocumentation() []AbstractDocumentation
	GetMembers() []AbstractMember
}

// New returns an empty document of the bound version with the given
// members.
func New(members ...*Member) *SensorML {
	return &SensorML{
		XMLName: xmlutil.XMLName("SensorML", xmlutil.NSSensorML),
		Version: Version,
		Members: slices.Clone(members),
	}
}

func NewSensorMLFrom(src AbstractSensorML) (*SensorML, error) {
	if isNil(src) {
		return nil, nil
	}
	members, err := convertAllErr(src.GetMembers(), NewMemberFrom)
	if err != nil {
		return nil, err
	}
	return &SensorML{
		XMLName:        xmlutil.XMLName("SensorML", xmlutil.NSSensorML),
		Version:        src.GetVersion(),
		Keywords:       convertAll(src.GetKeywords(), NewKeywordsFrom),
		Identification: convertAll(src.GetIdentification(), NewIdentificationFrom),
		Classification: convertAll(src.GetClassification(), NewClassificationFrom),
		ValidTime:      NewValidTimeFrom(src.GetValidTime()),
		Contacts:       convertAll(src.GetContacts(), NewContactFrom),
		Documentation:  convertAll(src.GetDocumentation(), NewDocumentationFrom),
		Members:        members,
	}, nil
}

func (s *SensorML) GetVersion() string {
	if s == nil {
		return ""
	}
	return s.Version
}

func (s *SensorML) GetKeywords() []AbstractKeywords {
	if s == nil {
		return nil
	}
	return abstracts[AbstractKeywords](s.Keywords)
}

func (s *SensorML) GetIdentification() []AbstractIdentification {
	if s == nil {
		return nil
	}
	return abstracts[AbstractIdentification](s.Identification)
}

func (s *SensorML) GetClassification() []AbstractClassification {
	if s == nil {
		return nil
	}
	return abstracts[AbstractClassification](s.Classification)
}

func (s *SensorML) GetValidTime() AbstractValidTime {
	if s == nil || s.ValidTime == nil {
		return nil
	}
	return s.ValidTime
}

func (s *SensorML) GetContacts() []AbstractContact {
	if s == nil {
		return nil
	}
	return abstracts[AbstractContact](s.Contacts)
}

func (s *SensorML) GetDocumentation() []AbstractDocumentation {
	if s == nil {
		return nil
	}
	return abstracts[AbstractDocumentation](s.Documentation)
}

func (s *SensorML) GetMembers() []AbstractMember {
	if s == nil {
		return nil
	}
	return abstracts[AbstractMember](s.Members)
}

// Equal compares documents structurally; XMLName is not compared.
func (s *SensorML) Equal(o *SensorML) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Version == o.Version &&
		equalNodes(s.Keywords, o.Keywords) &&
		equalNodes(s.Identification, o.Identification) &&
		equalNodes(s.Classification, o.Classification) &&
		s.ValidTime.Equal(o.ValidTime) &&
		equalNodes(s.Contacts, o.Contacts) &&
		equalNodes(s.Documentation, o.Documentation) &&
		equalNodes(s.Members, o.Members)
}

func (s *SensorML) Hash() uint64 {
	if s == nil {
		return 0
	}
	h := newHasher("SensorML").str(s.Version)
	h = hashNodes(h, s.Keywords)
	h = hashNodes(h, s.Identification)
	h = hashNodes(h, s.Classification)
	h = h.node(s.ValidTime)
	h = hashNodes(h, s.Contacts)
	h = hashNodes(h, s.Documentation)
	return hashNodes(h, s.Members).sum()
}

func (s *SensorML) String() string {
	if s == nil {
		return ""
	}
	d := describe("SensorML").str("version", s.Version)
	d = describeNodes(d, "keywords", s.Keywords)
	d = describeNodes(d, "identification", s.Identification)
	d = describeNodes(d, "classification", s.Classification)
	d.node("validTime", s.ValidTime)
	d = describeNodes(d, "contacts", s.Contacts)
	d = describeNodes(d, "documentation", s.Documentation)
	return describeNodes(d, "members", s.Members).String()
}

var (
	_ AbstractMember   = (*Member)(nil)
	_ AbstractSensorML = (*SensorML)(nil)
)
