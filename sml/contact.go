package sml

import "slices"

type Phone struct {
	Voice     []string `xml:"voice,omitempty"`
	Facsimile []string `xml:"facsimile,omitempty"`
}

type AbstractPhone interface {
	GetVoice() []string
	GetFacsimile() []string
}

func NewPhoneFrom(src AbstractPhone) *Phone {
	if isNil(src) {
		return nil
	}
	return &Phone{Voice: slices.Clone(src.GetVoice()), Facsimile: slices.Clone(src.GetFacsimile())}
}

func (p *Phone) GetVoice() []string {
	if p == nil {
		return nil
	}
	return p.Voice
}

func (p *Phone) GetFacsimile() []string {
	if p == nil {
		return nil
	}
	return p.Facsimile
}

func (p *Phone) Equal(o *Phone) bool {
	if p == nil || o == nil {
		return p == o
	}
	return slices.Equal(p.Voice, o.Voice) && slices.Equal(p.Facsimile, o.Facsimile)
}

func (p *Phone) Hash() uint64 {
	if p == nil {
		return 0
	}
	return newHasher("Phone").strs(p.Voice).strs(p.Facsimile).sum()
}

func (p *Phone) String() string {
	if p == nil {
		return ""
	}
	return describe("Phone").strs("voice", p.Voice).strs("facsimile", p.Facsimile).String()
}

// Address is a postal and electronic mail address.
type Address struct {
	DeliveryPoints        []string `xml:"deliveryPoint,omitempty"`
	City                  string   `xml:"city,omitempty"`
	AdministrativeArea    string   `xml:"administrativeArea,omitempty"`
	PostalCode            string   `xml:"postalCode,omitempty"`
	Country               string   `xml:"country,omitempty"`
	ElectronicMailAddress string   `xml:"electronicMailAddress,omitempty"`
}

type AbstractAddress interface {
	GetDeliveryPoints() []string
	GetCity() string
	GetAdministrativeArea() string
	GetPostalCode() string
	GetCountry() string
	GetElectronicMailAddress() string
}

func NewAddressFrom(src AbstractAddress) *Address {
	if isNil(src) {
		return nil
	}
	return &Address{
		DeliveryPoints:        slices.Clone(src.GetDeliveryPoints()),
		City:                  src.GetCity(),
		AdministrativeArea:    src.GetAdministrativeArea(),
		PostalCode:            src.GetPostalCode(),
		Country:               src.GetCountry(),
		ElectronicMailAddress: src.GetElectronicMailAddress(),
	}
}

func (a *Address) GetDeliveryPoints() []string {
	if a == nil {
		return nil
	}
	return a.DeliveryPoints
}

func (a *Address) GetCity() string {
	if a == nil {
		return ""
	}
	return a.City
}

func (a *Address) GetAdministrativeArea() string {
	if a == nil {
		return ""
	}
	return a.AdministrativeArea
}

func (a *Address) GetPostalCode() string {
	if a == nil {
		return ""
	}
	return a.PostalCode
}

func (a *Address) GetCountry() string {
	if a == nil {
		return ""
	}
	return a.Country
}

func (a *Address) GetElectronicMailAddress() string {
	if a == nil {
		return ""
	}
	return a.ElectronicMailAddress
}

func (a *Address) Equal(o *Address) bool {
	if a == nil || o == nil {
		return a == o
	}
	return slices.Equal(a.DeliveryPoints, o.DeliveryPoints) &&
		a.City == o.City &&
		a.AdministrativeArea == o.AdministrativeArea &&
		a.PostalCode == o.PostalCode &&
		a.Country == o.Country &&
		a.ElectronicMailAddress == o.ElectronicMailAddress
}

func (a *Address) Hash() uint64 {
	if a == nil {
		return 0
	}
	return newHasher("Address").
		strs(a.DeliveryPoints).
		str(a.City).
		str(a.AdministrativeArea).
		str(a.PostalCode).
		str(a.Country).
		str(a.ElectronicMailAddress).sum()
}

func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return describe("Address").
		strs("deliveryPoints", a.DeliveryPoints).
		str("city", a.City).
		str("administrativeArea", a.AdministrativeArea).
		str("postalCode", a.PostalCode).
		str("country", a.Country).
		str("electronicMailAddress", a.ElectronicMailAddress).String()
}

type OnlineResource struct {
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
}

type AbstractOnlineResource interface {
	GetHref() string
}

func NewOnlineResourceFrom(src AbstractOnlineResource) *OnlineResource {
	if isNil(src) {
		return nil
	}
	return &OnlineResource{Href: src.GetHref()}
}

func (r *OnlineResource) GetHref() string {
	if r == nil {
		return ""
	}
	return r.Href
}

func (r *OnlineResource) Equal(o *OnlineResource) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Href == o.Href
}

func (r *OnlineResource) Hash() uint64 {
	if r == nil {
		return 0
	}
	return newHasher("OnlineResource").str(r.Href).sum()
}

func (r *OnlineResource) String() string {
	if r == nil {
		return ""
	}
	return describe("OnlineResource").str("href", r.Href).String()
}

type ContactInfo struct {
	Phone               *Phone            `xml:"phone,omitempty"`
	Address             *Address          `xml:"address,omitempty"`
	OnlineResources     []*OnlineResource `xml:"onlineResource,omitempty"`
	HoursOfService      string            `xml:"hoursOfService,omitempty"`
	ContactInstructions string            `xml:"contactInstructions,omitempty"`
}

type AbstractContactInfo interface {
	GetPhone() AbstractPhone
	GetAddress() AbstractAddress
	GetOnlineResources() []AbstractOnlineResource
	GetHoursOfService() string
	GetContactInstructions() string
}

func NewContactInfoFrom(src AbstractContactInfo) *ContactInfo {
	if isNil(src) {
		return nil
	}
	return &ContactInfo{
		Phone:               NewPhoneFrom(src.GetPhone()),
		Address:             NewAddressFrom(src.GetAddress()),
		OnlineResources:     convertAll(src.GetOnlineResources(), NewOnlineResourceFrom),
		HoursOfService:      src.GetHoursOfService(),
		ContactInstructions: src.GetContactInstructions(),
	}
}

func (c *ContactInfo) GetPhone() AbstractPhone {
	if c == nil || c.Phone == nil {
		return nil
	}
	return c.Phone
}

func (c *ContactInfo) GetAddress() AbstractAddress {
	if c == nil || c.Address == nil {
		return nil
	}
	return c.Address
}

func (c *ContactInfo) GetOnlineResources() []AbstractOnlineResource {
	if c == nil {
		return nil
	}
	return abstracts[AbstractOnlineResource](c.OnlineResources)
}

func (c *ContactInfo) GetHoursOfService() string {
	if c == nil {
		return ""
	}
	return c.HoursOfService
}

func (c *ContactInfo) GetContactInstructions() string {
	if c == nil {
		return ""
	}
	return c.ContactInstructions
}

func (c *ContactInfo) Equal(o *ContactInfo) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Phone.Equal(o.Phone) &&
		c.Address.Equal(o.Address) &&
		equalNodes(c.OnlineResources, o.OnlineResources) &&
		c.HoursOfService == o.HoursOfService &&
		c.ContactInstructions == o.ContactInstructions
}

func (c *ContactInfo) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := newHasher("ContactInfo").node(c.Phone).node(c.Address)
	return hashNodes(h, c.OnlineResources).
		str(c.HoursOfService).
		str(c.ContactInstructions).sum()
}

func (c *ContactInfo) String() string {
	if c == nil {
		return ""
	}
	d := describe("ContactInfo").node("phone", c.Phone).node("address", c.Address)
	return describeNodes(d, "onlineResources", c.OnlineResources).
		str("hoursOfService", c.HoursOfService).
		str("contactInstructions", c.ContactInstructions).String()
}

// ResponsibleParty is an ISO 19115 style responsible party.
type ResponsibleParty struct {
	ID               string       `xml:"http://www.opengis.net/gml id,attr,omitempty"`
	IndividualName   string       `xml:"individualName,omitempty"`
	OrganizationName string       `xml:"organizationName,omitempty"`
	PositionName     string       `xml:"positionName,omitempty"`
	ContactInfo      *ContactInfo `xml:"contactInfo,omitempty"`
}

type AbstractResponsibleParty interface {
	GetID() string
	GetIndividualName() string
	GetOrganizationName() string
	GetPositionName() string
	GetContactInfo() AbstractContactInfo
}

func NewResponsiblePartyFrom(src AbstractResponsibleParty) *ResponsibleParty {
	if isNil(src) {
		return nil
	}
	return &ResponsibleParty{
		ID:               src.GetID(),
		IndividualName:   src.GetIndividualName(),
		OrganizationName: src.GetOrganizationName(),
		PositionName:     src.GetPositionName(),
		ContactInfo:      NewContactInfoFrom(src.GetContactInfo()),
	}
}

func (r *ResponsibleParty) GetID() string {
	if r == nil {
		return ""
	}
	return r.ID
}

func (r *ResponsibleParty) GetIndividualName() string {
	if r == nil {
		return ""
	}
	return r.IndividualName
}

func (r *ResponsibleParty) GetOrganizationName() string {
	if r == nil {
		return ""
	}
	return r.OrganizationName
}

func (r *ResponsibleParty) GetPositionName() string {
	if r == nil {
		return ""
	}
	return r.PositionName
}

func (r *ResponsibleParty) GetContactInfo() AbstractContactInfo {
	if r == nil || r.ContactInfo == nil {
		return nil
	}
	return r.ContactInfo
}

func (r *ResponsibleParty) Equal(o *ResponsibleParty) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.ID == o.ID &&
		r.IndividualName == o.IndividualName &&
		r.OrganizationName == o.OrganizationName &&
		r.PositionName == o.PositionName &&
		r.ContactInfo.Equal(o.ContactInfo)
}

func (r *ResponsibleParty) Hash() uint64 {
	if r == nil {
		return 0
	}
	return newHasher("ResponsibleParty").
		str(r.ID).
		str(r.IndividualName).
		str(r.OrganizationName).
		str(r.PositionName).
		node(r.ContactInfo).sum()
}

func (r *ResponsibleParty) String() string {
	if r == nil {
		return ""
	}
	return describe("ResponsibleParty").
		str("id", r.ID).
		str("individualName", r.IndividualName).
		str("organizationName", r.OrganizationName).
		str("positionName", r.PositionName).
		node("contactInfo", r.ContactInfo).String()
}

// Person is the SensorML-native contact alternative to ResponsibleParty.
type Person struct {
	Surname     string `xml:"surname,omitempty"`
	Name        string `xml:"name,omitempty"`
	UserID      string `xml:"userID,omitempty"`
	Affiliation string `xml:"affiliation,omitempty"`
	PhoneNumber string `xml:"phoneNumber,omitempty"`
	Email       string `xml:"email,omitempty"`
}

type AbstractPerson interface {
	GetSurname() string
	GetName() string
	GetUserID() string
	GetAffiliation() string
	GetPhoneNumber() string
	GetEmail() string
}

func NewPersonFrom(src AbstractPerson) *Person {
	if isNil(src) {
		return nil
	}
	return &Person{
		Surname:     src.GetSurname(),
		Name:        src.GetName(),
		UserID:      src.GetUserID(),
		Affiliation: src.GetAffiliation(),
		PhoneNumber: src.GetPhoneNumber(),
		Email:       src.GetEmail(),
	}
}

func (p *Person) GetSurname() string {
	if p == nil {
		return ""
	}
	return p.Surname
}

func (p *Person) GetName() string {
	if p == nil {
		return ""
	}
	return p.Name
}

func (p *Person) GetUserID() string {
	if p == nil {
		return ""
	}
	return p.UserID
}

func (p *Person) GetAffiliation() string {
	if p == nil {
		return ""
	}
	return p.Affiliation
}

func (p *Person) GetPhoneNumber() string {
	if p == nil {
		return ""
	}
	return p.PhoneNumber
}

func (p *Person) GetEmail() string {
	if p == nil {
		return ""
	}
	return p.Email
}

func (p *Person) Equal(o *Person) bool {
	if p == nil || o == nil {
		return p == o
	}
	return *p == *o
}

func (p *Person) Hash() uint64 {
	if p == nil {
		return 0
	}
	return newHasher("Person").
		str(p.Surname).
		str(p.Name).
		str(p.UserID).
		str(p.Affiliation).
		str(p.PhoneNumber).
		str(p.Email).sum()
}

func (p *Person) String() string {
	if p == nil {
		return ""
	}
	return describe("Person").
		str("surname", p.Surname).
		str("name", p.Name).
		str("userID", p.UserID).
		str("affiliation", p.Affiliation).
		str("phoneNumber", p.PhoneNumber).
		str("email", p.Email).String()
}

// Contact is the sml:contact property. One of ResponsibleParty or
// Person is set.
type Contact struct {
	Role             string            `xml:"http://www.w3.org/1999/xlink role,attr,omitempty"`
	Href             string            `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	ResponsibleParty *ResponsibleParty `xml:"ResponsibleParty,omitempty"`
	Person           *Person           `xml:"Person,omitempty"`
}

type AbstractContact interface {
	GetRole() string
	GetHref() string
	GetResponsibleParty() AbstractResponsibleParty
	GetPerson() AbstractPerson
}

func NewContactFrom(src AbstractContact) *Contact {
	if isNil(src) {
		return nil
	}
	return &Contact{
		Role:             src.GetRole(),
		Href:             src.GetHref(),
		ResponsibleParty: NewResponsiblePartyFrom(src.GetResponsibleParty()),
		Person:           NewPersonFrom(src.GetPerson()),
	}
}

func (c *Contact) GetRole() string {
	if c == nil {
		return ""
	}
	return c.Role
}

func (c *Contact) GetHref() string {
	if c == nil {
		return ""
	}
	return c.Href
}

func (c *Contact) GetResponsibleParty() AbstractResponsibleParty {
	if c == nil || c.ResponsibleParty == nil {
		return nil
	}
	return c.ResponsibleParty
}

func (c *Contact) GetPerson() AbstractPerson {
	if c == nil || c.Person == nil {
		return nil
	}
	return c.Person
}

func (c *Contact) Equal(o *Contact) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Role == o.Role &&
		c.Href == o.Href &&
		c.ResponsibleParty.Equal(o.ResponsibleParty) &&
		c.Person.Equal(o.Person)
}

func (c *Contact) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Contact").
		str(c.Role).
		str(c.Href).
		node(c.ResponsibleParty).
		node(c.Person).sum()
}

func (c *Contact) String() string {
	if c == nil {
		return ""
	}
	return describe("Contact").
		str("role", c.Role).
		str("href", c.Href).
		node("responsibleParty", c.ResponsibleParty).
		node("person", c.Person).String()
}

var (
	_ AbstractPhone            = (*Phone)(nil)
	_ AbstractAddress          = (*Address)(nil)
	_ AbstractOnlineResource   = (*OnlineResource)(nil)
	_ AbstractContactInfo      = (*ContactInfo)(nil)
	_ AbstractResponsibleParty = (*ResponsibleParty)(nil)
	_ AbstractPerson           = (*Person)(nil)
	_ AbstractContact          = (*Contact)(nil)
)
