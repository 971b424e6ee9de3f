package sml

import "slices"

// CodeSpace references the dictionary a term value is drawn from.
type CodeSpace struct {
	Href string `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
}

type AbstractCodeSpace interface {
	GetHref() string
}

func NewCodeSpaceFrom(src AbstractCodeSpace) *CodeSpace {
	if isNil(src) {
		return nil
	}
	return &CodeSpace{Href: src.GetHref()}
}

func (c *CodeSpace) GetHref() string {
	if c == nil {
		return ""
	}
	return c.Href
}

func (c *CodeSpace) Equal(o *CodeSpace) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Href == o.Href
}

func (c *CodeSpace) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("CodeSpace").str(c.Href).sum()
}

func (c *CodeSpace) String() string {
	if c == nil {
		return ""
	}
	return describe("CodeSpace").str("href", c.Href).String()
}

// Term is a sml:Term: a value, optionally qualified by a definition
// URI and the code space it belongs to.
type Term struct {
	Definition string     `xml:"definition,attr,omitempty"`
	CodeSpace  *CodeSpace `xml:"codeSpace,omitempty"`
	Value      string     `xml:"value,omitempty"`
}

type AbstractTerm interface {
	GetDefinition() string
	GetCodeSpace() AbstractCodeSpace
	GetValue() string
}

func NewTermFrom(src AbstractTerm) *Term {
	if isNil(src) {
		return nil
	}
	return &Term{
		Definition: src.GetDefinition(),
		CodeSpace:  NewCodeSpaceFrom(src.GetCodeSpace()),
		Value:      src.GetValue(),
	}
}

func (t *Term) GetDefinition() string {
	if t == nil {
		return ""
	}
	return t.Definition
}

func (t *Term) GetCodeSpace() AbstractCodeSpace {
	if t == nil || t.CodeSpace == nil {
		return nil
	}
	return t.CodeSpace
}

func (t *Term) GetValue() string {
	if t == nil {
		return ""
	}
	return t.Value
}

func (t *Term) Equal(o *Term) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Definition == o.Definition &&
		t.CodeSpace.Equal(o.CodeSpace) &&
		t.Value == o.Value
}

func (t *Term) Hash() uint64 {
	if t == nil {
		return 0
	}
	return newHasher("Term").str(t.Definition).node(t.CodeSpace).str(t.Value).sum()
}

func (t *Term) String() string {
	if t == nil {
		return ""
	}
	return describe("Term").
		str("definition", t.Definition).
		node("codeSpace", t.CodeSpace).
		str("value", t.Value).String()
}

// Identifier is one named entry of an identifier list.
type Identifier struct {
	Name string `xml:"name,attr,omitempty"`
	Term *Term  `xml:"Term,omitempty"`
}

type AbstractIdentifier interface {
	GetName() string
	GetTerm() AbstractTerm
}

func NewIdentifierFrom(src AbstractIdentifier) *Identifier {
	if isNil(src) {
		return nil
	}
	return &Identifier{Name: src.GetName(), Term: NewTermFrom(src.GetTerm())}
}

func (i *Identifier) GetName() string {
	if i == nil {
		return ""
	}
	return i.Name
}

func (i *Identifier) GetTerm() AbstractTerm {
	if i == nil || i.Term == nil {
		return nil
	}
	return i.Term
}

func (i *Identifier) Equal(o *Identifier) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.Name == o.Name && i.Term.Equal(o.Term)
}

func (i *Identifier) Hash() uint64 {
	if i == nil {
		return 0
	}
	return newHasher("Identifier").str(i.Name).node(i.Term).sum()
}

func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return describe("Identifier").str("name", i.Name).node("term", i.Term).String()
}

type IdentifierList struct {
	Identifiers []*Identifier `xml:"identifier,omitempty"`
}

type AbstractIdentifierList interface {
	GetIdentifiers() []AbstractIdentifier
}

func NewIdentifierListFrom(src AbstractIdentifierList) *IdentifierList {
	if isNil(src) {
		return nil
	}
	return &IdentifierList{Identifiers: convertAll(src.GetIdentifiers(), NewIdentifierFrom)}
}

func (l *IdentifierList) GetIdentifiers() []AbstractIdentifier {
	if l == nil {
		return nil
	}
	return abstracts[AbstractIdentifier](l.Identifiers)
}

func (l *IdentifierList) Equal(o *IdentifierList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return equalNodes(l.Identifiers, o.Identifiers)
}

func (l *IdentifierList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return hashNodes(newHasher("IdentifierList"), l.Identifiers).sum()
}

func (l *IdentifierList) String() string {
	if l == nil {
		return ""
	}
	return describeNodes(describe("IdentifierList"), "identifiers", l.Identifiers).String()
}

// Identification is the sml:identification property.
type Identification struct {
	Href           string          `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	IdentifierList *IdentifierList `xml:"IdentifierList,omitempty"`
}

type AbstractIdentification interface {
	GetHref() string
	GetIdentifierList() AbstractIdentifierList
}

func NewIdentificationFrom(src AbstractIdentification) *Identification {
	if isNil(src) {
		return nil
	}
	return &Identification{
		Href:           src.GetHref(),
		IdentifierList: NewIdentifierListFrom(src.GetIdentifierList()),
	}
}

func (i *Identification) GetHref() string {
	if i == nil {
		return ""
	}
	return i.Href
}

func (i *Identification) GetIdentifierList() AbstractIdentifierList {
	if i == nil || i.IdentifierList == nil {
		return nil
	}
	return i.IdentifierList
}

func (i *Identification) Equal(o *Identification) bool {
	if i == nil || o == nil {
		return i == o
	}
	return i.Href == o.Href && i.IdentifierList.Equal(o.IdentifierList)
}

func (i *Identification) Hash() uint64 {
	if i == nil {
		return 0
	}
	return newHasher("Identification").str(i.Href).node(i.IdentifierList).sum()
}

func (i *Identification) String() string {
	if i == nil {
		return ""
	}
	return describe("Identification").
		str("href", i.Href).
		node("identifierList", i.IdentifierList).String()
}

type Classifier struct {
	Name string `xml:"name,attr,omitempty"`
	Term *Term  `xml:"Term,omitempty"`
}

type AbstractClassifier interface {
	GetName() string
	GetTerm() AbstractTerm
}

func NewClassifierFrom(src AbstractClassifier) *Classifier {
	if isNil(src) {
		return nil
	}
	return &Classifier{Name: src.GetName(), Term: NewTermFrom(src.GetTerm())}
}

func (c *Classifier) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Classifier) GetTerm() AbstractTerm {
	if c == nil || c.Term == nil {
		return nil
	}
	return c.Term
}

func (c *Classifier) Equal(o *Classifier) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name && c.Term.Equal(o.Term)
}

func (c *Classifier) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Classifier").str(c.Name).node(c.Term).sum()
}

func (c *Classifier) String() string {
	if c == nil {
		return ""
	}
	return describe("Classifier").str("name", c.Name).node("term", c.Term).String()
}

type ClassifierList struct {
	Classifiers []*Classifier `xml:"classifier,omitempty"`
}

type AbstractClassifierList interface {
	GetClassifiers() []AbstractClassifier
}

func NewClassifierListFrom(src AbstractClassifierList) *ClassifierList {
	if isNil(src) {
		return nil
	}
	return &ClassifierList{Classifiers: convertAll(src.GetClassifiers(), NewClassifierFrom)}
}

func (l *ClassifierList) GetClassifiers() []AbstractClassifier {
	if l == nil {
		return nil
	}
	return abstracts[AbstractClassifier](l.Classifiers)
}

func (l *ClassifierList) Equal(o *ClassifierList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return equalNodes(l.Classifiers, o.Classifiers)
}

func (l *ClassifierList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return hashNodes(newHasher("ClassifierList"), l.Classifiers).sum()
}

func (l *ClassifierList) String() string {
	if l == nil {
		return ""
	}
	return describeNodes(describe("ClassifierList"), "classifiers", l.Classifiers).String()
}

// Classification is the sml:classification property.
type Classification struct {
	Href           string          `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	ClassifierList *ClassifierList `xml:"ClassifierList,omitempty"`
}

type AbstractClassification interface {
	GetHref() string
	GetClassifierList() AbstractClassifierList
}

func NewClassificationFrom(src AbstractClassification) *Classification {
	if isNil(src) {
		return nil
	}
	return &Classification{
		Href:           src.GetHref(),
		ClassifierList: NewClassifierListFrom(src.GetClassifierList()),
	}
}

func (c *Classification) GetHref() string {
	if c == nil {
		return ""
	}
	return c.Href
}

func (c *Classification) GetClassifierList() AbstractClassifierList {
	if c == nil || c.ClassifierList == nil {
		return nil
	}
	return c.ClassifierList
}

func (c *Classification) Equal(o *Classification) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Href == o.Href && c.ClassifierList.Equal(o.ClassifierList)
}

func (c *Classification) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Classification").str(c.Href).node(c.ClassifierList).sum()
}

func (c *Classification) String() string {
	if c == nil {
		return ""
	}
	return describe("Classification").
		str("href", c.Href).
		node("classifierList", c.ClassifierList).String()
}

// KeywordList is a list of keywords sharing one code space.
type KeywordList struct {
	CodeSpace *CodeSpace `xml:"codeSpace,omitempty"`
	Keywords  []string   `xml:"keyword,omitempty"`
}

type AbstractKeywordList interface {
	GetCodeSpace() AbstractCodeSpace
	GetKeywords() []string
}

func NewKeywordListFrom(src AbstractKeywordList) *KeywordList {
	if isNil(src) {
		return nil
	}
	return &KeywordList{
		CodeSpace: NewCodeSpaceFrom(src.GetCodeSpace()),
		Keywords:  slices.Clone(src.GetKeywords()),
	}
}

func (l *KeywordList) GetCodeSpace() AbstractCodeSpace {
	if l == nil || l.CodeSpace == nil {
		return nil
	}
	return l.CodeSpace
}

func (l *KeywordList) GetKeywords() []string {
	if l == nil {
		return nil
	}
	return l.Keywords
}

func (l *KeywordList) Equal(o *KeywordList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.CodeSpace.Equal(o.CodeSpace) && slices.Equal(l.Keywords, o.Keywords)
}

func (l *KeywordList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return newHasher("KeywordList").node(l.CodeSpace).strs(l.Keywords).sum()
}

func (l *KeywordList) String() string {
	if l == nil {
		return ""
	}
	return describe("KeywordList").
		node("codeSpace", l.CodeSpace).
		strs("keywords", l.Keywords).String()
}

// Keywords is the sml:keywords property.
type Keywords struct {
	Href        string       `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	KeywordList *KeywordList `xml:"KeywordList,omitempty"`
}

type AbstractKeywords interface {
	GetHref() string
	GetKeywordList() AbstractKeywordList
}

func NewKeywordsFrom(src AbstractKeywords) *Keywords {
	if isNil(src) {
		return nil
	}
	return &Keywords{Href: src.GetHref(), KeywordList: NewKeywordListFrom(src.GetKeywordList())}
}

func (k *Keywords) GetHref() string {
	if k == nil {
		return ""
	}
	return k.Href
}

func (k *Keywords) GetKeywordList() AbstractKeywordList {
	if k == nil || k.KeywordList == nil {
		return nil
	}
	return k.KeywordList
}

func (k *Keywords) Equal(o *Keywords) bool {
	if k == nil || o == nil {
		return k == o
	}
	return k.Href == o.Href && k.KeywordList.Equal(o.KeywordList)
}

func (k *Keywords) Hash() uint64 {
	if k == nil {
		return 0
	}
	return newHasher("Keywords").str(k.Href).node(k.KeywordList).sum()
}

func (k *Keywords) String() string {
	if k == nil {
		return ""
	}
	return describe("Keywords").str("href", k.Href).node("keywordList", k.KeywordList).String()
}

var (
	_ AbstractCodeSpace      = (*CodeSpace)(nil)
	_ AbstractTerm           = (*Term)(nil)
	_ AbstractIdentifier     = (*Identifier)(nil)
	_ AbstractIdentifierList = (*IdentifierList)(nil)
	_ AbstractIdentification = (*Identification)(nil)
	_ AbstractClassifier     = (*Classifier)(nil)
	_ AbstractClassifierList = (*ClassifierList)(nil)
	_ AbstractClassification = (*Classification)(nil)
	_ AbstractKeywordList    = (*KeywordList)(nil)
	_ AbstractKeywords       = (*Keywords)(nil)
)
