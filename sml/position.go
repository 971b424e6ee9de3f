package sml

// Position locates a process. Its value is a swe:Position, a swe:Vector,
// or a process that computes the position; at most one is set.
type Position struct {
	Name         string        `xml:"name,attr,omitempty"`
	Href         string        `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	SwePosition  *SwePosition  `xml:"http://www.opengis.net/swe/1.0.1 Position,omitempty"`
	Vector       *Vector       `xml:"http://www.opengis.net/swe/1.0.1 Vector,omitempty"`
	ProcessModel *ProcessModel `xml:"ProcessModel,omitempty"`
	ProcessChain *ProcessChain `xml:"ProcessChain,omitempty"`
}

type AbstractPosition interface {
	GetName() string
	GetHref() string
	GetValue() any
}

// NewPositionFrom copies src. The value must be a SWE position, a
// vector, a ProcessModel or a ProcessChain; anything else, Systems and
// Components included, is an *UnsupportedTypeError.
func NewPositionFrom(src AbstractPosition) (*Position, error) {
	if isNil(src) {
		return nil, nil
	}
	p := &Position{Name: src.GetName(), Href: src.GetHref()}
	var err error
	switch v := src.GetValue().(type) {
	case nil:
	case AbstractSwePosition:
		p.SwePosition = NewSwePositionFrom(v)
	case AbstractVector:
		p.Vector = NewVectorFrom(v)
	case AbstractSystem, AbstractComponent:
		err = unsupported("position", v)
	case AbstractProcessChain:
		p.ProcessChain, err = NewProcessChainFrom(v)
	case AbstractProcessModel:
		p.ProcessModel, err = NewProcessModelFrom(v)
	default:
		err = unsupported("position", v)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) GetName() string {
	if p == nil {
		return ""
	}
	return p.Name
}

func (p *Position) GetHref() string {
	if p == nil {
		return ""
	}
	return p.Href
}

// GetValue returns the position value, or nil if none is set.
func (p *Position) GetValue() any {
	switch {
	case p == nil:
		return nil
	case p.SwePosition != nil:
		return p.SwePosition
	case p.Vector != nil:
		return p.Vector
	case p.ProcessModel != nil:
		return p.ProcessModel
	case p.ProcessChain != nil:
		return p.ProcessChain
	}
	return nil
}

func (p *Position) count() int {
	n := 0
	for _, set := range []bool{p.SwePosition != nil, p.Vector != nil, p.ProcessModel != nil, p.ProcessChain != nil} {
		if set {
			n++
		}
	}
	return n
}

func (p *Position) Equal(o *Position) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Name == o.Name &&
		p.Href == o.Href &&
		p.SwePosition.Equal(o.SwePosition) &&
		p.Vector.Equal(o.Vector) &&
		p.ProcessModel.Equal(o.ProcessModel) &&
		p.ProcessChain.Equal(o.ProcessChain)
}

func (p *Position) Hash() uint64 {
	if p == nil {
		return 0
	}
	return newHasher("Position").
		str(p.Name).
		str(p.Href).
		node(p.SwePosition).
		node(p.Vector).
		node(p.ProcessModel).
		node(p.ProcessChain).sum()
}

func (p *Position) String() string {
	if p == nil {
		return ""
	}
	return describe("Position").
		str("name", p.Name).
		str("href", p.Href).
		node("position", p.SwePosition).
		node("vector", p.Vector).
		node("processModel", p.ProcessModel).
		node("processChain", p.ProcessChain).String()
}

type PositionList struct {
	Positions []*Position `xml:"position,omitempty"`
}

type AbstractPositionList interface {
	GetPositions() []AbstractPosition
}

func NewPositionListFrom(src AbstractPositionList) (*PositionList, error) {
	if isNil(src) {
		return nil, nil
	}
	positions, err := convertAllErr(src.GetPositions(), NewPositionFrom)
	if err != nil {
		return nil, err
	}
	return &PositionList{Positions: positions}, nil
}

func (l *PositionList) GetPositions() []AbstractPosition {
	if l == nil {
		return nil
	}
	return abstracts[AbstractPosition](l.Positions)
}

func (l *PositionList) Equal(o *PositionList) bool {
	if l == nil || o == nil {
		return l == o
	}
	return equalNodes(l.Positions, o.Positions)
}

func (l *PositionList) Hash() uint64 {
	if l == nil {
		return 0
	}
	return hashNodes(newHasher("PositionList"), l.Positions).sum()
}

func (l *PositionList) String() string {
	if l == nil {
		return ""
	}
	return describeNodes(describe("PositionList"), "positions", l.Positions).String()
}

var (
	_ AbstractPosition     = (*Position)(nil)
	_ AbstractPositionList = (*PositionList)(nil)
)
