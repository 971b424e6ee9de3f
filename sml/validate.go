package sml

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ConstraintError reports an element occurring fewer or more times
// than the schema allows.
type ConstraintError struct {
	Path    string // Path locates the parent, e.g. /SensorML/member[0]
	Name    string // Name is the constraint which failed
	Element string // Element is the constrained child element
	Args    []int  // Args is {saw, want}
}

func (e ConstraintError) Error() string {
	var constraint string
	switch e.Name {
	case "min-occurs", "max-occurs":
		constraint = fmt.Sprintf("%s:%d (saw %d)", e.Name, e.Args[1], e.Args[0])
	default:
		constraint = e.Name
	}
	return fmt.Sprintf("constraint %s failed on element %s at %s", constraint, e.Element, e.Path)
}

func IsConstraintError(err error) (ConstraintError, bool) {
	var ce ConstraintError
	ok := errors.As(err, &ce)
	return ce, ok
}

// Validate checks doc against the occurrence constraints the Go types
// cannot express and returns every violation found, in document order.
// A nil document has no violations.
func Validate(doc *SensorML) []error {
	if doc == nil {
		return nil
	}
	v := &validator{}
	const path = "/SensorML"
	v.min(path, "member", len(doc.Members), 1)
	v.terms(path, doc.Identification, doc.Classification)
	for i, m := range doc.Members {
		if m == nil {
			continue
		}
		v.processVariant(indexed(path, "member", i), m.Href, &m.ProcessVariant)
	}
	return v.errs
}

type validator struct {
	errs []error
}

func (v *validator) min(path, element string, saw, want int) {
	if saw < want {
		v.errs = append(v.errs, ConstraintError{Path: path, Name: "min-occurs", Element: element, Args: []int{saw, want}})
	}
}

func (v *validator) max(path, element string, saw, want int) {
	if saw > want {
		v.errs = append(v.errs, ConstraintError{Path: path, Name: "max-occurs", Element: element, Args: []int{saw, want}})
	}
}

// processVariant checks a member-like element holds exactly one
// process, unless it references one by href.
func (v *validator) processVariant(path, href string, pv *ProcessVariant) {
	n := pv.count()
	if href == "" {
		v.min(path, "process", n, 1)
	}
	v.max(path, "process", n, 1)

	if p := pv.ProcessModel; p != nil {
		v.fields(path+"/ProcessModel", &p.ProcessFields)
	}
	if p := pv.Component; p != nil {
		v.fields(path+"/Component", &p.ProcessFields)
		v.position(path+"/Component/position", p.Position)
	}
	if p := pv.System; p != nil {
		v.system(path+"/System", p)
	}
	if p := pv.ProcessChain; p != nil {
		v.fields(path+"/ProcessChain", &p.ProcessFields)
		v.components(path+"/ProcessChain", p.Components)
	}
}

func (v *validator) system(path string, s *System) {
	v.fields(path, &s.ProcessFields)
	v.position(path+"/position", s.Position)
	v.components(path, s.Components)
	if s.Positions != nil {
		for i, p := range s.Positions.Positions {
			v.position(indexed(path+"/positions/PositionList", "position", i), p)
		}
	}
}

func (v *validator) components(path string, l *ComponentList) {
	if l == nil {
		return
	}
	for i, c := range l.Components {
		if c == nil {
			continue
		}
		v.processVariant(indexed(path+"/components/ComponentList", "component", i), c.Href, &c.ProcessVariant)
	}
}

func (v *validator) position(path string, p *Position) {
	if p == nil {
		return
	}
	n := p.count()
	if p.Href == "" {
		v.min(path, "value", n, 1)
	}
	v.max(path, "value", n, 1)
	if p.ProcessModel != nil {
		v.fields(path+"/ProcessModel", &p.ProcessModel.ProcessFields)
	}
	if p.ProcessChain != nil {
		v.fields(path+"/ProcessChain", &p.ProcessChain.ProcessFields)
		v.components(path+"/ProcessChain", p.ProcessChain.Components)
	}
}

func (v *validator) fields(path string, f *ProcessFields) {
	v.terms(path, f.Identification, f.Classification)
	for i, c := range f.Characteristics {
		if c != nil {
			v.dataRecord(indexed(path, "characteristics", i), c.DataRecord)
		}
	}
	for i, c := range f.Capabilities {
		if c != nil {
			v.dataRecord(indexed(path, "capabilities", i), c.DataRecord)
		}
	}
	for i, h := range f.History {
		if h == nil || h.EventList == nil {
			continue
		}
		for j, m := range h.EventList.Members {
			if m != nil && m.Event != nil {
				v.min(indexed(indexed(path, "history", i)+"/EventList", "member", j)+"/Event", "date", present(m.Event.Date), 1)
			}
		}
	}
}

func (v *validator) terms(path string, ids []*Identification, classes []*Classification) {
	for i, id := range ids {
		if id == nil || id.IdentifierList == nil {
			continue
		}
		for j, ident := range id.IdentifierList.Identifiers {
			if ident != nil {
				v.term(indexed(indexed(path, "identification", i)+"/IdentifierList", "identifier", j), ident.Term)
			}
		}
	}
	for i, c := range classes {
		if c == nil || c.ClassifierList == nil {
			continue
		}
		for j, cl := range c.ClassifierList.Classifiers {
			if cl != nil {
				v.term(indexed(indexed(path, "classification", i)+"/ClassifierList", "classifier", j), cl.Term)
			}
		}
	}
}

func (v *validator) term(path string, t *Term) {
	if t == nil {
		v.min(path, "Term", 0, 1)
		return
	}
	v.min(path+"/Term", "value", present(t.Value), 1)
}

func (v *validator) dataRecord(path string, r *DataRecord) {
	if r == nil {
		return
	}
	for i, f := range r.Fields {
		if f != nil && f.Quantity != nil && f.Quantity.UOM == nil {
			v.min(indexed(path+"/DataRecord", "field", i)+"/Quantity", "uom", 0, 1)
		}
	}
}

// present counts an optional simple element: 1 if set, else 0.
func present(s string) int {
	if s == "" {
		return 0
	}
	return 1
}

func indexed(path, element string, i int) string {
	return path + "/" + element + "[" + strconv.Itoa(i) + "]"
}
