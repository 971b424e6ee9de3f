package sml

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Node is implemented by every SensorML binding type.
type Node interface {
	Hash() uint64
	String() string
}

// UnsupportedTypeError is returned by conversions when a capability
// value matches none of the concrete types its element admits.
type UnsupportedTypeError struct {
	Element string // element being converted
	Type    string // dynamic type of the offending value
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("sml: unsupported %s value of type %s", e.Element, e.Type)
}

func unsupported(element string, v any) error {
	return errors.WithStack(&UnsupportedTypeError{Element: element, Type: fmt.Sprintf("%T", v)})
}

// IsUnsupportedType reports whether err was caused by an unsupported
// capability value.
func IsUnsupportedType(err error) (*UnsupportedTypeError, bool) {
	var ute *UnsupportedTypeError
	ok := errors.As(err, &ute)
	return ute, ok
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// abstracts converts a slice of concrete nodes to their capability
// interface A. The concrete type must implement A.
func abstracts[A any, T any](ts []T) []A {
	if ts == nil {
		return nil
	}
	out := make([]A, len(ts))
	for i, t := range ts {
		out[i] = any(t).(A)
	}
	return out
}

func convertAll[S any, T any](src []S, conv func(S) T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, 0, len(src))
	for _, s := range src {
		out = append(out, conv(s))
	}
	return out
}

func convertAllErr[S any, T any](src []S, conv func(S) (T, error)) ([]T, error) {
	if src == nil {
		return nil, nil
	}
	out := make([]T, 0, len(src))
	for _, s := range src {
		t, err := conv(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type equaler[T any] interface{ Equal(T) bool }

// equalNodes compares slices element-wise, in order.
func equalNodes[T equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// equalFloat treats NaN as equal to NaN, so a node always equals its
// copy.
func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b || (math.IsNaN(*a) && math.IsNaN(*b))
}

func equalBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

const hashMultiplier = 31

// hasher folds field hashes into a per-type seed.
type hasher uint64

func newHasher(kind string) hasher { return hasher(xxhash.Sum64String(kind)) }

func (h hasher) mix(v uint64) hasher { return h*hashMultiplier + hasher(v) }

func (h hasher) str(s string) hasher { return h.mix(xxhash.Sum64String(s)) }

func (h hasher) strs(ss []string) hasher {
	for _, s := range ss {
		h = h.str(s)
	}
	return h.mix(uint64(len(ss)))
}

func (h hasher) node(n Node) hasher {
	if n == nil {
		return h.mix(0)
	}
	return h.mix(n.Hash())
}

func (h hasher) float(p *float64) hasher {
	if p == nil {
		return h.mix(0)
	}
	v := *p
	switch {
	case v == 0:
		// -0 == 0
		v = 0
	case math.IsNaN(v):
		v = math.NaN()
	}
	return h.mix(1).mix(math.Float64bits(v))
}

func (h hasher) boolean(p *bool) hasher {
	switch {
	case p == nil:
		return h.mix(0)
	case *p:
		return h.mix(2)
	}
	return h.mix(1)
}

func (h hasher) sum() uint64 { return uint64(h) }

func hashNodes[T Node](h hasher, ns []T) hasher {
	for _, n := range ns {
		h = h.node(n)
	}
	return h.mix(uint64(len(ns)))
}

// describer builds the String form of a node: Kind{field=value ...}.
// Empty fields are left out.
type describer struct {
	b     strings.Builder
	first bool
}

func describe(kind string) *describer {
	d := &describer{first: true}
	d.b.WriteString(kind)
	d.b.WriteByte('{')
	return d
}

func (d *describer) key(name string) {
	if !d.first {
		d.b.WriteByte(' ')
	}
	d.first = false
	d.b.WriteString(name)
	d.b.WriteByte('=')
}

func (d *describer) str(name, v string) *describer {
	if v != "" {
		d.key(name)
		d.b.WriteString(strconv.Quote(v))
	}
	return d
}

func (d *describer) strs(name string, vs []string) *describer {
	if len(vs) == 0 {
		return d
	}
	d.key(name)
	d.b.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			d.b.WriteByte(' ')
		}
		d.b.WriteString(strconv.Quote(v))
	}
	d.b.WriteByte(']')
	return d
}

func (d *describer) node(name string, n Node) *describer {
	if n == nil {
		return d
	}
	if s := n.String(); s != "" {
		d.key(name)
		d.b.WriteString(s)
	}
	return d
}

func (d *describer) float(name string, p *float64) *describer {
	if p != nil {
		d.key(name)
		d.b.WriteString(strconv.FormatFloat(*p, 'g', -1, 64))
	}
	return d
}

func (d *describer) boolean(name string, p *bool) *describer {
	if p != nil {
		d.key(name)
		d.b.WriteString(strconv.FormatBool(*p))
	}
	return d
}

func (d *describer) String() string { return d.b.String() + "}" }

func describeNodes[T Node](d *describer, name string, ns []T) *describer {
	if len(ns) == 0 {
		return d
	}
	d.key(name)
	d.b.WriteByte('[')
	for i, n := range ns {
		if i > 0 {
			d.b.WriteByte(' ')
		}
		d.b.WriteString(n.String())
	}
	d.b.WriteByte(']')
	return d
}
