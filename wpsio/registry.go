package wpsio

import (
	"reflect"
	"slices"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Registry is an ordered, immutable set of format descriptors. It is
// safe for concurrent use.
type Registry struct {
	descs []FormatDescriptor
}

// NewRegistry returns a registry of descs, in order. The slice is
// copied; later changes to it do not affect the registry.
func NewRegistry(descs ...FormatDescriptor) *Registry {
	return &Registry{descs: slices.Clone(descs)}
}

// Descriptors returns a copy of the registry's descriptors, in order.
func (r *Registry) Descriptors() []FormatDescriptor {
	return slices.Clone(r.descs)
}

// Supported returns the descriptors serving t in direction dir and form
// form (any form for FormAll), in registry order.
func (r *Registry) Supported(t reflect.Type, dir Direction, form Form) []FormatDescriptor {
	var out []FormatDescriptor
	for _, d := range r.descs {
		if d.matches(t) && d.Direction == dir && form.matches(d.Form) {
			out = append(out, d)
		}
	}
	return out
}

// FindDescriptor returns the descriptor best matching the request.
//
// Without hints it is the first candidate. With hints, a candidate
// matching all of them is returned as soon as it is seen; otherwise the
// highest scoring candidate, the earliest one among equals.
func (r *Registry) FindDescriptor(t reflect.Type, dir Direction, form Form, hints Format) (FormatDescriptor, error) {
	cands := r.Supported(t, dir, form)
	if len(cands) == 0 {
		return FormatDescriptor{}, errors.WithStack(r.noConverter(t, dir, form, hints))
	}

	want := hints.hints()
	if want == 0 {
		glog.V(1).Infof("wpsio: %s %s %v: no hints, using %s", dir, form, t, cands[0])
		return cands[0], nil
	}

	best, bestScore := 0, -1
	for i, d := range cands {
		score := hints.score(d.Format)
		glog.V(2).Infof("wpsio: candidate %s scored %d/%d", d, score, want)
		if score == want {
			glog.V(1).Infof("wpsio: %s %s %v: perfect match %s", dir, form, t, d)
			return d, nil
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	glog.V(1).Infof("wpsio: %s %s %v: best match %s (%d/%d)", dir, form, t, cands[best], bestScore, want)
	return cands[best], nil
}

// FindConverter returns the converter of the descriptor FindDescriptor
// selects.
func (r *Registry) FindConverter(t reflect.Type, dir Direction, form Form, hints Format) (Converter, error) {
	d, err := r.FindDescriptor(t, dir, form, hints)
	if err != nil {
		return nil, err
	}
	return d.Converter, nil
}

// FindConverterFor is FindConverter for the type T.
func FindConverterFor[T any](r *Registry, dir Direction, form Form, hints Format) (Converter, error) {
	return r.FindConverter(TypeOf[T](), dir, form, hints)
}

// DefaultSupport returns the first default-flagged descriptor serving
// the request. Several descriptors may be flagged; registry order
// decides.
func (r *Registry) DefaultSupport(t reflect.Type, dir Direction, form Form) (FormatDescriptor, error) {
	cands := r.Supported(t, dir, form)
	for _, d := range cands {
		if d.Default {
			return d, nil
		}
	}
	err := r.noConverter(t, dir, form, Format{})
	err.Default = len(cands) > 0
	return FormatDescriptor{}, errors.WithStack(err)
}

// noConverter builds the error for an unserved request, naming the
// descriptor for t that best matches hints in any direction and form.
func (r *Registry) noConverter(t reflect.Type, dir Direction, form Form, hints Format) *NoConverterError {
	err := &NoConverterError{Type: t, Direction: dir, Form: form, Hints: hints}
	bestScore := -1
	for _, d := range r.descs {
		if !d.matches(t) {
			continue
		}
		if score := hints.score(d.Format); score > bestScore {
			nearest := d
			err.Nearest, bestScore = &nearest, score
		}
	}
	glog.V(1).Info(err)
	return err
}
