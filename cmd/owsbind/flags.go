package main

import (
	"reflect"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/andaru/owsbind/wpsio"
)

// requestFlags select descriptors: a direction, a form and format hints.
type requestFlags struct {
	direction string
	form      string
	hints     wpsio.Format
}

func (f *requestFlags) register(fs *pflag.FlagSet, prefix, direction, form string) {
	fs.StringVar(&f.direction, prefix+"direction", direction, "input or output")
	fs.StringVar(&f.form, prefix+"form", form, "literal, complex, bbox, reference or all")
	f.registerHints(fs, prefix)
}

func (f *requestFlags) registerHints(fs *pflag.FlagSet, prefix string) {
	fs.StringVar(&f.hints.MimeType, prefix+"mime", "", "mime type hint")
	fs.StringVar(&f.hints.Encoding, prefix+"encoding", "", "encoding hint: base64 or a character set")
	fs.StringVar(&f.hints.Schema, prefix+"schema", "", "schema hint")
}

func (f *requestFlags) parse() (wpsio.Direction, wpsio.Form, error) {
	var dir wpsio.Direction
	var form wpsio.Form
	if err := dir.UnmarshalText([]byte(f.direction)); err != nil {
		return dir, form, err
	}
	err := form.UnmarshalText([]byte(f.form))
	return dir, form, err
}

// lookupType resolves a type name from the standard type table.
func lookupType(name string) (reflect.Type, error) {
	types := wpsio.StandardTypes()
	if t, ok := types[name]; ok {
		return t, nil
	}
	names := make([]string, 0, len(types))
	for n := range types {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, errors.Errorf("unknown type %q, known types: %s", name, strings.Join(names, ", "))
}
