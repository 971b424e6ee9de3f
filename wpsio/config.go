package wpsio

import (
	"os"
	"reflect"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config describes a registry. Formats are kept in order.
type Config struct {
	Formats []FormatEntry `json:"formats" yaml:"formats"`
}

// FormatEntry describes one FormatDescriptor by name.
type FormatEntry struct {
	Converter string `json:"converter" yaml:"converter"`
	Type      string `json:"type" yaml:"type"`
	Direction string `json:"direction" yaml:"direction"`
	Form      string `json:"form" yaml:"form"`
	MimeType  string `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Encoding  string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Schema    string `json:"schema,omitempty" yaml:"schema,omitempty"`
	Default   bool   `json:"default,omitempty" yaml:"default,omitempty"`
}

// ParseConfig parses a YAML registry description. Unknown fields are
// errors.
func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalWithOptions(b, &c, yaml.DisallowUnknownField()); err != nil {
		return Config{}, errors.Wrap(err, "wpsio: config")
	}
	return c, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	c, err := ParseConfig(b)
	return c, errors.Wrap(err, path)
}

// Marshal returns c as YAML.
func (c Config) Marshal() ([]byte, error) {
	b, err := yaml.Marshal(c)
	return b, errors.WithStack(err)
}

// Registry builds the registry c describes, resolving converter names
// in catalog and type names in types.
func (c Config) Registry(catalog Catalog, types map[string]reflect.Type) (*Registry, error) {
	descs := make([]FormatDescriptor, 0, len(c.Formats))
	for i, e := range c.Formats {
		d, err := e.descriptor(catalog, types)
		if err != nil {
			return nil, errors.Wrapf(err, "wpsio: config format %d", i)
		}
		descs = append(descs, d)
	}
	return NewRegistry(descs...), nil
}

func (e FormatEntry) descriptor(catalog Catalog, types map[string]reflect.Type) (FormatDescriptor, error) {
	d := FormatDescriptor{
		Format:  Format{MimeType: e.MimeType, Encoding: e.Encoding, Schema: e.Schema},
		Default: e.Default,
	}
	newConverter, ok := catalog[e.Converter]
	if !ok {
		return d, errors.Errorf("unknown converter %q", e.Converter)
	}
	if d.Type, ok = types[e.Type]; !ok {
		return d, errors.Errorf("unknown type %q", e.Type)
	}
	if err := d.Direction.UnmarshalText([]byte(e.Direction)); err != nil {
		return d, err
	}
	if err := d.Form.UnmarshalText([]byte(e.Form)); err != nil {
		return d, err
	}
	if d.Form == FormAll {
		return d, errors.New(`form "all" is only valid when resolving`)
	}
	d.Converter = newConverter(d.Type)
	return d, nil
}
