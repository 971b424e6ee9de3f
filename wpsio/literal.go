package wpsio

import (
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// LiteralConverter converts literal values of Type, one of the built-in
// scalar kinds or time.Time, to and from their text form.
type LiteralConverter struct {
	Type reflect.Type
}

func (c LiteralConverter) Decode(r io.Reader, _ Format) (any, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseLiteral(c.Type, strings.TrimSpace(string(b)))
}

func (c LiteralConverter) Encode(w io.Writer, v any, _ Format) error {
	s, err := FormatLiteral(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return errors.WithStack(err)
}

// ParseLiteral parses s as a value of type t.
func ParseLiteral(t reflect.Type, s string) (any, error) {
	if t == timeType {
		tm, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return tm, nil
	}
	if t == nil {
		return nil, errors.New("wpsio: nil literal type")
	}
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return nil, errors.WithStack(err)
		}
		v.SetFloat(f)
	default:
		return nil, errors.Errorf("wpsio: %v is not a literal type", t)
	}
	return v.Interface(), nil
}

// FormatLiteral returns the text form of a literal value.
func FormatLiteral(v any) (string, error) {
	if tm, ok := v.(time.Time); ok {
		return tm.Format(time.RFC3339Nano), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), nil
	}
	return "", errors.Errorf("wpsio: %T is not a literal type", v)
}
