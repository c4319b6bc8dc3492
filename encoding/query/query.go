// Package query serialises parameter records into the canonical
// application/x-www-form-urlencoded string used both as the request query and
// as the signature payload. Field order follows the struct definition so that
// re-encoding the same value always yields byte-identical output.
//
// Field rules, driven by the `url` struct tag:
//   - nil pointers and nil slices are absent and omitted
//   - scalars are encoded as name=value
//   - slices are encoded as a JSON array literal, name=["a","b"], escaped whole
//   - nested and embedded structs are flattened, the parent name is dropped
//   - values implementing encoding.TextMarshaler are encoded as their text
package query

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thrasher-corp/binance-connector/encoding/json"
)

const tagName = "url"

var (
	errUnsupportedType = errors.New("unsupported parameter type")

	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// Pair is a single encoded parameter
type Pair struct {
	Key   string
	Value string
}

// Values is an ordered parameter list
type Values []Pair

// Add appends a parameter
func (v *Values) Add(key, value string) {
	*v = append(*v, Pair{Key: key, Value: value})
}

// Get returns the first value stored under key
func (v Values) Get(key string) (string, bool) {
	for i := range v {
		if v[i].Key == key {
			return v[i].Value, true
		}
	}
	return "", false
}

// Sorted returns a copy ordered by key, preserving the relative order of
// duplicate keys
func (v Values) Sorted() Values {
	out := make(Values, len(v))
	copy(out, v)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Encode returns the percent-encoded query string in list order
func (v Values) Encode() string {
	if len(v) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range v {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(v[i].Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(v[i].Value))
	}
	return sb.String()
}

// Join returns key=value pairs joined by & without percent-encoding
func (v Values) Join() string {
	var sb strings.Builder
	for i := range v {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(v[i].Key)
		sb.WriteByte('=')
		sb.WriteString(v[i].Value)
	}
	return sb.String()
}

// Encode serialises params into its canonical query string
func Encode(params any) (string, error) {
	vals, err := Marshal(params)
	if err != nil {
		return "", err
	}
	return vals.Encode(), nil
}

// Marshal flattens params into an ordered parameter list. A nil params value
// yields an empty list.
func Marshal(params any) (Values, error) {
	if params == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s, expected struct", errUnsupportedType, rv.Type())
	}
	var out Values
	if err := encodeStruct(&out, rv); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeStruct(out *Values, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, omitEmpty, skip := parseTag(sf)
		if skip {
			continue
		}
		if err := encodeField(out, name, omitEmpty, rv.Field(i)); err != nil {
			return fmt.Errorf("%s: %w", sf.Name, err)
		}
	}
	return nil
}

func encodeField(out *Values, name string, omitEmpty bool, fv reflect.Value) error {
	for fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	if fv.Type().Implements(textMarshalerType) || reflect.PointerTo(fv.Type()).Implements(textMarshalerType) {
		if omitEmpty && fv.IsZero() {
			return nil
		}
		text, err := marshalText(fv)
		if err != nil {
			return err
		}
		out.Add(name, text)
		return nil
	}

	switch fv.Kind() {
	case reflect.Struct:
		return encodeStruct(out, fv)
	case reflect.Slice, reflect.Array:
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			return nil
		}
		if omitEmpty && fv.Len() == 0 {
			return nil
		}
		literal, err := json.Marshal(fv.Interface())
		if err != nil {
			return err
		}
		out.Add(name, string(literal))
		return nil
	}

	if omitEmpty && fv.IsZero() {
		return nil
	}
	s, err := scalar(fv)
	if err != nil {
		return err
	}
	out.Add(name, s)
	return nil
}

func marshalText(fv reflect.Value) (string, error) {
	if tm, ok := fv.Interface().(encoding.TextMarshaler); ok {
		b, err := tm.MarshalText()
		return string(b), err
	}
	// Pointer receiver, take an addressable copy
	cp := reflect.New(fv.Type())
	cp.Elem().Set(fv)
	b, err := cp.Interface().(encoding.TextMarshaler).MarshalText()
	return string(b), err
}

func scalar(fv reflect.Value) (string, error) {
	switch fv.Kind() {
	case reflect.String:
		return fv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedType, fv.Type())
	}
}

func parseTag(sf reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := sf.Tag.Get(tagName)
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	omitEmpty = opts == "omitempty"
	if name == "" {
		name = lowerFirst(sf.Name)
	}
	return name, omitEmpty, false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
