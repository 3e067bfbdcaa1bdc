// Package jsonvalue provides a read-only, dynamically typed view over a JSON
// document. Values keep their raw bytes and are navigated lazily, so open-ended
// payloads can be queried field by field without declaring a schema.
package jsonvalue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/samber/mo"
	"github.com/segmentio/encoding/json"
)

// Kind is the JSON type of a Value.
type Kind int

const (
	Missing Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "missing"
	}
}

var (
	// ErrInvalid is returned by Parse for text that is not a single valid JSON document.
	ErrInvalid = errors.New("invalid json")
	// ErrMissing reports an absent field.
	ErrMissing = errors.New("missing")
	// ErrType reports a field holding a value of an unexpected type.
	ErrType = errors.New("unexpected type")
)

// FieldError describes why a named field could not be read.
type FieldError struct {
	Path []string
	Want Kind
	Got  Kind
	Err  error
}

func (e *FieldError) Error() string {
	name := strings.Join(e.Path, ".")
	if name == "" {
		name = "<root>"
	}
	if errors.Is(e.Err, ErrType) {
		return fmt.Sprintf("field %s: want %s, got %s", name, e.Want, e.Got)
	}
	return fmt.Sprintf("field %s: %v", name, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Value is an immutable JSON value. The zero Value is Missing.
type Value struct {
	raw  []byte
	kind Kind
}

// Parse validates text as one JSON document and returns its root value.
func Parse(text string) (Value, error) {
	data := []byte(text)
	if !json.Valid(data) {
		return Value{}, ErrInvalid
	}

	raw, t, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return wrap(raw, t), nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests and static data.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

func wrap(raw []byte, t jsonparser.ValueType) Value {
	switch t {
	case jsonparser.String:
		// jsonparser strips the quotes of string values; keep them so raw stays valid JSON.
		quoted := make([]byte, 0, len(raw)+2)
		quoted = append(quoted, '"')
		quoted = append(quoted, raw...)
		quoted = append(quoted, '"')
		return Value{raw: quoted, kind: String}
	case jsonparser.Number:
		return Value{raw: raw, kind: Number}
	case jsonparser.Object:
		return Value{raw: raw, kind: Object}
	case jsonparser.Array:
		return Value{raw: raw, kind: Array}
	case jsonparser.Boolean:
		return Value{raw: raw, kind: Bool}
	case jsonparser.Null:
		return Value{raw: raw, kind: Null}
	default:
		return Value{}
	}
}

// Kind returns the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v holds no value at all.
func (v Value) IsMissing() bool { return v.kind == Missing }

// Raw returns the JSON encoding of v. Missing values encode as nil.
func (v Value) Raw() []byte { return v.raw }

// Get returns the value at path. Path elements are object keys or "[i]" array indexes.
func (v Value) Get(path ...string) (Value, error) {
	if len(path) == 0 {
		if v.IsMissing() {
			return Value{}, &FieldError{Err: ErrMissing}
		}
		return v, nil
	}
	if v.IsMissing() {
		return Value{}, &FieldError{Path: path, Err: ErrMissing}
	}
	if v.kind != Object && v.kind != Array {
		return Value{}, &FieldError{Path: path, Want: Object, Got: v.kind, Err: ErrType}
	}

	raw, t, _, err := jsonparser.Get(v.raw, path...)
	if err != nil {
		return Value{}, &FieldError{Path: path, Err: ErrMissing}
	}
	return wrap(raw, t), nil
}

// Has reports whether a value exists at path.
func (v Value) Has(path ...string) bool {
	_, err := v.Get(path...)
	return err == nil
}

func (v Value) typed(want Kind, path []string) (Value, error) {
	field, err := v.Get(path...)
	if err != nil {
		return Value{}, err
	}
	if field.kind != want {
		return Value{}, &FieldError{Path: path, Want: want, Got: field.kind, Err: ErrType}
	}
	return field, nil
}

// Str returns the string at path.
func (v Value) Str(path ...string) (string, error) {
	field, err := v.typed(String, path)
	if err != nil {
		return "", err
	}
	return field.text()
}

func (v Value) text() (string, error) {
	return jsonparser.ParseString(v.raw[1 : len(v.raw)-1])
}

// Int returns the integral number at path.
func (v Value) Int(path ...string) (int64, error) {
	field, err := v.typed(Number, path)
	if err != nil {
		return 0, err
	}
	n, err := jsonparser.ParseInt(field.raw)
	if err != nil {
		return 0, &FieldError{Path: path, Want: Number, Got: Number, Err: ErrType}
	}
	return n, nil
}

// Integer is a lenient Int: it also accepts a string holding a base-10 integer,
// which is how the platform encodes many counters and sizes.
func (v Value) Integer(path ...string) (int64, error) {
	field, err := v.Get(path...)
	if err != nil {
		return 0, err
	}

	switch field.kind {
	case Number:
		return field.Int()
	case String:
		s, err := field.text()
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, &FieldError{Path: path, Want: Number, Got: String, Err: ErrType}
		}
		return n, nil
	default:
		return 0, &FieldError{Path: path, Want: Number, Got: field.kind, Err: ErrType}
	}
}

// Float returns the number at path.
func (v Value) Float(path ...string) (float64, error) {
	field, err := v.typed(Number, path)
	if err != nil {
		return 0, err
	}
	return jsonparser.ParseFloat(field.raw)
}

// Bool returns the boolean at path.
func (v Value) Bool(path ...string) (bool, error) {
	field, err := v.typed(Bool, path)
	if err != nil {
		return false, err
	}
	return jsonparser.ParseBoolean(field.raw)
}

// Array returns the elements of the array at path.
func (v Value) Array(path ...string) ([]Value, error) {
	field, err := v.typed(Array, path)
	if err != nil {
		return nil, err
	}

	var (
		items   []Value
		iterErr error
	)
	_, err = jsonparser.ArrayEach(field.raw, func(raw []byte, t jsonparser.ValueType, _ int, err error) {
		if err != nil {
			iterErr = err
			return
		}
		items = append(items, wrap(raw, t))
	})
	if err == nil {
		err = iterErr
	}
	if err != nil {
		return nil, fmt.Errorf("iterate %s: %w", strings.Join(path, "."), err)
	}
	return items, nil
}

// Keys returns the keys of an object in document order. Any other kind has no keys.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}

	var keys []string
	_ = jsonparser.ObjectEach(v.raw, func(k []byte, _ []byte, _ jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(k)
		if err != nil {
			name = string(k)
		}
		keys = append(keys, name)
		return nil
	})
	return keys
}

// OptStr is Str with absence and type mismatches folded into None.
func (v Value) OptStr(path ...string) mo.Option[string] {
	s, err := v.Str(path...)
	if err != nil {
		return mo.None[string]()
	}
	return mo.Some(s)
}

// OptInteger is Integer with absence and type mismatches folded into None.
func (v Value) OptInteger(path ...string) mo.Option[int64] {
	n, err := v.Integer(path...)
	if err != nil {
		return mo.None[int64]()
	}
	return mo.Some(n)
}

// OptBool is Bool with absence and type mismatches folded into None.
func (v Value) OptBool(path ...string) mo.Option[bool] {
	b, err := v.Bool(path...)
	if err != nil {
		return mo.None[bool]()
	}
	return mo.Some(b)
}

// Interface decodes v into generic Go values (map[string]any, []any, string, float64, bool, nil).
func (v Value) Interface() (any, error) {
	if v.IsMissing() {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(v.raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalJSON emits the raw encoding; Missing encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsMissing() {
		return []byte("null"), nil
	}
	return v.raw, nil
}
