// Package document models the untyped result documents returned by the analysis backend.
//
// A Value is a tagged union over the JSON value space. Objects keep the insertion order of
// their keys so that a document is displayed in the order the backend produced it.
package document

import (
	"math"
	"strconv"
)

// Kind is the tag of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a result document. The zero Value is null.
type Value struct {
	kind  Kind
	b     bool
	s     string // string content or number literal
	items []Value
	obj   *Object
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a numeric literal. The literal is kept verbatim for display.
func Number(literal string) Value { return Value{kind: KindNumber, s: literal} }

// Int wraps an integer.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// Float wraps a float using the shortest representation.
func Float(f float64) Value { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps a sequence of values.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean content of v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string content of v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsNumber returns the numeric literal of v.
func (v Value) AsNumber() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// AsFloat parses the numeric literal of v.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Items returns the elements of a list, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.items
}

// Object returns the object behind v, or nil for any other kind.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Get looks up key when v is an object.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject || v.obj == nil {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// GetList returns the list stored under key, if v is an object and the field is a list.
func (v Value) GetList(key string) ([]Value, bool) {
	field, ok := v.Get(key)
	if !ok || field.kind != KindList {
		return nil, false
	}
	return field.items, true
}

// Truthy follows the truthiness rules of the dashboard the contract was written for:
// null, false, "", 0 and NaN are falsy, everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		f, ok := v.AsFloat()
		if !ok {
			return v.s != ""
		}
		return f != 0 && !math.IsNaN(f)
	case KindString:
		return v.s != ""
	default:
		return true
	}
}

// Text stringifies v for display. Lists and objects are rendered as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber, KindString:
		return v.s
	default:
		b, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(b)
	}
}
