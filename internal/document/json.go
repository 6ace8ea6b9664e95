package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrEmptyDocument is returned when the input holds no JSON value at all.
var ErrEmptyDocument = errors.New("document is empty")

// ParseJSON decodes a single JSON value from b.
func ParseJSON(b []byte) (Value, error) {
	return DecodeJSON(bytes.NewReader(b))
}

// DecodeJSON decodes a single JSON value from r, keeping object keys in wire order.
func DecodeJSON(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return Value{}, ErrEmptyDocument
	}
	if err != nil {
		return Value{}, fmt.Errorf("invalid JSON document: %w", err)
	}

	v, err := fromToken(dec, tok)
	if err != nil {
		return Value{}, fmt.Errorf("invalid JSON document: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("invalid JSON document: unexpected data after the top-level value")
	}
	return v, nil
}

func fromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	default:
		return Value{}, fmt.Errorf("unexpected token %v", t)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		val, err := fromToken(dec, valTok)
		if err != nil {
			return Value{}, err
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj.Value(), nil
}

func decodeList(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		item, err := fromToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return List(items...), nil
}

// MarshalJSON encodes v, emitting object keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if !json.Valid([]byte(v.s)) {
			// non-JSON literals (YAML .inf, hex) are emitted as strings
			return writeJSONString(buf, v.s)
		}
		buf.WriteString(v.s)
	case KindString:
		return writeJSONString(buf, v.s)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, e := range v.obj.Entries() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, e.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := e.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// UnmarshalJSON decodes into v, keeping object key order.
func (v *Value) UnmarshalJSON(b []byte) error {
	parsed, err := ParseJSON(b)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromAny converts plain Go values (as produced by encoding/json into interface{}) into a
// Value. Go maps carry no order, so their keys are sorted.
func FromAny(in interface{}) Value {
	switch t := in.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case *Object:
		return t.Value()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		return Number(t.String())
	case float64:
		return Float(t)
	case float32:
		return Float(float64(t))
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case []interface{}:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return List(items...)
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			obj.Set(k, FromAny(t[k]))
		}
		return obj.Value()
	default:
		return String(fmt.Sprint(t))
	}
}
