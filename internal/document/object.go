package document

// Entry is one key/value pair of an object.
type Entry struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered mapping from string keys to values.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores value under key. Re-setting an existing key keeps its original position.
func (o *Object) Set(key string, value Value) *Object {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Entries returns the pairs in insertion order.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}
	entries := make([]Entry, 0, len(o.keys))
	for _, k := range o.keys {
		entries = append(entries, Entry{Key: k, Value: o.values[k]})
	}
	return entries
}

// Value wraps the object as a document value.
func (o *Object) Value() Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Entries returns the pairs of v when it is an object.
func (v Value) Entries() []Entry {
	return v.Object().Entries()
}
