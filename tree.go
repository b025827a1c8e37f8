package codable

import "iter"

// Object is a JSON object as produced by a Parser. Member order is preserved.
type Object struct {
	m ordered[string]
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// Set assigns a member. Parsers call this in document order.
func (o *Object) Set(name string, v any) {
	o.m.set(name, v)
}

// Get returns the member called name.
func (o *Object) Get(name string) (any, bool) {
	return o.m.get(name)
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.m.keys)
}

// Keys returns the member names in document order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.m.keys...)
}

// All iterates members in document order.
func (o *Object) All() iter.Seq2[string, any] {
	return o.m.all()
}

// Sequence is an ordered container the decoder appends elements to.
type Sequence interface {
	Len() int
	At(i int) any
	Append(v any)
}

// Mapping is a keyed container. Keys report insertion order.
type Mapping interface {
	Len() int
	Keys() []any
	Get(key any) (any, bool)
	Put(key, v any)
}

// List is the default Sequence.
type List struct {
	items []any
}

// NewList returns a list holding items.
func NewList(items ...any) *List {
	return &List{items: items}
}

func (l *List) Len() int { return len(l.items) }
func (l *List) At(i int) any { return l.items[i] }
func (l *List) Append(v any) { l.items = append(l.items, v) }
func (l *List) Items() []any { return append([]any(nil), l.items...) }

// Map is the default Mapping. Keys may be of any comparable type.
type Map struct {
	m ordered[any]
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{}
}

func (m *Map) Len() int { return len(m.m.keys) }

func (m *Map) Keys() []any { return append([]any(nil), m.m.keys...) }

func (m *Map) Get(key any) (any, bool) { return m.m.get(key) }

func (m *Map) Put(key, v any) { m.m.set(key, v) }

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key any) { m.m.remove(key) }

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[any, any] { return m.m.all() }
