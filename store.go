package codable

import "iter"

// ordered is an insertion-ordered map. Re-setting a key keeps its position.
type ordered[K comparable] struct {
	keys   []K
	values map[K]any
}

func (o *ordered[K]) set(k K, v any) {
	if o.values == nil {
		o.values = make(map[K]any)
	}
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

func (o *ordered[K]) get(k K) (any, bool) {
	v, ok := o.values[k]
	return v, ok
}

func (o *ordered[K]) remove(k K) {
	if _, ok := o.values[k]; !ok {
		return
	}
	delete(o.values, k)
	for i, existing := range o.keys {
		if existing == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

func (o *ordered[K]) all() iter.Seq2[K, any] {
	return func(yield func(K, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Store is the attribute container of a Codeable.
//
// Keys keep their insertion order, which is the order the encoder emits them in.
// The zero value is an empty store ready for use.
type Store struct {
	m ordered[string]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set assigns v to key. A key that already exists keeps its position.
func (s *Store) Set(key string, v any) {
	s.m.set(key, v)
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (any, bool) {
	return s.m.get(key)
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.m.get(key)
	return ok
}

// Delete removes key. Missing keys are ignored.
func (s *Store) Delete(key string) {
	s.m.remove(key)
}

// Len returns the number of attributes.
func (s *Store) Len() int {
	return len(s.m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *Store) Keys() []string {
	return append([]string(nil), s.m.keys...)
}

// All iterates attributes in insertion order.
func (s *Store) All() iter.Seq2[string, any] {
	return s.m.all()
}

// String returns the attribute under key if it holds a string.
func (s *Store) String(key string) (string, bool) {
	v, _ := s.m.get(key)
	str, ok := v.(string)
	return str, ok
}

// Bool returns the attribute under key if it holds a bool.
func (s *Store) Bool(key string) (bool, bool) {
	v, _ := s.m.get(key)
	b, ok := v.(bool)
	return b, ok
}

// Int returns the attribute under key as an int.
// Any builtin integer type is accepted.
func (s *Store) Int(key string) (int, bool) {
	v, _ := s.m.get(key)
	return asInt(v)
}

// Float returns the attribute under key as a float64.
// Integers are widened.
func (s *Store) Float(key string) (float64, bool) {
	v, _ := s.m.get(key)
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true // #nosec G115 -- attribute values are caller-controlled
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true // #nosec G115 -- attribute values are caller-controlled
	}
	return 0, false
}

// Record is an embeddable Codeable.
//
//	type Article struct {
//	    codable.Record
//	}
//
// The zero value is ready for use.
type Record struct {
	attrs        Store
	transformers Transformers
	creators     Creators
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

// Attributes returns the record's attribute store.
func (r *Record) Attributes() *Store { return &r.attrs }

// Transformers returns the record's transformer registry.
func (r *Record) Transformers() *Transformers { return &r.transformers }

// Creators returns the record's creator registry.
func (r *Record) Creators() *Creators { return &r.creators }
