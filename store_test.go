package codable

import (
	"slices"
	"testing"
)

func TestStore_InsertionOrder(t *testing.T) {
	s := NewStore()
	s.Set("name", "Remote Control")
	s.Set("price", 2499)
	s.Set("popularity", 0.1)
	s.Set("name", "TV Remote")

	want := []string{"name", "price", "popularity"}
	if got := s.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v, _ := s.String("name"); v != "TV Remote" {
		t.Errorf("String(name) = %q, want TV Remote", v)
	}

	var iterated []string
	for k := range s.All() {
		iterated = append(iterated, k)
	}
	if !slices.Equal(iterated, want) {
		t.Errorf("All() order = %v, want %v", iterated, want)
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)
	s.Delete("b")
	s.Delete("missing")

	if s.Has("b") {
		t.Error("Has(b) = true after Delete")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.Keys(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Keys() = %v, want [a c]", got)
	}

	s.Set("b", 4)
	if got := s.Keys(); !slices.Equal(got, []string{"a", "c", "b"}) {
		t.Errorf("Keys() after re-adding = %v, want [a c b]", got)
	}
}

func TestStore_KeysIsCopy(t *testing.T) {
	s := NewStore()
	s.Set("a", 1)

	keys := s.Keys()
	keys[0] = "mutated"

	if !s.Has("a") || s.Keys()[0] != "a" {
		t.Error("mutating Keys() result should not affect the store")
	}
}

func TestStore_TypedGetters(t *testing.T) {
	var s Store
	s.Set("str", "x")
	s.Set("flag", true)
	s.Set("small", int8(-3))
	s.Set("big", uint32(70000))
	s.Set("ratio", float32(0.5))
	s.Set("nil", nil)

	if v, ok := s.String("str"); !ok || v != "x" {
		t.Errorf("String(str) = %q, %v", v, ok)
	}
	if _, ok := s.String("flag"); ok {
		t.Error("String(flag) should fail")
	}
	if v, ok := s.Bool("flag"); !ok || !v {
		t.Errorf("Bool(flag) = %v, %v", v, ok)
	}
	if v, ok := s.Int("small"); !ok || v != -3 {
		t.Errorf("Int(small) = %d, %v", v, ok)
	}
	if v, ok := s.Int("big"); !ok || v != 70000 {
		t.Errorf("Int(big) = %d, %v", v, ok)
	}
	if _, ok := s.Int("ratio"); ok {
		t.Error("Int(ratio) should fail")
	}
	if v, ok := s.Float("ratio"); !ok || v != 0.5 {
		t.Errorf("Float(ratio) = %v, %v", v, ok)
	}
	if v, ok := s.Float("big"); !ok || v != 70000 {
		t.Errorf("Float(big) = %v, %v", v, ok)
	}
	if v, ok := s.Get("nil"); !ok || v != nil {
		t.Errorf("Get(nil) = %v, %v; want nil, true", v, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
}

func TestRecord_ZeroValue(t *testing.T) {
	var r Record

	r.Attributes().Set("a", 1)
	r.Transformers().SetString("a", func(v any) (any, error) { return v, nil })
	r.Creators().SetString("b", func(*Object) (any, error) { return NewList(), nil })

	if r.Attributes().Len() != 1 {
		t.Error("attribute should be stored on the zero record")
	}
	if r.Transformers().Len() != 1 || r.Creators().Len() != 1 {
		t.Error("hooks should be registered on the zero record")
	}

	var _ Codeable = NewRecord()
}
