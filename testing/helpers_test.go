package testing

import (
	"testing"

	"github.com/zoobzio/codable"
)

func TestTestKey(t *testing.T) {
	key := TestKey(t)
	if len(key) != 32 {
		t.Errorf("TestKey() length = %d, want 32", len(key))
	}
}

func TestTestEncryptor(t *testing.T) {
	enc := TestEncryptor(t)
	if enc == nil {
		t.Fatal("TestEncryptor() should not return nil")
	}

	plaintext := []byte("test")
	ciphertext, err := enc.Encrypt(plaintext)
	if err != nil {
		t.Errorf("Encrypt() error: %v", err)
	}

	decrypted, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Errorf("Decrypt() error: %v", err)
	}

	if string(decrypted) != string(plaintext) {
		t.Errorf("round-trip failed")
	}
}

func TestArea_String(t *testing.T) {
	if Music.String() != "music" || Area(9).String() != "Area(9)" {
		t.Errorf("String() = %q, %q", Music.String(), Area(9).String())
	}
}

func TestArticleCreator(t *testing.T) {
	tests := []struct {
		area any
		want string
	}{
		{nil, "*testing.Article"},
		{0, "*testing.ElectronicsArticle"},
		{1, "*testing.MusicArticle"},
		{2, "*testing.Article"},
	}

	for _, tt := range tests {
		obj := codable.NewObject()
		if tt.area != nil {
			obj.Set("area", tt.area)
		}
		got, err := ArticleCreator(obj)
		if err != nil {
			t.Fatalf("ArticleCreator(%v) error: %v", tt.area, err)
		}
		if typeName := Flatten(got).(map[string]any)["$type"]; typeName != tt.want {
			t.Errorf("ArticleCreator(%v) = %v, want %s", tt.area, typeName, tt.want)
		}
	}

	obj := codable.NewObject()
	obj.Set("area", "music")
	if _, err := ArticleCreator(obj); err == nil {
		t.Error("ArticleCreator should reject a non-integer area")
	}
}

func TestTrack_ReadAttributes(t *testing.T) {
	s := codable.NewStore()
	s.Set("title", "Something")
	if err := (&Track{}).ReadAttributes(s); err == nil {
		t.Error("ReadAttributes should require seconds")
	}

	s.Set("seconds", 182)
	s.Set("released", "1969-09-26")
	if err := (&Track{}).ReadAttributes(s); err == nil {
		t.Error("ReadAttributes should require released to be a time")
	}
}

func TestNewTrackRecord(t *testing.T) {
	r := NewTrackRecord(&Track{Title: "Something", Seconds: 182})

	if got := r.Attributes().Keys(); len(got) != 2 || got[0] != "title" || got[1] != "seconds" {
		t.Errorf("Keys() = %v, want [title seconds]", got)
	}
	if _, ok := r.Transformers().Lookup(codable.Field("released")); !ok {
		t.Error("track record should register the released transformer")
	}
}

func TestFlatten(t *testing.T) {
	m := codable.NewMap()
	m.Put(2020, codable.NewList("x"))

	got := Flatten(map[string]any{"m": m, "s": []any{1}})
	want := map[string]any{
		"m": map[any]any{2020: []any{"x"}},
		"s": []any{1},
	}

	gm := got.(map[string]any)
	inner := gm["m"].(map[any]any)[2020].([]any)
	if len(inner) != 1 || inner[0] != "x" || gm["s"].([]any)[0] != 1 {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}
