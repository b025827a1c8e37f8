package json

import (
	"errors"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/codable"
	codabletest "github.com/zoobzio/codable/testing"
)

func TestNew(t *testing.T) {
	p := New()
	if p == nil {
		t.Error("New() should return non-nil parser")
	}
}

func TestContentType(t *testing.T) {
	p := New()
	if p.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", p.ContentType(), "application/json")
	}
}

func TestParse_Tree(t *testing.T) {
	input := `{
		"name": "Remote Control",
		"price": 2499,
		"popularity": 0.1,
		"big": 1e3,
		"huge": 92233720368547758070,
		"gift": false,
		"note": null,
		"tags": ["a", 1, [], {}],
		"nested": {"z": 1, "a": "é\n"}
	}`

	got, err := New().Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := map[string]any{
		"name":       "Remote Control",
		"price":      2499,
		"popularity": 0.1,
		"big":        1000.0,
		"huge":       92233720368547758070.0,
		"gift":       false,
		"note":       nil,
		"tags":       []any{"a", 1, []any{}, map[string]any{}},
		"nested":     map[string]any{"z": 1, "a": "é\n"},
	}
	if diff := cmp.Diff(want, codabletest.Flatten(got)); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_PreservesMemberOrder(t *testing.T) {
	got, err := New().Parse([]byte(`{"z": 1, "a": 2, "m": {"y": 1, "b": 2}}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	obj := got.(*codable.Object)
	if keys := obj.Keys(); !slices.Equal(keys, []string{"z", "a", "m"}) {
		t.Errorf("Keys() = %v, want [z a m]", keys)
	}
	m, _ := obj.Get("m")
	if keys := m.(*codable.Object).Keys(); !slices.Equal(keys, []string{"y", "b"}) {
		t.Errorf("nested Keys() = %v, want [y b]", keys)
	}
}

func TestParse_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"0", 0},
		{"-17", -17},
		{"9223372036854775807", math.MaxInt64},
		{"1.0", 1.0},
		{"-0.5", -0.5},
		{"2E2", 200.0},
	}

	for _, tt := range tests {
		got, err := New().Parse([]byte(tt.input))
		if err != nil {
			t.Errorf("Parse(%s) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%s) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Scalars(t *testing.T) {
	for input, want := range map[string]any{`"x"`: "x", `true`: true, `null`: nil, ` [] `: []any{}} {
		got, err := New().Parse([]byte(input))
		if err != nil {
			t.Errorf("Parse(%s) error: %v", input, err)
			continue
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse(%s) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"empty", ``, io.ErrUnexpectedEOF},
		{"whitespace", "  \n", io.ErrUnexpectedEOF},
		{"trailing value", `{} []`, ErrTrailingData},
		{"unclosed object", `{"a": 1`, nil},
		{"unclosed array", `[1, 2`, nil},
		{"bad token", `{"a": tru}`, nil},
		{"missing value", `{"a": }`, nil},
		{"bare word", `hello`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Parse() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestParse_DuplicateMembersKeepFirstPosition(t *testing.T) {
	got, err := New().Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	obj := got.(*codable.Object)
	if keys := obj.Keys(); !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
	if v, _ := obj.Get("a"); v != 3 {
		t.Errorf("a = %v, want last value 3", v)
	}
}

func TestParse_EncodeRoundTrip(t *testing.T) {
	r := codable.NewRecord()
	r.Attributes().Set("s", "quote \" backslash \\ tab \t ctrl \x01")
	r.Attributes().Set("f", 3.0)
	r.Attributes().Set("i", -4)

	data, err := codable.Encode(r)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	got, err := New().Parse(data)
	if err != nil {
		t.Fatalf("Parse(%s) error: %v", data, err)
	}

	want := map[string]any{"s": "quote \" backslash \\ tab \t ctrl \x01", "f": 3.0, "i": -4}
	if diff := cmp.Diff(want, codabletest.Flatten(got)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
