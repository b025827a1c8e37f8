package codable_test

import (
	"testing"

	"github.com/zoobzio/codable"
	"github.com/zoobzio/codable/json"
	"github.com/zoobzio/codable/yaml"
)

func TestUse_Caching(t *testing.T) {
	codable.Reset()

	c1 := codable.Use(json.New())
	c2 := codable.Use(json.New())

	if c1 != c2 {
		t.Error("Use() should return cached codec")
	}
}

func TestUse_DifferentContentTypes(t *testing.T) {
	codable.Reset()

	c1 := codable.Use(json.New())
	c2 := codable.Use(yaml.New())

	if c1 == c2 {
		t.Error("different content types should get different codecs")
	}
	if got := c2.ContentType(); got != "application/yaml" {
		t.Errorf("ContentType() = %q, want application/yaml", got)
	}
}

func TestReset(t *testing.T) {
	c1 := codable.Use(json.New())

	codable.Reset()

	c2 := codable.Use(json.New())

	if c1 == c2 {
		t.Error("Reset() should clear cache, new codec expected")
	}
}
