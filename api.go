// Package codable provides a manual, non-reflective JSON codec for
// dynamically typed object graphs.
//
// Objects keep their fields in an attribute Store instead of typed struct
// fields, and register hooks per field: a Transformer for values that have no
// direct JSON form (enumerations, non-string map keys, secrets), and a
// Creator that instantiates the right list, map or nested object when JSON is
// inflated back into memory.
//
// # Basic Usage
//
//	type Article struct {
//	    codable.Record
//	}
//
//	func NewArticle() *Article {
//	    a := &Article{}
//	    a.Transformers().Set(codable.Field("area"), codable.Enum(map[Area]int{
//	        Electronics: 0,
//	        Music:       1,
//	    }))
//	    return a
//	}
//
//	a := NewArticle()
//	a.Attributes().Set("name", "Remote Control")
//	a.Attributes().Set("area", Electronics)
//
//	data, _ := codable.Encode(a)
//	// {"name": "Remote Control", "area": 0}
//
//	c := codable.New(json.New())
//	restored := NewArticle()
//	_ = c.Deserialize(ctx, data, restored)
//
// # Resolution Keys
//
// Hooks are looked up by Key, always against the registries of the object
// currently being encoded or decoded:
//
//   - Field("f") for the value of attribute f itself
//   - Field("f").Key() for converting the keys of a map held in f
//   - Field("f").Value() for each element of a list held in f, and for each
//     value of a map held in f whose keys are strings
//   - Field("2020").Value() for the value stored under map key 2020 when the
//     map's keys went through a key transformer
//
// # On-Demand Objects
//
// Types that do not keep a Store can implement OnDemandCodeable. The codec
// bridges them through a transient Record that inherits the enclosing
// object's transformers and creators.
//
// # Parsers
//
// Decoding starts from a generic value tree. The following parsers are
// available as subpackages:
//
//   - json - JSON text (application/json)
//   - yaml - YAML text (application/yaml)
package codable

// Codeable is an object that stores its fields in an attribute store and
// carries its own hook registries.
type Codeable interface {
	// Attributes returns the store holding the object's fields.
	Attributes() *Store

	// Transformers returns the registry of value transformers.
	Transformers() *Transformers

	// Creators returns the registry of creators used while decoding.
	Creators() *Creators
}

// OnDemandCodeable is an object that exposes its fields only through
// callbacks. It keeps no store of its own.
type OnDemandCodeable interface {
	// WriteAttributes copies the object's fields into s before encoding.
	WriteAttributes(s *Store) error

	// ReadAttributes takes the object's fields from s after decoding.
	ReadAttributes(s *Store) error
}

// Parser turns input text into a generic value tree.
//
// Objects are returned as *Object, arrays as []any, and scalars as nil, bool,
// int, float64 or string. Integers that do not fit an int are float64.
type Parser interface {
	// ContentType returns the MIME type this parser reads (e.g., "application/json").
	ContentType() string

	// Parse decodes data into a value tree.
	Parse(data []byte) (any, error)
}
