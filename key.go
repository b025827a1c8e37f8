package codable

import "strings"

const (
	keySuffix   = ".key"
	valueSuffix = ".value"
)

// Key is a resolution key: the name hooks are registered and looked up under.
//
// Field is the attribute (or map entry) name. Path is the chain of ".key" and
// ".value" suffixes reached below it. Keeping the two apart means a field
// literally named "a.value" is a different key from Field("a").Value().
type Key struct {
	Field string
	Path  string
}

// Field returns the key of a bare attribute name.
func Field(name string) Key {
	return Key{Field: name}
}

// ParseKey splits trailing ".key" and ".value" suffixes off s.
//
//	ParseKey("news-by-year.key")   == Field("news-by-year").Key()
//	ParseKey("articles.value")     == Field("articles").Value()
func ParseKey(s string) Key {
	field := s
	for {
		switch {
		case strings.HasSuffix(field, keySuffix) && len(field) > len(keySuffix):
			field = strings.TrimSuffix(field, keySuffix)
		case strings.HasSuffix(field, valueSuffix) && len(field) > len(valueSuffix):
			field = strings.TrimSuffix(field, valueSuffix)
		default:
			return Key{Field: field, Path: s[len(field):]}
		}
	}
}

// Key returns the key used for a mapping's keys.
func (k Key) Key() Key {
	return Key{Field: k.Field, Path: k.Path + keySuffix}
}

// Value returns the key used for sequence elements and mapping values.
func (k Key) Value() Key {
	return Key{Field: k.Field, Path: k.Path + valueSuffix}
}

// String renders the key in its dotted form.
func (k Key) String() string {
	return k.Field + k.Path
}
