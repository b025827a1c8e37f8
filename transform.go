package codable

import (
	"fmt"
	"strconv"
	"time"
)

// Func builds a Transformer from a pair of typed conversions. A value of type
// T is encoded to J; a value of type J is decoded back to T. When T and J are
// the same type, encode wins. Null passes through unchanged.
//
// J should be a type the parser produces (int, float64, string, bool) for the
// decode direction to match.
func Func[T, J any](encode func(T) (J, error), decode func(J) (T, error)) Transformer {
	return func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		switch x := v.(type) {
		case T:
			j, err := encode(x)
			if err != nil {
				return nil, err
			}
			return j, nil
		case J:
			t, err := decode(x)
			if err != nil {
				return nil, err
			}
			return t, nil
		}
		var t T
		var j J
		return nil, fmt.Errorf("%w: got %s, want %T or %T", ErrTransformInput, typeName(v), t, j)
	}
}

// Enum maps enumeration values to their JSON representation and back.
//
//	codable.Enum(map[Area]int{Electronics: 0, Music: 1})
func Enum[E, J comparable](table map[E]J) Transformer {
	reverse := make(map[J]E, len(table))
	for e, j := range table {
		reverse[j] = e
	}
	return Func(
		func(e E) (J, error) {
			j, ok := table[e]
			if !ok {
				return j, fmt.Errorf("%w: %v", ErrUnknownEnum, e)
			}
			return j, nil
		},
		func(j J) (E, error) {
			e, ok := reverse[j]
			if !ok {
				return e, fmt.Errorf("%w: %v", ErrUnknownEnum, j)
			}
			return e, nil
		},
	)
}

// IntKeys converts int map keys to decimal strings and back.
// Register it under the map field's Key().
func IntKeys() Transformer {
	return Func(
		func(i int) (string, error) { return strconv.Itoa(i), nil },
		strconv.Atoi,
	)
}

// Time converts time.Time values to strings in layout and back.
func Time(layout string) Transformer {
	return Func(
		func(t time.Time) (string, error) { return t.Format(layout), nil },
		func(s string) (time.Time, error) { return time.Parse(layout, s) },
	)
}
