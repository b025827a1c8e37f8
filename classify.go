package codable

import "reflect"

// Kind is the classification of a runtime value.
type Kind uint8

const (
	KindNull Kind = iota
	KindPrimitive
	KindSequence
	KindStringKeyedMapping
	KindOtherKeyedMapping
	KindCodeable
	KindOnDemand
	KindOpaque
)

var kindNames = [...]string{
	KindNull:               "null",
	KindPrimitive:          "primitive",
	KindSequence:           "sequence",
	KindStringKeyedMapping: "string-keyed mapping",
	KindOtherKeyedMapping:  "other-keyed mapping",
	KindCodeable:           "codeable",
	KindOnDemand:           "on-demand codeable",
	KindOpaque:             "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Classify reports which kind of value v is.
//
// Only the builtin scalar types count as primitive: a named type such as
// `type Area int` is opaque and must be resolved by a transformer.
func Classify(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindPrimitive
	case []any:
		return KindSequence
	case map[string]any:
		return KindStringKeyedMapping
	case *Object:
		if x == nil {
			return KindNull
		}
		return KindStringKeyedMapping
	case map[any]any:
		return classifyKeys(func(yield func(any) bool) {
			for k := range x {
				if !yield(k) {
					return
				}
			}
		})
	}

	if isNilPointer(v) {
		return KindNull
	}

	switch x := v.(type) {
	case Codeable:
		return KindCodeable
	case OnDemandCodeable:
		return KindOnDemand
	case Sequence:
		return KindSequence
	case Mapping:
		return classifyKeys(func(yield func(any) bool) {
			for _, k := range x.Keys() {
				if !yield(k) {
					return
				}
			}
		})
	}
	return KindOpaque
}

// classifyKeys treats a mapping as string-keyed only if every key is a string.
// An empty mapping counts as string-keyed.
func classifyKeys(keys func(yield func(any) bool)) Kind {
	kind := KindStringKeyedMapping
	keys(func(k any) bool {
		if _, ok := k.(string); !ok {
			kind = KindOtherKeyedMapping
			return false
		}
		return true
	})
	return kind
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return reflect.TypeOf(v).String()
}
