package codable

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"
)

const opEncode = "encode"

// Encode renders v's attribute store as a JSON object.
func Encode(v Codeable) ([]byte, error) {
	var e encoder
	if err := e.codeable(v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// EncodeSequence renders vs as a JSON array of objects.
func EncodeSequence(vs []Codeable) ([]byte, error) {
	var e encoder
	e.buf.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		if err := e.codeable(v); err != nil {
			return nil, err
		}
	}
	e.buf.WriteByte(']')
	return e.buf.Bytes(), nil
}

// EncodeOnDemand renders an on-demand object. transformers may be nil.
func EncodeOnDemand(v OnDemandCodeable, transformers *Transformers) ([]byte, error) {
	var e encoder
	if err := e.onDemand(transformers, nil, Key{}, v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) codeable(c Codeable) error {
	if c == nil || isNilPointer(c) {
		e.buf.WriteString("null")
		return nil
	}
	return e.store(c, c.Attributes())
}

func (e *encoder) store(parent Codeable, s *Store) error {
	e.buf.WriteByte('{')
	i := 0
	for k, v := range s.All() {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		i++
		e.member(k)
		if err := e.value(parent, Field(k), v); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) member(name string) {
	e.str(name)
	e.buf.WriteString(": ")
}

func (e *encoder) value(parent Codeable, key Key, v any) error {
	switch Classify(v) {
	case KindNull:
		e.buf.WriteString("null")
		return nil
	case KindPrimitive:
		return e.primitive(key, v)
	case KindSequence:
		return e.sequence(parent, key, v)
	case KindStringKeyedMapping:
		return e.stringKeyed(parent, key, v)
	case KindOtherKeyedMapping:
		return e.otherKeyed(parent, key, v)
	case KindCodeable:
		c := v.(Codeable)
		return e.store(c, c.Attributes())
	case KindOnDemand:
		return e.onDemand(parent.Transformers(), parent.Creators(), key, v.(OnDemandCodeable))
	}

	tr, ok := parent.Transformers().Lookup(key)
	if !ok {
		return newHookError(ErrMissingTransformer, key, v)
	}
	out, err := tr(v)
	if err != nil {
		return newTransformError(ErrTransform, opEncode, key, err)
	}
	if Classify(out) == KindOpaque && typeName(out) == typeName(v) {
		return newTypeError(ErrUnsupportedValueType, key, v)
	}
	return e.value(parent, key, out)
}

func (e *encoder) primitive(key Key, v any) error {
	switch x := v.(type) {
	case bool:
		e.buf.WriteString(strconv.FormatBool(x))
	case string:
		e.str(x)
	case int:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int8:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int16:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int32:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))
	case int64:
		e.buf.WriteString(strconv.FormatInt(x, 10))
	case uint:
		e.buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		e.buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint16:
		e.buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint32:
		e.buf.WriteString(strconv.FormatUint(uint64(x), 10))
	case uint64:
		e.buf.WriteString(strconv.FormatUint(x, 10))
	case float32:
		return e.float(key, v, float64(x), 32)
	case float64:
		return e.float(key, v, x, 64)
	}
	return nil
}

// float writes f in shortest form. Integral values keep a ".0" so they
// parse back as floats rather than integers.
func (e *encoder) float(key Key, v any, f float64, bits int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return newTypeError(ErrUnsupportedValueType, key, v)
	}
	b := strconv.AppendFloat(nil, f, 'g', -1, bits)
	if !bytes.ContainsAny(b, ".eE") {
		b = append(b, '.', '0')
	}
	e.buf.Write(b)
	return nil
}

func (e *encoder) sequence(parent Codeable, key Key, v any) error {
	elemKey := key.Value()
	e.buf.WriteByte('[')
	switch x := v.(type) {
	case []any:
		for i, elem := range x {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			if err := e.value(parent, elemKey, elem); err != nil {
				return err
			}
		}
	case Sequence:
		for i := range x.Len() {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			if err := e.value(parent, elemKey, x.At(i)); err != nil {
				return err
			}
		}
	}
	e.buf.WriteByte(']')
	return nil
}

// entry is one member of a mapping about to be written.
type entry struct {
	name     string
	valueKey Key
	value    any
}

func (e *encoder) stringKeyed(parent Codeable, key Key, v any) error {
	valueKey := key.Value()
	var entries []entry
	switch x := v.(type) {
	case map[string]any:
		for _, k := range sortedKeys(x) {
			entries = append(entries, entry{name: k, valueKey: valueKey, value: x[k]})
		}
	case map[any]any:
		for k, val := range x {
			entries = append(entries, entry{name: k.(string), valueKey: valueKey, value: val})
		}
		sortEntries(entries)
	case *Object:
		for k, val := range x.All() {
			entries = append(entries, entry{name: k, valueKey: valueKey, value: val})
		}
	case Mapping:
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			entries = append(entries, entry{name: k.(string), valueKey: valueKey, value: val})
		}
	}
	return e.entries(parent, entries)
}

func (e *encoder) otherKeyed(parent Codeable, key Key, v any) error {
	keyKey := key.Key()
	tr, ok := parent.Transformers().Lookup(keyKey)
	if !ok {
		return newHookError(ErrMissingTransformer, keyKey, v)
	}

	// Two keys must not collapse onto one member name.
	seen := make(map[string]struct{})
	name := func(k any) (string, error) {
		out, err := tr(k)
		if err != nil {
			return "", newTransformError(ErrTransform, opEncode, keyKey, err)
		}
		s, ok := out.(string)
		if !ok {
			return "", newTypeError(ErrUnsupportedValueType, keyKey, out)
		}
		if _, dup := seen[s]; dup {
			return "", newTransformError(ErrTransform, opEncode, keyKey,
				fmt.Errorf("%w: duplicate member %q", ErrUnsupportedValueType, s))
		}
		seen[s] = struct{}{}
		return s, nil
	}

	var entries []entry
	switch x := v.(type) {
	case map[any]any:
		for k, val := range x {
			s, err := name(k)
			if err != nil {
				return err
			}
			entries = append(entries, entry{name: s, valueKey: Field(s).Value(), value: val})
		}
		sortEntries(entries)
	case Mapping:
		for _, k := range x.Keys() {
			s, err := name(k)
			if err != nil {
				return err
			}
			val, _ := x.Get(k)
			entries = append(entries, entry{name: s, valueKey: Field(s).Value(), value: val})
		}
	}
	return e.entries(parent, entries)
}

func (e *encoder) entries(parent Codeable, entries []entry) error {
	e.buf.WriteByte('{')
	for i, en := range entries {
		if i > 0 {
			e.buf.WriteString(", ")
		}
		e.member(en.name)
		if err := e.value(parent, en.valueKey, en.value); err != nil {
			return err
		}
	}
	e.buf.WriteByte('}')
	return nil
}

// onDemand materializes v into a transient record that inherits the
// enclosing registries, then encodes that record.
func (e *encoder) onDemand(transformers *Transformers, creators *Creators, key Key, v OnDemandCodeable) error {
	t := newTransient(transformers, creators)
	if err := v.WriteAttributes(t.Attributes()); err != nil {
		return newTransformError(ErrAttributes, opEncode, key, err)
	}
	return e.store(t, t.Attributes())
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func sortEntries(entries []entry) {
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.name < b.name:
			return -1
		case a.name > b.name:
			return 1
		}
		return 0
	})
}

const hexDigits = "0123456789abcdef"

// str writes s as a JSON string literal.
func (e *encoder) str(s string) {
	e.buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			e.buf.WriteString(s[start:i])
			switch c {
			case '"', '\\':
				e.buf.WriteByte('\\')
				e.buf.WriteByte(c)
			case '\n':
				e.buf.WriteString(`\n`)
			case '\r':
				e.buf.WriteString(`\r`)
			case '\t':
				e.buf.WriteString(`\t`)
			default:
				e.buf.WriteString(`\u00`)
				e.buf.WriteByte(hexDigits[c>>4])
				e.buf.WriteByte(hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			e.buf.WriteString(s[start:i])
			e.buf.WriteString(`\ufffd`)
			i += size
			start = i
			continue
		}
		i += size
	}
	e.buf.WriteString(s[start:])
	e.buf.WriteByte('"')
}
