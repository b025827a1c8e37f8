package codable

// Transformer converts a value between its application type and a JSON
// representable one. The same function serves both directions; it inspects
// the runtime type of v to decide which conversion to apply.
type Transformer func(v any) (any, error)

// Creator instantiates the container or object a JSON array or object is
// decoded into. obj is nil for arrays; for objects it is the raw JSON object,
// so a creator may branch on a discriminant member.
//
// A creator returns an empty Sequence (or []any) for arrays, and a Codeable,
// an OnDemandCodeable, or an empty Mapping (or map[string]any, map[any]any)
// for objects.
type Creator func(obj *Object) (any, error)

// hooks is a registry of functions keyed by resolution key.
type hooks[F any] struct {
	m map[Key]F
}

func (h *hooks[F]) set(k Key, fn F) {
	if h.m == nil {
		h.m = make(map[Key]F)
	}
	h.m[k] = fn
}

func (h *hooks[F]) lookup(k Key) (F, bool) {
	fn, ok := h.m[k]
	return fn, ok
}

// extend returns a copy of h with local's entries layered on top.
func (h *hooks[F]) extend(local *hooks[F]) hooks[F] {
	out := hooks[F]{m: make(map[Key]F, len(h.m))}
	for k, fn := range h.m {
		out.m[k] = fn
	}
	if local != nil {
		for k, fn := range local.m {
			out.m[k] = fn
		}
	}
	return out
}

// Transformers maps resolution keys to transformers.
// The zero value is an empty registry ready for use.
type Transformers struct {
	h hooks[Transformer]
}

// NewTransformers returns an empty registry.
func NewTransformers() *Transformers {
	return &Transformers{}
}

// Set registers fn under k and returns the registry for chaining.
func (t *Transformers) Set(k Key, fn Transformer) *Transformers {
	t.h.set(k, fn)
	return t
}

// SetString registers fn under the dotted key s, e.g. "news-by-year.key".
func (t *Transformers) SetString(s string, fn Transformer) *Transformers {
	return t.Set(ParseKey(s), fn)
}

// Lookup returns the transformer registered under k.
func (t *Transformers) Lookup(k Key) (Transformer, bool) {
	if t == nil {
		return nil, false
	}
	return t.h.lookup(k)
}

// Len returns the number of registered transformers.
func (t *Transformers) Len() int {
	if t == nil {
		return 0
	}
	return len(t.h.m)
}

// Extend returns a new registry holding t's entries overridden by local's.
// Neither t nor local is modified; local may be nil.
func (t *Transformers) Extend(local *Transformers) *Transformers {
	var base hooks[Transformer]
	if t != nil {
		base = t.h
	}
	var over *hooks[Transformer]
	if local != nil {
		over = &local.h
	}
	return &Transformers{h: base.extend(over)}
}

// Creators maps resolution keys to creators.
// The zero value is an empty registry ready for use.
type Creators struct {
	h hooks[Creator]
}

// NewCreators returns an empty registry.
func NewCreators() *Creators {
	return &Creators{}
}

// Set registers fn under k and returns the registry for chaining.
func (c *Creators) Set(k Key, fn Creator) *Creators {
	c.h.set(k, fn)
	return c
}

// SetString registers fn under the dotted key s, e.g. "articles".
func (c *Creators) SetString(s string, fn Creator) *Creators {
	return c.Set(ParseKey(s), fn)
}

// Lookup returns the creator registered under k.
func (c *Creators) Lookup(k Key) (Creator, bool) {
	if c == nil {
		return nil, false
	}
	return c.h.lookup(k)
}

// Len returns the number of registered creators.
func (c *Creators) Len() int {
	if c == nil {
		return 0
	}
	return len(c.h.m)
}

// Extend returns a new registry holding c's entries overridden by local's.
// Neither c nor local is modified; local may be nil.
func (c *Creators) Extend(local *Creators) *Creators {
	var base hooks[Creator]
	if c != nil {
		base = c.h
	}
	var over *hooks[Creator]
	if local != nil {
		over = &local.h
	}
	return &Creators{h: base.extend(over)}
}
