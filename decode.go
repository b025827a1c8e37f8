package codable

const opDecode = "decode"

// Decode populates target's attribute store from tree, which must be the
// *Object a Parser returned for a JSON object.
//
// Attributes are assigned as they are decoded. If decoding fails part way,
// attributes decoded before the failure stay assigned.
func Decode(tree any, target Codeable) error {
	obj, ok := tree.(*Object)
	if !ok || obj == nil {
		return newTypeError(ErrUnsupportedValueType, Key{}, tree)
	}
	return decodeAttributes(obj, target)
}

// DecodeSequence decodes a JSON array of objects, calling create once per
// element to obtain the Codeable it is decoded into.
func DecodeSequence(tree any, create Creator) ([]Codeable, error) {
	arr, ok := tree.([]any)
	if !ok {
		return nil, newTypeError(ErrUnsupportedValueType, Key{}, tree)
	}
	out := make([]Codeable, 0, len(arr))
	for _, node := range arr {
		obj, ok := node.(*Object)
		if !ok || obj == nil {
			return out, newTypeError(ErrUnsupportedValueType, Key{}, node)
		}
		created, err := create(obj)
		if err != nil {
			return out, newTransformError(ErrCreate, opDecode, Key{}, err)
		}
		c, ok := created.(Codeable)
		if !ok || isNilPointer(c) {
			return out, newTypeError(ErrUnsupportedCreatorResult, Key{}, created)
		}
		if err := decodeAttributes(obj, c); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}

// DecodeOnDemand decodes tree into a transient record built from the given
// registries, then hands it to target. Either registry may be nil.
func DecodeOnDemand(tree any, target OnDemandCodeable, transformers *Transformers, creators *Creators) error {
	obj, ok := tree.(*Object)
	if !ok || obj == nil {
		return newTypeError(ErrUnsupportedValueType, Key{}, tree)
	}
	return decodeOnDemand(obj, target, transformers, creators, Key{})
}

func decodeAttributes(obj *Object, target Codeable) error {
	attrs := target.Attributes()
	for name, node := range obj.All() {
		v, err := decodeValue(target, Field(name), node)
		if err != nil {
			return err
		}
		attrs.Set(name, v)
	}
	return nil
}

func decodeValue(parent Codeable, key Key, node any) (any, error) {
	if tr, ok := parent.Transformers().Lookup(key); ok {
		v, err := tr(node)
		if err != nil {
			return nil, newTransformError(ErrTransform, opDecode, key, err)
		}
		return v, nil
	}

	switch n := node.(type) {
	case nil, bool, int, int64, float64, string:
		return node, nil
	case []any:
		return decodeArray(parent, key, n)
	case *Object:
		if n == nil {
			return nil, nil
		}
		return decodeObject(parent, key, n)
	}
	return nil, newTypeError(ErrUnsupportedValueType, key, node)
}

func instantiate(parent Codeable, key Key, obj *Object) (any, error) {
	cr, ok := parent.Creators().Lookup(key)
	if !ok {
		return nil, newHookError(ErrMissingCreator, key, nil)
	}
	created, err := cr(obj)
	if err != nil {
		return nil, newTransformError(ErrCreate, opDecode, key, err)
	}
	if isNilPointer(created) {
		return nil, newTypeError(ErrUnsupportedCreatorResult, key, created)
	}
	return created, nil
}

func decodeArray(parent Codeable, key Key, arr []any) (any, error) {
	created, err := instantiate(parent, key, nil)
	if err != nil {
		return nil, err
	}

	elemKey := key.Value()
	switch seq := created.(type) {
	case Sequence:
		for _, node := range arr {
			v, err := decodeValue(parent, elemKey, node)
			if err != nil {
				return nil, err
			}
			seq.Append(v)
		}
		return seq, nil
	case []any:
		for _, node := range arr {
			v, err := decodeValue(parent, elemKey, node)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	}
	return nil, newTypeError(ErrUnsupportedCreatorResult, key, created)
}

func decodeObject(parent Codeable, key Key, obj *Object) (any, error) {
	created, err := instantiate(parent, key, obj)
	if err != nil {
		return nil, err
	}

	switch c := created.(type) {
	case Codeable:
		if err := decodeAttributes(obj, c); err != nil {
			return nil, err
		}
		return c, nil
	case OnDemandCodeable:
		if err := decodeOnDemand(obj, c, parent.Transformers(), parent.Creators(), key); err != nil {
			return nil, err
		}
		return c, nil
	case Mapping, map[string]any, map[any]any:
		if err := decodeEntries(parent, key, obj, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, newTypeError(ErrUnsupportedCreatorResult, key, created)
}

// decodeEntries fills container from obj. With a transformer at key.Key()
// each member name is converted to the real key, and values resolve under
// the member name itself; otherwise values resolve under key.Value().
// The member name is the transformed key the encoder resolved values under.
func decodeEntries(parent Codeable, key Key, obj *Object, container any) error {
	keyKey := key.Key()
	keyTr, transformed := parent.Transformers().Lookup(keyKey)

	for name, node := range obj.All() {
		realKey := any(name)
		valueKey := key.Value()
		if transformed {
			k, err := keyTr(name)
			if err != nil {
				return newTransformError(ErrTransform, opDecode, keyKey, err)
			}
			realKey = k
			valueKey = Field(name).Value()
		}

		v, err := decodeValue(parent, valueKey, node)
		if err != nil {
			return err
		}

		switch m := container.(type) {
		case Mapping:
			m.Put(realKey, v)
		case map[any]any:
			m[realKey] = v
		case map[string]any:
			s, ok := realKey.(string)
			if !ok {
				return newTypeError(ErrUnsupportedValueType, keyKey, realKey)
			}
			m[s] = v
		}
	}
	return nil
}

func decodeOnDemand(obj *Object, target OnDemandCodeable, transformers *Transformers, creators *Creators, key Key) error {
	t := newTransient(transformers, creators)
	if err := decodeAttributes(obj, t); err != nil {
		return err
	}
	if err := target.ReadAttributes(t.Attributes()); err != nil {
		return newTransformError(ErrAttributes, opDecode, key, err)
	}
	return nil
}
