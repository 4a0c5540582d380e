package ast

// MapResource returns a copy of r with fn applied to every string leaf.
func MapResource(r *Resource, fn func(string) string) *Resource {
	out := NewResource()
	for _, id := range r.IDs() {
		e, _ := r.Get(id)
		out.Set(MapEntity(e, fn))
	}
	return out
}

// MapEntity returns a copy of e with fn applied to every string leaf.
// Index and placeable expressions are shared with the original.
func MapEntity(e *Entity, fn func(string) string) *Entity {
	if e == nil {
		return nil
	}
	out := &Entity{
		ID:    e.ID,
		Value: MapValue(e.Value, fn),
		Index: e.Index,
	}
	if len(e.Attrs) > 0 {
		out.Attrs = make([]*Entity, len(e.Attrs))
		for i, a := range e.Attrs {
			out.Attrs[i] = MapEntity(a, fn)
		}
	}
	return out
}

// MapValue returns a copy of v with fn applied to every string leaf.
func MapValue(v Value, fn func(string) string) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case Str:
		return Str(fn(string(x)))
	case Pattern:
		out := make(Pattern, len(x))
		for i, el := range x {
			switch el := el.(type) {
			case Str:
				out[i] = Str(fn(string(el)))
			default:
				out[i] = el
			}
		}
		return out
	case *Hash:
		out := &Hash{Default: x.Default, Items: make([]HashItem, len(x.Items))}
		for i, it := range x.Items {
			out.Items[i] = HashItem{Key: it.Key, Value: MapValue(it.Value, fn)}
		}
		return out
	default:
		return v
	}
}
