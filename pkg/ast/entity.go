package ast

// Entity is a single named translation unit.
// Attributes are entities too: they carry their own value and index but never
// nested attributes.
type Entity struct {
	ID    string
	Value Value
	Attrs []*Entity
	Index []Expr
}

// NewString returns a bare string entity.
func NewString(id, s string) *Entity {
	return &Entity{ID: id, Value: Str(s)}
}

// IsSimple reports whether the entity is a bare string without attributes
// or index.
func (e *Entity) IsSimple() bool {
	if e == nil || len(e.Attrs) > 0 || len(e.Index) > 0 {
		return false
	}
	_, ok := e.Value.(Str)
	return ok
}

// Attr returns the attribute named name.
func (e *Entity) Attr(name string) (*Entity, bool) {
	for _, a := range e.Attrs {
		if a.ID == name {
			return a, true
		}
	}
	return nil, false
}

// SetAttr adds or replaces an attribute, keeping insertion order.
func (e *Entity) SetAttr(a *Entity) {
	for i, cur := range e.Attrs {
		if cur.ID == a.ID {
			e.Attrs[i] = a
			return
		}
	}
	e.Attrs = append(e.Attrs, a)
}

// Resource is an ordered id -> entity mapping produced by a parser.
type Resource struct {
	ids      []string
	entities map[string]*Entity
}

// NewResource returns an empty resource.
func NewResource() *Resource {
	return &Resource{entities: make(map[string]*Entity)}
}

// Get returns the entity with the given id.
func (r *Resource) Get(id string) (*Entity, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.entities[id]
	return e, ok
}

// Has reports whether id is defined.
func (r *Resource) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Set stores e under e.ID. Existing ids keep their position.
func (r *Resource) Set(e *Entity) {
	if _, ok := r.entities[e.ID]; !ok {
		r.ids = append(r.ids, e.ID)
	}
	r.entities[e.ID] = e
}

// IDs returns entity ids in declaration order.
func (r *Resource) IDs() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of entities.
func (r *Resource) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ids)
}
