package ast

// Value is an entity value: Str, Pattern or *Hash.
type Value interface {
	isValue()
}

// Element is a single part of a Pattern: Str or Placeable.
type Element interface {
	isElement()
}

// Str is a literal string.
type Str string

func (Str) isValue()   {}
func (Str) isElement() {}

// Placeable is an expression interpolated into a Pattern.
type Placeable struct {
	Expr Expr
}

func (Placeable) isElement() {}

// Pattern is an interpolation sequence of literal and placeable elements.
type Pattern []Element

func (Pattern) isValue() {}

// Placeables returns the number of placeables in the pattern.
func (p Pattern) Placeables() int {
	n := 0
	for _, el := range p {
		if _, ok := el.(Placeable); ok {
			n++
		}
	}
	return n
}

// HashItem is a single branch of a Hash.
type HashItem struct {
	Key   string
	Value Value
}

// Hash is a keyed set of values selected by an entity index.
// Items keep declaration order; Default names the item marked with '*'.
type Hash struct {
	Items   []HashItem
	Default string
}

func (*Hash) isValue() {}

// Get returns the value stored under key.
func (h *Hash) Get(key string) (Value, bool) {
	for _, it := range h.Items {
		if it.Key == key {
			return it.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is one of the hash branches.
func (h *Hash) Has(key string) bool {
	_, ok := h.Get(key)
	return ok
}

// Set adds or replaces the value under key.
func (h *Hash) Set(key string, v Value) {
	for i := range h.Items {
		if h.Items[i].Key == key {
			h.Items[i].Value = v
			return
		}
	}
	h.Items = append(h.Items, HashItem{Key: key, Value: v})
}
