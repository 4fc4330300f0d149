package data

import (
	"bytes"
	"encoding/json"
)

// Grouped collects items under string keys while remembering first-seen key
// order. Go maps do not keep insertion order, but grouped API payloads must:
// the order categories first appear in the sorted collection is the order
// clients render them in. MarshalJSON emits a JSON object in that order.
type Grouped[T any] struct {
	order  []string
	groups map[string][]T
}

// NewGrouped returns an empty grouping
func NewGrouped[T any]() *Grouped[T] {
	return &Grouped[T]{groups: map[string][]T{}}
}

// Add appends an item to the group for key, creating the group on first use
func (g *Grouped[T]) Add(key string, item T) {
	if _, ok := g.groups[key]; !ok {
		g.order = append(g.order, key)
	}
	g.groups[key] = append(g.groups[key], item)
}

// Keys returns the group keys in first-seen order
func (g *Grouped[T]) Keys() []string {
	return g.order
}

// Get returns the members of one group
func (g *Grouped[T]) Get(key string) []T {
	return g.groups[key]
}

// Len returns the number of groups
func (g *Grouped[T]) Len() int {
	return len(g.order)
}

// MarshalJSON writes the groups as a JSON object in first-seen key order
func (g *Grouped[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(g.groups[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
