package content

import (
	"encoding/json"
)

// Mutability describes how an entity reacts to edits of the text it
// annotates.
type Mutability string

const (
	MutabilityMutable   Mutability = "MUTABLE"
	MutabilityImmutable Mutability = "IMMUTABLE"
	MutabilitySegmented Mutability = "SEGMENTED"
)

// Entity is an out-of-line annotation (a link, a mention, an embed)
// referenced from character metadata by its interned key. Entities are
// created once during decoding and never mutated afterwards.
type Entity struct {
	key        string
	entityType string
	mutability Mutability
	data       map[string]any
}

func (e *Entity) Key() string { return e.key }

func (e *Entity) Type() string { return e.entityType }

func (e *Entity) Mutability() Mutability { return e.mutability }

// Data returns the entity's payload, detached from the raw input at
// creation. Treat as read-only.
func (e *Entity) Data() map[string]any { return e.data }

func (e *Entity) MarshalJSON() ([]byte, error) {
	s := struct {
		Key        string         `json:"key"`
		Type       string         `json:"type"`
		Mutability Mutability     `json:"mutability"`
		Data       map[string]any `json:"data"`
	}{
		Key:        e.key,
		Type:       e.entityType,
		Mutability: e.mutability,
		Data:       e.data,
	}
	return json.Marshal(s)
}
