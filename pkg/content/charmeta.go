package content

import (
	"encoding/json"
	"sort"
)

// StyleSet is a set of inline style tags, e.g. "BOLD" or "ITALIC".
type StyleSet map[string]struct{}

func NewStyleSet(styles ...string) StyleSet {
	s := make(StyleSet, len(styles))
	for _, style := range styles {
		s[style] = struct{}{}
	}
	return s
}

func (s StyleSet) Has(style string) bool {
	_, ok := s[style]
	return ok
}

func (s StyleSet) Add(style string) {
	s[style] = struct{}{}
}

func (s StyleSet) Len() int {
	return len(s)
}

// List returns the styles sorted lexicographically.
func (s StyleSet) List() []string {
	result := make([]string, 0, len(s))
	for style := range s {
		result = append(result, style)
	}
	sort.Strings(result)
	return result
}

func (s StyleSet) Equal(other StyleSet) bool {
	if len(s) != len(other) {
		return false
	}
	for style := range s {
		if !other.Has(style) {
			return false
		}
	}
	return true
}

// CharacterMetadata holds the fully-resolved annotations of a single
// character position: the union of inline styles covering it and, at most,
// one entity key.
type CharacterMetadata struct {
	styles    StyleSet
	entityKey string
}

func NewCharacterMetadata(styles StyleSet, entityKey string) CharacterMetadata {
	if styles == nil {
		styles = StyleSet{}
	}
	return CharacterMetadata{styles: styles, entityKey: entityKey}
}

func (c CharacterMetadata) Styles() StyleSet { return c.styles }

func (c CharacterMetadata) HasStyle(style string) bool { return c.styles.Has(style) }

// EntityKey returns the interned key of the entity covering this position,
// or the empty string when uncovered.
func (c CharacterMetadata) EntityKey() string { return c.entityKey }

func (c CharacterMetadata) HasEntity() bool { return c.entityKey != "" }

func (c CharacterMetadata) MarshalJSON() ([]byte, error) {
	s := struct {
		Styles    []string `json:"styles"`
		EntityKey string   `json:"entity,omitempty"`
	}{
		Styles:    c.styles.List(),
		EntityKey: c.entityKey,
	}
	return json.Marshal(s)
}
