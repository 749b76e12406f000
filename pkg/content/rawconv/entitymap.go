package rawconv

import (
	"sort"

	"github.com/draftmark/contentstate/pkg/content"
)

// decodeEntityMap interns every raw entity into store and returns the
// mapping from raw key to interned key. No entry is ever skipped; a missing
// data payload defaults to an empty map inside the store.
//
// Raw keys are visited in sorted order so that interned keys are assigned
// deterministically for a given generator.
func decodeEntityMap(rawMap map[string]RawEntity, store *content.EntityStore) map[string]string {
	rawKeys := make([]string, 0, len(rawMap))
	for k := range rawMap {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)

	interned := make(map[string]string, len(rawMap))
	for _, rawKey := range rawKeys {
		raw := rawMap[rawKey]
		interned[rawKey] = store.Create(raw.Type, raw.Mutability, raw.Data)
	}
	return interned
}
