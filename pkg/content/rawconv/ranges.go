package rawconv

import (
	"strconv"
	"unicode/utf8"

	"github.com/draftmark/contentstate/pkg/content"
)

// decodeCharacterList expands a block's style and entity ranges into one
// CharacterMetadata per character of its text. Offsets and lengths are
// interpreted in character (rune) units; ranges reaching outside the text
// are clamped.
func decodeCharacterList(block *RawBlock, entityKeys map[string]string) []content.CharacterMetadata {
	n := utf8.RuneCountInString(block.Text)

	styles := expandStyleRanges(block.InlineStyleRanges, n)
	entities := expandEntityRanges(block.EntityRanges, entityKeys, n)

	list := make([]content.CharacterMetadata, n)
	for i := 0; i < n; i++ {
		list[i] = content.NewCharacterMetadata(styles[i], entities[i])
	}
	return list
}

// expandStyleRanges resolves one style set per position. Overlapping ranges
// are additive: a position carries the union of every range covering it.
func expandStyleRanges(ranges []InlineStyleRange, n int) []content.StyleSet {
	sets := make([]content.StyleSet, n)
	for i := range sets {
		sets[i] = content.StyleSet{}
	}

	for _, r := range ranges {
		start, end := clampRange(r.Offset, r.Length, n)
		for i := start; i < end; i++ {
			sets[i].Add(r.Style)
		}
	}
	return sets
}

// expandEntityRanges resolves one interned entity key per position, or ""
// when uncovered. Ranges whose raw key has no interned mapping are dropped
// entirely; stale references are an input-quality issue, not an error.
// Entity ranges are single-owner, so when raw data overlaps them anyway the
// last range applied to a position wins.
func expandEntityRanges(ranges []EntityRange, entityKeys map[string]string, n int) []string {
	keys := make([]string, n)

	for _, r := range ranges {
		interned, ok := entityKeys[strconv.Itoa(r.Key)]
		if !ok {
			continue
		}
		start, end := clampRange(r.Offset, r.Length, n)
		for i := start; i < end; i++ {
			keys[i] = interned
		}
	}
	return keys
}

func clampRange(offset, length, n int) (start, end int) {
	start = offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}

	end = offset + length
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}
