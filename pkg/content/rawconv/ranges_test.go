package rawconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftmark/contentstate/pkg/content"
)

func seqKeys(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func TestDecodeCharacterList_StyleUnion(t *testing.T) {
	block := &RawBlock{
		Text: "0123456789",
		InlineStyleRanges: []InlineStyleRange{
			{Offset: 0, Length: 5, Style: "BOLD"},
			{Offset: 2, Length: 5, Style: "ITALIC"},
		},
	}

	list := decodeCharacterList(block, nil)
	require.Len(t, list, 10)

	for i := 0; i <= 1; i++ {
		assert.Equal(t, []string{"BOLD"}, list[i].Styles().List())
	}
	for i := 2; i <= 4; i++ {
		assert.Equal(t, []string{"BOLD", "ITALIC"}, list[i].Styles().List())
	}
	for i := 5; i <= 6; i++ {
		assert.Equal(t, []string{"ITALIC"}, list[i].Styles().List())
	}
	for i := 7; i <= 9; i++ {
		assert.Empty(t, list[i].Styles().List())
	}
}

func TestDecodeCharacterList_EntityRoundTrip(t *testing.T) {
	store := content.NewEntityStoreWithGenerator(seqKeys("e"))
	entityKeys := decodeEntityMap(map[string]RawEntity{
		"0": {Type: "LINK", Mutability: content.MutabilityMutable},
	}, store)

	block := &RawBlock{
		Text:         "hello world",
		EntityRanges: []EntityRange{{Offset: 2, Length: 3, Key: 0}},
	}

	list := decodeCharacterList(block, entityKeys)
	require.Len(t, list, len("hello world"))

	for i, c := range list {
		if i >= 2 && i <= 4 {
			assert.Equal(t, "e1", c.EntityKey(), "position %d", i)
		} else {
			assert.False(t, c.HasEntity(), "position %d", i)
		}
	}
}

func TestDecodeCharacterList_UnknownEntityDropped(t *testing.T) {
	block := &RawBlock{
		Text:         "hello world",
		EntityRanges: []EntityRange{{Offset: 2, Length: 3, Key: 7}},
	}

	list := decodeCharacterList(block, map[string]string{"0": "e1"})
	require.Len(t, list, len("hello world"))

	for i, c := range list {
		assert.False(t, c.HasEntity(), "position %d", i)
	}
}

func TestDecodeCharacterList_OverlappingEntityRangesLastWins(t *testing.T) {
	entityKeys := map[string]string{"0": "e1", "1": "e2"}

	block := &RawBlock{
		Text: "0123456789",
		EntityRanges: []EntityRange{
			{Offset: 0, Length: 6, Key: 0},
			{Offset: 4, Length: 3, Key: 1},
		},
	}

	list := decodeCharacterList(block, entityKeys)

	assert.Equal(t, "e1", list[3].EntityKey())
	assert.Equal(t, "e2", list[4].EntityKey())
	assert.Equal(t, "e2", list[6].EntityKey())
	assert.False(t, list[7].HasEntity())
}

func TestDecodeCharacterList_NoRanges(t *testing.T) {
	list := decodeCharacterList(&RawBlock{Text: "abc"}, nil)
	require.Len(t, list, 3)

	for _, c := range list {
		assert.Equal(t, 0, c.Styles().Len())
		assert.False(t, c.HasEntity())
	}
}

func TestDecodeCharacterList_EmptyText(t *testing.T) {
	list := decodeCharacterList(&RawBlock{
		Text:              "",
		InlineStyleRanges: []InlineStyleRange{{Offset: 0, Length: 3, Style: "BOLD"}},
	}, nil)
	assert.Len(t, list, 0)
}

func TestDecodeCharacterList_RuneUnits(t *testing.T) {
	// 5 characters, more than 5 bytes.
	block := &RawBlock{
		Text:              "żółć!",
		InlineStyleRanges: []InlineStyleRange{{Offset: 1, Length: 2, Style: "BOLD"}},
	}

	list := decodeCharacterList(block, nil)
	require.Len(t, list, 5)

	assert.False(t, list[0].HasStyle("BOLD"))
	assert.True(t, list[1].HasStyle("BOLD"))
	assert.True(t, list[2].HasStyle("BOLD"))
	assert.False(t, list[3].HasStyle("BOLD"))
}

func TestDecodeCharacterList_RangesClamped(t *testing.T) {
	block := &RawBlock{
		Text: "abc",
		InlineStyleRanges: []InlineStyleRange{
			{Offset: -2, Length: 3, Style: "BOLD"},
			{Offset: 2, Length: 100, Style: "ITALIC"},
			{Offset: 50, Length: 5, Style: "CODE"},
			{Offset: 1, Length: -1, Style: "STRIKETHROUGH"},
		},
		EntityRanges: []EntityRange{{Offset: 2, Length: 100, Key: 0}},
	}

	list := decodeCharacterList(block, map[string]string{"0": "e1"})
	require.Len(t, list, 3)

	assert.True(t, list[0].HasStyle("BOLD"))
	assert.True(t, list[2].HasStyle("ITALIC"))
	assert.Equal(t, "e1", list[2].EntityKey())
	for _, c := range list {
		assert.False(t, c.HasStyle("CODE"))
		assert.False(t, c.HasStyle("STRIKETHROUGH"))
	}
}
