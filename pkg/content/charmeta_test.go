package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleSet(t *testing.T) {
	s := NewStyleSet("ITALIC", "BOLD")

	assert.True(t, s.Has("BOLD"))
	assert.True(t, s.Has("ITALIC"))
	assert.False(t, s.Has("CODE"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"BOLD", "ITALIC"}, s.List())

	s.Add("CODE")
	assert.True(t, s.Has("CODE"))
	// Adding an existing style is a no-op.
	s.Add("BOLD")
	assert.Equal(t, 3, s.Len())
}

func TestStyleSet_Equal(t *testing.T) {
	assert.True(t, NewStyleSet().Equal(NewStyleSet()))
	assert.True(t, NewStyleSet("A", "B").Equal(NewStyleSet("B", "A")))
	assert.False(t, NewStyleSet("A").Equal(NewStyleSet("A", "B")))
	assert.False(t, NewStyleSet("A", "C").Equal(NewStyleSet("A", "B")))
}

func TestCharacterMetadata(t *testing.T) {
	c := NewCharacterMetadata(NewStyleSet("BOLD"), "e1")

	assert.True(t, c.HasStyle("BOLD"))
	assert.False(t, c.HasStyle("ITALIC"))
	assert.Equal(t, "e1", c.EntityKey())
	assert.True(t, c.HasEntity())

	empty := NewCharacterMetadata(nil, "")
	assert.NotNil(t, empty.Styles())
	assert.Equal(t, 0, empty.Styles().Len())
	assert.False(t, empty.HasEntity())
}

func TestCharacterMetadata_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewCharacterMetadata(NewStyleSet("ITALIC", "BOLD"), "e1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"styles": ["BOLD", "ITALIC"], "entity": "e1"}`, string(data))

	data, err = json.Marshal(NewCharacterMetadata(nil, ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"styles": []}`, string(data))
}
