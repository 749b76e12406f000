package rawconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyAssigner(t *testing.T) {
	assigner := newKeyAssigner(seqKeys("k"))

	t.Run("PassesExistingKeyThrough", func(t *testing.T) {
		block := &RawBlock{Key: "existing"}
		assert.Equal(t, "existing", assigner.Get(block))
	})

	t.Run("GeneratedKeyIsStablePerBlock", func(t *testing.T) {
		block := &RawBlock{}
		key := assigner.Get(block)
		assert.Equal(t, "k1", key)
		assert.Equal(t, key, assigner.Get(block))
	})

	t.Run("DistinctBlocksGetDistinctKeys", func(t *testing.T) {
		first := assigner.Get(&RawBlock{})
		second := assigner.Get(&RawBlock{})
		assert.NotEqual(t, first, second)
	})
}
