package content

import (
	"github.com/elliotchance/orderedmap"
)

// BlockMap is the ordered collection of decoded blocks, keyed by block key.
// Iteration order is insertion order, which decoding guarantees to be the
// document's reading order (input order for flat documents, preorder
// depth-first for trees).
type BlockMap struct {
	inner *orderedmap.OrderedMap
}

func NewBlockMap() *BlockMap {
	return &BlockMap{inner: orderedmap.NewOrderedMap()}
}

// Set inserts block under its key, or replaces the value if the key is
// already present (the position in the order is kept in that case).
// Input-supplied keys are assumed unique; a duplicate silently replaces
// the earlier block.
func (m *BlockMap) Set(block *BlockNode) {
	m.inner.Set(block.Key(), block)
}

func (m *BlockMap) Get(key string) (*BlockNode, bool) {
	v, ok := m.inner.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*BlockNode), true
}

func (m *BlockMap) Has(key string) bool {
	_, ok := m.inner.Get(key)
	return ok
}

func (m *BlockMap) Len() int {
	return m.inner.Len()
}

// Keys returns the block keys in order.
func (m *BlockMap) Keys() []string {
	keys := make([]string, 0, m.inner.Len())
	for _, k := range m.inner.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Blocks returns the blocks in order.
func (m *BlockMap) Blocks() []*BlockNode {
	blocks := make([]*BlockNode, 0, m.inner.Len())
	for el := m.inner.Front(); el != nil; el = el.Next() {
		blocks = append(blocks, el.Value.(*BlockNode))
	}
	return blocks
}

func (m *BlockMap) First() *BlockNode {
	el := m.inner.Front()
	if el == nil {
		return nil
	}
	return el.Value.(*BlockNode)
}

func (m *BlockMap) Last() *BlockNode {
	el := m.inner.Back()
	if el == nil {
		return nil
	}
	return el.Value.(*BlockNode)
}
