package content

// State is the fully-materialized document model produced by decoding:
// the ordered block collection plus the entity store the decode interned
// its entities into. It is the sole output surface other subsystems
// depend on.
type State struct {
	blocks *BlockMap
	store  *EntityStore
}

func NewState(blocks *BlockMap, store *EntityStore) *State {
	if blocks == nil {
		blocks = NewBlockMap()
	}
	if store == nil {
		store = NewEntityStore()
	}
	return &State{blocks: blocks, store: store}
}

func (s *State) BlockMap() *BlockMap {
	return s.blocks
}

func (s *State) BlockForKey(key string) (*BlockNode, bool) {
	return s.blocks.Get(key)
}

func (s *State) FirstBlock() *BlockNode {
	return s.blocks.First()
}

func (s *State) LastBlock() *BlockNode {
	return s.blocks.Last()
}

func (s *State) Entity(key string) (*Entity, bool) {
	return s.store.Get(key)
}

func (s *State) EntityStore() *EntityStore {
	return s.store
}
