package content

import (
	"encoding/json"
)

// DefaultBlockType is assigned to blocks whose raw record omits a type.
const DefaultBlockType = "unstyled"

// BlockNode is one decoded block of a document. Flat documents leave all
// structural links empty; tree documents carry the full set of
// parent/children/sibling keys. Links are plain keys into the owning
// BlockMap rather than pointers, so the map is the sole owner of the nodes.
//
// Nodes are immutable outputs of decoding.
type BlockNode struct {
	key           string
	blockType     string
	depth         int
	text          string
	data          map[string]any
	characterList []CharacterMetadata

	parentKey      string
	childKeys      []string
	prevSiblingKey string
	nextSiblingKey string
}

func (b *BlockNode) Key() string { return b.key }

func (b *BlockNode) Type() string { return b.blockType }

func (b *BlockNode) Depth() int { return b.depth }

func (b *BlockNode) Text() string { return b.text }

// Data returns the block's payload, detached from the raw input at
// construction. Treat as read-only.
func (b *BlockNode) Data() map[string]any { return b.data }

// CharacterList returns one CharacterMetadata per character of Text,
// aligned positionally. Its length always equals the character count
// of Text.
func (b *BlockNode) CharacterList() []CharacterMetadata { return b.characterList }

func (b *BlockNode) Len() int { return len(b.characterList) }

// ParentKey returns the parent block's key, or "" for document roots and
// for blocks of flat documents.
func (b *BlockNode) ParentKey() string { return b.parentKey }

// ChildKeys returns the keys of the block's children in original order.
func (b *BlockNode) ChildKeys() []string { return b.childKeys }

// PrevSiblingKey returns the key of the previous sibling, or "" when the
// block is first among its siblings.
func (b *BlockNode) PrevSiblingKey() string { return b.prevSiblingKey }

// NextSiblingKey returns the key of the next sibling, or "" when the block
// is last among its siblings.
func (b *BlockNode) NextSiblingKey() string { return b.nextSiblingKey }

func (b *BlockNode) MarshalJSON() ([]byte, error) {
	s := struct {
		Key            string              `json:"key"`
		Type           string              `json:"type"`
		Depth          int                 `json:"depth"`
		Text           string              `json:"text"`
		Data           map[string]any      `json:"data,omitempty"`
		CharacterList  []CharacterMetadata `json:"characterList"`
		ParentKey      string              `json:"parent,omitempty"`
		ChildKeys      []string            `json:"children,omitempty"`
		PrevSiblingKey string              `json:"prevSibling,omitempty"`
		NextSiblingKey string              `json:"nextSibling,omitempty"`
	}{
		Key:            b.key,
		Type:           b.blockType,
		Depth:          b.depth,
		Text:           b.text,
		Data:           b.data,
		CharacterList:  b.characterList,
		ParentKey:      b.parentKey,
		ChildKeys:      b.childKeys,
		PrevSiblingKey: b.prevSiblingKey,
		NextSiblingKey: b.nextSiblingKey,
	}
	return json.Marshal(s)
}

// NodeConfig carries every field of a BlockNode under construction.
// It exists so the decoding packages can assemble nodes without exposing
// setters on BlockNode itself.
type NodeConfig struct {
	Key            string
	Type           string
	Depth          int
	Text           string
	Data           map[string]any
	CharacterList  []CharacterMetadata
	ParentKey      string
	ChildKeys      []string
	PrevSiblingKey string
	NextSiblingKey string
}

// NewBlockNode materializes a node from cfg, applying defaults: empty type
// becomes DefaultBlockType, nil data becomes an empty map.
func NewBlockNode(cfg NodeConfig) *BlockNode {
	blockType := cfg.Type
	if blockType == "" {
		blockType = DefaultBlockType
	}
	// Copy so later mutation of the raw input cannot reach into the node.
	data := make(map[string]any, len(cfg.Data))
	for k, v := range cfg.Data {
		data[k] = v
	}
	characterList := cfg.CharacterList
	if characterList == nil {
		characterList = []CharacterMetadata{}
	}

	return &BlockNode{
		key:            cfg.Key,
		blockType:      blockType,
		depth:          cfg.Depth,
		text:           cfg.Text,
		data:           data,
		characterList:  characterList,
		parentKey:      cfg.ParentKey,
		childKeys:      cfg.ChildKeys,
		prevSiblingKey: cfg.PrevSiblingKey,
		nextSiblingKey: cfg.NextSiblingKey,
	}
}
