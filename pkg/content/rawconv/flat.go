package rawconv

import (
	"github.com/draftmark/contentstate/pkg/content"
)

// decodeFlatBlocks handles documents with no nested structure: one node per
// raw block, output order equal to input order, no structural links.
func (d *decoder) decodeFlatBlocks(blocks []*RawBlock) *content.BlockMap {
	out := content.NewBlockMap()

	for _, raw := range blocks {
		out.Set(content.NewBlockNode(content.NodeConfig{
			Key:           d.keys.Get(raw),
			Type:          raw.Type,
			Depth:         raw.Depth,
			Text:          raw.Text,
			Data:          raw.Data,
			CharacterList: decodeCharacterList(raw, d.entityKeys),
		}))
	}
	return out
}
