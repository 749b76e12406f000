package rawconv

import (
	"github.com/pkg/errors"

	"github.com/draftmark/contentstate/pkg/content"
)

// treeItem pairs a raw block awaiting decoding with the already-decoded
// node that owns it. The parent reference is what lets a popped block
// recover its position among siblings.
type treeItem struct {
	block  *RawBlock
	parent *content.BlockNode
}

// decodeTreeBlocks flattens a nested block hierarchy into a single ordered
// collection of linked nodes. The emission order is a preorder depth-first
// walk: a node's entire subtree is emitted, in left-to-right sibling order,
// before its next sibling begins, and roots are visited in original order.
//
// The traversal uses an explicit stack instead of recursion so arbitrarily
// deep documents cannot exhaust the call stack. Children are pushed in
// reverse so they pop in original left-to-right order.
//
// Every block, root or descendant, must carry a children list; any block
// without one fails the whole decode with ErrInvalidStructure.
func (d *decoder) decodeTreeBlocks(roots []*RawBlock) (*content.BlockMap, error) {
	out := content.NewBlockMap()

	rootKeys := make([]string, len(roots))
	for i, root := range roots {
		rootKeys[i] = d.keys.Get(root)
	}

	for idx, root := range roots {
		childKeys, err := d.childKeysOf(root)
		if err != nil {
			return nil, err
		}

		var prevKey, nextKey string
		if idx > 0 {
			prevKey = rootKeys[idx-1]
		}
		if idx < len(roots)-1 {
			nextKey = rootKeys[idx+1]
		}

		node := content.NewBlockNode(content.NodeConfig{
			Key:            rootKeys[idx],
			Type:           root.Type,
			Depth:          root.Depth,
			Text:           root.Text,
			Data:           root.Data,
			CharacterList:  decodeCharacterList(root, d.entityKeys),
			ChildKeys:      childKeys,
			PrevSiblingKey: prevKey,
			NextSiblingKey: nextKey,
		})
		out.Set(node)

		stack := pushReversed(nil, root.Children, node)

		// Drain the root's entire subtree before moving to the next root.
		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			key := d.keys.Get(item.block)
			prevKey, nextKey := siblingKeys(item.parent.ChildKeys(), key)

			childKeys, err := d.childKeysOf(item.block)
			if err != nil {
				return nil, err
			}

			child := content.NewBlockNode(content.NodeConfig{
				Key:            key,
				Type:           item.block.Type,
				Depth:          item.block.Depth,
				Text:           item.block.Text,
				Data:           item.block.Data,
				CharacterList:  decodeCharacterList(item.block, d.entityKeys),
				ParentKey:      item.parent.Key(),
				ChildKeys:      childKeys,
				PrevSiblingKey: prevKey,
				NextSiblingKey: nextKey,
			})
			out.Set(child)

			stack = pushReversed(stack, item.block.Children, child)
		}
	}

	return out, nil
}

// childKeysOf validates the block's children list and assigns keys to the
// children, in original order, ahead of their own traversal.
func (d *decoder) childKeysOf(block *RawBlock) ([]string, error) {
	if block.Children == nil {
		return nil, errors.Wrapf(ErrInvalidStructure, "block %q", d.keys.Get(block))
	}

	keys := make([]string, len(block.Children))
	for i, child := range block.Children {
		if child == nil {
			return nil, errors.Wrapf(ErrInvalidStructure, "block %q has a nil child", d.keys.Get(block))
		}
		keys[i] = d.keys.Get(child)
	}
	return keys, nil
}

func pushReversed(stack []treeItem, children []*RawBlock, parent *content.BlockNode) []treeItem {
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, treeItem{block: children[i], parent: parent})
	}
	return stack
}

// siblingKeys locates key among the parent's ordered children and returns
// the neighbouring keys, empty at the first and last positions.
func siblingKeys(siblings []string, key string) (prevKey, nextKey string) {
	for i, k := range siblings {
		if k != key {
			continue
		}
		if i > 0 {
			prevKey = siblings[i-1]
		}
		if i < len(siblings)-1 {
			nextKey = siblings[i+1]
		}
		break
	}
	return prevKey, nextKey
}
