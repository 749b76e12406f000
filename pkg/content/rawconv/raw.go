package rawconv

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/draftmark/contentstate/pkg/content"
)

// RawDocument is the document-exchange format: a list of blocks plus a
// table of entities referenced by offset ranges.
//
// A nil Blocks slice means the serialized document carried no block list
// (missing, null, or not a list) and is rejected by Decode with
// ErrInvalidInput. An empty but non-nil slice is a valid empty document.
type RawDocument struct {
	Blocks    []*RawBlock          `json:"blocks"`
	EntityMap map[string]RawEntity `json:"entityMap"`
}

// RawEntity is one entry of the raw entity table.
type RawEntity struct {
	Type       string             `json:"type"`
	Mutability content.Mutability `json:"mutability"`
	Data       map[string]any     `json:"data,omitempty"`
}

// RawBlock is one serialized block. All fields except Text are optional.
// Explicit keys must be unique across the document; a duplicate key makes
// the later block silently replace the earlier one in the decoded output.
//
// Children distinguishes three raw shapes: nil means the serialized block
// carried no children list (missing, null, or not a list), an empty non-nil
// slice means an explicit empty list, and a populated slice means nesting.
// The first block's Children selects flat vs tree decoding for the whole
// document.
type RawBlock struct {
	Key               string             `json:"key,omitempty"`
	Type              string             `json:"type,omitempty"`
	Depth             int                `json:"depth,omitempty"`
	Text              string             `json:"text"`
	Data              map[string]any     `json:"data,omitempty"`
	InlineStyleRanges []InlineStyleRange `json:"inlineStyleRanges,omitempty"`
	EntityRanges      []EntityRange      `json:"entityRanges,omitempty"`
	Children          []*RawBlock        `json:"children,omitempty"`
}

// InlineStyleRange applies one style tag to a contiguous run of characters.
// Offset and Length are in character units. Overlapping ranges are additive.
type InlineStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// EntityRange binds a contiguous run of characters to one entry of the raw
// entity table. Key indexes the table by its decimal string form.
type EntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

var jsonNull = []byte("null")

// UnmarshalJSON tolerates a "blocks" value that is not a list by leaving
// Blocks nil. Producers emitting such documents are rejected later, by
// Decode, with ErrInvalidInput rather than with a JSON type error here.
func (d *RawDocument) UnmarshalJSON(data []byte) error {
	type rawDocument RawDocument
	aux := struct {
		*rawDocument
		Blocks json.RawMessage `json:"blocks"`
	}{rawDocument: (*rawDocument)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.WithStack(err)
	}

	blocks, err := unmarshalBlockList(aux.Blocks)
	if err != nil {
		return err
	}
	d.Blocks = blocks

	return nil
}

// UnmarshalJSON tolerates a "children" value that is not a list by leaving
// Children nil, which the decoders treat the same as a missing field.
func (b *RawBlock) UnmarshalJSON(data []byte) error {
	type rawBlock RawBlock
	aux := struct {
		*rawBlock
		Children json.RawMessage `json:"children"`
	}{rawBlock: (*rawBlock)(b)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.WithStack(err)
	}

	children, err := unmarshalBlockList(aux.Children)
	if err != nil {
		return err
	}
	b.Children = children

	return nil
}

func unmarshalBlockList(data json.RawMessage) ([]*RawBlock, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) || data[0] != '[' {
		return nil, nil
	}

	blocks := make([]*RawBlock, 0)
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, errors.WithStack(err)
	}
	for i, block := range blocks {
		if block == nil {
			return nil, errors.Errorf("block list contains a null entry at index %d", i)
		}
	}
	return blocks, nil
}

// ParseDocument parses data as the document-exchange format.
func ParseDocument(data []byte) (*RawDocument, error) {
	var doc RawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse raw document")
	}
	return &doc, nil
}
