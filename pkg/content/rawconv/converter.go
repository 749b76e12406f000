// Package rawconv decodes the range-annotated document-exchange format
// into the linked document model of package content.
//
// Decoding is a synchronous, one-shot computation: it either returns a
// fully-materialized content.State or an error, never partial output. Its
// only side effects are against the injected key generator and entity
// store, so a decode must not race another decode sharing the same store.
package rawconv

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/draftmark/contentstate/internal/ulid"
	"github.com/draftmark/contentstate/pkg/content"
)

var (
	// ErrInvalidInput is returned when the raw document carries no block list.
	ErrInvalidInput = errors.New("raw document must carry a list of blocks")
	// ErrInvalidStructure is returned when, in tree mode, any block lacks a
	// children list.
	ErrInvalidStructure = errors.New("raw block must carry a list of children")
)

// Options configure a decode. The zero value is usable: a fresh entity
// store, ULID block keys and no logging.
type Options struct {
	// Store receives the interned entities. Defaults to a fresh in-memory
	// store, retrievable from the returned State.
	Store *content.EntityStore
	// GenerateKey supplies keys for blocks that lack one. Defaults to
	// ulid.GenerateID. Inject a sequential generator for deterministic
	// output in tests.
	GenerateKey func() string
	// Logger receives debug-level decode summaries. Defaults to a no-op.
	Logger *zap.Logger
}

type decoder struct {
	keys       *keyAssigner
	entityKeys map[string]string
}

// Decode converts a raw document into the linked document model.
//
// The whole document is decoded in one mode: flat when the first block
// carries no children list, tree otherwise. Mixed input is a violated
// precondition and produces undefined results.
//
// Re-decoding the same raw document produces structurally equivalent but
// identifier-distinct output, since missing keys and entity identities are
// generated anew on every call.
func Decode(raw *RawDocument, opts Options) (*content.State, error) {
	store := opts.Store
	if store == nil {
		store = content.NewEntityStore()
	}
	generate := opts.GenerateKey
	if generate == nil {
		generate = ulid.GenerateID
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if raw == nil || raw.Blocks == nil {
		return nil, errors.WithStack(ErrInvalidInput)
	}
	for _, block := range raw.Blocks {
		if block == nil {
			return nil, errors.Wrap(ErrInvalidInput, "block list contains a nil block")
		}
	}

	d := &decoder{
		keys:       newKeyAssigner(generate),
		entityKeys: decodeEntityMap(raw.EntityMap, store),
	}

	var blocks *content.BlockMap
	treeMode := len(raw.Blocks) > 0 && raw.Blocks[0].Children != nil
	if treeMode {
		var err error
		blocks, err = d.decodeTreeBlocks(raw.Blocks)
		if err != nil {
			return nil, err
		}
	} else {
		blocks = d.decodeFlatBlocks(raw.Blocks)
	}

	logger.Debug(
		"decoded raw document",
		zap.Bool("tree", treeMode),
		zap.Int("blocks", blocks.Len()),
		zap.Int("entities", len(d.entityKeys)),
	)

	return content.NewState(blocks, store), nil
}

// DecodeJSON parses data as the document-exchange format and decodes it.
func DecodeJSON(data []byte, opts Options) (*content.State, error) {
	raw, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return Decode(raw, opts)
}
