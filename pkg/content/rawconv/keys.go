package rawconv

// keyAssigner hands out block keys: a block's own key when it has one,
// otherwise a generated one. Generated keys are cached per raw block so
// repeated lookups during traversal stay stable within one decode.
type keyAssigner struct {
	generate func() string
	cache    map[*RawBlock]string
}

func newKeyAssigner(generate func() string) *keyAssigner {
	return &keyAssigner{
		generate: generate,
		cache:    map[*RawBlock]string{},
	}
}

func (a *keyAssigner) Get(block *RawBlock) string {
	if block.Key != "" {
		return block.Key
	}
	if key, ok := a.cache[block]; ok {
		return key
	}
	key := a.generate()
	a.cache[block] = key
	return key
}
