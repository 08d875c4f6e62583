package demo

// -----------------------------------------------------------------------------
// Embedded block table
//
// Each block sweeps x over 0..count-1 and maps it from `in` to `out`.
// -----------------------------------------------------------------------------

const defaultBlocksYAML = `
blocks:
  - name: up
    count: 10
    in: [0, 9]
    out: [5, 31]
  - name: down
    count: 32
    in: [5, 32]
    out: [0, 10]
`

// EmbeddedBlocksLookup allows overriding where the block table comes from.
var EmbeddedBlocksLookup = func() ([]byte, bool) {
	return []byte(defaultBlocksYAML), true
}
