package guardian

import "fmt"

// BlockSelector picks which content blocks are attached to results via
// show-blocks. Simple selectors are constants; selectors carrying a limit,
// a block id or a timestamp are built with the constructor functions below.
// BlockAll overrides every other member of the list it appears in.
type BlockSelector string

const (
	BlockMain       BlockSelector = "main"
	BlockBody       BlockSelector = "body"
	BlockAll        BlockSelector = "all"
	BlockBodyLatest BlockSelector = "body:latest"
	// The API does not accept body:oldest without an explicit limit; this
	// mirrors the wire behaviour of existing clients. Use BlockBodyOldestN
	// for a real oldest-first selection.
	BlockBodyOldest    BlockSelector = "body:latest"
	BlockBodyKeyEvents BlockSelector = "body:key-events"
)

// BlockBodyLatestN selects the latest n body blocks.
func BlockBodyLatestN(n int) BlockSelector {
	return BlockSelector(fmt.Sprintf("body:latest:%d", n))
}

// BlockBodyOldestN selects the oldest n body blocks.
func BlockBodyOldestN(n int) BlockSelector {
	return BlockSelector(fmt.Sprintf("body:oldest:%d", n))
}

// BlockBodyID selects only the body block with the given id.
func BlockBodyID(id string) BlockSelector {
	return BlockSelector("body:" + id)
}

// BlockBodyAround selects the block with the given id and 20 blocks
// either side of it.
func BlockBodyAround(id string) BlockSelector {
	return BlockSelector("body:around:" + id)
}

// BlockBodyAroundN selects the block with the given id and n blocks
// either side of it.
func BlockBodyAroundN(id string, n int) BlockSelector {
	return BlockSelector(fmt.Sprintf("body:around:%s:%d", id, n))
}

// BlockBodyPublishedSince selects only body blocks published since the
// given epoch-millisecond timestamp.
func BlockBodyPublishedSince(ts int64) BlockSelector {
	return BlockSelector(fmt.Sprintf("body:published-since:%d", ts))
}

func (b BlockSelector) String() string {
	return string(b)
}
