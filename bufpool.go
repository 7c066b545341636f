package stringdecoder

import "sync"

const CHUNK_SIZE = 32 * 1024

// We need a buffer to read chunks into. 32KB is a common default size used by io.Copy.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, CHUNK_SIZE)
		return &b
	},
}
