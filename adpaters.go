package stringdecoder

import (
	"bytes"
	"strings"
)

// In-memory destinations need no extra buffering; these give them the Flush
// method the Writer expects.
type (
	bytesBufferWriterAdapter    struct{ *bytes.Buffer }
	stringsBuilderWriterAdapter struct{ *strings.Builder }
)

func (w *bytesBufferWriterAdapter) Flush() error    { return nil }
func (w *stringsBuilderWriterAdapter) Flush() error { return nil }
