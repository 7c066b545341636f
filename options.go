package stringdecoder

import "go.uber.org/zap"

// Options holds configurable parameters for a Reader or Writer.
type Options struct {
	// BlockSize is the number of source bytes to decode at a time.
	//
	// Default is DEFAULT_BLOCK_SIZE.
	//
	BlockSize int

	// Logger receives debug records when a stream ends with pending bytes
	// and warnings when a source error discards them.
	//
	// Default is zap.NewNop().
	//
	Logger *zap.Logger
}

// withDefaults returns a copy of o with zero fields filled in.
func (o *Options) withDefaults() (Options, error) {
	var out Options
	if o != nil {
		out = *o
	}
	if out.BlockSize < 0 {
		return out, ErrBlockSize
	}
	if out.BlockSize == 0 {
		out.BlockSize = DEFAULT_BLOCK_SIZE
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out, nil
}
