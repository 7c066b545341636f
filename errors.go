package stringdecoder

import "errors"

var (
	// ErrUnsupportedEncoding indicates that a Decoder was requested for an encoding
	// outside the supported set. It is only ever returned at construction or lookup time.
	ErrUnsupportedEncoding = errors.New("stringdecoder: unsupported encoding")

	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("stringdecoder: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrBlockSize indicates that Options.BlockSize was negative.
	ErrBlockSize = errors.New("stringdecoder: negative block size")

	// ErrClosed indicates a Write was attempted on a Writer that has already been closed.
	ErrClosed = errors.New("stringdecoder: write to closed Writer")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("stringdecoder: WriteTo called with a nil io.Writer")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("stringdecoder: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("stringdecoder: reader returned invalid count from Read")
)
