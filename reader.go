package stringdecoder

import (
	"io"

	"go.uber.org/zap"
)

// maxConsecutiveEmptyReads matches bufio: a source that keeps returning 0, nil
// is reported as io.ErrNoProgress.
const maxConsecutiveEmptyReads = 100

// Reader decodes an underlying byte stream and serves the resulting text.
// It tracks the first error; once the source fails, Read drains the text
// decoded so far and then keeps returning that error.
type Reader struct {
	r     io.Reader
	dec   *Decoder
	block []byte // source bytes, BlockSize long
	out   []byte // decoded text not yet handed out
	count int64  // total source bytes consumed
	err   error  // first error encountered.
	log   *zap.Logger
}

var _ io.ReadCloser = (*Reader)(nil)
var _ io.WriterTo = (*Reader)(nil)

// NewReader returns a Reader that decodes r as enc. A nil opts selects the defaults.
func NewReader(r io.Reader, enc Encoding, opts *Options) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	o, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	dec, err := New(enc)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:     r,
		dec:   dec,
		block: make([]byte, o.BlockSize),
		out:   make([]byte, 0, decodedLen(enc, o.BlockSize)),
		log:   o.Logger.With(zap.Stringer("encoding", enc)),
	}, nil
}

// Close closes the underlying reader if it implements io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
	n := copy(p, r.out)
	r.consume(n)
	return n, nil
}

// WriteTo implements io.WriterTo for efficient copying.
// A clean end of the source is not reported as an error.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		r.setError(ErrWriteToNil)
		return 0, r.err
	}

	var n int64
	for {
		if len(r.out) > 0 {
			written, err := w.Write(r.out)
			if written < 0 || written > len(r.out) {
				return n, ErrInvalidWrite
			}
			n += int64(written)
			r.consume(written)
			if err != nil {
				return n, err
			}
			if len(r.out) > 0 {
				return n, io.ErrShortWrite
			}
		}
		if r.err != nil {
			if r.err == io.EOF {
				return n, nil
			}
			return n, r.err
		}
		r.fill()
	}
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }
func (r *Reader) IsEOF() bool  { return r.err == io.EOF }

// Result returns the total source bytes consumed and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// consume drops n handed-out bytes from out, reusing the buffer once it is empty.
func (r *Reader) consume(n int) {
	if n == len(r.out) {
		r.out = r.out[:0]
		return
	}
	r.out = r.out[n:]
}

// fill reads one block from the source and appends its text to out.
func (r *Reader) fill() {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := r.r.Read(r.block)
		if n < 0 || n > len(r.block) {
			r.finish(ErrInvalidRead)
			return
		}
		r.count += int64(n)
		if n > 0 {
			r.out = append(r.out, r.dec.Write(r.block[:n])...)
		}
		if err != nil {
			r.finish(err)
			return
		}
		if n > 0 {
			return
		}
	}
	r.finish(io.ErrNoProgress)
}

// finish ends the decoded stream. Pending bytes are resolved on a clean EOF
// and dropped on any other error.
func (r *Reader) finish(err error) {
	pending := r.dec.Buffered()
	if err == io.EOF {
		if pending > 0 {
			r.log.Debug("finalizing pending bytes at end of stream", zap.Int("pending", pending))
		}
		r.out = append(r.out, r.dec.End()...)
	} else if pending > 0 {
		r.log.Warn("discarding pending bytes after read error", zap.Int("pending", pending), zap.Error(err))
		r.dec.Reset()
	}
	r.setError(err)
}
