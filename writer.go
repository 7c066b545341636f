package stringdecoder

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"go.uber.org/zap"
)

type textWriter interface {
	io.Writer
	io.StringWriter
	Flush() error
}

// Writer decodes the bytes written to it and writes the resulting text to an
// underlying io.Writer. It tracks the first error that occurs; after an error
// all subsequent writes become no-ops.
type Writer struct {
	w         textWriter
	dst       io.Writer
	dec       *Decoder
	blockSize int
	count     int64 // total text bytes written
	err       error // first error encountered. Subsequent writes become no-ops.
	depth     int
	closed    bool
	log       *zap.Logger
}

var _ io.WriteCloser = (*Writer)(nil)
var _ io.ReaderFrom = (*Writer)(nil)

// NewWriter returns a Writer that decodes its input as enc and writes text to w.
// A nil opts selects the defaults.
func NewWriter(w io.Writer, enc Encoding, opts *Options) (*Writer, error) {
	if w == nil {
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

	out := &Writer{
		dst:       w,
		dec:       dec,
		blockSize: o.BlockSize,
		log:       o.Logger.With(zap.Stringer("encoding", enc)),
	}

	switch tw := w.(type) {
	// The caller owns this buffer, so only the caller flushes it.
	case *bufio.Writer:
		out.w, out.depth = tw, 1

	// underlying is a buf so we don't need buffering
	case *bytes.Buffer:
		out.w = &bytesBufferWriterAdapter{tw}
	case *strings.Builder:
		out.w = &stringsBuilderWriterAdapter{tw}

	// default use bufio
	default:
		out.w = bufio.NewWriterSize(w, decodedLen(enc, o.BlockSize))
	}
	return out, nil
}

// Write implements the io.Writer interface. All of p is always handed to the
// decoder; the returned error reports a failure to write the decoded text.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 || w.err != nil {
		return 0, w.err
	}
	w.writeText(w.dec.Write(p))
	return len(p), w.err
}

// ReadFrom implements io.ReaderFrom. It decodes r in BlockSize chunks until
// io.EOF, which is not reported as an error. The stream is not ended; call Close.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if r == nil || w.err != nil {
		return 0, w.err
	}

	bufPtr := bufPool.Get().(*[]byte)
	defer bufPool.Put(bufPtr)
	buf := *bufPtr
	if w.blockSize <= len(buf) {
		buf = buf[:w.blockSize]
	} else {
		buf = make([]byte, w.blockSize)
	}

	var n int64
	empty := 0
	for {
		read, er := r.Read(buf)
		if read < 0 || read > len(buf) {
			w.setError(ErrInvalidRead)
			return n, w.err
		}
		if read > 0 {
			empty = 0
			n += int64(read)
			w.writeText(w.dec.Write(buf[:read]))
			if w.err != nil {
				return n, w.err
			}
		}
		if er != nil {
			if er == io.EOF {
				return n, nil
			}
			return n, er
		}
		if read == 0 {
			if empty++; empty >= maxConsecutiveEmptyReads {
				return n, io.ErrNoProgress
			}
		}
	}
}

func (w *Writer) Count() int64 { return w.count }
func (w *Writer) Err() error   { return w.err }

// Buffered returns the number of source bytes the decoder is holding back.
func (w *Writer) Buffered() int { return w.dec.Buffered() }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *Writer) writeText(s string) {
	if s == "" || w.err != nil {
		return
	}
	n, err := w.w.WriteString(s)
	if n < 0 {
		n, err = 0, ErrInvalidWrite
	}
	w.count += int64(n)
	w.setError(err)
}

// Flush writes any buffered text to the underlying io.Writer.
// It does not end the stream; pending bytes stay with the decoder.
func (w *Writer) Flush() error {
	// A caller-provided bufio.Writer is flushed by its owner.
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

// Result flushes the buffer and returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Close ends the stream, writing the text for any pending bytes, flushes, and
// closes the underlying writer if it implements io.Closer.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true

	if pending := w.dec.Buffered(); pending > 0 {
		w.log.Debug("finalizing pending bytes at close", zap.Int("pending", pending))
	}
	w.writeText(w.dec.End())
	w.Flush()

	if c, ok := w.dst.(io.Closer); ok {
		w.setError(c.Close())
	}
	return w.err
}
