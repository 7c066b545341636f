package stringdecoder

import (
	"io"

	"golang.org/x/text/transform"
)

// Transformer adapts a Decoder to golang.org/x/text/transform, so it can be
// chained with other transformers or wrapped by transform.NewReader.
//
// Every call consumes all of src. Text that does not fit into dst is kept and
// handed out on later calls, which return transform.ErrShortDst until it has
// been drained.
type Transformer struct {
	dec      *Decoder
	overflow []byte
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a Transformer for enc.
func NewTransformer(enc Encoding) (*Transformer, error) {
	dec, err := New(enc)
	if err != nil {
		return nil, err
	}
	return &Transformer{dec: dec}, nil
}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	t.overflow = append(t.overflow, t.dec.Write(src)...)
	if atEOF {
		t.overflow = append(t.overflow, t.dec.End()...)
	}

	nDst = copy(dst, t.overflow)
	if nDst == len(t.overflow) {
		t.overflow = t.overflow[:0]
	} else {
		t.overflow = t.overflow[nDst:]
		err = transform.ErrShortDst
	}
	return nDst, len(src), err
}

// Reset implements transform.Transformer.
func (t *Transformer) Reset() {
	t.dec.Reset()
	t.overflow = t.overflow[:0]
}

// NewTransformReader returns a reader of the text decoded from r as enc.
func NewTransformReader(r io.Reader, enc Encoding) (io.Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	t, err := NewTransformer(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, t), nil
}
