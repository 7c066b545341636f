package stringdecoder

import (
	"fmt"
	"unicode/utf8"
)

// Decoder turns a byte stream delivered in arbitrary chunks into text.
// Concatenating the results of every Write followed by End gives the same text
// as DecodeWhole on the concatenated input.
//
// A Decoder is owned by a single caller and is not safe for concurrent use.
type Decoder struct {
	enc Encoding

	// pending holds the trailing bytes of an incomplete unit carried over
	// from the previous Write. It never holds a complete unit.
	pending  [utf8.UTFMax - 1]byte
	npending int
}

// New returns a Decoder for enc. It fails with ErrUnsupportedEncoding if enc
// is not one of the declared Encoding constants.
func New(enc Encoding) (*Decoder, error) {
	if !enc.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, enc)
	}
	return &Decoder{enc: enc}, nil
}

// NewFromName is New with the encoding given by name, see Lookup.
func NewFromName(name string) (*Decoder, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(enc)
}

// Encoding returns the encoding the Decoder was created with.
func (d *Decoder) Encoding() Encoding { return d.enc }

// Buffered returns the number of bytes held back from the last Write.
func (d *Decoder) Buffered() int { return d.npending }

// Write decodes p and returns all text that can be decided from the bytes seen
// so far. Trailing bytes that may still be completed by the next chunk are kept.
// Write never fails; malformed input is replaced, not rejected.
func (d *Decoder) Write(p []byte) string {
	if len(p) == 0 {
		return ""
	}

	buf := p
	if d.npending > 0 {
		// The capacity limit forces append to copy instead of writing into d.pending.
		buf = append(d.pending[:d.npending:d.npending], p...)
	}

	k := tailIncomplete(d.enc, buf)
	text := decodeComplete(d.enc, buf[:len(buf)-k])
	d.npending = copy(d.pending[:], buf[len(buf)-k:])
	return text
}

// End resolves any pending bytes, returns the resulting text and leaves the
// Decoder ready for an unrelated stream. Calling End on an empty Decoder
// returns "".
func (d *Decoder) End() string {
	if d.npending == 0 {
		return ""
	}
	text := finalize(d.enc, d.pending[:d.npending])
	d.npending = 0
	return text
}

// Reset drops pending bytes without producing any text.
func (d *Decoder) Reset() {
	d.npending = 0
}
