package stringdecoder

import "fmt"

// DecodeWhole decodes b in one go. It is the reference the streaming Decoder is
// measured against: a truncated UTF-8 sequence at the very end becomes a single
// U+FFFD, an odd final UTF-16LE byte is dropped, and Base64 is padded while
// Base64URL is not.
func DecodeWhole(b []byte, enc Encoding) (string, error) {
	if !enc.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, enc)
	}

	switch enc.Kind() {
	case KindUTF8:
		k := utf8Tail(b)
		text := decodeUTF8(b[:len(b)-k])
		if k > 0 {
			text += replacement
		}
		return text, nil
	case KindUTF16LE:
		return decodeUTF16LE(b[:len(b)&^1]), nil
	}
	// The base64 encoders pad (or not) the final partial group themselves.
	return decodeComplete(enc, b), nil
}
