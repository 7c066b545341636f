package stringdecoder

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// The engine is three functions dispatched on Kind: how many trailing bytes must
// wait for more input, how to decode everything before them, and how to resolve
// whatever is still waiting when the stream ends.

const replacement = "\uFFFD"

// tailIncomplete returns how many trailing bytes of b do not yet form a
// complete unit and must be withheld.
func tailIncomplete(enc Encoding, b []byte) int {
	switch enc.Kind() {
	case KindUTF8:
		return utf8Tail(b)
	case KindUTF16LE:
		return utf16Tail(b)
	case KindBase64, KindBase64URL:
		return len(b) % 3
	}
	return 0
}

// decodeComplete decodes b, which must not end inside a unit.
func decodeComplete(enc Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	switch enc.Kind() {
	case KindUTF8:
		return decodeUTF8(b)
	case KindUTF16LE:
		return decodeUTF16LE(b)
	case KindBase64:
		return base64.StdEncoding.EncodeToString(b)
	case KindBase64URL:
		return base64.RawURLEncoding.EncodeToString(b)
	case KindFixedWidth:
		return decodeFixed(enc, b)
	}
	return ""
}

// finalize resolves bytes still pending at end of stream.
func finalize(enc Encoding, pending []byte) string {
	if len(pending) == 0 {
		return ""
	}
	switch enc.Kind() {
	case KindUTF8:
		// Whatever is left is a truncated sequence, however long.
		return replacement
	case KindUTF16LE:
		// An odd trailing byte can never complete and is dropped.
		if len(pending) < 2 {
			return ""
		}
		return CodeUnit(binary.LittleEndian.Uint16(pending))
	case KindBase64:
		return base64.StdEncoding.EncodeToString(pending)
	case KindBase64URL:
		return base64.RawURLEncoding.EncodeToString(pending)
	}
	return ""
}

// utf8Tail finds the last rune start within the final UTFMax-1 bytes and
// withholds it together with its continuation bytes if the sequence is not yet full.
// utf8.FullRune also reports true for sequences that are already invalid,
// and those are decoded immediately.
func utf8Tail(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-(utf8.UTFMax-1); i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		if utf8.FullRune(b[i:]) {
			return 0
		}
		return len(b) - i
	}
	return 0
}

// decodeUTF8 replaces every byte that does not belong to a valid sequence
// with one U+FFFD, so the result does not depend on where chunks were split.
func decodeUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b) + 2*len(replacement))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteString(replacement)
		} else {
			sb.Write(b[:size])
		}
		b = b[size:]
	}
	return sb.String()
}

// utf16Tail withholds an odd trailing byte and, before it, a complete high
// surrogate that is still waiting for its pair.
func utf16Tail(b []byte) int {
	k := len(b) & 1
	n := len(b) - k
	if n >= 2 && isHighSurrogate(binary.LittleEndian.Uint16(b[n-2:])) {
		k += 2
	}
	return k
}

// decodeUTF16LE decodes whole code units. A trailing odd byte is ignored.
// Surrogates without a partner are kept as standalone units.
func decodeUTF16LE(b []byte) string {
	var sb strings.Builder
	sb.Grow(decodedLen(UTF16LE, len(b)))
	for i := 0; i+1 < len(b); i += 2 {
		u := binary.LittleEndian.Uint16(b[i:])
		if isHighSurrogate(u) && i+3 < len(b) {
			if u2 := binary.LittleEndian.Uint16(b[i+2:]); isLowSurrogate(u2) {
				sb.WriteRune(utf16.DecodeRune(rune(u), rune(u2)))
				i += 2
				continue
			}
		}
		writeUnit(&sb, u)
	}
	return sb.String()
}

// decodeFixed handles the encodings where each byte stands alone.
func decodeFixed(enc Encoding, b []byte) string {
	switch enc {
	case Hex:
		return hex.EncodeToString(b)
	case Latin1:
		var sb strings.Builder
		sb.Grow(decodedLen(Latin1, len(b)))
		for _, c := range b {
			sb.WriteRune(charmap.ISO8859_1.DecodeByte(c))
		}
		return sb.String()
	case ASCII:
		out := make([]byte, len(b))
		for i, c := range b {
			out[i] = c & 0x7F
		}
		return string(out)
	}
	return ""
}
