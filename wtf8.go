package stringdecoder

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Decoded text is a Go string. Everything except an unpaired UTF-16 surrogate is
// ordinary UTF-8. A lone surrogate cannot be expressed in UTF-8, so it is written
// as the 3-byte generalized UTF-8 (WTF-8) sequence for its code unit: ED A0..BF 80..BF.

const (
	surrHighMin = 0xD800
	surrLowMin  = 0xDC00
	surrMax     = 0xDFFF
)

func isHighSurrogate(u uint16) bool { return u >= surrHighMin && u < surrLowMin }
func isLowSurrogate(u uint16) bool  { return u >= surrLowMin && u <= surrMax }

// writeUnit appends a single UTF-16 code unit to sb.
func writeUnit(sb *strings.Builder, u uint16) {
	if u < surrHighMin || u > surrMax {
		sb.WriteRune(rune(u))
		return
	}
	sb.WriteByte(0xE0 | byte(u>>12))
	sb.WriteByte(0x80 | byte(u>>6)&0x3F)
	sb.WriteByte(0x80 | byte(u)&0x3F)
}

// CodeUnit returns the text form of a single UTF-16 code unit. Non-surrogate
// units are returned as their usual UTF-8 encoding.
func CodeUnit(u uint16) string {
	var sb strings.Builder
	writeUnit(&sb, u)
	return sb.String()
}

// UTF16Units converts decoded text to UTF-16 code units. Lone surrogates are
// returned as the units they stand for, so the units of a+b equal the units of
// a followed by the units of b even when a ends in a high surrogate and b starts
// with the matching low one. Invalid UTF-8 bytes become U+FFFD.
func UTF16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		if u, ok := surrogateAt(s, i); ok {
			units = append(units, u)
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units
}

// surrogateAt reports whether s[i:] starts with an encoded surrogate code unit.
func surrogateAt(s string, i int) (uint16, bool) {
	if i+2 >= len(s) || s[i] != 0xED {
		return 0, false
	}
	b1, b2 := s[i+1], s[i+2]
	if b1 < 0xA0 || b1 > 0xBF || b2 < 0x80 || b2 > 0xBF {
		return 0, false
	}
	return 0xD000 | uint16(b1&0x3F)<<6 | uint16(b2&0x3F), true
}
