package stringdecoder

import (
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Encoding identifies one of the byte-to-text encodings a Decoder understands.
// The set is closed; the zero value is not a valid Encoding.
type Encoding uint8

const (
	UTF8 Encoding = iota + 1
	UTF16LE
	Base64
	Base64URL
	Hex
	Latin1
	ASCII
)

// Kind groups encodings by how they behave at chunk boundaries.
type Kind uint8

const (
	KindUTF8 Kind = iota + 1
	KindUTF16LE
	KindBase64
	KindBase64URL
	// KindFixedWidth maps every input byte independently, so nothing is ever carried over.
	KindFixedWidth
)

// profile is the static description of an encoding.
type profile struct {
	name       string
	kind       Kind
	unit       int // bytes per minimal unit, 0 when the leading byte decides
	maxPending int
}

var profiles = [...]profile{
	UTF8:      {name: "utf8", kind: KindUTF8, unit: 0, maxPending: 3},
	UTF16LE:   {name: "utf16le", kind: KindUTF16LE, unit: 2, maxPending: 3},
	Base64:    {name: "base64", kind: KindBase64, unit: 3, maxPending: 2},
	Base64URL: {name: "base64url", kind: KindBase64URL, unit: 3, maxPending: 2},
	Hex:       {name: "hex", kind: KindFixedWidth, unit: 1},
	Latin1:    {name: "latin1", kind: KindFixedWidth, unit: 1},
	ASCII:     {name: "ascii", kind: KindFixedWidth, unit: 1},
}

// IsValid reports whether e is one of the supported encodings.
func (e Encoding) IsValid() bool {
	return e > 0 && int(e) < len(profiles)
}

func (e Encoding) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
	return profiles[e].name
}

// Kind returns the boundary-handling family of e.
func (e Encoding) Kind() Kind {
	if !e.IsValid() {
		return 0
	}
	return profiles[e].kind
}

// UnitSize returns the number of bytes in one minimal unit of e, or 0 for
// UTF-8 where the leading byte decides.
func (e Encoding) UnitSize() int {
	if !e.IsValid() {
		return 0
	}
	return profiles[e].unit
}

// MaxPending returns the largest number of bytes a Decoder for e may carry
// between two Write calls.
func (e Encoding) MaxPending() int {
	if !e.IsValid() {
		return 0
	}
	return profiles[e].maxPending
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedEncoding, uint8(e))
	}
	return []byte(profiles[e].name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the same names as Lookup.
func (e *Encoding) UnmarshalText(text []byte) error {
	enc, err := Lookup(string(text))
	if err != nil {
		return err
	}
	*e = enc
	return nil
}

// aliases holds every accepted spelling, already lower-cased.
var aliases = map[string]Encoding{
	"utf8":      UTF8,
	"utf-8":     UTF8,
	"utf16le":   UTF16LE,
	"utf-16le":  UTF16LE,
	"ucs2":      UTF16LE,
	"ucs-2":     UTF16LE,
	"base64":    Base64,
	"base64url": Base64URL,
	"hex":       Hex,
	"latin1":    Latin1,
	"binary":    Latin1,
	"ascii":     ASCII,
}

// lookupCache remembers names exactly as callers spelled them, so repeated
// lookups skip normalisation. Only successful lookups are stored.
var lookupCache = xsync.NewMap[string, Encoding]()

// Lookup resolves an encoding name such as "utf-8", "UCS2" or "base64url".
// Matching is case-insensitive and ignores surrounding whitespace.
func Lookup(name string) (Encoding, error) {
	if enc, ok := lookupCache.Load(name); ok {
		return enc, nil
	}

	enc, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}

	lookupCache.Store(name, enc)
	return enc, nil
}
