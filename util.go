package stringdecoder

import "golang.org/x/exp/constraints"

// DEFAULT_BLOCK_SIZE is the number of source bytes a Reader or Writer decodes at a time.
const DEFAULT_BLOCK_SIZE = 4096

// ceilDiv returns n/d rounded up.
func ceilDiv[T constraints.Integer](n, d T) T { return (n + d - 1) / d }

// decodedLen estimates the number of text bytes produced for n input bytes of enc.
// It is only a capacity hint.
func decodedLen[T constraints.Integer](enc Encoding, n T) T {
	switch enc {
	case Base64, Base64URL:
		return ceilDiv(n, 3) * 4
	case Hex:
		return n * 2
	case Latin1:
		return n * 2
	case UTF16LE:
		return ceilDiv(n, 2) * 3
	}
	return n
}
