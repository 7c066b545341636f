// Package stringdecoder turns byte streams that arrive in arbitrary chunks
// into text without splitting a multi-byte unit across chunk boundaries.
//
// A Decoder keeps at most three trailing bytes between writes. Concatenating
// every Write result and the final End result gives the same text as
// DecodeWhole over the concatenated input, whatever the chunking.
//
// Supported encodings are UTF-8, UTF-16LE, Base64, Base64URL, and the
// byte-per-character encodings hex, Latin-1 and ASCII. Reader, Writer and
// Transformer wrap a Decoder for io.Reader, io.Writer and
// golang.org/x/text/transform pipelines.
package stringdecoder
