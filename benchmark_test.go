package stringdecoder

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

var benchText = []byte(strings.Repeat("plain ascii, ☃ snowmen and 💩 emoji; ", 512))

func benchmarkWrite(b *testing.B, enc Encoding, chunk int) {
	d, _ := New(enc)
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for p := benchText; len(p) > 0; {
			n := min(chunk, len(p))
			_ = d.Write(p[:n])
			p = p[n:]
		}
		_ = d.End()
	}
}

func BenchmarkUTF8Write7(b *testing.B)     { benchmarkWrite(b, UTF8, 7) }
func BenchmarkUTF8Write4096(b *testing.B)  { benchmarkWrite(b, UTF8, 4096) }
func BenchmarkUTF16LEWrite7(b *testing.B)  { benchmarkWrite(b, UTF16LE, 7) }
func BenchmarkBase64Write7(b *testing.B)   { benchmarkWrite(b, Base64, 7) }
func BenchmarkHexWrite4096(b *testing.B)   { benchmarkWrite(b, Hex, 4096) }
func BenchmarkLatin1Write4096(b *testing.B) { benchmarkWrite(b, Latin1, 4096) }

// Baseline comparison against the one-shot decode, to see the overhead of chunking.
func BenchmarkUTF8DecodeWhole(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		_, _ = DecodeWhole(benchText, UTF8)
	}
}

func BenchmarkReaderWriteTo(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		r, _ := NewReader(bytes.NewReader(benchText), UTF8, nil)
		_, _ = io.Copy(io.Discard, r)
	}
}
