package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/oy3o/stringdecoder"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name  string
		enc   stringdecoder.Encoding
		chunk int
		in    []byte
		want  string
	}{
		{"utf8 byte chunks", stringdecoder.UTF8, 1, []byte("a☃b\xe2\x82"), "a☃b\uFFFD"},
		{"utf16le pair split", stringdecoder.UTF16LE, 3, []byte{0x3D, 0xD8, 0x4D, 0xDC, 0x61, 0x00}, "👍a"},
		{"base64 padded", stringdecoder.Base64, 2, []byte("aa"), "YWE="},
		{"base64url", stringdecoder.Base64URL, 0, []byte("aa"), "YWE"},
		{"hex", stringdecoder.Hex, 4, []byte{0xDE, 0xAD, 0xBE, 0xEF}, "deadbeef"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(bytes.NewReader(tc.in), &out, tc.enc, tc.chunk, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("a"), &out, stringdecoder.UTF8, -1, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, stringdecoder.ErrBlockSize)
	assert.Contains(t, err.Error(), "create writer")

	err = run(strings.NewReader("a"), &out, 0, 16, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, stringdecoder.ErrUnsupportedEncoding)
}
