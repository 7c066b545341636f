// Command strdecode decodes standard input with one of the stringdecoder
// encodings and writes the text to standard output.
//
//	strdecode -enc base64 < file.bin
//	printf '\xe2\x82' | strdecode -enc utf8 -chunk 1
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oy3o/stringdecoder"
)

func main() {
	enc := stringdecoder.UTF8
	flag.TextVar(&enc, "enc", stringdecoder.UTF8, "Input encoding (utf8, utf16le, ucs2, base64, base64url, hex, latin1, binary, ascii)")
	var (
		chunk   = flag.Int("chunk", stringdecoder.DEFAULT_BLOCK_SIZE, "Bytes handed to the decoder per write")
		verbose = flag.Bool("v", false, "Log debug output to stderr")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(os.Stdin, os.Stdout, enc, *chunk, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, enc stringdecoder.Encoding, chunk int, log *zap.Logger) error {
	w, err := stringdecoder.NewWriter(out, enc, &stringdecoder.Options{BlockSize: chunk, Logger: log})
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}

	n, err := w.ReadFrom(in)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	log.Debug("decoded input",
		zap.Stringer("encoding", enc),
		zap.Int64("bytes_in", n),
		zap.Int64("bytes_out", w.Count()),
	)
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
