package source

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ErrUnknownCodec is returned when a codec name cannot be parsed.
var ErrUnknownCodec = errors.New("unknown codec")

// Codec selects how input bytes are decoded before hashing.
type Codec uint8

const (
	// CodecNone hashes the raw bytes.
	CodecNone Codec = iota
	// CodecAuto sniffs the stream's magic number and falls back to raw.
	CodecAuto
	// CodecGzip decodes a gzip stream.
	CodecGzip
	// CodecZstd decodes a zstd frame.
	CodecZstd
	// CodecLZ4 decodes an LZ4 frame.
	CodecLZ4
	// CodecHex decodes hex text, ignoring whitespace. Never sniffed.
	CodecHex
)

var codecNames = map[Codec]string{
	CodecNone: "none",
	CodecAuto: "auto",
	CodecGzip: "gzip",
	CodecZstd: "zstd",
	CodecLZ4:  "lz4",
	CodecHex:  "hex",
}

// String returns the flag spelling of c.
func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", c)
}

// ParseCodec parses a codec from its flag spelling.
func ParseCodec(name string) (Codec, error) {
	for c, n := range codecNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Set implements pflag.Value.
func (c *Codec) Set(name string) error {
	parsed, err := ParseCodec(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Codec) Type() string { return "codec" }

var _ pflag.Value = (*Codec)(nil)
