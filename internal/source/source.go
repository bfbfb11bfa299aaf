// Package source opens hash inputs, optionally decoding them on the fly
// (gzip, zstd, lz4 or hex text).
package source

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdin is the input name that selects the Opener's Stdin.
const Stdin = "-"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Opener turns input names into readers. Stdin is handed out once: the
// first Open of "-" gets the stream, later ones get an empty reader.
type Opener struct {
	Codec Codec
	Stdin io.Reader // defaults to os.Stdin

	stdinOnce sync.Once
}

// Open returns a reader over the decoded contents of name.
func (o *Opener) Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		var in io.Reader
		o.stdinOnce.Do(func() {
			in = o.Stdin
			if in == nil {
				in = os.Stdin
			}
		})
		if in == nil {
			return io.NopCloser(strings.NewReader("")), nil
		}
		return Wrap(io.NopCloser(in), o.Codec)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	rc, err := Wrap(f, o.Codec)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return rc, nil
}

// Wrap decodes r according to codec. Closing the result closes r.
func Wrap(r io.ReadCloser, codec Codec) (io.ReadCloser, error) {
	if codec == CodecAuto {
		br := bufio.NewReader(r)
		codec = sniff(br)
		r = readCloser{Reader: br, closers: []io.Closer{r}}
	}

	switch codec {
	case CodecNone:
		return r, nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return readCloser{Reader: zr, closers: []io.Closer{zr, r}}, nil
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return readCloser{Reader: dec, closers: []io.Closer{dec.IOReadCloser(), r}}, nil
	case CodecLZ4:
		return readCloser{Reader: lz4.NewReader(r), closers: []io.Closer{r}}, nil
	case CodecHex:
		return readCloser{Reader: hex.NewDecoder(hexText{r}), closers: []io.Closer{r}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, codec)
	}
}

// sniff picks a codec from the first bytes of br without consuming them.
func sniff(br *bufio.Reader) Codec {
	head, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CodecZstd
	case bytes.HasPrefix(head, lz4Magic):
		return CodecLZ4
	case bytes.HasPrefix(head, gzipMagic):
		return CodecGzip
	default:
		return CodecNone
	}
}

// hexText drops ASCII whitespace so hex dumps split across lines decode.
type hexText struct{ r io.Reader }

func (h hexText) Read(p []byte) (int, error) {
	for {
		n, err := h.r.Read(p)
		k := 0
		for _, c := range p[:n] {
			switch c {
			case ' ', '\t', '\n', '\r':
			default:
				p[k] = c
				k++
			}
		}
		if k > 0 || err != nil {
			return k, err
		}
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
