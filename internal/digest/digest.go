package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32
	// BlockSize is the input block length consumed by one compression round.
	BlockSize = 64
)

// ErrInvalidDigest is returned by ParseDigest for malformed input.
var ErrInvalidDigest = errors.New("invalid digest")

// Digest is a SHA-256 output. It is a value: callers own their copy.
type Digest [Size]byte

// Sum returns the SHA-256 digest of p.
func Sum(p []byte) Digest {
	s := New()
	_ = s.Update(p) // a fresh State is never finalized
	d, _ := s.Finalize()
	return d
}

// DoubleSum returns SHA-256(SHA-256(p)), the form used for transaction
// and block identifiers.
func DoubleSum(p []byte) Digest {
	first := Sum(p)
	return Sum(first[:])
}

// ParseDigest decodes a 64-character hex string.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(Size) {
		return d, fmt.Errorf("%w: want %d hex chars, got %d", ErrInvalidDigest, hex.EncodedLen(Size), len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	return d, nil
}

// String returns the lowercase hex encoding.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Short returns the first 10 bytes as hex (20 chars) for display and logs.
func (d Digest) Short() string { return hex.EncodeToString(d[:10]) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(Size))
	hex.Encode(out, d[:])
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(b []byte) error {
	parsed, err := ParseDigest(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
