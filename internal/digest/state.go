package digest

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"shadigest/internal/util/memzero"
)

// ErrFinalized is returned when a State is used after Finalize.
var ErrFinalized = errors.New("digest: state already finalized")

// iv holds the initial hash value: the first 32 bits of the fractional
// parts of the square roots of the first eight primes.
var iv = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// State is an in-progress SHA-256 computation.
type State struct {
	h    [8]uint32
	buf  [BlockSize]byte
	nbuf int    // bytes pending in buf, always < BlockSize
	len  uint64 // total bytes passed to Update
	done bool
}

// New returns a State ready to accept input.
func New() *State {
	s := new(State)
	s.Reset()
	return s
}

// Reset puts s back into its initial state, including after Finalize.
func (s *State) Reset() {
	s.h = iv
	memzero.Zero(s.buf[:])
	s.nbuf = 0
	s.len = 0
	s.done = false
}

// Len returns the number of bytes consumed so far.
func (s *State) Len() uint64 { return s.len }

// Update appends p to the message. The digest does not depend on how the
// message is split across calls.
func (s *State) Update(p []byte) error {
	if s.done {
		return ErrFinalized
	}
	s.len += uint64(len(p))
	s.absorb(p)
	return nil
}

// Write implements io.Writer on top of Update.
func (s *State) Write(p []byte) (int, error) {
	if err := s.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// absorb compresses every complete block and buffers the remainder.
func (s *State) absorb(p []byte) {
	if s.nbuf > 0 {
		n := copy(s.buf[s.nbuf:], p)
		s.nbuf += n
		p = p[n:]
		if s.nbuf < BlockSize {
			return
		}
		block(&s.h, s.buf[:])
		s.nbuf = 0
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		block(&s.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		s.nbuf = copy(s.buf[:], p)
	}
}

// Finalize pads the message, compresses the last block(s) and returns the
// digest. The State is unusable afterwards until Reset.
func (s *State) Finalize() (Digest, error) {
	if s.done {
		return Digest{}, ErrFinalized
	}

	trailer, err := padding(s.len)
	if err != nil {
		return Digest{}, err
	}
	s.absorb(trailer)
	if s.nbuf != 0 {
		return Digest{}, fmt.Errorf("digest: %d bytes left after padding", s.nbuf)
	}

	var d Digest
	b := cryptobyte.NewFixedBuilder(d[:0])
	for _, w := range s.h {
		b.AddUint32(w)
	}
	if _, err := b.Bytes(); err != nil {
		return Digest{}, fmt.Errorf("digest: serialise: %w", err)
	}

	s.done = true
	memzero.Zero(s.buf[:])
	memzero.ZeroWords(s.h[:])
	return d, nil
}

// padding returns the 0x80 marker, the zero fill and the big-endian bit
// length that bring a message of n bytes to a multiple of BlockSize.
func padding(n uint64) ([]byte, error) {
	rem := int(n % BlockSize)
	fill := 55 - rem // zero bytes between the marker and the length
	if fill < 0 {
		fill += BlockSize
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, 1+fill+8))
	b.AddUint8(0x80)
	b.AddBytes(make([]byte, fill))
	b.AddUint64(n << 3)
	return b.Bytes()
}
