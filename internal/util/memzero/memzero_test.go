package memzero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, b)

	Zero(nil)
}

func TestZeroWords(t *testing.T) {
	w := []uint32{0xdeadbeef, 1, 0xffffffff}
	ZeroWords(w)
	assert.Equal(t, []uint32{0, 0, 0}, w)
}
