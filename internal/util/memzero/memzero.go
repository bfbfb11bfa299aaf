// Package memzero wipes buffers that held message or hash state.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroWords overwrites w with zeros.
//
//go:noinline
func ZeroWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(&w)
}
