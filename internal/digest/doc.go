// Package digest implements the SHA-256 hash function without relying on
// crypto/sha256.
//
// Contents
//
//   - The streaming state machine (New, Update, Write, Finalize, Reset)
//   - One-shot helpers (Sum, DoubleSum)
//   - The Digest value type with hex encoding and parsing (ParseDigest)
//
// # Lifecycle
//
// A State starts out Created, accepts any number of Update calls and is
// consumed by Finalize. Any Update or Finalize after that returns
// ErrFinalized instead of a digest; Reset makes the State usable again.
//
// # Notes
//
// A State carries no locking. Callers hashing several inputs at once use
// one State per input. The implementation makes no constant-time or
// side-channel guarantees.
package digest
