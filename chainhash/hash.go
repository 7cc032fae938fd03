// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the opaque 32-byte hash type shared by every
// block, transaction and Merkle tree in the federation, and the Merkle
// primitives the crosschain proof engine folds over it.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashSize is the number of bytes in a hash produced by this package.
const HashSize = 32

// ZeroHash is the all-zero Hash, returned wherever spec.md calls for NULL_HASH.
var ZeroHash Hash

// Hash is an opaque 32-byte value identifying a block, transaction, or
// Merkle node.
type Hash [HashSize]byte

// String returns the Hash as the hex string of the bytes in big-endian
// (reversed) order, matching the convention block explorers use.
func (h Hash) String() string {
	for i := 0; i < HashSize/2; i++ {
		h[i], h[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(h[:])
}

// IsEqual returns whether h and target are the same hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// IsNull reports whether h is the all-zero hash.
func (h Hash) IsNull() bool {
	return h == ZeroHash
}

// CloneBytes returns a copy of the raw bytes of the hash, in internal
// (non-reversed) order.
func (h Hash) CloneBytes() []byte {
	out := make([]byte, HashSize)
	copy(out, h[:])
	return out
}

// SetBytes sets the bytes of the hash from newHash, which must be exactly
// HashSize bytes long.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return errors.Errorf("invalid hash length of %d, want %d", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// NewHash returns a new Hash from a byte slice. An error is returned if the
// number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// HashB calculates the hash of b using the engine's hash algorithm.
func HashB(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// HashH calculates the hash of b and returns it directly as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}
