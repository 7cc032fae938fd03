// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainindex

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

// FixtureBlock is the JSON-friendly description of one block, used to
// seed a MemIndex from an operator-supplied file when no live chain
// index is wired in yet.
type FixtureBlock struct {
	Hash       string   `json:"hash"`
	MerkleRoot string   `json:"merkle_root"`
	TxHashes   []string `json:"tx_hashes"`
}

// LoadFixture reads a JSON array of FixtureBlock, in height order
// starting at genesis, and returns a populated MemIndex.
func LoadFixture(path string) (*MemIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading chain fixture")
	}

	var blocks []FixtureBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, errors.Wrap(err, "parsing chain fixture")
	}

	idx := NewMemIndex()
	for i, fb := range blocks {
		hash, err := parseHash(fb.Hash)
		if err != nil {
			return nil, errors.Wrapf(err, "block %d hash", i)
		}
		root, err := parseHash(fb.MerkleRoot)
		if err != nil {
			return nil, errors.Wrapf(err, "block %d merkle root", i)
		}

		block := Block{MerkleRoot: root}
		for j, txHex := range fb.TxHashes {
			txHash, err := parseHash(txHex)
			if err != nil {
				return nil, errors.Wrapf(err, "block %d tx %d", i, j)
			}
			block.TxHashes = append(block.TxHashes, txHash)
		}

		idx.AppendBlock(hash, block)
	}

	return idx, nil
}

func parseHash(s string) (chainhash.Hash, error) {
	if s == "" {
		return chainhash.ZeroHash, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return chainhash.ZeroHash, errors.Wrap(err, "decoding hex hash")
	}
	h, err := chainhash.NewHash(raw)
	if err != nil {
		return chainhash.ZeroHash, err
	}
	return *h, nil
}
