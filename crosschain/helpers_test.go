// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"github.com/rs/zerolog"

	"gitlab.com/jaxnet/xchainproof/authority"
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/chainindex"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

func seedHash(seed string) chainhash.Hash {
	return chainhash.HashH([]byte(seed))
}

// appendBlockWithTxs builds a block out of txHashes, computes its Merkle
// root, and appends it to idx, returning the block hash and root.
func appendBlockWithTxs(idx *chainindex.MemIndex, blockSeed string, txHashes []chainhash.Hash) (chainhash.Hash, chainhash.Hash) {
	root := chainhash.MerkleRoot(txHashes)
	hash := seedHash(blockSeed)
	idx.AppendBlock(hash, chainindex.Block{MerkleRoot: root, TxHashes: txHashes})
	return hash, root
}

func newTestEngine(idx *chainindex.MemIndex, store notarisation.Store, symbol string, authMap map[string]uint32) *Engine {
	return &Engine{
		Index:    idx,
		Store:    store,
		Registry: authority.NewStaticRegistry(authMap),
		Symbol:   symbol,
		Log:      zerolog.Nop(),
	}
}
