// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/txcodec"
)

// TxProof is a proof that some transaction is included under a root
// committed by the notarisation (or backnotarisation) named by Txid.
// branch.Exec(tx_hash) == that root is the invariant every TxProof this
// package emits satisfies (spec.md §3 invariants 1-2).
type TxProof struct {
	Txid   chainhash.Hash
	Branch chainhash.MerkleBranch
}

// proofBranch converts the wire-level txcodec.Proof into the
// chainhash.MerkleBranch the engine folds over.
func proofBranch(p txcodec.Proof) chainhash.MerkleBranch {
	return chainhash.MerkleBranch{Index: p.Index, Siblings: p.Siblings}
}
