// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

// ProveLocal is AssetchainProver.prove_local of spec.md §4.1: given a
// transaction hash confirmed on this engine's own chain, produce a proof
// that terminates at the MoM of the first own-symbol notarisation
// covering its block.
func (e *Engine) ProveLocal(txHash chainhash.Hash) (TxProof, error) {
	snap := e.Index.Snapshot()
	defer snap.Release()

	loc, found := snap.LookupTx(txHash)
	if !found {
		return TxProof{}, newErr(TxNotFound, "transaction not found")
	}
	if loc.InMempool {
		return TxProof{}, newErr(TxInMempool, "transaction still in mempool")
	}
	txHeight := loc.Height

	// The first notarisation for a height >= the transaction's block
	// height is assumed to contain the corresponding MoM.
	nota, _, ok := scanForward(snap, e.Store, txHeight, e.scanLimit(), func(n notarisation.Notarisation) bool {
		return n.Body.Symbol == e.Symbol && n.Body.Height >= txHeight
	})
	if !ok {
		return TxProof{}, newErr(NotarisationNotConfirmed, "no own notarisation within scan window")
	}

	// nIndex indexes the tx's block Merkle root within the MoM leaf
	// window, leaves ordered most-recent (index 0) back to
	// height-MoMDepth+1.
	nIndex := int(nota.Body.Height - txHeight)

	leaves := make([]chainhash.Hash, nota.Body.MoMDepth)
	for i := int32(0); i < nota.Body.MoMDepth; i++ {
		height := nota.Body.Height - i
		blk, err := snap.ReadBlock(height)
		if err != nil {
			return TxProof{}, wrapErr(BlockPruned, err, "reading MoM window block")
		}
		leaves[i] = blk.MerkleRoot
	}

	momTree, _ := chainhash.BuildMerkleTree(leaves)
	momBranch := chainhash.MerkleBranchFor(nIndex, len(leaves), momTree)

	txBlock, err := snap.ReadBlock(txHeight)
	if err != nil {
		return TxProof{}, wrapErr(BlockPruned, err, "reading confirming block")
	}

	if got := chainhash.SafeCheckMerkleBranch(txBlock.MerkleRoot, momBranch, uint32(nIndex)); got != nota.Body.MoM {
		return TxProof{}, newErr(MerkleInconsistency, "block merkle root does not fold to notarisation MoM")
	}

	nTxIndex := -1
	for i, h := range txBlock.TxHashes {
		if h == txHash {
			nTxIndex = i
			break
		}
	}
	if nTxIndex < 0 {
		return TxProof{}, newErr(MerkleInconsistency, "transaction not found in its own confirming block")
	}

	txTree, _ := chainhash.BuildMerkleTree(txBlock.TxHashes)
	txBranch := chainhash.MerkleBranchFor(nTxIndex, len(txBlock.TxHashes), txTree)
	if got := chainhash.CheckMerkleBranch(txHash, txBranch, uint32(nTxIndex)); got != txBlock.MerkleRoot {
		return TxProof{}, newErr(MerkleInconsistency, "transaction does not fold to block merkle root")
	}

	composed := chainhash.MerkleBranch{Index: uint32(nTxIndex), Siblings: txBranch}.
		Compose(chainhash.MerkleBranch{Index: uint32(nIndex), Siblings: momBranch})

	if composed.Exec(txHash) != nota.Body.MoM {
		return TxProof{}, newErr(ProofSelfCheck, "composed branch does not reproduce MoM")
	}

	return TxProof{Txid: nota.Body.TxHash, Branch: composed}, nil
}
