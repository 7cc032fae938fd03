// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

// ExtendToMoMoM is HubProofRouter.extend_to_momom of spec.md §4.2: given
// an assetchain proof that terminates at a MoM, extend it to the MoMoM
// that targetSymbol has already received, identifying the
// backnotarisation txid targetSymbol will recognize the root by.
//
// Precondition: assetProof.Branch.Exec(txHash) is the MoM committed by
// the notarisation named by assetProof.Txid, on this engine's hub chain.
func (e *Engine) ExtendToMoMoM(txHash chainhash.Hash, targetSymbol string, targetCCid uint32, assetProof TxProof) (TxProof, error) {
	snap := e.Index.Snapshot()

	loc, found := snap.LookupTx(assetProof.Txid)
	if !found || loc.InMempool {
		snap.Release()
		return TxProof{}, newErr(SourceNotarisationMissing, "source notarisation not found on hub")
	}
	kmdHeightSrc := loc.Height

	// Scan forward from the source notarisation's height to find the
	// first notarisation of targetSymbol: the MoMoM window it commits
	// to must be inclusive of the source notarisation.
	_, kmdHeightTgt, ok := scanForward(snap, e.Store, kmdHeightSrc, e.scanLimit(), func(n notarisation.Notarisation) bool {
		return n.Body.Symbol == targetSymbol
	})
	snap.Release()
	if !ok {
		return TxProof{}, newErr(TargetNotarisationNotFound, "target chain not notarised within window")
	}

	momoMRoot, moms, destTxid := e.CalculateProofRoot(targetSymbol, targetCCid, kmdHeightTgt)
	if momoMRoot == chainhash.ZeroHash {
		return TxProof{}, newErr(EmptyProofRoot, "proof root under-confirmed")
	}

	momSrc := assetProof.Branch.Exec(txHash)
	nIndex := -1
	for i, m := range moms {
		if m == momSrc {
			nIndex = i
			break
		}
	}
	if nIndex < 0 {
		return TxProof{}, newErr(MomNotInWindow, "source MoM not present in collected window")
	}

	momTree, _ := chainhash.BuildMerkleTree(moms)
	momomBranch := chainhash.MerkleBranchFor(nIndex, len(moms), momTree)

	composed := assetProof.Branch.Compose(chainhash.MerkleBranch{Index: uint32(nIndex), Siblings: momomBranch})
	if composed.Exec(txHash) != momoMRoot {
		return TxProof{}, newErr(ProofSelfCheck, "composed branch does not reproduce MoMoM")
	}

	return TxProof{Txid: destTxid, Branch: composed}, nil
}
