// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"gitlab.com/jaxnet/xchainproof/txcodec"
)

// CompleteImport is ImportCompleter.complete_import of spec.md §4.3:
// unwrap an import transaction carrying a stub proof to an assetchain
// MoM, extend that proof to a MoMoM via ExtendToMoMoM, and rebuild the
// import transaction around the extended proof.
func (e *Engine) CompleteImport(importTx txcodec.ImportTx) (txcodec.ImportTx, error) {
	parsed, err := txcodec.UnmarshalImportTx(importTx)
	if err != nil {
		return txcodec.ImportTx{}, wrapErr(MalformedImport, err, "parsing import transaction")
	}

	targetSymbol, targetCCid, payoutsHash, err := txcodec.UnmarshalBurnTx(parsed.Burn)
	if err != nil {
		return txcodec.ImportTx{}, wrapErr(MalformedBurn, err, "parsing burn transaction")
	}
	if payoutsHash != txcodec.HashPayouts(parsed.Payouts) {
		return txcodec.ImportTx{}, newErr(MalformedBurn, "payouts hash does not match burn commitment")
	}

	stubProof := TxProof{
		Txid:   parsed.Proof.Txid,
		Branch: proofBranch(parsed.Proof),
	}

	fullProof, err := e.ExtendToMoMoM(parsed.Burn.Hash, targetSymbol, targetCCid, stubProof)
	if err != nil {
		return txcodec.ImportTx{}, err
	}

	full := txcodec.Proof{
		Txid:     fullProof.Txid,
		Index:    fullProof.Branch.Index,
		Siblings: fullProof.Branch.Siblings,
	}
	return txcodec.MakeImportCoinTransaction(full, parsed.Burn, parsed.Payouts), nil
}
