// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txcodec provides the minimal transaction codecs
// ImportCompleter drives: unmarshalling an import transaction's stub
// proof and embedded burn transaction, and rebuilding the import
// transaction around an extended proof. The bit-layout of the enclosing
// transactions is explicitly out of scope (spec.md §1); this package
// only needs to round-trip the handful of fields complete_import
// touches, the way the source's UnmarshalImportTx / UnmarshalBurnTx /
// MakeImportCoinTransaction do for CTransaction.
package txcodec

import (
	"github.com/pkg/errors"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

// Proof mirrors crosschain.TxProof without importing package crosschain,
// which would create an import cycle (crosschain depends on txcodec,
// not the other way around).
type Proof struct {
	Txid     chainhash.Hash
	Index    uint32
	Siblings []chainhash.Hash
}

// Payout is one output an import transaction pays out, once its proof
// has verified the backing burn.
type Payout struct {
	Address string
	Amount  int64
}

// BurnTx is the burn transaction an import references: it names the
// target chain and cc-id the burned value is destined for, and commits
// to the payouts via PayoutsHash.
type BurnTx struct {
	Hash         chainhash.Hash
	TargetSymbol string
	TargetCCid   uint32
	PayoutsHash  chainhash.Hash
}

// ImportTx is an assetchain transaction carrying a stub proof to its own
// MoM, the burn transaction it is importing, and the payouts it
// disburses once the proof verifies.
type ImportTx struct {
	Proof   Proof
	Burn    BurnTx
	Payouts []Payout
}

// UnmarshalImportTx parses raw import-transaction bytes. The reference
// implementation here works directly on an in-memory ImportTx value
// (the wire encoding is out of scope per spec.md §1); a production
// binding would replace this with the node's actual transaction decoder.
func UnmarshalImportTx(raw ImportTx) (ImportTx, error) {
	if raw.Burn.Hash == chainhash.ZeroHash {
		return ImportTx{}, errors.New("import tx missing burn reference")
	}
	return raw, nil
}

// UnmarshalBurnTx extracts the target symbol/ccid/payouts-hash fields
// from a burn transaction.
func UnmarshalBurnTx(burn BurnTx) (targetSymbol string, targetCCid uint32, payoutsHash chainhash.Hash, err error) {
	if burn.TargetSymbol == "" {
		return "", 0, chainhash.ZeroHash, errors.New("burn tx missing target symbol")
	}
	return burn.TargetSymbol, burn.TargetCCid, burn.PayoutsHash, nil
}

// HashPayouts computes the commitment UnmarshalBurnTx's payoutsHash must
// match, so complete_import can validate burn.PayoutsHash ==
// hash(payouts) per spec.md §4.3 step 2.
func HashPayouts(payouts []Payout) chainhash.Hash {
	var buf []byte
	for _, p := range payouts {
		buf = append(buf, []byte(p.Address)...)
		amt := p.Amount
		for i := 0; i < 8; i++ {
			buf = append(buf, byte(amt))
			amt >>= 8
		}
	}
	return chainhash.HashH(buf)
}

// MakeImportCoinTransaction rebuilds an import transaction carrying full
// in place of the original stub proof, preserving burn and payouts
// bit-identically.
func MakeImportCoinTransaction(full Proof, burn BurnTx, payouts []Payout) ImportTx {
	return ImportTx{Proof: full, Burn: burn, Payouts: payouts}
}
