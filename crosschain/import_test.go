// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/chainindex"
	"gitlab.com/jaxnet/xchainproof/notarisation"
	"gitlab.com/jaxnet/xchainproof/txcodec"
)

// TestCompleteImport_E5 matches spec.md §8 scenario E5: an import
// transaction carrying a stub proof whose MoM falls within the target
// chain's upcoming MoMoM window is rebuilt around a proof that verifies
// against the backnotarisation root.
func TestCompleteImport_E5(t *testing.T) {
	idx := chainindex.NewMemIndex()
	store := notarisation.NewMemStore()

	burnHash := seedHash("burn-tx")
	srcNotaTxid := seedHash("nA0")

	var hashes [6]chainhash.Hash
	for h := 0; h < 6; h++ {
		var txs []chainhash.Hash
		if h == 2 {
			txs = []chainhash.Hash{srcNotaTxid}
		} else {
			txs = []chainhash.Hash{seedHash(fmt.Sprintf("hub-tx%d", h))}
		}
		hashes[h], _ = appendBlockWithTxs(idx, fmt.Sprintf("hub%d", h), txs)
	}

	require.NoError(t, store.PutBlockNotarisations(hashes[2], notarisation.InBlock{
		{Txid: srcNotaTxid, Body: notarisation.Body{Symbol: "A", CCId: 5, Height: 2, MoM: burnHash}},
	}))
	targetTxid := seedHash("nB0")
	require.NoError(t, store.PutBlockNotarisations(hashes[4], notarisation.InBlock{
		{Txid: targetTxid, Body: notarisation.Body{Symbol: "B", CCId: 5, Height: 4, MoM: seedHash("mom-B0")}},
	}))
	require.NoError(t, store.PutBlockNotarisations(hashes[0], notarisation.InBlock{
		{Txid: seedHash("nB-prev"), Body: notarisation.Body{Symbol: "B", CCId: 5, Height: 0, MoM: seedHash("mom-B-prev")}},
	}))

	payouts := []txcodec.Payout{{Address: "RAddr1", Amount: 1000}}
	importTx := txcodec.ImportTx{
		Proof: txcodec.Proof{Txid: srcNotaTxid},
		Burn: txcodec.BurnTx{
			Hash:         burnHash,
			TargetSymbol: "B",
			TargetCCid:   5,
			PayoutsHash:  txcodec.HashPayouts(payouts),
		},
		Payouts: payouts,
	}

	engine := newTestEngine(idx, store, "hub", map[string]uint32{"A": 9, "B": 9})
	result, err := engine.CompleteImport(importTx)
	require.NoError(t, err)
	require.Equal(t, targetTxid, result.Proof.Txid)
	require.Equal(t, payouts, result.Payouts)

	branch := chainhash.MerkleBranch{Index: result.Proof.Index, Siblings: result.Proof.Siblings}
	root, _, dest := engine.CalculateProofRoot("B", 5, 4)
	require.Equal(t, targetTxid, dest)
	require.Equal(t, root, branch.Exec(burnHash))
}

func TestCompleteImport_MalformedBurn(t *testing.T) {
	idx := chainindex.NewMemIndex()
	store := notarisation.NewMemStore()
	engine := newTestEngine(idx, store, "hub", nil)

	importTx := txcodec.ImportTx{
		Burn: txcodec.BurnTx{Hash: seedHash("burn")},
	}
	_, err := engine.CompleteImport(importTx)
	require.Error(t, err)
	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, MalformedBurn, xerr.Kind)
}
