// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

// NextBacknotarisation is the back-notarisation follow operation of
// spec.md §4.4: resolve a KMD notarisation txid to its backnotarisation,
// then forward-scan for the next backnotarisation of this engine's own
// symbol — the one that will carry the MoMoM covering the range the
// caller cares about.
func (e *Engine) NextBacknotarisation(kmdNotarisationTxid chainhash.Hash) (notarisation.Notarisation, error) {
	bn, ok := e.Store.BackNotarisation(kmdNotarisationTxid)
	if !ok {
		return notarisation.Notarisation{}, newErr(BacknotarisationPending, "no backnotarisation recorded for this notarisation")
	}

	snap := e.Index.Snapshot()
	defer snap.Release()

	loc, found := snap.LookupTx(bn.Txid)
	if !found || loc.InMempool {
		return notarisation.Notarisation{}, newErr(BacknotarisationPending, "backnotarisation height not confirmed")
	}

	next, _, ok := scanForward(snap, e.Store, loc.Height+1, e.scanLimit(), func(n notarisation.Notarisation) bool {
		return n.Body.Symbol == e.Symbol
	})
	if !ok {
		return notarisation.Notarisation{}, newErr(BacknotarisationPending, "next backnotarisation not yet confirmed")
	}

	return next, nil
}
