// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crosschain

import (
	"gitlab.com/jaxnet/xchainproof/chainindex"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

// scanForward walks heights [from, from+limit) of snap looking for the
// first notarisation satisfying isTarget, in discovery order within each
// block. It generalizes the source's single ScanNotarisationsFromHeight
// template function, which served all three forward-scan call sites in
// crosschain.cpp (the assetchain's own-notarisation search, the hub's
// target-notarisation search, and the back-notarisation follow).
func scanForward(
	snap chainindex.Snapshot,
	store notarisation.Store,
	from int32,
	limit int32,
	isTarget func(notarisation.Notarisation) bool,
) (notarisation.Notarisation, int32, bool) {
	tip := snap.TipHeight()
	limitHeight := from + limit
	if limitHeight > tip+1 {
		limitHeight = tip + 1
	}

	for h := from; h < limitHeight; h++ {
		blockHash, ok := snap.BlockHashAt(h)
		if !ok {
			continue
		}
		notas, ok := store.BlockNotarisations(blockHash)
		if !ok {
			continue
		}
		for _, nota := range notas {
			if isTarget(nota) {
				return nota, h, true
			}
		}
	}

	return notarisation.Notarisation{}, 0, false
}
