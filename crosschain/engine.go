// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crosschain implements the proof-composition engine: given a
// transaction confirmed on one assetchain, construct a compact Merkle
// proof rooted at a value some other chain has already learned about via
// its own backnotarisation stream. See SPEC_FULL.md §6.
package crosschain

import (
	"github.com/rs/zerolog"

	"gitlab.com/jaxnet/xchainproof/authority"
	"gitlab.com/jaxnet/xchainproof/chainhash"
	"gitlab.com/jaxnet/xchainproof/chainindex"
	"gitlab.com/jaxnet/xchainproof/notarisation"
)

// DefaultScanLimitBlocks is SCAN_LIMIT_BLOCKS from spec.md §6: the bound
// on every forward or backward notarisation scan this engine performs.
const DefaultScanLimitBlocks = 1440

// Engine bundles the collaborators one chain context (an assetchain, or
// the hub) needs to run the proof operations of SPEC_FULL.md §6. A node
// that participates as both an assetchain and, e.g., runs auxiliary hub
// tooling constructs two Engines, one per chain's Index/Store.
type Engine struct {
	// Index is this chain's chain-index collaborator (spec.md §6).
	Index chainindex.Index
	// Store is this chain's notarisation database collaborator.
	Store notarisation.Store
	// Registry resolves a symbol to its authority id.
	Registry authority.Registry
	// Symbol is this chain's own assetchain symbol. Required by
	// ProveLocal and NextBacknotarisation; unused by HubProofRouter
	// operations, which take targetSymbol as an argument instead.
	Symbol string
	// ScanLimitBlocks bounds every scan; defaults to
	// DefaultScanLimitBlocks when zero.
	ScanLimitBlocks int32
	// Log receives the engine's diagnostic trace of the windows it
	// walks, replacing the source's raw fprintf(stderr, ...) debug
	// lines and its disallowed /home/cc/momom_on_kmd file write.
	Log zerolog.Logger
}

func (e *Engine) scanLimit() int32 {
	if e.ScanLimitBlocks > 0 {
		return e.ScanLimitBlocks
	}
	return DefaultScanLimitBlocks
}

// CalculateProofRoot is the proof-root computation of spec.md §4.2: scan
// backwards from kmdHeight bracketing exactly two own-symbol
// notarisations and collect every same-authority, same-ccId MoM seen in
// between, returning their Merkle root as the MoMoM. The block holding
// the first own notarisation seen is collected in full; the scan stops
// at the second own notarisation, so its block contributes no MoMs.
//
// ccId < 2 or an out-of-range kmdHeight short-circuits to a null result,
// per spec.md §3 invariant 3 and §4.2. A scan that never sees a second
// own-symbol notarisation is under-confirmed and also returns null — see
// spec.md §4.2's state machine (S0/S1/S2).
func (e *Engine) CalculateProofRoot(symbol string, ccID uint32, kmdHeight int32) (root chainhash.Hash, moms []chainhash.Hash, destTxid chainhash.Hash) {
	if ccID < 2 {
		return chainhash.ZeroHash, nil, chainhash.ZeroHash
	}

	snap := e.Index.Snapshot()
	defer snap.Release()

	tip := snap.TipHeight()
	if kmdHeight < 0 || kmdHeight > tip {
		return chainhash.ZeroHash, nil, chainhash.ZeroHash
	}

	auth := e.Registry.AuthorityOf(symbol)
	seenOwn := 0
	limit := e.scanLimit()

scan:
	for i := int32(0); i < limit; i++ {
		if i > kmdHeight {
			break
		}
		height := kmdHeight - i
		blockHash, ok := snap.BlockHashAt(height)
		if !ok {
			continue
		}
		notas, ok := e.Store.BlockNotarisations(blockHash)
		if !ok {
			continue
		}

		for _, nota := range notas {
			if nota.Body.Symbol != symbol {
				continue
			}
			seenOwn++
			switch seenOwn {
			case 1:
				destTxid = nota.Txid
				e.Log.Debug().Int32("kmdHeight", height).Msg("own notarisation seen")
			case 2:
				break scan
			}
		}

		if seenOwn == 1 {
			for _, nota := range notas {
				if e.Registry.AuthorityOf(nota.Body.Symbol) == auth && nota.Body.CCId == ccID {
					moms = append(moms, nota.Body.MoM)
					e.Log.Debug().Int32("kmdHeight", height).Str("mom", nota.Body.MoM.String()).Msg("mom collected")
				}
			}
		}
	}

	if seenOwn < 2 {
		return chainhash.ZeroHash, nil, chainhash.ZeroHash
	}

	return chainhash.MerkleRoot(moms), moms, destTxid
}
