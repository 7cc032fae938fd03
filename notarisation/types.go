// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notarisation holds the records the crosschain proof engine walks
// — notarisations written on the hub chain, and back-notarisations
// written back onto an assetchain — plus a Store abstraction over them.
package notarisation

import "gitlab.com/jaxnet/xchainproof/chainhash"

// Body is the payload of a Notarisation or Backnotarisation.
type Body struct {
	// Symbol is the short ASCII identifier of the source assetchain.
	Symbol string
	// CCId is the numeric cross-chain id. Values below 2 are reserved
	// and never eligible for proof assembly (spec.md §3 invariant 3).
	CCId uint32
	// Height is the source chain's block height this record pins.
	Height int32
	// MoM is the Merkle root over MoMDepth consecutive source-chain
	// block Merkle roots, ending at Height.
	MoM chainhash.Hash
	// MoMDepth is the window length used to build MoM.
	MoMDepth int32
	// MoMoM is the Merkle root over a vector of MoM values collected
	// from other assetchains' notarisations within a bracket on the
	// hub. Only ever set on a Backnotarisation.
	MoMoM chainhash.Hash
	// TxHash is the hash of the transaction carrying this record. On
	// the chain that produced the record it is redundant with the
	// Notarisation's Txid field.
	TxHash chainhash.Hash
}

// Notarisation is a hub transaction committing to an assetchain's recent
// state via a MoM, keyed by the transaction that carries it.
type Notarisation struct {
	Txid chainhash.Hash
	Body Body
}

// Backnotarisation is structurally a Notarisation but lives on an
// assetchain and may additionally carry a MoMoM in its Body.
type Backnotarisation = Notarisation

// InBlock is the ordered sequence of notarisations discovered within one
// hub block, preserving discovery order.
type InBlock []Notarisation

// Eligible reports whether n satisfies spec.md §3 invariant 3: only
// ccId >= 2 notarisations are ever considered in proof assembly.
func (n Notarisation) Eligible() bool {
	return n.Body.CCId >= 2
}
