// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainindex models the chain-index and transaction-lookup
// collaborators spec.md §6 expects from the surrounding node, and fixes
// the lock-free chainActive access bug spec.md §5 and §9 call out in the
// source: every proof construction snapshots the tip height once, under
// a held read lock, and bounds its scans to that snapshot.
package chainindex

import (
	"sync"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

// Block is the minimal view of a confirmed block the proof engine needs:
// its transaction hashes in block order and the Merkle root they commit
// to.
type Block struct {
	MerkleRoot chainhash.Hash
	TxHashes   []chainhash.Hash
}

// TxLocation is where a lookup found a transaction.
type TxLocation struct {
	// Height is the confirming block's height. Meaningless when
	// InMempool is true.
	Height int32
	// InMempool is true when the transaction exists but has not been
	// confirmed in a block yet.
	InMempool bool
}

// Index is the chain-index collaborator of spec.md §6: tip_height(),
// block_hash_at(h), block_index_by_hash(h), read_block(), plus
// transaction lookup. Index.Snapshot must be used instead of calling
// these directly so that a disconnect race observed mid-scan surfaces as
// a clean "not found" instead of a data race or a torn read.
type Index interface {
	Snapshot() Snapshot
}

// Snapshot is a read-locked view of the chain bound to the tip height
// observed when it was taken. Release must be called exactly once.
type Snapshot interface {
	TipHeight() int32
	BlockHashAt(height int32) (chainhash.Hash, bool)
	BlockIndexByHash(hash chainhash.Hash) (height int32, ok bool)
	ReadBlock(height int32) (Block, error)
	LookupTx(txid chainhash.Hash) (TxLocation, bool)
	Release()
}

// MemIndex is an in-memory, test/reference Index implementation guarded
// by a sync.RWMutex, grounded on node/dbctl.go's database.DB handle
// pattern generalized to the four read operations spec.md §6 names.
type MemIndex struct {
	mu sync.RWMutex

	heights   map[chainhash.Hash]int32
	hashes    []chainhash.Hash // hashes[h] == block hash at height h
	blocks    []Block          // blocks[h] == block at height h
	txIndex   map[chainhash.Hash]int32 // txid -> confirming height
	mempool   map[chainhash.Hash]bool
}

// NewMemIndex returns an empty MemIndex.
func NewMemIndex() *MemIndex {
	return &MemIndex{
		heights: make(map[chainhash.Hash]int32),
		txIndex: make(map[chainhash.Hash]int32),
		mempool: make(map[chainhash.Hash]bool),
	}
}

// AppendBlock connects a new block at the tip, indexing its transactions.
func (m *MemIndex) AppendBlock(hash chainhash.Hash, block Block) int32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	height := int32(len(m.hashes))
	m.hashes = append(m.hashes, hash)
	m.blocks = append(m.blocks, block)
	m.heights[hash] = height
	for _, txid := range block.TxHashes {
		m.txIndex[txid] = height
		delete(m.mempool, txid)
	}
	return height
}

// AddMempoolTx marks txid as seen but unconfirmed.
func (m *MemIndex) AddMempoolTx(txid chainhash.Hash) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mempool[txid] = true
}

// Snapshot implements Index.
func (m *MemIndex) Snapshot() Snapshot {
	m.mu.RLock()
	return &memSnapshot{idx: m, tip: int32(len(m.hashes)) - 1}
}

type memSnapshot struct {
	idx *MemIndex
	tip int32
}

func (s *memSnapshot) TipHeight() int32 { return s.tip }

func (s *memSnapshot) BlockHashAt(height int32) (chainhash.Hash, bool) {
	if height < 0 || height > s.tip {
		return chainhash.ZeroHash, false
	}
	return s.idx.hashes[height], true
}

func (s *memSnapshot) BlockIndexByHash(hash chainhash.Hash) (int32, bool) {
	height, ok := s.idx.heights[hash]
	if !ok || height > s.tip {
		return 0, false
	}
	return height, true
}

func (s *memSnapshot) ReadBlock(height int32) (Block, error) {
	if height < 0 || height > s.tip {
		return Block{}, ErrBlockNotFound
	}
	return s.idx.blocks[height], nil
}

func (s *memSnapshot) LookupTx(txid chainhash.Hash) (TxLocation, bool) {
	if s.idx.mempool[txid] {
		return TxLocation{InMempool: true}, true
	}
	height, ok := s.idx.txIndex[txid]
	if !ok || height > s.tip {
		return TxLocation{}, false
	}
	return TxLocation{Height: height}, true
}

func (s *memSnapshot) Release() { s.idx.mu.RUnlock() }
