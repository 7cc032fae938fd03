// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notarisation

import "gitlab.com/jaxnet/xchainproof/chainhash"

// MemStore is an in-memory Store, used in tests and by the xcproof CLI
// in place of a running BadgerStore when no store directory is given.
type MemStore struct {
	blocks map[chainhash.Hash]InBlock
	backs  map[chainhash.Hash]Notarisation
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		blocks: make(map[chainhash.Hash]InBlock),
		backs:  make(map[chainhash.Hash]Notarisation),
	}
}

func (m *MemStore) BlockNotarisations(blockHash chainhash.Hash) (InBlock, bool) {
	notas, ok := m.blocks[blockHash]
	return notas, ok
}

func (m *MemStore) BackNotarisation(kmdTxid chainhash.Hash) (Notarisation, bool) {
	bn, ok := m.backs[kmdTxid]
	return bn, ok
}

func (m *MemStore) PutBlockNotarisations(blockHash chainhash.Hash, notas InBlock) error {
	m.blocks[blockHash] = notas
	return nil
}

func (m *MemStore) PutBackNotarisation(kmdTxid chainhash.Hash, bn Notarisation) error {
	m.backs[kmdTxid] = bn
	return nil
}

func (m *MemStore) Close() error { return nil }
