// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notarisation

import (
	"encoding/json"

	badger "github.com/dgraph-io/badger"
	"github.com/pkg/errors"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

// Store is the notarisation database collaborator named in spec.md §6:
// get_block_notarisations / get_back_notarisation, plus the writes a
// notary relay needs to populate it.
type Store interface {
	// BlockNotarisations returns the notarisations discovered in the hub
	// block identified by blockHash, in discovery order.
	BlockNotarisations(blockHash chainhash.Hash) (InBlock, bool)
	// BackNotarisation resolves a KMD notarisation txid to the
	// backnotarisation an assetchain recorded for it.
	BackNotarisation(kmdTxid chainhash.Hash) (Notarisation, bool)
	// PutBlockNotarisations records the notarisations found in a hub
	// block, preserving their discovery order.
	PutBlockNotarisations(blockHash chainhash.Hash, notas InBlock) error
	// PutBackNotarisation indexes a backnotarisation by the KMD
	// notarisation txid it answers.
	PutBackNotarisation(kmdTxid chainhash.Hash, bn Notarisation) error
	// Close releases the underlying database handle.
	Close() error
}

// keyKind tags the two record families sharing one badger keyspace,
// mirroring utils/mmr/mmr.db.badger.go's getObjectIndex/getNodeIndex
// prefix convention.
type keyKind byte

const (
	keyBlockNotarisations keyKind = 0x01
	keyBackNotarisation   keyKind = 0x02
)

func blockKey(kind keyKind, h chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = byte(kind)
	copy(key[1:], h[:])
	return key
}

// BadgerStore is a badger-backed Store, grounded on the teacher's
// utils/mmr/mmr.db.badger.go key-value layout, generalized from MMR
// block/node records to notarisations and back-notarisations.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if needed) a badger database at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path))
	if err != nil {
		return nil, errors.Wrap(err, "open notarisation store")
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func (s *BadgerStore) BlockNotarisations(blockHash chainhash.Hash) (InBlock, bool) {
	var notas InBlock
	if !s.get(blockKey(keyBlockNotarisations, blockHash), &notas) {
		return nil, false
	}
	return notas, true
}

func (s *BadgerStore) BackNotarisation(kmdTxid chainhash.Hash) (Notarisation, bool) {
	var bn Notarisation
	if !s.get(blockKey(keyBackNotarisation, kmdTxid), &bn) {
		return Notarisation{}, false
	}
	return bn, true
}

func (s *BadgerStore) PutBlockNotarisations(blockHash chainhash.Hash, notas InBlock) error {
	return s.put(blockKey(keyBlockNotarisations, blockHash), notas)
}

func (s *BadgerStore) PutBackNotarisation(kmdTxid chainhash.Hash, bn Notarisation) error {
	return s.put(blockKey(keyBackNotarisation, kmdTxid), bn)
}

func (s *BadgerStore) get(key []byte, out interface{}) bool {
	txn := s.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err != nil {
		return false
	}
	data, err := item.ValueCopy(nil)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *BadgerStore) put(key []byte, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal notarisation record")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}
