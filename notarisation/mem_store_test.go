// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notarisation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

func TestMemStore_BlockNotarisations(t *testing.T) {
	store := NewMemStore()
	blockHash := chainhash.HashH([]byte("block"))

	_, ok := store.BlockNotarisations(blockHash)
	require.False(t, ok)

	notas := InBlock{{Txid: chainhash.HashH([]byte("tx")), Body: Body{Symbol: "A", CCId: 2}}}
	require.NoError(t, store.PutBlockNotarisations(blockHash, notas))

	got, ok := store.BlockNotarisations(blockHash)
	require.True(t, ok)
	require.Equal(t, notas, got)
}

func TestMemStore_BackNotarisation(t *testing.T) {
	store := NewMemStore()
	kmdTxid := chainhash.HashH([]byte("kmd-tx"))

	_, ok := store.BackNotarisation(kmdTxid)
	require.False(t, ok)

	bn := Notarisation{Txid: chainhash.HashH([]byte("bn-tx")), Body: Body{Symbol: "A"}}
	require.NoError(t, store.PutBackNotarisation(kmdTxid, bn))

	got, ok := store.BackNotarisation(kmdTxid)
	require.True(t, ok)
	require.Equal(t, bn, got)
}

func TestNotarisation_Eligible(t *testing.T) {
	require.False(t, Notarisation{Body: Body{CCId: 0}}.Eligible())
	require.False(t, Notarisation{Body: Body{CCId: 1}}.Eligible())
	require.True(t, Notarisation{Body: Body{CCId: 2}}.Eligible())
}
