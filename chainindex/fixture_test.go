// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainindex

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/jaxnet/xchainproof/chainhash"
)

func hexOf(seed string) string {
	h := chainhash.HashH([]byte(seed))
	return hex.EncodeToString(h[:])
}

func TestLoadFixture(t *testing.T) {
	blocks := []FixtureBlock{
		{Hash: hexOf("b0"), MerkleRoot: hexOf("mr0"), TxHashes: []string{hexOf("tx0")}},
		{Hash: hexOf("b1"), MerkleRoot: hexOf("mr1"), TxHashes: []string{hexOf("tx1"), hexOf("tx1b")}},
	}
	data, err := json.Marshal(blocks)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	idx, err := LoadFixture(path)
	require.NoError(t, err)

	snap := idx.Snapshot()
	defer snap.Release()
	require.Equal(t, int32(1), snap.TipHeight())

	block, err := snap.ReadBlock(1)
	require.NoError(t, err)
	require.Len(t, block.TxHashes, 2)
}

func TestLoadFixture_BadHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"hash":"nothex"}]`), 0644))

	_, err := LoadFixture(path)
	require.Error(t, err)
}
