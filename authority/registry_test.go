// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authority

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticRegistry_KnownSymbols(t *testing.T) {
	r := NewStaticRegistry(map[string]uint32{"A": 1, "B": 1, "C": 2})
	require.Equal(t, uint32(1), r.AuthorityOf("A"))
	require.Equal(t, uint32(1), r.AuthorityOf("B"))
	require.Equal(t, uint32(2), r.AuthorityOf("C"))
}

func TestStaticRegistry_UnknownSymbolsGetDistinctSingletons(t *testing.T) {
	r := NewStaticRegistry(map[string]uint32{"A": 1})
	x := r.AuthorityOf("X")
	y := r.AuthorityOf("Y")
	require.NotEqual(t, x, y)
	require.NotEqual(t, uint32(1), x)
	require.NotEqual(t, uint32(1), y)

	// Repeated lookups of the same unknown symbol stay consistent.
	require.Equal(t, x, r.AuthorityOf("X"))
}

func TestStaticRegistry_EmptyMapping(t *testing.T) {
	r := NewStaticRegistry(nil)
	require.Equal(t, uint32(0), r.AuthorityOf("A"))
	require.Equal(t, uint32(1), r.AuthorityOf("B"))
}
