// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation. Callers pass the
// same hash twice for a node with no right sibling — the duplicate-last-odd
// (Bitcoin) convention.
func HashMerkleBranches(left, right *Hash) *Hash {
	var data [2 * HashSize]byte
	copy(data[:HashSize], left[:])
	copy(data[HashSize:], right[:])
	h := HashH(data[:])
	return &h
}

// BuildMerkleTree builds a Merkle tree over leaves using the duplicate-
// last-odd-sibling convention and returns its levels concatenated into a
// single slice — leaves first, then each level up to the root, which is
// the final element. fMutated reports whether some level folded two
// genuinely distinct-position leaves that happened to carry the same
// hash; per spec.md §4.1 this is advisory only and never aborts proof
// construction on its own.
func BuildMerkleTree(leaves []Hash) (tree []Hash, fMutated bool) {
	if len(leaves) == 0 {
		return nil, false
	}

	tree = append(tree, leaves...)
	level := leaves
	for len(level) > 1 {
		next := make([]Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
				if left == right {
					fMutated = true
				}
			}
			next = append(next, *HashMerkleBranches(&left, &right))
		}
		tree = append(tree, next...)
		level = next
	}

	return tree, fMutated
}

// MerkleBranchFor derives the sibling branch that takes the leaf at index
// (of leafCount total leaves) to the root, given the flat tree produced
// by BuildMerkleTree.
func MerkleBranchFor(index, leafCount int, tree []Hash) []Hash {
	var branch []Hash

	offset := 0
	size := leafCount
	idx := index
	for size > 1 {
		siblingIdx := idx ^ 1
		if siblingIdx >= size {
			siblingIdx = idx // last odd element duplicates itself
		}
		branch = append(branch, tree[offset+siblingIdx])
		offset += size
		idx /= 2
		size = (size + 1) / 2
	}

	return branch
}

// MerkleBranch is an ordered sequence of sibling hashes paired with the
// leaf index whose bits describe, from least to most significant, whether
// the leaf is the left (even bit) or right (odd bit) child at each level.
type MerkleBranch struct {
	Index    uint32
	Siblings []Hash
}

// Exec folds leaf with the branch's siblings according to Index's bitwise
// path and returns the computed root.
func (b MerkleBranch) Exec(leaf Hash) Hash {
	h := leaf
	idx := b.Index
	for i := range b.Siblings {
		sibling := b.Siblings[i]
		if idx&1 == 1 {
			h = *HashMerkleBranches(&sibling, &h)
		} else {
			h = *HashMerkleBranches(&h, &sibling)
		}
		idx >>= 1
	}
	return h
}

// Compose concatenates b (leaf -> R) with upper (R as a leaf -> R2),
// returning a branch that takes the original leaf straight to R2. Branch
// composition is associative: a.Compose(b).Compose(c) ==
// a.Compose(b.Compose(c)).
func (b MerkleBranch) Compose(upper MerkleBranch) MerkleBranch {
	siblings := make([]Hash, 0, len(b.Siblings)+len(upper.Siblings))
	siblings = append(siblings, b.Siblings...)
	siblings = append(siblings, upper.Siblings...)
	return MerkleBranch{
		Index:    (upper.Index << uint(len(b.Siblings))) | b.Index,
		Siblings: siblings,
	}
}

// CheckMerkleBranch reconstructs the root that leaf and siblings fold to
// along index's bitwise path.
func CheckMerkleBranch(leaf Hash, siblings []Hash, index uint32) Hash {
	return MerkleBranch{Index: index, Siblings: siblings}.Exec(leaf)
}

// SafeCheckMerkleBranch behaves like CheckMerkleBranch but returns
// ZeroHash instead of panicking on a malformed branch.
func SafeCheckMerkleBranch(leaf Hash, siblings []Hash, index uint32) (root Hash) {
	defer func() {
		if recover() != nil {
			root = ZeroHash
		}
	}()
	return CheckMerkleBranch(leaf, siblings, index)
}

// MerkleRoot returns the root of the Merkle tree built over leaves, or
// ZeroHash for an empty leaf set.
func MerkleRoot(leaves []Hash) Hash {
	if len(leaves) == 0 {
		return ZeroHash
	}
	tree, _ := BuildMerkleTree(leaves)
	return tree[len(tree)-1]
}
