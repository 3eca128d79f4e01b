// Package ziptree provides the shared configuration surface for a zip
// tree's rank-derivation strategy -- a rank type and, optionally, a
// hash-based rank source -- without the balancing machinery itself.
//
// A zip tree orders nodes by key and additionally by an independently
// drawn "rank", rotating during insert/remove to keep higher-rank nodes
// closer to the root; the probabilistic shape argument that makes that
// balanced is orthogonal to the node-augmentation contract the rest of
// this module cares about, so only the rank-derivation surface is
// implemented here. See the package-level Non-goal in the root spec.
package ziptree

import (
	"cmp"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Options selects how a zip tree's rank is derived. Implementations are
// zero-sized types, mirroring the [rbtree.Options] convention.
type Options interface {
	// UseHash reports whether ranks are derived from a hash of the node's
	// identity rather than read from a stored field.
	UseHash() bool
}

// StoredRank derives ranks from a field the caller stores in each node
// (ZTREE_RANK_TYPE<T>): UseHash is false, so a rank source must supply its
// own values rather than hashing.
type StoredRank struct{}

// UseHash implements Options.
func (StoredRank) UseHash() bool { return false }

// HashedRank derives ranks from a hash of the node's key
// (ZTREE_USE_HASH): UseHash is true.
type HashedRank struct{}

// UseHash implements Options.
func (HashedRank) UseHash() bool { return true }

// Universalize applies h = (hash * coefficient) mod modulus, the
// ZTREE_RANK_HASH_UNIVERSALIZE_COEFFICIENT/_MODUL pairing -- both
// parameters of a universal hash family, used to decorrelate a
// poor-quality key hash from adversarial input patterns. modulus must be
// nonzero.
func Universalize(hash, coefficient, modulus uint64) uint64 {
	return (hash * coefficient) % modulus
}

// Rank derives a zip-tree rank for key under HashedRank: a 64-bit hash of
// key's formatted byte representation, passed through [Universalize] when
// coefficient and modulus are both nonzero, and otherwise returned as-is.
func Rank[K cmp.Ordered](key K, coefficient, modulus uint64) uint64 {
	h := xxhash.Sum64(keyBytes(key))

	if coefficient != 0 && modulus != 0 {
		return Universalize(h, coefficient, modulus)
	}

	return h
}

func keyBytes[K cmp.Ordered](key K) []byte {
	return []byte(fmt.Sprint(key))
}
