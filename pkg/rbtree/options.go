// Package rbtree implements an intrusive red-black tree: callers embed a
// [Header] in their own entity, link it into a [Tree] by pointer, and keep
// the entity alive until it is removed. The tree never allocates or frees
// node storage.
//
// Behavioral variants that in a template-based language would be compile-time
// flags are expressed here as a zero-sized type parameter implementing
// [Options]. Each concrete Options type monomorphizes a distinct [Tree]
// instantiation, so the duplicate-handling and size-tracking branches below
// are resolved by the compiler rather than by a runtime flag check.
package rbtree

// Options selects the compile-time behavior of a Tree. Implementations are
// zero-sized types; their methods are called on the zero value and are
// expected to be constant-folded.
type Options interface {
	// Multiple reports whether duplicate (equal-comparing) keys are admitted.
	// When false, the equality chain is never touched and Insert of an
	// already-present key is a no-op.
	Multiple() bool

	// OrderQueries reports whether O(1) order-between queries over the
	// equality chain are supported. Meaningful only when Multiple is true.
	OrderQueries() bool

	// ConstantTimeSize reports whether the tree maintains a running element
	// count for O(1) Len(), as opposed to computing it by traversal.
	ConstantTimeSize() bool

	// CompressColor reports whether the node color should be colocated with
	// the parent link for cache locality. Unlike the original C++ trick of
	// stealing the low bit of the parent pointer, Go's precise garbage
	// collector cannot tolerate a tagged pointer in a scanned field, so this
	// is purely a struct-layout hint (see Header) rather than a bit-packing
	// scheme; it changes nothing about correctness.
	CompressColor() bool
}

// Default admits duplicates and tracks size in O(1), but does not support
// order queries or color compression. It mirrors the library's own default.
type Default struct{}

// Multiple implements Options.
func (Default) Multiple() bool { return true }

// OrderQueries implements Options.
func (Default) OrderQueries() bool { return false }

// ConstantTimeSize implements Options.
func (Default) ConstantTimeSize() bool { return true }

// CompressColor implements Options.
func (Default) CompressColor() bool { return false }

// Unique disables duplicate keys entirely: Insert of an already-present key
// is a no-op and the equality chain machinery never runs.
type Unique struct{}

// Multiple implements Options.
func (Unique) Multiple() bool { return false }

// OrderQueries implements Options.
func (Unique) OrderQueries() bool { return false }

// ConstantTimeSize implements Options.
func (Unique) ConstantTimeSize() bool { return true }

// CompressColor implements Options.
func (Unique) CompressColor() bool { return false }

// MultipleOrdered admits duplicates, tracks size in O(1), and supports
// order-between queries over the equality chain.
type MultipleOrdered struct{}

// Multiple implements Options.
func (MultipleOrdered) Multiple() bool { return true }

// OrderQueries implements Options.
func (MultipleOrdered) OrderQueries() bool { return true }

// ConstantTimeSize implements Options.
func (MultipleOrdered) ConstantTimeSize() bool { return true }

// CompressColor implements Options.
func (MultipleOrdered) CompressColor() bool { return false }

// CompactUnique disables duplicates and size tracking, and requests color
// compression. Use this when nodes are small and allocated in bulk, and
// neither Len() nor duplicate keys are needed.
type CompactUnique struct{}

// Multiple implements Options.
func (CompactUnique) Multiple() bool { return false }

// OrderQueries implements Options.
func (CompactUnique) OrderQueries() bool { return false }

// ConstantTimeSize implements Options.
func (CompactUnique) ConstantTimeSize() bool { return false }

// CompressColor implements Options.
func (CompactUnique) CompressColor() bool { return true }
