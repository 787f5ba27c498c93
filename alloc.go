package megahal

// Allocator supplies fresh trie nodes, mirroring the original
// implementation's ctx->alloc indirection (libmegahal.c's
// megahal_ctx_init allocator hooks). Embedders that want to pool nodes
// or track memory usage can supply their own; NewModel uses
// defaultAllocator when none is given.
//
// NewModelWithAllocator takes the two roots from the Allocator and
// LoadWithAllocator takes every node it reads from it. Children
// created while learning (node.findOrInsertChild) are allocated with
// newNode directly and do not pass through the Allocator.
type Allocator interface {
	// NewNode returns a freshly zeroed, childless node.
	NewNode() (*node, error)

	// Free releases a node this Allocator produced. Nothing in this
	// package calls Free; a Model keeps all of its nodes for as long
	// as it is in use.
	Free(n *node)
}

// defaultAllocator allocates nodes straight from the Go heap and lets
// the garbage collector reclaim them; Free is a no-op.
type defaultAllocator struct{}

func (defaultAllocator) NewNode() (*node, error) {
	return newNode(SymbolError), nil
}

func (defaultAllocator) Free(*node) {}
