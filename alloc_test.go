package megahal

import "testing"

type countingAllocator struct {
	allocs int
	frees  int
}

func (a *countingAllocator) NewNode() (*node, error) {
	a.allocs++
	return newNode(SymbolError), nil
}

func (a *countingAllocator) Free(n *node) { a.frees++ }

func TestNewModelWithAllocatorUsesInjectedAllocator(t *testing.T) {
	alloc := &countingAllocator{}
	m, err := NewModelWithAllocator(2, alloc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alloc.allocs != 2 {
		t.Errorf("expected exactly 2 allocations for the forward and backward roots; got %d", alloc.allocs)
	}
	if m.Forward == nil || m.Backward == nil {
		t.Errorf("expected both roots to be set")
	}
}

type failingAllocator struct{}

func (failingAllocator) NewNode() (*node, error) {
	return nil, newError(AllocError, "out of nodes", nil)
}

func (failingAllocator) Free(*node) {}

func TestNewModelWithAllocatorPropagatesFailure(t *testing.T) {
	if _, err := NewModelWithAllocator(2, failingAllocator{}); err == nil {
		t.Errorf("expected an error when the allocator refuses to allocate")
	}
}
