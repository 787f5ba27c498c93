package megahal

// Model is a pair of tries — forward and backward — sharing one
// Dictionary, trained on the same symbol multiset but walked from
// opposite ends: forward predicts what comes next, backward predicts
// what came before. Order bounds how many symbols of context either
// trie remembers.
type Model struct {
	Order    int
	Dict     *Dictionary
	Forward  *node
	Backward *node
	alloc    Allocator
}

// NewModel returns an empty Model of the given order (MinOrder..MaxOrder)
// using the default Allocator.
func NewModel(order int) (*Model, error) {
	return NewModelWithAllocator(order, defaultAllocator{})
}

// NewModelWithAllocator is NewModel with an injectable node Allocator,
// preserving the original implementation's embeddability story
// without a global allocator singleton.
func NewModelWithAllocator(order int, alloc Allocator) (*Model, error) {
	if order < MinOrder || order > MaxOrder {
		return nil, newError(FormatError, "order out of range", nil)
	}
	root, err := alloc.NewNode()
	if err != nil {
		return nil, newError(AllocError, "allocating forward root", err)
	}
	back, err := alloc.NewNode()
	if err != nil {
		return nil, newError(AllocError, "allocating backward root", err)
	}
	return &Model{
		Order:    order,
		Dict:     NewDictionary(),
		Forward:  root,
		Backward: back,
		alloc:    alloc,
	}, nil
}

// newContext builds a fresh context window of length Order+2 pinned
// to root at depth 0, re-initialising all deeper cursors to null.
func (m *Model) newContext(root *node) []*node {
	ctx := make([]*node, m.Order+2)
	ctx[0] = root
	return ctx
}

// updateModel extends every non-null context cursor with symbol,
// inserting children as needed and bumping their counts. Deeper
// cursors are updated from shallower ones' value as of the start of
// this call: a break at depth k-1 freezes context[k] at its last
// value rather than nulling it outright, exactly as the source does
// (the freeze self-heals over subsequent calls as shallower levels
// recover). See spec's open questions on update_context.
func updateModel(ctx []*node, symbol SymbolId) {
	for k := len(ctx) - 1; k >= 1; k-- {
		if ctx[k-1] != nil {
			ctx[k] = ctx[k-1].addSymbol(symbol)
		}
	}
}

// updateContext is updateModel without insertion or counting: it
// walks the context forward by one symbol using only existing
// children, for use while rendering a reply against an already
// trained model.
func updateContext(ctx []*node, symbol SymbolId) {
	for k := len(ctx) - 1; k >= 1; k-- {
		if ctx[k-1] != nil {
			ctx[k] = ctx[k-1].findChild(symbol)
		}
	}
}

// Learn trains both tries on one utterance's words. Utterances with
// Order or fewer words are too short to form a full-order context and
// are silently skipped — this intentionally excludes very short
// inputs from training.
func (m *Model) Learn(words [][]byte) error {
	if len(words) <= m.Order {
		return nil
	}

	ctx := m.newContext(m.Forward)
	for _, w := range words {
		sym, err := m.Dict.Add(w)
		if err != nil {
			return err
		}
		updateModel(ctx, sym)
	}
	updateModel(ctx, SymbolFin)

	ctx = m.newContext(m.Backward)
	for i := len(words) - 1; i >= 0; i-- {
		sym := m.Dict.Find(words[i])
		updateModel(ctx, sym)
	}
	updateModel(ctx, SymbolFin)

	return nil
}
