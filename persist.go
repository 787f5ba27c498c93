package megahal

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Save writes m to w in the on-disk brain format: the magic cookie,
// the order, the forward tree, the backward tree, then the shared
// dictionary. Every multi-byte field is little-endian.
//
// Unlike a flat-array encoding produced by pointer-punning a node
// struct straight to disk, Save walks the tree explicitly node by
// node: a persisted brain must outlive the process that wrote it, and
// a node struct's slice header has no meaning once reloaded.
func (m *Model) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(brainMagic); err != nil {
		return newError(IoError, "writing magic", err)
	}
	if err := bw.WriteByte(byte(m.Order)); err != nil {
		return newError(IoError, "writing order", err)
	}
	if err := saveTree(bw, m.Forward); err != nil {
		return err
	}
	if err := saveTree(bw, m.Backward); err != nil {
		return err
	}
	if err := saveDictionary(bw, m.Dict); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return newError(IoError, "flushing brain", err)
	}
	return nil
}

func saveTree(w *bufio.Writer, n *node) error {
	if len(n.children) > 0xffff {
		return newError(FormatError, "branch count exceeds 16 bits", nil)
	}
	if _, err := w.Write(encodeNodeHeader(n)); err != nil {
		return newError(IoError, "writing tree node", err)
	}
	for _, child := range n.children {
		if err := saveTree(w, child); err != nil {
			return err
		}
	}
	return nil
}

func encodeNodeHeader(n *node) []byte {
	buf := make([]byte, 10)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(n.symbol))
	binary.LittleEndian.PutUint32(buf[2:6], n.usage)
	binary.LittleEndian.PutUint16(buf[6:8], n.count)
	binary.LittleEndian.PutUint16(buf[8:10], uint16(len(n.children)))
	return buf
}

func saveDictionary(w *bufio.Writer, d *Dictionary) error {
	var sizeBuf [4]byte
	binary.LittleEndian.PutUint32(sizeBuf[:], uint32(len(d.words)))
	if _, err := w.Write(sizeBuf[:]); err != nil {
		return newError(IoError, "writing dictionary size", err)
	}
	for _, word := range d.words {
		if err := saveWord(w, word); err != nil {
			return err
		}
	}
	return nil
}

func saveWord(w *bufio.Writer, word []byte) error {
	if len(word) > MaxWordLen {
		word = word[:MaxWordLen]
	}
	if err := w.WriteByte(byte(len(word))); err != nil {
		return newError(IoError, "writing word length", err)
	}
	if _, err := w.Write(word); err != nil {
		return newError(IoError, "writing word bytes", err)
	}
	return nil
}

// Load reads a brain previously written by Save. It returns a
// FormatError if the magic cookie doesn't match, the order is out of
// range, or the tree is too deep to be genuine (a defense against a
// truncated or adversarial file, not a limit the format itself
// imposes).
func Load(r io.Reader) (*Model, error) {
	return LoadWithAllocator(r, defaultAllocator{})
}

// LoadWithAllocator is Load with an injectable node Allocator.
func LoadWithAllocator(r io.Reader, alloc Allocator) (*Model, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(brainMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, newError(IoError, "reading magic", err)
	}
	if string(magic) != brainMagic {
		return nil, newError(FormatError, "bad magic cookie", nil)
	}

	orderByte, err := br.ReadByte()
	if err != nil {
		return nil, newError(IoError, "reading order", err)
	}
	order := int(orderByte)
	if order < MinOrder || order > MaxOrder {
		return nil, newError(FormatError, "order out of range", nil)
	}

	forward, err := loadTree(br, alloc, 0)
	if err != nil {
		return nil, err
	}
	backward, err := loadTree(br, alloc, 0)
	if err != nil {
		return nil, err
	}
	dict, err := loadDictionary(br)
	if err != nil {
		return nil, err
	}

	return &Model{
		Order:    order,
		Dict:     dict,
		Forward:  forward,
		Backward: backward,
		alloc:    alloc,
	}, nil
}

func loadTree(r io.Reader, alloc Allocator, depth int) (*node, error) {
	if depth > maxTreeDepth {
		return nil, newError(FormatError, "tree exceeds maximum depth", nil)
	}

	var hdr [10]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, newError(IoError, "reading tree node", err)
	}

	n, err := alloc.NewNode()
	if err != nil {
		return nil, newError(AllocError, "allocating tree node", err)
	}
	n.symbol = SymbolId(binary.LittleEndian.Uint16(hdr[0:2]))
	n.usage = binary.LittleEndian.Uint32(hdr[2:6])
	n.count = binary.LittleEndian.Uint16(hdr[6:8])
	branch := int(binary.LittleEndian.Uint16(hdr[8:10]))

	if branch > 0 {
		n.children = make([]*node, branch)
		for i := 0; i < branch; i++ {
			child, err := loadTree(r, alloc, depth+1)
			if err != nil {
				return nil, err
			}
			n.children[i] = child
		}
	}

	return n, nil
}

func loadDictionary(r io.Reader) (*Dictionary, error) {
	var sizeBuf [4]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return nil, newError(IoError, "reading dictionary size", err)
	}
	size := binary.LittleEndian.Uint32(sizeBuf[:])
	if size&0x80000000 != 0 {
		return nil, newError(FormatError, "dictionary size has high bit set", nil)
	}

	d := NewDictionary()
	d.words = d.words[:0]
	d.order = d.order[:0]

	for i := uint32(0); i < size; i++ {
		word, err := loadWord(r)
		if err != nil {
			return nil, err
		}
		if _, err := d.Add(word); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func loadWord(r io.Reader) ([]byte, error) {
	var lenBuf [1]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, newError(IoError, "reading word length", err)
	}
	n := int(lenBuf[0])
	word := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, word); err != nil {
			return nil, newError(IoError, "reading word bytes", err)
		}
	}
	return word, nil
}
