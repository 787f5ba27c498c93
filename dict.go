package megahal

import "log"

// Dictionary is a bijection between words and 16-bit SymbolIds, plus
// an auxiliary ordering kept sorted (case-insensitively) across
// inserts so lookups are a binary search rather than a linear scan.
// It doubles as the package's membership-set type: the keyword set,
// and the ban/aux word lists, are all Dictionaries used only for
// Find/Add, never for the id they return.
//
// Must be constructed with NewDictionary so SymbolError and SymbolFin
// are populated at ids 0 and 1, exactly as every on-disk Dictionary
// has them.
type Dictionary struct {
	words [][]byte   // id -> word bytes, in insertion order
	order []SymbolId // ids, sorted ascending by word under wordCompare
}

// NewDictionary returns an empty Dictionary with the two sentinel
// words pre-registered at ids 0 and 1.
func NewDictionary() *Dictionary {
	d := &Dictionary{}
	d.words = append(d.words, []byte(symbolErrorWord), []byte(symbolFinWord))
	d.order = []SymbolId{SymbolError, SymbolFin}
	if wordCompare(d.words[SymbolFin], d.words[SymbolError]) < 0 {
		d.order[0], d.order[1] = SymbolFin, SymbolError
	}
	return d
}

// Len returns the number of distinct words, including the two
// sentinels.
func (d *Dictionary) Len() int { return len(d.words) }

// Word returns the bytes registered for id. The caller must not
// modify the returned slice.
func (d *Dictionary) Word(id SymbolId) []byte { return d.words[id] }

// search returns the position of word in the sorted order array and
// whether it was found. When not found, idx is the insertion point
// that keeps order sorted.
func (d *Dictionary) search(word []byte) (idx int, found bool) {
	lo, hi := 0, len(d.order)
	for lo < hi {
		mid := lo + (hi-lo)/2
		c := wordCompare(d.words[d.order[mid]], word)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// Find looks up word and returns its SymbolId, or SymbolError if it
// is not known to the dictionary.
func (d *Dictionary) Find(word []byte) SymbolId {
	if idx, found := d.search(word); found {
		return d.order[idx]
	}
	return SymbolError
}

// Add looks up word, returning its existing id if known. Otherwise it
// registers word under a freshly assigned id (size, in insertion
// order) and returns that. Words longer than MaxWordLen are silently
// truncated, matching the on-disk format's single-byte length field.
// Add fails with a CapacityError once the dictionary already holds
// MaxDictionarySize words.
func (d *Dictionary) Add(word []byte) (SymbolId, error) {
	if len(word) > MaxWordLen {
		word = word[:MaxWordLen]
	}
	if idx, found := d.search(word); found {
		return d.order[idx], nil
	} else {
		if len(d.words) >= MaxDictionarySize {
			log.Printf("dictionary: refusing %q, already holds the maximum %d words", word, MaxDictionarySize)
			return SymbolError, newError(CapacityError, "dictionary is full", nil)
		}
		id := SymbolId(len(d.words))
		owned := make([]byte, len(word))
		copy(owned, word)
		d.words = append(d.words, owned)
		d.order = append(d.order, SymbolId(0))
		copy(d.order[idx+1:], d.order[idx:len(d.order)-1])
		d.order[idx] = id
		return id, nil
	}
}

// Clear drops all entries, including the sentinels. Callers that want
// a fresh, usable Dictionary should call NewDictionary instead.
func (d *Dictionary) Clear() {
	d.words = nil
	d.order = nil
}
