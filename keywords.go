package megahal

// WordSet is a Dictionary used purely as a membership set: ban lists
// and auxiliary-keyword lists only ever need Find/Add, never the id
// Add assigns.
type WordSet = *Dictionary

// NewWordSet returns an empty membership set.
func NewWordSet() WordSet { return NewDictionary() }

// contains reports whether word was registered in the set.
func contains(set WordSet, word []byte) bool {
	return set.Find(word) != SymbolError
}

// swapPair is one entry of a SwapList: every occurrence of From in an
// utterance's words is replaced by To before keyword extraction.
type swapPair struct {
	From []byte
	To   []byte
}

// SwapList holds substitutions applied ahead of keyword extraction,
// such as mapping "me" to "you" so a question about the listener
// reads as a question about the speaker. Entries are kept in
// insertion order and a From value may appear more than once: unlike
// a map-backed implementation, every matching pair contributes its To
// value rather than only the first (or last) one registered.
type SwapList struct {
	pairs []swapPair
}

// NewSwapList returns an empty SwapList.
func NewSwapList() *SwapList {
	return &SwapList{}
}

// Add registers a from/to substitution.
func (s *SwapList) Add(from, to []byte) {
	f := make([]byte, len(from))
	copy(f, from)
	t := make([]byte, len(to))
	copy(t, to)
	s.pairs = append(s.pairs, swapPair{From: f, To: t})
}

// Lookup returns every To value registered against a From matching
// word, in the order they were added.
func (s *SwapList) Lookup(word []byte) [][]byte {
	var out [][]byte
	for _, p := range s.pairs {
		if wordEqual(p.From, word) {
			out = append(out, p.To)
		}
	}
	return out
}

// Keywords holds the context an Engine uses to steer reply
// generation: the extracted keyword set plus the ban and auxiliary
// word sets and swap list it was built from.
type Keywords struct {
	Ban  WordSet
	Aux  WordSet
	Swap *SwapList
}

// Extract builds the keyword Dictionary for one tokenized utterance,
// following the two-pass scheme: every word (after swap substitution)
// that is known to the model, starts with an alphanumeric byte, and
// is neither banned nor auxiliary becomes a keyword in the first
// pass. If that pass produced any keywords at all, a second pass adds
// the auxiliary words among the same input, again after swap
// substitution.
func (k *Keywords) Extract(dict *Dictionary, words [][]byte) *Dictionary {
	keys := NewDictionary()

	for _, w := range words {
		subs := k.Swap.Lookup(w)
		if len(subs) == 0 {
			k.addKey(keys, dict, w)
			continue
		}
		for _, s := range subs {
			k.addKey(keys, dict, s)
		}
	}

	if keys.Len() > len(sentinelWords) {
		for _, w := range words {
			subs := k.Swap.Lookup(w)
			if len(subs) == 0 {
				k.addAux(keys, dict, w)
				continue
			}
			for _, s := range subs {
				k.addAux(keys, dict, s)
			}
		}
	}

	return keys
}

// sentinelWords is the fixed set of words NewDictionary pre-registers,
// used to tell an empty keyword Dictionary apart from one that
// genuinely gained entries.
var sentinelWords = [...]SymbolId{SymbolError, SymbolFin}

func (k *Keywords) addKey(keys, dict *Dictionary, word []byte) {
	if dict.Find(word) == SymbolError {
		return
	}
	if len(word) == 0 || !isAlnumByte(word[0]) {
		return
	}
	if contains(k.Ban, word) {
		return
	}
	if contains(k.Aux, word) {
		return
	}
	keys.Add(word)
}

func (k *Keywords) addAux(keys, dict *Dictionary, word []byte) {
	if dict.Find(word) == SymbolError {
		return
	}
	if len(word) == 0 || !isAlnumByte(word[0]) {
		return
	}
	if !contains(k.Aux, word) {
		return
	}
	keys.Add(word)
}
