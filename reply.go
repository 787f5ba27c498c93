package megahal

import (
	"math"
	"time"
)

var (
	replyNothingLearned = []byte("I don't know enough to answer you yet!")
	replySpeechless     = []byte("I am utterly speechless!")
)

// Engine ties a Model to the ban/aux/swap lists and PRNG that
// generating a reply needs, plus the used_key flag babble toggles
// mid-reply. One Engine is a single conversational "personality";
// callers wanting several independent speakers over one shared Model
// construct one Engine per speaker.
type Engine struct {
	Model    *Model
	Keywords Keywords
	Rand     Rand
	Timeout  time.Duration

	usedKey bool
}

// NewEngine returns an Engine over model with empty ban/aux/swap
// lists, a wall-clock-seeded Rand, and the default reply timeout.
func NewEngine(model *Model) *Engine {
	return &Engine{
		Model: model,
		Keywords: Keywords{
			Ban:  NewWordSet(),
			Aux:  NewWordSet(),
			Swap: NewSwapList(),
		},
		Rand:    NewRand(),
		Timeout: DefaultTimeout * time.Second,
	}
}

// Learn tokenizes text and trains the Model on it.
func (e *Engine) Learn(text string) error {
	buf := []byte(text)
	Upper(buf)
	words := Tokenize(buf)
	if words == nil {
		return nil
	}
	return e.Model.Learn(words)
}

// Reply tokenizes text and returns the best reply the Engine can
// produce within its Timeout, rendered as a single capitalized
// string.
func (e *Engine) Reply(text string) string {
	buf := []byte(text)
	Upper(buf)
	words := Tokenize(buf)
	keys := e.Keywords.Extract(e.Model.Dict, words)

	output := replyNothingLearned

	blank := e.babbleReply(NewDictionary())
	if dissimilar(words, blank) {
		output = render(blank)
	}

	maxSurprise := float32(-1.0)
	deadline := time.Now().Add(e.Timeout)
	for {
		candidate := e.babbleReply(keys)
		surprise := e.evaluateReply(keys, candidate)
		if surprise > maxSurprise && dissimilar(words, candidate) {
			maxSurprise = surprise
			output = render(candidate)
		}
		if !time.Now().Before(deadline) {
			break
		}
	}

	out := make([]byte, len(output))
	copy(out, output)
	capitalize(out)
	return string(out)
}

// babbleReply generates one candidate reply: forward from a seed
// symbol chosen by seed(), then backward to fill in what came before
// it, each direction driven by babble().
func (e *Engine) babbleReply(keys *Dictionary) [][]byte {
	var reply [][]byte

	e.usedKey = false
	ctx := e.Model.newContext(e.Model.Forward)
	start := true
	for {
		var symbol SymbolId
		if start {
			symbol = e.seed(ctx, keys)
		} else {
			symbol = e.babble(ctx, keys, reply)
		}
		if symbol == SymbolError || symbol == SymbolFin {
			break
		}
		start = false
		reply = append(reply, e.Model.Dict.Word(symbol))
		updateContext(ctx, symbol)
	}

	ctx = e.Model.newContext(e.Model.Backward)
	limit := len(reply) - 1
	if limit > e.Model.Order {
		limit = e.Model.Order
	}
	for i := limit; i >= 0; i-- {
		symbol := e.Model.Dict.Find(reply[i])
		updateContext(ctx, symbol)
	}

	for {
		symbol := e.babble(ctx, keys, reply)
		if symbol == SymbolError || symbol == SymbolFin {
			break
		}
		reply = append([][]byte{e.Model.Dict.Word(symbol)}, reply...)
		updateContext(ctx, symbol)
	}

	return reply
}

// seed picks the first symbol of a reply: a keyword present in the
// model and absent from the auxiliary list if one can be found,
// otherwise a uniformly random child of the root context.
func (e *Engine) seed(ctx []*node, keys *Dictionary) SymbolId {
	root := ctx[0]
	var symbol SymbolId
	if len(root.children) == 0 {
		symbol = SymbolError
	} else {
		symbol = root.children[e.Rand.Intn(len(root.children))].symbol
	}

	if keys.Len() <= len(sentinelWords) {
		return symbol
	}

	words := dictWords(keys)
	i := e.Rand.Intn(len(words))
	stop := i
	for {
		w := words[i]
		if e.Model.Dict.Find(w) != SymbolError && !contains(e.Keywords.Aux, w) {
			return e.Model.Dict.Find(w)
		}
		i++
		if i == len(words) {
			i = 0
		}
		if i == stop {
			return symbol
		}
	}
}

// babble extends the reply by one symbol, walking the longest
// non-null context cursor's children in a weighted cycle: it prefers
// a keyword (an auxiliary keyword only once a normal one has already
// been used this reply) that isn't already present in words.
func (e *Engine) babble(ctx []*node, keys *Dictionary, words [][]byte) SymbolId {
	var n *node
	for i := 0; i <= e.Model.Order; i++ {
		if ctx[i] != nil {
			n = ctx[i]
		}
	}
	if n == nil || len(n.children) == 0 {
		return SymbolError
	}

	usage := int(n.usage)
	if usage == 0 {
		usage = 1
	}
	i := e.Rand.Intn(len(n.children))
	count := e.Rand.Intn(usage)
	var symbol SymbolId
	for count >= 0 {
		child := n.children[i]
		symbol = child.symbol
		word := e.Model.Dict.Word(symbol)

		if contains(keys, word) &&
			(e.usedKey || !contains(e.Keywords.Aux, word)) &&
			!wordIn(words, word) {
			e.usedKey = true
			break
		}

		count -= int(child.count)
		if i >= len(n.children)-1 {
			i = 0
		} else {
			i++
		}
	}

	return symbol
}

func wordIn(words [][]byte, word []byte) bool {
	for _, w := range words {
		if wordEqual(w, word) {
			return true
		}
	}
	return false
}

// dissimilar reports whether words1 and words2 differ in length or in
// any word, used to reject a candidate reply that just echoes the
// input back.
func dissimilar(words1, words2 [][]byte) bool {
	if len(words1) != len(words2) {
		return true
	}
	for i := range words1 {
		if !wordEqual(words1[i], words2[i]) {
			return true
		}
	}
	return false
}

// evaluateReply scores a candidate reply by how surprising its
// keyword symbols are under the model, walking the reply forward
// through the forward trie and backward through the backward trie and
// summing -log(average per-order probability) at each keyword
// position. The raw entropy is dampened for longer replies so a long
// reply's larger symbol count doesn't dominate a short, sharply
// keyworded one.
func (e *Engine) evaluateReply(keys *Dictionary, words [][]byte) float32 {
	if len(words) == 0 {
		return 0
	}

	entropy := float32(0)
	num := 0

	score := func(ctx []*node, order func(int) []byte, n int) {
		for i := 0; i < n; i++ {
			word := order(i)
			symbol := e.Model.Dict.Find(word)
			if contains(keys, word) {
				var probability float32
				count := 0
				for j := 0; j < e.Model.Order; j++ {
					if ctx[j] == nil {
						continue
					}
					probability += float32(ctx[j].childCount(symbol)) / float32(ctx[j].usage)
					count++
				}
				if count > 0 {
					entropy -= float32(math.Log(float64(probability / float32(count))))
				}
				num++
			}
			updateContext(ctx, symbol)
		}
	}

	ctx := e.Model.newContext(e.Model.Forward)
	score(ctx, func(i int) []byte { return words[i] }, len(words))

	ctx = e.Model.newContext(e.Model.Backward)
	score(ctx, func(i int) []byte { return words[len(words)-1-i] }, len(words))

	if num >= 8 {
		entropy /= float32(math.Sqrt(float64(num - 1)))
	}
	if num >= 16 {
		entropy /= float32(num)
	}

	return entropy
}

// dictWords returns the words registered in d after the sentinels, in
// insertion order; seed uses it to index into the keyword set.
func dictWords(d *Dictionary) [][]byte {
	return d.words[len(sentinelWords):]
}

// render concatenates a reply's words. The tokenizer keeps whitespace
// and punctuation as their own words, so plain concatenation
// reproduces normal spacing without a separator.
func render(words [][]byte) []byte {
	if len(words) == 0 {
		return append([]byte(nil), replySpeechless...)
	}
	var out []byte
	for _, w := range words {
		out = append(out, w...)
	}
	return out
}

// capitalize upper-cases the first letter of a sentence and
// lower-cases the rest, re-triggering on the next letter after any
// run of "!.?" followed by whitespace.
func capitalize(s []byte) {
	start := true
	for i := range s {
		if isAlphaByte(s[i]) {
			if start {
				s[i] = upperByte(s[i])
			} else {
				s[i] = foldByte(s[i])
			}
			start = false
		}

		if i > 0 && isSentencePunct(s[i-1]) && isSpaceByte(s[i]) {
			start = true
		}
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
}
