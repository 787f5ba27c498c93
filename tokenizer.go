package megahal

// Tokenize splits input into words the way the original implementation's
// make_words does: a run of letters, a run of digits, and a run of any
// other single byte-class are each one word, with an apostrophe inside
// a letter run (like the one in "it's") kept attached rather than
// splitting the run. The final word is forced to end in sentence
// punctuation: a synthetic "." word is appended after a final
// alphanumeric word, and a final non-alphanumeric word that doesn't
// end in '!', '.' or '?' is replaced by ".".
//
// Tokenize returns nil for empty input; callers should treat a nil
// result as "nothing to learn or reply to" rather than an error.
func Tokenize(input []byte) [][]byte {
	if len(input) == 0 {
		return nil
	}

	var words [][]byte
	start := 0
	for pos := 1; pos <= len(input); pos++ {
		if isBoundary(input, start, pos) {
			words = append(words, input[start:pos])
			start = pos
		}
	}

	last := words[len(words)-1]
	if isAlnumByte(last[0]) {
		words = append(words, []byte("."))
	} else if !isSentencePunct(last[len(last)-1]) {
		words[len(words)-1] = []byte(".")
	}

	return words
}

func isSentencePunct(b byte) bool {
	return b == '!' || b == '.' || b == '?'
}

// isBoundary reports whether a word ends just before pos, given the
// word currently in progress started at start. Both start and pos are
// byte offsets into the same underlying slice s.
func isBoundary(s []byte, start, pos int) bool {
	if pos == start {
		return false
	}
	if pos == len(s) {
		return true
	}

	if s[pos] == '\'' && isAlphaByte(s[pos-1]) && pos+1 < len(s) && isAlphaByte(s[pos+1]) {
		return false
	}
	if pos-start > 1 && s[pos-1] == '\'' && isAlphaByte(s[pos-2]) && isAlphaByte(s[pos]) {
		return false
	}

	if isAlphaByte(s[pos]) && !isAlphaByte(s[pos-1]) {
		return true
	}
	if !isAlphaByte(s[pos]) && isAlphaByte(s[pos-1]) {
		return true
	}
	if isDigitByte(s[pos]) != isDigitByte(s[pos-1]) {
		return true
	}

	return false
}
