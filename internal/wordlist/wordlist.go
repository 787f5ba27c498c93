// Package wordlist loads the ban, auxiliary, and swap lists the core
// megahal package treats as already-built: line-oriented text files
// with '#'-prefixed comments, one word per line (ban/aux) or two
// whitespace-separated words per line (swap).
//
// The grammar is simple enough that a regular bufio.Scanner would do,
// but this repo's teacher (kho/fslm) parses its line-oriented input
// format (ARPA) as an iteratee over github.com/kho/stream's EnumRead,
// so the loaders here follow the same shape at a much smaller scale.
package wordlist

import (
	"bytes"
	"io"

	"github.com/kho/easy"
	"github.com/kho/megahal"
	"github.com/kho/stream"
)

// LoadBan reads a ban-word list from r: one case-insensitive word per
// non-comment line.
func LoadBan(r io.Reader) (megahal.WordSet, error) { return loadWordSet(r) }

// LoadBanFile opens path and calls LoadBan on its contents.
func LoadBanFile(path string) (megahal.WordSet, error) { return loadWordSetFile(path) }

// LoadAux reads an auxiliary-word list; same grammar as LoadBan.
func LoadAux(r io.Reader) (megahal.WordSet, error) { return loadWordSet(r) }

// LoadAuxFile opens path and calls LoadAux on its contents.
func LoadAuxFile(path string) (megahal.WordSet, error) { return loadWordSetFile(path) }

func loadWordSet(r io.Reader) (megahal.WordSet, error) {
	set := megahal.NewWordSet()
	if err := runLines(r, func(line []byte) error {
		_, err := set.Add(line)
		return err
	}); err != nil {
		return nil, err
	}
	return set, nil
}

func loadWordSetFile(path string) (megahal.WordSet, error) {
	f, err := easy.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadWordSet(f)
}

// LoadSwap reads a swap list: two whitespace-separated words per
// non-comment line, "from" then "to". A "from" appearing on more than
// one line registers more than one substitution, exactly as
// megahal_swaplist_add_swap's append-only list does; SwapList.Add
// preserves that.
func LoadSwap(r io.Reader) (*megahal.SwapList, error) {
	swap := megahal.NewSwapList()
	err := runLines(r, func(line []byte) error {
		from, rest := token(line)
		to, rest := token(rest)
		if len(from) == 0 || len(to) == 0 || len(rest) != 0 {
			return stream.ErrExpect(`"from to" pair`)
		}
		swap.Add(from, to)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return swap, nil
}

// LoadSwapFile opens path and calls LoadSwap on its contents.
func LoadSwapFile(path string) (*megahal.SwapList, error) {
	f, err := easy.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSwap(f)
}

// lineConsumer is an Iteratee that hands every significant line (with
// comments and blanks already stripped by lineSplit) to consume, and
// never produces a final-position error of its own: an empty or
// comment-only file is a valid, if useless, list.
type lineConsumer struct {
	consume func(line []byte) error
}

func (it lineConsumer) Final() error { return nil }

func (it lineConsumer) Next(line []byte) (stream.Iteratee, bool, error) {
	if err := it.consume(line); err != nil {
		return nil, false, err
	}
	return it, true, nil
}

func runLines(r io.Reader, consume func(line []byte) error) error {
	return stream.Run(stream.EnumRead(r, lineSplit), lineConsumer{consume})
}

// token splits off the first whitespace-delimited token of line,
// returning it and whatever follows with leading whitespace trimmed.
func token(line []byte) ([]byte, []byte) {
	i := 0
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	tok := line[:i]
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return tok, line[i:]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// lineSplit is a bufio.SplitFunc, modeled on kho/fslm's arpa.go
// lineSplit, extended to treat blank lines and lines starting with
// '#' as insignificant rather than ever emitting them as tokens.
func lineSplit(data []byte, atEOF bool) (advance int, token []byte, err error) {
	pos := 0
	for {
		for pos < len(data) && (data[pos] == '\n' || isSpace(data[pos])) {
			pos++
		}
		if pos >= len(data) {
			if atEOF {
				return len(data), nil, nil
			}
			return 0, nil, nil
		}

		nl := bytes.IndexByte(data[pos:], '\n')
		var end, next int
		if nl < 0 {
			if !atEOF {
				return 0, nil, nil
			}
			end, next = len(data), len(data)
		} else {
			end, next = pos+nl, pos+nl+1
		}

		line := data[pos:end]
		for len(line) > 0 && isSpace(line[len(line)-1]) {
			line = line[:len(line)-1]
		}

		if len(line) == 0 || line[0] == '#' {
			pos = next
			continue
		}
		return next, line, nil
	}
}
