package wordlist

import (
	"strings"
	"testing"
)

func TestLoadBan(t *testing.T) {
	set, err := LoadBan(strings.NewReader("# banned words\nthe\n\nTHE\n  and  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Find([]byte("the")) == 0 {
		t.Errorf("expected %q to be in the set", "the")
	}
	if set.Find([]byte("THE")) == 0 {
		t.Errorf("expected case-insensitive match for %q", "THE")
	}
	if set.Find([]byte("and")) == 0 {
		t.Errorf("expected %q to be in the set", "and")
	}
	if set.Find([]byte("cat")) != 0 {
		t.Errorf("did not expect %q in the set", "cat")
	}
}

func TestLoadAux(t *testing.T) {
	set, err := LoadAux(strings.NewReader("a\nan\n#comment\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Find([]byte("a")) == 0 || set.Find([]byte("an")) == 0 {
		t.Errorf("expected both aux words present")
	}
}

func TestLoadSwap(t *testing.T) {
	swap, err := LoadSwap(strings.NewReader("kitty cat\n# comment line\nme you\nme myself\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := swap.Lookup([]byte("me"))
	if len(got) != 2 || string(got[0]) != "you" || string(got[1]) != "myself" {
		t.Errorf("expected [you myself] for repeated swap key, got %v", stringsOf(got))
	}
	got = swap.Lookup([]byte("kitty"))
	if len(got) != 1 || string(got[0]) != "cat" {
		t.Errorf("expected [cat], got %v", stringsOf(got))
	}
}

func TestLoadSwapBadLine(t *testing.T) {
	if _, err := LoadSwap(strings.NewReader("onlyone\n")); err == nil {
		t.Errorf("expected an error for a malformed swap line")
	}
}

func stringsOf(words [][]byte) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = string(w)
	}
	return out
}
