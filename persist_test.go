package megahal

import (
	"bytes"
	"testing"
)

func trainedModel(t *testing.T, order int, utterance string, times int) *Model {
	t.Helper()
	m, err := NewModel(order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < times; i++ {
		if err := m.Learn(Tokenize([]byte(utterance))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := trainedModel(t, 2, "THE CAT SAT ON THE MAT.", 3)

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	loaded, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}

	if loaded.Order != m.Order {
		t.Errorf("expected order %d; got %d", m.Order, loaded.Order)
	}
	if loaded.Dict.Len() != m.Dict.Len() {
		t.Errorf("expected dictionary size %d; got %d", m.Dict.Len(), loaded.Dict.Len())
	}
	for id := SymbolId(0); int(id) < m.Dict.Len(); id++ {
		if !bytes.Equal(loaded.Dict.Word(id), m.Dict.Word(id)) {
			t.Errorf("word mismatch at id %d: %q vs %q", id, m.Dict.Word(id), loaded.Dict.Word(id))
		}
	}
	assertTreeEqual(t, "forward", m.Forward, loaded.Forward)
	assertTreeEqual(t, "backward", m.Backward, loaded.Backward)
}

func TestSaveIsDeterministic(t *testing.T) {
	m := trainedModel(t, 2, "THE CAT SAT ON THE MAT.", 3)

	var buf1, buf2 bytes.Buffer
	if err := m.Save(&buf1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Save(&buf2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Errorf("expected two saves of the same model to produce identical bytes")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte("NotAMegaHALv8Brain"))); err == nil {
		t.Errorf("expected an error for a bad magic cookie")
	}
}

func TestLoadRejectsOutOfRangeOrder(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(brainMagic)
	buf.WriteByte(0) // order 0 is below MinOrder
	if _, err := Load(bytes.NewReader(buf.Bytes())); err == nil {
		t.Errorf("expected an error for an out-of-range order")
	}
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	m := trainedModel(t, 2, "THE CAT SAT ON THE MAT.", 1)
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	truncated := buf.Bytes()[:len(buf.Bytes())/2]
	if _, err := Load(bytes.NewReader(truncated)); err == nil {
		t.Errorf("expected an error for a truncated brain file")
	}
}

func TestLoadDictionaryRejectsHighBitSize(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x00, 0x80}) // size 0x80000000, little-endian
	if _, err := loadDictionary(&buf); err == nil {
		t.Errorf("expected an error for a dictionary size with the high bit set")
	}
}

func assertTreeEqual(t *testing.T, label string, a, b *node) {
	t.Helper()
	if a.symbol != b.symbol || a.count != b.count || a.usage != b.usage {
		t.Fatalf("%s: node mismatch: %+v vs %+v", label, a, b)
	}
	if len(a.children) != len(b.children) {
		t.Fatalf("%s: child count mismatch: %d vs %d", label, len(a.children), len(b.children))
	}
	for i := range a.children {
		assertTreeEqual(t, label, a.children[i], b.children[i])
	}
}
