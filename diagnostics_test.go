package megahal

import "testing"

func TestDictionaryCompressionEmpty(t *testing.T) {
	report := DictionaryCompression(NewDictionary())
	if report.WordCount != 2 {
		t.Errorf("expected the two sentinels to be counted; got %d", report.WordCount)
	}
}

func TestDictionaryCompressionTrainedVocab(t *testing.T) {
	m := trainedModel(t, 2, "THE CAT SAT ON THE MAT. THE CAT SAT ON THE MAT AGAIN.", 1)
	report := DictionaryCompression(m.Dict)

	if report.WordCount != m.Dict.Len() {
		t.Errorf("expected WordCount %d; got %d", m.Dict.Len(), report.WordCount)
	}
	if report.RawBytes <= 0 {
		t.Errorf("expected positive RawBytes; got %d", report.RawBytes)
	}
}
