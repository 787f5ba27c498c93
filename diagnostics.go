package megahal

import "github.com/axiomhq/fsst"

// CompressionReport summarizes how well a trained dictionary's words
// compress under a static symbol table, as a rough proxy for how
// repetitive the vocabulary is. It is purely diagnostic: nothing here
// feeds back into the brain format Save and Load read and write.
type CompressionReport struct {
	WordCount       int
	RawBytes        int
	CompressedBytes int
	Ratio           float64
}

// DictionaryCompression trains an FSST symbol table on every word in
// the dictionary and reports the resulting compression ratio. This is
// the kind of number a training CLI might log after a long run to
// gauge how repetitive the learned vocabulary turned out to be; it
// has no bearing on reply generation.
func DictionaryCompression(d *Dictionary) CompressionReport {
	inputs := make([][]byte, 0, len(d.words))
	raw := 0
	for _, w := range d.words {
		inputs = append(inputs, w)
		raw += len(w)
	}

	report := CompressionReport{WordCount: len(inputs), RawBytes: raw}
	if len(inputs) == 0 {
		return report
	}

	table := fsst.Train(inputs)
	compressed := 0
	for _, w := range inputs {
		compressed += len(table.EncodeAll(w))
	}
	report.CompressedBytes = compressed
	if compressed > 0 {
		report.Ratio = float64(raw) / float64(compressed)
	}
	return report
}
