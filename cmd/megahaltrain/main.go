// Command megahaltrain builds a brain file from a line-oriented
// training corpus, mirroring cmd/compile's "read external input, write
// a binary" shape.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/kho/easy"
	"github.com/kho/megahal"
)

func main() {
	var args struct {
		Corpus string `name:"corpus" usage:"training corpus, one utterance per line"`
		Brain  string `name:"brain" usage:"output brain file"`
	}
	order := flag.Int("order", megahal.DefaultOrder, "Markov order of the trained model")
	stats := flag.Bool("stats", false, "log a dictionary-compression report after training")
	easy.ParseFlagsAndArgs(&args)

	model, err := megahal.NewModel(*order)
	if err != nil {
		glog.Fatal("error in creating model: ", err)
	}

	in, err := easy.Open(args.Corpus)
	if err != nil {
		glog.Fatal("error in opening corpus: ", err)
	}
	defer in.Close()

	var numLines, numLearned int
	elapsed := easy.Timed(func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			numLines++
			line := scanner.Bytes()
			megahal.Upper(line)
			words := megahal.Tokenize(line)
			if words == nil {
				continue
			}
			before := model.Dict.Len()
			if err := model.Learn(words); err != nil {
				glog.Fatalf("error in learning line %d: %v", numLines, err)
			}
			if model.Dict.Len() != before || len(words) > model.Order {
				numLearned++
			}
		}
		if err := scanner.Err(); err != nil {
			glog.Fatal("error in reading corpus: ", err)
		}
	})
	glog.Infof("trained on %d/%d lines in %v", numLearned, numLines, elapsed)

	out := easy.MustCreate(args.Brain)
	defer out.Close()
	if err := model.Save(out); err != nil {
		glog.Fatal("error in saving brain: ", err)
	}

	if *stats {
		report := megahal.DictionaryCompression(model.Dict)
		glog.Infof("dictionary: %d words, %d raw bytes, %d compressed bytes, ratio %.2f",
			report.WordCount, report.RawBytes, report.CompressedBytes, report.Ratio)
	}
}
