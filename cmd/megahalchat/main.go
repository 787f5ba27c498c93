// Command megahalchat loads a brain file and runs an interactive
// read-learn-reply loop over stdin, mirroring cmd/score's "load a
// binary, process stdin line by line, report timing" shape.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/kho/easy"
	"github.com/kho/megahal"
	"github.com/kho/megahal/internal/wordlist"
)

func main() {
	var args struct {
		Brain string `name:"brain" usage:"brain file to load, or to create if it does not exist"`
	}
	order := flag.Int("order", megahal.DefaultOrder, "Markov order, used only when Brain does not yet exist")
	timeout := flag.Float64("timeout", megahal.DefaultTimeout, "reply time budget, in seconds")
	banFile := flag.String("ban", "", "path to a banned-word list")
	auxFile := flag.String("aux", "", "path to an auxiliary-keyword list")
	swapFile := flag.String("swap", "", "path to a swap list")
	save := flag.Bool("save", true, "save the brain back to -brain on exit")
	easy.ParseFlagsAndArgs(&args)

	model, err := loadOrCreate(args.Brain, *order)
	if err != nil {
		glog.Fatal("error in loading brain: ", err)
	}

	engine := megahal.NewEngine(model)
	engine.Timeout = time.Duration(*timeout * float64(time.Second))

	if *banFile != "" {
		if engine.Keywords.Ban, err = wordlist.LoadBanFile(*banFile); err != nil {
			glog.Fatal("error in loading ban list: ", err)
		}
	}
	if *auxFile != "" {
		if engine.Keywords.Aux, err = wordlist.LoadAuxFile(*auxFile); err != nil {
			glog.Fatal("error in loading aux list: ", err)
		}
	}
	if *swapFile != "" {
		if engine.Keywords.Swap, err = wordlist.LoadSwapFile(*swapFile); err != nil {
			glog.Fatal("error in loading swap list: ", err)
		}
	}

	var numTurns int
	elapsed := easy.Timed(func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if err := engine.Learn(line); err != nil {
				glog.Warningf("error in learning turn %d: %v", numTurns, err)
			}
			fmt.Println(engine.Reply(line))
			numTurns++
		}
		if err := scanner.Err(); err != nil {
			glog.Fatal("error in reading stdin: ", err)
		}
	})
	glog.Infof("%d turns in %v", numTurns, elapsed)

	if *save {
		out := easy.MustCreate(args.Brain)
		defer out.Close()
		if err := model.Save(out); err != nil {
			glog.Fatal("error in saving brain: ", err)
		}
	}
}

func loadOrCreate(path string, order int) (*megahal.Model, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return megahal.NewModel(order)
		}
		return nil, err
	}
	in, err := easy.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return megahal.Load(in)
}
