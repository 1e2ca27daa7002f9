package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/capgains/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion for the cgs binary. It returns
// immediately unless the shell invoked the binary for completion.
func completion() {
	files := map[string]complete.Predictor{
		"account-file": predict.Files("*.csv"),
		"prices-file":  predict.Files("*.csv"),
	}
	sell := map[string]complete.Predictor{
		"t": predict.Something,
		"r": predict.Something,
	}
	c := &complete.Command{
		Flags: files,
		Sub: map[string]*complete.Command{
			"sell":    {Flags: sell},
			"summary": {},
			"fetch":   {Flags: map[string]complete.Predictor{"fund": predict.Something}},
			"explain": {Flags: sell},
			"topic":   {},
		},
	}
	c.Complete("cgs")
}
