package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// explainCmd holds the flags for the 'explain' subcommand.
type explainCmd struct {
	target float64
	rate   float64
	model  string
}

func (*explainCmd) Name() string { return "explain" }
func (*explainCmd) Synopsis() string {
	return "run a sell selection and have Gemini explain it in plain language"
}
func (*explainCmd) Usage() string {
	return `cgs explain -t <target> [-r <tax_rate>] [-model <model>]

  Runs the same selection as 'sell' and asks Gemini for a plain-language
  explanation of the result. Requires a configured Gemini API key.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "t", 0, "Target amount to raise, net of tax")
	f.Float64Var(&c.rate, "r", 0, "Flat tax rate applied to realized capital gains, in [0,1)")
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sel, status := runSelection(c.target, c.rate)
	if status != subcommands.ExitSuccess {
		return status
	}
	report := renderer.SelectionMarkdown(sel)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	prompt := `You are a careful assistant for an individual investor.
The report below lists the purchase lots a tool selected to sell to raise a
cash target while minimizing realized capital gains. Explain in a few plain
sentences which lots are sold and why their low gain ratio makes them tax
efficient. Do not give tax or investment advice.

` + report

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating explanation:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(report)
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
