package main

import (
	"flag"
	"os"

	"github.com/gonuts/commander"

	"github.com/sudoping01/bambara-text-normalization/validate"
)

func newValidateCmd() *commander.Command {
	c := &commander.Command{
		Run:       runValidate,
		UsageLine: "validate [--analyze] [TEXT...]",
		Short:     "check text against the standard orthography",
		Long: `
validate reports foreign letters, legacy spellings, apostrophe variants and
inconsistent tone marking as JSON, one report per input line.
`,
		Flag: *flag.NewFlagSet("bamnorm-validate", flag.ExitOnError),
	}
	c.Flag.Bool("analyze", false, "include letter and tone counts")
	return c
}

type validateResponse struct {
	Report   validate.Report    `json:"report"`
	Analysis *validate.Analysis `json:"analysis,omitempty"`
}

func checkText(text string, analyze bool) validateResponse {
	resp := validateResponse{Report: validate.Validate(text)}
	if analyze {
		a := validate.Analyze(text)
		resp.Analysis = &a
	}
	return resp
}

func runValidate(cmd *commander.Command, args []string) error {
	lines, err := readInput(args, os.Stdin)
	if err != nil {
		return err
	}
	analyze := boolFlag(cmd, "analyze")
	for _, line := range lines {
		if err := writeJSON(os.Stdout, checkText(line, analyze)); err != nil {
			return err
		}
	}
	return nil
}
