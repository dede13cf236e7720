package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"

	"github.com/sudoping01/bambara-text-normalization/normalize"
)

func newNormalizeCmd() *commander.Command {
	c := &commander.Command{
		Run:       runNormalize,
		UsageLine: "normalize [options] [TEXT...]",
		Short:     "normalize text given as arguments, or stdin line by line",
		Long: `
normalize runs the normalization pipeline on TEXT, or on each line of stdin
when no TEXT is given, and prints one normalized line per input.

ex:
 $ bamnorm normalize "B'a fɔ́"
 $ echo "bɛ a fɔ" | bamnorm normalize --mode contract
`,
		Flag: *flag.NewFlagSet("bamnorm-normalize", flag.ExitOnError),
	}
	addPipelineFlags(&c.Flag, normalize.PresetStandard)
	c.Flag.Bool("debug", false, "print the text after each pass on stderr")
	return c
}

func runNormalize(cmd *commander.Command, args []string) error {
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}
	lines, err := readInput(args, os.Stdin)
	if err != nil {
		return err
	}

	n := normalize.New(cfg)
	debug := boolFlag(cmd, "debug")
	for _, line := range lines {
		writeNormalized(os.Stdout, os.Stderr, n, line, debug)
	}
	return nil
}

// writeNormalized prints the normalized text to w and, with debug, the
// per-pass trace to dbg.
func writeNormalized(w, dbg io.Writer, n *normalize.Normalizer, text string, debug bool) {
	if !debug {
		fmt.Fprintln(w, n.Normalize(text))
		return
	}
	steps := n.Steps(text)
	fmt.Fprintln(dbg, "Normalization steps:")
	for _, s := range steps {
		fmt.Fprintf(dbg, "  %s: %s\n", s.Name, s.Text)
	}
	fmt.Fprintln(dbg)
	fmt.Fprintln(w, steps[len(steps)-1].Text)
}
