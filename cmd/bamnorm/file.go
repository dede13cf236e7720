package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gonuts/commander"

	"github.com/sudoping01/bambara-text-normalization/normalize"
)

func newFileCmd() *commander.Command {
	c := &commander.Command{
		Run:       runFile,
		UsageLine: "file --input F [options]",
		Short:     "normalize a file line by line",
		Long: `
file normalizes every line of the input file with a pool of workers and
writes the lines in their original order to --output, or stdout.

ex:
 $ bamnorm file --input transcripts.txt --output normalized.txt --preset wer
`,
		Flag: *flag.NewFlagSet("bamnorm-file", flag.ExitOnError),
	}
	addPipelineFlags(&c.Flag, normalize.PresetStandard)
	c.Flag.String("input", "", "input file (required)")
	c.Flag.String("output", "", "output file (default: stdout)")
	c.Flag.Int("workers", 0, "worker goroutines (default: GOMAXPROCS)")
	return c
}

func runFile(cmd *commander.Command, args []string) error {
	input := stringFlag(cmd, "input")
	if input == "" {
		return errors.New("file: --input is required")
	}
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	lines, err := readLines(input, false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := normalize.New(cfg).NormalizeBatch(ctx, lines, intFlag(cmd, "workers"))
	if err != nil {
		return err
	}

	text := strings.Join(out, "\n") + "\n"
	output := stringFlag(cmd, "output")
	if output == "" {
		_, err = os.Stdout.WriteString(text)
		return err
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Normalized output written to %s\n", output)
	return nil
}
