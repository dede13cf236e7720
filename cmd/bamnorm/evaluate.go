package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/gonuts/commander"

	"github.com/sudoping01/bambara-text-normalization/evaluate"
	"github.com/sudoping01/bambara-text-normalization/normalize"
)

const ruleWidth = 60

func newEvaluateCmd() *commander.Command {
	c := &commander.Command{
		Run:       runEvaluate,
		UsageLine: "evaluate [options] REF HYP",
		Short:     "score a hypothesis transcript against a reference",
		Long: `
evaluate normalizes REF and HYP with the same config and prints WER, CER,
MER, WIL and WIP. With --files, REF and HYP are files with one utterance per
line; blank lines are skipped and both files must have the same number of
lines.

ex:
 $ bamnorm evaluate "K'a fɔ" "ka a fɔ"
 $ bamnorm evaluate --files --mode contract ref.txt hyp.txt
`,
		Flag: *flag.NewFlagSet("bamnorm-evaluate", flag.ExitOnError),
	}
	addPipelineFlags(&c.Flag, normalize.PresetWER)
	c.Flag.Bool("files", false, "read REF and HYP as files")
	c.Flag.Bool("detailed", false, "print the word alignment")
	c.Flag.Bool("der", false, "report the diacritic error rate")
	c.Flag.Bool("json", false, "print results as JSON")
	c.Flag.Int("workers", 0, "worker goroutines for --files (default: GOMAXPROCS)")
	return c
}

func runEvaluate(cmd *commander.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("evaluate: want REF and HYP, got %d arguments", len(args))
	}
	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	opts := []evaluate.Option{evaluate.WithWorkers(intFlag(cmd, "workers"))}
	if boolFlag(cmd, "der") {
		opts = append(opts, evaluate.WithDER())
	}
	e := evaluate.New(cfg, opts...)

	if !boolFlag(cmd, "files") {
		r := e.Evaluate(args[0], args[1])
		if boolFlag(cmd, "json") {
			return writeJSON(os.Stdout, r)
		}
		fmt.Println(r)
		if boolFlag(cmd, "detailed") {
			fmt.Println()
			fmt.Print(e.Visualize(args[0], args[1]))
		}
		return nil
	}

	refs, err := readLines(args[0], true)
	if err != nil {
		return err
	}
	hyps, err := readLines(args[1], true)
	if err != nil {
		return err
	}
	if len(refs) != len(hyps) {
		return fmt.Errorf("reference (%d lines) and hypothesis (%d lines) have different lengths", len(refs), len(hyps))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	agg, results, err := e.EvaluateBatch(ctx, refs, hyps)
	if err != nil {
		return err
	}
	if boolFlag(cmd, "json") {
		return writeJSON(os.Stdout, batchResponse{Aggregate: agg, Results: results})
	}

	writeReport(os.Stdout, report{
		refPath: args[0],
		hypPath: args[1],
		preset:  stringFlag(cmd, "preset"),
		mode:    cfg.ContractionMode.String(),
		count:   len(refs),
		result:  agg,
	})
	if boolFlag(cmd, "detailed") {
		for i := range refs {
			fmt.Printf("\nsentence %d\n%s", i+1, e.Visualize(refs[i], hyps[i]))
		}
	}
	return nil
}

type report struct {
	refPath, hypPath string
	preset, mode     string
	count            int
	result           evaluate.Result
}

func writeReport(w io.Writer, r report) {
	rule := strings.Repeat("=", ruleWidth)
	thin := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Bambara ASR Evaluation Results")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Reference file: %s\n", r.refPath)
	fmt.Fprintf(w, "Hypothesis file: %s\n", r.hypPath)
	fmt.Fprintf(w, "Normalization preset: %s\n", r.preset)
	fmt.Fprintf(w, "Contraction mode: %s\n", r.mode)
	fmt.Fprintf(w, "Total utterances: %d\n", r.count)
	fmt.Fprintln(w, thin)
	writeCounts(w, "Word Error Rate (WER)", "words", r.result.WER, r.result.Words)
	fmt.Fprintln(w, thin)
	writeCounts(w, "Character Error Rate (CER)", "chars", r.result.CER, r.result.Chars)
	if r.result.DER != nil {
		fmt.Fprintln(w, thin)
		fmt.Fprintf(w, "Diacritic Error Rate (DER): %.2f%%\n", *r.result.DER*100)
	}
	fmt.Fprintln(w, rule)
}

func writeCounts(w io.Writer, title, unit string, rate float64, c evaluate.Counts) {
	fmt.Fprintf(w, "%s: %.2f%%\n", title, rate*100)
	fmt.Fprintf(w, "  Substitutions: %d\n", c.Substitutions)
	fmt.Fprintf(w, "  Deletions: %d\n", c.Deletions)
	fmt.Fprintf(w, "  Insertions: %d\n", c.Insertions)
	fmt.Fprintf(w, "  Reference %s: %d\n", unit, c.Reference)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
