// Command bamnorm normalizes Bambara text, converts numerals and scores ASR
// transcripts from the command line or over HTTP.
//
//	bamnorm normalize [--mode m] [--preset p] [--config f.yaml] [--debug] [TEXT...]
//	bamnorm evaluate  [--mode m] [--preset p] [--files] [--detailed] [--der] REF HYP
//	bamnorm file      --input F [--output O] [--mode m] [--preset p] [--workers n]
//	bamnorm validate  [--analyze] [TEXT...]
//	bamnorm serve     [--addr :8080]
//
// Errors are printed on stderr and the exit code is 1.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gonuts/commander"
)

var cmd = &commander.Command{
	UsageLine: os.Args[0] + " normalize|evaluate|file|validate|serve",
	Short:     "Bambara text normalization and ASR evaluation",
}

func init() {
	cmd.Subcommands = []*commander.Command{
		newNormalizeCmd(),
		newEvaluateCmd(),
		newFileCmd(),
		newValidateCmd(),
		newServeCmd(),
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	if err := cmd.Dispatch(context.Background(), os.Args[1:]); err != nil {
		exit(err)
	}
}
