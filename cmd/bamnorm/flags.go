package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonuts/commander"

	"github.com/sudoping01/bambara-text-normalization/contraction"
	"github.com/sudoping01/bambara-text-normalization/normalize"
)

// maxLineBytes bounds a single stdin or file line.
const maxLineBytes = 1 << 20

// addPipelineFlags registers the flags that select a normalization config.
func addPipelineFlags(fs *flag.FlagSet, preset string) {
	fs.String("mode", contraction.Expand.String(), "contraction mode: expand, contract or preserve")
	fs.String("preset", preset, "preset: "+strings.Join(normalize.Presets, ", "))
	fs.String("config", "", "YAML file with config overrides")
}

func stringFlag(cmd *commander.Command, name string) string {
	return cmd.Flag.Lookup(name).Value.String()
}

func boolFlag(cmd *commander.Command, name string) bool {
	return cmd.Flag.Lookup(name).Value.(flag.Getter).Get().(bool)
}

func intFlag(cmd *commander.Command, name string) int {
	return cmd.Flag.Lookup(name).Value.(flag.Getter).Get().(int)
}

// pipelineConfig builds the config selected by the pipeline flags of cmd.
func pipelineConfig(cmd *commander.Command) (normalize.Config, error) {
	return resolveConfig(stringFlag(cmd, "preset"), stringFlag(cmd, "mode"), stringFlag(cmd, "config"))
}

// resolveConfig applies preset, mode and an optional YAML file, in that
// order. An empty mode means expand.
func resolveConfig(preset, mode, path string) (normalize.Config, error) {
	m := contraction.Expand
	if mode != "" {
		var err error
		if m, err = contraction.ParseMode(mode); err != nil {
			return normalize.Config{}, err
		}
	}
	cfg, err := normalize.Preset(preset, m)
	if err != nil {
		return normalize.Config{}, err
	}
	if path != "" {
		return normalize.LoadConfig(path, cfg)
	}
	return cfg, cfg.Validate()
}

// readInput returns args joined by spaces, or the lines of stdin when args
// is empty.
func readInput(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	return scanLines(stdin, false)
}

// readLines reads every line of the file at path. With skipBlank, lines are
// trimmed and blank ones dropped.
func readLines(path string, skipBlank bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return scanLines(f, skipBlank)
}

func scanLines(r io.Reader, skipBlank bool) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if skipBlank {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
