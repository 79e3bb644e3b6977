// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// optcheck parses a command line against an option schema and prints what
// each option received.
//
//	optcheck --schema app.toml -- ./app input.txt -s 3 --flag
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/cmdline/pkg/cmdline"
	"github.com/yeetrun/cmdline/pkg/optschema"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageText = `USAGE:
    optcheck --schema FILE [OPTIONS] -- COMMAND [ARGS...]
    optcheck --schema FILE [OPTIONS] --batch FILE

OPTIONS:
        --schema FILE            Schema file (.toml, .yaml or .yml)
    -f, --format FORMAT          Output format: text, json or yaml (default: text)
        --batch FILE             Check one command line per line of FILE
        --no-color               Disable colored output
    -v, --verbose                Log progress to stderr
    -h, --help                   Show this help message
`

type flagsParsed struct {
	Schema  string `flag:"schema" help:"Schema file (.toml, .yaml or .yml)"`
	Format  string `flag:"format" short:"f" help:"Output format (text|json|yaml)"`
	Batch   string `flag:"batch" help:"File with one command line per line"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`
	Verbose bool   `flag:"verbose" short:"v" help:"Log progress to stderr"`
	Help    bool   `flag:"help" short:"h" help:"Show this help message"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, rest, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usageText)
		return exitUsage
	}
	if flags.Help {
		fmt.Fprint(stdout, usageText)
		return exitOK
	}
	format, err := parseFormat(flags.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	if err := checkInvocation(flags, rest); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usageText)
		return exitUsage
	}

	logger := log.New(io.Discard, "optcheck: ", 0)
	if flags.Verbose {
		logger.SetOutput(stderr)
	}
	pr := newPrinter(stdout, stderr, format, !flags.NoColor)

	schema, err := optschema.Load(flags.Schema)
	if err != nil {
		fmt.Fprintln(stderr, pr.red.Sprintf("Error: %v", err))
		return exitError
	}
	logger.Printf("loaded %d options from %s", len(schema.Options), flags.Schema)

	var reports []report
	if flags.Batch != "" {
		lines, err := readBatch(flags.Batch)
		if err != nil {
			fmt.Fprintln(stderr, pr.red.Sprintf("Error: %v", err))
			return exitError
		}
		logger.Printf("checking %d command lines from %s", len(lines), flags.Batch)
		reports, err = checkAll(schema, lines)
		if err != nil {
			fmt.Fprintln(stderr, pr.red.Sprintf("Error: %v", err))
			return exitError
		}
	} else {
		rep, err := check(schema, rest)
		if err != nil {
			fmt.Fprintln(stderr, pr.red.Sprintf("Error: %v", err))
			return exitError
		}
		reports = []report{rep}
	}

	if err := pr.print(reports, flags.Batch != ""); err != nil {
		fmt.Fprintln(stderr, pr.red.Sprintf("Error: %v", err))
		return exitError
	}
	for _, r := range reports {
		if !r.OK {
			return exitError
		}
	}
	return exitOK
}

// parseFlags splits optcheck's own flags from the checked command line. A
// leading "--" before the command is dropped.
func parseFlags(args []string) (flagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[flagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return flagsParsed{}, nil, err
	}
	rest := result.RemainingArgs
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	return result.Flags, rest, nil
}

func checkInvocation(flags flagsParsed, rest []string) error {
	if flags.Schema == "" {
		return errors.New("--schema is required")
	}
	if flags.Batch != "" && len(rest) > 0 {
		return errors.New("cannot use --batch together with a command line")
	}
	if flags.Batch == "" && len(rest) == 0 {
		return errors.New("missing command line to check")
	}
	return nil
}

// readBatch returns the command lines of a batch file. Blank lines and lines
// starting with '#' are skipped. Arguments are split on whitespace.
func readBatch(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// check parses args with a fresh parser built from schema. Parse failures
// are recorded in the report; an error is returned only when the schema
// itself cannot be built.
func check(schema *optschema.Schema, args []string) (report, error) {
	p := cmdline.NewParser()
	b, err := schema.Build(p)
	if err != nil {
		return report{}, err
	}
	rep := report{Args: args}
	if err := p.Parse(args); err != nil {
		rep.Errors = flattenErrors(err)
		return rep, nil
	}
	rep.OK = true
	if p.HelpRequested() {
		rep.Help = true
		rep.Usage = cmdline.Usage(p, schema.Name)
		return rep, nil
	}
	rep.Options = b.Values()
	return rep, nil
}

// checkAll checks every command line concurrently. Each one gets its own
// parser; reports keep the order of lines.
func checkAll(schema *optschema.Schema, lines [][]string) ([]report, error) {
	reports := make([]report, len(lines))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, args := range lines {
		g.Go(func() error {
			rep, err := check(schema, args)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// flattenErrors expands joined errors into one message each.
func flattenErrors(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, flattenErrors(e)...)
		}
		return out
	}
	return []string{err.Error()}
}
