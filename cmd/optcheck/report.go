// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/cmdline/pkg/optschema"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return formatText, nil
	case "json":
		return formatJSON, nil
	case "yaml", "yml":
		return formatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected text, json or yaml)", s)
}

// report is the outcome of checking one command line.
type report struct {
	Args    []string           `json:"args" yaml:"args"`
	OK      bool               `json:"ok" yaml:"ok"`
	Help    bool               `json:"help,omitempty" yaml:"help,omitempty"`
	Usage   string             `json:"usage,omitempty" yaml:"usage,omitempty"`
	Errors  []string           `json:"errors,omitempty" yaml:"errors,omitempty"`
	Options []optschema.Result `json:"options,omitempty" yaml:"options,omitempty"`
}

var isTerminalFn = term.IsTerminal

type printer struct {
	w      io.Writer
	errw   io.Writer
	format outputFormat
	red    *color.Color
	dim    *color.Color
}

func newPrinter(w, errw io.Writer, format outputFormat, allowColor bool) *printer {
	p := &printer{
		w:      w,
		errw:   errw,
		format: format,
		red:    color.New(color.FgRed),
		dim:    color.New(color.Faint),
	}
	enabled := allowColor && colorEnabled(w)
	for _, c := range []*color.Color{p.red, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminalFn(int(f.Fd()))
}

func (p *printer) print(reports []report, batch bool) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if batch {
			return enc.Encode(reports)
		}
		return enc.Encode(reports[0])
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		var err error
		if batch {
			err = enc.Encode(reports)
		} else {
			err = enc.Encode(reports[0])
		}
		if err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}

	for i, r := range reports {
		if batch {
			if i > 0 {
				fmt.Fprintln(p.w)
			}
			fmt.Fprintln(p.w, p.dim.Sprintf("$ %s", strings.Join(r.Args, " ")))
		}
		errw := p.errw
		if batch {
			errw = p.w
		}
		if err := p.printText(r, errw); err != nil {
			return err
		}
	}
	return nil
}

// printText writes one report. Parse errors go to errw.
func (p *printer) printText(r report, errw io.Writer) error {
	if r.Help {
		_, err := fmt.Fprint(p.w, r.Usage)
		return err
	}
	if !r.OK {
		for _, e := range r.Errors {
			fmt.Fprintln(errw, p.red.Sprintf("error: %s", e))
		}
		return nil
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVALUE\tGIVEN")
	for _, o := range r.Options {
		given := "no"
		if o.Given {
			given = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", o.Name, o.Kind, o.Value, given)
	}
	return tw.Flush()
}
