// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/yeetrun/cmdline/pkg/cmdline"
)

func main() {
	var (
		filename   string
		someoption int32
		flag       bool
	)

	p := cmdline.NewParser()
	p.Positional().WithDescription("A required filename").MarkRequired().BindTo(cmdline.Borrow(&filename))
	p.Named("someoption").AsShortName("s").WithDefault(cmdline.ValueOf[int32](10)).WithDescription("My description of someoption").BindTo(cmdline.Borrow(&someoption))
	p.Named("flag").WithDefault(cmdline.ValueOf(false)).WithDescription("My flag").BindTo(cmdline.Borrow(&flag))

	if err := p.Parse(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cmdline.WriteUsage(os.Stderr, p, "")
		os.Exit(2)
	}
	if p.HelpRequested() {
		cmdline.WriteUsage(os.Stdout, p, "")
		return
	}
	fmt.Printf("filename=%s someoption=%d flag=%t\n", filename, someoption, flag)
}
