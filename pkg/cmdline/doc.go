// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdline is a declarative command-line option parser.
//
// Options are declared on a Parser, configured with chained calls and bound
// to variables owned by the caller. Parse then walks the argument list,
// offers every token to the options that have not claimed one yet, coerces
// the value to the option's kind and writes it through the binding.
//
// # Basic Usage
//
//	var (
//	    input string
//	    count int32
//	    force bool
//	)
//
//	p := cmdline.NewParser()
//	p.Positional().WithDescription("Input file").MarkRequired().BindTo(cmdline.Borrow(&input))
//	p.Named("count").AsShortName("c").WithDefault(cmdline.ValueOf[int32](10)).BindTo(cmdline.Borrow(&count))
//	p.Named("force").BindTo(cmdline.Borrow(&force))
//
//	if err := p.Parse(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//	if p.HelpRequested() {
//	    fmt.Print(cmdline.Usage(p, ""))
//	    return
//	}
//
// # Token Syntax
//
//   - Bare values: file.txt, 10, -10, -2.5 (negative numbers are values)
//   - Long options: --name, --name=value, --name value
//   - Short options: -c, -c=value, -c value
//   - Help: -h or --help anywhere skips matching and required checks
//
// A boolean option never takes a value; its presence sets it to true.
//
// # Kinds
//
// Every option has one of the kinds string, int32, int64, float64 or bool,
// fixed by whichever of WithDefault and BindTo comes first. An int32 option
// may be bound to int64 storage, in which case it accepts 64-bit literals.
// Float values need a fractional part ("1.0", not "1").
//
// # Matching
//
// Positional options are tried in declaration order and decline a token they
// cannot coerce, so with an int32 positional declared before a string one,
// "42" goes to the first and "abc" to the second. Each option claims at most
// one token (or token pair) per Parse call.
//
// # Errors
//
// Configuration errors are recorded on the Option (see Option.Err) and
// returned again by Parse. All errors match one of the Err* sentinels with
// errors.Is; OptionError and ArgumentError carry the offending option or
// token.
//
// # Storage Lifetime
//
// Bindings are borrowed: Borrow(&v) keeps a pointer to v, and v must outlive
// the Parser. The parser never allocates or frees bound storage.
package cmdline
