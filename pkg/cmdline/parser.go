// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"errors"
	"strings"
)

// Parser holds an ordered list of option declarations and the result of the
// last Parse call. A Parser is not safe for concurrent use, and options must
// not be declared while Parse is running.
type Parser struct {
	options     []*Option
	positionals int

	command       string
	appName       string
	args          []string
	helpRequested bool
	claimed       map[*Option]bool
}

// NewParser returns an empty Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Positional declares a positional option. Positional options claim bare
// values in declaration order.
func (p *Parser) Positional() *Option {
	p.positionals++
	o := NewPositional()
	o.position = p.positionals
	p.options = append(p.options, o)
	return o
}

// Named declares an option matched by --name (and by -c once AsShortName is
// set). An invalid name is reported by the returned option's Err.
func (p *Parser) Named(name string) *Option {
	o := NewNamed(name)
	p.options = append(p.options, o)
	return o
}

// Options returns the declared options in declaration order.
func (p *Parser) Options() []*Option {
	return append([]*Option(nil), p.options...)
}

// Command returns the command token of the last Parse call, as given.
func (p *Parser) Command() string { return p.command }

// AppName returns the base name of the command token without a trailing
// ".exe".
func (p *Parser) AppName() string { return p.appName }

// Args returns the arguments that followed the command token.
func (p *Parser) Args() []string { return append([]string(nil), p.args...) }

// HelpRequested reports whether -h or --help was present.
func (p *Parser) HelpRequested() bool { return p.helpRequested }

// Claimed reports whether o consumed a token during the last Parse call.
func (p *Parser) Claimed(o *Option) bool { return p.claimed[o] }

// Parse matches args against the declared options and writes the values into
// their bound storage. args[0] is the command token, as in os.Args.
//
// Each remaining token is offered to the options that have not claimed a
// token yet, in declaration order; the first one to consume it wins and
// leaves the pool. A token no option consumes fails with ErrUnmatched.
// Required options left in the pool fail with ErrUnsatisfiedRequired.
//
// If -h or --help appears anywhere, Parse sets HelpRequested and returns nil
// without matching or validating anything.
//
// Values written before an error are not rolled back.
func (p *Parser) Parse(args []string) error {
	p.command, p.appName, p.args = "", "", nil
	p.helpRequested = false
	p.claimed = make(map[*Option]bool)

	if err := p.configErr(); err != nil {
		return err
	}
	if len(args) == 0 {
		return ErrArgument
	}
	p.command = args[0]
	p.appName = appNameFromCommand(args[0])
	p.args = append([]string(nil), args[1:]...)

	for _, arg := range p.args {
		if IsHelpToken(arg) {
			p.helpRequested = true
			return nil
		}
	}

	pool := append([]*Option(nil), p.options...)
	for cursor := 0; cursor < len(p.args); {
		n, idx, err := claim(pool, p.args, cursor)
		if err != nil {
			return &ArgumentError{Arg: p.args[cursor], Index: cursor, Err: err}
		}
		if n == 0 {
			return &ArgumentError{Arg: p.args[cursor], Index: cursor, Err: ErrUnmatched}
		}
		p.claimed[pool[idx]] = true
		pool = append(pool[:idx], pool[idx+1:]...)
		cursor += n
	}

	var errs []error
	for _, o := range pool {
		if o.required {
			errs = append(errs, &OptionError{Option: o.Name(), Msg: "is required", Err: ErrUnsatisfiedRequired})
		}
	}
	return errors.Join(errs...)
}

// claim offers args[cursor] to the pool in order and returns the number of
// tokens consumed and the index of the claiming option.
func claim(pool []*Option, args []string, cursor int) (consumed, index int, err error) {
	for i, o := range pool {
		n, err := o.Match(args, cursor)
		if err != nil {
			return 0, i, err
		}
		if n > 0 {
			return n, i, nil
		}
	}
	return 0, -1, nil
}

func (p *Parser) configErr() error {
	var errs []error
	for _, o := range p.options {
		if o.err != nil {
			errs = append(errs, o.err)
		}
	}
	return errors.Join(errs...)
}

// appNameFromCommand strips the directory (either separator) and a
// trailing ".exe" from a command path.
func appNameFromCommand(cmd string) string {
	name := cmd
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if len(name) > len(".exe") && strings.EqualFold(name[len(name)-len(".exe"):], ".exe") {
		name = name[:len(name)-len(".exe")]
	}
	return name
}
