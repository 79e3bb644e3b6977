// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optschema

import (
	"errors"
	"fmt"
	"math"

	"github.com/yeetrun/cmdline/pkg/cmdline"
)

// Result is the state of one declared option after a parse.
type Result struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value any    `json:"value" yaml:"value"`
	// Given reports whether the option appeared on the command line.
	Given bool `json:"given" yaml:"given"`
}

// Binding owns the storage behind the options a Schema declared on a
// Parser. It must be kept alive as long as the Parser is used.
type Binding struct {
	parser *cmdline.Parser
	slots  []slot
}

type slot struct {
	name string
	opt  *cmdline.Option
	read func() any
}

// Build declares every option of s on p, in document order, and binds each
// one to storage owned by the returned Binding.
func (s *Schema) Build(p *cmdline.Parser) (*Binding, error) {
	b := &Binding{parser: p}
	var errs []error
	positionals := 0
	for i, decl := range s.Options {
		var (
			o    *cmdline.Option
			name string
		)
		if decl.Name == "" {
			positionals++
			o = p.Positional()
			name = fmt.Sprintf("arg%d", positionals)
		} else {
			o = p.Named(decl.Name)
			name = decl.Name
		}
		read, err := declare(o, decl)
		if err != nil {
			errs = append(errs, fmt.Errorf("option %d (%s): %w", i+1, name, err))
			continue
		}
		b.slots = append(b.slots, slot{name: name, opt: o, read: read})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return b, nil
}

func declare(o *cmdline.Option, decl OptionDecl) (func() any, error) {
	kind, err := declKind(decl)
	if err != nil {
		return nil, err
	}
	if decl.Short != "" {
		o.AsShortName(decl.Short)
	}
	if decl.Description != "" {
		o.WithDescription(decl.Description)
	}
	if decl.Required {
		o.MarkRequired()
	}

	var read func() any
	switch kind {
	case cmdline.KindString:
		read, err = bindSlot[string](o, decl.Default)
	case cmdline.KindInt32:
		read, err = bindSlot[int32](o, decl.Default)
	case cmdline.KindInt64:
		read, err = bindSlot[int64](o, decl.Default)
	case cmdline.KindFloat64:
		read, err = bindSlot[float64](o, decl.Default)
	case cmdline.KindBool:
		read, err = bindSlot[bool](o, decl.Default)
	}
	if err != nil {
		return nil, err
	}
	if err := o.Err(); err != nil {
		return nil, err
	}
	return read, nil
}

// bindSlot allocates storage of type T, applies the default and binds it.
func bindSlot[T cmdline.Scalar](o *cmdline.Option, raw any) (func() any, error) {
	v := new(T)
	if raw != nil {
		def, err := convertDefault[T](raw)
		if err != nil {
			return nil, err
		}
		o.WithDefault(cmdline.ValueOf(def))
	}
	o.BindTo(cmdline.Borrow(v))
	return func() any { return *v }, nil
}

// declKind returns the explicit kind of decl, or one inferred from its
// default: strings, booleans and floats map to their kinds, integers to
// int64. Options with neither are strings.
func declKind(decl OptionDecl) (cmdline.Kind, error) {
	if decl.Kind != "" {
		return cmdline.ParseKind(decl.Kind)
	}
	switch d := decl.Default.(type) {
	case nil, string:
		return cmdline.KindString, nil
	case bool:
		return cmdline.KindBool, nil
	case float64, float32:
		return cmdline.KindFloat64, nil
	default:
		if _, ok := toInt64(d); ok {
			return cmdline.KindInt64, nil
		}
	}
	return cmdline.KindUnset, fmt.Errorf("unsupported default value %v (%T)", decl.Default, decl.Default)
}

func convertDefault[T cmdline.Scalar](raw any) (T, error) {
	var zero T
	var out any
	switch any(zero).(type) {
	case string:
		if s, ok := raw.(string); ok {
			out = s
		}
	case bool:
		if b, ok := raw.(bool); ok {
			out = b
		}
	case int32:
		if n, ok := toInt64(raw); ok && n >= math.MinInt32 && n <= math.MaxInt32 {
			out = int32(n)
		}
	case int64:
		if n, ok := toInt64(raw); ok {
			out = n
		}
	case float64:
		switch f := raw.(type) {
		case float64:
			out = f
		default:
			if n, ok := toInt64(raw); ok {
				out = float64(n)
			}
		}
	}
	if out == nil {
		return zero, fmt.Errorf("default %v (%T) cannot be used as %T: %w", raw, raw, zero, cmdline.ErrTypeMismatch)
	}
	return out.(T), nil
}

// Parser returns the Parser the options were declared on.
func (b *Binding) Parser() *cmdline.Parser { return b.parser }

// Values reports every declared option, in declaration order, with the
// value currently held by its storage.
func (b *Binding) Values() []Result {
	out := make([]Result, 0, len(b.slots))
	for _, s := range b.slots {
		out = append(out, Result{
			Name:  s.name,
			Kind:  s.opt.Kind().String(),
			Value: s.read(),
			Given: b.parser.Claimed(s.opt),
		})
	}
	return out
}
