// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"regexp"
)

var (
	longNamePattern  = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	shortNamePattern = regexp.MustCompile(`^[A-Za-z0-9]$`)
)

// Option declares one command-line option: a positional value when it has
// no long name, otherwise a --name / -c option.
//
// The configuration methods return the Option so calls can be chained. The
// first failing call is recorded and returned by Err; every later call on
// that Option is a no-op. A Parser refuses to parse while any of its options
// holds an error.
type Option struct {
	longName    string
	shortName   string
	description string
	required    bool
	kind        Kind
	def         Value
	bound       Target

	// position among positional options, 1-based; 0 when unknown.
	position int
	err      error
}

// NewPositional returns a positional option.
func NewPositional() *Option {
	return &Option{}
}

// NewNamed returns an option matched by --name. The name must be non-empty
// and consist of ASCII letters and digits only.
func NewNamed(name string) *Option {
	o := &Option{}
	if !longNamePattern.MatchString(name) {
		o.err = &OptionError{
			Option: fmt.Sprintf("%q", name),
			Msg:    fmt.Sprintf("%q is not a valid option name", name),
			Err:    ErrName,
		}
		return o
	}
	o.longName = name
	return o
}

// Err returns the first configuration error recorded on the option.
func (o *Option) Err() error { return o.err }

// IsPositional reports whether the option matches bare values.
func (o *Option) IsPositional() bool { return o.longName == "" }

func (o *Option) LongName() string    { return o.longName }
func (o *Option) ShortName() string   { return o.shortName }
func (o *Option) Description() string { return o.description }
func (o *Option) IsRequired() bool    { return o.required }
func (o *Option) HasDefault() bool    { return o.def != nil }
func (o *Option) IsBound() bool       { return o.bound != nil }

// Kind returns the declared kind, or KindUnset before a default or a target
// has been set.
func (o *Option) Kind() Kind { return o.kind }

// Default returns the default value, or nil.
func (o *Option) Default() Value { return o.def }

// Name returns the option as it is shown in messages.
func (o *Option) Name() string {
	if !o.IsPositional() {
		return "--" + o.longName
	}
	if o.position > 0 {
		return fmt.Sprintf("[positional #%d]", o.position)
	}
	return "[positional]"
}

func (o *Option) fail(err error, format string, args ...any) *Option {
	o.err = &OptionError{Option: o.Name(), Msg: fmt.Sprintf(format, args...), Err: err}
	return o
}

// AsShortName sets the single-character alias matched by -c.
func (o *Option) AsShortName(ch string) *Option {
	if o.err != nil {
		return o
	}
	if o.IsPositional() {
		return o.fail(ErrConflict, "short name cannot be defined for positional arguments")
	}
	if !shortNamePattern.MatchString(ch) {
		return o.fail(ErrName, "%q is not a valid short option name", ch)
	}
	if o.shortName != "" {
		return o.fail(ErrConflict, "already has short name %q", o.shortName)
	}
	o.shortName = ch
	return o
}

// MarkRequired makes parsing fail when the option is not given.
func (o *Option) MarkRequired() *Option {
	if o.err != nil {
		return o
	}
	if o.def != nil {
		return o.fail(ErrConflict, "has a default value and cannot be required")
	}
	o.required = true
	return o
}

// WithDescription sets the text shown in usage output. It can be set once.
func (o *Option) WithDescription(text string) *Option {
	if o.err != nil {
		return o
	}
	if o.description != "" {
		return o.fail(ErrConflict, "already has a description")
	}
	o.description = text
	return o
}

// WithDefault sets the value the option holds when it is not given. If a
// target is already bound the default is written into it right away;
// otherwise it is written when BindTo is called.
func (o *Option) WithDefault(v Value) *Option {
	if o.err != nil {
		return o
	}
	if v == nil {
		return o.fail(ErrTypeMismatch, "default value is nil")
	}
	if o.required {
		return o.fail(ErrConflict, "is required and cannot have a default value")
	}
	if o.kind != KindUnset && o.kind != v.Kind() {
		return o.fail(ErrTypeMismatch, "default of kind %s does not match kind %s", v.Kind(), o.kind)
	}
	o.def = v
	o.kind = v.Kind()
	if o.bound != nil {
		o.bound.store(v)
	}
	return o
}

// BindTo sets the storage parsed values are written into. The first of
// WithDefault and BindTo fixes the option's kind; an int32 option may be
// bound to int64 storage.
func (o *Option) BindTo(t Target) *Option {
	if o.err != nil {
		return o
	}
	if t == nil || t.Nil() {
		return o.fail(ErrBindingMissing, "cannot bind to nil storage")
	}
	if o.kind == KindUnset {
		o.kind = t.Kind()
	} else if !compatible(o.kind, t.Kind()) {
		return o.fail(ErrTypeMismatch, "kind %s cannot be bound to %s storage", o.kind, t.Kind())
	}
	o.bound = t
	if o.def != nil {
		t.store(o.def)
	}
	return o
}

// storageKind is the kind values are coerced to before they are written:
// the kind of the bound target, which may be wider than the declared kind.
func (o *Option) storageKind() Kind {
	if o.bound != nil {
		return o.bound.Kind()
	}
	return o.kind
}

// DefaultOf returns the default value of o as a T. It returns the zero T
// when the kind of o is not set yet, and ErrTypeMismatch when it is set to a
// kind T cannot hold.
func DefaultOf[T Scalar](o *Option) (T, error) {
	var zero T
	if o.kind == KindUnset {
		return zero, nil
	}
	want := kindOf[T]()
	if !compatible(o.kind, want) {
		return zero, o.mismatch(want)
	}
	if o.def == nil {
		return zero, nil
	}
	v, ok := valueAs[T](o.def)
	if !ok {
		return zero, o.mismatch(want)
	}
	return v, nil
}

// BoundOf returns the storage bound to o as a *T, or nil when nothing is
// bound. The matching rule is the one of DefaultOf.
func BoundOf[T Scalar](o *Option) (*T, error) {
	if o.kind == KindUnset {
		return nil, nil
	}
	want := kindOf[T]()
	if !compatible(o.kind, want) {
		return nil, o.mismatch(want)
	}
	if o.bound == nil {
		return nil, nil
	}
	b, ok := o.bound.(Borrowed[T])
	if !ok {
		return nil, o.mismatch(want)
	}
	return b.ptr, nil
}

func (o *Option) mismatch(want Kind) error {
	return &OptionError{
		Option: o.Name(),
		Msg:    fmt.Sprintf("requested %s but the option is %s", want, o.kind),
		Err:    ErrTypeMismatch,
	}
}
