// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	// ErrName is returned for a malformed long or short option name.
	ErrName = errors.New("invalid option name")

	// ErrConflict is returned when an option is configured inconsistently:
	// required together with a default, a second description or short name,
	// or a short name on a positional option.
	ErrConflict = errors.New("conflicting option configuration")

	// ErrTypeMismatch is returned when the kinds of a default, a bound target
	// or a typed read disagree, and when an explicitly named option receives
	// a value that cannot be coerced to its kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrBindingMissing is returned when a value must be written but the
	// option has no storage bound.
	ErrBindingMissing = errors.New("option is not bound")

	// ErrMissingValue is returned when a named option is the last token and
	// needs a following value.
	ErrMissingValue = errors.New("missing option value")

	// ErrUnmatched is returned when no declared option claims a token.
	ErrUnmatched = errors.New("unmatched argument")

	// ErrUnsatisfiedRequired is returned when a required option was not
	// given on the command line.
	ErrUnsatisfiedRequired = errors.New("required option not set")

	// ErrArgument is returned when the argument list has no command token.
	ErrArgument = errors.New("missing command")
)

// OptionError describes a failure tied to one option.
type OptionError struct {
	Option string // display name, see Option.Name
	Msg    string
	Err    error // a sentinel error, or an error matching one
}

func (e *OptionError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("option %s: %v", e.Option, e.Err)
	}
	return fmt.Sprintf("option %s: %s", e.Option, e.Msg)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// ArgumentError describes a failure tied to one command-line token.
type ArgumentError struct {
	Arg   string
	Index int // position in the argument list, command token excluded
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Err == ErrUnmatched {
		return fmt.Sprintf("unexpected argument %q", e.Arg)
	}
	return fmt.Sprintf("argument %q: %v", e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// CoerceError is returned when a token cannot be converted to a kind.
type CoerceError struct {
	Token string
	Kind  Kind
	Err   error // underlying strconv error, if any
}

func (e *CoerceError) Error() string {
	switch e.Kind {
	case KindInt32:
		return fmt.Sprintf("%q is not a 32-bit integer", e.Token)
	case KindInt64:
		return fmt.Sprintf("%q is not a 64-bit integer", e.Token)
	case KindFloat64:
		return fmt.Sprintf("%q is not a decimal number", e.Token)
	}
	return fmt.Sprintf("cannot use %q as %s", e.Token, e.Kind)
}

// Is reports ErrTypeMismatch so callers need not know about CoerceError.
func (e *CoerceError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *CoerceError) Unwrap() error {
	return e.Err
}
