// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "fmt"

// Match tries to claim args[cursor] for the option. It returns how many
// tokens were consumed:
//
//   - 0 when the option does not claim the token. This is not an error: a
//     positional option declines a value it cannot coerce so that another
//     option may take it.
//   - 1 for a bare value, a boolean flag, or --name=value.
//   - 2 for --name value.
//
// A named option that matches by name but cannot coerce its value fails with
// ErrTypeMismatch; the name already says which option was meant.
func (o *Option) Match(args []string, cursor int) (int, error) {
	if cursor < 0 || cursor >= len(args) {
		return 0, nil
	}
	tok := Classify(args[cursor])

	if !tok.Keyed() {
		if !o.IsPositional() {
			return 0, nil
		}
		if o.bound == nil {
			return 0, &OptionError{Option: o.Name(), Err: ErrBindingMissing}
		}
		v, err := Coerce(tok.Value, o.storageKind())
		if err != nil {
			return 0, nil
		}
		if err := o.write(v); err != nil {
			return 0, err
		}
		return 1, nil
	}

	if !o.matchesKey(tok.Key) {
		return 0, nil
	}
	if o.bound == nil {
		return 0, &OptionError{Option: o.Name(), Err: ErrBindingMissing}
	}

	if o.kind == KindBool {
		if err := o.write(ValueOf(true)); err != nil {
			return 0, err
		}
		return 1, nil
	}

	if tok.HasValue {
		if err := o.coerceAndWrite(tok.Value); err != nil {
			return 0, err
		}
		return 1, nil
	}

	if cursor+1 >= len(args) {
		return 0, &OptionError{
			Option: o.Name(),
			Msg:    fmt.Sprintf("%s needs a value", tok.Raw),
			Err:    ErrMissingValue,
		}
	}
	if err := o.coerceAndWrite(args[cursor+1]); err != nil {
		return 0, err
	}
	return 2, nil
}

func (o *Option) matchesKey(key string) bool {
	if o.IsPositional() {
		return false
	}
	return key == o.longName || (o.shortName != "" && key == o.shortName)
}

func (o *Option) coerceAndWrite(token string) error {
	v, err := Coerce(token, o.storageKind())
	if err != nil {
		return &OptionError{Option: o.Name(), Msg: err.Error(), Err: err}
	}
	return o.write(v)
}

func (o *Option) write(v Value) error {
	if o.bound == nil || !o.bound.store(v) {
		return &OptionError{Option: o.Name(), Err: ErrBindingMissing}
	}
	return nil
}
