// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import "strings"

// Help tokens. Either one anywhere after the command token short-circuits
// parsing.
const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
)

// Form is the syntactic shape of a command-line token.
type Form int

const (
	// FormValue is a bare value: no leading dash, a negative number, or a
	// dash prefix with nothing after it.
	FormValue Form = iota
	// FormLong is --name or --name=value.
	FormLong
	// FormShort is -c or -c=value.
	FormShort
)

func (f Form) String() string {
	switch f {
	case FormLong:
		return "long"
	case FormShort:
		return "short"
	default:
		return "value"
	}
}

// Token is a classified command-line token.
type Token struct {
	Raw  string
	Form Form
	// Key is the option name with its dashes stripped. Empty for FormValue.
	Key string
	// Value is the inline value after '=' for keyed tokens, or the whole
	// token for FormValue.
	Value    string
	HasValue bool
}

// Keyed reports whether the token names an option.
func (t Token) Keyed() bool {
	return t.Key != ""
}

// Classify splits a raw token into its key and inline value.
//
//	"file"        -> value "file"
//	"-10"         -> value "-10"
//	"--out=a.txt" -> long key "out", value "a.txt"
//	"-o"          -> short key "o"
func Classify(raw string) Token {
	if isNegativeNumber(raw) {
		return Token{Raw: raw, Form: FormValue, Value: raw, HasValue: true}
	}

	var (
		rest string
		form Form
	)
	switch {
	case strings.HasPrefix(raw, "--"):
		rest, form = raw[2:], FormLong
	case strings.HasPrefix(raw, "-"):
		rest, form = raw[1:], FormShort
	default:
		return Token{Raw: raw, Form: FormValue, Value: raw, HasValue: true}
	}

	key, value, hasValue := strings.Cut(rest, "=")
	if key == "" {
		return Token{Raw: raw, Form: FormValue, Value: raw, HasValue: true}
	}
	return Token{Raw: raw, Form: form, Key: key, Value: value, HasValue: hasValue}
}

// IsHelpToken reports whether arg is one of the reserved help tokens.
func IsHelpToken(arg string) bool {
	return arg == helpFlagLong || arg == helpFlagShort
}

// isNumeric checks if a string is a number (e.g., "10", "-10", "3.14", "-3,14").
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	hasDigit := false
	hasSep := false
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '.' || c == ',':
			if hasSep {
				return false
			}
			hasSep = true
		default:
			return false
		}
	}
	return hasDigit
}

// isNegativeNumber checks if a string is a negative number (e.g., "-10", "-3.14").
func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	return isNumeric(s)
}
