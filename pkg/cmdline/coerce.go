// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+[.,][0-9]+$`)
)

// Coerce converts token to a Value of kind k.
//
// Bool accepts any token and yields true: a boolean option is set by its
// presence. Float64 requires a fractional part ("1.5", "-0,25"), so a plain
// integer never coerces to float. Int32 and Int64 accept optionally signed
// decimal literals within their range. String is stored verbatim.
func Coerce(token string, k Kind) (Value, error) {
	switch k {
	case KindString:
		return ValueOf(token), nil
	case KindBool:
		return ValueOf(true), nil
	case KindInt32:
		if !integerPattern.MatchString(token) {
			return nil, &CoerceError{Token: token, Kind: k}
		}
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, &CoerceError{Token: token, Kind: k, Err: err}
		}
		return ValueOf(int32(n)), nil
	case KindInt64:
		if !integerPattern.MatchString(token) {
			return nil, &CoerceError{Token: token, Kind: k}
		}
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &CoerceError{Token: token, Kind: k, Err: err}
		}
		return ValueOf(n), nil
	case KindFloat64:
		if !decimalPattern.MatchString(token) {
			return nil, &CoerceError{Token: token, Kind: k}
		}
		f, err := strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 64)
		if err != nil {
			return nil, &CoerceError{Token: token, Kind: k, Err: err}
		}
		return ValueOf(f), nil
	}
	return nil, &CoerceError{Token: token, Kind: k}
}
