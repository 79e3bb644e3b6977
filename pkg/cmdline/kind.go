// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdline

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the primitive value type of an option. It fixes how values are
// stored and how tokens are coerced.
type Kind int

const (
	KindUnset Kind = iota
	KindString
	KindInt32
	KindInt64
	KindFloat64
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	default:
		return "unset"
	}
}

// ParseKind returns the Kind named by s. It accepts the names produced by
// Kind.String plus a few common aliases ("int", "long", "double", "float").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str":
		return KindString, nil
	case "int32", "int":
		return KindInt32, nil
	case "int64", "long":
		return KindInt64, nil
	case "float64", "float", "double":
		return KindFloat64, nil
	case "bool", "boolean":
		return KindBool, nil
	}
	return KindUnset, fmt.Errorf("unknown kind %q: %w", s, ErrTypeMismatch)
}

// compatible reports whether storage of kind target may back an option of
// kind declared. Int32 options may widen into int64 storage.
func compatible(declared, target Kind) bool {
	return declared == target || (declared == KindInt32 && target == KindInt64)
}

// Scalar is the set of Go types an option value can have.
type Scalar interface {
	string | int32 | int64 | float64 | bool
}

func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	}
	return KindUnset
}

// Value is a typed option value. The only implementation is produced by
// ValueOf, so the kind of a Value is always the kind of its Go type.
type Value interface {
	Kind() Kind
	String() string
	// Any returns the underlying Go value.
	Any() any

	sealed()
}

type scalar[T Scalar] struct {
	v T
}

// ValueOf wraps v as a Value.
func ValueOf[T Scalar](v T) Value {
	return scalar[T]{v: v}
}

func (s scalar[T]) Kind() Kind { return kindOf[T]() }
func (s scalar[T]) Any() any   { return s.v }
func (s scalar[T]) sealed()    {}

func (s scalar[T]) String() string {
	switch v := any(s.v).(type) {
	case string:
		return v
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprint(s.v)
}

// valueAs returns v as a T, widening int32 to int64 when T is int64.
func valueAs[T Scalar](v Value) (T, bool) {
	if s, ok := v.(scalar[T]); ok {
		return s.v, true
	}
	var zero T
	if _, want64 := any(zero).(int64); want64 {
		if s, ok := v.(scalar[int32]); ok {
			return any(int64(s.v)).(T), true
		}
	}
	return zero, false
}

// Target is caller-owned storage an option writes into. See Borrowed.
type Target interface {
	Kind() Kind
	// Nil reports whether the target has no storage behind it.
	Nil() bool

	store(Value) bool
	sealed()
}

// Borrowed is a non-owning reference to caller storage. The referenced
// variable must stay valid for the whole declaration and parse session of
// the Parser it is bound to; the Parser only reads and writes through it.
type Borrowed[T Scalar] struct {
	ptr *T
}

// Borrow returns a Borrowed reference to *ptr.
func Borrow[T Scalar](ptr *T) Borrowed[T] {
	return Borrowed[T]{ptr: ptr}
}

func (b Borrowed[T]) Kind() Kind { return kindOf[T]() }
func (b Borrowed[T]) Nil() bool  { return b.ptr == nil }
func (b Borrowed[T]) sealed()    {}

// Ptr returns the referenced storage.
func (b Borrowed[T]) Ptr() *T { return b.ptr }

func (b Borrowed[T]) store(v Value) bool {
	if b.ptr == nil {
		return false
	}
	x, ok := valueAs[T](v)
	if !ok {
		return false
	}
	*b.ptr = x
	return true
}
