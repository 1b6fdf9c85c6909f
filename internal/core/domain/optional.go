package domain

import (
	"encoding/json"
	"fmt"
)

// Optional carries a value that may be unknown. The zero value is unknown.
// Upstream lookups that fail produce an unknown Optional instead of a
// placeholder, so an unknown figure can never leak into arithmetic.
type Optional[T any] struct {
	value T
	known bool
}

// Known wraps v as a known value.
func Known[T any](v T) Optional[T] {
	return Optional[T]{value: v, known: true}
}

// Unknown returns the unknown value of T.
func Unknown[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is known.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.known
}

func (o Optional[T]) IsKnown() bool {
	return o.known
}

// OrElse returns the value when known, def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if !o.known {
		return def
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.known {
		return "unknown"
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes an unknown value as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.known {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Known(v)
	return nil
}

// Map applies fn to a known value. Unknown stays unknown.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	v, ok := o.Get()
	if !ok {
		return Unknown[U]()
	}
	return Known(fn(v))
}

// Map2 applies fn only when both operands are known.
func Map2[A, B, U any](a Optional[A], b Optional[B], fn func(A, B) U) Optional[U] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if !aok || !bok {
		return Unknown[U]()
	}
	return Known(fn(av, bv))
}

// FromPtr converts a nullable pointer into an Optional.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Unknown[T]()
	}
	return Known(*p)
}

// Ptr is the inverse of FromPtr.
func (o Optional[T]) Ptr() *T {
	if !o.known {
		return nil
	}
	v := o.value
	return &v
}
