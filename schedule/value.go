// Package schedule provides the time-indexed configuration containers
// used throughout soco: Value (an integral-or-fractional server count),
// Config (a d-vector of Values, one per server type), Schedule (a
// T-vector of Configs), and the conversions between the integral and
// fractional domains.
//
// soco's algorithms are shared across integral and fractional problems,
// and this package never uses Go generics: Value is a small tagged
// struct standing in for a type parameter, sized to exactly the two
// kinds a server count can take.
//
// A Schedule is a slice of Configs; Config carries the elementwise
// Add/Sub operations, and FromRaw/Flatten convert a Schedule to and
// from a flat, time-major vector of reals.
package schedule

import "fmt"

// Kind distinguishes an integral Value from a fractional one.
type Kind int

const (
	// Integral marks a Value backed by an int64 server count.
	Integral Kind = iota
	// Fractional marks a Value backed by a float64 server count.
	Fractional
)

func (k Kind) String() string {
	if k == Integral {
		return "integral"
	}
	return "fractional"
}

// Value is a single server-type multiplicity, either an integer
// (integral problems) or a real (fractional problems). Every arithmetic
// operation is defined for both kinds and preserves the receiver's kind,
// except where noted.
type Value struct {
	kind Kind
	i    int64
	f    float64
}

// NewIntegral builds an integral Value.
func NewIntegral(i int64) Value { return Value{kind: Integral, i: i} }

// NewFractional builds a fractional Value.
func NewFractional(f float64) Value { return Value{kind: Fractional, f: f} }

// Zero returns the zero Value of the given kind.
func Zero(k Kind) Value {
	if k == Integral {
		return NewIntegral(0)
	}
	return NewFractional(0)
}

// Kind reports whether v is Integral or Fractional.
func (v Value) Kind() Kind { return v.kind }

// Int returns v's integer value. It is only meaningful when v.Kind() == Integral.
func (v Value) Int() int64 { return v.i }

// ToReal converts v to a float64 regardless of its kind.
func (v Value) ToReal() float64 {
	if v.kind == Integral {
		return float64(v.i)
	}
	return v.f
}

// Add returns v + w. Panics if v and w differ in Kind: arithmetic across
// kinds is a programmer error, never a user-triggered condition.
func (v Value) Add(w Value) Value {
	v.mustMatch(w)
	if v.kind == Integral {
		return NewIntegral(v.i + w.i)
	}
	return NewFractional(v.f + w.f)
}

// Sub returns v - w. See Add for the Kind-mismatch panic policy.
func (v Value) Sub(w Value) Value {
	v.mustMatch(w)
	if v.kind == Integral {
		return NewIntegral(v.i - w.i)
	}
	return NewFractional(v.f - w.f)
}

// Pos returns the positive part of v, max(0, v).
func (v Value) Pos() Value {
	if v.kind == Integral {
		if v.i > 0 {
			return v
		}
		return NewIntegral(0)
	}
	if v.f > 0 {
		return v
	}
	return NewFractional(0)
}

// Compare returns -1, 0, or 1 as v is less than, equal to, or greater
// than w, comparing by real value so Integral and Fractional Values
// compare meaningfully against each other.
func (v Value) Compare(w Value) int {
	a, b := v.ToReal(), w.ToReal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer for debug printing.
func (v Value) String() string {
	if v.kind == Integral {
		return fmt.Sprintf("%d", v.i)
	}
	return fmt.Sprintf("%g", v.f)
}

func (v Value) mustMatch(w Value) {
	if v.kind != w.kind {
		panic(fmt.Sprintf("schedule: Value kind mismatch: %s vs %s", v.kind, w.kind))
	}
}
