// Package rounding defines the rounding modes and orderings shared by the
// arbitrary-precision types, and rounding operations on fixed-width unsigned
// values.
package rounding

import (
	"fmt"
	"strings"
)

// Mode selects how an inexact result is turned into a representable one.
type Mode int

const (
	// Down rounds toward zero.
	Down Mode = iota
	// Up rounds away from zero.
	Up
	// Floor rounds toward negative infinity.
	Floor
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Nearest rounds to the closer candidate, ties to the even one.
	Nearest
	// Exact panics if the result is not exact.
	Exact
)

var modeNames = [...]string{"Down", "Up", "Floor", "Ceiling", "Nearest", "Exact"}

// Modes returns all rounding modes in declaration order.
func Modes() []Mode {
	return []Mode{Down, Up, Floor, Ceiling, Nearest, Exact}
}

// String returns the mode name, e.g. "Nearest".
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Parse returns the mode with the given name, ignoring case.
func Parse(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q", s)
}

// Neg returns the mode that rounds -x the way m rounds x: Floor and Ceiling
// swap, the others are symmetric.
func (m Mode) Neg() Mode {
	switch m {
	case Floor:
		return Ceiling
	case Ceiling:
		return Floor
	default:
		return m
	}
}

// Ordering compares a rounded result with the exact value it stands for.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Reverse returns the ordering seen from the other side, used when a result
// is negated.
func (o Ordering) Reverse() Ordering { return -o }

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// RoundsUp decides the direction of an inexact non-negative result that lies
// strictly between q and q+1. half is the sign of the comparison between the
// discarded fraction and one half, and qOdd reports whether q is odd.
//
// It returns ok == false in Exact mode; callers panic with their own message.
func RoundsUp(m Mode, half int, qOdd bool) (up, ok bool) {
	switch m {
	case Down, Floor:
		return false, true
	case Up, Ceiling:
		return true, true
	case Nearest:
		switch {
		case half < 0:
			return false, true
		case half > 0:
			return true, true
		default:
			return qOdd, true
		}
	case Exact:
		return false, false
	}
	panic(fmt.Sprintf("rounding: invalid mode %d", int(m)))
}
