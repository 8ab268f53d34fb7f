// Package calc is the registry of named operations evaluated by the
// limbcalc eval command. Each operation parses its operands, runs the
// arithmetic packages and renders the results as text.
package calc

import (
	"fmt"
	"sort"
	"strconv"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/integer"
	"github.com/agbru/limbcalc/internal/natural"
	"github.com/agbru/limbcalc/internal/rounding"
)

// Options carries the settings shared by all operations.
type Options struct {
	// Base is the radix of operands and results.
	Base int
	// Rounding is used by the rounding operations.
	Rounding rounding.Mode
}

// Value is one named output of an operation.
type Value struct {
	Name string `json:"name"`
	Text string `json:"value"`
}

// Result is the outcome of evaluating an operation.
type Result struct {
	Op     string  `json:"op"`
	Values []Value `json:"values"`
}

// Operation describes a named operation.
type Operation struct {
	// Name is the command-line name.
	Name string
	// Usage lists the operands, e.g. "x y".
	Usage string
	// Doc is a one-line description.
	Doc string
	// Arity is the number of operands, or -1 for at least MinArgs.
	Arity int
	// MinArgs is the minimum operand count when Arity is -1.
	MinArgs int
	eval    func(a *args, opts Options) []Value
}

// Registry maps names to operations.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry returns a registry holding every built-in operation.
func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Operation)}
	for _, op := range builtins() {
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds op. It fails if the name is empty or already taken.
func (r *Registry) Register(op Operation) error {
	if op.Name == "" || op.eval == nil {
		return fmt.Errorf("calc: incomplete operation %q", op.Name)
	}
	if _, dup := r.ops[op.Name]; dup {
		return fmt.Errorf("calc: operation %q registered twice", op.Name)
	}
	r.ops[op.Name] = op
	return nil
}

// Get looks an operation up by name.
func (r *Registry) Get(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// List returns the sorted operation names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operations returns the operations sorted by name.
func (r *Registry) Operations() []Operation {
	names := r.List()
	ops := make([]Operation, len(names))
	for i, name := range names {
		ops[i] = r.ops[name]
	}
	return ops
}

// Eval evaluates the named operation on raw operands. Malformed operands
// yield a ValidationError. Contract violations raised by the arithmetic,
// such as a zero divisor, yield a CalculationError.
func (r *Registry) Eval(name string, raw []string, opts Options) (res Result, err error) {
	op, ok := r.ops[name]
	if !ok {
		return Result{}, apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", name)}
	}
	switch {
	case op.Arity >= 0 && len(raw) != op.Arity:
		return Result{}, apperrors.ValidationError{
			Field:   "args",
			Message: fmt.Sprintf("%s expects %d operand(s) (%s), got %d", name, op.Arity, op.Usage, len(raw)),
		}
	case op.Arity < 0 && len(raw) < op.MinArgs:
		return Result{}, apperrors.ValidationError{
			Field:   "args",
			Message: fmt.Sprintf("%s expects at least %d operand(s) (%s), got %d", name, op.MinArgs, op.Usage, len(raw)),
		}
	}

	a := &args{raw: raw, base: opts.Base}
	defer func() {
		if rec := recover(); rec != nil {
			if pe, ok := rec.(parseError); ok {
				err = apperrors.ValidationError{Field: "args", Message: pe.msg}
				return
			}
			err = apperrors.RecoverPanic(name, rec)
		}
	}()
	return Result{Op: name, Values: op.eval(a, opts)}, nil
}

// parseError aborts an evaluation on a malformed operand.
type parseError struct{ msg string }

// args hands out parsed operands by position.
type args struct {
	raw  []string
	base int
}

func (a *args) fail(i int, what string) {
	panic(parseError{msg: fmt.Sprintf("operand %d (%q) is not %s", i+1, a.raw[i], what)})
}

func (a *args) integer(i int) *integer.Integer {
	x, ok := integer.Parse(a.raw[i], a.base)
	if !ok {
		a.fail(i, fmt.Sprintf("an integer in base %d", a.base))
	}
	return x
}

func (a *args) natural(i int) *natural.Natural {
	x, ok := natural.Parse(a.raw[i], a.base)
	if !ok {
		a.fail(i, fmt.Sprintf("a non-negative integer in base %d", a.base))
	}
	return x
}

// count parses a decimal bit count, shift or digit base.
func (a *args) count(i int) uint64 {
	v, err := strconv.ParseUint(a.raw[i], 10, 64)
	if err != nil {
		a.fail(i, "a non-negative decimal count")
	}
	return v
}

// maxBitCount bounds shift amounts and bit positions so that a single
// operand cannot demand an allocation of 2^64 bits.
const maxBitCount = 1 << 26

// bitCount parses a decimal shift or bit position of at most maxBitCount.
func (a *args) bitCount(i int) uint64 {
	v := a.count(i)
	if v > maxBitCount {
		a.fail(i, fmt.Sprintf("a bit count of at most %d", maxBitCount))
	}
	return v
}

// exponent parses the exponent of base so that base^e stays within
// maxBitCount bits.
func (a *args) exponent(i int, base *natural.Natural) uint64 {
	e := a.count(i)
	if b := base.SignificantBits(); b > 1 && e > maxBitCount/b {
		a.fail(i, fmt.Sprintf("an exponent keeping the result under %d bits", maxBitCount))
	}
	return e
}

func (a *args) float(i int) float64 {
	f, err := strconv.ParseFloat(a.raw[i], 64)
	if err != nil {
		a.fail(i, "a floating-point number")
	}
	return f
}
