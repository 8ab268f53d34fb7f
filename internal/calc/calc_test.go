package calc

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/rounding"
)

func texts(res Result) []string {
	out := make([]string, len(res.Values))
	for i, v := range res.Values {
		out[i] = v.Text
	}
	return out
}

func TestEval(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	nearest := Options{Base: 10, Rounding: rounding.Nearest}
	tests := []struct {
		op   string
		args []string
		opts Options
		want []string
	}{
		{"add", []string{"18446744073709551615", "1"}, nearest, []string{"18446744073709551616"}},
		{"sub", []string{"5", "12"}, nearest, []string{"-7"}},
		{"mul", []string{"-3", "7"}, nearest, []string{"-21"}},
		{"divmod", []string{"-7", "2"}, nearest, []string{"-4", "1"}},
		{"divrem", []string{"-7", "2"}, nearest, []string{"-3", "-1"}},
		{"ceildivmod", []string{"7", "2"}, nearest, []string{"4", "-1"}},
		{"divround", []string{"-5", "2"}, nearest, []string{"-2", "Greater"}},
		{"divround", []string{"-5", "2"}, Options{Base: 10, Rounding: rounding.Floor}, []string{"-3", "Less"}},
		{"divexact", []string{"-84", "7"}, nearest, []string{"-12"}},
		{"pow", []string{"-2", "65"}, nearest, []string{"-36893488147419103232"}},
		{"addmul", []string{"1", "2", "3"}, nearest, []string{"7"}},
		{"submul", []string{"1", "2", "3"}, nearest, []string{"-5"}},
		{"shl", []string{"-3", "2"}, nearest, []string{"-12"}},
		{"shr", []string{"-7", "1"}, nearest, []string{"-4"}},
		{"shrround", []string{"-5", "1"}, nearest, []string{"-2", "Greater"}},
		{"roundmult", []string{"-10", "4"}, nearest, []string{"-8", "Greater"}},
		{"roundpow2", []string{"-100", "4"}, Options{Base: 10, Rounding: rounding.Floor}, []string{"-112", "Less"}},
		{"eqmod", []string{"-3", "21", "8"}, nearest, []string{"true"}},
		{"eqmodpow2", []string{"-3", "21", "3"}, nearest, []string{"true"}},
		{"eqmodpow2", []string{"-3", "21", "4"}, nearest, []string{"false"}},
		{"divisible", []string{"-84", "12"}, nearest, []string{"true"}},
		{"hamming", []string{"-1", "1"}, nearest, []string{"none"}},
		{"hamming", []string{"0", "255"}, nearest, []string{"8"}},
		{"and", []string{"-6", "13"}, nearest, []string{"8"}},
		{"or", []string{"-6", "13"}, nearest, []string{"-1"}},
		{"xor", []string{"-6", "13"}, nearest, []string{"-9"}},
		{"andnot", []string{"13", "-6"}, nearest, []string{"5"}},
		{"not", []string{"0"}, nearest, []string{"-1"}},
		{"getbit", []string{"-3", "1"}, nearest, []string{"false"}},
		{"getbits", []string{"-3", "1", "6"}, nearest, []string{"30"}},
		{"modpow2", []string{"-3", "3"}, nearest, []string{"5"}},
		{"bits", []string{"-96"}, nearest, []string{"7", "5", "2"}},
		{"bits", []string{"0"}, nearest, []string{"0", "0"}},
		{"digits", []string{"255", "16"}, nearest, []string{"15 15"}},
		{"digits", []string{"0", "7"}, nearest, []string{""}},
		{"fromdigits", []string{"16", "15", "15"}, nearest, []string{"255"}},
		{"fromdigits", []string{"10"}, nearest, []string{"0"}},
		{"fromfloat", []string{"-2.5"}, nearest, []string{"-2", "Greater"}},
		{"tofloat", []string{"-12"}, nearest, []string{"-12", "Equal"}},
		{"add", []string{"ff", "1"}, Options{Base: 16, Rounding: rounding.Nearest}, []string{"100"}},
		{"modadd", []string{"7", "5", "10"}, nearest, []string{"2"}},
		{"modsub", []string{"2", "9", "10"}, nearest, []string{"3"}},
		{"modmul", []string{"7", "5", "10"}, nearest, []string{"5"}},
		{"modpow", []string{"4", "13", "497"}, nearest, []string{"445"}},
		{"modshl", []string{"3", "100", "7"}, nearest, []string{"6"}},
		{"modpow2add", []string{"10", "14", "4"}, nearest, []string{"8"}},
		{"modpow2sub", []string{"10", "14", "4"}, nearest, []string{"12"}},
		{"gcd", []string{"240", "46"}, nearest, []string{"2"}},
		{"lcm", []string{"240", "46"}, nearest, []string{"5520"}},
		{"xgcd", []string{"240", "46"}, nearest, []string{"2", "-9", "47"}},
		{"sqrt", []string{"99"}, nearest, []string{"9", "18"}},
		{"root", []string{"1001", "3"}, nearest, []string{"10", "1"}},
		{"getbit", []string{"-1", "67108864"}, nearest, []string{"true"}},
	}
	for _, tt := range tests {
		t.Run(tt.op+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()
			res, err := r.Eval(tt.op, tt.args, tt.opts)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			got := texts(res)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Eval(%s %v) = %q, want %q", tt.op, tt.args, got, tt.want)
			}
			if res.Op != tt.op {
				t.Errorf("Result.Op = %q", res.Op)
			}
		})
	}
}

func TestEvalTwos(t *testing.T) {
	t.Parallel()
	res, err := NewRegistry().Eval("twos", []string{"-1"}, Options{Base: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Values[0].Text, "0xffffffff") {
		t.Errorf("twos(-1) = %q", res.Values[0].Text)
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	opts := Options{Base: 10, Rounding: rounding.Exact}
	tests := []struct {
		name        string
		op          string
		args        []string
		validation  bool
		calculation bool
		contains    string
	}{
		{"unknown op", "frobnicate", nil, true, false, "unknown operation"},
		{"wrong arity", "add", []string{"1"}, true, false, "expects 2"},
		{"too few", "fromdigits", nil, true, false, "at least 1"},
		{"bad integer", "add", []string{"1x", "2"}, true, false, "operand 1"},
		{"negative natural", "digits", []string{"-5", "10"}, true, false, "non-negative"},
		{"bad count", "shl", []string{"1", "-2"}, true, false, "operand 2"},
		{"digit too large", "fromdigits", []string{"10", "1", "10"}, true, false, "less than the base"},
		{"division by zero", "divmod", []string{"1", "0"}, false, true, "integer: division by zero"},
		{"inexact", "divround", []string{"7", "2"}, false, true, "divround"},
		{"inexact divexact", "divexact", []string{"7", "2"}, false, true, "divexact"},
		{"digit base one", "digits", []string{"5", "1"}, false, true, "digits"},
		{"huge shift", "shl", []string{"1", "18446744073709551615"}, true, false, "bit count of at most"},
		{"huge bit position", "getbits", []string{"-1", "0", "67108865"}, true, false, "operand 3"},
		{"huge power", "pow", []string{"3", "67108864"}, true, false, "exponent"},
		{"huge modulus power of two", "modpow2sub", []string{"0", "1", "99999999999"}, true, false, "operand 3"},
		{"unreduced modular operand", "modadd", []string{"10", "1", "10"}, false, true, "not reduced"},
		{"zeroth root", "root", []string{"8", "0"}, false, true, "zeroth root"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := r.Eval(tt.op, tt.args, opts)
			if err == nil {
				t.Fatal("expected an error")
			}
			var validationErr apperrors.ValidationError
			if tt.validation && !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %T: %v", err, err)
			}
			var calcErr apperrors.CalculationError
			if tt.calculation && !errors.As(err, &calcErr) {
				t.Errorf("expected CalculationError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should contain %q", err, tt.contains)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	names := r.List()
	if len(names) < 30 {
		t.Errorf("only %d operations registered", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("List is not sorted: %q before %q", names[i-1], names[i])
		}
	}
	if _, ok := r.Get("divround"); !ok {
		t.Error("divround is missing")
	}
	op, _ := r.Get("add")
	if err := r.Register(op); err == nil {
		t.Error("duplicate registration succeeded")
	}
	if err := r.Register(Operation{Name: "empty"}); err == nil {
		t.Error("registration without an evaluator succeeded")
	}
	for _, op := range r.Operations() {
		if op.Doc == "" || (op.Arity != 0 && op.Usage == "") {
			t.Errorf("operation %q lacks documentation", op.Name)
		}
	}
}
