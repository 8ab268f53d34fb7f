package natural

import (
	"fmt"
	"strings"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func checkTextBase(base int) {
	if base < 2 || base > len(digitChars) {
		panic(fmt.Sprintf("natural: text base %d out of range [2, 36]", base))
	}
}

// Text returns x in the given base, using lower-case letters for digits
// above 9. It panics unless 2 <= base <= 36.
func (x *Natural) Text(base int) string {
	checkTextBase(base)
	digits := ToDigitsDesc(x, uint8(base))
	if len(digits) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteByte(digitChars[d])
	}
	return sb.String()
}

// String returns x in base 10.
func (x *Natural) String() string { return x.Text(10) }

// Parse reads a Natural written in the given base. Letters may be either
// case and an underscore may separate digits. It returns false for an empty
// or malformed string, and panics unless 2 <= base <= 36.
func Parse(s string, base int) (*Natural, bool) {
	checkTextBase(base)
	digits := make([]uint8, 0, len(s))
	prevUnderscore := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if prevUnderscore {
				return nil, false
			}
			prevUnderscore = true
			continue
		}
		prevUnderscore = false
		d := strings.IndexByte(digitChars, lower(c))
		if d < 0 || d >= base {
			return nil, false
		}
		digits = append(digits, uint8(d))
	}
	if len(digits) == 0 || prevUnderscore {
		return nil, false
	}
	return FromDigitsDesc(uint64(base), digits)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Format implements fmt.Formatter for the verbs b, o, d, x, X, s and v.
func (x *Natural) Format(s fmt.State, ch rune) {
	var str string
	switch ch {
	case 'b':
		str = x.Text(2)
	case 'o':
		str = x.Text(8)
	case 'd', 's', 'v':
		str = x.Text(10)
	case 'x':
		str = x.Text(16)
	case 'X':
		str = strings.ToUpper(x.Text(16))
	default:
		fmt.Fprintf(s, "%%!%c(natural.Natural=%s)", ch, x.String())
		return
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := " "
		if s.Flag('0') {
			pad = "0"
		}
		str = strings.Repeat(pad, w-len(str)) + str
	}
	fmt.Fprint(s, str)
}
