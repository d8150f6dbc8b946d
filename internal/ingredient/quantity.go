package ingredient

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is an exact rational amount. Keeping amounts as rationals means
// summing "1/2" three times yields exactly "1 1/2", and scaling a whole plan
// never accumulates floating point drift.
type Quantity struct {
	num int64
	den int64
}

// Zero is the additive identity.
var Zero = Quantity{num: 0, den: 1}

// NewQuantity builds a normalized rational from a numerator and denominator.
// A zero denominator is treated as 1.
func NewQuantity(num, den int64) Quantity {
	if den == 0 {
		den = 1
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Quantity{num: num, den: den}
}

// FromInt builds a whole-number quantity.
func FromInt(n int64) Quantity {
	return Quantity{num: n, den: 1}
}

// ParseQuantity parses a free-text amount: an integer ("2"), a decimal
// ("1.5"), a simple fraction ("1/2") or a mixed number ("1 1/2").
func ParseQuantity(s string) (Quantity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Zero, &ParseError{Input: s}
	}

	// Mixed number: whole part followed by a fraction.
	if whole, frac, ok := strings.Cut(trimmed, " "); ok {
		w, err := strconv.ParseInt(strings.TrimSpace(whole), 10, 64)
		if err != nil {
			return Zero, &ParseError{Input: s}
		}
		f, err := parseFraction(strings.TrimSpace(frac))
		if err != nil {
			return Zero, &ParseError{Input: s}
		}
		return FromInt(w).Add(f), nil
	}

	if strings.Contains(trimmed, "/") {
		q, err := parseFraction(trimmed)
		if err != nil {
			return Zero, &ParseError{Input: s}
		}
		return q, nil
	}

	if intPart, fracPart, ok := strings.Cut(trimmed, "."); ok {
		w, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Zero, &ParseError{Input: s}
		}
		if fracPart == "" || len(fracPart) > 9 {
			return Zero, &ParseError{Input: s}
		}
		f, err := strconv.ParseUint(fracPart, 10, 64)
		if err != nil {
			return Zero, &ParseError{Input: s}
		}
		den := int64(1)
		for range fracPart {
			den *= 10
		}
		frac := NewQuantity(int64(f), den)
		if w < 0 || strings.HasPrefix(intPart, "-") {
			return FromInt(w).Sub(frac), nil
		}
		return FromInt(w).Add(frac), nil
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return Zero, &ParseError{Input: s}
	}
	return FromInt(n), nil
}

func parseFraction(s string) (Quantity, error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok {
		return Zero, fmt.Errorf("not a fraction: %q", s)
	}
	num, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Zero, err
	}
	den, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Zero, err
	}
	if den == 0 {
		return Zero, fmt.Errorf("zero denominator in %q", s)
	}
	return NewQuantity(num, den), nil
}

// Add returns q + o.
func (q Quantity) Add(o Quantity) Quantity {
	return NewQuantity(q.num*o.den+o.num*q.den, q.den*o.den)
}

// Sub returns q - o.
func (q Quantity) Sub(o Quantity) Quantity {
	return NewQuantity(q.num*o.den-o.num*q.den, q.den*o.den)
}

// Mul returns q * o.
func (q Quantity) Mul(o Quantity) Quantity {
	return NewQuantity(q.num*o.num, q.den*o.den)
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.num == 0
}

// Equal reports exact equality.
func (q Quantity) Equal(o Quantity) bool {
	a, b := normalize(q), normalize(o)
	return a.num == b.num && a.den == b.den
}

// Float64 returns the closest floating point value, for display math only.
func (q Quantity) Float64() float64 {
	n := normalize(q)
	return float64(n.num) / float64(n.den)
}

// String renders whole numbers plainly ("4") and everything else as a mixed
// number ("1/2", "1 1/2"), matching how quantities appear on a recipe card.
func (q Quantity) String() string {
	n := normalize(q)
	if n.den == 1 {
		return strconv.FormatInt(n.num, 10)
	}
	whole := n.num / n.den
	rem := n.num % n.den
	if whole == 0 {
		return fmt.Sprintf("%d/%d", rem, n.den)
	}
	if rem < 0 {
		rem = -rem
	}
	return fmt.Sprintf("%d %d/%d", whole, rem, n.den)
}

// normalize guards against the zero value Quantity{} having den == 0.
func normalize(q Quantity) Quantity {
	if q.den == 0 {
		return Quantity{num: q.num, den: 1}
	}
	return q
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
