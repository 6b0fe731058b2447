// Package fixed implements the deterministic Q24.7 arithmetic used by the
// simulation. Every operation is plain integer math, so results are identical
// on every platform and compiler.
package fixed

import (
	"fmt"
	"math"
	"math/bits"
)

// FracBits is the number of fractional bits carried by a Fixed.
const FracBits = 7

const (
	one  = 1 << FracBits
	half = one >> 1
)

// Fixed is a signed fixed-point number with FracBits fractional bits.
type Fixed int32

var (
	Zero = Fixed(0)
	One  = Fixed(one)
	Max  = Fixed(math.MaxInt32)
	Min  = Fixed(math.MinInt32)
)

func FromInt(i int) Fixed { return Fixed(i << FracBits) }

// FromFloat rounds f to the nearest representable value. Only config and
// file boundaries use it; nothing in a tick does.
func FromFloat(f float64) Fixed { return Fixed(math.Round(f * one)) }

// FromRaw reinterprets an integer as the raw Q24.7 bit pattern.
func FromRaw(raw int32) Fixed { return Fixed(raw) }

func (f Fixed) Raw() int32 { return int32(f) }

// Int truncates toward negative infinity.
func (f Fixed) Int() int { return int(f >> FracBits) }

func (f Fixed) Float() float64 { return float64(f) / one }

func (f Fixed) Add(o Fixed) Fixed { return f + o }
func (f Fixed) Sub(o Fixed) Fixed { return f - o }
func (f Fixed) Neg() Fixed        { return -f }

// Mul truncates toward zero so that (-a)*b == -(a*b).
func (f Fixed) Mul(o Fixed) Fixed {
	p := int64(f) * int64(o)
	if p < 0 {
		return Fixed(-((-p) >> FracBits))
	}
	return Fixed(p >> FracBits)
}

// Div truncates toward zero. Dividing by zero is a caller bug.
func (f Fixed) Div(o Fixed) Fixed {
	if o == 0 {
		panic("fixed: division by zero")
	}
	return Fixed((int64(f) << FracBits) / int64(o))
}

// Sqrt returns the floor square root. Negative inputs yield zero.
func (f Fixed) Sqrt() Fixed {
	if f <= 0 {
		return 0
	}
	return Fixed(isqrt(uint64(f) << FracBits))
}

func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0 or 1 as a plain int.
func (f Fixed) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

func (f Fixed) IsZero() bool     { return f == 0 }
func (f Fixed) IsPositive() bool { return f > 0 }
func (f Fixed) IsNegative() bool { return f < 0 }

func (f Fixed) Min(o Fixed) Fixed {
	if o < f {
		return o
	}
	return f
}

func (f Fixed) Max(o Fixed) Fixed {
	if o > f {
		return o
	}
	return f
}

// Clamp limits f to [lo, hi]. lo must not exceed hi.
func (f Fixed) Clamp(lo, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func (f Fixed) String() string {
	neg := f < 0
	u := uint32(f)
	if neg {
		u = uint32(-int64(f))
	}
	// 7 fractional bits need at most 7 decimal digits
	frac := uint64(u&(one-1)) * 10000000 / one
	s := fmt.Sprintf("%d.%07d", u>>FracBits, frac)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if neg {
		return "-" + s
	}
	return s
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	// start above the root: 2^ceil(bitlen/2)
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}
