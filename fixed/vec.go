package fixed

// Vec is a 2D vector of Fixed components. Y grows downward.
type Vec struct {
	X, Y Fixed
}

// V builds a vector from whole numbers.
func V(x, y int) Vec { return Vec{X: FromInt(x), Y: FromInt(y)} }

func (v Vec) Add(o Vec) Vec     { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec     { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Neg() Vec          { return Vec{-v.X, -v.Y} }
func (v Vec) Scale(s Fixed) Vec { return Vec{v.X.Mul(s), v.Y.Mul(s)} }
func (v Vec) IsZero() bool      { return v.X == 0 && v.Y == 0 }

// Offset moves the point by (dx, dy).
func (v Vec) Offset(dx, dy Fixed) Vec { return Vec{v.X + dx, v.Y + dy} }

func (v Vec) Dot(o Vec) Fixed { return v.X.Mul(o.X) + v.Y.Mul(o.Y) }

// DotWide is the exact dot product in raw Q14 units.
func (v Vec) DotWide(o Vec) int64 {
	return int64(v.X)*int64(o.X) + int64(v.Y)*int64(o.Y)
}

// LenSqWide is the exact squared length in raw Q14 units. It cannot overflow
// for any pair of Fixed components.
func (v Vec) LenSqWide() int64 { return v.DotWide(v) }

// Len is the floor of the Euclidean length.
func (v Vec) Len() Fixed { return Fixed(isqrt(uint64(v.LenSqWide()))) }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X.Div(l), v.Y.Div(l)}
}

// RemoveInward cancels the component of v that points against n (v·n < 0)
// and leaves v untouched otherwise. n need not be unit length. Each
// correction term is rounded away from zero, so the exact dot product of the
// result with n is never negative.
func (v Vec) RemoveInward(n Vec) Vec {
	d := v.DotWide(n)
	if d >= 0 {
		return v
	}
	n2 := n.LenSqWide()
	if n2 == 0 {
		return v
	}
	return Vec{
		X: v.X + correction(n.X, -d, n2),
		Y: v.Y + correction(n.Y, -d, n2),
	}
}

// correction returns sign(c) * ceil(|c| * k / n2) for k, n2 > 0.
func correction(c Fixed, k, n2 int64) Fixed {
	if c == 0 {
		return 0
	}
	m := int64(c)
	neg := m < 0
	if neg {
		m = -m
	}
	q := (m*k + n2 - 1) / n2
	if neg {
		return Fixed(-q)
	}
	return Fixed(q)
}

func (v Vec) String() string { return "(" + v.X.String() + ", " + v.Y.String() + ")" }
