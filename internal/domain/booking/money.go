package booking

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (kobo for NGN).
type Money struct {
	minor int64
}

func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

// MoneyFromMajor converts a decimal amount such as 30500.5 into minor units.
func MoneyFromMajor(major float64) Money {
	return Money{minor: int64(math.Round(major * 100))}
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Major() float64 {
	return float64(m.minor) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) Times(n int64) Money {
	return Money{minor: m.minor * n}
}

// BasisPoints returns m × bp / 10000 rounded half away from zero to the
// nearest minor unit.
func (m Money) BasisPoints(bp int64) Money {
	product := m.minor * bp
	if product < 0 {
		return Money{minor: -((-product + 5000) / 10000)}
	}
	return Money{minor: (product + 5000) / 10000}
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) IsPositive() bool {
	return m.minor > 0
}

func (m Money) String() string {
	sign := ""
	minor := m.minor
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
