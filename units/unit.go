// SPDX-License-Identifier: MIT

package units

import (
	"math"
	"slices"
	"strconv"
	"strings"

	gounit "gonum.org/v1/gonum/unit"
)

// Factor is one symbol×exponent term of a Unit.
//
// Symbol is the term as written without exponent, prefix included ("kg").
// Bare is the definition symbol the prefix is attached to ("g").
type Factor struct {
	Symbol   string
	Bare     string
	Prefix   Prefix
	Def      *Definition // shared with the registry; read-only
	Exponent int
}

// String renders the factor as "sym" or "sym^exp".
func (f Factor) String() string {
	return f.Symbol + exponentSuffix(f.Exponent)
}

// scale returns the linear multiplier of the factor towards base units,
// i.e. (prefix·factor)^exponent.
func (f Factor) scale() float64 {
	s := f.Prefix.pow(f.Exponent)
	if f.Def.Factor != 1 {
		s *= math.Pow(f.Def.Factor, float64(f.Exponent))
	}

	return s
}

// exponentSuffix returns "" for 1 and "^n" otherwise.
func exponentSuffix(exp int) string {
	if exp == 1 {
		return ""
	}

	return "^" + strconv.Itoa(exp)
}

// Unit is an immutable, ordered product of factors such as "kg m^2 s^-2".
// The zero Unit represents an absent unit.
type Unit struct {
	symbol  string
	factors []Factor
}

// newUnit assembles a Unit from already resolved factors.
func newUnit(factors []Factor) Unit {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}

	return Unit{symbol: strings.Join(parts, " "), factors: factors}
}

// Symbol returns the canonical symbol string, factors joined by one space.
func (u Unit) Symbol() string { return u.symbol }

// String implements fmt.Stringer.
func (u Unit) String() string { return u.symbol }

// IsZero reports whether u is the zero (absent) Unit.
func (u Unit) IsZero() bool { return len(u.factors) == 0 }

// Equal reports whether u and o render to the same symbol over the same
// definitions.
func (u Unit) Equal(o Unit) bool {
	if u.symbol != o.symbol || len(u.factors) != len(o.factors) {
		return false
	}
	for i := range u.factors {
		if u.factors[i].Def != o.factors[i].Def {
			return false
		}
	}

	return true
}

// Factors returns a copy of the ordered factor list.
func (u Unit) Factors() []Factor {
	return slices.Clone(u.factors)
}

// Decompose returns the ordered (symbol, definition, exponent) factors of u.
func Decompose(u Unit) []Factor {
	return u.Factors()
}

// Definitions returns the definition of every factor, in factor order.
func (u Unit) Definitions() []*Definition {
	out := make([]*Definition, len(u.factors))
	for i, f := range u.factors {
		out[i] = f.Def
	}

	return out
}

// Dimensions returns the physical dimensions of u as a gonum Dimensions map.
// Dimensions that cancel out are omitted.
func (u Unit) Dimensions() gounit.Dimensions {
	out := make(gounit.Dimensions)
	for _, f := range u.factors {
		for d, p := range f.Def.Dimensions {
			out[d] += p * f.Exponent
		}
	}
	for d, p := range out {
		if p == 0 {
			delete(out, d)
		}
	}

	return out
}

// IsLinear reports whether converting u to base units is a pure scaling.
// Only a single affine factor with exponent 1 keeps its offset; in any
// product or power the offset is meaningless and the term scales linearly.
func (u Unit) IsLinear() bool {
	return !u.affine()
}

// IsLinear is the package-level form of Unit.IsLinear.
func IsLinear(u Unit) bool {
	return u.IsLinear()
}

func (u Unit) affine() bool {
	return len(u.factors) == 1 && u.factors[0].Exponent == 1 && !u.factors[0].Def.IsLinear()
}

// scale returns the product of the factor scales.
func (u Unit) scale() float64 {
	s := 1.0
	for _, f := range u.factors {
		s *= f.scale()
	}

	return s
}

// splitFactor splits "m^-3" into ("m", -3). A term without '^' has
// exponent 1. Zero exponents are rejected.
func splitFactor(term string) (string, int, error) {
	sym, expText, found := strings.Cut(term, "^")
	if !found {
		return sym, 1, nil
	}
	if sym == "" || expText == "" {
		return "", 0, symbolErrorf(term, ErrMalformedSymbol)
	}
	exp, err := strconv.Atoi(expText)
	if err != nil || exp == 0 {
		return "", 0, symbolErrorf(term, ErrMalformedSymbol)
	}

	return sym, exp, nil
}
