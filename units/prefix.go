package units

import (
	"math"
	"strconv"
)

// Prefix is a unit-scaling multiplier such as kilo or kibi.
// The scale is stored as Base^Exponent. Binary powers are exact through
// math.Ldexp; decimal powers come from pow10, which holds the correctly
// rounded value of every literal 1eN.
type Prefix struct {
	Symbol   string // canonical rendering, e.g. "μ"
	Name     string // e.g. "micro"
	Base     int    // 10 or 2
	Exponent int    // power of Base

	aliases []string // extra spellings accepted by the parser, e.g. "u"
}

// Identity is the empty prefix with scale 1. It is implicitly legal for
// every prefixable symbol.
var Identity = Prefix{Symbol: "", Name: "", Base: 10, Exponent: 0}

// SIPrefixes lists the decimal SI prefixes from quecto to quetta.
var SIPrefixes = []Prefix{
	{Symbol: "q", Name: "quecto", Base: 10, Exponent: -30},
	{Symbol: "r", Name: "ronto", Base: 10, Exponent: -27},
	{Symbol: "y", Name: "yocto", Base: 10, Exponent: -24},
	{Symbol: "z", Name: "zepto", Base: 10, Exponent: -21},
	{Symbol: "a", Name: "atto", Base: 10, Exponent: -18},
	{Symbol: "f", Name: "femto", Base: 10, Exponent: -15},
	{Symbol: "p", Name: "pico", Base: 10, Exponent: -12},
	{Symbol: "n", Name: "nano", Base: 10, Exponent: -9},
	{Symbol: "μ", Name: "micro", Base: 10, Exponent: -6, aliases: []string{"u", "µ"}},
	{Symbol: "m", Name: "milli", Base: 10, Exponent: -3},
	{Symbol: "c", Name: "centi", Base: 10, Exponent: -2},
	{Symbol: "d", Name: "deci", Base: 10, Exponent: -1},
	{Symbol: "da", Name: "deca", Base: 10, Exponent: 1},
	{Symbol: "h", Name: "hecto", Base: 10, Exponent: 2},
	{Symbol: "k", Name: "kilo", Base: 10, Exponent: 3},
	{Symbol: "M", Name: "mega", Base: 10, Exponent: 6},
	{Symbol: "G", Name: "giga", Base: 10, Exponent: 9},
	{Symbol: "T", Name: "tera", Base: 10, Exponent: 12},
	{Symbol: "P", Name: "peta", Base: 10, Exponent: 15},
	{Symbol: "E", Name: "exa", Base: 10, Exponent: 18},
	{Symbol: "Z", Name: "zetta", Base: 10, Exponent: 21},
	{Symbol: "Y", Name: "yotta", Base: 10, Exponent: 24},
	{Symbol: "R", Name: "ronna", Base: 10, Exponent: 27},
	{Symbol: "Q", Name: "quetta", Base: 10, Exponent: 30},
}

// BinaryPrefixes lists the IEC binary prefixes from kibi to yobi.
var BinaryPrefixes = []Prefix{
	{Symbol: "Ki", Name: "kibi", Base: 2, Exponent: 10},
	{Symbol: "Mi", Name: "mebi", Base: 2, Exponent: 20},
	{Symbol: "Gi", Name: "gibi", Base: 2, Exponent: 30},
	{Symbol: "Ti", Name: "tebi", Base: 2, Exponent: 40},
	{Symbol: "Pi", Name: "pebi", Base: 2, Exponent: 50},
	{Symbol: "Ei", Name: "exbi", Base: 2, Exponent: 60},
	{Symbol: "Zi", Name: "zebi", Base: 2, Exponent: 70},
	{Symbol: "Yi", Name: "yobi", Base: 2, Exponent: 80},
}

// Factor returns the multiplier of the prefix.
func (p Prefix) Factor() float64 {
	return p.pow(1)
}

// IsIdentity reports whether p is the empty prefix.
func (p Prefix) IsIdentity() bool {
	return p.Symbol == "" && p.Exponent == 0
}

// pow returns Factor()^n without going through math.Pow, so that e.g.
// milli^-3 is exactly 1e9 and quecto is exactly 1e-30.
func (p Prefix) pow(n int) float64 {
	if p.Base == 2 {
		return math.Ldexp(1, p.Exponent*n)
	}

	return pow10(p.Exponent * n)
}

// Range of decimal exponents with a finite, non-zero float64 value.
const (
	minPow10 = -323
	maxPow10 = 308
)

// pow10tab[e-minPow10] is the float64 nearest to 10^e. math.Pow10 builds
// negative powers by multiplication and is off by one ulp for some of them
// (Pow10(-30) = 9.999999999999999e-31), so the table is parsed from literals.
var pow10tab = func() []float64 {
	out := make([]float64, maxPow10-minPow10+1)
	for e := minPow10; e <= maxPow10; e++ {
		v, err := strconv.ParseFloat("1e"+strconv.Itoa(e), 64)
		if err != nil {
			panic(err)
		}
		out[e-minPow10] = v
	}

	return out
}()

// pow10 returns 10^e rounded to nearest; 0 or +Inf outside the float64 range.
func pow10(e int) float64 {
	switch {
	case e < minPow10:
		return 0
	case e > maxPow10:
		return math.Inf(1)
	}

	return pow10tab[e-minPow10]
}

// spellings returns the canonical symbol followed by all aliases.
func (p Prefix) spellings() []string {
	out := make([]string, 0, 1+len(p.aliases))
	out = append(out, p.Symbol)

	return append(out, p.aliases...)
}

// prefixSet joins prefix tables, dropping duplicates by symbol.
func prefixSet(tables ...[]Prefix) []Prefix {
	seen := make(map[string]struct{})
	var out []Prefix
	for _, table := range tables {
		for _, p := range table {
			if _, ok := seen[p.Symbol]; ok {
				continue
			}
			seen[p.Symbol] = struct{}{}
			out = append(out, p)
		}
	}

	return out
}
