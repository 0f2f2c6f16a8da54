package units

import (
	"math"
	"slices"
	"sync"

	gounit "gonum.org/v1/gonum/unit"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry: SI base and derived units plus a
// handful of common non-SI units. The table is static for the process
// lifetime.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtinDefinitions()...)
		if err != nil {
			// the built-in table is fixed; failing here is a programming error
			panic(err)
		}
		defaultRegistry = r
	})

	return defaultRegistry
}

// si declares a definition whose canonical symbol takes SI prefixes.
func si(name string, factor float64, d gounit.Dimensions, symbols ...string) *Definition {
	return &Definition{
		Name:       name,
		Symbols:    symbols,
		Prefixable: slices.Clone(symbols[:1]),
		Prefixes:   slices.Clone(SIPrefixes),
		Factor:     factor,
		Dimensions: d,
	}
}

// plain declares a definition that never takes a prefix.
func plain(name string, factor float64, d gounit.Dimensions, symbols ...string) *Definition {
	return &Definition{Name: name, Symbols: symbols, Factor: factor, Dimensions: d}
}

func builtinDefinitions() []*Definition {
	const (
		I  = gounit.CurrentDim
		L  = gounit.LengthDim
		Iv = gounit.LuminousIntensityDim
		M  = gounit.MassDim
		N  = gounit.MoleDim
		Th = gounit.TemperatureDim
		T  = gounit.TimeDim
		A  = gounit.AngleDim
	)

	celsius := si("degree Celsius", 1, gounit.Dimensions{Th: 1}, "°C", "degC")
	celsius.Offset = 273.15

	liter := si("liter", 1e-3, gounit.Dimensions{L: 3}, "L", "l")
	liter.Prefixable = liter.Symbols

	bit := si("bit", 1, gounit.Dimensions{}, "bit")
	bit.Prefixes = prefixSet(SIPrefixes, BinaryPrefixes)
	octet := si("byte", 8, gounit.Dimensions{}, "B", "byte")
	octet.Prefixes = prefixSet(SIPrefixes, BinaryPrefixes)

	return []*Definition{
		// SI base units; mass goes through the gram, see Definition.
		si("meter", 1, gounit.Dimensions{L: 1}, "m"),
		si("gram", 1e-3, gounit.Dimensions{M: 1}, "g"),
		si("second", 1, gounit.Dimensions{T: 1}, "s"),
		si("ampere", 1, gounit.Dimensions{I: 1}, "A"),
		si("kelvin", 1, gounit.Dimensions{Th: 1}, "K"),
		si("mole", 1, gounit.Dimensions{N: 1}, "mol"),
		si("candela", 1, gounit.Dimensions{Iv: 1}, "cd"),

		// SI derived units.
		si("radian", 1, gounit.Dimensions{A: 1}, "rad"),
		si("steradian", 1, gounit.Dimensions{A: 2}, "sr"),
		si("hertz", 1, gounit.Dimensions{T: -1}, "Hz"),
		si("newton", 1, gounit.Dimensions{M: 1, L: 1, T: -2}, "N"),
		si("pascal", 1, gounit.Dimensions{M: 1, L: -1, T: -2}, "Pa"),
		si("joule", 1, gounit.Dimensions{M: 1, L: 2, T: -2}, "J"),
		si("watt", 1, gounit.Dimensions{M: 1, L: 2, T: -3}, "W"),
		si("coulomb", 1, gounit.Dimensions{T: 1, I: 1}, "C"),
		si("volt", 1, gounit.Dimensions{M: 1, L: 2, T: -3, I: -1}, "V"),
		si("farad", 1, gounit.Dimensions{M: -1, L: -2, T: 4, I: 2}, "F"),
		si("ohm", 1, gounit.Dimensions{M: 1, L: 2, T: -3, I: -2}, "Ω", "Ohm"),
		si("siemens", 1, gounit.Dimensions{M: -1, L: -2, T: 3, I: 2}, "S"),
		si("weber", 1, gounit.Dimensions{M: 1, L: 2, T: -2, I: -1}, "Wb"),
		si("tesla", 1, gounit.Dimensions{M: 1, T: -2, I: -1}, "T"),
		si("henry", 1, gounit.Dimensions{M: 1, L: 2, T: -2, I: -2}, "H"),
		celsius,
		si("lumen", 1, gounit.Dimensions{Iv: 1, A: 2}, "lm"),
		si("lux", 1, gounit.Dimensions{Iv: 1, A: 2, L: -2}, "lx"),
		si("becquerel", 1, gounit.Dimensions{T: -1}, "Bq"),
		si("gray", 1, gounit.Dimensions{L: 2, T: -2}, "Gy"),
		si("sievert", 1, gounit.Dimensions{L: 2, T: -2}, "Sv"),
		si("katal", 1, gounit.Dimensions{N: 1, T: -1}, "kat"),

		// Accepted and common non-SI units.
		liter,
		si("tonne", 1e3, gounit.Dimensions{M: 1}, "t"),
		si("bar", 1e5, gounit.Dimensions{M: 1, L: -1, T: -2}, "bar"),
		si("electronvolt", 1.602176634e-19, gounit.Dimensions{M: 1, L: 2, T: -2}, "eV"),
		si("parsec", 3.0856775814913673e16, gounit.Dimensions{L: 1}, "pc"),
		plain("minute", 60, gounit.Dimensions{T: 1}, "min"),
		plain("hour", 3600, gounit.Dimensions{T: 1}, "h"),
		plain("day", 86400, gounit.Dimensions{T: 1}, "d"),
		plain("degree", math.Pi/180, gounit.Dimensions{A: 1}, "deg", "°"),
		plain("angstrom", 1e-10, gounit.Dimensions{L: 1}, "Å", "Angstrom"),
		plain("astronomical unit", 149597870700, gounit.Dimensions{L: 1}, "au"),
		plain("light year", 9460730472580800, gounit.Dimensions{L: 1}, "ly"),
		bit,
		octet,
	}
}
