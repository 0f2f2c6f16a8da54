// Package units is the unit algebra behind quanta: it parses unit symbols,
// decomposes them into prefixed symbol×exponent factors, knows which symbols
// accept which prefixes, and converts values through the SI base
// representation.
//
// What is in here?
//
//   - Prefix tables: SI (quecto…quetta) and IEC binary (Ki…Yi).
//   - Definition: one named unit with its symbols, legal prefixes, scale,
//     optional affine offset and gonum physical Dimensions.
//   - Registry: immutable symbol table; Default() holds SI base/derived and
//     common non-SI units, LoadDefinitions adds custom ones from YAML.
//   - Unit: immutable product of factors, e.g. "kg m^2 s^-2".
//
// Usage:
//
//	u, err := units.Parse("km h^-1")
//	v, err := units.Convert(100, u, units.MustParse("m s^-1")) // 27.77…
//
// Parsing rules:
//
//	factors are separated by whitespace, exponents follow '^' ("m^-3");
//	an exact symbol match always beats a prefix split ("min" is the minute,
//	"mm" the millimeter); micro accepts "μ", "µ" and "u" and renders as "μ".
//
// Conversion rules:
//
//	affine offsets apply only to a single factor with exponent 1 (°C → K);
//	in products and powers the unit scales linearly.
package units
