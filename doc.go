// Package quanta is a toolkit for physical quantities: numbers that know
// which coordinate system they live in and which unit sits on every axis.
//
// What is inside?
//
//	units/     unit algebra: parse "kg m s^-2", decompose into factors,
//	           SI and binary prefixes, linear and affine conversion,
//	           extra unit tables loaded from YAML
//	coords/    axes and coordinate systems (Cartesian, polar, cylindrical,
//	           spherical, toroidal) and Transform between them
//	quantity/  Scalar, Sequence and Matrix; conversion into other systems;
//	           the prefix optimizer (Approach / ApproachWith); merge helpers
//
// Two engines:
//
//   - Conversion: q.To(name, sys) re-expresses values in another system,
//     unit-only when both systems share geometry, through Cartesian base
//     units otherwise.
//   - Prefix optimization: q.Approach(1) rewrites 1024 kg as 1.024 Mg and
//     1e-19 m as 0.1 am, choosing per axis the legal prefix whose values sit
//     closest to the target magnitude.
//
// Every quantity is immutable; each operation returns a new value and is
// safe for concurrent use.
//
// Quick example:
//
//	q, _ := quantity.NewScalar("mass", 1024, units.MustParse("kg"))
//	r, _ := q.Approach(1)
//	fmt.Println(r) // mass = 1.024 Mg
//
//	go get github.com/katalvlaran/quanta
package quanta
