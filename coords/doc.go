// Package coords provides immutable coordinate systems whose axes carry
// units, and the transform between any two systems of equal dimension.
//
// Systems:
//
//	Cartesian    "cart", "cartesian"    any dimension, axes default to m
//	Polar        "polar", "pol"         (r, φ)
//	Cylindrical  "cyl", "cylindrical"   (r, φ, z)
//	Spherical    "sph", "spherical"     (r, θ, φ)
//	Toroidal     "tor", "toroidal"      (r, θ, φ) around major radius R0
//
// Every system implements WithAxes, which swaps axes by position and keeps
// the remaining structure (for Toroidal, the major radius). Quantities use
// it to rebuild their system after choosing new axis units.
//
// Transform:
//
//	same kind, convertible units   per-axis units.Convert
//	otherwise                      units → base → Cartesian → target
//
// Cartesian geometry is computed with gonum's spatial/r2 and spatial/r3.
package coords
