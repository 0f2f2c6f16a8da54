// Package quantity models physical quantities: numbers tied to a coordinate
// system whose axes carry units.
//
// Variants (closed set, all immutable):
//
//	Scalar    one value, 1-D system                     OrderScalar
//	Sequence  samples on one axis                       OrderScalar
//	          one N-D point                             OrderVector
//	Matrix    one N-D point per row                     OrderVector
//	          a matrix on one axis                      OrderMatrix
//
// The order is derived once at construction from the value shape and the
// system dimension; mismatching shapes are rejected with
// ErrInvalidConstruction.
//
// Operations, each returning a new value:
//
//	To(name, sys)             convert into another coordinate system
//	Apply(fn), ApplyAs        element-wise map, coordinates unchanged
//	Approach(targets...)      choose per-axis unit prefixes so that values
//	                          land near the target magnitudes
//	ApproachWith(costs, ...)  same with explicit cost functions
//
// Prefix optimization:
//
//	Candidates(u) lists u and every rewrite with another legal prefix on its
//	first prefixable factor ("kg" → "Mg", "g", "mg", ...). For each axis the
//	optimizer scores every candidate with the axis cost function and keeps
//	the strictly cheapest, the first one on ties. DefaultCost(t) is
//	max_v 0.1·|m_t − m_v| + |e_t − e_v| over mantissa m and exponent e.
//
// Example:
//
//	q, _ := quantity.NewScalar("mass", 1024, units.MustParse("kg"))
//	r, _ := q.Approach(1) // 1.024 Mg
//
// Optimizer runs accept WithLogger (zap, Debug level per axis) and
// WithoutCache.
package quantity
