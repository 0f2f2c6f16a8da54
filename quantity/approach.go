// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/units"
)

// Approach rewrites s towards the target magnitude with DefaultCost.
// Exactly one target is accepted.
func (s *Scalar) Approach(targets ...float64) (*Scalar, error) {
	costs, err := TargetCosts(targets, 1)
	if err != nil {
		return nil, err
	}

	return s.ApproachWith(costs)
}

// ApproachWith picks the prefix of the unit whose representation of the
// value has the lowest cost, and returns the value re-expressed in it.
func (s *Scalar) ApproachWith(costs CostFuncs, opts ...Option) (*Scalar, error) {
	if err := costs.validate(1); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	o.logger = o.logger.With(zap.String("quantity", s.name))

	cost, _ := costs.For(0)
	u, vals, err := o.approachAxis(0, s.Unit(), []float64{s.value}, cost)
	if err != nil {
		return nil, err
	}
	sys, err := rebuild(s.coords, []units.Unit{u})
	if err != nil {
		return nil, err
	}

	return &Scalar{name: s.name, value: vals[0], coords: sys}, nil
}

// Approach rewrites s towards the target magnitudes: one target for all
// axes, or one per axis.
func (s *Sequence) Approach(targets ...float64) (*Sequence, error) {
	costs, err := TargetCosts(targets, s.coords.Dimension())
	if err != nil {
		return nil, err
	}

	return s.ApproachWith(costs)
}

// ApproachWith chooses the best prefix per axis. For OrderScalar all values
// share axis 0 and are scored together; for OrderVector every axis is
// scored on its single coordinate.
func (s *Sequence) ApproachWith(costs CostFuncs, opts ...Option) (*Sequence, error) {
	d := s.coords.Dimension()
	if err := costs.validate(d); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	o.logger = o.logger.With(zap.String("quantity", s.name))

	chosen := s.coords.Axes().Units()
	var vals []float64
	switch s.order {
	case OrderScalar:
		cost, _ := costs.For(0)
		u, out, err := o.approachAxis(0, chosen[0], s.values, cost)
		if err != nil {
			return nil, err
		}
		chosen[0], vals = u, out
	case OrderVector:
		vals = make([]float64, d)
		for i := 0; i < d; i++ {
			cost, _ := costs.For(i)
			u, out, err := o.approachAxis(i, chosen[i], s.values[i:i+1], cost)
			if err != nil {
				return nil, err
			}
			chosen[i], vals[i] = u, out[0]
		}
	default:
		panic(fmt.Sprintf("quantity: Sequence with order %s", s.order))
	}
	sys, err := rebuild(s.coords, chosen)
	if err != nil {
		return nil, err
	}

	return &Sequence{name: s.name, values: vals, coords: sys, order: s.order}, nil
}

// Approach rewrites m towards the target magnitudes: one target for all
// axes, or one per axis.
func (m *Matrix) Approach(targets ...float64) (*Matrix, error) {
	costs, err := TargetCosts(targets, m.coords.Dimension())
	if err != nil {
		return nil, err
	}

	return m.ApproachWith(costs)
}

// ApproachWith chooses the best prefix per axis. For OrderVector axis j
// is scored on column j, independently of the other columns; for
// OrderMatrix every entry lives on axis 0 and all are scored together.
func (m *Matrix) ApproachWith(costs CostFuncs, opts ...Option) (*Matrix, error) {
	d := m.coords.Dimension()
	if err := costs.validate(d); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	o.logger = o.logger.With(zap.String("quantity", m.name))

	chosen := m.coords.Axes().Units()
	var rows [][]float64
	switch m.order {
	case OrderMatrix:
		flat := flatten(m.rows)
		cost, _ := costs.For(0)
		u, out, err := o.approachAxis(0, chosen[0], flat, cost)
		if err != nil {
			return nil, err
		}
		chosen[0], rows = u, reshape(out, m.rows)
	case OrderVector:
		r, c := m.Dims()
		if r == 0 {
			rows = [][]float64{}
			break
		}
		// one column per axis
		dense := mat.NewDense(r, c, flatten(m.rows))
		for j := 0; j < c; j++ {
			cost, _ := costs.For(j)
			u, out, err := o.approachAxis(j, chosen[j], mat.Col(nil, j, dense), cost)
			if err != nil {
				return nil, err
			}
			chosen[j] = u
			dense.SetCol(j, out)
		}
		rows = make([][]float64, r)
		for i := range rows {
			rows[i] = make([]float64, c)
			copy(rows[i], dense.RawRowView(i))
		}
	default:
		panic(fmt.Sprintf("quantity: Matrix with order %s", m.order))
	}
	sys, err := rebuild(m.coords, chosen)
	if err != nil {
		return nil, err
	}

	return &Matrix{name: m.name, rows: rows, coords: sys, order: m.order}, nil
}

// approachAxis scores every prefix candidate of u on values and returns
// the strictly cheapest one, the first found on ties. A candidate that
// underflows or overflows any non-zero finite value is never chosen. values
// is read only; the returned slice is freshly allocated.
func (o options) approachAxis(axis int, u units.Unit, values []float64, cost CostFunc) (units.Unit, []float64, error) {
	cands, err := o.candidates(u)
	if err != nil {
		return units.Unit{}, nil, fmt.Errorf("axis %d: %w", axis, err)
	}

	best := math.Inf(1)
	bestUnit := u
	bestVals := make([]float64, len(values))
	copy(bestVals, values)
	scratch := make([]float64, len(values))
	rejected := 0
	for _, c := range cands {
		for i, v := range values {
			scratch[i] = c.Transform(v)
		}
		if !representable(values, scratch) {
			rejected++
			continue
		}
		if k := cost(scratch); k < best {
			best, bestUnit = k, c.Unit
			bestVals, scratch = scratch, bestVals
		}
	}
	o.logger.Debug("prefix chosen",
		zap.Int("axis", axis),
		zap.String("from", u.Symbol()),
		zap.String("to", bestUnit.Symbol()),
		zap.Float64("cost", best),
		zap.Int("candidates", len(cands)),
		zap.Int("rejected", rejected),
	)

	return bestUnit, bestVals, nil
}

// representable reports whether every non-zero finite value of in is still
// non-zero and finite in out.
func representable(in, out []float64) bool {
	for i, v := range in {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if w := out[i]; w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return false
		}
	}

	return true
}

func (o options) candidates(u units.Unit) ([]Candidate, error) {
	if o.useCache {
		return Candidates(u)
	}

	return buildCandidates(u)
}

// rebuild puts the chosen unit on every axis, keeping positions, names and
// the structural parameters of sys.
func rebuild(sys coords.System, chosen []units.Unit) (coords.System, error) {
	axes := sys.Axes()
	for i := range axes {
		axes[i] = axes[i].WithUnit(chosen[i])
	}
	out, err := sys.WithAxes(axes)
	if err != nil {
		return nil, fmt.Errorf("rebuild %s: %w", sys, err)
	}

	return out, nil
}

func flatten(rows [][]float64) []float64 {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	out := make([]float64, 0, n)
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}

// reshape cuts flat into rows shaped like like.
func reshape(flat []float64, like [][]float64) [][]float64 {
	out := make([][]float64, len(like))
	off := 0
	for i, r := range like {
		out[i] = make([]float64, len(r))
		off += copy(out[i], flat[off:off+len(r)])
	}

	return out
}
