// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/katalvlaran/quanta/units"
)

// Candidate is one prefix rewrite of a unit together with the exact value
// transform from the original unit into it.
type Candidate struct {
	Unit      units.Unit
	Transform func(float64) float64
}

// CandidateCacheSize bounds the number of units whose candidates are memoized.
const CandidateCacheSize = 256

// candidateCache memoizes Candidates per unit. The unit and prefix tables are
// immutable, so entries never go stale.
type candidateCache struct {
	mu    sync.Mutex
	cache *lru.Cache
}

var sharedCandidates = &candidateCache{cache: lru.New(CandidateCacheSize)}

// cacheKey identifies a unit by symbol and definition identity, matching
// units.Unit.Equal.
func cacheKey(u units.Unit) string {
	var b strings.Builder
	b.WriteString(u.Symbol())
	for _, d := range u.Definitions() {
		fmt.Fprintf(&b, "|%p", d)
	}

	return b.String()
}

func (c *candidateCache) get(u units.Unit) ([]Candidate, error) {
	key := cacheKey(u)
	c.mu.Lock()
	if v, ok := c.cache.Get(key); ok {
		c.mu.Unlock()

		return slices.Clone(v.([]Candidate)), nil
	}
	c.mu.Unlock()

	cands, err := buildCandidates(u)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.cache.Add(key, cands)
	c.mu.Unlock()

	return slices.Clone(cands), nil
}

// Candidates enumerates every unit reachable from u by putting a legal
// prefix (including none) on the first prefixable factor, each with the
// transform value_in_u → value_in_candidate.
//
// Order is deterministic: u itself first with the exact identity transform,
// then the remaining rewrites by ascending prefix factor. The optimizer keeps
// the first of equally cheap candidates, so ties resolve to the current unit
// and then to the smallest prefix.
//
// A unit without prefixable factor (e.g. "min") yields only itself. The
// legality check looks at the symbol actually used: "kg" is kilo on the
// gram, so its rewrites are "Mg", "g", "mg" and so on, never "kkg".
//
// Results are memoized for the process lifetime.
func Candidates(u units.Unit) ([]Candidate, error) {
	return sharedCandidates.get(u)
}

func buildCandidates(u units.Unit) ([]Candidate, error) {
	if u.IsZero() {
		return nil, wrapf("Candidates", ErrInvalidArgument, units.ErrZeroUnit)
	}
	out := []Candidate{{Unit: u, Transform: identity}}

	factors := units.Decompose(u)
	at := slices.IndexFunc(factors, func(f units.Factor) bool { return f.Def.MayChangePrefix() })
	if at < 0 {
		return out, nil
	}
	f := factors[at]
	bare := f.Bare
	if !f.Def.PrefixAllowed(bare) {
		bare, _ = f.Def.PrefixableSymbol()
	}

	prefixes := append([]units.Prefix{units.Identity}, units.LegalPrefixes(f.Def)...)
	slices.SortStableFunc(prefixes, func(a, b units.Prefix) int {
		fa, fb := a.Factor(), b.Factor()
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}

		return 0
	})

	defs := u.Definitions()
	terms := make([]string, len(factors))
	for i, g := range factors {
		terms[i] = g.String()
	}
	for _, p := range prefixes {
		terms[at] = units.Factor{Symbol: p.Symbol + bare, Exponent: f.Exponent}.String()
		symbol := strings.Join(terms, " ")
		if symbol == u.Symbol() {
			continue
		}
		cand, err := units.Compose(symbol, defs...)
		if err != nil {
			return nil, fmt.Errorf("Candidates(%s): %w", u, err)
		}
		out = append(out, Candidate{Unit: cand, Transform: between(u, cand)})
	}

	return out, nil
}

func identity(v float64) float64 { return v }

// between converts through the shared base representation, which is exact
// in structure for linear and affine units alike.
func between(from, to units.Unit) func(float64) float64 {
	return func(v float64) float64 {
		return units.ConvertFromBase(to, units.ConvertToBase(from, v))
	}
}
