// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Registry is an immutable symbol table of unit definitions.
// It is safe for concurrent use because nothing mutates it after construction.
type Registry struct {
	defs     []*Definition
	bySymbol map[string]*Definition
	prefixes []prefixSpelling // every spelling of every known prefix, longest first
}

// prefixSpelling pairs one accepted spelling with its prefix.
type prefixSpelling struct {
	text   string
	prefix Prefix
}

// NewRegistry validates defs and indexes their symbols.
// Returns ErrInvalidDefinition or ErrDuplicateSymbol on bad input.
func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{bySymbol: make(map[string]*Definition)}
	known := make(map[string]Prefix)
	for _, d := range defs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		for _, s := range d.Symbols {
			if prev, ok := r.bySymbol[s]; ok && prev != d {
				return nil, fmt.Errorf("%q (%s, %s): %w", s, prev.Name, d.Name, ErrDuplicateSymbol)
			}
			r.bySymbol[s] = d
		}
		for _, p := range d.Prefixes {
			known[p.Symbol] = p
		}
		r.defs = append(r.defs, d)
	}
	for _, p := range known {
		for _, s := range p.spellings() {
			r.prefixes = append(r.prefixes, prefixSpelling{text: s, prefix: p})
		}
	}
	// Longest spelling first so that "da" wins over "d".
	sort.Slice(r.prefixes, func(i, j int) bool {
		a, b := r.prefixes[i].text, r.prefixes[j].text
		if len(a) != len(b) {
			return len(a) > len(b)
		}

		return a < b
	})

	return r, nil
}

// With returns a new Registry holding the definitions of r plus defs.
func (r *Registry) With(defs ...*Definition) (*Registry, error) {
	all := slices.Clone(r.defs)

	return NewRegistry(append(all, defs...)...)
}

// Lookup returns the definition registered under the exact symbol.
func (r *Registry) Lookup(symbol string) (*Definition, bool) {
	d, ok := r.bySymbol[symbol]

	return d, ok
}

// Definitions returns the registered definitions in registration order.
func (r *Registry) Definitions() []*Definition {
	return slices.Clone(r.defs)
}

// Parse resolves a whitespace-separated unit string such as "kg m^2 s^-2".
//
// Each term is matched exactly first; only then is it split into a prefix
// and a prefixable symbol. Exact matching first keeps "min", "cd" or "Pa"
// from being read as prefixed units.
func (r *Registry) Parse(symbol string) (Unit, error) {
	terms := strings.Fields(symbol)
	if len(terms) == 0 {
		return Unit{}, symbolErrorf(symbol, ErrMalformedSymbol)
	}
	factors := make([]Factor, 0, len(terms))
	for _, term := range terms {
		sym, exp, err := splitFactor(term)
		if err != nil {
			return Unit{}, err
		}
		f, err := r.resolve(sym)
		if err != nil {
			return Unit{}, err
		}
		f.Exponent = exp
		factors = append(factors, f)
	}

	return newUnit(factors), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level unit constants.
func (r *Registry) MustParse(symbol string) Unit {
	u, err := r.Parse(symbol)
	if err != nil {
		panic(err)
	}

	return u
}

// resolve maps one term (without exponent) to a factor.
func (r *Registry) resolve(sym string) (Factor, error) {
	if d, ok := r.bySymbol[sym]; ok {
		return Factor{Symbol: sym, Bare: sym, Prefix: Identity, Def: d}, nil
	}
	for _, ps := range r.prefixes {
		rest, ok := strings.CutPrefix(sym, ps.text)
		if !ok || rest == "" {
			continue
		}
		d, ok := r.bySymbol[rest]
		if !ok || !d.PrefixAllowed(rest) || !d.allowsPrefix(ps.prefix) {
			continue
		}

		return Factor{Symbol: ps.prefix.Symbol + rest, Bare: rest, Prefix: ps.prefix, Def: d}, nil
	}

	return Factor{}, symbolErrorf(sym, ErrUnknownSymbol)
}

// Compose parses symbol against the definitions given as constituents only,
// without consulting the default table. It is the counterpart of Decompose:
// rebuilding a unit from a rewritten symbol string and the definitions it
// was decomposed into.
func Compose(symbol string, constituents ...*Definition) (Unit, error) {
	uniq := make([]*Definition, 0, len(constituents))
	for _, d := range constituents {
		if !slices.Contains(uniq, d) {
			uniq = append(uniq, d)
		}
	}
	r, err := NewRegistry(uniq...)
	if err != nil {
		return Unit{}, err
	}

	return r.Parse(symbol)
}

// Parse resolves symbol against the default registry.
func Parse(symbol string) (Unit, error) {
	return Default().Parse(symbol)
}

// MustParse resolves symbol against the default registry and panics on error.
func MustParse(symbol string) Unit {
	return Default().MustParse(symbol)
}
