// SPDX-License-Identifier: MIT

package coords

import "fmt"

// constructors maps every system identifier to a default-axes constructor.
// Toroidal is absent: it has no meaningful default major radius.
var constructors = map[string]func(dimension int) (System, error){}

func init() {
	register(cartesianSymbols, func(dim int) (System, error) {
		c, err := NewCartesian(dim)
		if err != nil {
			return nil, err
		}

		return c, nil
	})
	register(polarSymbols, fixed(2, func() (System, error) {
		p, err := NewPolar()
		if err != nil {
			return nil, err
		}

		return p, nil
	}))
	register(cylindricalSymbols, fixed(3, func() (System, error) {
		c, err := NewCylindrical()
		if err != nil {
			return nil, err
		}

		return c, nil
	}))
	register(sphericalSymbols, fixed(3, func() (System, error) {
		s, err := NewSpherical()
		if err != nil {
			return nil, err
		}

		return s, nil
	}))
}

func register(symbols []string, ctor func(int) (System, error)) {
	for _, s := range symbols {
		constructors[s] = ctor
	}
}

// fixed guards constructors of systems with a fixed dimension.
func fixed(dim int, ctor func() (System, error)) func(int) (System, error) {
	return func(d int) (System, error) {
		if d != dim {
			return nil, fmt.Errorf("dimension %d, want %d: %w", d, dim, ErrDimensionMismatch)
		}

		return ctor()
	}
}

// New returns the system registered under symbol ("cart", "polar", "cyl",
// "sph" or their long forms) with default axes.
func New(symbol string, dimension int) (System, error) {
	ctor, ok := constructors[symbol]
	if !ok {
		return nil, coordsErrorf(fmt.Sprintf("New(%q)", symbol), ErrUnknownSystem)
	}
	s, err := ctor(dimension)
	if err != nil {
		return nil, coordsErrorf(fmt.Sprintf("New(%q)", symbol), err)
	}

	return s, nil
}
