package coords_test

import (
	"fmt"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/units"
)

// ExampleTransform converts a planar point given in centimeters into polar
// coordinates with the angle in degrees.
func ExampleTransform() {
	cart, _ := coords.NewCartesian(2, coords.WithUnits(units.MustParse("cm"), units.MustParse("cm"))...)
	pol, _ := coords.NewPolar(coords.Axis{Dimension: 1, Unit: units.MustParse("deg"), Name: "φ"})
	fmt.Println(pol)

	out, _ := coords.Transform([]float64{300, 400}, cart, pol)
	fmt.Printf("r = %.4g m, φ = %.4g°\n", out[0], out[1])
	// Output:
	// polar[#0: m, φ: deg]
	// r = 5 m, φ = 53.13°
}

// ExampleNew looks a system up by identifier.
func ExampleNew() {
	sys, _ := coords.New("sph", 3)
	fmt.Println(sys)
	// Output:
	// sph[#0: m, #1: rad, #2: rad]
}
