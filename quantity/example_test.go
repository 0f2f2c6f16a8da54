package quantity_test

import (
	"fmt"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/units"
)

// ExampleScalar_Approach moves a mass to the prefix closest to 1.
func ExampleScalar_Approach() {
	q, _ := quantity.NewScalar("mass", 1024, units.MustParse("kg"))
	r, _ := q.Approach(1)
	fmt.Printf("%.3f %s\n", r.Value(), r.Unit().Symbol())

	back, _ := r.Approach(1024)
	fmt.Printf("%.0f %s\n", back.Value(), back.Unit().Symbol())
	// Output:
	// 1.024 Mg
	// 1024 kg
}

// ExampleMatrix_Approach chooses one prefix per axis.
func ExampleMatrix_Approach() {
	m := units.MustParse("m")
	q, _ := quantity.NewMatrix("span", [][]float64{{1e-19, 2, 3e3, 4e12}}, m, m, m, m)
	r, _ := q.Approach(1)
	for i, v := range r.Value()[0] {
		a, _ := r.Axis(i)
		fmt.Printf("%.4g %s\n", v, a.Unit.Symbol())
	}
	// Output:
	// 0.1 am
	// 2 m
	// 3 km
	// 4 Tm
}

// ExampleSequence_To converts a point from millimeters to cylindrical
// coordinates.
func ExampleSequence_To() {
	mm := units.MustParse("mm")
	p, _ := quantity.NewSequence("p", []float64{1, 1, 1}, mm, mm, mm)
	cyl, _ := coords.NewCylindrical()
	r, _ := p.To("p", cyl)
	for i, v := range r.Value() {
		a, _ := r.Axis(i)
		fmt.Printf("%s = %.6g\n", a, v)
	}
	// Output:
	// #0: m = 0.00141421
	// #1: rad = 0.785398
	// #2: m = 0.001
}

// ExampleSequenceFrom merges lengths given in different units.
func ExampleSequenceFrom() {
	a, _ := quantity.NewScalar("length of ruler", 12, units.MustParse("m"))
	b, _ := quantity.NewScalar("hair", 45.122, units.MustParse("μm"))
	c, _ := quantity.NewScalar("road", 200, units.MustParse("km"))
	seq, _ := quantity.SequenceFrom(a, b, c)
	fmt.Println(seq.Name())
	for _, v := range seq.Value() {
		fmt.Printf("%.5g\n", v)
	}
	// Output:
	// length of ruler
	// 12
	// 4.5122e-05
	// 2e+05
}
