package morris

import "gonum.org/v1/gonum/floats"

// Domain is the axis-aligned box the generated design is expressed in.
// Bounds are assumed ordered: Lower[k] <= Upper[k] for every k.
type Domain struct {
	Lower []float64 `json:"lower_bound"`
	Upper []float64 `json:"upper_bound"`
}

// UnitDomain returns the [0,1]^dimension box.
func UnitDomain(dimension int) Domain {
	lower := make([]float64, dimension)
	upper := make([]float64, dimension)
	for k := range upper {
		upper[k] = 1.0
	}
	return Domain{Lower: lower, Upper: upper}
}

// Dimension returns the number of coordinates of the box.
func (d Domain) Dimension() int {
	return len(d.Lower)
}

// Delta returns the edge length Upper - Lower per dimension.
func (d Domain) Delta() []float64 {
	delta := make([]float64, len(d.Lower))
	floats.SubTo(delta, d.Upper, d.Lower)
	return delta
}
