package cinoas

import "sort"

// Nooc is a natural-orbital occupation number tagged with the irrep it
// came from and its position in that irrep's descending eigenvalue
// order. The tag is fixed when the 1-RDM block is diagonalized and
// survives any later sorting.
type Nooc struct {
	Irrep int
	Occ   float64
	Index int
}

// Spectrum is the occupation numbers of one manifold, concatenated
// across irreps in block order.
type Spectrum []Nooc

// SortOcc returns a copy of s sorted ascending by occupation, so the
// orbitals with the most hole character come first. The sort is stable:
// equal occupations keep block order, then in-block order.
func (s Spectrum) SortOcc() Spectrum {
	sorted := make(Spectrum, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Occ < sorted[j].Occ
	})
	return sorted
}

// SortVir returns a copy of s sorted descending by occupation, so the
// orbitals with the most particle character come first. Ties resolve
// as in SortOcc.
func (s Spectrum) SortVir() Spectrum {
	sorted := make(Spectrum, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Occ > sorted[j].Occ
	})
	return sorted
}

// Sum returns the total occupation in s
func (s Spectrum) Sum() (sum float64) {
	for _, o := range s {
		sum += o.Occ
	}
	return
}
