package cinoas

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// BlockDiag block-diagonalizes the occupied-occupied and
// virtual-virtual sub-blocks of a symmetry-blocked 1-RDM in the MO
// basis. docc gives the number of occupied orbitals in each irrep and
// splits each block; the occupied-virtual coupling is discarded. It
// returns the natural-orbital occupations of the two manifolds, each
// eigenvalue tagged with its irrep and its position in descending
// order, and a fresh coefficient matrix with the occupied and virtual
// column blocks of ca rotated into the natural-orbital basis. None of
// the inputs are mutated. A molecule with no symmetry is the one-block
// case of the same procedure.
//
// Blocks are independent and are diagonalized concurrently.
func BlockDiag(rdm []*mat.Dense, docc []int, ca []*mat.Dense) (occSpec, virSpec Spectrum, caNO []*mat.Dense, err error) {
	if err = checkBlocks(rdm, docc, ca); err != nil {
		return nil, nil, nil, err
	}
	nb := len(rdm)
	caNO = make([]*mat.Dense, nb)
	occs := make([]Spectrum, nb)
	virs := make([]Spectrum, nb)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for h := range rdm {
		h := h
		g.Go(func() error {
			o, v, rot, err := diagBlock(rdm[h], docc[h], ca[h], h)
			if err != nil {
				return err
			}
			occs[h], virs[h], caNO[h] = o, v, rot
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	// assemble in block order regardless of completion order
	for h := 0; h < nb; h++ {
		occSpec = append(occSpec, occs[h]...)
		virSpec = append(virSpec, virs[h]...)
	}
	return occSpec, virSpec, caNO, nil
}

// checkBlocks verifies the preconditions on the blocked inputs
func checkBlocks(rdm []*mat.Dense, docc []int, ca []*mat.Dense) error {
	if len(rdm) != len(docc) || len(rdm) != len(ca) {
		return fmt.Errorf("%w: %d rdm, %d docc, %d ca blocks",
			ErrDimensionMismatch, len(rdm), len(docc), len(ca))
	}
	for h, d := range rdm {
		r, c := d.Dims()
		if r != c {
			return fmt.Errorf("%w: rdm block %d is %dx%d",
				ErrDimensionMismatch, h, r, c)
		}
		if docc[h] < 0 || docc[h] > r {
			return fmt.Errorf("%w: block %d has %d occupied of %d orbitals",
				ErrDimensionMismatch, h, docc[h], r)
		}
		if _, cc := ca[h].Dims(); cc != r {
			return fmt.Errorf("%w: ca block %d has %d columns, rdm %d",
				ErrDimensionMismatch, h, cc, r)
		}
	}
	return nil
}

// diagBlock handles one irrep: diagonalize the two sub-blocks of d and
// rotate the matching column blocks of c
func diagBlock(d *mat.Dense, occ int, c *mat.Dense, h int) (occs, virs Spectrum, rot *mat.Dense, err error) {
	n, _ := d.Dims()
	if n == 0 {
		// empty irrep
		return nil, nil, &mat.Dense{}, nil
	}
	rows, _ := c.Dims()
	rot = mat.NewDense(rows, n, nil)
	rot.Copy(c)
	if occ > 0 {
		vals, vecs, err := eigDesc(subSym(d, 0, occ))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("block %d occupied: %w", h, err)
		}
		for i, v := range vals {
			occs = append(occs, Nooc{Irrep: h, Occ: v, Index: i})
		}
		var r mat.Dense
		r.Mul(c.Slice(0, rows, 0, occ), vecs)
		rot.Slice(0, rows, 0, occ).(*mat.Dense).Copy(&r)
	}
	if occ < n {
		vals, vecs, err := eigDesc(subSym(d, occ, n))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("block %d virtual: %w", h, err)
		}
		for i, v := range vals {
			virs = append(virs, Nooc{Irrep: h, Occ: v, Index: i})
		}
		var r mat.Dense
		r.Mul(c.Slice(0, rows, occ, n), vecs)
		rot.Slice(0, rows, occ, n).(*mat.Dense).Copy(&r)
	}
	return occs, virs, rot, nil
}

// subSym copies the square sub-block [lo,hi) of d into a symmetric
// matrix, reading the upper triangle
func subSym(d *mat.Dense, lo, hi int) *mat.SymDense {
	m := hi - lo
	s := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			s.SetSym(i, j, d.At(lo+i, lo+j))
		}
	}
	return s
}

// eigDesc diagonalizes s and returns the eigenvalues in descending
// order with the eigenvector columns permuted to match. gonum hands
// back ascending order, so both are reversed here.
func eigDesc(s *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, nil, fmt.Errorf("eigendecomposition failed")
	}
	asc := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)
	m := len(asc)
	vals := make([]float64, m)
	vecs := mat.NewDense(m, m, nil)
	for j := 0; j < m; j++ {
		vals[j] = asc[m-1-j]
		for i := 0; i < m; i++ {
			vecs.Set(i, j, ev.At(i, m-1-j))
		}
	}
	return vals, vecs, nil
}
