package cinoas

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestBlockDiag(t *testing.T) {
	rdm := []*mat.Dense{
		mat.NewDense(3, 3, []float64{
			0.97, 0.02, 0.00,
			0.02, 0.95, 0.00,
			0.00, 0.00, 0.04,
		}),
		mat.NewDense(2, 2, []float64{
			0.99, 0.00,
			0.00, 0.01,
		}),
	}
	docc := []int{2, 1}
	ca := []*mat.Dense{eye(3), eye(2)}
	occ, vir, caNO, err := BlockDiag(rdm, docc, ca)
	if err != nil {
		t.Fatal(err)
	}
	// eigenvalues of [[0.97,0.02],[0.02,0.95]] are 0.96 +- sqrt(5)/100
	wantOcc := Spectrum{
		{Irrep: 0, Occ: 0.9823606797749979, Index: 0},
		{Irrep: 0, Occ: 0.9376393202250021, Index: 1},
		{Irrep: 1, Occ: 0.99, Index: 0},
	}
	wantVir := Spectrum{
		{Irrep: 0, Occ: 0.04, Index: 0},
		{Irrep: 1, Occ: 0.01, Index: 0},
	}
	checkSpectrum(t, "occupied", occ, wantOcc)
	checkSpectrum(t, "virtual", vir, wantVir)
	// dims conserved
	for h := range caNO {
		gr, gc := caNO[h].Dims()
		wr, wc := ca[h].Dims()
		if gr != wr || gc != wc {
			t.Errorf("block %d: got %dx%d, wanted %dx%d\n", h, gr, gc, wr, wc)
		}
	}
	// inputs untouched
	if rdm[0].At(0, 0) != 0.97 || !mat.Equal(ca[0], eye(3)) {
		t.Errorf("input matrices were mutated\n")
	}
	// with identity coefficients the rotated occupied columns are the
	// eigenvector matrix itself, so U^T D U must be diagonal with the
	// descending eigenvalues
	u := caNO[0].Slice(0, 2, 0, 2)
	oo := rdm[0].Slice(0, 2, 0, 2)
	var tmp, diag mat.Dense
	tmp.Mul(u.T(), oo)
	diag.Mul(&tmp, u)
	if !approx(diag.At(0, 0), wantOcc[0].Occ) ||
		!approx(diag.At(1, 1), wantOcc[1].Occ) {
		t.Errorf("rotated diagonal got (%v, %v), wanted (%v, %v)\n",
			diag.At(0, 0), diag.At(1, 1), wantOcc[0].Occ, wantOcc[1].Occ)
	}
	if !approx(diag.At(0, 1), 0) || !approx(diag.At(1, 0), 0) {
		t.Errorf("rotation left off-diagonal coupling: %v, %v\n",
			diag.At(0, 1), diag.At(1, 0))
	}
}

func checkSpectrum(t *testing.T, name string, got, want Spectrum) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d noocs, wanted %d\n", name, len(got), len(want))
	}
	for i := range got {
		if got[i].Irrep != want[i].Irrep || got[i].Index != want[i].Index ||
			!approx(got[i].Occ, want[i].Occ) {
			t.Errorf("%s nooc %d: got %v, wanted %v\n", name, i, got[i], want[i])
		}
	}
	// descending within each block
	for i := 1; i < len(got); i++ {
		if got[i].Irrep == got[i-1].Irrep && got[i].Occ > got[i-1].Occ {
			t.Errorf("%s: eigenvalues not descending at %d\n", name, i)
		}
	}
}

func TestBlockDiagC1(t *testing.T) {
	// no symmetry is just the one-block case
	rdm := []*mat.Dense{mat.NewDense(2, 2, []float64{0.95, 0, 0, 0.05})}
	occ, vir, _, err := BlockDiag(rdm, []int{1}, []*mat.Dense{eye(2)})
	if err != nil {
		t.Fatal(err)
	}
	if len(occ) != 1 || len(vir) != 1 || occ[0].Irrep != 0 || vir[0].Irrep != 0 {
		t.Errorf("got occ %v vir %v, wanted one block-0 nooc each\n", occ, vir)
	}
}

func TestBlockDiagErrors(t *testing.T) {
	tests := []struct {
		msg  string
		rdm  []*mat.Dense
		docc []int
		ca   []*mat.Dense
	}{
		{
			msg:  "mismatched block counts",
			rdm:  []*mat.Dense{eye(2)},
			docc: []int{1, 0},
			ca:   []*mat.Dense{eye(2)},
		},
		{
			msg:  "non-square rdm block",
			rdm:  []*mat.Dense{mat.NewDense(2, 3, nil)},
			docc: []int{1},
			ca:   []*mat.Dense{eye(2)},
		},
		{
			msg:  "docc exceeds block dimension",
			rdm:  []*mat.Dense{eye(2)},
			docc: []int{3},
			ca:   []*mat.Dense{eye(2)},
		},
		{
			msg:  "ca column mismatch",
			rdm:  []*mat.Dense{eye(3)},
			docc: []int{1},
			ca:   []*mat.Dense{eye(2)},
		},
	}
	for _, test := range tests {
		_, _, _, err := BlockDiag(test.rdm, test.docc, test.ca)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("%s: got %v, wanted ErrDimensionMismatch\n", test.msg, err)
		}
	}
}
