package cinoas

import (
	"reflect"
	"testing"
)

// TestFull runs the whole pipeline on the ethene reference data: load
// the wavefunction, block-diagonalize the 1-RDM, and select at a 0.98
// cumulative threshold on both manifolds
func TestFull(t *testing.T) {
	conf, err := ParseInfile("testdata/c2h4.in")
	if err != nil {
		t.Fatal(err)
	}
	crit, err := conf.Criteria()
	if err != nil {
		t.Fatal(err)
	}
	crit.PrintLevel = 0
	wfn, err := LoadWavefunction(conf.Str(WfnFile))
	if err != nil {
		t.Fatal(err)
	}
	occ, vir, rotated, err := wfn.BlockDiag()
	if err != nil {
		t.Fatal(err)
	}
	res, err := Select(occ, vir, wfn.Nirrep, crit)
	if err != nil {
		t.Fatal(err)
	}
	if res.Nact != 6 {
		t.Errorf("got %d, wanted 6\n", res.Nact)
	}
	want := []int{2, 0, 0, 2, 0, 0, 2, 0}
	if !reflect.DeepEqual(res.Active, want) {
		t.Errorf("got %v, wanted %v\n", res.Active, want)
	}
	// the rotated wavefunction keeps the block structure
	if rotated.Nirrep != wfn.Nirrep {
		t.Errorf("got %d irreps, wanted %d\n", rotated.Nirrep, wfn.Nirrep)
	}
	for h := range rotated.Ca {
		if len(rotated.Ca[h]) != len(wfn.Ca[h]) {
			t.Errorf("block %d: got %d rows, wanted %d\n",
				h, len(rotated.Ca[h]), len(wfn.Ca[h]))
		}
	}
}
