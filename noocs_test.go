package cinoas

import (
	"reflect"
	"testing"
)

func TestSortOcc(t *testing.T) {
	spec := Spectrum{
		{Irrep: 0, Occ: 0.99, Index: 0},
		{Irrep: 0, Occ: 0.92, Index: 1},
		{Irrep: 1, Occ: 0.92, Index: 0},
		{Irrep: 2, Occ: 0.85, Index: 0},
	}
	got := spec.SortOcc()
	// ties keep input order, so (0,1) stays ahead of (1,0)
	want := Spectrum{
		{Irrep: 2, Occ: 0.85, Index: 0},
		{Irrep: 0, Occ: 0.92, Index: 1},
		{Irrep: 1, Occ: 0.92, Index: 0},
		{Irrep: 0, Occ: 0.99, Index: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if spec[0].Occ != 0.99 {
		t.Errorf("input spectrum was mutated\n")
	}
}

func TestSortVir(t *testing.T) {
	spec := Spectrum{
		{Irrep: 1, Occ: 0.01, Index: 0},
		{Irrep: 0, Occ: 0.04, Index: 0},
		{Irrep: 2, Occ: 0.04, Index: 0},
	}
	got := spec.SortVir()
	want := Spectrum{
		{Irrep: 0, Occ: 0.04, Index: 0},
		{Irrep: 2, Occ: 0.04, Index: 0},
		{Irrep: 1, Occ: 0.01, Index: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}
