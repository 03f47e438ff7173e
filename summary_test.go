package cinoas

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	res := &Result{
		Active:         []int{2, 0, 0, 2, 0, 0, 2, 0},
		Nact:           6,
		NactOcc:        3,
		NactVir:        3,
		SigmaOcc:       Fraction{Value: 0.9777777777777777, Valid: true},
		SigmaVir:       Fraction{Value: 0.9792626728110599, Valid: true},
		OccDenominator: 0.3375,
		VirDenominator: 0.3472,
	}
	var buf strings.Builder
	Summarize(&buf, res)
	got := buf.String()
	want := `num. of active orbitals = 6 (3 occupied, 3 virtual)
sigma_o = 0.977778 of 0.337500
sigma_v = 0.979263 of 0.347200
+--------+-----+-----+-----+-----+-----+-----+-----+-----+
|   irrep|   0 |   1 |   2 |   3 |   4 |   5 |   6 |   7 |
|  active|   2 |   0 |   0 |   2 |   0 |   0 |   2 |   0 |
+--------+-----+-----+-----+-----+-----+-----+-----+-----+
`
	if got != want {
		t.Errorf("got\n%s, wanted\n%s\n", got, want)
	}
}

func TestSummarizeNoFractions(t *testing.T) {
	res := &Result{Active: []int{0, 0}}
	var buf strings.Builder
	Summarize(&buf, res)
	if strings.Contains(buf.String(), "sigma") {
		t.Errorf("got sigma lines for invalid fractions\n")
	}
}
