package cinoas

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Fractions within normTol of 1 are attributed to roundoff; anything
// past it means the upstream 1-RDM was not normalized
const normTol = 1e-8

// Criteria configures active-space selection. A nil pointer means the
// option was not supplied; each manifold takes either a cumulative
// threshold in (0,1] or a fixed orbital count, never both. PrintLevel
// only controls diagnostics and never changes the result.
type Criteria struct {
	ThresholdOcc *float64
	ThresholdVir *float64
	NumActOcc    *int
	NumActVir    *int
	PrintLevel   int
}

// Fraction is an achieved cumulative fraction. Valid is false when no
// criterion was supplied for the manifold or when fixed-count mode ran
// with a zero denominator, where there is nothing meaningful to report.
type Fraction struct {
	Value float64
	Valid bool
}

// Result describes the selected active space
type Result struct {
	Active         []int // active orbitals per irrep, both manifolds
	Nact           int
	NactOcc        int
	NactVir        int
	SigmaOcc       Fraction
	SigmaVir       Fraction
	OccDenominator float64
	VirDenominator float64
}

// manifold is one selection pass: a sorted spectrum, the numerator
// contribution of each orbital, and exactly one stopping rule
type manifold struct {
	name      string
	sorted    Spectrum
	contrib   func(Nooc) float64
	denom     float64
	threshold *float64
	count     *int
}

// Select walks the two occupation spectra and accumulates orbitals
// into the active space. Occupied orbitals are taken in ascending
// occupation order (most hole character first) against the total hole
// character nocc - Σocc; virtual orbitals in descending order (most
// particle character first) against the total particle character Σvir.
// In threshold mode the orbital that would push the cumulative
// fraction past the threshold is excluded and the walk stops; in
// fixed-count mode exactly the first N sorted orbitals are taken. A
// manifold with no criterion contributes nothing. nirrep bounds the
// per-irrep counts in the Result and must cover every spectrum tag.
func Select(occSpec, virSpec Spectrum, nirrep int, crit Criteria) (*Result, error) {
	for _, s := range []Spectrum{occSpec, virSpec} {
		for _, o := range s {
			if o.Irrep < 0 || o.Irrep >= nirrep {
				return nil, fmt.Errorf("%w: irrep tag %d with %d irreps",
					ErrDimensionMismatch, o.Irrep, nirrep)
			}
		}
	}
	res := &Result{
		Active:         make([]int, nirrep),
		OccDenominator: float64(len(occSpec)) - occSpec.Sum(),
		VirDenominator: virSpec.Sum(),
	}
	if crit.PrintLevel > 1 {
		log.Info().
			Float64("occ_denominator", res.OccDenominator).
			Float64("vir_denominator", res.VirDenominator).
			Msg("selection denominators")
	}
	var err error
	res.NactOcc, res.SigmaOcc, err = selectManifold(manifold{
		name:      "occupied",
		sorted:    occSpec.SortOcc(),
		contrib:   func(o Nooc) float64 { return 1 - o.Occ },
		denom:     res.OccDenominator,
		threshold: crit.ThresholdOcc,
		count:     crit.NumActOcc,
	}, res.Active, crit.PrintLevel)
	if err != nil {
		return nil, err
	}
	res.NactVir, res.SigmaVir, err = selectManifold(manifold{
		name:      "virtual",
		sorted:    virSpec.SortVir(),
		contrib:   func(o Nooc) float64 { return o.Occ },
		denom:     res.VirDenominator,
		threshold: crit.ThresholdVir,
		count:     crit.NumActVir,
	}, res.Active, crit.PrintLevel)
	if err != nil {
		return nil, err
	}
	for _, a := range res.Active {
		res.Nact += a
	}
	return res, nil
}

// selectManifold runs one manifold's accumulation, bumping the shared
// per-irrep counts in active as orbitals commit
func selectManifold(m manifold, active []int, printLevel int) (nact int, sigma Fraction, err error) {
	switch {
	case m.threshold != nil && m.count != nil:
		return 0, Fraction{}, fmt.Errorf("%s manifold: %w", m.name, ErrConflictingCriteria)
	case m.threshold == nil && m.count == nil:
		return 0, Fraction{}, nil
	case m.threshold != nil:
		if m.denom == 0 {
			return 0, Fraction{}, fmt.Errorf("%s manifold, threshold %g: %w",
				m.name, *m.threshold, ErrZeroDenominator)
		}
	case *m.count < 0 || *m.count > len(m.sorted):
		return 0, Fraction{}, fmt.Errorf("%s manifold: %d of %d orbitals: %w",
			m.name, *m.count, len(m.sorted), ErrOutOfRange)
	}
	var numer float64
	for _, o := range m.sorted {
		if m.threshold != nil {
			if (numer+m.contrib(o))/m.denom > *m.threshold {
				break
			}
		} else if nact == *m.count {
			break
		}
		numer += m.contrib(o)
		active[o.Irrep]++
		nact++
		if printLevel > 0 {
			log.Info().
				Str("manifold", m.name).
				Int("irrep", o.Irrep).
				Int("orbital", o.Index).
				Float64("occupation", o.Occ).
				Msg("add orbital")
		}
	}
	if m.denom == 0 {
		// fixed-count mode can run without hole or particle
		// character; the fraction is undefined then
		return nact, Fraction{}, nil
	}
	sigma = Fraction{Value: numer / m.denom, Valid: true}
	if sigma.Value > 1+normTol {
		return 0, Fraction{}, fmt.Errorf("%s manifold, fraction %g: %w",
			m.name, sigma.Value, ErrBadNormalization)
	}
	return nact, sigma, nil
}
