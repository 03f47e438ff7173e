package cinoas

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// Wavefunction is the exchange format between the upstream
// electronic-structure calculation and this program: the per-irrep
// occupied counts, the state-averaged CIS 1-RDM in the MO basis, and
// the MO coefficients, all blocked by irrep in a fixed order. Matrix
// blocks are row-major nested lists in the file.
type Wavefunction struct {
	Nirrep int           `yaml:"nirrep"`
	Docc   []int         `yaml:"docc"`
	DaMO   [][][]float64 `yaml:"da_mo"`
	Ca     [][][]float64 `yaml:"ca"`
}

// LoadWavefunction reads and validates a wavefunction file
func LoadWavefunction(filename string) (*Wavefunction, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read wavefunction file: %w", err)
	}
	var wfn Wavefunction
	if err := yaml.Unmarshal(data, &wfn); err != nil {
		return nil, fmt.Errorf("failed to parse wavefunction YAML: %w", err)
	}
	if err := wfn.check(); err != nil {
		return nil, err
	}
	return &wfn, nil
}

func (w *Wavefunction) check() error {
	if len(w.Docc) != w.Nirrep || len(w.DaMO) != w.Nirrep ||
		len(w.Ca) != w.Nirrep {
		return fmt.Errorf("%w: nirrep %d but %d docc, %d da_mo, %d ca blocks",
			ErrDimensionMismatch, w.Nirrep, len(w.Docc), len(w.DaMO), len(w.Ca))
	}
	for h := 0; h < w.Nirrep; h++ {
		n := len(w.DaMO[h])
		for _, row := range w.DaMO[h] {
			if len(row) != n {
				return fmt.Errorf("%w: da_mo block %d is not square",
					ErrDimensionMismatch, h)
			}
		}
		if w.Docc[h] < 0 || w.Docc[h] > n {
			return fmt.Errorf("%w: block %d has %d occupied of %d orbitals",
				ErrDimensionMismatch, h, w.Docc[h], n)
		}
		for _, row := range w.Ca[h] {
			if len(row) != n {
				return fmt.Errorf("%w: ca block %d row width %d, expected %d",
					ErrDimensionMismatch, h, len(row), n)
			}
		}
	}
	return nil
}

// Store writes w back out in the exchange format
func (w *Wavefunction) Store(filename string) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal wavefunction: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// BlockDiag runs the core pipeline on w and returns the occupation
// spectra along with a copy of w whose coefficients are in the
// natural-orbital basis
func (w *Wavefunction) BlockDiag() (occSpec, virSpec Spectrum, rotated *Wavefunction, err error) {
	occSpec, virSpec, caNO, err := BlockDiag(w.DaBlocks(), w.Docc, w.CaBlocks())
	if err != nil {
		return nil, nil, nil, err
	}
	rotated = &Wavefunction{
		Nirrep: w.Nirrep,
		Docc:   append([]int(nil), w.Docc...),
		DaMO:   w.DaMO,
		Ca:     make([][][]float64, w.Nirrep),
	}
	for h, blk := range caNO {
		rotated.Ca[h] = rowsFromBlock(blk)
	}
	return occSpec, virSpec, rotated, nil
}

// DaBlocks returns the blocked 1-RDM as dense matrices
func (w *Wavefunction) DaBlocks() []*mat.Dense {
	blocks := make([]*mat.Dense, w.Nirrep)
	for h := range w.DaMO {
		blocks[h] = blockFromRows(w.DaMO[h])
	}
	return blocks
}

// CaBlocks returns the blocked MO coefficients as dense matrices
func (w *Wavefunction) CaBlocks() []*mat.Dense {
	blocks := make([]*mat.Dense, w.Nirrep)
	for h := range w.Ca {
		blocks[h] = blockFromRows(w.Ca[h])
	}
	return blocks
}

func blockFromRows(rows [][]float64) *mat.Dense {
	r := len(rows)
	if r == 0 {
		return &mat.Dense{}
	}
	c := len(rows[0])
	d := mat.NewDense(r, c, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return d
}

func rowsFromBlock(d *mat.Dense) [][]float64 {
	r, _ := d.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = d.RawRowView(i)
	}
	return rows
}
