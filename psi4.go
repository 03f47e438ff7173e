package cinoas

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Psi4CIS holds the pieces of a psi4 input deck for the state-averaged
// CIS calculation that produces the wavefunction file this program
// consumes
type Psi4CIS struct {
	Geometry  string
	Basis     string
	NumRoots  int
	AvgStates string
	WfnFile   string
}

// NewPsi4CIS builds a deck from the parsed input file
func NewPsi4CIS(conf *Config) (*Psi4CIS, error) {
	if !conf.Supplied(Geometry) {
		return nil, fmt.Errorf("geometry not found in input file")
	}
	return &Psi4CIS{
		Geometry:  conf.Str(Geometry),
		Basis:     conf.Str(Basis),
		NumRoots:  conf.Int(NumRoots),
		AvgStates: conf.Str(AvgStates),
		WfnFile:   conf.Str(WfnFile),
	}, nil
}

// WriteDeck renders the psi4 input deck
func (p *Psi4CIS) WriteDeck(w io.Writer) {
	fmt.Fprintf(w, "molecule {\n%s\n}\n\nset {\n", p.Geometry)
	fmt.Fprintf(w, "    basis                   %s\n", p.Basis)
	fmt.Fprint(w, "    scf_type                df\n")
	fmt.Fprint(w, "    reference               rhf\n")
	fmt.Fprint(w, "    e_convergence           10\n")
	fmt.Fprint(w, "    ex_level                1     # run CIS\n")
	fmt.Fprint(w, "    opdm                    true  # return one-particle density matrix\n")
	fmt.Fprintf(w, "    num_roots               %d\n", p.NumRoots)
	if p.AvgStates != "" {
		fmt.Fprintf(w, "    avg_states              %s\n", p.AvgStates)
	}
	fmt.Fprint(w, "}\n\n")
	fmt.Fprint(w, "e, wfn = psi4.energy(\"detci\", return_wfn=True)\n")
	fmt.Fprintf(w, "wfn.to_file(%q)\n", p.WfnFile)
}

// WriteDeckFile writes the deck to filename
func (p *Psi4CIS) WriteDeckFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	p.WriteDeck(f)
	return nil
}

// RunPsi4 runs psi4 on filename.dat, writing filename.out in the same
// directory
func RunPsi4(progName, filename string) error {
	cmd := exec.Command(progName, filepath.Base(filename)+".dat",
		filepath.Base(filename)+".out")
	cmd.Dir = filepath.Dir(filename)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
