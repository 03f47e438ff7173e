package cinoas

import (
	"fmt"
	"io"
)

// Summarize prints a summary table of the selected active space
func Summarize(w io.Writer, res *Result) {
	fmt.Fprintf(w, "num. of active orbitals = %d (%d occupied, %d virtual)\n",
		res.Nact, res.NactOcc, res.NactVir)
	if res.SigmaOcc.Valid {
		fmt.Fprintf(w, "sigma_o = %.6f of %.6f\n",
			res.SigmaOcc.Value, res.OccDenominator)
	}
	if res.SigmaVir.Valid {
		fmt.Fprintf(w, "sigma_v = %.6f of %.6f\n",
			res.SigmaVir.Value, res.VirDenominator)
	}
	line := "+--------+"
	for range res.Active {
		line += "-----+"
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "|%8s|", "irrep")
	for h := range res.Active {
		fmt.Fprintf(w, "%4d |", h)
	}
	fmt.Fprint(w, "\n")
	fmt.Fprintf(w, "|%8s|", "active")
	for _, a := range res.Active {
		fmt.Fprintf(w, "%4d |", a)
	}
	fmt.Fprint(w, "\n")
	fmt.Fprintln(w, line)
}
