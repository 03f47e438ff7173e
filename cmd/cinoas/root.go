package main

import (
	"os"

	"github.com/spf13/cobra"

	"qc/cinoas"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cinoas",
		Short: "select a CIS natural-orbital active space",
	}
	root.AddCommand(runCmd(), deckCmd())
	return root.Execute()
}

func runCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "run <infile>",
		Short: "block-diagonalize the 1-RDM and select the active space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := cinoas.ParseInfile(args[0])
			if err != nil {
				return err
			}
			crit, err := conf.Criteria()
			if err != nil {
				return err
			}
			wfn, err := cinoas.LoadWavefunction(conf.Str(cinoas.WfnFile))
			if err != nil {
				return err
			}
			occ, vir, rotated, err := wfn.BlockDiag()
			if err != nil {
				return err
			}
			res, err := cinoas.Select(occ, vir, wfn.Nirrep, crit)
			if err != nil {
				return err
			}
			cinoas.Summarize(os.Stdout, res)
			if output != "" {
				return rotated.Store(output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "",
		"write the natural-orbital wavefunction to `file`")
	return cmd
}

func deckCmd() *cobra.Command {
	var run bool
	cmd := &cobra.Command{
		Use:   "deck <infile>",
		Short: "generate the psi4 CIS input deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := cinoas.ParseInfile(args[0])
			if err != nil {
				return err
			}
			deck, err := cinoas.NewPsi4CIS(conf)
			if err != nil {
				return err
			}
			if !run {
				deck.WriteDeck(os.Stdout)
				return nil
			}
			if err := deck.WriteDeckFile("input.dat"); err != nil {
				return err
			}
			return cinoas.RunPsi4(conf.Str(cinoas.Psi4Cmd), "input")
		},
	}
	cmd.Flags().BoolVar(&run, "run", false, "run psi4 on the generated deck")
	return cmd
}
