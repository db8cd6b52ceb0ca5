package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/podium/internal/fixtures"
)

func newFixturesCmd() *cobra.Command {
	cfg := fixtures.Config{}
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Write synthetic athlete, medallist and medal tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, _, err := fixtures.Write(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			for _, p := range []string{paths.Athletes, paths.Medallists, paths.Medals} {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.OutDir, "out", "data", "output directory")
	cmd.Flags().IntVar(&cfg.Athletes, "athletes", fixtures.DefaultAthletes, "number of athletes")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&cfg.MedalRate, "medal-rate", fixtures.DefaultMedalRate, "share of athletes with medals (0-1)")
	return cmd
}
