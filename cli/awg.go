package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"outrunner/calculator"
)

func AWGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "awg [gauge]...",
		Short: "Show diameter and copper properties of AWG wire sizes",
		Long:  "Without arguments every tabulated gauge is listed. Gauges outside the table are extrapolated.",
		RunE: func(cmd *cobra.Command, args []string) error {
			gauges := calculator.WireGauges()
			if len(args) > 0 {
				gauges = gauges[:0]
				for _, a := range args {
					g, err := strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("invalid gauge %q: %w", a, err)
					}
					gauges = append(gauges, g)
				}
			}

			out := cmd.OutOrStdout()
			heading.Fprintf(out, "%-5s %-10s %-12s %-14s %-10s\n", "AWG", "diameter", "area", "resistance", "current")
			for _, g := range gauges {
				w, err := calculator.CalculateWireProperties(calculator.AWGToDiameter(g))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-5d %-10s %-12s %-14s %-10s\n", g,
					mm(w.Diameter),
					humanize.FtoaWithDigits(w.Area, 3)+" mm²",
					humanize.SIWithDigits(w.ResistancePerMeter, 2, "Ω/m"),
					humanize.FtoaWithDigits(w.CurrentCapacity, 2)+" A")
			}
			return nil
		},
	}
}
