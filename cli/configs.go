package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"outrunner/calculator"
)

func ConfigsCmd() *cobra.Command {
	var flags paramFlags

	cmd := &cobra.Command{
		Use:   "configs",
		Short: "Rank the slot/pole combinations that fit a diameter range",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := flags.resolve(cmd)
			if err := calculator.ValidateParams(p); err != nil {
				return err
			}

			scored := calculator.ScoreConfigurations(p.MinDiameter, p.MaxDiameter, p.TargetKV)
			out := cmd.OutOrStdout()
			if len(scored) == 0 {
				warn.Fprintln(out, "no catalog combination fits, the 12S14P default would be used")
				return nil
			}

			heading.Fprintf(out, "%-4s %-8s %-13s %5s %8s %8s\n", "#", "config", "winding", "lcm", "pitch", "score")
			for i, s := range scored {
				line := fmt.Sprintf("%-4d %-8s %-13s %5d %8.2f %8.3f", i+1,
					fmt.Sprintf("%dS%dP", s.Slots, s.Poles), s.Winding, s.LCM, s.PolePitch, s.Score)
				if i == 0 {
					good.Fprintln(out, line)
				} else {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
