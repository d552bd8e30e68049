package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"outrunner/calculator"
)

func SweepCmd() *cobra.Command {
	var (
		flags          paramFlags
		from, to, step float64
		workers        int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Calculate one design per target KV across a range",
		RunE: func(cmd *cobra.Command, args []string) error {
			kvs, err := calculator.KVRange(from, to, step)
			if err != nil {
				return err
			}
			if limit := cfg.Sweep.MaxKVs; limit > 0 && len(kvs) > limit {
				return fmt.Errorf("sweep of %d targets exceeds [sweep] MaxKVs = %d", len(kvs), limit)
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Sweep.Workers
			}

			designs, err := calculator.SweepKV(context.Background(), flags.resolve(cmd), kvs, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading.Fprintf(out, "%-10s %-8s %-6s %-12s %-10s\n", "target KV", "config", "turns", "est. KV", "efficiency")
			for _, d := range designs {
				fmt.Fprintf(out, "%-10s %-8s %-6d %-12s %-10s\n",
					humanize.FtoaWithDigits(d.TargetKV, 1),
					fmt.Sprintf("%dS%dP", d.SlotCount, d.PoleCount),
					d.TurnsPerCoil,
					humanize.FtoaWithDigits(d.EstimatedKV, 2),
					humanize.FtoaWithDigits(d.Efficiency*100, 2)+" %")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&from, "kv-from", 500, "first target KV")
	cmd.Flags().Float64Var(&to, "kv-to", 2000, "last target KV")
	cmd.Flags().Float64Var(&step, "kv-step", 250, "target KV step")
	cmd.Flags().IntVar(&workers, "workers", 0, "designs calculated in parallel (default from config)")
	return cmd
}
