package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"outrunner/store"
)

func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored designs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Store.Enabled {
				return errors.New("design history is disabled, set [store] Enabled = true")
			}
			db, err := store.Open(cfg.Store.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := db.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No designs stored")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "%s  %-8s target %-8s est. %-8s %s\n",
					label.Sprint(r.ID[:8]),
					fmt.Sprintf("%dS%dP", r.Design.SlotCount, r.Design.PoleCount),
					humanize.FtoaWithDigits(r.Design.TargetKV, 1),
					humanize.FtoaWithDigits(r.Design.EstimatedKV, 1),
					humanize.Time(r.CreatedAt))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of designs to show")
	return cmd
}
