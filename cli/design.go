package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"outrunner/calculator"
	"outrunner/export"
	"outrunner/store"
)

func DesignCmd() *cobra.Command {
	var (
		flags     paramFlags
		exportDir string
		format    string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Calculate an outrunner design",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := flags.resolve(cmd)
			d, err := calculator.CalculateMotorDesign(params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(d, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			} else {
				printDesign(out, d)
			}

			if cfg.Store.Enabled {
				db, err := store.Open(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer db.Close()
				if _, err := db.Save(context.Background(), params, d); err != nil {
					return err
				}
			}

			if exportDir != "" {
				if !cmd.Flags().Changed("format") {
					format = cfg.Export.Format
				}
				path, err := export.Write(exportDir, d, format)
				if err != nil {
					return fmt.Errorf("export design: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %s\n", path)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&exportDir, "export", "", "write the design into this directory")
	cmd.Flags().StringVar(&format, "format", export.FormatJSON, "export format: json or yaml")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the design as JSON")
	return cmd
}
