package cli

import (
	"github.com/spf13/cobra"

	"outrunner/config"
)

var (
	configPath string
	cfg        = config.Default()
)

// RootCmd builds the outrunner command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "outrunner",
		Short: "Outrunner BLDC motor design calculator",
		Long: `outrunner derives a first-order outrunner BLDC design (slot/pole combination,
winding turns, magnet geometry, airgap, KV and efficiency estimates) from wire
gauge, magnet size, a diameter range and a target KV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return config.SetupLogger(cfg.Log)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config.ini")

	root.AddCommand(DesignCmd())
	root.AddCommand(ConfigsCmd())
	root.AddCommand(AWGCmd())
	root.AddCommand(SweepCmd())
	root.AddCommand(HistoryCmd())
	root.AddCommand(ServeCmd())
	return root
}
