package cli

import (
	"github.com/spf13/cobra"

	"outrunner/calculator"
	"outrunner/model"
)

type paramFlags struct {
	params model.Params
	awg    int
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.params.WireThickness, "wire", 0.8, "wire diameter in mm")
	fs.IntVar(&f.awg, "awg", 0, "wire gauge (AWG), overrides --wire")
	fs.Float64Var(&f.params.MagnetWidth, "magnet-width", 10, "magnet width in mm")
	fs.Float64Var(&f.params.MagnetHeight, "magnet-height", 15, "magnet height in mm")
	fs.Float64Var(&f.params.MagnetThickness, "magnet-thickness", 3, "magnet thickness in mm")
	fs.Float64Var(&f.params.MinDiameter, "min", 30, "minimum motor diameter in mm")
	fs.Float64Var(&f.params.MaxDiameter, "max", 40, "maximum motor diameter in mm")
	fs.Float64Var(&f.params.TargetKV, "kv", 800, "target KV in RPM/V")
}

func (f *paramFlags) resolve(cmd *cobra.Command) model.Params {
	p := f.params
	if cmd.Flags().Changed("awg") {
		p.WireThickness = calculator.AWGToDiameter(f.awg)
	}
	return p
}
