package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"outrunner/calculator"
	"outrunner/model"
)

// KV 偏差超过该百分比时告警
const kvWarnPct = 20

var (
	heading = color.New(color.FgCyan, color.Bold)
	label   = color.New(color.FgWhite)
	warn    = color.New(color.FgYellow)
	good    = color.New(color.FgGreen)
)

func mm(v float64) string {
	return humanize.FtoaWithDigits(v, 2) + " mm"
}

func printDesign(w io.Writer, d model.MotorDesign) {
	heading.Fprintf(w, "Outrunner %dS%dP (%s winding)\n", d.SlotCount, d.PoleCount, d.WindingType)
	if d.Fallback {
		warn.Fprintln(w, "  no catalog combination fits the diameter range, using the 12S14P default")
	}

	row := func(name, value string) {
		fmt.Fprintf(w, "  %s %s\n", label.Sprintf("%-22s", name), value)
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Dimensions")
	row("motor diameter", mm(d.MotorDiameter))
	row("rotor inner diameter", mm(d.RotorInnerDiameter))
	row("stator outer diameter", mm(d.StatorOuterDiameter))
	row("stator inner diameter", mm(d.StatorInnerDiameter))
	row("airgap", mm(d.Airgap))

	fmt.Fprintln(w)
	heading.Fprintln(w, "Winding")
	row("turns per coil", fmt.Sprintf("%d (max %d)", d.TurnsPerCoil, d.MaxTurnsPerCoil))
	row("wire diameter", mm(d.WireDiameter))
	if wire, err := calculator.CalculateWireProperties(d.WireDiameter); err == nil {
		row("wire area", humanize.FtoaWithDigits(wire.Area, 2)+" mm²")
	}
	row("fill factor", fillFactor(d))
	row("lcm / cogging factor", fmt.Sprintf("%d / %d", d.LCM, d.CoggingFactor))
	row("phase resistance", humanize.SIWithDigits(d.PhaseResistance, 2, "Ω"))

	fmt.Fprintln(w)
	heading.Fprintln(w, "Magnets")
	row("width x height", fmt.Sprintf("%s x %s", mm(d.MagnetWidth), mm(d.MagnetHeight)))
	row("thickness", mm(d.MagnetThickness))
	row("arc length / gap", fmt.Sprintf("%s / %s", mm(d.MagnetArcLength), mm(d.MagnetGap)))

	fmt.Fprintln(w)
	heading.Fprintln(w, "Performance")
	row("estimated KV", fmt.Sprintf("%s RPM/V (target %s, %s)",
		humanize.FtoaWithDigits(d.EstimatedKV, 1),
		humanize.FtoaWithDigits(d.TargetKV, 1),
		deviation(d.KVDeviation)))
	row("efficiency", humanize.FtoaWithDigits(d.Efficiency*100, 1)+" %")
	row("estimated weight", humanize.FtoaWithDigits(d.EstimatedWeight, 1)+" g")
}

func deviation(pct float64) string {
	s := humanize.FtoaWithDigits(pct, 1) + "% off"
	if pct > kvWarnPct {
		return warn.Sprint(s)
	}
	return good.Sprint(s)
}

// fillFactor is the share of the slot's turn capacity actually wound.
func fillFactor(d model.MotorDesign) string {
	if d.MaxTurnsPerCoil <= 0 {
		return "n/a"
	}
	return humanize.FtoaWithDigits(float64(d.TurnsPerCoil)/float64(d.MaxTurnsPerCoil)*100, 1) + " %"
}
