package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"outrunner/calculator"
	"outrunner/model"
)

func design(t *testing.T) model.MotorDesign {
	t.Helper()
	d, err := calculator.CalculateMotorDesign(model.Params{
		WireThickness:   0.8,
		MagnetWidth:     10,
		MagnetHeight:    15,
		MagnetThickness: 3,
		MinDiameter:     30,
		MaxDiameter:     40,
		TargetKV:        800,
	})
	require.NoError(t, err)
	return d
}

func TestFileName(t *testing.T) {
	d := model.MotorDesign{SlotCount: 12, PoleCount: 14}
	assert.Equal(t, "bldc_motor_12S14P.json", FileName(d, FormatJSON))
	assert.Equal(t, "bldc_motor_12S14P.yaml", FileName(d, FormatYAML))
}

func TestWriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	d := design(t)

	path, err := Write(dir, d, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bldc_motor_21S22P.json"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &fields))
	for _, name := range []string{
		"motorDiameter", "statorOuterDiameter", "slotCount", "poleCount", "turnsPerCoil",
		"magnetWidth", "magnetHeight", "magnetThickness", "airgap", "estimatedKV",
		"efficiency", "lcm", "coggingFactor", "phaseResistance", "estimatedWeight",
	} {
		assert.Contains(t, fields, name)
	}
	assert.Equal(t, "distributed", fields["windingType"])
}

func TestWriteYAML(t *testing.T) {
	d := design(t)
	path, err := Write(t.TempDir(), d, FormatYAML)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, yaml.Unmarshal(b, &fields))
	assert.Equal(t, 21, fields["slotCount"])
	assert.Equal(t, "distributed", fields["windingType"])
}

func TestWriteUnknownFormat(t *testing.T) {
	_, err := Write(t.TempDir(), design(t), "svg")
	assert.Error(t, err)
}
