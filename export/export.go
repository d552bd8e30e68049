package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"outrunner/model"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FileName 导出文件名带上槽数和极数, 例如 bldc_motor_12S14P.json
func FileName(design model.MotorDesign, format string) string {
	return fmt.Sprintf("bldc_motor_%dS%dP.%s", design.SlotCount, design.PoleCount, format)
}

// Encode serializes a design in the given format.
func Encode(design model.MotorDesign, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(design, "", "  ")
	case FormatYAML:
		return yaml.Marshal(design)
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// Write stores the design under dir and returns the file path.
func Write(dir string, design model.MotorDesign, format string) (string, error) {
	b, err := Encode(design, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(design, format))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":   path,
		"format": format,
	}).Info("design exported")
	return path, nil
}
