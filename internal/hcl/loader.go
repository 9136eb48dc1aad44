package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/axisdefaults/internal/config"
)

// Extension is the file extension of HCL layouts.
const Extension = ".hcl"

// NewLoader creates a loader that reads HCL layout files only.
func NewLoader() *config.FileLoader {
	return Register(config.NewFileLoader())
}

// Register adds the HCL format to l.
func Register(l *config.FileLoader) *config.FileLoader {
	return l.Register(Extension, Decode)
}

// Decode parses a single HCL document held in memory.
func Decode(src []byte, filename string) (*config.Model, config.Settings, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, config.Settings{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	model, set, err := decodeFile(f)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, err)
	}
	return model, set, nil
}
