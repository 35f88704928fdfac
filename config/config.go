// Package config holds the display settings of the z80field front end.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/z80field/insts"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DisplayConfig controls how forms are printed and prompted for.
type DisplayConfig struct {
	// Color enables colored terminal output. Default: true.
	Color bool `json:"color"`

	// ShowBinary prints the opcode in binary with the field boundaries
	// marked. Default: true.
	ShowBinary bool `json:"show_binary"`

	// Prompt is the interactive prompt. Default: "z80> ".
	Prompt string `json:"prompt"`

	// Format is the output format, "text" or "json". Default: "text".
	Format string `json:"format"`

	// InitialOpcode is the opcode text the interactive form starts from.
	// Default: "0x0".
	InitialOpcode string `json:"initial_opcode"`
}

// DefaultDisplayConfig returns a DisplayConfig with default values.
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Color:         true,
		ShowBinary:    true,
		Prompt:        "z80> ",
		Format:        FormatText,
		InitialOpcode: "0x0",
	}
}

// LoadConfig loads a DisplayConfig from a JSON file. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*DisplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read display config file: %w", err)
	}

	config := DefaultDisplayConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse display config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a DisplayConfig to a JSON file.
func (c *DisplayConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize display config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write display config file: %w", err)
	}

	return nil
}

// Validate checks that the prompt, format and initial opcode are usable.
func (c *DisplayConfig) Validate() error {
	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	if _, err := insts.ParseOpcode(c.InitialOpcode); err != nil {
		return fmt.Errorf("initial_opcode: %w", err)
	}
	return nil
}

// InitialForm returns the form the interactive session starts with.
func (c *DisplayConfig) InitialForm() (insts.Form, error) {
	op, err := insts.ParseOpcode(c.InitialOpcode)
	if err != nil {
		return insts.Form{}, fmt.Errorf("initial_opcode: %w", err)
	}

	return insts.NewForm(op), nil
}

// Clone returns a copy of the DisplayConfig.
func (c *DisplayConfig) Clone() *DisplayConfig {
	return &DisplayConfig{
		Color:         c.Color,
		ShowBinary:    c.ShowBinary,
		Prompt:        c.Prompt,
		Format:        c.Format,
		InitialOpcode: c.InitialOpcode,
	}
}
