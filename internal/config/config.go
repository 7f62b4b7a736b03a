package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// DefaultInput is the log file read when no path is configured.
const DefaultInput = "input.txt"

// Environment variables that override values from the configuration file.
const (
	EnvInput  = "CUBES_INPUT"
	EnvIDMode = "CUBES_ID_MODE"
)

// Config holds the complete CLI configuration.
type Config struct {
	// Input is the path of the game log.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// IDMode selects how game identifiers are numbered
	// ("position", "ordinal" or "label").
	IDMode string `json:"idMode,omitempty" yaml:"idMode,omitempty"`

	// Constraints is the per-color limit used by the possible-games sum.
	Constraints ConstraintsConfig `json:"constraints" yaml:"constraints"`
}

// ConstraintsConfig holds the per-color limits. Fields are pointers so an
// explicit 0 in the file can be told apart from an omitted key.
type ConstraintsConfig struct {
	Red   *uint32 `json:"red,omitempty" yaml:"red,omitempty"`
	Green *uint32 `json:"green,omitempty" yaml:"green,omitempty"`
	Blue  *uint32 `json:"blue,omitempty" yaml:"blue,omitempty"`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads a configuration file and decodes it according to its
// extension. Returns a CLIError with ExitConfigError if the file is missing,
// unreadable, or not a valid configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".json", ".jsonc":
		err = decodeJSONC(data, &cfg)
	default:
		return nil, model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("unsupported config file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext))
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// decodeYAML decodes data strictly: keys not present in Config are errors.
// An empty document leaves cfg untouched, as it does for decodeJSONC.
func decodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// decodeJSONC strips comments and trailing commas, then decodes strictly.
func decodeJSONC(data []byte, cfg *Config) error {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// ApplyEnv overrides configuration values with the CUBES_* environment
// variables that are set. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := lookup(EnvIDMode); ok && v != "" {
		c.IDMode = v
	}
}

// Limits returns the configured constraint set as a Round.
func (c *Config) Limits() model.Round {
	c.setDefaults()
	return model.Round{
		Red:   *c.Constraints.Red,
		Green: *c.Constraints.Green,
		Blue:  *c.Constraints.Blue,
	}
}

// Mode returns the configured identifier mode.
func (c *Config) Mode() (model.IDMode, error) {
	return model.ParseIDMode(c.IDMode)
}

// SetLimit overrides the limit for one color.
func (c *Config) SetLimit(color model.Color, n uint32) {
	switch color {
	case model.Red:
		c.Constraints.Red = &n
	case model.Green:
		c.Constraints.Green = &n
	case model.Blue:
		c.Constraints.Blue = &n
	}
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.IDMode == "" {
		c.IDMode = model.IDModePosition.String()
	}

	d := model.DefaultConstraints()
	if c.Constraints.Red == nil {
		c.Constraints.Red = &d.Red
	}
	if c.Constraints.Green == nil {
		c.Constraints.Green = &d.Green
	}
	if c.Constraints.Blue == nil {
		c.Constraints.Blue = &d.Blue
	}
}
