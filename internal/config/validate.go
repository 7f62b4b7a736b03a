package config

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// Validate checks that all configuration values are usable.
// Returns a CLIError with ExitConfigError describing the first failure.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return model.NewCLIError(model.ExitConfigError, "input path must not be empty")
	}
	if _, err := c.Mode(); err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	if c.Constraints.Red == nil || c.Constraints.Green == nil || c.Constraints.Blue == nil {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("constraints must set red, green and blue (got %s)", c.describeLimits()))
	}
	return nil
}

// describeLimits renders the constraint pointers for error messages,
// printing "unset" for nil entries.
func (c *Config) describeLimits() string {
	show := func(p *uint32) string {
		if p == nil {
			return "unset"
		}
		return fmt.Sprint(*p)
	}
	return fmt.Sprintf("red=%s green=%s blue=%s",
		show(c.Constraints.Red), show(c.Constraints.Green), show(c.Constraints.Blue))
}
