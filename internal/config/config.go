package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the output, display and logging settings of the driver.
// The approximation inputs themselves are constants and are not configurable.
type Config struct {
	Plot struct {
		// Output is the PNG path. Empty keeps the figure in memory only.
		Output string  `yaml:"output"`
		Width  float64 `yaml:"width" default:"6" validate:"gt=0"`  // inches
		Height float64 `yaml:"height" default:"4" validate:"gt=0"` // inches
		DPI    int     `yaml:"dpi" default:"96" validate:"gte=24,lte=600"`
	} `yaml:"plot"`
	Display struct {
		Mode string `yaml:"mode" default:"window" validate:"oneof=window http none"`
		Addr string `yaml:"addr" default:"127.0.0.1:8080" validate:"required_if=Mode http"`
	} `yaml:"display"`
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
		// stdout carries the polynomials and is not a valid log output.
		Output string `yaml:"output" default:"stderr" validate:"required,ne=stdout"`
	} `yaml:"log"`
}

var validate = validator.New()

// Default returns a configuration with every default applied.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	return &c, nil
}

// Load reads a YAML configuration file on top of the defaults.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads the file named by PADE_CONFIG and applies
// PADE_DISPLAY, PADE_ADDR, PADE_OUTPUT and LOG_LEVEL overrides.
func LoadWithEnv() (*Config, error) {
	c, err := Load(os.Getenv("PADE_CONFIG"))
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PADE_DISPLAY"); v != "" {
		c.Display.Mode = strings.ToLower(v)
	}
	if v := os.Getenv("PADE_ADDR"); v != "" {
		c.Display.Addr = v
	}
	if v := os.Getenv("PADE_OUTPUT"); v != "" {
		c.Plot.Output = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks field constraints and reports every violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s(%s) with value %v",
			strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Param(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
