package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lucasgdosr/lists/internal/workload"
)

type Config struct {
	Seed       uint64   `toml:"seed"`
	Operations int      `toml:"operations"`
	Position   string   `toml:"position"`
	Lists      []string `toml:"lists"`
	Mix        Mix      `toml:"mix"`
}

type Mix struct {
	Add    float64 `toml:"add"`
	Remove float64 `toml:"remove"`
	Get    float64 `toml:"get"`
	Set    float64 `toml:"set"`
}

func (c *Config) validate() error {
	if c.Operations <= 0 {
		return errors.New("operations should be > 0")
	}

	if c.Position == "" {
		c.Position = workload.PositionUniform
	}
	if !workload.IsAvailablePosition(c.Position) {
		return fmt.Errorf("not valid position %q", c.Position)
	}

	if len(c.Lists) == 0 {
		return errors.New("lists is empty")
	}
	for _, name := range c.Lists {
		if !workload.IsAvailableList(name) {
			return fmt.Errorf("not valid list %q", name)
		}
	}

	return c.Mix.validate()
}

func (m *Mix) validate() error {
	if m.Add < 0 || m.Remove < 0 || m.Get < 0 || m.Set < 0 {
		return errors.New("mix weights should be >= 0")
	}

	if m.Add+m.Remove+m.Get+m.Set == 0 {
		return errors.New("mix is empty")
	}

	if m.Add == 0 {
		return errors.New("mix without adds never grows a list")
	}

	return nil
}

// Spec converts the config into a workload spec.
func (c Config) Spec() workload.Spec {
	return workload.Spec{
		Seed:       c.Seed,
		Operations: c.Operations,
		Position:   c.Position,
		Mix: workload.Mix{
			Add:    c.Mix.Add,
			Remove: c.Mix.Remove,
			Get:    c.Mix.Get,
			Set:    c.Mix.Set,
		},
	}
}

func Load(configPath string) (Config, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := toml.Unmarshal(content, &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
