package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AbhishekDinesan/hedgehog/internal/demo"
)

// Load reads a demo configuration, filling unset fields from
// demo.DefaultConfig.
func Load(path string) (demo.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return demo.Config{}, &demo.OpError{
			Op:   "config.load",
			Kind: demo.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", demo.ErrNotFound, err),
		}
	}

	var dto YAMLDemo
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return demo.Config{}, &demo.OpError{
			Op:   "config.load",
			Kind: demo.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg := Map(dto)
	if err := cfg.Validate(); err != nil {
		return demo.Config{}, &demo.OpError{
			Op:   "config.load",
			Kind: demo.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func Map(dto YAMLDemo) demo.Config {
	cfg := demo.DefaultConfig()
	if len(dto.Values) > 0 {
		cfg = cfg.WithValues(dto.Values)
	}
	if dto.PauseAfter != nil {
		cfg.PauseAfter = *dto.PauseAfter
	}
	cfg.Remove = dto.Remove
	return cfg
}
