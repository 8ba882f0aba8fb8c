package main

import (
	"os"

	"github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML configuration file.
//
//	dir: ./service
//	tests: true
//	patterns:
//	  - ./internal/...
type fileConfig struct {
	Dir      string   `yaml:"dir"`
	Tests    bool     `yaml:"tests"`
	Patterns []string `yaml:"patterns"`
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to read configuration", map[string]interface{}{
			"path": path,
		})
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to parse configuration", map[string]interface{}{
			"path": path,
		})
	}
	return cfg, nil
}
