// Package yaml loads context7 configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/context7"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/context7/config.yaml on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "context7.yaml"
	}
	return filepath.Join(dir, "context7", "config.yaml")
}

// LoadConfig reads the config file at path.
// The returned error wraps fs.ErrNotExist if the file is missing.
func LoadConfig(path string) (context7.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return context7.Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config. Unknown keys are rejected.
func ParseConfig(data []byte) (context7.Config, error) {
	var cfg context7.Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return context7.Config{}, context7.Errorf(context7.EINVALID, "invalid config: %s", err)
	}
	return cfg, nil
}
