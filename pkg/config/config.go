// Package config loads optional helm-installer defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"k8s.io/client-go/util/homedir"
)

// Config holds the defaults that can be stored in the config file.
// Every field is optional; empty values leave the flag defaults untouched.
type Config struct {
	HelmBinary   string   `yaml:"helmBinary"`
	Namespace    string   `yaml:"namespace"`
	Kubeconfig   string   `yaml:"kubeconfig"`
	KubeContext  string   `yaml:"kubeContext"`
	Values       []string `yaml:"values"`
	LogLevel     string   `yaml:"logLevel"`
	LogFormatter string   `yaml:"logFormatter"`
}

// DefaultPath returns $HOME/.config/helm-installer/config.yaml.
func DefaultPath() string {
	return filepath.Join(homedir.HomeDir(), ".config", "helm-installer", "config.yaml")
}

// Load reads the config file at path. When the file does not exist an empty
// Config is returned, unless required is set.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}
