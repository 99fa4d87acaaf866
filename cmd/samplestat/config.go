package main

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML configuration accepted by --config. Flags given on
// the command line take precedence over it.
type fileConfig struct {
	Threshold int    `yaml:"threshold"`
	Precision int    `yaml:"precision"`
	Name      string `yaml:"name"`
	Unit      string `yaml:"unit"`
	Column    string `yaml:"column"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &cfg, nil
}
