package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/prelude/operators"
)

type fileConfig struct {
	Parallel parallelSection `toml:"parallel" yaml:"parallel"`
}

type parallelSection struct {
	Enabled  *bool `toml:"enabled" yaml:"enabled"`
	Workers  *int  `toml:"workers" yaml:"workers"`
	MinChunk *int  `toml:"min_chunk" yaml:"min_chunk"`
}

// loadConfig reads parallel settings from a .toml or .yaml file. Keys absent
// from the file keep their DefaultParallelConfig values.
func loadConfig(path string) (operators.ParallelConfig, error) {
	var raw fileConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return operators.ParallelConfig{}, fmt.Errorf("load config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return operators.ParallelConfig{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return operators.ParallelConfig{}, fmt.Errorf("load config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return operators.ParallelConfig{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return operators.ParallelConfig{}, fmt.Errorf("load config: unsupported extension %q", ext)
	}

	return raw.apply(operators.DefaultParallelConfig())
}

func (raw fileConfig) apply(cfg operators.ParallelConfig) (operators.ParallelConfig, error) {
	p := raw.Parallel
	if p.Enabled != nil {
		cfg.Enabled = *p.Enabled
	}
	if p.Workers != nil {
		cfg.NumWorkers = *p.Workers
	}
	if p.MinChunk != nil {
		cfg.MinChunkSize = *p.MinChunk
	}
	if err := cfg.Validate(); err != nil {
		return operators.ParallelConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
