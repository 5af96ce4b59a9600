// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/pkg/store"
	"github.com/walteh/uwuify/pkg/uwu"
)

// DefaultReservedChannel is the rules-sharing channel that messages are never rewritten in
const DefaultReservedChannel = "1102784112584040479"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, starting from Default()
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🫧 SpacesConfig mirrors uwu.SpacesModifier
type SpacesConfig struct {
	Faces    float64 `json:"faces" yaml:"faces"`
	Actions  float64 `json:"actions" yaml:"actions"`
	Stutters float64 `json:"stutters" yaml:"stutters"`
	Enabled  bool    `json:"enabled" yaml:"enabled"`
}

// 🎚️ ModifiersConfig holds the pipeline thresholds
type ModifiersConfig struct {
	Words        float64      `json:"words" yaml:"words"`
	Exclamations float64      `json:"exclamations" yaml:"exclamations"`
	Spaces       SpacesConfig `json:"spaces" yaml:"spaces"`
}

// 💾 StoreConfig selects where rule lists are persisted
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Modifiers       ModifiersConfig `json:"modifiers" yaml:"modifiers"`
	EdgeCases       []string        `json:"edge_cases" yaml:"edge_cases"`
	ReservedChannel string          `json:"reserved_channel" yaml:"reserved_channel"`
	Store           StoreConfig     `json:"store" yaml:"store"`

	location string
}

// Default returns the configuration used when no file is present
func Default() *Config {
	m := uwu.DefaultModifiers()
	return &Config{
		Modifiers: ModifiersConfig{
			Words:        m.Words,
			Exclamations: m.Exclamations,
			Spaces: SpacesConfig{
				Faces:    m.Spaces.Faces,
				Actions:  m.Spaces.Actions,
				Stutters: m.Spaces.Stutters,
				Enabled:  m.Spaces.Enabled,
			},
		},
		EdgeCases:       slices.Clone(uwu.DefaultEdgeCases),
		ReservedChannel: DefaultReservedChannel,
		Store: StoreConfig{
			Driver: store.DriverFile,
			Path:   ".uwuify.store.yaml",
		},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when path does not exist
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("config file not found, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if err := cfg.UwuModifiers().Validate(); err != nil {
		return errors.Errorf("modifiers: %w", err)
	}

	if err := cfg.Transformer().Validate(); err != nil {
		return errors.Errorf("edge_cases: %w", err)
	}

	if cfg.Store.Driver == "" {
		cfg.Store.Driver = store.DriverMemory
	}
	if !slices.Contains(store.Drivers, cfg.Store.Driver) {
		return errors.Errorf("store.driver must be one of %v, got %q", store.Drivers, cfg.Store.Driver)
	}
	if cfg.Store.Driver != store.DriverMemory {
		if cfg.Store.Path == "" {
			return errors.Errorf("store.path is required for the %s driver", cfg.Store.Driver)
		}
		cfg.Store.Path = filepath.Clean(cfg.Store.Path)
	}

	return nil
}

// UwuModifiers converts the modifiers section for the transformer
func (cfg *Config) UwuModifiers() uwu.Modifiers {
	return uwu.Modifiers{
		Words:        cfg.Modifiers.Words,
		Exclamations: cfg.Modifiers.Exclamations,
		Spaces: uwu.SpacesModifier{
			Faces:    cfg.Modifiers.Spaces.Faces,
			Actions:  cfg.Modifiers.Spaces.Actions,
			Stutters: cfg.Modifiers.Spaces.Stutters,
			Enabled:  cfg.Modifiers.Spaces.Enabled,
		},
	}
}

// Transformer builds the pipeline described by the config
func (cfg *Config) Transformer() *uwu.Transformer {
	return uwu.New(
		uwu.WithModifiers(cfg.UwuModifiers()),
		uwu.WithEdgeCases(cfg.EdgeCases...),
	)
}

// StorePath resolves a relative store path against the config file's directory
func (cfg *Config) StorePath() string {
	if cfg.location == "" || filepath.IsAbs(cfg.Store.Path) {
		return cfg.Store.Path
	}
	return filepath.Join(filepath.Dir(cfg.location), cfg.Store.Path)
}

// OpenStore opens the store the config points at
func (cfg *Config) OpenStore(ctx context.Context) (store.Store, error) {
	s, err := store.Open(ctx, cfg.Store.Driver, cfg.StorePath())
	if err != nil {
		return nil, errors.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	return s, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("words=%v exclamations=%v spaces=%v edge_cases=%v store=%s:%s",
		cfg.Modifiers.Words, cfg.Modifiers.Exclamations, cfg.Modifiers.Spaces.Enabled,
		cfg.EdgeCases, cfg.Store.Driver, cfg.Store.Path)
}
