// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads headersync configuration.
//
// Configuration lives in a txtar archive, by default .devtools/config.txtar,
// shared with other development tools. Headersync reads two files from it:
//
//   - headersync/config.yaml: run options, all optional.
//   - headersync/template.txt: the header text, required.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"go.astrophena.name/headersync/header"
	"go.astrophena.name/headersync/walk"
)

// DefaultPath is where configuration is read from by default.
const DefaultPath = ".devtools/config.txtar"

// Names of files inside the archive.
const (
	ConfigFile   = "headersync/config.yaml"
	TemplateFile = "headersync/template.txt"
)

// Default markers.
const (
	DefaultStart = " * |-- copyright and license --|"
	DefaultEnd   = " * |-- end copyright and license --|"
)

// ErrNoTemplate is returned when the archive has no template.
var ErrNoTemplate = errors.New("no header template")

// Config is a headersync run configuration.
type Config struct {
	Root        string     `yaml:"root"`
	Delimiters  Delimiters `yaml:"delimiters"`
	Placeholder string     `yaml:"placeholder"`
	Extensions  []string   `yaml:"extensions"`
	Exclude     []string   `yaml:"exclude"`

	// Template is the header text. It's read from TemplateFile, not YAML.
	Template string `yaml:"-"`
}

// Delimiters are the header markers.
type Delimiters struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Default returns the configuration used for keys missing from config.yaml.
func Default() *Config {
	return &Config{
		Root: ".",
		Delimiters: Delimiters{
			Start: DefaultStart,
			End:   DefaultEnd,
		},
		Placeholder: header.DefaultPlaceholder,
		Extensions:  []string{".js"},
		Exclude:     []string{"node_modules", "views/public/"},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Placeholder, validation.Required),
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.Template, validation.Required),
	); err != nil {
		return err
	}
	if err := c.Delimiters.Validate(); err != nil {
		return fmt.Errorf("delimiters: %w", err)
	}
	if !strings.Contains(c.Template, c.Placeholder) {
		return fmt.Errorf("template: placeholder %q not found", c.Placeholder)
	}
	_, err := c.HeaderTemplate()
	return err
}

// Validate validates the markers.
func (d *Delimiters) Validate() error {
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Start, validation.Required),
		validation.Field(&d.End, validation.Required, validation.NotIn(d.Start).Error("must differ from start")),
	); err != nil {
		return err
	}
	return d.Header().Validate()
}

// Header converts d for use with package header.
func (d *Delimiters) Header() header.Delimiters {
	return header.Delimiters{Start: d.Start, End: d.End}
}

// HeaderTemplate builds the template described by c.
func (c *Config) HeaderTemplate() (*header.Template, error) {
	return header.NewTemplate(c.Template, c.Placeholder, c.Delimiters.Header())
}

// WalkOptions returns options for walking the tree described by c.
func (c *Config) WalkOptions() walk.Options {
	return walk.Options{
		Exclude:    slices.Clone(c.Exclude),
		Extensions: walk.NormalizeExtensions(c.Extensions),
	}
}

// Load reads and validates configuration from the txtar archive at path.
func Load(path string, getenv func(string) string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data, getenv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses and validates a configuration archive. Environment variables
// in the root setting are expanded with getenv; other settings, markers
// included, are taken literally.
func Parse(data []byte, getenv func(string) string) (*Config, error) {
	ar := txtar.Parse(data)

	cfg := Default()
	var haveTemplate bool
	for _, f := range ar.Files {
		switch f.Name {
		case ConfigFile:
			if err := yaml.Unmarshal(f.Data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
			}
			cfg.Root = os.Expand(cfg.Root, getenv)
		case TemplateFile:
			cfg.Template = string(f.Data)
			haveTemplate = true
		}
	}
	if !haveTemplate {
		return nil, fmt.Errorf("%w: %s is missing", ErrNoTemplate, TemplateFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
