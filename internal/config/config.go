// Package config loads colorsift settings from layered HCL files.
//
// Settings are applied in order: built-in defaults, the user file
// (~/.config/colorsift/config.hcl), the project file (./.colorsift.hcl) and
// finally a file named on the command line. Later files override earlier
// ones attribute by attribute. Missing user and project files are skipped.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorsift/internal/format"
	"github.com/jsvensson/colorsift/internal/palette"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir   = ".config/colorsift"
	userConfigFile  = "config.hcl"
	projectFileName = ".colorsift.hcl"
)

// Config is the resolved configuration.
type Config struct {
	Sort     palette.Mode
	Step     int
	Seed     *uint64 // nil means shift tie-breaks are not reproducible
	Export   format.Kind
	LogLevel string
}

// file mirrors one HCL file; nil fields were not set.
type file struct {
	Sort     *string `hcl:"sort,optional"`
	Step     *int    `hcl:"step,optional"`
	Seed     *uint64 `hcl:"seed,optional"`
	Export   *string `hcl:"export,optional"`
	LogLevel *string `hcl:"log_level,optional"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sort:     palette.ModeOriginal,
		Step:     1,
		Export:   format.KindText,
		LogLevel: "info",
	}
}

// Load resolves the configuration. explicit, when non-empty, names a file
// that must exist and is applied last.
func Load(explicit string) (Config, error) {
	cfg := Default()

	for _, pathFn := range []func() (string, error){userConfigPath, projectConfigPath} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if err := applyFile(&cfg, path, true); err != nil {
			return Config{}, err
		}
	}

	if explicit != "" {
		if err := applyFile(&cfg, explicit, false); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

var userConfigPath = func() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, userConfigFile), nil
}

var projectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectFileName), nil
}

func applyFile(cfg *Config, path string, optional bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	f, err := parse(src, path)
	if err != nil {
		return err
	}
	if err := f.merge(cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Parse decodes HCL config source and applies it on top of the defaults.
func Parse(src []byte, filename string) (Config, error) {
	cfg := Default()
	f, err := parse(src, filename)
	if err != nil {
		return Config{}, err
	}
	if err := f.merge(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func parse(src []byte, filename string) (*file, error) {
	hf, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}
	var f file
	if diags := gohcl.DecodeBody(hf.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}
	return &f, nil
}

func (f *file) merge(cfg *Config) error {
	if f.Sort != nil {
		mode, err := palette.ParseMode(*f.Sort)
		if err != nil {
			return fmt.Errorf("sort: %w", err)
		}
		cfg.Sort = mode
	}
	if f.Step != nil {
		if *f.Step < 1 {
			return fmt.Errorf("step: must be at least 1, got %d", *f.Step)
		}
		cfg.Step = *f.Step
	}
	if f.Seed != nil {
		seed := *f.Seed
		cfg.Seed = &seed
	}
	if f.Export != nil {
		kind, err := format.ParseKind(*f.Export)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		cfg.Export = kind
	}
	if f.LogLevel != nil {
		cfg.LogLevel = *f.LogLevel
	}
	return nil
}
