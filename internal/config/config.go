// Package config loads CLI settings from defaults, an optional YAML or JSON
// file and GOPHB_ environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/climate"
	"github.com/alexiusacademia/gophb/internal/export"
	"github.com/alexiusacademia/gophb/internal/hosting"
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

const EnvPrefix = "GOPHB_"

type Config struct {
	DocumentUnit string        `koanf:"document_unit" yaml:"document_unit"`
	Tolerance    float64       `koanf:"tolerance" yaml:"tolerance" validate:"gt=0"`
	Log          LogConfig     `koanf:"log" yaml:"log"`
	Hosting      HostingConfig `koanf:"hosting" yaml:"hosting"`
	Climate      ClimateConfig `koanf:"climate" yaml:"climate"`
	Export       ExportConfig  `koanf:"export" yaml:"export"`
}

type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

type HostingConfig struct {
	ZOffset          float64 `koanf:"z_offset" yaml:"z_offset" validate:"gte=0"`
	InheritRoomNames bool    `koanf:"inherit_room_names" yaml:"inherit_room_names"`
}

type ClimateConfig struct {
	ClimateZone int `koanf:"climate_zone" yaml:"climate_zone" validate:"gte=0"`
	UTCOffset   int `koanf:"utc_offset" yaml:"utc_offset" validate:"gte=-12,lte=14"`
}

type ExportConfig struct {
	Executable              string        `koanf:"executable" yaml:"executable"`
	Prefix                  []string      `koanf:"prefix" yaml:"prefix"`
	Timeout                 time.Duration `koanf:"timeout" yaml:"timeout"`
	GroupComponents         bool          `koanf:"group_components" yaml:"group_components"`
	MergeFaces              string        `koanf:"merge_faces" yaml:"merge_faces"`
	MergeSpacesByERV        bool          `koanf:"merge_spaces_by_erv" yaml:"merge_spaces_by_erv"`
	MergeExhaustVentDevices bool          `koanf:"merge_exhaust_vent_devices" yaml:"merge_exhaust_vent_devices"`
	LogLevel                int           `koanf:"log_level" yaml:"log_level"`
}

func Default() Config {
	return Config{
		DocumentUnit: string(units.M),
		Tolerance:    0.001,
		Log:          LogConfig{Level: "info", Format: "console"},
		Hosting:      HostingConfig{ZOffset: hosting.DefaultZOffset},
		Export: ExportConfig{
			Executable:      "python3",
			Timeout:         5 * time.Minute,
			GroupComponents: true,
			MergeFaces:      "false",
		},
	}
}

// sections are the nested config blocks; env keys starting with one of
// them get their first '_' turned into '.'.
var sections = []string{"log", "hosting", "climate", "export"}

func envKeyTransform(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	for _, s := range sections {
		if rest, ok := strings.CutPrefix(k, s+"_"); ok && rest != "" {
			return s + "." + rest
		}
	}
	return k
}

// Load layers defaults, the file at path (skipped when path is empty or the
// file does not exist) and the environment. environ may be nil to read the
// process environment.
func Load(path string, environ func() []string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return Config{}, err
		}
	}

	envProvider := env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = envKeyTransform(strings.TrimPrefix(key, EnvPrefix))
			if key == "export.prefix" {
				return key, strings.Fields(value)
			}
			return key, value
		},
		EnvironFunc: environ,
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config extension %q", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and that the document unit and export settings
// parse.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if _, err := c.Document(); err != nil {
		return err
	}
	_, err := c.ExportSettings()
	return err
}

func (c Config) Document() (units.Document, error) {
	u, ok := units.LookupUnit(c.DocumentUnit)
	if !ok {
		return units.Document{}, &units.InvalidQuantityError{Field: "document_unit", Input: c.DocumentUnit, Reason: "unknown unit"}
	}
	doc := units.Document{Unit: u}
	return doc, doc.Validate()
}

func (c Config) HostingOptions() hosting.Options {
	return hosting.Options{ZOffset: c.Hosting.ZOffset, InheritRoomNames: c.Hosting.InheritRoomNames}
}

func (c Config) ClimateOptions() climate.Options {
	return climate.Options{ClimateZone: c.Climate.ClimateZone, HoursFromUTC: c.Climate.UTCOffset}
}

func (c Config) ExportSettings() (export.Settings, error) {
	mf, err := export.ParseMergeFaces(c.Export.MergeFaces)
	if err != nil {
		return export.Settings{}, err
	}
	s := export.Settings{
		GroupComponents:         c.Export.GroupComponents,
		MergeFaces:              mf,
		MergeSpacesByERV:        c.Export.MergeSpacesByERV,
		MergeExhaustVentDevices: c.Export.MergeExhaustVentDevices,
		LogLevel:                c.Export.LogLevel,
	}
	return s, s.Validate()
}

func (c Config) Runner(log *zap.Logger) export.Runner {
	return export.Runner{
		Executable: c.Export.Executable,
		Prefix:     c.Export.Prefix,
		Timeout:    c.Export.Timeout,
		Log:        log,
	}
}
