package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/gophb/internal/units"
)

func noEnv() []string { return nil }

func TestEnvKeyTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"DOCUMENT_UNIT", "document_unit"},
		{"TOLERANCE", "tolerance"},
		{"LOG_LEVEL", "log.level"},
		{"HOSTING_Z_OFFSET", "hosting.z_offset"},
		{"HOSTING_INHERIT_ROOM_NAMES", "hosting.inherit_room_names"},
		{"EXPORT_MERGE_SPACES_BY_ERV", "export.merge_spaces_by_erv"},
		{"CLIMATE", "climate"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := envKeyTransform(tt.in); got != tt.want {
			t.Fatalf("envKeyTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DocumentUnit != "M" || cfg.Tolerance != 0.001 || cfg.Hosting.ZOffset != 0.1 {
		t.Fatalf("defaults = %+v", cfg)
	}
	s, err := cfg.ExportSettings()
	if err != nil || !s.GroupComponents || s.MergeFaces.Enabled {
		t.Fatalf("export settings = %+v, %v", s, err)
	}
	if cfg.Runner(nil).Timeout != 5*time.Minute {
		t.Fatalf("runner timeout = %v", cfg.Runner(nil).Timeout)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gophb.yaml")
	body := "document_unit: MM\n" +
		"tolerance: 1\n" +
		"hosting:\n  z_offset: 100\n" +
		"climate:\n  climate_zone: 5\n  utc_offset: -5\n" +
		"export:\n  merge_faces: \"0.01\"\n  log_level: 20\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	environ := func() []string {
		return []string{
			"GOPHB_HOSTING_INHERIT_ROOM_NAMES=true",
			"GOPHB_EXPORT_PREFIX=-m honeybee_ph_wufi",
			"GOPHB_LOG_FORMAT=json",
			"OTHER_VAR=1",
		}
	}
	cfg, err := Load(path, environ)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc, err := cfg.Document()
	if err != nil || doc.Unit != units.MM {
		t.Fatalf("document = %+v, %v", doc, err)
	}
	h := cfg.HostingOptions()
	if h.ZOffset != 100 || !h.InheritRoomNames {
		t.Fatalf("hosting = %+v", h)
	}
	if c := cfg.ClimateOptions(); c.ClimateZone != 5 || c.HoursFromUTC != -5 {
		t.Fatalf("climate = %+v", c)
	}
	s, _ := cfg.ExportSettings()
	if s.MergeFaces.Tolerance != 0.01 || s.LogLevel != 20 {
		t.Fatalf("export = %+v", s)
	}
	if len(cfg.Export.Prefix) != 2 || cfg.Log.Format != "json" {
		t.Fatalf("env overrides = %+v / %+v", cfg.Export, cfg.Log)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), noEnv); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	tests := []struct {
		name string
		path string
		want error
	}{
		{"area document unit", write("a.json", `{"document_unit": "M2"}`), units.ErrInvalidQuantity},
		{"negative tolerance", write("b.yaml", "tolerance: -1\n"), units.ErrRangeViolation},
		{"utc offset", write("c.yml", "climate:\n  utc_offset: 20\n"), units.ErrRangeViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path, noEnv); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := Load(write("d.toml", ""), noEnv); err == nil {
		t.Fatalf("toml accepted")
	}
}
