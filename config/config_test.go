package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Schema != "types.yaml" {
		t.Errorf("expected default schema 'types.yaml', got %q", cfg.Schema)
	}
	if cfg.Output != "" {
		t.Errorf("expected default output '' (stdout), got %q", cfg.Output)
	}
	if cfg.Generator.Attribute != "" {
		t.Errorf("expected empty default attribute, got %q", cfg.Generator.Attribute)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ProjectConfigName)
	content := `
schema = "protocol/types.yaml"
output = "include/generated/types.hpp"

[generator]
attribute = "PACKED_API"

[generator.type_mapping]
f32 = "Float32"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Schema != "protocol/types.yaml" {
		t.Errorf("expected schema from file, got %q", cfg.Schema)
	}
	if cfg.Output != "include/generated/types.hpp" {
		t.Errorf("expected output from file, got %q", cfg.Output)
	}
	if cfg.Generator.Attribute != "PACKED_API" {
		t.Errorf("expected attribute from file, got %q", cfg.Generator.Attribute)
	}
	if cfg.Generator.TypeMapping["f32"] != "Float32" {
		t.Errorf("expected type mapping override, got %v", cfg.Generator.TypeMapping)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestReset(t *testing.T) {
	Reset()
	if globalConfig != nil || viperInstance != nil {
		t.Error("Reset() should clear cached state")
	}
}
