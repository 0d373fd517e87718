package config

import (
	"os"
	"path"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath = path.Join(dir, "config.yaml")
	defer func() { configPath = "" }()

	data := []byte("seed: 12345\ntokens: 3\ntokenLength: 8\nalphabet: alpha\nserve: \":8080\"\n")
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 12345 || cfg.Tokens != 3 || cfg.TokenLength != 8 {
		t.Fatalf("loaded config mismatch: %+v", cfg)
	}
	if cfg.AlphabetType().String() != "Alpha" {
		t.Fatalf("alphabet = %v", cfg.AlphabetType())
	}
	if cfg.ServeAddress != ":8080" {
		t.Fatalf("serve = %q", cfg.ServeAddress)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath = path.Join(dir, "missing.yaml")
	defer func() { configPath = "" }()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TokenLength != 16 || cfg.Generator != "default" || cfg.ChartTTL != 60 {
		t.Fatalf("defaults mismatch: %+v", cfg)
	}
}
