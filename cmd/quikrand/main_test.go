package main

import (
	"testing"

	"github.com/Cheeseborgers/quik-math/config"
)

func TestOverrideConfig(t *testing.T) {
	seed = 42
	tokens = 3
	ids = 2
	samples = 100
	resume = true
	defer func() {
		seed = 0
		tokens = 0
		ids = 0
		samples = 0
		resume = false
	}()
	cfg := config.DefaultConfig()
	overrideConfig(cfg)
	if cfg.Seed != 42 || cfg.Tokens != 3 || cfg.IDs != 2 || cfg.Samples != 100 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if !cfg.Resume {
		t.Fatal("resume flag not applied")
	}
}
