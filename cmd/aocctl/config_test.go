package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danmuck/aocctl/internal/puzzles/day02"
	"github.com/danmuck/aocctl/internal/testutil/testlog"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadCLIConfigExample(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadCLIConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := defaultCLIConfig()
	want.Concurrency = 4
	want.LogLevel = zerolog.DebugLevel
	want.FetchTimeout = 10 * time.Second
	want.RetryAttempts = 5
	want.Bag = day02.Cubes{Red: 20, Green: 13, Blue: 14}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCLIConfigEmptyKeepsDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadCLIConfig(writeConfig(t, "\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if diff := cmp.Diff(defaultCLIConfig(), cfg); diff != "" {
		t.Fatalf("defaults changed (-want +got):\n%s", diff)
	}
}

func TestLoadCLIConfigExpansion(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadCLIConfig(writeConfig(t, "expansion = 10\nsession_file = \"\"\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Expansion != 10 || cfg.SessionFile != "" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.builtinOptions().Expansion != 10 {
		t.Fatalf("expansion not forwarded to solver options")
	}
}

func TestLoadCLIConfigRejectsBadValues(t *testing.T) {
	testlog.Start(t)
	cases := []string{
		`fetch_timeout = "soon"`,
		`log_level = "loud"`,
		`year = 1999`,
		`retry_attempts = 0`,
		`expansion = 0`,
		`concurrency = -2`,
		`year = "2023"`,
	}
	for _, content := range cases {
		if _, err := loadCLIConfig(writeConfig(t, content)); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}
