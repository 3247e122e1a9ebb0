package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, root, body string) {
	t.Helper()
	p := filepath.Join(root, DefaultPath)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvProxyURL, "")
	root := t.TempDir()

	cfg, err := Load(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != "file" || cfg.Cache.TTL != 24*time.Hour || cfg.Enrich.Timeout != 20*time.Second {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if cfg.Store.Path != filepath.Join(root, "work", "genshin_dashboard_store.json") {
		t.Fatalf("expected store path under app root, got %q", cfg.Store.Path)
	}
	if err := cfg.RequireProxy(); err == nil {
		t.Fatalf("expected missing proxy url to be reported")
	}
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	t.Setenv(EnvProxyURL, "")
	t.Setenv(EnvLogLevel, "warn")
	root := t.TempDir()
	writeConfig(t, root, `
proxy:
  baseUrl: https://file.example/api/proxy
  timeout: 10s
store:
  driver: sqlite
  path: work/dash.db
cache:
  ttl: 1h
log:
  level: debug
  pretty: false
discord:
  token: abc
  channelId: "123"
`)

	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bind(fs)
	if err := fs.Parse([]string{"--proxy-url", "https://flag.example/api/proxy"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root, &flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Proxy.BaseURL != "https://flag.example/api/proxy" {
		t.Fatalf("expected flag to win, got %q", cfg.Proxy.BaseURL)
	}
	if cfg.Proxy.Timeout != 10*time.Second || cfg.Cache.TTL != time.Hour {
		t.Fatalf("unexpected durations %v %v", cfg.Proxy.Timeout, cfg.Cache.TTL)
	}
	if cfg.Log.Level != zerolog.WarnLevel || cfg.Log.Pretty {
		t.Fatalf("expected env log level and file pretty=false, got %v %v", cfg.Log.Level, cfg.Log.Pretty)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.Path != filepath.Join(root, "work", "dash.db") {
		t.Fatalf("unexpected store %#v", cfg.Store)
	}
	if err := cfg.RequireDiscord(); err != nil {
		t.Fatalf("unexpected discord error: %v", err)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "proxy:\n  baseUrl: x\n  retries: 3\n")
	_, err := Load(root, nil)
	if err == nil || !strings.Contains(err.Error(), "parse config yaml") {
		t.Fatalf("expected parse error for unknown key, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cases := []string{
		"cache:\n  ttl: soon\n",
		"store:\n  driver: redis\n",
		"log:\n  level: loud\n",
	}
	for _, body := range cases {
		root := t.TempDir()
		writeConfig(t, root, body)
		if _, err := Load(root, nil); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	if _, err := Load(root, nil); err != nil {
		t.Fatalf("expected empty file to mean defaults, got %v", err)
	}
}
