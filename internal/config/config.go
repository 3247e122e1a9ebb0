package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/aurceive/genshin-dashboard/internal/store"
)

const (
	EnvLogLevel = "LOG_LEVEL"
	EnvProxyURL = "GENSHIN_DASHBOARD_PROXY_URL"
)

var DefaultPath = filepath.Join("input", "genshin_dashboard", "config.yaml")

type Config struct {
	Proxy   ProxyConfig
	Store   StoreConfig
	Cache   CacheConfig
	Enrich  EnrichConfig
	Log     LogConfig
	Output  OutputConfig
	Discord DiscordConfig
}

type ProxyConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type StoreConfig struct {
	Driver string
	Path   string
	DSN    string
}

type CacheConfig struct {
	TTL time.Duration
}

type EnrichConfig struct {
	Timeout time.Duration
}

type LogConfig struct {
	Level  zerolog.Level
	Pretty bool
}

type OutputConfig struct {
	Dir string
}

type DiscordConfig struct {
	Token     string
	ChannelID string
}

type FileConfig struct {
	Proxy struct {
		BaseURL   string `yaml:"baseUrl"`
		UserAgent string `yaml:"userAgent"`
		Timeout   string `yaml:"timeout"`
	} `yaml:"proxy"`
	Store struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
		DSN    string `yaml:"dsn"`
	} `yaml:"store"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
	Enrich struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"enrich"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty *bool  `yaml:"pretty"`
	} `yaml:"log"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Discord struct {
		Token     string `yaml:"token"`
		ChannelID string `yaml:"channelId"`
	} `yaml:"discord"`
}

func defaults() Config {
	return Config{
		Proxy: ProxyConfig{
			UserAgent: "genshin-dashboard",
			Timeout:   25 * time.Second,
		},
		Store: StoreConfig{
			Driver: store.DriverFile,
			Path:   filepath.Join("work", "genshin_dashboard_store.json"),
		},
		Cache:  CacheConfig{TTL: 24 * time.Hour},
		Enrich: EnrichConfig{Timeout: 20 * time.Second},
		Log:    LogConfig{Level: zerolog.InfoLevel, Pretty: true},
		Output: OutputConfig{Dir: filepath.Join("output", "genshin_dashboard")},
	}
}

// Load resolves the configuration: defaults, then the yaml file, then the
// environment (.env included), then flags that were explicitly set. Relative
// paths are taken from appRoot.
func Load(appRoot string, flags *Flags) (Config, error) {
	if flags == nil {
		flags = &Flags{}
	}

	// .env is optional; real env vars win over it.
	if err := godotenv.Load(filepath.Join(appRoot, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read .env: %w", err)
	}

	cfg := defaults()

	path := strings.TrimSpace(flags.ConfigPath.v)
	if path == "" {
		path = DefaultPath
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(appRoot, path)
	}
	fc, err := loadFileConfig(path)
	if err != nil {
		return Config{}, err
	}
	if err := applyFile(&cfg, fc); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvProxyURL)); v != "" {
		cfg.Proxy.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q", EnvLogLevel, v)
		}
		cfg.Log.Level = lvl
	}

	if err := flags.apply(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if !validDriver(cfg.Store.Driver) {
		return Config{}, fmt.Errorf("invalid store.driver %q (expected %s)", cfg.Store.Driver, strings.Join(store.Drivers, "|"))
	}
	if cfg.Store.Path != "" && !filepath.IsAbs(cfg.Store.Path) {
		cfg.Store.Path = filepath.Join(appRoot, cfg.Store.Path)
	}
	if cfg.Output.Dir != "" && !filepath.IsAbs(cfg.Output.Dir) {
		cfg.Output.Dir = filepath.Join(appRoot, cfg.Output.Dir)
	}
	return cfg, nil
}

// RequireProxy is checked only by commands that talk to the aggregator.
func (c Config) RequireProxy() error {
	if strings.TrimSpace(c.Proxy.BaseURL) == "" {
		return fmt.Errorf("missing proxy.baseUrl (set it in %s, %s or --proxy-url)", DefaultPath, EnvProxyURL)
	}
	return nil
}

func (c Config) RequireDiscord() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return errors.New("missing discord.token")
	}
	if strings.TrimSpace(c.Discord.ChannelID) == "" {
		return errors.New("missing discord.channelId")
	}
	return nil
}

func applyFile(cfg *Config, fc FileConfig) error {
	if v := strings.TrimSpace(fc.Proxy.BaseURL); v != "" {
		cfg.Proxy.BaseURL = v
	}
	if v := strings.TrimSpace(fc.Proxy.UserAgent); v != "" {
		cfg.Proxy.UserAgent = v
	}
	if err := parseDuration("proxy.timeout", fc.Proxy.Timeout, &cfg.Proxy.Timeout); err != nil {
		return err
	}

	if v := strings.TrimSpace(fc.Store.Driver); v != "" {
		cfg.Store.Driver = v
	}
	if v := strings.TrimSpace(fc.Store.Path); v != "" {
		cfg.Store.Path = v
	}
	cfg.Store.DSN = strings.TrimSpace(fc.Store.DSN)

	if err := parseDuration("cache.ttl", fc.Cache.TTL, &cfg.Cache.TTL); err != nil {
		return err
	}
	if err := parseDuration("enrich.timeout", fc.Enrich.Timeout, &cfg.Enrich.Timeout); err != nil {
		return err
	}

	if v := strings.TrimSpace(fc.Log.Level); v != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return fmt.Errorf("invalid log.level %q", v)
		}
		cfg.Log.Level = lvl
	}
	if fc.Log.Pretty != nil {
		cfg.Log.Pretty = *fc.Log.Pretty
	}

	if v := strings.TrimSpace(fc.Output.Dir); v != "" {
		cfg.Output.Dir = v
	}
	cfg.Discord.Token = strings.TrimSpace(fc.Discord.Token)
	cfg.Discord.ChannelID = strings.TrimSpace(fc.Discord.ChannelID)
	return nil
}

func parseDuration(name, raw string, dst *time.Duration) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fmt.Errorf("invalid %s %q (expected a positive duration like 30s)", name, raw)
	}
	*dst = d
	return nil
}

func validDriver(d string) bool {
	for _, x := range store.Drivers {
		if x == d {
			return true
		}
	}
	return false
}

func loadFileConfig(path string) (FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("read config yaml %s: %w", path, err)
	}

	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		// An empty file decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return fc, nil
}
