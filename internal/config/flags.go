package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type stringOpt struct {
	v   string
	set bool
}

func (o *stringOpt) String() string { return o.v }
func (o *stringOpt) Set(v string) error {
	o.v = v
	o.set = true
	return nil
}
func (o *stringOpt) Type() string { return "string" }

// Flags are the global command-line overrides. A flag only overrides the file
// value when it was given on the command line.
type Flags struct {
	ConfigPath stringOpt
	ProxyURL   stringOpt
	StoreKind  stringOpt
	StorePath  stringOpt
	LogLevel   stringOpt
	OutDir     stringOpt
}

func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.Var(&f.ConfigPath, "config", "path to config yaml (default: "+DefaultPath+")")
	fs.Var(&f.ProxyURL, "proxy-url", "HoYoLab proxy endpoint URL")
	fs.Var(&f.StoreKind, "store", "key-value store driver (memory|file|sqlite|postgres)")
	fs.Var(&f.StorePath, "store-path", "store file path for the file and sqlite drivers")
	fs.Var(&f.LogLevel, "log-level", "log level (debug|info|warn|error)")
	fs.Var(&f.OutDir, "out-dir", "output directory for exports")
}

func (f *Flags) apply(cfg *Config) error {
	if f.ProxyURL.set {
		cfg.Proxy.BaseURL = strings.TrimSpace(f.ProxyURL.v)
	}
	if f.StoreKind.set {
		cfg.Store.Driver = strings.TrimSpace(f.StoreKind.v)
	}
	if f.StorePath.set {
		cfg.Store.Path = strings.TrimSpace(f.StorePath.v)
	}
	if f.LogLevel.set {
		lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(f.LogLevel.v)))
		if err != nil {
			return fmt.Errorf("invalid --log-level %q", f.LogLevel.v)
		}
		cfg.Log.Level = lvl
	}
	if f.OutDir.set {
		cfg.Output.Dir = strings.TrimSpace(f.OutDir.v)
	}
	return nil
}
