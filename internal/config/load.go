package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var defineFlagsOnce sync.Once

// Load loads configuration from multiple sources with the following precedence:
// 1. Command line flags
// 2. Environment variables
// 3. Config file
// 4. Default values
func Load() (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	defineFlags()
	if !pflag.Parsed() {
		pflag.Parse()
	}

	// --- Config file ---
	cfgPath, _ := pflag.CommandLine.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("graphql-rename")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.graphql-rename")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: GQLRENAME_LOGGING_LEVEL
	v.SetEnvPrefix("GQLRENAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(v)

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(mapstructure.StringToSliceHookFunc(",")),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Rename flags are a list and do not map onto a single viper key; they
	// are carried separately and appended after the file entries.
	cfg.renameFlags, _ = pflag.CommandLine.GetStringArray("rename")

	return &cfg, nil
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlagsToViper(v *viper.Viper) {
	pflag.CommandLine.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "version" || f.Name == "rename" {
			return
		}

		switch f.Value.Type() {
		case "string":
			val, _ := pflag.CommandLine.GetString(f.Name)
			v.Set(f.Name, val)
		case "bool":
			val, _ := pflag.CommandLine.GetBool(f.Name)
			v.Set(f.Name, val)
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
}

// defineFlags defines all command line flags using canonical snake_case keys.
func defineFlags() {
	defineFlagsOnce.Do(func() {
		pflag.String("input", "", "Path to the SDL document to rewrite (use - for stdin)")
		pflag.String("output", "", "Path the rewritten SDL is written to (use - for stdout)")
		pflag.StringArray("rename", nil, "Type rename as Old=New (repeatable, applied after config file entries)")

		pflag.String("logging.level", "", "Log level (debug, info, warn, error)")
		pflag.String("logging.format", "", "Log format (json, text)")

		pflag.String("config", "", "Path to config file")
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("renames", []RenameEntry{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// splitRenameFlag parses an "Old=New" flag value.
func splitRenameFlag(raw string) (from, to string, ok bool) {
	from, to, found := strings.Cut(raw, "=")
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if !found || from == "" || to == "" {
		return "", "", false
	}
	return from, to, true
}
