// Package config loads process settings from defaults, an optional YAML
// file, a .env file, BASIS_* environment variables and flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/infinityCounter2/basis-stream/internal/registry"
	"github.com/infinityCounter2/basis-stream/internal/session"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "BASIS"

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Instruments InstrumentsConfig `mapstructure:"instruments"`
	Session     SessionConfig     `mapstructure:"session"`
	Log         LogConfig         `mapstructure:"log"`
	Redis       RedisConfig       `mapstructure:"redis"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" validate:"min=1,max=65535"`
	PushInterval time.Duration `mapstructure:"push_interval" validate:"gt=0"`
	PingInterval time.Duration `mapstructure:"ping_interval" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
}

type PersistenceConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Dir           string        `mapstructure:"dir" validate:"required"`
	SaveInterval  time.Duration `mapstructure:"save_interval" validate:"gt=0"`
	RetentionDays int           `mapstructure:"retention_days" validate:"min=1"`
}

type InstrumentsConfig struct {
	// Families are "ID:SPOT" pairs, e.g. "IC:000905.SH".
	Families     []string `mapstructure:"families" validate:"required,min=1,dive,required"`
	Tenors       []string `mapstructure:"tenors" validate:"required,min=1,dive,required"`
	MarketSuffix string   `mapstructure:"market_suffix"`
}

type SessionConfig struct {
	// Windows are "HH:MM-HH:MM" local time ranges, both ends inclusive.
	Windows []string `mapstructure:"windows"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type RedisConfig struct {
	// Addr enables publishing when set.
	Addr          string `mapstructure:"addr"`
	Password      string `mapstructure:"password"`
	DB            int    `mapstructure:"db" validate:"min=0"`
	ChannelPrefix string `mapstructure:"channel_prefix" validate:"required"`
}

func setDefaults(v *viper.Viper) {
	families := make([]string, 0, len(registry.DefaultFamilies))
	for _, f := range registry.DefaultFamilies {
		families = append(families, f.ID+":"+f.Spot)
	}
	windows := make([]string, 0, len(session.DefaultWindows))
	for _, w := range session.DefaultWindows {
		windows = append(windows, w.String())
	}

	v.SetDefault("server.port", 8765)
	v.SetDefault("server.push_interval", 500*time.Millisecond)
	v.SetDefault("server.ping_interval", 30*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("persistence.enabled", true)
	v.SetDefault("persistence.dir", "data")
	v.SetDefault("persistence.save_interval", 60*time.Second)
	v.SetDefault("persistence.retention_days", 7)

	v.SetDefault("instruments.families", families)
	v.SetDefault("instruments.tenors", registry.DefaultTenors)
	v.SetDefault("instruments.market_suffix", registry.DefaultMarketSuffix)

	v.SetDefault("session.windows", windows)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel_prefix", "basis")
}

// flag name -> config key
var flagKeys = map[string]string{
	"port":        "server.port",
	"data-dir":    "persistence.dir",
	"persist":     "persistence.enabled",
	"log-level":   "log.level",
	"log-format":  "log.format",
	"redis-addr":  "redis.addr",
	"market-open": "session.windows",
}

// Load parses args (without the program name) and resolves the config.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("basis-stream", pflag.ContinueOnError)
	configFile := flags.String("config", "", "Path to a YAML config file")
	envFile := flags.String("env-file", ".env", "Path to a .env file, ignored when missing")
	flags.Int("port", 8765, "The port the websocket server listens on")
	flags.String("data-dir", "data", "Root directory for daily snapshots")
	flags.Bool("persist", true, "Save and restore daily snapshots")
	flags.String("log-level", "info", "One of debug, info, warn, error")
	flags.String("log-format", "json", "One of json, console")
	flags.String("redis-addr", "", "Redis address to publish points to, empty disables")
	flags.StringSlice("market-open", nil, "Session windows as HH:MM-HH:MM, repeatable")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// Variables already in the environment win over the file.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", *envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", *configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct constraints and that instruments and session
// windows parse.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Instruments.RegistryParams(); err != nil {
		return err
	}
	if _, err := c.Session.Clock(); err != nil {
		return err
	}
	return nil
}

// RegistryParams converts the instrument settings for registry.New.
func (c InstrumentsConfig) RegistryParams() (registry.Params, error) {
	p := registry.Params{
		Tenors:       c.Tenors,
		MarketSuffix: c.MarketSuffix,
	}
	for _, entry := range c.Families {
		id, spot, ok := strings.Cut(entry, ":")
		id, spot = strings.TrimSpace(id), strings.TrimSpace(spot)
		if !ok || id == "" || spot == "" {
			return registry.Params{}, fmt.Errorf("invalid family %q, want ID:SPOT", entry)
		}
		p.Families = append(p.Families, registry.FamilyParams{ID: id, Spot: spot})
	}
	return p, nil
}

// Clock returns the configured trading session.
func (c SessionConfig) Clock() (session.Windows, error) {
	return session.ParseWindows(c.Windows)
}
