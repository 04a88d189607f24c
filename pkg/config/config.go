package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"saes-go/pkg/saes"

	"github.com/spf13/viper"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats accepted for the output field.
var Formats = []string{"bin", "hex", "dec"}

type Config struct {
	Key          string `mapstructure:"key"`
	Format       string `mapstructure:"format"`
	LogDB        string `mapstructure:"log_db"`
	Debug        bool   `mapstructure:"debug"`
	ListenAddr   string `mapstructure:"listen_address"`
	SweepWorkers int    `mapstructure:"sweep_workers"`
	ConfigFile   string `mapstructure:"config_file"`

	parsedKey    uint16
	keyValidated bool
}

func DefaultConfig() *Config {
	return &Config{
		Key:          "0xA73B",
		Format:       "bin",
		ListenAddr:   ":7780",
		SweepWorkers: runtime.NumCPU(),
		ConfigFile:   "saes",
	}
}

// Load reads configuration from an optional yaml file, SAES_* environment
// variables and overrides, lowest precedence first. configFile may be a path
// or a bare name searched in ., /etc/saes-go/ and $HOME/.saes-go. A missing
// file is not an error unless it was given as a path.
func Load(configFile string, overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("key", cfg.Key)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("log_db", cfg.LogDB)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("listen_address", cfg.ListenAddr)
	v.SetDefault("sweep_workers", cfg.SweepWorkers)
	v.SetDefault("config_file", cfg.ConfigFile)

	explicit := configFile != "" && strings.ContainsAny(configFile, `/\.`)
	switch {
	case explicit:
		v.SetConfigFile(configFile)
	default:
		if configFile == "" {
			configFile = cfg.ConfigFile
		}
		v.SetConfigName(configFile)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/saes-go/")
		v.AddConfigPath("$HOME/.saes-go")
	}
	v.SetEnvPrefix("SAES")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if used := v.ConfigFileUsed(); used != "" {
		cfg.ConfigFile = used
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate parses the key and checks the output format and worker count.
func (c *Config) Validate() error {
	k, err := saes.ParseWord(c.Key)
	if err != nil {
		return fmt.Errorf("config: key: %w", err)
	}
	c.parsedKey = k
	c.keyValidated = true

	c.Format = strings.ToLower(c.Format)
	known := false
	for _, f := range Formats {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("config: format %q: %w", c.Format, ErrUnknownFormat)
	}

	if c.SweepWorkers < 1 {
		c.SweepWorkers = 1
	}
	return nil
}

// KeyWord returns the parsed key. Validate must have succeeded.
func (c *Config) KeyWord() uint16 {
	if !c.keyValidated {
		panic("config: KeyWord called before Validate")
	}
	return c.parsedKey
}
