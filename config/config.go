package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Bun        BunConfig
	LoggerMode LoggerMode
	Prekeys    PrekeyConfig
}

type BunConfig struct {
	DSN          string
	MaxOpenConns int
}

type LoggerMode struct {
	Development bool
	Level       string
}

type PrekeyConfig struct {
	// SignedPreKeyTTL is the expiry applied when an upload omits one.
	SignedPreKeyTTL time.Duration
}

const DefaultSignedPreKeyTTL = 30 * 24 * time.Hour

// LoadConfig reads the yaml file at path. Any key can be overridden by an
// environment variable such as KEYBROKER_BUN_DSN.
func LoadConfig(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("keybroker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("bun.maxopenconns", 10)
	v.SetDefault("loggermode.level", "info")
	v.SetDefault("prekeys.signedprekeyttl", DefaultSignedPreKeyTTL)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Bun.DSN == "" {
		return nil, errors.New("bun.dsn is required")
	}
	if c.Prekeys.SignedPreKeyTTL <= 0 {
		c.Prekeys.SignedPreKeyTTL = DefaultSignedPreKeyTTL
	}
	return &c, nil
}
