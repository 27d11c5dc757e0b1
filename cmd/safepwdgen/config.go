package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds defaults that command line flags can override.
type Config struct {
	Length       int    `env:"SAFEPWDGEN_LENGTH" envDefault:"20"`
	SpecialChars bool   `env:"SAFEPWDGEN_SPECIAL_CHARS" envDefault:"true"`
	Clipboard    bool   `env:"SAFEPWDGEN_CLIPBOARD" envDefault:"true"`
	LogLevel     string `env:"SAFEPWDGEN_LOG_LEVEL" envDefault:"warn"`
	LogFormat    string `env:"SAFEPWDGEN_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads Config from the environment after loading the given
// .env files, if any. Variables already set in the environment win over the
// files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadConfig, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}
	if cfg.Length < 0 {
		return Config{}, errors.Join(ErrLoadConfig, fmt.Errorf("SAFEPWDGEN_LENGTH must not be negative, got %d", cfg.Length))
	}

	return cfg, nil
}
