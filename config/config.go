/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads grimoire settings from the environment, optionally
// seeded from .env files.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/locale"
)

// Output formats.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds the settings for the grimoire command.
type Config struct {
	DataDir        string `env:"GRIMOIRE_DATA_DIR" envDefault:"assets/data"`
	CharactersFile string `env:"GRIMOIRE_CHARACTERS_FILE" envDefault:"characters.json"`
	GameFile       string `env:"GRIMOIRE_GAME_FILE" envDefault:"game.json"`
	Locale         string `env:"GRIMOIRE_LOCALE" envDefault:"en_GB"`
	Output         string `env:"GRIMOIRE_OUTPUT" envDefault:"yaml"`
}

// Load reads the given .env files (".env" when none are given), skipping
// files that do not exist, then parses the environment. Variables already set
// in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", name, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	switch c.Output {
	case OutputYAML, OutputJSON:
	default:
		return errors.NewValidationError("GRIMOIRE_OUTPUT", fmt.Sprintf("unknown output format %q", c.Output))
	}
	if c.DataDir == "" {
		return errors.NewValidationError("GRIMOIRE_DATA_DIR", "must not be empty")
	}
	if _, err := locale.Default().Lookup(c.Locale); err != nil {
		return errors.NewValidationError("GRIMOIRE_LOCALE", fmt.Sprintf("unknown locale %q", c.Locale))
	}
	return nil
}
