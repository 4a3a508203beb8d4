package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	PlayerKindHuman   = "human"
	PlayerKindRandom  = "random"
	PlayerKindMinimax = "minimax"
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PlayerX      string        `yaml:"player-x" env:"PLAYER_X" env-default:"human"`
	PlayerO      string        `yaml:"player-o" env:"PLAYER_O" env-default:"minimax"`
	StartingMark string        `yaml:"starting-mark" env:"STARTING_MARK" env-default:"X"`
	BotDelay     time.Duration `yaml:"bot-delay" env:"BOT_DELAY" env-default:"250ms"`
	ArchivePath  string        `yaml:"archive-path" env:"ARCHIVE_PATH" env-default:""`
}

// MustLoad - load all configurations in config.yml file, falling back to
// environment variables when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
