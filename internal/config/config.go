package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var (
	ErrUnknownLogFormat = errors.New("unknown log format")
	ErrEmptyChannel     = errors.New("redis channel is empty")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	Game      Game   `yaml:"game"`
	Redis     Redis  `yaml:"redis"`
}

type Game struct {
	Difficulty string `yaml:"difficulty" env:"TICTACTOE_DIFFICULTY" env-default:"hard"`
	HumanMark  string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
	// Seed 0 seeds the AI from the clock.
	Seed int64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:events"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path, or only the environment when path is empty or missing.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" || !fileExists(path) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if _, err := entity.ParseDifficulty(that.Game.Difficulty); err != nil {
		return fmt.Errorf("game.difficulty: %w", err)
	}

	if _, err := entity.ParseMark(that.Game.HumanMark); err != nil {
		return fmt.Errorf("game.human-mark: %w", err)
	}

	switch that.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}

	if that.Redis.Enabled && that.Redis.Channel == "" {
		return ErrEmptyChannel
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
