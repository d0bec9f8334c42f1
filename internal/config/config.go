package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile        string        `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	RenderInterval time.Duration `yaml:"render-interval" env:"TICTACTOE_RENDER_INTERVAL" env-default:"100ms"`
	Board          Board         `yaml:"board"`
	History        History       `yaml:"history"`
}

// Board is the screen position of the top-left corner of the grid.
type Board struct {
	X int `yaml:"x" env:"TICTACTOE_BOARD_X" env-default:"10"`
	Y int `yaml:"y" env:"TICTACTOE_BOARD_Y" env-default:"10"`
}

type History struct {
	Enabled bool  `yaml:"enabled" env:"TICTACTOE_HISTORY_ENABLED" env-default:"false"`
	Limit   int   `yaml:"limit" env:"TICTACTOE_HISTORY_LIMIT" env-default:"10"`
	Redis   Redis `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// Load reads the YAML file at path when it exists, then applies environment
// variables and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.RenderInterval <= 0 {
		return fmt.Errorf("%w: render-interval must be positive, got %s", apperror.ErrInvalidConfig, that.RenderInterval)
	}

	if that.Board.X < 0 || that.Board.Y < 0 {
		return fmt.Errorf("%w: board position must not be negative, got (%d, %d)",
			apperror.ErrInvalidConfig, that.Board.X, that.Board.Y)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
