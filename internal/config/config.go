package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-wars/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-wars/internal/entity"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"

	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	LogLevel    string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat   string     `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Rounds      int        `yaml:"rounds" env:"ROUNDS" env-default:"1"`
	FirstMover  string     `yaml:"first-mover" env:"FIRST_MOVER" env-default:"X"`
	RenderBoard bool       `yaml:"render-board" env:"RENDER_BOARD"`
	Seed        int64      `yaml:"seed" env:"SEED" env-default:"0"`
	RobotX      Robot      `yaml:"robot-x" env-prefix:"ROBOT_X_"`
	RobotO      Robot      `yaml:"robot-o" env-prefix:"ROBOT_O_"`
	Scoreboard  Scoreboard `yaml:"scoreboard" env-prefix:"SCOREBOARD_"`
	Redis       Redis      `yaml:"redis" env-prefix:"REDIS_"`
}

type Robot struct {
	Kind string `yaml:"kind" env:"KIND" env-default:"random"`
	Name string `yaml:"name" env:"NAME"`
}

type Scoreboard struct {
	Driver    string `yaml:"driver" env:"DRIVER" env-default:"memory"`
	KeyPrefix string `yaml:"key-prefix" env:"KEY_PREFIX" env-default:"scoreboard"`
}

type Redis struct {
	Host string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the yaml file at path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", apperror.ErrInvalidConfiguration, that.Rounds)
	}

	nameX, nameO := strings.TrimSpace(that.RobotX.Name), strings.TrimSpace(that.RobotO.Name)
	if nameX == "" || nameO == "" {
		return fmt.Errorf("%w: both robots need a name", apperror.ErrInvalidConfiguration)
	}

	if nameX == nameO {
		return fmt.Errorf("%w: both robots are named %q", apperror.ErrInvalidConfiguration, nameX)
	}

	if !that.FirstMoverMark().IsValid() {
		return fmt.Errorf("%w: first-mover must be X or O, got %q", apperror.ErrInvalidConfiguration, that.FirstMover)
	}

	switch that.Scoreboard.Driver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("%w: unknown scoreboard driver %q", apperror.ErrInvalidConfiguration, that.Scoreboard.Driver)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", apperror.ErrInvalidConfiguration, that.LogLevel)
	}

	switch that.LogFormat {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: unknown log format %q", apperror.ErrInvalidConfiguration, that.LogFormat)
	}

	return nil
}

func (that *Config) FirstMoverMark() entity.Mark {
	return entity.Mark(strings.ToUpper(strings.TrimSpace(that.FirstMover)))
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
