package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Service   Service   `yaml:"service"`
	Retry     Retry     `yaml:"retry"`
	Animation Animation `yaml:"animation"`
	Options   Options   `yaml:"options"`
	Redis     Redis     `yaml:"redis"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Service struct {
	BaseURL string        `yaml:"base-url" env:"GAME_SERVICE_URL" env-default:"http://localhost:5000"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type Retry struct {
	MaxAttempts     uint64        `yaml:"max-attempts" env-default:"3"`
	InitialInterval time.Duration `yaml:"initial-interval" env-default:"200ms"`
	MaxInterval     time.Duration `yaml:"max-interval" env-default:"2s"`
}

type Animation struct {
	MoveDelay time.Duration `yaml:"move-delay" env-default:"500ms"`
}

// Options lists the values the UI cycles through. They are forwarded to the
// game service verbatim.
type Options struct {
	GameModes     []string `yaml:"game-modes" env-default:"human_vs_ai,human_vs_human"`
	Difficulties  []string `yaml:"difficulties" env-default:"impossible,medium,easy"`
	PlayerChoices []string `yaml:"player-choices" env-default:"X,O"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName  string `yaml:"service-name" env-default:"tictactoe-client"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.Service.BaseURL == "" {
		return errors.New("service base-url is empty")
	}

	if that.Animation.MoveDelay < 0 {
		return fmt.Errorf("animation move-delay is negative: %s", that.Animation.MoveDelay)
	}

	if len(that.Options.GameModes) == 0 || len(that.Options.Difficulties) == 0 || len(that.Options.PlayerChoices) == 0 {
		return errors.New("options lists must not be empty")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
