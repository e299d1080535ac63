package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"8000"`
	Engine   Engine `yaml:"engine"`
	CORS     CORS   `yaml:"cors"`
	Redis    Redis  `yaml:"redis"`
}

type Engine struct {
	Path    string        `yaml:"path" env:"ENGINE_PATH" env-default:"./tictactoe_engine"`
	Timeout time.Duration `yaml:"timeout" env:"ENGINE_TIMEOUT" env-default:"5s"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed-origins" env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:5173"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// EngineProcess is the configuration of the engine binary. It is read from the environment only.
type EngineProcess struct {
	LogLevel string `env:"ENGINE_LOG_LEVEL" env-default:"error"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// MustLoadEngine - load the engine configuration from environment variables.
func MustLoadEngine() *EngineProcess {
	config := &EngineProcess{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load engine config: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
