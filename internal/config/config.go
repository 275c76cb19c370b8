package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BingoDir          string     `yaml:"bingo-dir" env:"BINGO_DIR" env-default:"./bingo-files"`
	FileID            string     `yaml:"file-id" env:"FILE_ID" env-default:"test-1.txt"`
	HTTPPort          string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis             Redis      `yaml:"redis"`
	SQLiteStoragePath string     `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
	Simulation        Simulation `yaml:"simulation"`
	Generator         Generator  `yaml:"generator"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

type Simulation struct {
	MarkPolicy string `yaml:"mark-policy" env:"MARK_POLICY" env-default:"once-per-cell"`
	Workers    int    `yaml:"workers" env:"SIMULATION_WORKERS" env-default:"1"`
}

type Generator struct {
	CardSize      int      `yaml:"card-size" env-default:"5"`
	NumberOfCalls int      `yaml:"number-of-calls" env-default:"27"`
	NumberOfCards int      `yaml:"number-of-cards" env-default:"3"`
	Files         []string `yaml:"files" env-default:"test-1.txt,test-2.txt,test-3.txt,test-4.txt,test-5.txt"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, environment variables override its values.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
