// config — загрузка конфигурации клиента маркетплейса.
//
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация клиента.
type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	API         APIConfig         `yaml:"api"`
	Credentials CredentialsConfig `yaml:"credentials"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// APIConfig — параметры доступа к REST-бэкенду маркетплейса.
type APIConfig struct {
	// BaseURL — корень API, например https://api.kursi.uz.
	BaseURL string `yaml:"base_url" env:"API_BASE_URL" env-default:"https://api.kursi.uz"`
	// Host — хост "витрины", из которого выводится поддомен-арендатор
	// (acme.kursi.uz -> acme). Пустой хост означает платформенные запросы.
	Host string `yaml:"host" env:"API_HOST" env-default:""`
	// Timeout — общий таймаут на один HTTP-запрос.
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"30s"`
}

// CredentialsConfig — где хранить пару access/refresh между запусками.
//
// Если RedisURL непустой — используется Redis-бэкенд (серверное встраивание,
// одна запись на сессию), иначе — локальный файл Path.
type CredentialsConfig struct {
	Path        string `yaml:"path" env:"CREDENTIALS_PATH" env-default:""`
	RedisURL    string `yaml:"redis_url" env:"CREDENTIALS_REDIS_URL" env-default:""`
	RedisPrefix string `yaml:"redis_prefix" env:"CREDENTIALS_REDIS_PREFIX" env-default:""`
}

// RateLimitConfig — клиентское ограничение исходящих запросов.
// RPS <= 0 отключает лимитер.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"0"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"1"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
