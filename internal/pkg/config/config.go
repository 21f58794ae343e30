// Package config предоставляет управление конфигурацией приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/bwmarrin/snowflake"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"discord-speakable/internal/domain"
)

// Server содержит конфигурацию HTTP-сервера
type Server struct {
	Host            string        `json:"host" yaml:"host"`
	Port            int           `json:"port" yaml:"port"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxContentBytes int64         `json:"max_content_bytes" yaml:"max_content_bytes"`
}

// Discord содержит конфигурацию бота и снимков серверов
type Discord struct {
	Token      string   `json:"token" yaml:"token"`
	IgnoreBots bool     `json:"ignore_bots" yaml:"ignore_bots"`
	Channels   []string `json:"channels" yaml:"channels"`   // пустой список - все каналы
	Snapshots  []string `json:"snapshots" yaml:"snapshots"` // пути к JSON-снимкам серверов
}

// Speech содержит конфигурацию озвучивания
type Speech struct {
	Timezone string         `json:"timezone" yaml:"timezone"`
	Phrases  domain.Phrases `json:"phrases" yaml:"phrases"` // непустые поля заменяют фразы по умолчанию
}

// Logging содержит конфигурацию логирования
type Logging struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // json, text
}

// Config содержит конфигурацию приложения
type Config struct {
	Server  Server  `json:"server" yaml:"server"`
	Discord Discord `json:"discord" yaml:"discord"`
	Speech  Speech  `json:"speech" yaml:"speech"`
	Logging Logging `json:"logging" yaml:"logging"`
}

// ErrMissingToken возвращается, когда для подключения к Discord не задан токен.
var ErrMissingToken = errors.New("discord.token is not set")

// defaultConfig возвращает конфигурацию со значениями по умолчанию
func defaultConfig() *Config {
	return &Config{
		Server: Server{
			Host:            DefaultServerHost,
			Port:            DefaultServerPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxContentBytes: DefaultMaxContentBytes,
		},
		Discord: Discord{
			IgnoreBots: DefaultIgnoreBots,
		},
		Speech: Speech{
			Timezone: DefaultTimezone,
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadConfig загружает конфигурацию: значения по умолчанию, затем YAML-файл path
// (если он существует), затем переменные окружения, в том числе из .env файла.
func LoadConfig(path string) (*Config, error) {
	// Если .env файла не существует, это нормально: полагаемся на окружение и YAML
	_ = godotenv.Load()

	if path == "" {
		path = DefaultConfigFile
	}

	cfg := defaultConfig()
	if err := loadFromYAML(path, cfg); err != nil {
		return nil, err
	}
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию из env: %w", err)
	}

	return cfg, nil
}

// loadFromYAML накладывает YAML-файл на cfg. Отсутствие файла не является ошибкой.
func loadFromYAML(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("не удалось разобрать YAML конфигурацию: %w", err)
	}

	return nil
}

// loadFromEnv переопределяет значения переменными окружения
func loadFromEnv(cfg *Config) error {
	cfg.Discord.Token = getEnv("DISCORD_TOKEN", cfg.Discord.Token)
	cfg.Server.Host = getEnv("SERVER_HOST", cfg.Server.Host)
	cfg.Speech.Timezone = getEnv("SPEECH_TIMEZONE", cfg.Speech.Timezone)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)

	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("недопустимый SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}

	return nil
}

// Address возвращает адрес сервера в формате "host:port"
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Phrases возвращает фразы по умолчанию с наложенными переопределениями
func (c *Config) Phrases() domain.Phrases {
	return domain.DefaultPhrases().Merge(c.Speech.Phrases)
}

// Location возвращает часовой пояс озвучивания меток времени
func (c *Config) Location() (*time.Location, error) {
	tz := c.Speech.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("недопустимый speech.timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port должен быть действительным номером порта (1-65535)")
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.read_timeout и server.write_timeout должны быть положительными")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout должно быть положительным")
	}

	if c.Server.MaxContentBytes <= 0 {
		return fmt.Errorf("server.max_content_bytes должно быть положительным")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	for name, tmpl := range c.Phrases().Templates() {
		if strings.Count(tmpl, "%s") != 1 || strings.Count(tmpl, "%") != 1 {
			return fmt.Errorf("speech.phrases.%s должна содержать ровно один %%s", name)
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// all good
	default:
		return fmt.Errorf("logging.level должен быть одним из: debug, info, warn, error")
	}

	switch c.Logging.Format {
	case "json", "text", "console":
	default:
		return fmt.Errorf("logging.format должен быть одним из: json, text, console")
	}

	return nil
}

// ValidateDiscord проверяет настройки, необходимые для подключения бота
func (c *Config) ValidateDiscord() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return ErrMissingToken
	}
	for i, ch := range c.Discord.Channels {
		if id, err := snowflake.ParseString(ch); err != nil || id <= 0 {
			return fmt.Errorf("discord.channels[%d] должен быть идентификатором канала: %q", i, ch)
		}
	}
	return nil
}

// getEnv извлекает значение переменной окружения или возвращает значение по умолчанию, если она не установлена
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
