package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Chatbot  ChatbotConfig  `toml:"chatbot"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// URL возвращает строку подключения в формате postgres://
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ChatbotConfig настройки ассистента записи
type ChatbotConfig struct {
	Timezone        string   `toml:"timezone"`
	ConversationTTL Duration `toml:"conversation_ttl"`
	JanitorInterval Duration `toml:"janitor_interval"`
}

// Location возвращает часовой пояс, в котором трактуются даты клиента
func (c ChatbotConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: chatbot.timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// Duration длительность, записываемая в TOML строкой ("30m", "5m")
type Duration struct {
	time.Duration
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText реализует encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "trim_squire",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "trim-squire",
		},
		Chatbot: ChatbotConfig{
			Timezone:        "America/Sao_Paulo",
			ConversationTTL: Duration{30 * time.Minute},
			JanitorInterval: Duration{5 * time.Minute},
		},
	}
}

// Load читает конфигурацию из TOML файла и переменных окружения.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	overrideString("DB_HOST", &c.Database.Host)
	overrideString("DB_USER", &c.Database.User)
	overrideString("DB_PASSWORD", &c.Database.Password)
	overrideString("DB_NAME", &c.Database.DBName)
	overrideString("DB_SSLMODE", &c.Database.SSLMode)
	overrideString("LOG_LEVEL", &c.Logs.Level)
	overrideString("LOG_FILE", &c.Logs.File)
	overrideString("CHATBOT_TIMEZONE", &c.Chatbot.Timezone)

	if err := overrideInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	if err := overrideInt("HTTP_PORT", &c.Server.HTTPPort); err != nil {
		return err
	}

	if v, ok := lookup("CONVERSATION_TTL"); ok {
		if err := c.Chatbot.ConversationTTL.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%w: CONVERSATION_TTL: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if _, ok := logLevels[strings.ToLower(c.Logs.Level)]; !ok {
		problems = append(problems, fmt.Sprintf("logs.level %q is unknown", c.Logs.Level))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.Chatbot.ConversationTTL.Duration < 0 {
		problems = append(problems, "chatbot.conversation_ttl must not be negative")
	}
	if c.Chatbot.JanitorInterval.Duration <= 0 {
		problems = append(problems, "chatbot.janitor_interval must be positive")
	}
	if _, err := time.LoadLocation(c.Chatbot.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("chatbot.timezone %q is unknown", c.Chatbot.Timezone))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func overrideString(key string, dst *string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func overrideInt(key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v)
	}
	*dst = n
	return nil
}
