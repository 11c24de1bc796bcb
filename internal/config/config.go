package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	SendGrid SendGridConfig `toml:"sendgrid"`
	Gemini   GeminiConfig   `toml:"gemini"`
	Geocoder GeocoderConfig `toml:"geocoder"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL возвращает строку подключения в формате URL (для golang-migrate)
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis (черновики, уведомления, история чата)
type RedisConfig struct {
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	DraftTTLMinutes int    `toml:"draft_ttl_minutes"`
	InboxTTLMinutes int    `toml:"inbox_ttl_minutes"`
	ChatTTLMinutes  int    `toml:"chat_ttl_minutes"`
}

func (c RedisConfig) DraftTTL() time.Duration {
	return time.Duration(c.DraftTTLMinutes) * time.Minute
}

func (c RedisConfig) InboxTTL() time.Duration {
	return time.Duration(c.InboxTTLMinutes) * time.Minute
}

func (c RedisConfig) ChatTTL() time.Duration {
	return time.Duration(c.ChatTTLMinutes) * time.Minute
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки процесса бронирования
type BookingConfig struct {
	WindowDays          int      `toml:"window_days"`
	TimeSlots           []string `toml:"time_slots"`
	SubmitTimeout       int      `toml:"submit_timeout"` // секунды
	MinPhoneDigits      int      `toml:"min_phone_digits"`
	IdleDraftMinutes    int      `toml:"idle_draft_minutes"`
	BusinessName        string   `toml:"business_name"`
	BusinessEmail       string   `toml:"business_email"`
	BusinessPhone       string   `toml:"business_phone"`
	OwnerName           string   `toml:"owner_name"`
	ConfirmationSubject string   `toml:"confirmation_subject"`
	Timezone            string   `toml:"timezone"` // IANA, календарные даты считаются в этой зоне
}

func (c BookingConfig) SubmitTimeoutDuration() time.Duration {
	return time.Duration(c.SubmitTimeout) * time.Second
}

func (c BookingConfig) IdleDraftTTL() time.Duration {
	return time.Duration(c.IdleDraftMinutes) * time.Minute
}

// Location возвращает часовой пояс бизнеса; UTC, если зона не задана или неизвестна
func (c BookingConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SendGridConfig настройки отправки email через SendGrid
// Если api_key пустой - используется mailto-заглушка
type SendGridConfig struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// GeminiConfig настройки чат-ассистента
// Если api_key пустой - ассистент работает в offline режиме
type GeminiConfig struct {
	APIKey       string `toml:"api_key"`
	Model        string `toml:"model"`
	HistoryLimit int    `toml:"history_limit"`
	Timeout      int    `toml:"timeout"` // секунды
}

// GeocoderConfig настройки клиента Nominatim
type GeocoderConfig struct {
	BaseURL           string    `toml:"base_url"`
	UserAgent         string    `toml:"user_agent"`
	RequestsPerSecond float64   `toml:"requests_per_second"`
	Timeout           int       `toml:"timeout"` // секунды
	CountryCodes      string    `toml:"country_codes"`
	ViewBox           []float64 `toml:"viewbox"` // left, top, right, bottom
	DefaultState      string    `toml:"default_state"`
	Limit             int       `toml:"limit"`
}

// Load загружает конфигурацию из toml файла
// Секреты могут быть переопределены переменными окружения (и файлом .env)
func Load(path string) (*Config, error) {
	// .env опционален, отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Booking.WindowDays <= 0 {
		return fmt.Errorf("%w: booking.window_days must be positive", ErrInvalidConfig)
	}
	if len(c.Booking.TimeSlots) == 0 {
		return fmt.Errorf("%w: booking.time_slots must not be empty", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Booking.TimeSlots))
	for _, label := range c.Booking.TimeSlots {
		if _, ok := seen[label]; ok {
			return fmt.Errorf("%w: duplicate time slot %q", ErrInvalidConfig, label)
		}
		seen[label] = struct{}{}
	}
	if c.Booking.BusinessEmail == "" {
		return fmt.Errorf("%w: booking.business_email is required", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	if len(c.Geocoder.ViewBox) != 0 && len(c.Geocoder.ViewBox) != 4 {
		return fmt.Errorf("%w: geocoder.viewbox must have 4 coordinates", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("SENDGRID_API_KEY"); v != "" {
		c.SendGrid.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.DraftTTLMinutes == 0 {
		c.Redis.DraftTTLMinutes = 24 * 60
	}
	if c.Redis.InboxTTLMinutes == 0 {
		c.Redis.InboxTTLMinutes = 7 * 24 * 60
	}
	if c.Redis.ChatTTLMinutes == 0 {
		c.Redis.ChatTTLMinutes = 120
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc_detailing_service"
	}

	if c.Booking.WindowDays == 0 {
		c.Booking.WindowDays = 14
	}
	if len(c.Booking.TimeSlots) == 0 {
		c.Booking.TimeSlots = []string{"09:00 AM", "10:00 AM", "11:00 AM", "01:00 PM", "02:00 PM", "03:00 PM"}
	}
	if c.Booking.SubmitTimeout == 0 {
		c.Booking.SubmitTimeout = 30
	}
	if c.Booking.MinPhoneDigits == 0 {
		c.Booking.MinPhoneDigits = 10
	}
	if c.Booking.IdleDraftMinutes == 0 {
		c.Booking.IdleDraftMinutes = 60
	}
	if c.Booking.BusinessName == "" {
		c.Booking.BusinessName = "Burrell & Co. Mobile Detailing"
	}
	if c.Booking.BusinessEmail == "" {
		c.Booking.BusinessEmail = "Shawn@Burrellnco.com"
	}
	if c.Booking.BusinessPhone == "" {
		c.Booking.BusinessPhone = "951-751-4278"
	}
	if c.Booking.OwnerName == "" {
		c.Booking.OwnerName = "Shawn"
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "America/Los_Angeles"
	}
	if c.Booking.ConfirmationSubject == "" {
		c.Booking.ConfirmationSubject = "Your detailing appointment is booked"
	}

	if c.SendGrid.FromName == "" {
		c.SendGrid.FromName = c.Booking.BusinessName
	}
	if c.SendGrid.FromEmail == "" {
		c.SendGrid.FromEmail = c.Booking.BusinessEmail
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.HistoryLimit == 0 {
		c.Gemini.HistoryLimit = 20
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 20
	}

	if c.Geocoder.BaseURL == "" {
		c.Geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if c.Geocoder.UserAgent == "" {
		c.Geocoder.UserAgent = "smc-detailing-service/1.0"
	}
	if c.Geocoder.RequestsPerSecond == 0 {
		c.Geocoder.RequestsPerSecond = 1
	}
	if c.Geocoder.Timeout == 0 {
		c.Geocoder.Timeout = 5
	}
	if c.Geocoder.CountryCodes == "" {
		c.Geocoder.CountryCodes = "us"
	}
	if len(c.Geocoder.ViewBox) == 0 {
		c.Geocoder.ViewBox = []float64{-120.0, 35.5, -114.0, 32.5}
	}
	if c.Geocoder.DefaultState == "" {
		c.Geocoder.DefaultState = "CA"
	}
	if c.Geocoder.Limit == 0 {
		c.Geocoder.Limit = 10
	}
}
