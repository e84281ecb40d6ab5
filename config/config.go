package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	GRPC         GRPCConfig         `yaml:"grpc"`
	API          APIConfig          `yaml:"api"`
	Redis        RedisConfig        `yaml:"redis"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Session      SessionConfig      `yaml:"session"`
	Hotel        HotelConfig        `yaml:"hotel"`
	Cancellation CancellationConfig `yaml:"cancellation"`
	Admin        AdminConfig        `yaml:"admin"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// APIConfig points at the hotel REST API that owns bookings, guests and feedback.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type SessionConfig struct {
	CookieName        string `yaml:"cookie_name"`
	TTLMinutes        int    `yaml:"ttl_minutes"`
	CancelLockSeconds int    `yaml:"cancel_lock_seconds"`
	SecureCookie      bool   `yaml:"secure_cookie"`
}

func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

func (s SessionConfig) CancelLockTTL() time.Duration {
	return time.Duration(s.CancelLockSeconds) * time.Second
}

// HotelConfig carries the static catalog and the presentation settings shared by every screen.
type HotelConfig struct {
	Name          string            `yaml:"name"`
	Tagline       string            `yaml:"tagline"`
	Timezone      string            `yaml:"timezone"`
	Currency      string            `yaml:"currency"`
	TotalRooms    int               `yaml:"total_rooms"`
	BreakfastRate int64             `yaml:"breakfast_rate"`
	Theme         map[string]string `yaml:"theme"`
	RoomTypes     []domain.RoomType `yaml:"room_types"`
	Menu          []domain.MenuItem `yaml:"menu"`
}

func (h HotelConfig) Location() (*time.Location, error) {
	if h.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", h.Timezone, err)
	}
	return loc, nil
}

type CancellationConfig struct {
	FreeWindowHours   int   `yaml:"free_window_hours"`
	LateChargePercent int64 `yaml:"late_charge_percent"`
}

func (c CancellationConfig) Policy() domain.CancellationPolicy {
	p := domain.DefaultCancellationPolicy()
	p.FreeWindow = time.Duration(c.FreeWindowHours) * time.Hour
	p.LateChargePercent = c.LateChargePercent
	return p
}

// AdminConfig holds the single dashboard account. PasswordHash is a bcrypt hash.
type AdminConfig struct {
	ID           string `yaml:"id"`
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("HOTEL_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		c.HTTP.Address = v
	}
	if v := os.Getenv("GRPC_ADDRESS"); v != "" {
		c.GRPC.Address = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitCSV(v)
	}
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:5000"
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 10
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "sunshine_session"
	}
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = 24 * 60
	}
	if c.Session.CancelLockSeconds <= 0 {
		c.Session.CancelLockSeconds = 30
	}
	if c.Hotel.Name == "" {
		c.Hotel.Name = "Sunshine Hotel"
	}
	if c.Hotel.Currency == "" {
		c.Hotel.Currency = "INR"
	}
	if c.Hotel.TotalRooms <= 0 {
		c.Hotel.TotalRooms = 60
	}
	if c.Hotel.BreakfastRate <= 0 {
		c.Hotel.BreakfastRate = 300
	}
	if len(c.Hotel.RoomTypes) == 0 {
		c.Hotel.RoomTypes = domain.DefaultRoomTypes()
	}
	if len(c.Hotel.Menu) == 0 {
		c.Hotel.Menu = domain.DefaultMenu()
	}
	if c.Cancellation.FreeWindowHours <= 0 {
		c.Cancellation.FreeWindowHours = 24
	}
	if c.Cancellation.LateChargePercent <= 0 {
		c.Cancellation.LateChargePercent = 50
	}
}

func (c *Config) Validate() error {
	for _, r := range c.Hotel.RoomTypes {
		if r.ID == "" {
			return errors.New("room type id is required")
		}
		if r.Price < 0 {
			return fmt.Errorf("room type %s: price must not be negative", r.ID)
		}
	}
	if c.Cancellation.LateChargePercent > 100 {
		return errors.New("late charge percent must not exceed 100")
	}
	// the cancel guard must outlive the slowest hotel API call it protects
	if c.Session.CancelLockTTL() <= c.API.Timeout() {
		return fmt.Errorf("session.cancel_lock_seconds (%d) must exceed api.timeout_seconds (%d)",
			c.Session.CancelLockSeconds, c.API.TimeoutSeconds)
	}
	if _, err := c.Hotel.Location(); err != nil {
		return err
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
