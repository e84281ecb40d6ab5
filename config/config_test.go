package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "http:\n  address: \":8081\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.Equal(t, "http://localhost:5000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout())
	assert.Equal(t, 60, cfg.Hotel.TotalRooms)
	assert.Equal(t, int64(300), cfg.Hotel.BreakfastRate)
	assert.Len(t, cfg.Hotel.RoomTypes, 3)
	assert.Len(t, cfg.Hotel.Menu, 5)
	assert.Equal(t, 24*time.Hour, cfg.Cancellation.Policy().FreeWindow)
	assert.Equal(t, int64(50), cfg.Cancellation.Policy().LateChargePercent)
	assert.Equal(t, 30*time.Second, cfg.Session.CancelLockTTL())
}

func TestLoadConfig_FileValues(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
api:
  base_url: http://hotel-api:5000
hotel:
  name: Moonlight Inn
  timezone: Asia/Kolkata
  total_rooms: 12
  room_types:
    - id: dorm
      name: Dorm Bed
      price: 700
cancellation:
  free_window_hours: 48
  late_charge_percent: 25
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://hotel-api:5000", cfg.API.BaseURL)
	assert.Equal(t, "Moonlight Inn", cfg.Hotel.Name)
	assert.Equal(t, 12, cfg.Hotel.TotalRooms)
	require.Len(t, cfg.Hotel.RoomTypes, 1)
	assert.Equal(t, int64(700), cfg.Hotel.RoomTypes[0].Price)
	assert.Equal(t, 48*time.Hour, cfg.Cancellation.Policy().FreeWindow)

	loc, err := cfg.Hotel.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REDIS_ADDR=redis:6379\n"), 0o600))
	t.Setenv("HOTEL_API_URL", "http://api.internal")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("REDIS_ADDR", "")
	os.Unsetenv("REDIS_ADDR")

	cfg, err := LoadConfig(writeConfig(t, "api:\n  base_url: http://ignored\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal", cfg.API.BaseURL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = LoadConfig(writeConfig(t, "http: [\n"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadConfig(writeConfig(t, "hotel:\n  timezone: Mars/Olympus\n"))
	assert.ErrorContains(t, err, "load timezone")

	_, err = LoadConfig(writeConfig(t, "cancellation:\n  late_charge_percent: 150\n"))
	assert.ErrorContains(t, err, "must not exceed 100")

	_, err = LoadConfig(writeConfig(t, "api:\n  timeout_seconds: 10\nsession:\n  cancel_lock_seconds: 5\n"))
	assert.ErrorContains(t, err, "must exceed api.timeout_seconds")

	_, err = LoadConfig(writeConfig(t, "api:\n  timeout_seconds: 30\n"))
	assert.ErrorContains(t, err, "must exceed api.timeout_seconds")

	cfg, err := LoadConfig(writeConfig(t, "api:\n  timeout_seconds: 10\nsession:\n  cancel_lock_seconds: 11\n"))
	require.NoError(t, err)
	assert.Equal(t, 11*time.Second, cfg.Session.CancelLockTTL())
}
