package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
user = "detailing"
dbname = "bookings"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 14, cfg.Booking.WindowDays)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM", "01:00 PM", "02:00 PM", "03:00 PM"}, cfg.Booking.TimeSlots)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, []float64{-120.0, 35.5, -114.0, 32.5}, cfg.Geocoder.ViewBox)
	assert.Equal(t, "America/Los_Angeles", cfg.Booking.Timezone)
	assert.Equal(t, "America/Los_Angeles", cfg.Booking.Location().String())
	assert.Equal(t, cfg.Booking.BusinessEmail, cfg.SendGrid.FromEmail)
	assert.Equal(t, "host=localhost port=5432 user=detailing password= dbname=bookings sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "sg-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("DB_PASSWORD", "secret")

	path := writeConfig(t, `
[sendgrid]
api_key = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sg-key", cfg.SendGrid.APIKey)
	assert.Equal(t, "gm-key", cfg.Gemini.APIKey)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_RejectsDuplicateSlots(t *testing.T) {
	path := writeConfig(t, `
[booking]
time_slots = ["09:00 AM", "09:00 AM"]
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsBadViewBox(t *testing.T) {
	path := writeConfig(t, `
[geocoder]
viewbox = [1.0, 2.0]
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	path := writeConfig(t, `
[booking]
timezone = "Mars/Olympus_Mons"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBookingConfig_LocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, BookingConfig{}.Location())
	assert.Equal(t, time.UTC, BookingConfig{Timezone: "Nowhere/Unknown"}.Location())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
