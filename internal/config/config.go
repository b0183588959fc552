// README: Config loader with env defaults for HTTP, Firebase, and scheduler settings.
package config

import (
	"fmt"
	"os"
	"time"
)

type ReminderConfig struct {
	Tick      time.Duration
	Lookahead time.Duration
	Retention time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
	Site struct {
		Timezone string
	}
	Reminder  ReminderConfig
	RideGrace time.Duration
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("RIDEPSU_HTTP_ADDR", ":3000")
	cfg.Firebase.ProjectID = os.Getenv("RIDEPSU_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("RIDEPSU_FIREBASE_CREDENTIALS")
	cfg.Site.Timezone = envOrDefault("RIDEPSU_SITE_TZ", "Asia/Riyadh")
	cfg.Reminder.Tick = envOrDefaultDuration("RIDEPSU_REMINDER_TICK", time.Minute)
	cfg.Reminder.Lookahead = envOrDefaultDuration("RIDEPSU_REMINDER_LOOKAHEAD", 10*time.Minute)
	cfg.Reminder.Retention = envOrDefaultDuration("RIDEPSU_NOTIFICATION_RETENTION", 10*time.Minute)
	cfg.RideGrace = envOrDefaultDuration("RIDEPSU_RIDE_GRACE", 10*time.Minute)
	return cfg, nil
}

// Location resolves the configured site timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Site.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading site timezone %q: %w", c.Site.Timezone, err)
	}
	return loc, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
