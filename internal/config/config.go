// internal/config/config.go
//
// Runtime settings for the server, read from the environment once in main.
// A .env file in the working directory is loaded first when present.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecret = "dev_secret_change_me"

// Config describes all runtime settings for the server.
type Config struct {
	Env string // dev|stage|prod

	Log struct {
		Level  string // zerolog level name
		Format string // text|json
	}

	HTTP struct {
		Addr              string
		ClientOrigin      string
		ReadHeaderTimeout time.Duration
		IdleTimeout       time.Duration
		HandlerTimeout    time.Duration
		ShutdownTimeout   time.Duration
		WSSendBuffer      int
	}

	Session struct {
		Secret string
		TTL    time.Duration
	}

	Game struct {
		IdleTTL       time.Duration
		SweepInterval time.Duration
	}

	Words struct {
		File      string
		Source    string // random|daily
		DailySalt string
	}
}

// Load reads .env (if any) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return LoadFromEnv()
}

// LoadFromEnv builds and validates a Config from environment variables.
func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Level = envString("LOG_LEVEL", "info")
	c.Log.Format = envString("LOG_FORMAT", "text")

	port := envString("PORT", "5175")
	c.HTTP.Addr = envString("HTTP_ADDR", ":"+port)
	c.HTTP.ClientOrigin = envString("CLIENT_ORIGIN", "http://localhost:5173")
	c.HTTP.ReadHeaderTimeout = envDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second)
	c.HTTP.IdleTimeout = envDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)
	c.HTTP.HandlerTimeout = envDuration("HTTP_HANDLER_TIMEOUT", 10*time.Second)
	c.HTTP.ShutdownTimeout = envDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second)
	c.HTTP.WSSendBuffer = envInt("WS_SEND_BUFFER", 16)

	c.Session.Secret = envString("SESSION_SECRET", defaultSecret)
	c.Session.TTL = envDuration("SESSION_TTL", 24*time.Hour)

	c.Game.IdleTTL = envDuration("GAME_IDLE_TTL", 2*time.Hour)
	c.Game.SweepInterval = envDuration("GAME_SWEEP_INTERVAL", 5*time.Minute)

	c.Words.File = envString("WORDS_FILE", "")
	c.Words.Source = envString("WORD_SOURCE", "random")
	c.Words.DailySalt = envString("DAILY_SALT", "local_dev_salt")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("HTTP addr is empty")
	}
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is empty")
	}
	if c.Env != "dev" && c.Session.Secret == defaultSecret {
		return fmt.Errorf("refuse to run with default SESSION_SECRET in %s", c.Env)
	}
	if c.HTTP.WSSendBuffer <= 0 {
		return errors.New("WS_SEND_BUFFER must be positive")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Game.IdleTTL <= 0 || c.Game.SweepInterval <= 0 {
		return errors.New("GAME_IDLE_TTL and GAME_SWEEP_INTERVAL must be positive")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if c.Words.Source != "random" && c.Words.Source != "daily" {
		return fmt.Errorf("unsupported WORD_SOURCE=%q (want random|daily)", c.Words.Source)
	}
	return nil
}

// Production reports whether cookies should be Secure/SameSite=None.
func (c Config) Production() bool { return c.Env == "prod" }

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
