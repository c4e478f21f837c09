// package env contains simple getters for the settings the service reads from
// its environment. Values can also come from a .env file in the working
// directory, which is loaded once via Load.
package env

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/manzanit0/naver2google/pkg/naver"
)

const DefaultPort = "8585"

// Load reads a .env file if there is one. Variables already set in the
// environment take precedence.
func Load() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, assuming environment variables are set directly")
	}
}

func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}

	return DefaultPort
}

// UpstreamTimeout bounds each call to Naver.
func UpstreamTimeout() (time.Duration, error) {
	v := os.Getenv("UPSTREAM_TIMEOUT")
	if v == "" {
		return naver.DefaultTimeout, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse UPSTREAM_TIMEOUT as duration: %s", err.Error())
	}

	if d <= 0 {
		return 0, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", v)
	}

	return d, nil
}

// Debug enables logging of upstream and inbound response bodies.
func Debug() bool {
	debug, err := strconv.ParseBool(os.Getenv("DEBUG"))
	return err == nil && debug
}

func LogLevel() (slog.Level, error) {
	var level slog.Level
	v := os.Getenv("LOG_LEVEL")
	if v == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("failed to parse LOG_LEVEL: %s", err.Error())
	}

	return level, nil
}

func PlaceAPI() string {
	if api := os.Getenv("NAVER_PLACE_API"); api != "" {
		return api
	}

	return naver.DefaultPlaceAPI
}
