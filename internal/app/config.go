package app

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultWatchDebounce suppresses duplicate watcher events for the same
// report path inside this window.
const defaultWatchDebounce = 500 * time.Millisecond

// Config holds runtime wiring options for building the app.
type Config struct {
	BaseDir       string        // storage base; the versioned store root is created under it
	Verbose       bool          // include debug diagnostics in logs
	WatchDebounce time.Duration // per-path event suppression window for the watcher
}

// FromEnv builds a Config from the environment, loading a .env file first
// when one is present. Unset values fall back to defaults; BaseDir defaults
// to $HOME/.crashkit-home.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	base := os.Getenv("CRASHKIT_BASE")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		base = filepath.Join(home, ".crashkit-home")
	}

	return Config{
		BaseDir:       base,
		Verbose:       boolEnv("CRASHKIT_VERBOSE"),
		WatchDebounce: durationEnv("CRASHKIT_WATCH_DEBOUNCE", defaultWatchDebounce),
	}, nil
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return strings.EqualFold(v, "yes")
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d >= 0 {
		return d
	}
	return fallback
}
