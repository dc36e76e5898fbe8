package daemon

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fgindraud/slam/controller"
)

// appName names the subdirectory under the user config dir that holds the
// database file (spec §6: "<system user config dir>/<app>/database.json").
const appName = "slam"

// Config is the daemon's process-wide, caller-supplied configuration
// (spec §6's CLI surface). It carries no behavior of its own.
type Config struct {
	DatabasePath  string
	LogLevel      slog.Level
	ReactionDelay *time.Duration
}

// DefaultDatabasePath returns <user config dir>/slam/database.json.
func DefaultDatabasePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("daemon: resolving default database path: %w", err)
	}
	return filepath.Join(dir, appName, "database.json"), nil
}

// ParseLogLevel parses one of {error,warn,info,debug,trace}, per spec §6.
// trace has no stdlib slog level, hence controller.LevelTrace.
func ParseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "trace":
		return controller.LevelTrace, nil
	default:
		return 0, fmt.Errorf("daemon: unknown log level %q", s)
	}
}
