package evacsimlog

import (
	"log"
	"os"
)

// Level selects whether a message is gated on Enabled() or always printed.
type Level int

const (
	// LevelInfo messages are no-ops unless debug logging is enabled.
	LevelInfo Level = iota
	// LevelError messages always reach the logger, regardless of Enabled().
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "ERROR"
	}

	return "INFO"
}

var (
	enabled bool
	logger  *log.Logger
)

func init() {
	logger = log.New(os.Stderr, "[evacsim] ", log.Ltime|log.Lmicroseconds)
	if os.Getenv("EVACSIM_DEBUG") != "" {
		enabled = true
	}
}

// Enabled reports whether Info-level debug logging is active.
func Enabled() bool { return enabled }

// SetEnabled allows a caller (e.g. a --verbose flag) to turn Info-level
// logging on or off without the environment variable.
func SetEnabled(e bool) {
	enabled = e
}

func emit(level Level, format string, args ...any) {
	if level == LevelInfo && !enabled {
		return
	}
	logger.Printf("%s "+format, append([]any{level.String()}, args...)...)
}

// Log writes an Info-level debug message if logging is enabled.
func Log(format string, args ...any) {
	emit(LevelInfo, format, args...)
}

// Error writes an Error-level message unconditionally.
func Error(format string, args ...any) {
	emit(LevelError, format, args...)
}

// Tick logs a per-tick progress line: simulated time, done count, total.
func Tick(t float64, done, total int) {
	emit(LevelInfo, "t=%.1f done=%d/%d", t, done, total)
}

// Hazard logs a tick's hazard-hook invocation.
func Hazard(tick int) {
	emit(LevelInfo, "tick %d hazard hook applied", tick)
}

// Reroute logs a single reroute decision.
func Reroute(agentID int, reason string, oldPath, newPath []string) {
	emit(LevelInfo, "agent %d reroute (%s): %v -> %v", agentID, reason, oldPath, newPath)
}
