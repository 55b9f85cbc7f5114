package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLogLevel accepts info, warn, error or silent, case-insensitively.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "silent", "none":
		return LogLevelSilent, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s) //nolint:err113 // carries the input
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for flag parsing.
func (l *LogLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseLogLevel(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

func (l LogLevel) String() string {
	switch l {
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelSilent:
		return "silent"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

func formatStep(n uint, message string) string {
	return strconv.FormatUint(uint64(n), 10) + ". " + message
}
