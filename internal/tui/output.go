package tui

import (
	"fmt"
	"strings"

	"github.com/joe/fstour/internal/logger"
	"github.com/joe/fstour/internal/tui/shared"
)

// OutputLogger is a logger.Logger that forwards step output to the view
// through the event bridge, one message per line.
type OutputLogger struct {
	bridge *shared.EventBridge
	level  logger.LogLevel
}

// NewOutputLogger creates an OutputLogger sending to bridge.
func NewOutputLogger(bridge *shared.EventBridge) *OutputLogger {
	return &OutputLogger{bridge: bridge}
}

func (l *OutputLogger) SetLogLevel(level logger.LogLevel) {
	l.level = level
}

func (l *OutputLogger) Print(v ...any) {
	l.send(logger.LogLevelSilent, "", fmt.Sprint(v...))
}

func (l *OutputLogger) Printf(format string, v ...any) {
	l.send(logger.LogLevelSilent, "", fmt.Sprintf(format, v...))
}

func (l *OutputLogger) Info(v ...any) {
	l.send(logger.LogLevelInfo, "", fmt.Sprint(v...))
}

func (l *OutputLogger) Infof(format string, v ...any) {
	l.send(logger.LogLevelInfo, "", fmt.Sprintf(format, v...))
}

func (l *OutputLogger) Warn(v ...any) {
	l.send(logger.LogLevelWarn, "warning: ", fmt.Sprint(v...))
}

func (l *OutputLogger) Warnf(format string, v ...any) {
	l.send(logger.LogLevelWarn, "warning: ", fmt.Sprintf(format, v...))
}

func (l *OutputLogger) Error(v ...any) {
	l.send(logger.LogLevelError, "error: ", fmt.Sprint(v...))
}

func (l *OutputLogger) Errorf(format string, v ...any) {
	l.send(logger.LogLevelError, "error: ", fmt.Sprintf(format, v...))
}

// Step is a no-op; the step list already shows progress.
func (l *OutputLogger) Step(string) {}

// send forwards text at level. Print output uses LogLevelSilent as its level
// so it is hidden only when the logger itself is silenced.
func (l *OutputLogger) send(level logger.LogLevel, prefix, text string) {
	if l.level == logger.LogLevelSilent || (level != logger.LogLevelSilent && l.level > level) {
		return
	}

	name := level.String()
	if level == logger.LogLevelSilent {
		name = "print"
	}

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		l.bridge.Send(shared.OutputLineMsg{Level: name, Text: prefix + line})
	}
}
