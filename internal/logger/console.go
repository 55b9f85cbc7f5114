package logger

import (
	"io"
	"log"

	"github.com/charmbracelet/lipgloss"
)

// ConsoleLogger writes leveled, optionally styled lines to a writer.
type ConsoleLogger struct {
	print *log.Logger
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger

	level      LogLevel
	stepNumber uint
	stepStyle  lipgloss.Style
}

// NewConsoleLogger creates a logger writing to w. Styling is applied only
// when styled is true; pass false for pipes and files.
func NewConsoleLogger(w io.Writer, styled bool) *ConsoleLogger {
	renderer := lipgloss.NewRenderer(w)

	infoStyle := renderer.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle := renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	errorStyle := renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	stepStyle := renderer.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	if !styled {
		infoStyle = renderer.NewStyle()
		warnStyle = renderer.NewStyle()
		errorStyle = renderer.NewStyle()
		stepStyle = renderer.NewStyle()
	}

	return &ConsoleLogger{
		print: log.New(w, "", 0),
		info:  log.New(w, infoStyle.Render("info:")+" ", 0),
		warn:  log.New(w, warnStyle.Render("warning:")+" ", 0),
		error: log.New(w, errorStyle.Render("error:")+" ", 0),

		stepStyle: stepStyle,
	}
}

func (l *ConsoleLogger) SetLogLevel(level LogLevel) {
	l.level = level
}

func (l *ConsoleLogger) Print(v ...any) {
	if l.level >= LogLevelSilent {
		return
	}

	l.print.Print(v...)
}

func (l *ConsoleLogger) Printf(format string, v ...any) {
	if l.level >= LogLevelSilent {
		return
	}

	l.print.Printf(format, v...)
}

func (l *ConsoleLogger) Info(v ...any) {
	if l.level > LogLevelInfo {
		return
	}

	l.info.Println(v...)
}

func (l *ConsoleLogger) Infof(format string, v ...any) {
	if l.level > LogLevelInfo {
		return
	}

	l.info.Printf(format+"\n", v...)
}

func (l *ConsoleLogger) Warn(v ...any) {
	if l.level > LogLevelWarn {
		return
	}

	l.warn.Println(v...)
}

func (l *ConsoleLogger) Warnf(format string, v ...any) {
	if l.level > LogLevelWarn {
		return
	}

	l.warn.Printf(format+"\n", v...)
}

func (l *ConsoleLogger) Error(v ...any) {
	if l.level > LogLevelError {
		return
	}

	l.error.Println(v...)
}

func (l *ConsoleLogger) Errorf(format string, v ...any) {
	if l.level > LogLevelError {
		return
	}

	l.error.Printf(format+"\n", v...)
}

// Step prints a numbered heading. Numbering counts every step, including
// those hidden by the log level.
func (l *ConsoleLogger) Step(message string) {
	l.stepNumber++

	if l.level > LogLevelInfo {
		return
	}

	if l.stepNumber > 1 {
		l.print.Println()
	}

	l.print.Println(l.stepStyle.Render(formatStep(l.stepNumber, message)))
}
