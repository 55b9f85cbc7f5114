// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/logger"
	"github.com/joe/fstour/pkg/filesystem"
)

// DefaultRoot is the workspace used when no root is given.
const DefaultRoot = "out"

// Exported variables.
var (
	ErrEmptyRoot = errors.New("root must not be empty")
)

// StepList is a comma-separated list of step names.
type StepList []string

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (s *StepList) UnmarshalText(text []byte) error {
	var names []string

	for _, name := range strings.Split(string(text), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	*s = names

	return nil
}

// String renders the list the way it is written on the command line.
func (s StepList) String() string {
	return strings.Join(s, ",")
}

// Config holds the application configuration
type Config struct {
	Root        string             `arg:"-r,--root,env:FSTOUR_ROOT" help:"workspace for the demonstration: a local path or sftp://user@host[:port]/path"`
	Backend     filesystem.Backend `arg:"-b,--backend,env:FSTOUR_BACKEND" help:"filesystem for local roots: local|mem (ignored for sftp:// roots)"`
	Steps       StepList           `arg:"--steps" help:"comma-separated subset of steps to run, in the given order"`
	KeepGoing   bool               `arg:"-k,--keep-going" help:"continue after a failed step"`
	Clean       bool               `arg:"-c,--clean" help:"empty the workspace before running"`
	NoSymlinks  bool               `arg:"--no-symlinks" help:"run as if the backend could not create symbolic links"`
	Interactive bool               `arg:"-i,--interactive" help:"show progress in a terminal UI"`
	Level       logger.LogLevel    `arg:"--log-level,env:FSTOUR_LOG_LEVEL" help:"info|warn|error|silent"`
	Quiet       bool               `arg:"-q,--quiet" help:"only print errors (same as --log-level error)"`
	ListSteps   bool               `arg:"--list-steps" help:"print the available steps and exit"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "A guided tour of filesystem operations: paths, files, lines, directories, links"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "fstour 1.0.0"
}

// Epilogue lists the steps for go-arg's help output.
func (Config) Epilogue() string {
	return "steps: " + strings.Join(demo.StepNames(), ", ")
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := defaults()

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// Parse parses args (without the program name). It returns arg.ErrHelp or
// arg.ErrVersion when those were requested.
func Parse(args []string) (*Config, error) {
	cfg := defaults()

	parser, err := arg.NewParser(arg.Config{Program: "fstour"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	if err := parser.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck // callers compare against arg.ErrHelp
	}

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	cfg.Root = strings.TrimSpace(cfg.Root)
	if cfg.Root == "" {
		return nil, ErrEmptyRoot
	}

	if _, err := filesystem.ParseLocation(cfg.Root); err != nil {
		return nil, fmt.Errorf("invalid root: %w", err)
	}

	if _, err := demo.SelectSteps(cfg.Steps); err != nil {
		return nil, fmt.Errorf("invalid --steps: %w", err)
	}

	return cfg, nil
}

// LogLevel returns the console log level implied by the flags. --quiet
// never lowers an explicit, stricter level.
func (cfg *Config) LogLevel() logger.LogLevel {
	if cfg.Quiet && cfg.Level < logger.LogLevelError {
		return logger.LogLevelError
	}

	return cfg.Level
}

// FileSystemOptions returns the backend options implied by the flags.
func (cfg *Config) FileSystemOptions() []filesystem.Option {
	if cfg.NoSymlinks {
		return []filesystem.Option{filesystem.WithoutSymlinks()}
	}

	return nil
}

// IsRemote reports whether the root names an SFTP location.
func (cfg *Config) IsRemote() bool {
	return strings.HasPrefix(cfg.Root, "sftp://")
}

// IgnoredFlags lists flags that were set but have no effect on this root.
func (cfg *Config) IgnoredFlags() []string {
	var ignored []string

	if cfg.IsRemote() && cfg.Backend != filesystem.BackendLocal {
		ignored = append(ignored, "--backend")
	}

	return ignored
}

func defaults() *Config {
	return &Config{
		Root:    DefaultRoot,
		Backend: filesystem.BackendLocal,
	}
}
