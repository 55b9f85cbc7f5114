// Package main is the entry point for the fstour application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/fstour/internal/config"
	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/logger"
	"github.com/joe/fstour/internal/tui"
	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Stdout)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, stdout *os.File) int {
	styled := term.IsTerminal(int(stdout.Fd()))

	console := logger.NewConsoleLogger(stdout, styled)
	console.SetLogLevel(cfg.LogLevel())

	if cfg.ListSteps {
		listSteps(stdout)
		return 0
	}

	for _, flag := range cfg.IgnoredFlags() {
		console.Warnf("%s has no effect on an sftp:// root", flag)
	}

	steps, err := demo.SelectSteps(cfg.Steps)
	if err != nil {
		console.Errorf("%v", err)
		return 1
	}

	fsys, base, closer, err := filesystem.CreateFileSystem(ctx, cfg.Root, cfg.Backend, cfg.FileSystemOptions()...)
	if err != nil {
		console.Errorf("%v", err)
		return 1
	}

	if closer != nil {
		defer closer()
	}

	ops := fileops.NewFileOps(fsys)
	root := pathutil.New(base)

	start := func(ctx context.Context, emitter demo.EventEmitter, out logger.Logger) *demo.RunResult {
		env := demo.NewEnv(ops, root, out)
		runner := demo.NewRunner(env, steps,
			demo.WithEmitter(emitter),
			demo.WithKeepGoing(cfg.KeepGoing),
			demo.WithClean(cfg.Clean),
		)

		return runner.Run(ctx)
	}

	var result *demo.RunResult

	if cfg.Interactive && styled {
		result, err = tui.Run(ctx, tui.Options{Root: cfg.Root, Steps: steps}, start)
		if err != nil {
			console.Errorf("%v", err)
			return 1
		}
	} else {
		if cfg.Interactive {
			console.Warn("--interactive needs a terminal; using plain output")
		}

		result = start(ctx, demo.NewConsoleReporter(console), console)
	}

	if result.PrepareErr != nil || result.Failed > 0 {
		return 1
	}

	return 0
}

func listSteps(w io.Writer) {
	width := 0
	for _, step := range demo.DefaultSteps() {
		width = max(width, len(step.Name))
	}

	for _, step := range demo.DefaultSteps() {
		fmt.Fprintf(w, "%s%s  %s\n", step.Name, strings.Repeat(" ", width-len(step.Name)), step.Description)
	}
}
