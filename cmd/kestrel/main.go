// Package main is the entry point for the kestrel editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/dshills/kestrel/internal/app"
	"github.com/dshills/kestrel/internal/config"
	"github.com/dshills/kestrel/internal/engine/buffer"
	"github.com/dshills/kestrel/internal/input/keymap"
	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/dshills/kestrel/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stderr, "kestrel: %v\n\n", err)
		}
		fmt.Fprint(stderr, usage())
		return exitUsage
	}
	switch {
	case opts.help:
		fmt.Fprint(stdout, usage())
		return exitOK
	case opts.version:
		fmt.Fprintf(stdout, "kestrel %s (%s)\n", version, commit)
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "kestrel: %v\n", err)
		return exitError
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "kestrel: %v\n", err)
		return exitError
	}
	defer closeLog()

	buf, err := openBuffer(opts, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "kestrel: %v\n", err)
		return exitError
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "kestrel: failed to create terminal: %v\n", err)
		return exitError
	}
	e, err := setup(opts, cfg, logger, buf, term)
	if err != nil {
		fmt.Fprintf(stderr, "kestrel: %v\n", err)
		return exitError
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(stderr, "kestrel: failed to initialize terminal: %v\n", err)
		return exitError
	}
	defer term.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if sig, ok := <-signals; ok {
			_ = term.PostEvent(tcell.NewEventInterrupt(sig))
		}
	}()

	e.run()

	logger.Info("exit: %s", e.app.Metrics().Snapshot())
	if top := e.topActions(5); top != "" {
		logger.Info("top actions: %s", top)
	}
	return exitOK
}

// setup builds the application and the editor. The terminal is initialized
// by the caller.
func setup(opts options, cfg config.Config, logger *app.Logger, buf *buffer.Buffer, term backend.Backend) (*editor, error) {
	a, err := app.New(app.Options{
		Config: cfg,
		Buffer: buf,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	if opts.line > 0 || opts.column > 0 {
		a.GotoLineColumn(max(opts.line, 1), max(opts.column, 1))
	}

	keys := keymap.NewResolver()
	if err := keys.LoadFile(keymap.DefaultPath()); err != nil {
		logger.Warn("key bindings: %v", err)
		a.ShowMessage(mode.Warning, fmt.Sprintf("key bindings not loaded: %v", err))
	}
	return newEditor(a, keys, term), nil
}

// loadConfig loads the configuration. --log-file overrides log_file.
func loadConfig(opts options) (config.Config, error) {
	var loadOpts []config.Option
	if opts.configPath != "" {
		loadOpts = append(loadOpts, config.WithFile(opts.configPath))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return cfg, err
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

// openLogger returns the logger the configuration asks for. Logging is off
// without a log file.
func openLogger(cfg config.Config) (*app.Logger, func(), error) {
	if cfg.LogFile == "" {
		return app.NullLogger, func() {}, nil
	}
	logger, closer, err := app.OpenLogFile(cfg.LogFile, app.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closer.Close() }, nil
}

// openBuffer creates the buffer named by the command line. A path that does
// not exist yet gives an empty buffer that saves to that path.
func openBuffer(opts options, stdin io.Reader) (*buffer.Buffer, error) {
	var (
		buf *buffer.Buffer
		err error
	)
	switch {
	case opts.tutor:
		buf = buffer.NewFromString(tutorial)
	case opts.tempBuffer:
		buf, err = buffer.NewFromReader(stdin)
	case opts.path != "":
		buf, err = buffer.Open(opts.path)
		if errors.Is(err, fs.ErrNotExist) {
			buf, err = buffer.New(buffer.WithFilePath(opts.path)), nil
		}
	default:
		buf = buffer.New()
	}
	if err != nil {
		return nil, &app.IOError{Op: "open", Path: opts.path, Err: err}
	}
	buf.SetReadOnly(opts.readOnly)
	return buf, nil
}
