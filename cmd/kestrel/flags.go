package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/pflag"
)

// errUsage marks command lines that are well formed but not allowed.
var errUsage = errors.New("invalid usage")

// options are the parsed command line.
type options struct {
	help       bool
	version    bool
	tempBuffer bool
	readOnly   bool
	tutor      bool
	line       int
	column     int
	configPath string
	logFile    string
	path       string
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("kestrel", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&opts.help, "help", "h", false, "print this help and exit")
	fs.BoolVarP(&opts.version, "version", "v", false, "print the version and exit")
	fs.BoolVarP(&opts.tempBuffer, "temp_buffer", "t", false, "edit text read from stdin in an unnamed buffer")
	fs.BoolVarP(&opts.readOnly, "read_only", "r", false, "open the buffer read-only")
	fs.IntVarP(&opts.line, "line", "l", 0, "start on line `N` (1-based)")
	fs.IntVarP(&opts.column, "column", "c", 0, "start on column `N` (1-based)")
	fs.BoolVar(&opts.tutor, "tutor", false, "open the built-in tutorial")
	fs.StringVar(&opts.configPath, "config", "", "read configuration from `file`")
	fs.StringVar(&opts.logFile, "log-file", "", "append the log to `file`")
	return fs
}

// parseFlags parses args without the program name.
func parseFlags(args []string) (options, error) {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.help || opts.version {
		return opts, nil
	}

	rest := fs.Args()
	switch {
	case len(rest) > 1:
		return opts, fmt.Errorf("%w: more than one file given", errUsage)
	case len(rest) == 1:
		opts.path = rest[0]
	}

	switch {
	case opts.tempBuffer && opts.path != "":
		return opts, fmt.Errorf("%w: -t cannot be combined with a file", errUsage)
	case opts.tutor && (opts.tempBuffer || opts.path != ""):
		return opts, fmt.Errorf("%w: --tutor cannot be combined with -t or a file", errUsage)
	case fs.Changed("line") && opts.line < 1:
		return opts, fmt.Errorf("%w: line must be at least 1, got %d", errUsage, opts.line)
	case fs.Changed("column") && opts.column < 1:
		return opts, fmt.Errorf("%w: column must be at least 1, got %d", errUsage, opts.column)
	}
	return opts, nil
}

// usage returns the help text.
func usage() string {
	var opts options
	return heredoc.Docf(`
		kestrel - a modal editor with multiple selections

		Usage:
		  kestrel [options] [file]
		  kestrel -t [options] < input

		Options:
		%s
		Examples:
		  kestrel notes.txt          edit a file, creating it on save
		  kestrel -l 42 -c 8 main.go start at line 42, column 8
		  git log | kestrel -t       edit piped text
		  kestrel -r /etc/hosts      open read-only
	`, newFlagSet(&opts).FlagUsages())
}
