package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{"none", nil, options{}},
		{"path", []string{"notes.txt"}, options{path: "notes.txt"}},
		{"short flags", []string{"-r", "-l", "3", "-c", "7", "a.go"}, options{readOnly: true, line: 3, column: 7, path: "a.go"}},
		{"long flags", []string{"--read_only", "--line=3", "--column=7"}, options{readOnly: true, line: 3, column: 7}},
		{"temp buffer", []string{"-t"}, options{tempBuffer: true}},
		{"tutor", []string{"--tutor"}, options{tutor: true}},
		{"config and log", []string{"--config", "k.toml", "--log-file", "k.log"}, options{configPath: "k.toml", logFile: "k.log"}},
		{"help wins", []string{"-h", "-t", "a", "b"}, options{help: true, tempBuffer: true}},
		{"version", []string{"--version"}, options{version: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseFlags(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"temp buffer with path", []string{"-t", "a.txt"}, true},
		{"tutor with path", []string{"--tutor", "a.txt"}, true},
		{"tutor with temp buffer", []string{"--tutor", "-t"}, true},
		{"two paths", []string{"a", "b"}, true},
		{"zero line", []string{"-l", "0"}, true},
		{"negative column", []string{"-c", "-2"}, true},
		{"not a number", []string{"-l", "x"}, false},
		{"unknown flag", []string{"--nope"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, errUsage); got != tt.usage {
				t.Errorf("errors.Is(err, errUsage) = %v, want %v (err = %v)", got, tt.usage, err)
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		code       int
		stdout     string
		stderrPart string
	}{
		{"help", []string{"--help"}, exitOK, "Usage:", ""},
		{"version", []string{"-v"}, exitOK, "kestrel dev", ""},
		{"temp buffer with path", []string{"-t", "a.txt"}, exitUsage, "", "-t cannot be combined"},
		{"bad flag", []string{"--bogus"}, exitUsage, "", "Usage:"},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.toml")}, exitError, "", "none.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.code, stderr.String())
			}
			if tt.stdout != "" && !strings.Contains(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.stdout)
			}
			if tt.stderrPart != "" && !strings.Contains(stderr.String(), tt.stderrPart) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.stderrPart)
			}
		})
	}
}

func TestUsageListsFlags(t *testing.T) {
	text := usage()
	for _, flag := range []string{"--help", "--version", "--temp_buffer", "--read_only", "--line", "--column", "--tutor", "--config", "--log-file"} {
		if !strings.Contains(text, flag) {
			t.Errorf("usage does not mention %s", flag)
		}
	}
}

func TestOpenBuffer(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(existing, []byte("line one\r\nline two\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "new.txt")

	t.Run("existing file", func(t *testing.T) {
		buf, err := openBuffer(options{path: existing}, nil)
		if err != nil {
			t.Fatalf("openBuffer: %v", err)
		}
		if buf.Text() != "line one\r\nline two\n" {
			t.Errorf("text = %q", buf.Text())
		}
		if buf.FilePath() != existing {
			t.Errorf("FilePath() = %q", buf.FilePath())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		buf, err := openBuffer(options{path: missing}, nil)
		if err != nil {
			t.Fatalf("openBuffer: %v", err)
		}
		if buf.Text() != "" || buf.FilePath() != missing {
			t.Errorf("got text %q path %q", buf.Text(), buf.FilePath())
		}
	})

	t.Run("read only", func(t *testing.T) {
		buf, err := openBuffer(options{path: existing, readOnly: true}, nil)
		if err != nil {
			t.Fatalf("openBuffer: %v", err)
		}
		if !buf.ReadOnly() {
			t.Error("buffer should be read-only")
		}
	})

	t.Run("stdin", func(t *testing.T) {
		buf, err := openBuffer(options{tempBuffer: true}, strings.NewReader("piped\n"))
		if err != nil {
			t.Fatalf("openBuffer: %v", err)
		}
		if buf.Text() != "piped\n" || buf.FilePath() != "" {
			t.Errorf("got text %q path %q", buf.Text(), buf.FilePath())
		}
	})

	t.Run("tutor", func(t *testing.T) {
		buf, err := openBuffer(options{tutor: true}, nil)
		if err != nil {
			t.Fatalf("openBuffer: %v", err)
		}
		if !strings.HasPrefix(buf.Text(), "Welcome to kestrel") || buf.FilePath() != "" {
			t.Error("tutor should open the tutorial in an unnamed buffer")
		}
	})

	t.Run("directory", func(t *testing.T) {
		if _, err := openBuffer(options{path: dir}, nil); err == nil {
			t.Error("opening a directory should fail")
		}
	})
}

func TestLoadConfigLogFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("tab_width = 8\nlog_file = \"from-config.log\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(options{configPath: path, logFile: "from-flag.log"})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.TabWidth)
	}
	if cfg.LogFile != "from-flag.log" {
		t.Errorf("LogFile = %q, want from-flag.log", cfg.LogFile)
	}
}
