package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Errorf("poll interval = %v, want 100ms", cfg.PollInterval())
	}
}

func TestLoadParsesSections(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tessera.toml", `
[log]
level = "debug"
file = "/tmp/tessera.log"

[input]
poll_ms = 50

[script]
file = "startup.lua"

[theme]
text = "#aabbcc"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/tessera.log" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.PollInterval() != 50*time.Millisecond {
		t.Errorf("poll interval = %v", cfg.PollInterval())
	}
	if cfg.Script.File != "startup.lua" {
		t.Errorf("script = %+v", cfg.Script)
	}
	if cfg.Theme.Text != "#aabbcc" {
		t.Errorf("theme text = %q", cfg.Theme.Text)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[log\nlevel =")
	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q", perr.Path)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError should wrap the decoder error")
	}
}

func TestPollIntervalGuardsZero(t *testing.T) {
	cfg := Config{}
	if cfg.PollInterval() != 100*time.Millisecond {
		t.Errorf("zero poll_ms should fall back to 100ms, got %v", cfg.PollInterval())
	}
}

func TestWatchFileReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tessera.toml", "[log]\nlevel = \"info\"\n")

	reloaded := make(chan Config, 1)
	w, err := WatchFile(path, 10*time.Millisecond, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, nil)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "tessera.toml", "[log]\nlevel = \"debug\"\n")

	select {
	case cfg := <-reloaded:
		if cfg.Log.Level != "debug" {
			t.Errorf("reloaded level = %q, want debug", cfg.Log.Level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchFileReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tessera.toml", "[log]\n")

	errs := make(chan error, 1)
	w, err := WatchFile(path, 10*time.Millisecond, nil, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "tessera.toml", "not toml [[[")

	select {
	case err := <-errs:
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("err = %v, want *ParseError", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error callback")
	}
}
