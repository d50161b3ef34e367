package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const helloUSFM = "\\id JHN John\n\\c 1\n\\v 1 Hello \\nd world\\nd*.\n"

// isolate points HOME and the working directory at empty temp dirs so no
// real configuration file is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	code, stdout, _ := runCLI(t, "version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"versetab version " + version, "sqlite driver:", "format.usfm", "format.usx", ".sfm .usfm"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("version output missing %q:\n%s", want, stdout)
		}
	}
}

func TestHelpExitsZero(t *testing.T) {
	isolate(t)
	code, stdout, _ := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "convert") {
		t.Errorf("help output missing convert command:\n%s", stdout)
	}
}

func TestUsageErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"frobnicate"}},
		{"missing argument", []string{"convert"}},
		{"unknown flag", []string{"convert", "--colour", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if !strings.Contains(stderr, "versetab: error:") {
				t.Errorf("stderr = %q", stderr)
			}
		})
	}
}

func TestConvertCommand(t *testing.T) {
	isolate(t)
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "tables")
	createTestFile(t, src, "JHN.usfm", helloUSFM)
	createTestFile(t, src, "BAD.usx", "<usx><para>")

	code, stdout, stderr := runCLI(t, "convert", src, "--out", out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "Converted 1 file(s), skipped 1, 1 verses written") {
		t.Errorf("unexpected summary:\n%s", stdout)
	}
	if !strings.Contains(stderr, "file_skipped") {
		t.Errorf("expected a file_skipped log line:\n%s", stderr)
	}

	data, err := os.ReadFile(filepath.Join(out, "JHN.csv"))
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	want := "Book,Chapter,Verse,TextPlain,TextStyled,Footnotes,Crossrefs,Subtitle\r\n" +
		"JHN,1,1,Hello world.,Hello <nd>world</nd>.,,,\r\n"
	if string(data) != want {
		t.Errorf("csv = %q, want %q", data, want)
	}
}

func TestConvertFatalErrors(t *testing.T) {
	isolate(t)
	empty := t.TempDir()
	txt := createTestFile(t, t.TempDir(), "notes.txt", "x")
	usfm := createTestFile(t, t.TempDir(), "JHN.usfm", helloUSFM)

	tests := []struct {
		name string
		args []string
		want string
		hint bool
	}{
		{"empty directory", []string{"convert", empty}, "invalid input", true},
		{"missing path", []string{"convert", filepath.Join(empty, "missing")}, "invalid input", true},
		{"unsupported file", []string{"convert", txt}, "invalid input", true},
		{"unsupported format", []string{"convert", usfm, "--format", "xml"}, "unsupported output format", false},
		{"compressed sqlite", []string{"convert", usfm, "--format", "sqlite", "--compress", "xz"}, "unsupported compression", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr missing %q:\n%s", tt.want, stderr)
			}
			hint := `Run "versetab convert --help" for usage.`
			if got := strings.Contains(stderr, hint); got != tt.hint {
				t.Errorf("usage hint shown = %v, want %v:\n%s", got, tt.hint, stderr)
			}
		})
	}
}

func TestCommandPath(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"convert <input>", "convert"},
		{"preview <file>", "preview"},
		{"config show", "config show"},
		{"version", "version"},
	}
	for _, tt := range tests {
		if got := commandPath(tt.command); got != tt.want {
			t.Errorf("commandPath(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}

func TestConvertUsesConfigFile(t *testing.T) {
	isolate(t)
	src := t.TempDir()
	out := t.TempDir()
	createTestFile(t, src, "JHN.usfm", helloUSFM)
	cfgPath := createTestFile(t, t.TempDir(), "versetab.toml",
		"[output]\ndir = \""+filepath.ToSlash(out)+"\"\nformat = \"json\"\ncompress = \"xz\"\n")

	code, _, stderr := runCLI(t, "--config", cfgPath, "convert", src)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "JHN.json.xz")); err != nil {
		t.Errorf("expected json.xz output from config: %v", err)
	}

	// Flags take precedence over the file.
	code, _, stderr = runCLI(t, "--config", cfgPath, "convert", src, "--format", "csv", "--compress", "none")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "JHN.csv")); err != nil {
		t.Errorf("expected csv output from flags: %v", err)
	}
}

func TestConvertWritesSQLite(t *testing.T) {
	isolate(t)
	src := t.TempDir()
	path := createTestFile(t, src, "JHN.usfm", helloUSFM)

	code, _, stderr := runCLI(t, "convert", path, "-f", "sqlite")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(src, "JHN.sqlite")); err != nil {
		t.Errorf("expected sqlite output next to source: %v", err)
	}
}

func TestGlobalFlagErrors(t *testing.T) {
	isolate(t)
	usfm := createTestFile(t, t.TempDir(), "JHN.usfm", helloUSFM)

	code, _, stderr := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "convert", usfm)
	if code != 1 || !strings.Contains(stderr, "does not exist") {
		t.Errorf("missing config: code %d stderr %q", code, stderr)
	}

	code, _, stderr = runCLI(t, "--log-level", "loud", "convert", usfm)
	if code != 2 || !strings.Contains(stderr, "loud") {
		t.Errorf("bad log level: code %d stderr %q", code, stderr)
	}
}

func TestLogFormatJSON(t *testing.T) {
	isolate(t)
	usfm := createTestFile(t, t.TempDir(), "JHN.usfm", helloUSFM)
	t.Setenv("VERSETAB_LOG_FORMAT", "json")

	code, _, stderr := runCLI(t, "convert", usfm)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr, `"msg":"run_finished"`) || !strings.Contains(stderr, `"run_id":`) {
		t.Errorf("expected JSON run log lines:\n%s", stderr)
	}
}

func TestPreviewCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	usfm := createTestFile(t, dir, "JHN.usfm", helloUSFM)

	code, stdout, stderr := runCLI(t, "preview", usfm)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	for _, want := range []string{"JHN", "Hello world."} {
		if !strings.Contains(stdout, want) {
			t.Errorf("preview missing %q:\n%s", want, stdout)
		}
	}

	code, _, stderr = runCLI(t, "preview", dir)
	if code != 1 || !strings.Contains(stderr, "not a directory") {
		t.Errorf("directory preview: code %d stderr %q", code, stderr)
	}

	code, _, _ = runCLI(t, "preview", usfm, "--limit=-1")
	if code != 1 {
		t.Errorf("negative limit: code %d, want 1", code)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "conf", "versetab.toml")

	code, stdout, stderr := runCLI(t, "config", "init", "--path", target)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout, target) {
		t.Errorf("stdout = %q", stdout)
	}

	code, _, stderr = runCLI(t, "config", "init", "--path", target)
	if code != 1 || !strings.Contains(stderr, "already exists") {
		t.Errorf("second init: code %d stderr %q", code, stderr)
	}
	if code, _, _ = runCLI(t, "config", "init", "--path", target, "--overwrite"); code != 0 {
		t.Errorf("overwrite init: code %d", code)
	}

	code, stdout, _ = runCLI(t, "--config", target, "config", "show")
	if code != 0 {
		t.Fatalf("show: exit code = %d", code)
	}
	for _, want := range []string{"output.format   csv", "output.compress none", "log.level       info"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("show missing %q:\n%s", want, stdout)
		}
	}
}
