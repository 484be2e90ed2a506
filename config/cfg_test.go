package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Compiler.Reset || cfg.Compiler.Important || cfg.Compiler.Verify {
		t.Errorf("unexpected compiler defaults: %+v", cfg.Compiler)
	}
	if !cfg.Compiler.Minify {
		t.Error("minification must be on by default")
	}
	if cfg.Compiler.Marker != "mkcss" {
		t.Errorf("Marker = %q, want mkcss", cfg.Compiler.Marker)
	}
	// banner is a template for later and must not be expanded on load
	if !strings.Contains(cfg.Compiler.Banner, "{{ .Version }}") {
		t.Errorf("Banner was expanded: %q", cfg.Compiler.Banner)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
compiler:
  reset: true
  important: true
  verify: true
  marker: data-css
  banner: "/* {{ .Name }} */"
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "logs", "mkcss.log") + `
    mode: append
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Compiler.Reset || !cfg.Compiler.Important || !cfg.Compiler.Verify {
		t.Errorf("compiler flags not loaded: %+v", cfg.Compiler)
	}
	// not in file - keeps default
	if !cfg.Compiler.Minify {
		t.Error("expected Minify to keep default value")
	}
	if cfg.Compiler.Marker != "data-css" {
		t.Errorf("Marker = %q", cfg.Compiler.Marker)
	}
	if cfg.Compiler.Banner != "/* {{ .Name }} */" {
		t.Errorf("Banner = %q", cfg.Compiler.Banner)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file mode = %q", cfg.Logging.FileLogger.Mode)
	}
	// sanitizer makes sure log directory exists
	if fi, err := os.Stat(filepath.Join(tmpDir, "logs")); err != nil || !fi.IsDir() {
		t.Errorf("log directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ncompiler:\n  reset: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"empty marker", "version: 1\ncompiler:\n  marker: \"\"\n"},
		{"marker with spaces", "version: 1\ncompiler:\n  marker: \"my marker\"\n"},
		{"marker with brackets", "version: 1\ncompiler:\n  marker: \"a]b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Compiler.Reset = true

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("dumped config is not valid yaml: %v", err)
	}
	if back.Compiler != cfg.Compiler {
		t.Errorf("round trip changed compiler section: %+v vs %+v", back.Compiler, cfg.Compiler)
	}
}
