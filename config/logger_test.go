package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggingConfig_Prepare(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "test.log")

	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "overwrite"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden message")
	log.Info("visible message")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("log file was not written: %v", err)
	}
	if !strings.Contains(string(data), "visible message") {
		t.Errorf("info message missing from log: %q", data)
	}
	if strings.Contains(string(data), "hidden message") {
		t.Errorf("debug message must be filtered at normal level: %q", data)
	}
}

func TestLoggingConfig_PrepareReportForcesDebug(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "test.log")

	rpt, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("report Prepare() error = %v", err)
	}
	defer rpt.Close()

	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: dest},
	}
	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("debug message")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("log file was not written: %v", err)
	}
	if !strings.Contains(string(data), "debug message") {
		t.Errorf("debug message missing from log: %q", data)
	}
	if _, ok := rpt.entries["final.log"]; !ok {
		t.Error("log file was not added to report")
	}
}

func TestLoggingConfig_PrepareNoFile(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if log == nil {
		t.Fatal("Prepare() returned nil logger")
	}
}
