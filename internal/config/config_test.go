package config

import "testing"

func TestDefaults(t *testing.T) {
	t.Setenv("CAMCTL_LOG_LEVEL", "")
	t.Setenv("CAMCTL_SAVE_PATH", "")
	t.Setenv("GO_ENV", "")

	if LogLevel() != DefaultLogLevel {
		t.Errorf("logLevel: want %v, have %v", DefaultLogLevel, LogLevel())
	}
	if SavePath() != DefaultSavePath {
		t.Errorf("savePath: want %v, have %v", DefaultSavePath, SavePath())
	}
	if Production() {
		t.Error("production: want false")
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("CAMCTL_LOG_LEVEL", "debug")
	t.Setenv("CAMCTL_SAVE_PATH", "/tmp/runs")
	t.Setenv("GO_ENV", "production")

	if LogLevel() != "debug" {
		t.Errorf("logLevel: want debug, have %v", LogLevel())
	}
	if SavePath() != "/tmp/runs" {
		t.Errorf("savePath: want /tmp/runs, have %v", SavePath())
	}
	if !Production() {
		t.Error("production: want true")
	}
}
