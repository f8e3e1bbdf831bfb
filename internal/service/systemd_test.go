package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateUnit(t *testing.T) {
	unit, err := GenerateUnit(BundleConfig())
	if err != nil {
		t.Fatalf("GenerateUnit() error = %v", err)
	}

	for _, want := range []string{
		"ExecStart=/opt/landingkit/landingkit serve --config /opt/landingkit/config.yaml",
		"WorkingDirectory=/opt/landingkit",
		"User=landingkit",
		"ReadWritePaths=/opt/landingkit",
		"WantedBy=multi-user.target",
	} {
		if !strings.Contains(unit, want) {
			t.Errorf("expected unit to contain %q", want)
		}
	}
}

func TestDefaultConfig_AbsolutePaths(t *testing.T) {
	cfg := DefaultConfig("site", "site/config.yaml")
	if !filepath.IsAbs(cfg.WorkingDir) || !filepath.IsAbs(cfg.ConfigPath) {
		t.Errorf("expected absolute paths, got %+v", cfg)
	}
	if cfg.User != "root" {
		t.Errorf("expected root user, got %s", cfg.User)
	}
}

func TestQuery(t *testing.T) {
	dir := t.TempDir()
	origPath, origCtl := UnitPath, systemctl
	t.Cleanup(func() { UnitPath, systemctl = origPath, origCtl })

	UnitPath = filepath.Join(dir, UnitName)
	if err := os.WriteFile(UnitPath, []byte("[Unit]"), 0644); err != nil {
		t.Fatalf("write unit: %v", err)
	}

	systemctl = func(args ...string) (string, error) {
		switch strings.Join(args, " ") {
		case "show landingkit --property=ActiveState --value":
			return "active", nil
		case "show landingkit --property=SubState --value":
			return "running", nil
		case "is-enabled landingkit":
			return "", errors.New("exit status 1: disabled")
		}
		return "", errors.New("unexpected call")
	}

	status := query(&Status{})
	if !status.IsInstalled || !status.IsRunning {
		t.Errorf("expected installed and running, got %+v", status)
	}
	if status.SubState != "running" {
		t.Errorf("expected sub state running, got %s", status.SubState)
	}
	if status.IsEnabled {
		t.Error("expected service to be reported as disabled")
	}
}
