// Package service installs the landing page server as a systemd unit.
package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"
)

const (
	// UnitName is the systemd unit name, also used as the bundled file name.
	UnitName = "landingkit.service"

	serviceName = "landingkit"
)

var ErrUnsupported = errors.New("systemd services are only supported on Linux with systemctl")

// UnitPath is where Install writes the unit.
var UnitPath = "/etc/systemd/system/" + UnitName

// systemctl runs one systemctl invocation. Replaced in tests.
var systemctl = func(args ...string) (string, error) {
	out, err := exec.Command("systemctl", args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s: %s", err, strings.TrimSpace(string(out)))
	}
	return strings.TrimSpace(string(out)), nil
}

// Status represents the state of the installed unit.
type Status struct {
	IsRunning   bool   `json:"is_running"`
	IsEnabled   bool   `json:"is_enabled"`
	IsInstalled bool   `json:"is_installed"`
	ActiveState string `json:"active_state"`
	SubState    string `json:"sub_state"`
}

// Config holds the values substituted into the unit.
type Config struct {
	ExecPath   string
	ConfigPath string
	User       string
	WorkingDir string
}

var unitTemplate = template.Must(template.New("unit").Parse(`[Unit]
Description=Access Shield Landing Page
Documentation=https://github.com/pandeptwidyaop/landing-kit
After=network.target

[Service]
Type=simple
User={{.User}}
Group={{.User}}
WorkingDirectory={{.WorkingDir}}
ExecStart={{.ExecPath}} serve --config {{.ConfigPath}}
Restart=always
RestartSec=5
StandardOutput=journal
StandardError=journal

# Security hardening
NoNewPrivileges=true
ProtectSystem=strict
ProtectHome=read-only
ReadWritePaths={{.WorkingDir}}
PrivateTmp=true

[Install]
WantedBy=multi-user.target
`))

// GenerateUnit renders the unit file for cfg.
func GenerateUnit(cfg Config) (string, error) {
	var buf bytes.Buffer
	if err := unitTemplate.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("failed to render service unit: %w", err)
	}
	return buf.String(), nil
}

// BundleConfig is the unit configuration shipped inside the server package,
// which expects to be unpacked into /opt/landingkit.
func BundleConfig() Config {
	return Config{
		ExecPath:   "/opt/landingkit/landingkit",
		ConfigPath: "/opt/landingkit/config.yaml",
		User:       "landingkit",
		WorkingDir: "/opt/landingkit",
	}
}

// DefaultConfig points the unit at the running binary and the given workspace.
func DefaultConfig(workDir, configPath string) Config {
	execPath, _ := os.Executable()
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}
	if abs, err := filepath.Abs(configPath); err == nil {
		configPath = abs
	}

	return Config{
		ExecPath:   execPath,
		ConfigPath: configPath,
		User:       "root",
		WorkingDir: workDir,
	}
}

func supported() error {
	if runtime.GOOS != "linux" {
		return ErrUnsupported
	}
	if _, err := exec.LookPath("systemctl"); err != nil {
		return ErrUnsupported
	}
	return nil
}

// Install writes the unit, then enables and starts it.
func Install(cfg Config) error {
	if err := supported(); err != nil {
		return err
	}
	if os.Geteuid() != 0 {
		return fmt.Errorf("root privileges required for service installation")
	}

	content, err := GenerateUnit(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(UnitPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}

	if _, err := systemctl("daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}
	if _, err := systemctl("enable", serviceName); err != nil {
		return fmt.Errorf("failed to enable service: %w", err)
	}
	if _, err := systemctl("start", serviceName); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	return nil
}

// Uninstall stops, disables and removes the unit.
func Uninstall() error {
	if err := supported(); err != nil {
		return err
	}
	if os.Geteuid() != 0 {
		return fmt.Errorf("root privileges required for service uninstallation")
	}

	// Not running or not enabled is fine here.
	_, _ = systemctl("stop", serviceName)
	_, _ = systemctl("disable", serviceName)

	if err := os.Remove(UnitPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove service file: %w", err)
	}
	if _, err := systemctl("daemon-reload"); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}
	return nil
}

// CurrentStatus reports the unit state. On systems without systemd it
// returns an empty status.
func CurrentStatus() *Status {
	status := &Status{}
	if supported() != nil {
		return status
	}
	return query(status)
}

func query(status *Status) *Status {
	if _, err := os.Stat(UnitPath); err == nil {
		status.IsInstalled = true
	}
	if v, err := systemctl("show", serviceName, "--property=ActiveState", "--value"); err == nil {
		status.ActiveState = v
		status.IsRunning = v == "active"
	}
	if v, err := systemctl("show", serviceName, "--property=SubState", "--value"); err == nil {
		status.SubState = v
	}
	if v, err := systemctl("is-enabled", serviceName); err == nil {
		status.IsEnabled = v == "enabled"
	}
	return status
}
