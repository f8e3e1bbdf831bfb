package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "config.yaml")
	configContent := `
server:
  host: "127.0.0.1"
  port: 9090
  max_body_bytes: 1024

paths:
  root: "/srv/landing"
  landing_page: "index.html"
  docs_dir: "documentation"

database:
  path: "/data/test.db"

organization:
  name: "code-x-app"
  display_name: "Code X App"
  primary_color: "#112233"

packaging:
  version: "2.1.0"
  archive_prefix: "codex-landing"
  include_binary: true

docker:
  image_tag: "codex/landing:dev"
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected host '127.0.0.1', got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes != 1024 {
		t.Errorf("expected max_body_bytes 1024, got %d", cfg.Server.MaxBodyBytes)
	}

	if cfg.Paths.Root != "/srv/landing" {
		t.Errorf("expected root '/srv/landing', got '%s'", cfg.Paths.Root)
	}
	if cfg.Paths.LandingPage != "index.html" {
		t.Errorf("expected landing_page 'index.html', got '%s'", cfg.Paths.LandingPage)
	}
	if cfg.Paths.DocsDir != "documentation" {
		t.Errorf("expected docs_dir 'documentation', got '%s'", cfg.Paths.DocsDir)
	}
	// Unset paths still get defaults
	if cfg.Paths.Readme != "README.md" {
		t.Errorf("expected default readme 'README.md', got '%s'", cfg.Paths.Readme)
	}

	if cfg.Database.Path != "/data/test.db" {
		t.Errorf("expected database path '/data/test.db', got '%s'", cfg.Database.Path)
	}

	if cfg.Organization.Name != "code-x-app" {
		t.Errorf("expected organization name 'code-x-app', got '%s'", cfg.Organization.Name)
	}
	if cfg.Organization.DisplayName != "Code X App" {
		t.Errorf("expected display name 'Code X App', got '%s'", cfg.Organization.DisplayName)
	}
	if cfg.Organization.PrimaryColor != "#112233" {
		t.Errorf("expected primary color '#112233', got '%s'", cfg.Organization.PrimaryColor)
	}

	if cfg.Packaging.Version != "2.1.0" {
		t.Errorf("expected version '2.1.0', got '%s'", cfg.Packaging.Version)
	}
	if cfg.Packaging.ArchivePrefix != "codex-landing" {
		t.Errorf("expected archive_prefix 'codex-landing', got '%s'", cfg.Packaging.ArchivePrefix)
	}
	if !cfg.Packaging.IncludeBinary {
		t.Error("expected include_binary to be true")
	}
	if cfg.Docker.ImageTag != "codex/landing:dev" {
		t.Errorf("expected image_tag 'codex/landing:dev', got '%s'", cfg.Docker.ImageTag)
	}
}

func TestLoad_Defaults(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host 'localhost', got '%s'", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Paths.Root != "." {
		t.Errorf("expected default root '.', got '%s'", cfg.Paths.Root)
	}
	if cfg.Paths.DeliveryDir != "client_delivery/packages" {
		t.Errorf("expected default delivery_dir, got '%s'", cfg.Paths.DeliveryDir)
	}
	if cfg.Database.Path != "./data/landing.db" {
		t.Errorf("expected default database path './data/landing.db', got '%s'", cfg.Database.Path)
	}
	if cfg.Packaging.Version != "1.0.0" {
		t.Errorf("expected default version '1.0.0', got '%s'", cfg.Packaging.Version)
	}
	if cfg.Docker.ImageTag != "access-shield-landing:1.0.0" {
		t.Errorf("expected derived image tag, got '%s'", cfg.Docker.ImageTag)
	}
	if cfg.Packaging.BaseImage != "debian:bookworm-slim" {
		t.Errorf("expected default base image 'debian:bookworm-slim', got '%s'", cfg.Packaging.BaseImage)
	}
	if cfg.Server.ContactRateLimit != DefaultContactRateLimit {
		t.Errorf("expected default contact_rate_limit %d, got %d", DefaultContactRateLimit, cfg.Server.ContactRateLimit)
	}
}

func TestLoad_NonPositiveLimitsUseDefaults(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "config.yaml")
	content := `
server:
  port: -1
  max_body_bytes: -5
  contact_rate_limit: -1
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes != 64<<10 {
		t.Errorf("expected default max_body_bytes, got %d", cfg.Server.MaxBodyBytes)
	}
	if cfg.Server.ContactRateLimit != DefaultContactRateLimit {
		t.Errorf("expected default contact_rate_limit %d, got %d", DefaultContactRateLimit, cfg.Server.ContactRateLimit)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Paths.LandingPage != "landing_page.html" {
		t.Errorf("expected default landing page, got '%s'", cfg.Paths.LandingPage)
	}
	if cfg.Server.MaxBodyBytes != 64<<10 {
		t.Errorf("expected default body limit 64KB, got %d", cfg.Server.MaxBodyBytes)
	}
}

func TestPathsConfig_Resolve(t *testing.T) {
	paths := PathsConfig{Root: "/srv/landing"}

	if got := paths.Resolve("docs"); got != filepath.Join("/srv/landing", "docs") {
		t.Errorf("expected relative path joined to root, got '%s'", got)
	}
	if got := paths.Resolve("/abs/docs"); got != "/abs/docs" {
		t.Errorf("expected absolute path unchanged, got '%s'", got)
	}
	if got := paths.Resolve(""); got != "" {
		t.Errorf("expected empty path unchanged, got '%s'", got)
	}
}
