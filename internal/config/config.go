package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

type Config struct {
	Server       ServerConfig    `yaml:"server"`
	Paths        PathsConfig     `yaml:"paths"`
	Database     DatabaseConfig  `yaml:"database"`
	Organization profile.Profile `yaml:"organization"`
	Packaging    PackagingConfig `yaml:"packaging"`
	Docker       DockerConfig    `yaml:"docker"`
}

// DefaultContactRateLimit only throttles scripted floods; a person filling in
// the form never reaches it.
const DefaultContactRateLimit = 120

type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
	// ContactRateLimit is the number of contact submissions accepted per
	// client IP per minute.
	ContactRateLimit int `yaml:"contact_rate_limit"`
}

// PathsConfig lists every file and directory the tool reads or writes.
// Relative entries are resolved against Root.
type PathsConfig struct {
	Root        string `yaml:"root"`
	LandingPage string `yaml:"landing_page"`
	Readme      string `yaml:"readme"`
	DocsDir     string `yaml:"docs_dir"`
	StaticDir   string `yaml:"static_dir"`
	PagesDir    string `yaml:"pages_dir"`
	BuildDir    string `yaml:"build_dir"`
	PackagesDir string `yaml:"packages_dir"`
	DeliveryDir string `yaml:"delivery_dir"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type PackagingConfig struct {
	Version       string `yaml:"version"`
	ArchivePrefix string `yaml:"archive_prefix"`
	BaseImage     string `yaml:"base_image"`
	IncludeBinary bool   `yaml:"include_binary"`
	// BinaryPath is the landingkit executable bundled into packages. Empty
	// means the running binary; the docker target needs a linux build.
	BinaryPath    string `yaml:"binary_path"`
}

type DockerConfig struct {
	ImageTag string `yaml:"image_tag"`
}

// Resolve returns p joined to the root directory unless it is already absolute.
func (c *PathsConfig) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	setDefaults(&cfg)

	return &cfg, nil
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = 64 << 10
	}
	if cfg.Server.ContactRateLimit <= 0 {
		cfg.Server.ContactRateLimit = DefaultContactRateLimit
	}
	if cfg.Paths.Root == "" {
		cfg.Paths.Root = "."
	}
	if cfg.Paths.LandingPage == "" {
		cfg.Paths.LandingPage = "landing_page.html"
	}
	if cfg.Paths.Readme == "" {
		cfg.Paths.Readme = "README.md"
	}
	if cfg.Paths.DocsDir == "" {
		cfg.Paths.DocsDir = "docs"
	}
	if cfg.Paths.StaticDir == "" {
		cfg.Paths.StaticDir = "static"
	}
	if cfg.Paths.PagesDir == "" {
		cfg.Paths.PagesDir = "templates"
	}
	if cfg.Paths.BuildDir == "" {
		cfg.Paths.BuildDir = "build"
	}
	if cfg.Paths.PackagesDir == "" {
		cfg.Paths.PackagesDir = "packages"
	}
	if cfg.Paths.DeliveryDir == "" {
		cfg.Paths.DeliveryDir = "client_delivery/packages"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/landing.db"
	}
	if cfg.Packaging.Version == "" {
		cfg.Packaging.Version = "1.0.0"
	}
	if cfg.Packaging.ArchivePrefix == "" {
		cfg.Packaging.ArchivePrefix = "access-shield-landing"
	}
	if cfg.Packaging.BaseImage == "" {
		cfg.Packaging.BaseImage = "debian:bookworm-slim"
	}
	if cfg.Docker.ImageTag == "" {
		cfg.Docker.ImageTag = cfg.Packaging.ArchivePrefix + ":" + cfg.Packaging.Version
	}
}
