package packager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"

	"github.com/pandeptwidyaop/landing-kit/internal/config"
	"github.com/pandeptwidyaop/landing-kit/internal/docs"
	"github.com/pandeptwidyaop/landing-kit/internal/service"
)

const (
	runtimeConfigFile = "config.yaml"
	binaryName        = "landingkit"
)

// Result reports the outcome of building one target.
type Result struct {
	Target   string   `json:"target"`
	Archive  string   `json:"archive,omitempty"`
	Size     int64    `json:"size,omitempty"`
	Checksum string   `json:"checksum,omitempty"`
	Files    []string `json:"files"`
	Entries  []string `json:"entries,omitempty"`
	Skipped  []string `json:"skipped,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Builder stages and archives deployment targets.
type Builder struct {
	cfg *config.Config

	// Now and Executable are replaceable for tests.
	Now        func() time.Time
	Executable func() (string, error)
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		cfg:        cfg,
		Now:        time.Now,
		Executable: os.Executable,
	}
}

// BuildAll builds every target in order. A failing target does not stop the
// others; all failures are returned joined.
func (b *Builder) BuildAll(targets []Target) ([]*Result, error) {
	results := make([]*Result, 0, len(targets))
	var errs []error

	for _, t := range targets {
		res, err := b.Build(t)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Name, err))
			res = &Result{Target: t.Name, Error: err.Error()}
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

// Build stages t under the build directory and writes its zip archive into
// the packages directory. Missing source files and directories are skipped.
func (b *Builder) Build(t Target) (*Result, error) {
	paths := b.cfg.Paths
	staging := filepath.Join(paths.Resolve(paths.BuildDir), t.Name)
	packagesDir := paths.Resolve(paths.PackagesDir)

	if err := os.RemoveAll(staging); err != nil {
		return nil, fmt.Errorf("failed to reset staging directory: %w", err)
	}
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	if err := os.MkdirAll(packagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create packages directory: %w", err)
	}

	res := &Result{Target: t.Name, Files: []string{}}
	created := b.Now()

	for _, src := range t.Files {
		name := destName(src)
		err := copyFile(src, filepath.Join(staging, name), 0644)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			res.Skipped = append(res.Skipped, name)
		case err != nil:
			return nil, fmt.Errorf("failed to copy %s: %w", src, err)
		default:
			res.Files = append(res.Files, name)
		}
	}

	for _, dir := range t.Dirs {
		label := dir.Dest + "/"
		info, err := os.Stat(dir.Src)
		if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
			res.Skipped = append(res.Skipped, label)
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := copyDir(dir.Src, filepath.Join(staging, dir.Dest)); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", dir.Src, err)
		}
		res.Files = append(res.Files, label)
	}

	data := docs.FromConfig(b.cfg, created)
	for _, name := range t.Generated {
		path, err := docs.Write(staging, name, data)
		if err != nil {
			return nil, err
		}
		if name == docs.RunScript {
			if err := os.Chmod(path, 0755); err != nil {
				return nil, err
			}
		}
		res.Files = append(res.Files, name)
	}

	if t.RuntimeConfig {
		if err := b.writeRuntimeConfig(staging); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, runtimeConfigFile)
	}

	if t.ServiceUnit {
		unit, err := service.GenerateUnit(service.BundleConfig())
		if err != nil {
			return nil, err
		}
		if err := atomic.WriteFile(filepath.Join(staging, service.UnitName), strings.NewReader(unit)); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, service.UnitName)
	}

	if t.IncludeBinary {
		if b.copyBinary(staging) {
			res.Files = append(res.Files, binaryName)
		} else {
			res.Skipped = append(res.Skipped, binaryName)
		}
	}

	manifest := Manifest{
		Name:         t.Title,
		Version:      b.cfg.Packaging.Version,
		Type:         t.Name,
		Description:  t.Description,
		Files:        res.Files,
		Requirements: t.Requirements,
		Deployment:   t.Deployment,
		Created:      created.UTC().Format(time.RFC3339),
		BuildID:      uuid.New().String(),
	}
	if err := writeManifest(staging, manifest); err != nil {
		return nil, err
	}

	archive := filepath.Join(packagesDir, ArchiveName(b.cfg.Packaging.ArchivePrefix, t.Name))
	entries, err := writeZip(staging, archive)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}

	info, err := os.Stat(archive)
	if err != nil {
		return nil, err
	}
	sum, err := checksum(archive)
	if err != nil {
		return nil, err
	}

	res.Archive = archive
	res.Size = info.Size()
	res.Checksum = sum
	res.Entries = entries
	return res, nil
}

// RuntimeConfig derives the configuration a bundled server starts from.
// Paths are relative to the bundle root.
func RuntimeConfig(cfg *config.Config) *config.Config {
	rc := *cfg
	rc.Server.Host = "0.0.0.0"
	rc.Paths = config.PathsConfig{
		Root:        ".",
		LandingPage: destName(cfg.Paths.LandingPage),
		Readme:      destName(cfg.Paths.Readme),
		DocsDir:     "docs",
		StaticDir:   "static",
		PagesDir:    "templates",
	}
	rc.Database.Path = "./data/landing.db"
	rc.Organization = cfg.Organization.Normalize()
	return &rc
}

func (b *Builder) writeRuntimeConfig(dir string) error {
	data, err := yaml.Marshal(RuntimeConfig(b.cfg))
	if err != nil {
		return fmt.Errorf("failed to encode runtime config: %w", err)
	}
	return atomic.WriteFile(filepath.Join(dir, runtimeConfigFile), bytes.NewReader(data))
}

func (b *Builder) copyBinary(dir string) bool {
	exe := b.cfg.Packaging.BinaryPath
	if exe != "" {
		exe = b.cfg.Paths.Resolve(exe)
	} else {
		var err error
		if exe, err = b.Executable(); err != nil {
			return false
		}
	}
	return copyFile(exe, filepath.Join(dir, binaryName), 0755) == nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}
