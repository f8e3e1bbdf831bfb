// Package packager assembles the branded landing page into one zip archive
// per deployment target.
package packager

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/pandeptwidyaop/landing-kit/internal/config"
	"github.com/pandeptwidyaop/landing-kit/internal/docs"
)

// ErrUnknownTarget is returned when a target name is not defined.
var ErrUnknownTarget = errors.New("unknown target")

const (
	TargetStatic = "static"
	TargetServer = "server"
	TargetDocker = "docker"
)

// DirCopy copies a whole directory into the staging area when it exists.
type DirCopy struct {
	Src  string
	Dest string
}

// Target describes what goes into one deployment bundle.
type Target struct {
	Name         string
	Title        string
	Description  string
	Files        []string
	Dirs         []DirCopy
	Generated    []string
	Requirements []string
	Deployment   string

	// RuntimeConfig writes a config.yaml the bundled server can start from.
	RuntimeConfig bool
	// IncludeBinary copies the running executable into the bundle.
	IncludeBinary bool
	// ServiceUnit writes a systemd unit for running the bundle from /opt.
	ServiceUnit   bool
}

// Targets returns the static, server and docker targets for cfg.
func Targets(cfg *config.Config) []Target {
	paths := cfg.Paths
	landing := paths.Resolve(paths.LandingPage)
	readme := paths.Resolve(paths.Readme)
	docsDir := DirCopy{Src: paths.Resolve(paths.DocsDir), Dest: "docs"}
	staticDir := DirCopy{Src: paths.Resolve(paths.StaticDir), Dest: "static"}
	pagesDir := DirCopy{Src: paths.Resolve(paths.PagesDir), Dest: "templates"}

	return []Target{
		{
			Name:        TargetStatic,
			Title:       "Access Shield Landing Page - Static",
			Description: "Static HTML landing page for Access Shield AI",
			Files:       []string{landing, readme},
			Dirs:        []DirCopy{docsDir},
			Generated:   docs.Guides,
			Deployment:  "Static hosting (GitHub Pages, Netlify, Vercel)",
		},
		{
			Name:        TargetServer,
			Title:       "Access Shield Landing Page - Server",
			Description: "Landing page server for Access Shield AI",
			Files:       []string{landing, readme},
			Dirs:        []DirCopy{pagesDir, staticDir, docsDir},
			Generated:   []string{docs.RunScript},
			Requirements: []string{
				"landingkit >= " + cfg.Packaging.Version,
				"Linux, macOS or Windows (amd64 or arm64)",
			},
			Deployment:    "Landing page server, VPS, cloud platforms",
			RuntimeConfig: true,
			IncludeBinary: cfg.Packaging.IncludeBinary,
			ServiceUnit:   true,
		},
		{
			Name:        TargetDocker,
			Title:       "Access Shield Landing Page - Docker",
			Description: "Docker containerized landing page for Access Shield AI",
			Files:       []string{landing, readme},
			Dirs:        []DirCopy{pagesDir, staticDir, docsDir},
			Generated:   []string{docs.Dockerfile, docs.DockerCompose},
			Requirements: []string{
				"docker >= 20.10",
				"docker compose v2",
				cfg.Packaging.BaseImage,
			},
			Deployment:    "Docker, Kubernetes, Cloud platforms",
			RuntimeConfig: true,
			IncludeBinary: true,
		},
	}
}

// Select returns the targets named in names, in the order given. An empty
// names list selects every target.
func Select(targets []Target, names []string) ([]Target, error) {
	if len(names) == 0 {
		return targets, nil
	}

	byName := make(map[string]Target, len(targets))
	for _, t := range targets {
		byName[t.Name] = t
	}

	selected := make([]Target, 0, len(names))
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}
		selected = append(selected, t)
	}
	return selected, nil
}

// ArchiveName is the zip file name for target.
func ArchiveName(prefix, target string) string {
	return fmt.Sprintf("%s-%s.zip", prefix, target)
}

func destName(src string) string {
	return filepath.Base(src)
}
