// Package docs renders the deployment documents and container files that
// accompany a branded landing page.
package docs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"text/template"
	"time"

	"github.com/natefinch/atomic"

	"github.com/pandeptwidyaop/landing-kit/internal/config"
	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

// Document names, which double as output file names.
const (
	DeploymentInstructions = "DEPLOYMENT_INSTRUCTIONS.md"
	DeploymentGuide        = "DEPLOYMENT_GUIDE.md"
	GitHubCommands         = "GITHUB_COMMANDS.md"
	Dockerfile             = "Dockerfile"
	DockerCompose          = "docker-compose.yml"
	RunScript              = "run.sh"
)

// Guides are the documents written next to the landing page by `customize`.
var Guides = []string{DeploymentInstructions, DeploymentGuide, GitHubCommands}

// ErrUnknownDocument is returned for a name with no template.
var ErrUnknownDocument = errors.New("unknown document")

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// Data is everything a document template can reference.
type Data struct {
	profile.Profile
	Version       string
	ArchivePrefix string
	BaseImage     string
	ImageTag      string
	Port          int
	Created       time.Time
}

// FromConfig builds document data from the tool configuration.
func FromConfig(cfg *config.Config, created time.Time) Data {
	return Data{
		Profile:       cfg.Organization.Normalize(),
		Version:       cfg.Packaging.Version,
		ArchivePrefix: cfg.Packaging.ArchivePrefix,
		BaseImage:     cfg.Packaging.BaseImage,
		ImageTag:      cfg.Docker.ImageTag,
		Port:          cfg.Server.Port,
		Created:       created,
	}
}

// CreatedString formats the creation time the way the documents print it.
func (d Data) CreatedString() string {
	return d.Created.Format(time.RFC1123)
}

// Render executes the named document template.
func Render(name string, data Data) (string, error) {
	tmpl := templates.Lookup(name + ".tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownDocument, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Write renders name into dir and returns the written path.
func Write(dir, name string, data Data) (string, error) {
	out, err := Render(name, data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := atomic.WriteFile(path, bytes.NewBufferString(out)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// WriteGuides writes every deployment guide into dir.
func WriteGuides(dir string, data Data) ([]string, error) {
	paths := make([]string, 0, len(Guides))
	for _, name := range Guides {
		path, err := Write(dir, name, data)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
