package customize

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/natefinch/atomic"

	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var landingTemplate = template.Must(template.ParseFS(templatesFS, "templates/landing_page.html.tmpl"))

type pageData struct {
	profile.Profile
	Year int
}

// Render produces the landing page for p from the slot template. The
// output depends only on p and the year, so rendering twice is stable.
func Render(p profile.Profile, now time.Time) (string, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := landingTemplate.Execute(&buf, pageData{Profile: p, Year: now.Year()}); err != nil {
		return "", fmt.Errorf("failed to render landing page: %w", err)
	}
	return buf.String(), nil
}

// RenderFile renders the landing page and atomically replaces path with it.
func RenderFile(path string, p profile.Profile, now time.Time) error {
	out, err := Render(p, now)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader([]byte(out))); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
