package profile

import (
	"errors"
	"testing"
)

func TestNormalize_Defaults(t *testing.T) {
	p := Profile{Name: "  Code-X-App "}.Normalize()

	if p.Name != "Code-X-App" {
		t.Errorf("expected trimmed name, got %q", p.Name)
	}
	if p.DisplayName != "Code-X-App" {
		t.Errorf("expected display name to default to name, got %q", p.DisplayName)
	}
	if p.Description != "Code-X-App - Professional Software Solutions" {
		t.Errorf("unexpected description %q", p.Description)
	}
	if p.Email != "contact@code-x-app.com" {
		t.Errorf("unexpected email %q", p.Email)
	}
	if p.Website != "https://code-x-app.com" {
		t.Errorf("unexpected website %q", p.Website)
	}
	if p.RepoName != DefaultRepoName {
		t.Errorf("unexpected repo name %q", p.RepoName)
	}
	if p.PrimaryColor != DefaultPrimaryColor || p.SecondaryColor != DefaultSecondaryColor {
		t.Errorf("unexpected colors %q %q", p.PrimaryColor, p.SecondaryColor)
	}
	if p.Headline != "Code-X-App" {
		t.Errorf("expected headline to default to display name, got %q", p.Headline)
	}
	if p.Tagline != DefaultTagline {
		t.Errorf("unexpected tagline %q", p.Tagline)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	in := Profile{
		Name:        "code-x-app",
		DisplayName: "Code X App",
		Email:       "team@example.org",
		Tagline:     "Ship it",
	}
	p := in.Normalize()

	if p.DisplayName != "Code X App" || p.Email != "team@example.org" || p.Tagline != "Ship it" {
		t.Errorf("explicit values were overwritten: %+v", p)
	}
	if p.Headline != "Code X App" {
		t.Errorf("expected headline from display name, got %q", p.Headline)
	}
	if in.Website != "" {
		t.Error("Normalize must not mutate the receiver")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr error
	}{
		{"valid", Profile{Name: "acme"}.Normalize(), nil},
		{"missing name", Profile{}, ErrNameRequired},
		{"blank name", Profile{Name: "   "}, ErrNameRequired},
		{"short color", Profile{Name: "acme", PrimaryColor: "#abc"}, nil},
		{"bad color", Profile{Name: "acme", PrimaryColor: "blue"}, ErrInvalidColor},
		{"bad secondary", Profile{Name: "acme", SecondaryColor: "#12345"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestURLs(t *testing.T) {
	p := Profile{Name: "Code-X-App"}.Normalize()

	if got := p.PagesURL(); got != "https://code-x-app.github.io/access-shield-landing" {
		t.Errorf("unexpected pages URL %q", got)
	}
	if got := p.RepoURL(); got != "https://github.com/Code-X-App/access-shield-landing" {
		t.Errorf("unexpected repo URL %q", got)
	}
	if got := p.OrgURL(); got != "https://github.com/Code-X-App" {
		t.Errorf("unexpected org URL %q", got)
	}
}
