// Package profile holds the organization branding used to personalize the landing page.
package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNameRequired is returned when the organization name is empty.
	ErrNameRequired = errors.New("organization name is required")
	// ErrInvalidColor is returned when a color is not a #rgb or #rrggbb hex value.
	ErrInvalidColor = errors.New("invalid color value")
)

const (
	DefaultRepoName       = "access-shield-landing"
	DefaultPrimaryColor   = "#667eea"
	DefaultSecondaryColor = "#764ba2"
	DefaultTagline        = "Professional Software Solutions"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Profile is the flat set of branding fields for one organization.
type Profile struct {
	Name           string `yaml:"name" json:"name"`
	DisplayName    string `yaml:"display_name" json:"display_name"`
	Description    string `yaml:"description" json:"description"`
	Email          string `yaml:"email" json:"email"`
	Website        string `yaml:"website" json:"website"`
	RepoName       string `yaml:"repo_name" json:"repo_name"`
	PrimaryColor   string `yaml:"primary_color" json:"primary_color"`
	SecondaryColor string `yaml:"secondary_color" json:"secondary_color"`
	Headline       string `yaml:"headline" json:"headline"`
	Tagline        string `yaml:"tagline" json:"tagline"`
}

// Normalize returns a copy with surrounding whitespace trimmed and empty
// optional fields filled with values derived from the name.
func (p Profile) Normalize() Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	p.Description = strings.TrimSpace(p.Description)
	p.Email = strings.TrimSpace(p.Email)
	p.Website = strings.TrimSpace(p.Website)
	p.RepoName = strings.TrimSpace(p.RepoName)
	p.PrimaryColor = strings.TrimSpace(p.PrimaryColor)
	p.SecondaryColor = strings.TrimSpace(p.SecondaryColor)
	p.Headline = strings.TrimSpace(p.Headline)
	p.Tagline = strings.TrimSpace(p.Tagline)

	lower := strings.ToLower(p.Name)
	if p.DisplayName == "" {
		p.DisplayName = p.Name
	}
	if p.Description == "" {
		p.Description = p.Name + " - Professional Software Solutions"
	}
	if p.Email == "" {
		p.Email = "contact@" + lower + ".com"
	}
	if p.Website == "" {
		p.Website = "https://" + lower + ".com"
	}
	if p.RepoName == "" {
		p.RepoName = DefaultRepoName
	}
	if p.PrimaryColor == "" {
		p.PrimaryColor = DefaultPrimaryColor
	}
	if p.SecondaryColor == "" {
		p.SecondaryColor = DefaultSecondaryColor
	}
	if p.Headline == "" {
		p.Headline = p.DisplayName
	}
	if p.Tagline == "" {
		p.Tagline = DefaultTagline
	}
	return p
}

// Validate checks the fields that cannot be defaulted.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	for field, value := range map[string]string{
		"primary_color":   p.PrimaryColor,
		"secondary_color": p.SecondaryColor,
	} {
		if value != "" && !colorPattern.MatchString(value) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidColor, field, value)
		}
	}
	return nil
}

// OrgURL is the organization's GitHub page.
func (p Profile) OrgURL() string {
	return "https://github.com/" + p.Name
}

// RepoURL is the landing page repository inside the organization.
func (p Profile) RepoURL() string {
	return "https://github.com/" + p.Name + "/" + p.RepoName
}

// PagesURL is where GitHub Pages publishes the repository.
func (p Profile) PagesURL() string {
	return "https://" + strings.ToLower(p.Name) + ".github.io/" + p.RepoName
}
