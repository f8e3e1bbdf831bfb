package cli

import (
	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/profile"
)

// profileFlags override organization fields from the config file.
type profileFlags struct {
	name        string
	displayName string
	description string
	email       string
	website     string
	repo        string
	headline    string
	tagline     string
}

func (f *profileFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "GitHub organization name")
	cmd.Flags().StringVar(&f.displayName, "display-name", "", "Organization display name")
	cmd.Flags().StringVar(&f.description, "description", "", "Organization description")
	cmd.Flags().StringVar(&f.email, "email", "", "Contact email")
	cmd.Flags().StringVar(&f.website, "website", "", "Organization website")
	cmd.Flags().StringVar(&f.repo, "repo", "", "Repository name for the hosted page")
	cmd.Flags().StringVar(&f.headline, "headline", "", "Hero headline")
	cmd.Flags().StringVar(&f.tagline, "tagline", "", "Hero tagline")
}

func (f *profileFlags) apply(p profile.Profile) profile.Profile {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Name, f.name)
	set(&p.DisplayName, f.displayName)
	set(&p.Description, f.description)
	set(&p.Email, f.email)
	set(&p.Website, f.website)
	set(&p.RepoName, f.repo)
	set(&p.Headline, f.headline)
	set(&p.Tagline, f.tagline)
	return p.Normalize()
}
