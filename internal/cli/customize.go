package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/customize"
	"github.com/pandeptwidyaop/landing-kit/internal/docs"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
)

func newCustomizeCmd(opts *globalOptions) *cobra.Command {
	var skipDocs bool
	var pf profileFlags

	cmd := &cobra.Command{
		Use:   "customize",
		Short: "Brand the existing landing page and README for an organization",
		Long: `Rewrite the organization-specific regions of the landing page and README in
place, then write the deployment guides next to them. Running it again with the
same organization leaves the files unchanged.

Examples:
  landingkit customize --name code-x-app --display-name "Code X App"
  landingkit customize --name acme --email hello@acme.io --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			p := pf.apply(cfg.Organization)
			cfg.Organization = p

			paths := cfg.Paths
			res, err := customize.Run(paths.Resolve(paths.LandingPage), paths.Resolve(paths.Readme), p)
			if err != nil {
				return err
			}

			var guides []string
			if !skipDocs {
				guides, err = docs.WriteGuides(paths.Root, docs.FromConfig(cfg, time.Now()))
				if err != nil {
					return err
				}
			}

			if opts.jsonOutput {
				return output.JSON(map[string]interface{}{
					"result":    res,
					"guides":    guides,
					"pages_url": p.PagesURL(),
				})
			}

			printReport(res.LandingPage)
			if res.ReadmeSkipped {
				output.Warn("README not found, skipped")
			} else if res.Readme != nil {
				printReport(*res.Readme)
			}
			for _, g := range guides {
				output.Success("Wrote %s", g)
			}

			output.Print("")
			output.Info("Next steps:")
			output.Print("  1. Create the repository %s", p.RepoURL())
			output.Print("  2. Push the landing page and enable GitHub Pages")
			output.Print("  3. Your landing page will be live at %s", p.PagesURL())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipDocs, "skip-docs", false, "Do not write deployment guides")
	pf.bind(cmd)
	return cmd
}

func printReport(r customize.Report) {
	switch {
	case r.Changed:
		output.Success("Updated %s (%d/%d rules applied)", r.Path, r.Matched(), len(r.Rules))
	default:
		output.Info("%s already up to date", r.Path)
	}
	for _, rr := range r.Rules {
		switch {
		case rr.Skipped:
			output.Debug("%s: already applied", rr.Name)
		case rr.Matches == 0:
			output.Warn("%s: marker not found", rr.Name)
		default:
			output.Debug("%s: %d replacement(s)", rr.Name, rr.Matches)
		}
	}
}
