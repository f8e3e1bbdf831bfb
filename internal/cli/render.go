package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/customize"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var pf profileFlags
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a fresh landing page from the built-in template",
		Long: `Render the landing page from a template with named slots instead of rewriting
existing markup. The result replaces the configured landing page unless --out
is given.

Examples:
  landingkit render --name code-x-app --tagline "Secure by default"
  landingkit render --name acme --out preview.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			p := pf.apply(cfg.Organization)

			path := out
			if path == "" {
				path = cfg.Paths.Resolve(cfg.Paths.LandingPage)
			}
			if err := customize.RenderFile(path, p, time.Now()); err != nil {
				return err
			}

			if opts.jsonOutput {
				return output.JSON(map[string]string{"path": path, "organization": p.DisplayName})
			}
			output.Success("Rendered landing page for %s to %s", p.DisplayName, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (defaults to paths.landing_page)")
	pf.bind(cmd)
	return cmd
}
