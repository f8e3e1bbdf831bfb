package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/output"
	"github.com/pandeptwidyaop/landing-kit/internal/packager"
)

func newBuildCmd(opts *globalOptions) *cobra.Command {
	var includeBinary bool

	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Package the landing page into deployment archives",
		Long: `Stage and zip the landing page for each deployment target. With no arguments
every target is built. A failing target does not stop the others.

Targets:
  static   GitHub Pages, Netlify, Vercel
  server   landingkit serve on a VPS
  docker   container image and compose file

Examples:
  landingkit build
  landingkit build docker --json`,
		ValidArgs: []string{packager.TargetStatic, packager.TargetServer, packager.TargetDocker},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("include-binary") {
				cfg.Packaging.IncludeBinary = includeBinary
			}

			targets, err := packager.Select(packager.Targets(cfg), args)
			if err != nil {
				return err
			}

			results, buildErr := packager.NewBuilder(cfg).BuildAll(targets)

			if opts.jsonOutput {
				if err := output.JSON(results); err != nil {
					return err
				}
				return buildErr
			}

			rows := make([][]string, 0, len(results))
			for _, res := range results {
				if res.Error != "" {
					rows = append(rows, []string{res.Target, "failed", "-", "-"})
					continue
				}
				rows = append(rows, []string{res.Target, res.Archive, output.Bytes(res.Size), fmt.Sprintf("%d", len(res.Entries))})
			}
			output.Table([]string{"TARGET", "ARCHIVE", "SIZE", "ENTRIES"}, rows)

			for _, res := range results {
				for _, s := range res.Skipped {
					output.Warn("%s: %s not found, skipped", res.Target, s)
				}
				if res.Checksum != "" {
					output.Debug("%s: %s", res.Target, res.Checksum)
				}
			}

			if buildErr != nil {
				return buildErr
			}
			output.Success("Built %d package(s)", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeBinary, "include-binary", false, "Bundle the landingkit binary in the server package")
	return cmd
}
