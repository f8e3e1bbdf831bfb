package cli

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/docs"
	"github.com/pandeptwidyaop/landing-kit/internal/imagebuild"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
	"github.com/pandeptwidyaop/landing-kit/internal/packager"
	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

func newImageCmd(opts *globalOptions) *cobra.Command {
	var tags []string
	var noCache bool
	var skipPackage bool

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Build the container image from the docker package",
		Long: `Stage the docker target and build it into an image with the local Docker
daemon. Use --skip-package to build from an existing build/docker directory.

Examples:
  landingkit image
  landingkit image --tag acme/landing:latest --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if !skipPackage {
				targets, err := packager.Select(packager.Targets(cfg), []string{packager.TargetDocker})
				if err != nil {
					return err
				}
				res, err := packager.NewBuilder(cfg).Build(targets[0])
				if err != nil {
					return err
				}
				if slices.Contains(res.Skipped, "landingkit") {
					return errors.New("docker package has no landingkit binary; set packaging.binary_path to a linux build")
				}
				output.Info("Packaged %s", res.Archive)
			}

			if len(tags) == 0 {
				tags = []string{cfg.Docker.ImageTag}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			var progress io.Writer = os.Stdout
			if opts.jsonOutput {
				progress = io.Discard
			}

			builder := imagebuild.NewBuilder()
			res, err := builder.Build(ctx, imagebuild.Options{
				ContextDir: filepath.Join(cfg.Paths.Resolve(cfg.Paths.BuildDir), packager.TargetDocker),
				Dockerfile: docs.Dockerfile,
				Tags:       tags,
				Labels:     imageLabels(cfg.Organization.Normalize().DisplayName, cfg.Packaging.Version),
				NoCache:    noCache,
			}, progress)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return output.JSON(res)
			}
			output.Success("Built image %v in %s", res.Tags, res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Image tag (repeatable, defaults to docker.image_tag)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Do not use the build cache")
	cmd.Flags().BoolVar(&skipPackage, "skip-package", false, "Build from the existing staging directory")
	return cmd
}

func imageLabels(org, pkgVersion string) map[string]string {
	labels := map[string]string{
		"org.opencontainers.image.title":   "Access Shield Landing Page",
		"org.opencontainers.image.version": pkgVersion,
		"org.opencontainers.image.created": time.Now().UTC().Format(time.RFC3339),
		"io.landingkit.tool.version":       version.Version,
	}
	if org != "" {
		labels["org.opencontainers.image.vendor"] = org
	}
	return labels
}
