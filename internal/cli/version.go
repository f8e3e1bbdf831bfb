package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/output"
	"github.com/pandeptwidyaop/landing-kit/internal/upgrade"
	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

func newVersionCmd(opts *globalOptions) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check {
				if opts.jsonOutput {
					return output.JSON(version.Info())
				}
				output.Print("Landing Kit %s", version.Version)
				output.Print("Build Time: %s", version.BuildTime)
				output.Print("Git Commit: %s", version.GitCommit)
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			status, err := upgrade.NewChecker().Check(ctx)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return output.JSON(status)
			}

			output.Print("Current version: %s", status.Current)
			output.Print("Latest version:  %s", status.Latest)
			if status.UpdateAvailable {
				output.Warn("A newer release is available: %s", status.ReleaseURL)
				if status.AssetURL != "" {
					output.Info("Download: %s", status.AssetURL)
				}
			} else {
				output.Success("Already running the latest version")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
