package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/docs"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
)

func newDocsCmd(opts *globalOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "docs [documents...]",
		Short: "Write deployment guides and container files",
		Long: `Write the named documents, or the deployment guides when none are named.

Documents:
  DEPLOYMENT_INSTRUCTIONS.md  DEPLOYMENT_GUIDE.md  GITHUB_COMMANDS.md
  Dockerfile  docker-compose.yml  run.sh

Examples:
  landingkit docs
  landingkit docs Dockerfile docker-compose.yml --dir deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Paths.Root
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = docs.Guides
			}

			data := docs.FromConfig(cfg, time.Now())
			written := make([]string, 0, len(names))
			for _, name := range names {
				path, err := docs.Write(dir, name, data)
				if err != nil {
					return err
				}
				written = append(written, path)
			}

			if opts.jsonOutput {
				return output.JSON(map[string][]string{"written": written})
			}
			for _, path := range written {
				output.Success("Wrote %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (defaults to paths.root)")
	return cmd
}
