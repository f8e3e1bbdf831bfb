package cli

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pandeptwidyaop/landing-kit/internal/assets"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var force bool
	var pf profileFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Seed a workspace with the stock landing page, README and config",
		Long: `Write the stock landing page, README and a config file into the workspace.
Existing files are kept unless --force is given.

Examples:
  landingkit init
  landingkit init --root ./site --name code-x-app`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if pf.name != "" {
				cfg.Organization = pf.apply(cfg.Organization)
			}

			paths := cfg.Paths
			if err := os.MkdirAll(paths.Root, 0755); err != nil {
				return err
			}

			cfgData, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			files := []struct {
				path string
				data []byte
			}{
				{paths.Resolve(paths.LandingPage), []byte(assets.LandingPage())},
				{paths.Resolve(paths.Readme), []byte(assets.Readme())},
				{opts.configPath, cfgData},
			}

			written := []string{}
			kept := []string{}
			for _, f := range files {
				if !force {
					if _, err := os.Stat(f.path); err == nil {
						kept = append(kept, f.path)
						continue
					} else if !errors.Is(err, fs.ErrNotExist) {
						return err
					}
				}
				if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
					return err
				}
				if err := atomic.WriteFile(f.path, bytes.NewReader(f.data)); err != nil {
					return err
				}
				written = append(written, f.path)
			}

			if opts.jsonOutput {
				return output.JSON(map[string]interface{}{
					"written": written,
					"kept":    kept,
				})
			}
			for _, p := range written {
				output.Success("Wrote %s", p)
			}
			for _, p := range kept {
				output.Warn("Kept existing %s (use --force to overwrite)", p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")
	pf.bind(cmd)
	return cmd
}
