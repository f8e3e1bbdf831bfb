// Package cli implements the landingkit command line.
package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/config"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

type globalOptions struct {
	configPath string
	root       string
	jsonOutput bool
	verbose    bool
}

// NewRootCmd builds the landingkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "landingkit",
		Short: "Brand, package and serve the Access Shield landing page",
		Long: `landingkit customizes the Access Shield landing page for an organization,
packages it for static hosting, a standalone server or Docker, and serves it.

Typical flow:
  landingkit init
  landingkit customize --name code-x-app --display-name "Code X App"
  landingkit build
  landingkit serve`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(opts.verbose)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.root, "root", "", "Workspace directory (overrides paths.root)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(
		newInitCmd(opts),
		newCustomizeCmd(opts),
		newRenderCmd(opts),
		newDocsCmd(opts),
		newBuildCmd(opts),
		newImageCmd(opts),
		newServeCmd(opts),
		newServiceCmd(opts),
		newContactsCmd(opts),
		newVersionCmd(opts),
	)

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		output.Debug("Config %s not found, using defaults", o.configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	if o.root != "" {
		cfg.Paths.Root = o.root
	}
	output.Debug("Workspace root: %s", cfg.Paths.Root)
	return cfg, nil
}
