package cli

import (
	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/output"
	"github.com/pandeptwidyaop/landing-kit/internal/service"
)

func newServiceCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage the systemd unit for landingkit serve",
	}

	var user string
	install := &cobra.Command{
		Use:   "install",
		Short: "Install, enable and start the systemd unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			unit := service.DefaultConfig(cfg.Paths.Root, opts.configPath)
			if user != "" {
				unit.User = user
			}
			if err := service.Install(unit); err != nil {
				return err
			}
			output.Success("Installed %s", service.UnitPath)
			return nil
		},
	}
	install.Flags().StringVar(&user, "user", "", "User the service runs as (default root)")

	uninstall := &cobra.Command{
		Use:   "uninstall",
		Short: "Stop and remove the systemd unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := service.Uninstall(); err != nil {
				return err
			}
			output.Success("Removed %s", service.UnitPath)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the systemd unit state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := service.CurrentStatus()
			if opts.jsonOutput {
				return output.JSON(st)
			}
			output.Table([]string{"INSTALLED", "ENABLED", "ACTIVE", "SUB"}, [][]string{{
				yesNo(st.IsInstalled), yesNo(st.IsEnabled), dash(st.ActiveState), dash(st.SubState),
			}})
			return nil
		},
	}

	cmd.AddCommand(install, uninstall, status)
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
