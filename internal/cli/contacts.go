package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/database"
	"github.com/pandeptwidyaop/landing-kit/internal/output"
	"github.com/pandeptwidyaop/landing-kit/internal/services"
)

func newContactsCmd(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List recent contact form submissions",
		Long: `Show the latest messages received through the landing page contact form,
newest first.

Examples:
  landingkit contacts
  landingkit contacts --limit 50 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			db, err := database.New(cfg.Paths.Resolve(cfg.Database.Path))
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()
			if err := db.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			contacts, err := services.NewEventService(db).RecentContacts(limit)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return output.JSON(contacts)
			}
			if len(contacts) == 0 {
				output.Info("No contact submissions yet")
				return nil
			}

			rows := make([][]string, 0, len(contacts))
			for _, ct := range contacts {
				rows = append(rows, []string{
					humanize.Time(ct.CreatedAt),
					dash(ct.Name),
					dash(ct.Email),
					dash(ct.Company),
					dash(preview(ct.Message, 40)),
				})
			}
			output.Table([]string{"RECEIVED", "NAME", "EMAIL", "COMPANY", "MESSAGE"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of submissions to show")
	return cmd
}

// preview shortens s to one line of at most n runes.
func preview(s string, n int) string {
	runes := []rune(s)
	for i, r := range runes {
		if r == '\n' {
			runes = append(runes[:i:i], []rune(" ...")...)
			break
		}
	}
	if len(runes) > n {
		return string(runes[:n-3]) + "..."
	}
	return string(runes)
}
