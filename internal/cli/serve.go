package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pandeptwidyaop/landing-kit/internal/database"
	"github.com/pandeptwidyaop/landing-kit/internal/imagebuild"
	"github.com/pandeptwidyaop/landing-kit/internal/router"
	"github.com/pandeptwidyaop/landing-kit/internal/services"
	"github.com/pandeptwidyaop/landing-kit/internal/version"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *globalOptions) *cobra.Command {
	var host string
	var port int
	var noDB bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page, download portal and API",
		Long: `Start the landing page server. Contact submissions and downloads are recorded
in SQLite unless --no-db is given.

Examples:
  landingkit serve
  landingkit serve --host 0.0.0.0 --port 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			if !opts.verbose {
				gin.SetMode(gin.ReleaseMode)
			}

			deps := router.Deps{Docker: imagebuild.NewBuilder()}

			if !noDB {
				db, err := database.New(cfg.Paths.Resolve(cfg.Database.Path))
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer func() {
					if err := db.Close(); err != nil {
						log.Printf("Error closing database: %v", err)
					}
				}()
				if err := db.Migrate(); err != nil {
					return fmt.Errorf("failed to run migrations: %w", err)
				}
				deps.Events = services.NewEventService(db)
			}

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           router.New(cfg, deps),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Landing Kit %s starting on %s", version.Version, addr)
				log.Printf("Access at: http://%s/", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Println("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
			log.Println("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides server.host)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (overrides server.port)")
	cmd.Flags().BoolVar(&noDB, "no-db", false, "Do not record contacts and downloads")
	return cmd
}
