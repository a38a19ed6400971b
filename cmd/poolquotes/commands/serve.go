package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"poolquotes/internal/app"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves every page, the sitemap and the lead form over HTTP.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, renderer, err := loadRenderer()
		if err != nil {
			return err
		}

		var leads app.LeadStore = app.LogLeadStore{}
		if cfg.DSN != "" {
			db, err := app.NewDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.PingContext(cmd.Context()); err != nil {
				return err
			}
			if err := app.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			leads = app.NewMySQLLeadStore(db)
		} else {
			log.Printf("no database configured, leads will only be logged")
		}

		srv := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      app.NewServer(renderer, leads),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		shutdownCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("poolquotes listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("listen: %v", err)
			}
		}()

		<-shutdownCtx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
		return nil
	},
}
