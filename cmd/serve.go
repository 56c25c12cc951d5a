package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/logger"
	"github.com/gridguard/landing/internal/server"
	"github.com/gridguard/landing/internal/session"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page",
	Long: `Starts the HTTP server for the landing page, its static assets, the
interaction session endpoint, the no-script notify fallback and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("watch") {
			cfg.WatchContent = serveWatch
		}

		log := newLogger(cfg)

		store, err := loadStore(cfg)
		if err != nil {
			return err
		}

		if cfg.WatchContent && store.Path() != "" {
			watcher, err := content.NewWatcher(store, log, nil)
			if err != nil {
				return fmt.Errorf("creating content watcher: %w", err)
			}
			if err := watcher.Start(); err != nil {
				return fmt.Errorf("watching %s: %w", store.Path(), err)
			}
			defer watcher.Stop()
		}

		sessions := session.NewHandler(store, session.Options{
			Reveal: cfg.RevealOptions(),
			Signup: cfg.SignupTimings(),
			Log:    log,
		}, cfg.AllowAllOrigins)

		srv := server.New(server.Config{
			Port:       cfg.Port,
			AllowAll:   cfg.AllowAllOrigins,
			CacheRules: cfg.CacheRules,
		}, store, sessions, log)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown", logger.Error(err))
			}
		}()

		log.Info("starting gridguard",
			slog.String("version", Version),
			slog.Int("port", cfg.Port),
			slog.String("content", contentSource(store)),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func contentSource(store *content.Store) string {
	if store.Path() == "" {
		return "built-in"
	}
	return store.Path()
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the content file when it changes")
	rootCmd.AddCommand(serveCmd)
}
