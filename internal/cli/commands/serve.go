package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidemark-labs/commentscan/internal/cli/config"
	"github.com/tidemark-labs/commentscan/internal/server"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extraction API over HTTP",
		Long: `Start an HTTP server exposing comment extraction as a JSON API:

  POST /api/extract    {"code": ..., "language": ...}
  POST /api/guess      {"code": ...}
  GET  /api/languages`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetConfig(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			listen := addr
			if listen == "" {
				listen = cfg.Addr
			}

			srv := &http.Server{
				Addr:              listen,
				Handler:           server.New(logger).Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("listening", "addr", listen)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
