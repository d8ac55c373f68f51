package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/postgen"
)

func serveCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor form and return posts as downloads",
		Long:  "Serve the editor form. Configuration is read from POSTGEN_* environment variables.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := postgen.ConfigFromEnv()
			if addr != "" {
				cfg.Addr = addr
			}
			app := postgen.New(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- app.Start() }()

			select {
			case err := <-errc:
				_ = app.Close()
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}

	c.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides POSTGEN_ADDR)")
	return c
}
