package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/homepage/internal/server"
	"github.com/ziadkadry99/homepage/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the homepage, reloading the content on every request",
	Long: `Starts an HTTP server that renders the page from a fresh fetch of the
content document on every request and serves the static assets directory.
The last fetched document is available at /content.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		logger := newLogger(cfg, cmd.ErrOrStderr())

		renderer, err := newRenderer(cfg)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		f := newFetcher(cfg, logger)
		srv := server.New(server.Config{
			Port:      cfg.Server.Port,
			StaticDir: cfg.StaticDir,
			AllowAll:  cfg.Server.AllowAllOrigins,
		}, server.Site{
			Fetcher:     f,
			Renderer:    renderer,
			Store:       store.New(),
			Widgets:     newWidgets(cfg),
			NewDocument: documentFactory(cfg),
		}, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "homepage %s serving on http://localhost:%d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Content: %s\n", f.Source())
		fmt.Fprintf(os.Stderr, "  Assets: %s\n", cfg.StaticDir)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
