package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docview/internal/config"
	"github.com/ziadkadry99/docview/internal/site"
)

var (
	servePort    int
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation viewer over HTTP",
	Long: `Starts the documentation viewer: the page shell on /, a websocket navigation
session per open page on /ws, and a JSON API under /api. With a file system
source, changed documents are reloaded in every page showing them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViewer()
		if err != nil {
			return err
		}
		port := v.cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv := site.New(site.Options{
			Title:    v.cfg.Title,
			Port:     port,
			AllowAll: v.cfg.AllowAllOrigins,
			Expanded: v.cfg.Expanded,
		}, v.table, v.loader, v.renderer, v.log)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if v.cfg.Source == config.SourceFS && v.cfg.Watch && !serveNoWatch {
			w, err := site.NewWatcher(v.cfg.DocsRoot, v.log)
			if err != nil {
				return err
			}
			go func() {
				if err := w.Run(ctx, srv.DocumentChanged); err != nil {
					v.log.Error("watcher stopped", "error", err)
				}
			}()
			v.log.Info("watching for changes", "docs_root", v.cfg.DocsRoot)
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "docview %s serving %s at http://localhost:%d\n", Version, v.cfg.Title, port)

		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "disable live reload")
	rootCmd.AddCommand(serveCmd)
}
