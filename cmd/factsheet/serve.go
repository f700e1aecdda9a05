package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/fundlens/factsheet/internal/api"
	"github.com/fundlens/factsheet/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parser over HTTP",
	Long: `Starts an HTTP server exposing the parser:

  GET  /health     liveness check
  POST /api/parse  multipart upload (field "file"), returns the JSON record

Configuration is read from the environment (PORT, MAX_UPLOAD_BYTES,
HEADING_THRESHOLD, SPLIT_THRESHOLD).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		cfg := config.Load()

		srv := api.NewServer(log, cfg)
		log.Info("starting server", "port", cfg.Port)
		return http.ListenAndServe(":"+cfg.Port, srv)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
