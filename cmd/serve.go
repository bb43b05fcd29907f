package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/quartzsec/rubric/internal/contract"
	"github.com/quartzsec/rubric/internal/httpapi"
	"github.com/spf13/cobra"
)

// serveCmd runs the scoring HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scoring HTTP server.",
	Long: `Serve the scoring pipelines over HTTP.

Endpoints:
  POST /score/control  Score control records (single record or {items: [...]})
  POST /score/et       Score evidence task records (single record or {items: [...]})
  POST /score/batch    Score raw string rows with per-row error isolation
  GET  /healthz        Liveness probe

Weight and threshold overrides from the config file apply to every request.

Examples:
  rubric serve
  rubric serve --addr :9090`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		server := httpapi.NewServer(cfg.HTTPAddr, cfg.Rubric)
		fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			contract.LogFatal("HTTP server stopped", err)
		}
	},
}
