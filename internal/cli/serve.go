package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/greenloop/impactcalc/internal/api"
	"github.com/greenloop/impactcalc/internal/config"
)

// NewServeCmd creates the serve command that runs the HTTP API.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the impact calculator API over HTTP",
		Long: `Starts the HTTP API:

  POST /api/impact-calculator          calculate impact
  GET  /api/impact-calculator/options  accepted product types and frequencies
  GET  /healthz                        liveness
  GET  /metrics                        Prometheus metrics (when enabled)

The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  # Serve on the configured address
  impactcalc serve

  # Serve on a different port
  impactcalc serve --addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			return runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, cfg *config.Config) error {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := api.NewServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Ctx(ctx).
		Str("addr", cfg.Server.Addr).
		Bool("rate_limit", cfg.RateLimit.Enabled).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("starting impact calculator API")

	if err = srv.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
