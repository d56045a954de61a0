// Package api exposes the impact calculator over HTTP with gin.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/greenloop/impactcalc/internal/config"
	"github.com/greenloop/impactcalc/internal/logging"
	"github.com/greenloop/impactcalc/internal/metrics"
)

const janitorInterval = time.Minute

// Server is the HTTP front end of the calculator.
type Server struct {
	cfg     config.ServerConfig
	logger  zerolog.Logger
	engine  *gin.Engine
	httpSrv *http.Server
	limiter *RateLimiter
	metrics *metrics.Recorder
}

// NewServer builds the gin engine and routes from cfg. The caller chooses
// gin's mode before calling.
func NewServer(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger = logging.ComponentLogger(logger, "api")
	s := &Server{
		cfg:    cfg.Server,
		logger: logger,
		engine: gin.New(),
	}

	if err := s.engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("setting trusted proxies: %w", err)
	}
	s.engine.HandleMethodNotAllowed = true

	var recorder CalculationRecorder
	if cfg.Metrics.Enabled {
		s.metrics = metrics.New()
		recorder = s.metrics
	}

	s.engine.Use(RequestID(logger), Recovery(), AccessLog())
	if s.metrics != nil {
		s.engine.Use(s.metrics.Middleware(cfg.Metrics.Path, "/healthz"))
		s.engine.GET(cfg.Metrics.Path, gin.WrapH(s.metrics.Handler()))
	}
	s.engine.GET("/healthz", Health)
	s.engine.NoRoute(NotFound)

	apiGroup := s.engine.Group("/api", BodyLimit(cfg.Server.MaxBodyBytes))
	if cfg.RateLimit.Enabled {
		var rejections RejectionRecorder
		if s.metrics != nil {
			rejections = s.metrics
		}
		s.limiter = NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rejections)
		apiGroup.Use(s.limiter.Middleware())
	}
	NewImpactHandler(recorder).RegisterRoutes(apiGroup)

	s.httpSrv = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Metrics returns the server's recorder, or nil when metrics are disabled.
func (s *Server) Metrics() *metrics.Recorder {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout. The rate limiter's
// janitor runs for the lifetime of the server.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Dur("timeout", s.cfg.ShutdownTimeout).Msg("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	if s.limiter != nil {
		g.Go(func() error {
			return s.limiter.RunJanitor(s.logger.WithContext(gctx), janitorInterval)
		})
	}

	err := g.Wait()
	if err == nil {
		s.logger.Info().Msg("http server stopped")
	}
	return err
}
