package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/kimberlabs/staking-ledger/internal/config"
	"github.com/kimberlabs/staking-ledger/internal/observability/metrics"
	"github.com/kimberlabs/staking-ledger/internal/observability/tracing"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.ServerConfig, service LedgerService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      NewRouter(cfg, NewHandler(service)),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func NewRouter(cfg *config.ServerConfig, h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(tracing.Middleware)
	r.Use(metricsMiddleware)

	r.Get("/healthcheck", h.wrap(h.Healthcheck))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/stake", h.wrap(h.Stake))
		r.Post("/redeem", h.wrap(h.Redeem))
		r.Post("/cooldown", h.wrap(h.Cooldown))
		r.Post("/claim", h.wrap(h.ClaimRewards))
		r.Post("/transfer", h.wrap(h.Transfer))
		r.Post("/transfer-from", h.wrap(h.TransferFrom))
		r.Post("/approve", h.wrap(h.Approve))
		r.Post("/permit", h.wrap(h.Permit))
		r.Post("/assets/configure", h.wrap(h.ConfigureAssets))

		r.Get("/ledger", h.wrap(h.GetLedger))
		r.Get("/accounts/{address}", h.wrap(h.GetAccount))
		r.Get("/allowances/{owner}/{spender}", h.wrap(h.GetAllowance))
		r.Get("/events", h.wrap(h.GetEvents))
		r.Get("/tokens/{token}/balances/{holder}", h.wrap(h.GetTokenBalance))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", CallerHeader, tracing.TraceIDHeader},
		ExposedHeaders: []string{tracing.TraceIDHeader},
	})
	return c.Handler(r)
}

// metricsMiddleware labels request durations with the matched route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observe := metrics.StartHttpRequestDurationTimer(r.Method)
		next.ServeHTTP(ww, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observe(path, status)
	})
}

func (s *Server) Start() error {
	log.Info().Str("addr", s.httpServer.Addr).Msg("Starting api server")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
