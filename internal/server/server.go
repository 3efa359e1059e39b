package server

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/planwise/retirement-planner/internal/calculation"
)

// Server exposes the calculation engine as JSON-over-HTTP endpoints. It is a
// plain numeric-in / structured-numeric-out surface; rendering is the
// caller's concern.
type Server struct {
	engine *calculation.Engine
	logger *zap.Logger
}

// New creates a server around the given engine. A nil logger falls back to a
// no-op logger.
func New(engine *calculation.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger}
}

// Handler routes a request to the matching calculation endpoint.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	switch string(ctx.Path()) {
	case "/v1/withdrawal":
		s.handleWithdrawal(ctx)
	case "/v1/depletion":
		s.handleDepletion(ctx)
	case "/v1/sip":
		s.handleSIP(ctx)
	case "/v1/cashflow":
		s.handleCashflow(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "unknown endpoint")
	}
}

// ListenAndServe blocks serving the calculation endpoints on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("retirement planner listening", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handler)
}
