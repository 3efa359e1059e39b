package server

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/planwise/retirement-planner/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleWithdrawal(ctx *fasthttp.RequestCtx) {
	var input domain.WithdrawalPlanInput
	if !s.decode(ctx, &input) {
		return
	}
	result, err := s.engine.SustainableWithdrawal(input)
	if err != nil {
		s.writeCalcError(ctx, "withdrawal", err)
		return
	}
	s.writeJSON(ctx, result)
}

func (s *Server) handleDepletion(ctx *fasthttp.RequestCtx) {
	var input domain.DepletionInput
	if !s.decode(ctx, &input) {
		return
	}
	result, err := s.engine.DepletionDuration(input)
	if err != nil {
		s.writeCalcError(ctx, "depletion", err)
		return
	}
	s.writeJSON(ctx, result)
}

func (s *Server) handleSIP(ctx *fasthttp.RequestCtx) {
	var input domain.StepUpSIPInput
	if !s.decode(ctx, &input) {
		return
	}
	result, err := s.engine.StepUpFutureValue(input)
	if err != nil {
		s.writeCalcError(ctx, "sip", err)
		return
	}
	s.writeJSON(ctx, result)
}

func (s *Server) handleCashflow(ctx *fasthttp.RequestCtx) {
	var input domain.CashflowValuationInput
	if !s.decode(ctx, &input) {
		return
	}
	result, err := s.engine.ValueSchedule(input)
	if err != nil {
		s.writeCalcError(ctx, "cashflow", err)
		return
	}
	s.writeJSON(ctx, result)
}

func (s *Server) decode(ctx *fasthttp.RequestCtx, v interface{}) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeCalcError maps domain validation errors to 400 and everything else,
// which should not happen for in-memory calculations, to 500.
func (s *Server) writeCalcError(ctx *fasthttp.RequestCtx, endpoint string, err error) {
	var rateErr *domain.InvalidRateError
	var inputErr *domain.InvalidInputError
	var scheduleErr *domain.EmptyScheduleError
	if errors.As(err, &rateErr) || errors.As(err, &inputErr) || errors.As(err, &scheduleErr) {
		s.writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("calculation failed", zap.String("endpoint", endpoint), zap.Error(err))
	s.writeError(ctx, fasthttp.StatusInternalServerError, "calculation failed")
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(errorResponse{Error: message})
	ctx.SetBody(body)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("response encoding failed", zap.Error(err))
		s.writeError(ctx, fasthttp.StatusInternalServerError, "response encoding failed")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
