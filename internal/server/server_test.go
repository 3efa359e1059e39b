package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/planwise/retirement-planner/internal/calculation"
	"github.com/planwise/retirement-planner/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(calculation.NewEngine(), nil)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	ctx.Request.SetBodyString(body)
	s.Handler(ctx)
	return ctx
}

func TestWithdrawalEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{"corpus":"10000000","annual_return_rate":"8","annual_inflation_rate":"6","horizon_months":360}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/withdrawal", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var result domain.WithdrawalPlanResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.True(t, result.SustainableMonthlyWithdrawal.IsPositive())
	assert.Len(t, result.Trajectory, 360)
}

func TestDepletionEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{"corpus":"10000000","annual_return_rate":"8","annual_inflation_rate":"6","initial_monthly_withdrawal":"80000"}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/depletion", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.DepletionResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	require.True(t, result.Depleted())
	assert.Positive(t, *result.DepletionMonth)
}

func TestSIPEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{"monthly_contribution":"50000","annual_return_rate":"12","annual_stepup_percent":"10","horizon_months":240}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/sip", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.StepUpSIPResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.True(t, result.FutureValue.GreaterThan(result.TotalInvested))
}

func TestCashflowEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{"schedule":["50000","-30000","60000"],"annual_discount_rate":"8"}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/cashflow", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.CashflowValuationResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Len(t, result.Trajectory, 3)
	assert.True(t, result.NetCashflow.Equal(result.TotalInflows.Sub(result.TotalOutflows)))
}

func TestValidationErrorsReturn400(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"non-positive corpus", "/v1/withdrawal", `{"corpus":"0","annual_return_rate":"8","annual_inflation_rate":"6","horizon_months":360}`},
		{"rate at -100", "/v1/withdrawal", `{"corpus":"1000000","annual_return_rate":"-100","annual_inflation_rate":"6","horizon_months":360}`},
		{"non-positive withdrawal", "/v1/depletion", `{"corpus":"1000000","annual_return_rate":"8","annual_inflation_rate":"6","initial_monthly_withdrawal":"0"}`},
		{"empty schedule", "/v1/cashflow", `{"schedule":[],"annual_discount_rate":"8"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(t, s, fasthttp.MethodPost, tt.path, tt.body)
			require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestMalformedBodyReturns400(t *testing.T) {
	s := newTestServer(t)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/v1/sip", `{"monthly_contribution":`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestRouting(t *testing.T) {
	s := newTestServer(t)

	ctx := doRequest(t, s, fasthttp.MethodGet, "/v1/withdrawal", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())

	ctx = doRequest(t, s, fasthttp.MethodPost, "/v1/unknown", "{}")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
