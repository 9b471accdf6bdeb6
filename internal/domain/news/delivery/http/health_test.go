package http

import (
	"encoding/json"
	"testing"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type mockTransport struct {
	healthy bool
	name    string
}

func (m *mockTransport) Healthy() bool         { return m.healthy }
func (m *mockTransport) TransportName() string { return m.name }

func doHealth(t *testing.T, transport TransportChecker) (*fasthttp.RequestCtx, HealthResponse) {
	t.Helper()

	r := router.New()
	NewHealthHandler(transport, "inshorts", zerolog.Nop()).RegisterRoutes(r)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/health")
	r.Handler(&ctx)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &response))
	return &ctx, response
}

func TestHealthHandler_Healthy(t *testing.T) {
	ctx, response := doHealth(t, &mockTransport{healthy: true, name: "webhook"})

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, HealthStatusHealthy, response.Status)
	assert.Equal(t, "webhook", response.Transport)
	assert.Equal(t, "inshorts", response.Source)
	require.Len(t, response.Components, 1)
	assert.True(t, response.Components[0].Healthy)
	assert.Empty(t, response.Components[0].Message)
}

func TestHealthHandler_TransportDown(t *testing.T) {
	ctx, response := doHealth(t, &mockTransport{healthy: false, name: "polling"})

	assert.Equal(t, fasthttp.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Equal(t, HealthStatusUnhealthy, response.Status)
	assert.Equal(t, "polling", response.Transport)
	require.Len(t, response.Components, 1)
	assert.False(t, response.Components[0].Healthy)
	assert.NotEmpty(t, response.Components[0].Message)
}
