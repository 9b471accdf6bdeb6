package httputil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestWriteJSON(t *testing.T) {
	var ctx fasthttp.RequestCtx

	WriteJSON(&ctx, map[string]string{"status": "ok"}, fasthttp.StatusCreated)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	var ctx fasthttp.RequestCtx

	WriteJSON(&ctx, math.Inf(1), fasthttp.StatusOK)

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
}

func TestWriteHealthResponse(t *testing.T) {
	var healthy, unhealthy fasthttp.RequestCtx

	WriteHealthResponse(&healthy, struct{}{}, true)
	WriteHealthResponse(&unhealthy, struct{}{}, false)

	assert.Equal(t, fasthttp.StatusOK, healthy.Response.StatusCode())
	assert.Equal(t, fasthttp.StatusServiceUnavailable, unhealthy.Response.StatusCode())
}
