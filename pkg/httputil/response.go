// Package httputil holds JSON response helpers for fasthttp handlers
package httputil

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

// WriteJSON writes data as a JSON response with status
func WriteJSON(ctx *fasthttp.RequestCtx, data any, status int) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)

	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBody([]byte(`{"error":"failed to marshal response"}`))
		return
	}

	ctx.SetBody(body)
}

// WriteHealthResponse writes a health check response
func WriteHealthResponse(ctx *fasthttp.RequestCtx, data any, healthy bool) {
	status := fasthttp.StatusOK
	if !healthy {
		status = fasthttp.StatusServiceUnavailable
	}
	WriteJSON(ctx, data, status)
}
