// SPDX-License-Identifier: MIT
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ManuGH/stash/internal/telemetry"
)

// recordSpan serves one request with an active span and returns the span
// attributes recorded while handling it.
func recordSpan(t *testing.T, h http.Handler, method, path, body string) ([]attribute.KeyValue, int) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "request")
	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	return spans[0].Attributes(), rec.Code
}

func TestSearchAnnotatesSpan(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/collections", `{"name":"texts"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, h, http.MethodPost, "/api/collections/texts/items", `{"item":"hello world"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	attrs, code := recordSpan(t, h, http.MethodGet, "/api/collections/texts/search?q=WORLD", "")
	require.Equal(t, http.StatusOK, code)

	assert.Contains(t, attrs, attribute.String(telemetry.SearchTermKey, "WORLD"))
	assert.Contains(t, attrs, attribute.Bool(telemetry.SearchHitKey, true))
}

func TestAddItemAnnotatesSpan(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/collections", `{"name":"fruits"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	attrs, code := recordSpan(t, h, http.MethodPost, "/api/collections/fruits/items", `{"item":"kiwi"}`)
	require.Equal(t, http.StatusCreated, code)

	assert.Contains(t, attrs, attribute.String(telemetry.CollectionNameKey, "fruits"))
	assert.Contains(t, attrs, attribute.Int(telemetry.CollectionItemsKey, 1))
}

func TestCreateDuplicateAnnotatesSpanError(t *testing.T) {
	_, h := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/api/collections", `{"name":"dup"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	attrs, code := recordSpan(t, h, http.MethodPost, "/api/collections", `{"name":"dup"}`)
	require.Equal(t, http.StatusConflict, code)

	assert.Contains(t, attrs, attribute.Bool(telemetry.ErrorKey, true))
	assert.Contains(t, attrs, attribute.String(telemetry.ErrorTypeKey, "duplicate_name"))
	assert.Contains(t, attrs, attribute.Int(telemetry.HTTPStatusCodeKey, http.StatusConflict))
}

func TestNotFoundAnnotatesSpanStatus(t *testing.T) {
	_, h := newTestServer(t)

	attrs, code := recordSpan(t, h, http.MethodGet, "/api/collections/nope", "")
	require.Equal(t, http.StatusNotFound, code)

	assert.Contains(t, attrs, attribute.Int(telemetry.HTTPStatusCodeKey, http.StatusNotFound))
	assert.Contains(t, attrs, attribute.String(telemetry.HTTPMethodKey, http.MethodGet))
}
