// Package httputil provides HTTP utilities shared by the API server and
// the model provider clients.
//
// # Overview
//
// This package provides infrastructure used on both sides of the wire:
//
//   - [RespondJSON], [RespondError]: uniform JSON responses for API handlers
//   - [DecodeJSON]: request body decoding with a size cap
//   - [RequestLogger]: structured request logging middleware
//   - [Cache]: file-based caching of JSON-marshalable values
//   - [Retry]: automatic retry with exponential backoff
//
// # Responses
//
// Handlers write every payload through [RespondJSON] so content type and
// encoding stay uniform. Failures go through [RespondError], which maps
// application error codes to HTTP statuses and emits a stable envelope:
//
//	{"error": {"code": "TEMPLATE_NOT_FOUND", "message": "no template named boardroom"}}
//
// # Middleware
//
// [RequestLogger] logs one line per request (method, path, status, bytes,
// duration) through the shared structured logger:
//
//	r := chi.NewRouter()
//	r.Use(httputil.RequestLogger(logger))
//
// # Caching
//
// [Cache] stores JSON-marshalable values in the filesystem
// (~/.cache/pptgen/) with configurable TTL. The CLI keeps template
// analyses warm between runs so repeated plans skip the geometry pass.
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	analyses := cache.Namespace("analysis:")
//	var a template.Analysis
//	ok, err := analyses.Get("boardroom", &a)
//
// Cache keys should be namespaced by data kind to avoid collisions.
//
// # Retry
//
// [Retry] wraps model API calls with automatic retry for transient
// failures (network errors, 5xx responses, rate limits). The delay
// doubles after each failed attempt:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return callModel()
//	})
//
// Only errors wrapped in [RetryableError] are retried; validation errors
// fail immediately.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/pptgen/
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `pptgen cache clear` or by deleting the
// cache directory.
package httputil
