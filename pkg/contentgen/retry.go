package contentgen

import (
	"context"
	"time"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	"github.com/nattu22/pptgenerator/pkg/httputil"
)

// WithRetry wraps a provider so transient generation failures are retried
// with exponential backoff. Generation requests are idempotent, so any
// GENERATION_FAILED error gets another attempt. Validation errors and
// context cancellation fail immediately.
func WithRetry(p Provider, attempts int, delay time.Duration) Provider {
	return &retryProvider{inner: p, attempts: attempts, delay: delay}
}

type retryProvider struct {
	inner    Provider
	attempts int
	delay    time.Duration
}

func (p *retryProvider) GenerateContent(ctx context.Context, req Request) (string, error) {
	var out string
	err := httputil.Retry(ctx, p.attempts, p.delay, func() error {
		var callErr error
		out, callErr = p.inner.GenerateContent(ctx, req)
		if callErr == nil {
			return nil
		}
		if ctx.Err() == nil && apperrors.Is(callErr, apperrors.ErrCodeGenerationFailed) {
			return &httputil.RetryableError{Err: callErr}
		}
		return callErr
	})
	return out, err
}
