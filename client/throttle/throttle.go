package throttle

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/adamwoolhether/netreq/internal/callid"
)

// throttle is an http.RoundTripper, using the time/rate token
// bucket limiter to restrict outbound calls.
type throttle struct {
	limiter *rate.Limiter
	cfg     Config
	next    http.RoundTripper
	logFn   func() *zap.Logger
}

// NewRoundTripper returns an http.RoundTripper that throttles outbound
// requests through next. logFn resolves the logger at request time, so
// it may be swapped after construction; a nil logFn or nil logger
// disables throttle logging.
func NewRoundTripper(cfg Config, next http.RoundTripper, logFn func() *zap.Logger) (http.RoundTripper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if next == nil {
		next = http.DefaultTransport
	}
	if logFn == nil {
		logFn = func() *zap.Logger { return nil }
	}

	t := &throttle{
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		cfg:     cfg,
		next:    next,
		logFn:   logFn,
	}

	return t, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	reservation := t.limiter.Reserve()
	if !reservation.OK() {
		return nil, fmt.Errorf("%w: burst %d exceeded", ErrWaitingFailed, t.cfg.Burst)
	}

	if delay := reservation.Delay(); delay > 0 {
		log := t.logger(r)
		log.Info("throttle tokens exhausted", zap.Duration("delay", delay))

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			log.Info("throttle wait complete", zap.Duration("waited", delay))
		case <-ctx.Done():
			reservation.Cancel()
			return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, ctx.Err())
		}
	}

	if err := ctx.Err(); err != nil { // Check context hasn't expired again.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}

// logger returns the resolved logger tagged with the request's call ID,
// or a no-op logger.
func (t *throttle) logger(r *http.Request) *zap.Logger {
	log := t.logFn()
	if log == nil {
		return zap.NewNop()
	}

	return log.With(
		zap.String("call_id", callid.From(r.Context())),
		zap.Int("rate", t.cfg.RPS),
		zap.Int("burst", t.cfg.Burst),
		zap.String("path", r.URL.Path),
	)
}
