package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/adamwoolhether/netreq/client/metrics"
	"github.com/adamwoolhether/netreq/client/throttle"
	"github.com/adamwoolhether/netreq/internal/callid"
	"github.com/adamwoolhether/netreq/request"
)

const tracerName = "github.com/adamwoolhether/netreq/client"

// Client issues requests over a single [http.Client] session.
// It is safe for concurrent use.
type Client struct {
	c          *http.Client
	logger     *zap.Logger
	tracer     trace.Tracer
	metrics    *metrics.Collector
	decodeOpts []DecodeOption
}

// Build creates a Client. Without options it uses a fresh [http.Client]
// on [http.DefaultTransport], a no-op logger and the global tracer
// provider.
func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	client := &Client{
		c:      &http.Client{},
		logger: zap.NewNop(),
	}

	if opts.client != nil {
		hc := *opts.client
		client.c = &hc
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	tp := opts.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	client.tracer = tp.Tracer(tracerName)

	if opts.registerer != nil {
		m, err := metrics.New(opts.registerer)
		if err != nil {
			return nil, fmt.Errorf("configuring metrics: %w", err)
		}
		client.metrics = m
	}

	if opts.useJSONNum {
		client.decodeOpts = append(client.decodeOpts, UseNumber())
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, transport, func() *zap.Logger { return client.logger })
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Fetch issues r and returns at once. The outcome is delivered through
// the returned [Future]. Cancelling ctx aborts the call.
//
// Fetch panics, before starting anything, if r can't be built into a
// valid request; see [request.Build].
func Fetch[T any](ctx context.Context, c *Client, r request.Request) *Future[T] {
	f := newFuture[T]()
	f.cancel = start(ctx, c, r, f.complete)

	return f
}

// Go issues r and returns at once, calling fn exactly once with the
// outcome from the fetch goroutine. The returned func aborts the call.
//
// Go panics under the same conditions as [Fetch].
func Go[T any](ctx context.Context, c *Client, r request.Request, fn func(Result[T])) context.CancelFunc {
	return start(ctx, c, r, fn)
}

func start[T any](ctx context.Context, c *Client, r request.Request, deliver func(Result[T])) context.CancelFunc {
	req := request.Build(ctx, r)

	ctx, cancel := context.WithCancel(req.Context())
	req = req.WithContext(ctx)

	go func() {
		defer cancel()
		deliver(exchange[T](c, req))
	}()

	return cancel
}

// exchange runs req and decodes the body into a T.
func exchange[T any](c *Client, req *http.Request) Result[T] {
	var v T
	decode := func(data []byte) error {
		var err error
		v, err = Decode[T](data, c.decodeOpts...)
		return err
	}

	if failure := c.exec(req, decode); failure != none {
		return Failure[T](failure)
	}

	return Success(v)
}

// exec wraps a single round trip with its call ID, span, log line and
// metrics, and reports how it failed, if at all.
func (c *Client) exec(req *http.Request, decode decodeFn) NetworkError {
	ctx, id := callid.New(req.Context())
	ctx, span := c.tracer.Start(ctx, "netreq.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("netreq.call_id", id),
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
		),
	)
	defer span.End()

	log := c.logger.With(
		zap.String("call_id", id),
		zap.String("method", req.Method),
		zap.Stringer("url", req.URL),
	)

	began := time.Now()
	status, failure, cause := c.roundTrip(req.WithContext(ctx), decode, log)
	elapsed := time.Since(began)

	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	span.SetAttributes(attribute.String("netreq.outcome", failure.label()))
	c.metrics.Observe(req.Method, failure.label(), elapsed)

	if failure != none {
		span.RecordError(cause)
		span.SetStatus(codes.Error, failure.Error())
		log.Error("fetch failed",
			zap.Int("status", status),
			zap.String("outcome", failure.label()),
			zap.Duration("elapsed", elapsed),
			zap.Error(cause),
		)
		return failure
	}

	log.Debug("fetch complete",
		zap.Int("status", status),
		zap.String("outcome", failure.label()),
		zap.Duration("elapsed", elapsed),
	)

	return none
}

// roundTrip performs the HTTP exchange and classifies the result. The
// status code is returned for diagnostics only.
func (c *Client) roundTrip(req *http.Request, decode decodeFn, log *zap.Logger) (int, NetworkError, error) {
	resp, err := c.c.Do(req)
	if err != nil {
		return 0, ErrCannotGetData, fmt.Errorf("exec http do: %w", err)
	}
	if resp == nil {
		return 0, ErrCannotGetData, errNoResponse
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				log.Error("failed to discard unused body", zap.Error(err))
			}
		}
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", zap.Error(err))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, ErrCannotGetData, fmt.Errorf("reading body: %w", err)
	}
	discardBody = false

	if len(data) == 0 {
		return resp.StatusCode, ErrCannotGetData, errEmptyBody
	}

	if err := decode(data); err != nil {
		return resp.StatusCode, ErrCannotDecode, fmt.Errorf("decoding body: %w", err)
	}

	return resp.StatusCode, none, nil
}
