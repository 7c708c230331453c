package webhdfs

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/shangshujie365/webhdfs")

// Exec performs the request. The URL built since Open is consumed, the
// buffer is repurposed for response accumulation, and the final HTTP
// status is recorded on the context.
//
// With an upload source registered, execution follows the WebHDFS
// two-phase convention: phase 1 issues the request with no body and
// redirect-following disabled, reads the DataNode location from the
// Location header, and phase 2 delivers the body there with chunked
// transfer encoding, pulling from the upload source until it reports end
// of input. Without an upload source a single request is issued and
// redirects are followed transparently.
func (r *Request) Exec(ctx context.Context, verb Verb) error {
	if r.closed {
		return newStateError("request already closed")
	}
	if r.executed {
		return newStateError("request already executed; open a new one")
	}
	r.executed = true

	// The URL is consumed here; from now on the buffer holds response bytes.
	url := r.buf.String()
	r.buf.Reset()

	logger := r.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", verb.String()).
		Logger()

	ctx, span := tracer.Start(ctx, "webhdfs.exec",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", verb.String()),
			attribute.String("url.full", url),
		))
	defer span.End()

	client, err := r.newHTTPClient()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer client.CloseIdleConnections()

	// The first call of an upload must observe the redirect target rather
	// than follow it.
	if r.upload != nil {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	target := url
	if r.upload != nil {
		location, err := r.fetchRedirect(ctx, client, verb, url, logger)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		target = location
	}

	if err := r.perform(ctx, client, verb, target, logger); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("http.status_code", r.status))
	return nil
}

// fetchRedirect runs phase 1 of an upload: the bodyless request whose
// response names the DataNode that will take the data. A transport failure
// or a missing Location header aborts the execution; carrying an empty
// target into phase 2 would only defer the same failure.
func (r *Request) fetchRedirect(ctx context.Context, client *http.Client, verb Verb, url string, logger zerolog.Logger) (string, error) {
	logger.Debug().Str("url", url).Msg("fetching url")

	req, err := http.NewRequestWithContext(ctx, verb.String(), url, nil)
	if err != nil {
		return "", newTransportError(ErrCodeConnection, err, url)
	}
	r.applyHeaders(req)

	resp, err := client.Do(req)
	if err != nil {
		terr := classifyTransportErr(ctx, err, url)
		logger.Error().Err(err).Str("url", url).Msg("redirect request failed")
		return "", terr
	}
	// The write sink is active for both phases; phase-1 bytes are
	// discarded when the buffer is cleared before phase 2.
	_, _ = io.Copy(&r.buf, resp.Body)
	_ = resp.Body.Close()

	location := resp.Header.Get("Location")
	if location == "" {
		logger.Error().Str("url", url).Int("status", resp.StatusCode).Msg("no redirect location")
		return "", newRedirectError(url)
	}
	return location, nil
}

// perform runs the final request phase against target and accumulates the
// response body into the request's buffer.
func (r *Request) perform(ctx context.Context, client *http.Client, verb Verb, target string, logger zerolog.Logger) error {
	logger.Debug().Str("url", target).Msg("fetching url")

	var body io.Reader
	if r.upload != nil {
		body = &sourceReader{src: r.upload}
	}

	req, err := http.NewRequestWithContext(ctx, verb.String(), target, body)
	if err != nil {
		return newTransportError(ErrCodeConnection, err, target)
	}
	r.applyHeaders(req)

	if r.upload != nil {
		// The upload source is pull-based; body length is not known upfront.
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
	}

	// Remove any phase-1 leftovers before accumulating the real response.
	r.buf.Reset()

	resp, err := client.Do(req)
	if err != nil {
		return classifyTransportErr(ctx, err, target)
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := io.Copy(&r.buf, resp.Body); err != nil {
		r.status = resp.StatusCode
		return newTransportError(ErrCodeConnection, err, target)
	}

	r.status = resp.StatusCode
	return nil
}

// newHTTPClient builds the per-execution transport handle.
func (r *Request) newHTTPClient() (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if r.cfg.TLS != nil {
		tlsCfg, err := r.cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	client := &http.Client{Transport: transport}
	if r.cfg.Timeout > 0 {
		client.Timeout = r.cfg.Timeout
	}
	return client, nil
}

// applyHeaders copies caller-supplied headers onto an outgoing request.
func (r *Request) applyHeaders(req *http.Request) {
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
}

// classifyTransportErr converts a transport failure into a typed error
// carrying the attempted URL.
func classifyTransportErr(ctx context.Context, err error, url string) *Error {
	code := ErrCodeConnection
	// Caller cancellation is not a timeout; only an expired deadline is.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		code = ErrCodeTimeout
	} else {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			code = ErrCodeTimeout
		}
	}
	return newTransportError(code, err, url)
}
