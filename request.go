package webhdfs

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Verb selects the HTTP method for an execution.
type Verb int

const (
	// Get issues a GET request.
	Get Verb = iota
	// Put issues a PUT request.
	Put
	// Post issues a POST request.
	Post
	// Delete issues a DELETE request.
	Delete
)

// String returns the HTTP method name.
func (v Verb) String() string {
	switch v {
	case Get:
		return "GET"
	case Put:
		return "PUT"
	case Post:
		return "POST"
	case Delete:
		return "DELETE"
	default:
		return "GET"
	}
}

// Request is the context for one logical WebHDFS operation. Its buffer
// holds the URL under construction before execution and the response body
// after; the two uses never overlap. A Request is single-shot: open,
// mutate, execute once, decode, close. Not safe for concurrent use.
type Request struct {
	cfg      Config
	buf      bytes.Buffer
	upload   UploadSource
	headers  map[string]string
	status   int
	executed bool
	closed   bool
	logger   zerolog.Logger
}

// Option configures a Request at open time.
type Option func(*Request)

// WithLogger sets the diagnostics sink for the request. The default
// logger writes to stderr.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Request) { r.logger = l }
}

// Open creates a request context bound to an absolute HDFS path and builds
// the base URL: scheme, host, port, the /webhdfs/v1 prefix, the path, and
// the user.name and delegation query parameters when configured. Callers
// append operation parameters with SetArgs before executing.
func Open(cfg Config, path string, opts ...Option) *Request {
	r := &Request{
		cfg:    cfg,
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	// Callers always pass an absolute path; exactly one leading
	// separator is stripped.
	path = strings.TrimPrefix(path, "/")

	fmt.Fprintf(&r.buf, "%s://%s:%d/webhdfs/v1/%s?", scheme, cfg.Host, cfg.Port, path)
	if cfg.User != "" {
		fmt.Fprintf(&r.buf, "user.name=%s&", cfg.User)
	}
	if cfg.Token != "" {
		fmt.Fprintf(&r.buf, "delegation=%s&", cfg.Token)
	}
	return r
}

// Close releases the request's buffer. The decoded JSON tree, if any,
// stays valid after Close.
func (r *Request) Close() {
	r.buf = bytes.Buffer{}
	r.upload = nil
	r.headers = nil
	r.closed = true
}

// SetArgs appends caller-formatted query parameters to the URL under
// construction. The fragment should be of the form "key=value&...";
// a trailing "&" is tolerated by WebHDFS servers.
func (r *Request) SetArgs(format string, args ...any) {
	fmt.Fprintf(&r.buf, format, args...)
}

// SetArg appends a single query-escaped key=value pair.
func (r *Request) SetArg(key, value string) {
	fmt.Fprintf(&r.buf, "%s=%s&", url.QueryEscape(key), url.QueryEscape(value))
}

// SetHeader attaches an extra header to every execution phase.
func (r *Request) SetHeader(key, value string) {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
}

// SetUpload registers the pull-based body source, switching the execution
// to the two-phase redirect protocol.
func (r *Request) SetUpload(src UploadSource) {
	r.upload = src
}

// StatusCode returns the last observed HTTP status, or 0 before execution
// completes.
func (r *Request) StatusCode() int {
	return r.status
}

// Body returns the accumulated response bytes. The slice aliases the
// request's buffer and is invalidated by Close.
func (r *Request) Body() []byte {
	return r.buf.Bytes()
}
