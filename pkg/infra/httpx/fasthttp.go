package httpx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 10 * time.Second
	DefaultMaxConnsPerHost     = 64
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 64 * 1024
)

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=http_client_mock.go --case=underscore --with-expecter
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientOptions struct {
	Timeout             time.Duration
	MaxConnsPerHost     int
	MaxResponseBodySize int
	UserAgent           string
}

type ClientOption func(*ClientOptions)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *ClientOptions) {
		o.Timeout = timeout
	}
}

func WithMaxConnsPerHost(max int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxConnsPerHost = max
	}
}

// WithMaxResponseBodySize caps the body read from the upstream; larger bodies fail the call.
func WithMaxResponseBodySize(size int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxResponseBodySize = size
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(o *ClientOptions) {
		o.UserAgent = userAgent
	}
}

// FastHTTPClient speaks net/http request and response types over a fasthttp client.
type FastHTTPClient struct {
	client    *fasthttp.Client
	userAgent string
}

func NewFastHTTPClient(opts ...ClientOption) *FastHTTPClient {
	options := &ClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &FastHTTPClient{
		client: &fasthttp.Client{
			MaxConnsPerHost:     options.MaxConnsPerHost,
			MaxIdleConnDuration: DefaultMaxIdleConnDuration,
			MaxResponseBodySize: options.MaxResponseBodySize,
			ReadTimeout:         options.Timeout,
			WriteTimeout:        options.Timeout,
		},
		userAgent: options.UserAgent,
	}
}

func (c *FastHTTPClient) Do(req *http.Request) (*http.Response, error) {
	fastReq := fasthttp.AcquireRequest()
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fastReq)
	defer fasthttp.ReleaseResponse(fastResp)

	if req.URL != nil {
		fastReq.SetRequestURI(req.URL.String())
	}
	fastReq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, value := range values {
			fastReq.Header.Add(key, value)
		}
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		fastReq.Header.SetUserAgent(c.userAgent)
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		_ = req.Body.Close()
		fastReq.SetBodyRaw(body)
	}

	if deadline, ok := req.Context().Deadline(); ok {
		if err := c.client.DoDeadline(fastReq, fastResp, deadline); err != nil {
			return nil, err
		}
	} else if err := c.client.Do(fastReq, fastResp); err != nil {
		return nil, err
	}

	// fastResp owns its body buffer, copy before release.
	bodyCopy := append([]byte(nil), fastResp.Body()...)
	statusCode := fastResp.StatusCode()

	headers := make(http.Header)
	fastResp.Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        headers,
		Body:          io.NopCloser(bytes.NewReader(bodyCopy)),
		ContentLength: int64(len(bodyCopy)),
		Request:       req,
	}, nil
}
