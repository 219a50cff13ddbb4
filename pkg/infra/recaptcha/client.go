package recaptcha

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/domain/verification"
	"github.com/NeuralTrust/FormGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/FormGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	KeySuccess     = "success"
	KeyScore       = "score"
	KeyAction      = "action"
	KeyHostname    = "hostname"
	KeyChallengeTS = "challenge_ts"
	KeyErrorCodes  = "error-codes"
)

var ErrSiteVerifyUnavailable = errors.New("siteverify unavailable")

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Verify(ctx context.Context, token, remoteIP string) (verification.Response, error)
}

type ClientConfig struct {
	VerifyURL string
	SecretKey string
	Timeout   time.Duration
}

type siteVerifyClient struct {
	cfg     ClientConfig
	http    httpx.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
}

func NewClient(
	cfg ClientConfig,
	httpClient httpx.Client,
	breaker httpx.CircuitBreaker,
	logger *logrus.Logger,
) Client {
	return &siteVerifyClient{
		cfg:     cfg,
		http:    httpClient,
		breaker: breaker,
		logger:  logger,
	}
}

// Verify posts the token to the siteverify endpoint and returns the parsed
// verdict with the token added back under verification.TokenKey.
func (c *siteVerifyClient) Verify(ctx context.Context, token, remoteIP string) (verification.Response, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	form := url.Values{}
	form.Set("secret", c.cfg.SecretKey)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	var body []byte
	start := time.Now()
	err := c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.VerifyURL, strings.NewReader(form.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		body, err = io.ReadAll(resp.Body)
		return err
	})
	prometheus.SiteVerifyLatency.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		c.logger.WithError(err).Error("siteverify request failed")
		return nil, fmt.Errorf("%w: %v", ErrSiteVerifyUnavailable, err)
	}

	response, err := parseResponse(body)
	if err != nil {
		return nil, err
	}
	response[verification.TokenKey] = token
	return response, nil
}

func parseResponse(body []byte) (verification.Response, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse siteverify response: %w", err)
	}

	response := verification.Response{
		KeySuccess: v.GetBool(KeySuccess),
	}
	if v.Exists(KeyScore) {
		response[KeyScore] = v.GetFloat64(KeyScore)
	}
	if v.Exists(KeyAction) {
		response[KeyAction] = string(v.GetStringBytes(KeyAction))
	}
	if v.Exists(KeyHostname) {
		response[KeyHostname] = string(v.GetStringBytes(KeyHostname))
	}
	if v.Exists(KeyChallengeTS) {
		response[KeyChallengeTS] = string(v.GetStringBytes(KeyChallengeTS))
	}
	if codes := v.GetArray(KeyErrorCodes); codes != nil {
		out := make([]string, 0, len(codes))
		for _, code := range codes {
			out = append(out, string(code.GetStringBytes()))
		}
		response[KeyErrorCodes] = out
	}
	return response, nil
}
