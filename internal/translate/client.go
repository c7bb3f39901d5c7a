package translate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
)

// DefaultEndpoint is where the rain translator server listens by default.
const DefaultEndpoint = "http://localhost:5001/api/translate"

var errMalformed = errors.New("malformed JSON response")

// Translator turns submitted text into its translation.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Client talks to the translation endpoint over HTTP. Requests carry no
// timeout of their own; they end when the server answers or ctx is done.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient returns a Client posting to endpoint. An empty endpoint selects
// DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the translate URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type translateRequest struct {
	Text string `json:"text"`
}

// Translate posts text and returns the server's output. Errors are either
// *APIError or *NetworkError.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	body, err := sonic.Marshal(translateRequest{Text: text})
	if err != nil {
		return "", &NetworkError{Cause: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &NetworkError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return "", err
	}

	// The status code is not consulted: the server reports rejections as
	// 4xx/5xx with a success=false body.
	if gjson.GetBytes(raw, "success").Bool() {
		return gjson.GetBytes(raw, "output").String(), nil
	}
	return "", &APIError{Message: gjson.GetBytes(raw, "error").String()}
}

// Health is the server's answer to a health probe.
type Health struct {
	Status          string
	ModelAvailable  bool
	TimestampMillis int64
}

// Healthy reports whether the server is up and able to translate.
func (h Health) Healthy() bool {
	return h.Status == "healthy" && h.ModelAvailable
}

// HealthEndpoint returns the health URL that sits next to the translate
// endpoint, e.g. /api/translate -> /api/health.
func (c *Client) HealthEndpoint() string {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return c.endpoint
	}
	u.Path = path.Join(path.Dir(u.Path), "health")
	u.RawQuery = ""
	return u.String()
}

// Health probes the server's health endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.HealthEndpoint(), nil)
	if err != nil {
		return Health{}, &NetworkError{Cause: err}
	}

	raw, err := c.do(req)
	if err != nil {
		return Health{}, err
	}

	res := gjson.ParseBytes(raw)
	return Health{
		Status:          res.Get("status").String(),
		ModelAvailable:  res.Get("chatgpt_available").Bool(),
		TimestampMillis: res.Get("timestamp").Int(),
	}, nil
}

// do sends req and returns the body once it is known to be a JSON object.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Cause: fmt.Errorf("read response: %w", err)}
	}
	// Both endpoints answer with an object; null, arrays and bare scalars are
	// as unusable as invalid JSON.
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, &NetworkError{Cause: fmt.Errorf("%w (status %d)", errMalformed, resp.StatusCode)}
	}
	return raw, nil
}
