package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/logutil"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/afero"
)

// Client talks to the platform's private web API. It implements the uploader,
// location lookup and publisher used by the slideshow pipeline.
type Client struct {
	cfg  Config
	http *retryablehttp.Client
	fs   afero.Fs
	now  func() time.Time
}

// New builds a Client. Files to upload are read from fs.
func New(cfg Config, fs afero.Fs) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	rc.Logger = retryLogger{}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.CheckRetry = checkRetry

	return &Client{cfg: cfg, http: rc, fs: fs, now: time.Now}
}

// Name returns the provider identifier.
func (c *Client) Name() string { return providerName }

type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Do sends req and decodes the JSON response into out. HTTP errors become igpost.APIError;
// the response's own status field is left for the caller to interpret.
func (c *Client) Do(ctx context.Context, req igpost.APIRequest, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var (
		body        any
		contentType string
	)
	switch p := req.Payload.(type) {
	case nil:
	case []byte:
		body = p
		contentType = "application/octet-stream"
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", req.URI, err)
		}
		body = data
		contentType = "application/json"
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, c.cfg.BaseURL+req.URI, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", req.URI, err)
	}
	c.setDefaultHeaders(httpReq.Header)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	logutil.Debugf("api request: method=%s uri=%s", method, req.URI)
	if logutil.Verbose() {
		for k, v := range req.Headers {
			logutil.Debugf("api request header: %s=%s", k, v)
		}
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URI, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", req.URI, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var env statusEnvelope
		_ = json.Unmarshal(data, &env)
		if env.Message == "" && env.Status == "" {
			env.Message = strings.TrimSpace(string(data))
		}
		return igpost.APIError{Endpoint: req.URI, StatusCode: resp.StatusCode, Status: env.Status, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URI, err)
	}
	return nil
}

func (c *Client) setDefaultHeaders(h http.Header) {
	h.Set("User-Agent", c.cfg.UserAgent)
	h.Set("Accept", "*/*")
	h.Set("Cookie", fmt.Sprintf("sessionid=%s; csrftoken=%s", c.cfg.SessionID, c.cfg.CSRFToken))
	h.Set("X-CSRFToken", c.cfg.CSRFToken)
	if c.cfg.AppID != "" {
		h.Set("X-IG-App-ID", c.cfg.AppID)
	}
	if c.cfg.ASBDID != "" {
		h.Set("X-ASBD-ID", c.cfg.ASBDID)
	}
}

type noRetryKey struct{}

// withoutRetry marks ctx so requests made with it are sent at most once.
func withoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if once, _ := ctx.Value(noRetryKey{}).(bool); once {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// retryLogger routes retryablehttp's leveled logs through logutil.
type retryLogger struct{}

func (retryLogger) Error(msg string, keysAndValues ...any) {
	logutil.Logger().Error(msg, keysAndValues...)
}

func (retryLogger) Warn(msg string, keysAndValues ...any) {
	logutil.Logger().Warn(msg, keysAndValues...)
}

func (retryLogger) Info(msg string, keysAndValues ...any) {
	if !logutil.Verbose() {
		return
	}
	logutil.Logger().Debug(msg, keysAndValues...)
}

func (retryLogger) Debug(msg string, keysAndValues ...any) {
	if !logutil.Verbose() {
		return
	}
	logutil.Logger().Debug(msg, keysAndValues...)
}
