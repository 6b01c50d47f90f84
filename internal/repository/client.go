package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"

	// listPageLimit is the page size used to walk remote collections
	listPageLimit = 100
)

type requestIDKey struct{}

// WithRequestID makes outgoing calls made with ctx reuse id as their request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// APIError is a non-2xx answer of the remote API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote api: %s (status %d)", e.Message, e.StatusCode)
}

// envelope mirrors response.Response with the data left undecoded
type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
}

// Client talks JSON to the users/roles API on behalf of one operator
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        logrus.FieldLogger

	mu    sync.RWMutex
	token string
}

// NewClient validates baseURL and builds a client with the given request timeout
func NewClient(baseURL string, timeout time.Duration, log logrus.FieldLogger) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid api base url: %q", baseURL)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// SetToken replaces the bearer token sent with every request
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = strings.TrimSpace(token)
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doJSON sends reqBody as JSON and decodes the envelope's data into out. path must be escaped.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody, out any) error {
	u := *c.baseURL
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	unescaped, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return errors.Wrapf(err, "invalid path %q", path)
	}
	u.Path = unescaped
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrap(err, "marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	requestID, ok := RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"request_id": requestID,
		"latency":    time.Since(start),
	}).Debug("remote api call")

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	var env envelope
	decodeErr := json.Unmarshal(respBody, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(env.Error)
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(respBody))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return errors.Wrap(decodeErr, "decode response envelope")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}
	return nil
}

// listAll walks the remote page/limit pagination and gathers every item under key
func listAll[T any](ctx context.Context, c *Client, path, key string) ([]T, error) {
	all := []T{}
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("limit", strconv.Itoa(listPageLimit))

		var data map[string]json.RawMessage
		if err := c.doJSON(ctx, http.MethodGet, path, q, nil, &data); err != nil {
			return nil, err
		}

		var items []T
		if raw, ok := data[key]; ok {
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, errors.Wrapf(err, "decode %s", key)
			}
		}
		var total int
		if raw, ok := data["total"]; ok {
			if err := json.Unmarshal(raw, &total); err != nil {
				return nil, errors.Wrap(err, "decode total")
			}
		}

		all = append(all, items...)
		if len(items) == 0 || len(all) >= total {
			return all, nil
		}
	}
}

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
