// Package upstream implements the HTTP client for the recruitment platform
// API that the back office administers. The API is JSON over HTTP with a
// POST-for-everything convention and a uniform {data, error} envelope;
// transport success with a non-"success" envelope code is an application
// failure and the two are reported as distinct error codes.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hirebridge/backoffice/internal/domain"
)

// codeSuccess is the envelope code the upstream API uses for success.
const codeSuccess = "success"

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 8 << 20

type tokenKey struct{}

// WithToken returns a context carrying the bearer token attached to every
// outgoing request made with it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token placed by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// Client is the single transport wrapper for the upstream API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client for the given base URL. A zero timeout falls
// back to 15 seconds. A nil logger falls back to slog.Default.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error envelopeError   `json:"error"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// post sends one upstream call and decodes the envelope's data into out.
// body may be nil for endpoints without parameters; out may be nil for
// endpoints whose data is discarded.
//
// Error taxonomy: a failed transport (dial, timeout, unreadable or
// non-envelope response) yields CodeUnavailable; an envelope with a code
// other than "success" yields CodeUpstream carrying the upstream message.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	if body == nil {
		body = struct{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "encode request", err)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream unreachable",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return domain.NewAppError(domain.CodeUnavailable, "cannot reach upstream service", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.NewAppError(domain.CodeUnavailable, "read upstream response", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Warn("upstream returned non-envelope response",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return domain.NewAppError(domain.CodeUnavailable,
			fmt.Sprintf("unexpected upstream response (status %d)", resp.StatusCode), err)
	}

	c.logger.Debug("upstream call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("code", env.Error.Code),
		slog.Duration("latency", time.Since(start)),
	)

	if env.Error.Code != codeSuccess {
		return appErrorFor(env.Error, resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return domain.NewAppError(domain.CodeUnavailable, "decode upstream data", err)
		}
	}
	return nil
}

// appErrorFor maps an upstream envelope error to an AppError. A 401 means
// the stored bearer token is no longer accepted; everything else surfaces
// the upstream message when present.
func appErrorFor(e envelopeError, status int) error {
	if status == http.StatusUnauthorized {
		return domain.NewAppError(domain.CodeUnauthorized, "upstream session expired", nil)
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "upstream request failed"
	}
	return domain.NewAppError(domain.CodeUpstream, msg, nil)
}

// pageData is the wire shape of every upstream list endpoint.
type pageData[T any] struct {
	Items      []T      `json:"items"`
	Pagination pageMeta `json:"pagination"`
}

type pageMeta struct {
	TotalCount int `json:"totalCount"`
	TotalPage  int `json:"totalPage"`
}

// getPage performs a paginated list call and converts the wire shape to a
// domain page.
func getPage[T any](ctx context.Context, c *Client, path string, q domain.PageQuery) (*domain.Page[T], error) {
	var data pageData[T]
	if err := c.post(ctx, path, queryBody(q), &data); err != nil {
		return nil, err
	}
	if data.Items == nil {
		data.Items = []T{}
	}
	return &domain.Page[T]{
		Items:      data.Items,
		TotalCount: data.Pagination.TotalCount,
		TotalPage:  data.Pagination.TotalPage,
	}, nil
}

// queryBody flattens a PageQuery into the request body the upstream list
// endpoints expect. Empty keyword and target fields are omitted; filters
// ride along as top-level fields.
func queryBody(q domain.PageQuery) map[string]any {
	body := map[string]any{
		"page":     q.Page,
		"pageSize": q.PageSize,
	}
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		body["keyword"] = kw
	}
	if q.TargetType != "" {
		body["targetType"] = q.TargetType
	}
	if q.TargetUUID != "" {
		body["targetUuid"] = q.TargetUUID
	}
	for k, v := range q.Filters {
		if _, reserved := body[k]; !reserved {
			body[k] = v
		}
	}
	return body
}
