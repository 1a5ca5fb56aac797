package gateway

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

	"studio-agenda/internal/infra"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxErrorBody = 4 << 10

var _ shared.BookingGateway = (*Client)(nil)

// Client calls the studio platform REST API on behalf of the authenticated student.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger, metrics *Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

func (c *Client) get(ctx context.Context, operation, path string) ([]byte, error) {
	return c.do(ctx, operation, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, operation, path string, body any) ([]byte, error) {
	return c.do(ctx, operation, http.MethodPost, path, body)
}

func (c *Client) delete(ctx context.Context, operation, path string) error {
	_, err := c.do(ctx, operation, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, operation, method, path string, body any) (data []byte, err error) {
	started := time.Now()
	defer func() { c.metrics.observe(operation, started, err) }()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindConflict, operation, 0, "encode request body", marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindNetwork, operation, 0, "build request", err)
	}
	c.addHeaders(ctx, req, body != nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindNetwork, operation, 0, "transport failure", err)
	}
	defer resp.Body.Close()

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindNetwork, operation, resp.StatusCode, "read response body", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		kind := kindForStatus(resp.StatusCode)
		return nil, infra.WrapGatewayErr(c.logger, kind, operation, resp.StatusCode, errorMessage(resp.StatusCode, data), nil)
	}
	return data, nil
}

func (c *Client) addHeaders(ctx context.Context, req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := shared.AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := shared.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
}

func (c *Client) decodeErr(operation string, err error) error {
	return infra.WrapGatewayErr(c.logger, infra.KindDecode, operation, 0, "decode response", err)
}

func kindForStatus(status int) infra.GatewayErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindAuth
	case status == http.StatusNotFound || status == http.StatusGone:
		return infra.KindNotFound
	case status == http.StatusConflict || status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return infra.KindConflict
	default:
		return infra.KindNetwork
	}
}

func errorMessage(status int, body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	var wire errorWire
	if err := json.Unmarshal(body, &wire); err == nil {
		if msg := wire.message(); msg != "" {
			return fmt.Sprintf("http %d: %s", status, msg)
		}
	}
	return fmt.Sprintf("http %d", status)
}
