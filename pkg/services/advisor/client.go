package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/fin-tools/plan-advisor/pkg/models/api"
)

const bodySnippetLimit = 512

// Service is the calculation endpoint as the controller sees it.
type Service interface {
	GetAdvice(ctx context.Context, req api.InvestmentRequest) (*api.AdviceResponse, error)
}

// Client posts investment parameters to the remote calculation service and
// validates the returned recommendation. One request per call, no retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	cache      CacheRepository
	cacheTTL   time.Duration
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables the TTL advice cache. Without this option every call
// goes to the service.
func WithCache(repo CacheRepository, ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cache = repo
		c.cacheTTL = ttl
	}
}

func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		// No deadline on the default client: the submission runs to
		// completion or failure.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetAdvice(ctx context.Context, req api.InvestmentRequest) (*api.AdviceResponse, error) {
	logger := zerolog.Ctx(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode investment request: %w", err)
	}

	key := cacheKey(body)
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, key); ok {
			if parsed, err := decodeAdvice(raw); err == nil {
				logger.Debug().Str("key", key).Msg("advice served from cache")
				return parsed, nil
			}
			// A stale or corrupt entry falls through to the service.
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build calculation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	parsed, err := decodeAdvice(raw)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, raw, c.cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("failed to cache advice")
		}
	}
	return parsed, nil
}

func decodeAdvice(raw []byte) (*api.AdviceResponse, error) {
	var parsed api.AdviceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &MalformedResponseError{Reason: "body is not valid JSON", Payload: raw}
	}
	if parsed.Advice == nil {
		return nil, &MalformedResponseError{Reason: "missing advice object", Payload: raw}
	}
	if parsed.Advice.AssetAllocation == nil {
		return nil, &MalformedResponseError{Reason: "missing advice.asset_allocation", Payload: raw}
	}
	return &parsed, nil
}

func cacheKey(body []byte) string {
	return "advice:" + strconv.FormatUint(xxhash.Sum64(body), 16)
}
