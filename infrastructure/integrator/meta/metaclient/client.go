package metaclient

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	FetchAll(ctx context.Context, req Request) (*Result, error)
	GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error)
	GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, bool, error)
	GetAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, bool, error)
	GetAds(ctx context.Context, accountID string) ([]metadomain.Ad, bool, error)
	GetPixels(ctx context.Context, accountID string) ([]metadomain.AdsPixel, bool, error)
	GetInsights(ctx context.Context, objectID string, filters *domain.InsightFilters) (*metadomain.Insight, error)
}

// Doer é o subconjunto de *http.Client usado pelo fetcher
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

type MetaClient struct {
	baseURL     string
	accessToken string
	maxPages    int
	retry       RetryPolicy
	httpClient  Doer
	limiter     *rate.Limiter

	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(base time.Duration) time.Duration
}

type Option func(*MetaClient)

func WithHTTPClient(doer Doer) Option {
	return func(c *MetaClient) {
		c.httpClient = doer
	}
}

func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *MetaClient) {
		c.limiter = limiter
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *MetaClient) {
		c.retry = policy
	}
}

func WithMaxPages(maxPages int) Option {
	return func(c *MetaClient) {
		c.maxPages = maxPages
	}
}

func NewClient(cfg *config.Config, opts ...Option) *MetaClient {
	timeout := cfg.Fetch.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.Fetch.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Fetch.RequestsPerSecond)
	}

	client := &MetaClient{
		baseURL:     cfg.Meta.URL,
		accessToken: cfg.Meta.AccessToken,
		maxPages:    cfg.Fetch.MaxPages,
		retry: RetryPolicy{
			MaxAttempts: cfg.Fetch.MaxAttempts,
			BaseDelay:   cfg.Fetch.RetryBaseDelay,
		},
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		sleep:      sleepContext,
		jitter:     randomJitter,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.maxPages < 1 {
		client.maxPages = DefaultMaxPages
	}
	if client.retry.MaxAttempts < 1 {
		client.retry.MaxAttempts = DefaultMaxAttempts
	}
	if client.retry.BaseDelay < 0 {
		client.retry.BaseDelay = 0
	}

	return client
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func randomJitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(base)))
}
