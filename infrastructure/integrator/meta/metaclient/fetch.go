package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

const (
	DefaultMaxPages    = 10
	DefaultMaxAttempts = 3
	DefaultPageLimit   = 100
)

type Resource string

const (
	ResourceAccount  Resource = "account"
	ResourceCampaign Resource = "campaign"
	ResourceAdSet    Resource = "adset"
	ResourceAd       Resource = "ad"
	ResourceInsights Resource = "insights"
	ResourcePixel    Resource = "pixel"
)

// edge retorna o sufixo do endpoint da família. Conta é um objeto único, sem edge.
func (r Resource) edge() (string, bool) {
	switch r {
	case ResourceAccount:
		return "", true
	case ResourceCampaign:
		return "campaigns", true
	case ResourceAdSet:
		return "adsets", true
	case ResourceAd:
		return "ads", true
	case ResourceInsights:
		return "insights", true
	case ResourcePixel:
		return "adspixels", true
	default:
		return "", false
	}
}

type Request struct {
	Resource  Resource
	ObjectID  string
	Fields    []string
	Params    url.Values
	TimeRange *domain.InsightFilters
}

func (r Request) validate() error {
	if _, ok := r.Resource.edge(); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidResource, r.Resource)
	}

	if strings.TrimSpace(r.ObjectID) == "" {
		return ErrEmptyObjectID
	}

	if len(r.Fields) == 0 {
		return ErrEmptyFields
	}
	for _, f := range r.Fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "*" {
			return fmt.Errorf("%w: %q", ErrEmptyFields, f)
		}
	}

	return nil
}

// Result é a concatenação deduplicada dos itens de todas as páginas lidas
type Result struct {
	Items     []jsoniter.RawMessage
	Pages     int
	Truncated bool
}

// FetchAll segue o cursor paging.next até o fim ou até o limite de páginas.
// Atingir o limite não é erro: o resultado volta com Truncated=true.
func (c *MetaClient) FetchAll(ctx context.Context, req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	next := c.buildURL(req)
	result := &Result{Items: make([]jsoniter.RawMessage, 0)}
	seen := make(map[string]struct{})

	for {
		if result.Pages == c.maxPages {
			result.Truncated = true
			logrus.WithFields(logrus.Fields{
				"resource":  req.Resource,
				"object_id": req.ObjectID,
				"max_pages": c.maxPages,
				"items":     len(result.Items),
			}).Warn("meta: limite de páginas atingido, resultado parcial")
			break
		}

		body, err := c.getWithRetry(ctx, req, next)
		if err != nil {
			return nil, err
		}
		result.Pages++

		if req.Resource == ResourceAccount {
			result.Items = append(result.Items, jsoniter.RawMessage(body))
			break
		}

		var page metadomain.Page
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, &FetchError{
				Resource: req.Resource,
				ObjectID: req.ObjectID,
				Message:  "resposta com formato inesperado",
				Attempts: 1,
				Err:      err,
			}
		}

		for _, item := range page.Data {
			id := jsoniter.Get(item, "id").ToString()
			if id != "" {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
			result.Items = append(result.Items, item)
		}

		next = page.NextURL()
		if next == "" {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"resource":  req.Resource,
		"object_id": req.ObjectID,
		"pages":     result.Pages,
		"items":     len(result.Items),
	}).Debug("meta: busca paginada concluída")

	return result, nil
}

func (c *MetaClient) buildURL(req Request) string {
	edge, _ := req.Resource.edge()

	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(c.baseURL, "/"), req.ObjectID)
	if edge != "" {
		endpoint += "/" + edge
	}

	params := url.Values{}
	for k, v := range req.Params {
		params[k] = append([]string(nil), v...)
	}
	params.Set("fields", strings.Join(req.Fields, ","))
	if req.Resource != ResourceAccount && params.Get("limit") == "" {
		params.Set("limit", fmt.Sprint(DefaultPageLimit))
	}
	if req.TimeRange != nil && req.TimeRange.StartDate != nil && req.TimeRange.EndDate != nil {
		params.Set("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
			req.TimeRange.StartDate.Format(time.DateOnly), req.TimeRange.EndDate.Format(time.DateOnly)))
	}
	params.Set("access_token", c.accessToken)

	return endpoint + "?" + params.Encode()
}

// getWithRetry executa o GET repetindo falhas transitórias com backoff exponencial e jitter
func (c *MetaClient) getWithRetry(ctx context.Context, req Request, rawURL string) ([]byte, error) {
	var last *attemptError

	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt - 1)
			logrus.WithFields(logrus.Fields{
				"resource":    req.Resource,
				"object_id":   req.ObjectID,
				"attempt":     attempt + 1,
				"status_code": last.statusCode,
				"delay":       delay.String(),
			}).Warn("meta: falha transitória, tentando novamente")

			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		body, attemptErr := c.doGet(ctx, rawURL)
		if attemptErr == nil {
			return body, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		last = attemptErr
		if !attemptErr.transient {
			logrus.WithFields(logrus.Fields{
				"resource":    req.Resource,
				"object_id":   req.ObjectID,
				"status_code": attemptErr.statusCode,
				"code":        attemptErr.code,
				"error":       attemptErr.message,
			}).Error("meta: falha terminal, sem nova tentativa")
			return nil, newFetchError(req, attemptErr, attempt+1)
		}
	}

	logrus.WithFields(logrus.Fields{
		"resource":    req.Resource,
		"object_id":   req.ObjectID,
		"attempts":    c.retry.MaxAttempts,
		"status_code": last.statusCode,
		"error":       last.message,
	}).Error("meta: tentativas esgotadas")

	return nil, newFetchError(req, last, c.retry.MaxAttempts)
}

// backoff retorna base × 2^n mais um jitter em [0, base)
func (c *MetaClient) backoff(n int) time.Duration {
	return c.retry.BaseDelay<<n + c.jitter(c.retry.BaseDelay)
}

func (c *MetaClient) doGet(ctx context.Context, rawURL string) ([]byte, *attemptError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &attemptError{message: err.Error(), err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &attemptError{message: err.Error(), transient: true, err: err}
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

func newFetchError(req Request, attempt *attemptError, attempts int) *FetchError {
	return &FetchError{
		Resource:   req.Resource,
		ObjectID:   req.ObjectID,
		StatusCode: attempt.statusCode,
		Code:       attempt.code,
		Message:    attempt.message,
		Transient:  attempt.transient,
		Attempts:   attempts,
		Err:        attempt.err,
	}
}
