package metaclient

import (
	"context"
	"fmt"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

func (c *MetaClient) GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	result, err := c.FetchAll(ctx, Request{
		Resource: ResourceAccount,
		ObjectID: accountID,
		Fields:   metadomain.AccountFields,
	})
	if err != nil {
		return nil, err
	}

	accounts := decodeItems[metadomain.AdAccount](result.Items)
	if len(accounts) == 0 {
		return nil, fmt.Errorf("conta %s sem dados na resposta", accountID)
	}

	return &accounts[0], nil
}

func (c *MetaClient) GetCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, bool, error) {
	return fetchList[metadomain.Campaign](ctx, c, Request{
		Resource: ResourceCampaign,
		ObjectID: accountID,
		Fields:   metadomain.CampaignFields,
	})
}

func (c *MetaClient) GetAdSets(ctx context.Context, accountID string) ([]metadomain.AdSet, bool, error) {
	return fetchList[metadomain.AdSet](ctx, c, Request{
		Resource: ResourceAdSet,
		ObjectID: accountID,
		Fields:   metadomain.AdSetFields,
	})
}

func (c *MetaClient) GetAds(ctx context.Context, accountID string) ([]metadomain.Ad, bool, error) {
	return fetchList[metadomain.Ad](ctx, c, Request{
		Resource: ResourceAd,
		ObjectID: accountID,
		Fields:   metadomain.AdFields,
	})
}

func (c *MetaClient) GetPixels(ctx context.Context, accountID string) ([]metadomain.AdsPixel, bool, error) {
	return fetchList[metadomain.AdsPixel](ctx, c, Request{
		Resource: ResourcePixel,
		ObjectID: accountID,
		Fields:   metadomain.PixelFields,
	})
}

// GetInsights retorna o registro agregado da janela. Sem linhas na resposta o objeto não teve
// entrega no período e o retorno é um Insight vazio, não um erro.
func (c *MetaClient) GetInsights(ctx context.Context, objectID string, filters *domain.InsightFilters) (*metadomain.Insight, error) {
	params := url.Values{}
	params.Set("time_increment", "all_days")

	result, err := c.FetchAll(ctx, Request{
		Resource:  ResourceInsights,
		ObjectID:  objectID,
		Fields:    metadomain.InsightFields,
		Params:    params,
		TimeRange: filters,
	})
	if err != nil {
		return nil, err
	}

	insights := decodeItems[metadomain.Insight](result.Items)
	if len(insights) == 0 {
		return &metadomain.Insight{}, nil
	}

	return &insights[0], nil
}

func fetchList[T any](ctx context.Context, c *MetaClient, req Request) ([]T, bool, error) {
	result, err := c.FetchAll(ctx, req)
	if err != nil {
		return nil, false, err
	}

	return decodeItems[T](result.Items), result.Truncated, nil
}

// decodeItems ignora itens que não decodificam, registrando o problema
func decodeItems[T any](raw []jsoniter.RawMessage) []T {
	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			logrus.WithFields(logrus.Fields{
				"index": i,
				"error": err.Error(),
			}).Warn("meta: item com formato inesperado ignorado")
			continue
		}
		items = append(items, item)
	}
	return items
}
