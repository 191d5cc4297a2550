package meta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
	"go.uber.org/mock/gomock"
)

func testWindow() *domain.InsightFilters {
	return domain.NewTrailingWindow(time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC), 7)
}

func expectStructure(client *mocks.MockClient, times int) {
	client.EXPECT().GetAdAccount(gomock.Any(), "act_1").Return(&metadomain.AdAccount{
		ID: "act_1", Name: "Loja Centro", AccountStatus: 1, Currency: "BRL", TimezoneName: "America/Sao_Paulo",
	}, nil).Times(times)
	client.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return([]metadomain.Campaign{
		{ID: "c1", Name: "Vendas", Status: "ACTIVE", DailyBudget: "10000"},
		{ID: "c2", Name: "Teste", Status: "PAUSED"},
	}, false, nil).Times(times)
	client.EXPECT().GetAdSets(gomock.Any(), "act_1").Return([]metadomain.AdSet{
		{ID: "s1", Name: "Conjunto", Status: "ACTIVE", CampaignID: "c1"},
	}, false, nil).Times(times)
	client.EXPECT().GetAds(gomock.Any(), "act_1").Return([]metadomain.Ad{
		{ID: "a1", Name: "Anúncio 1", Status: "ACTIVE", EffectiveStatus: "ACTIVE", AdSetID: "s1", CampaignID: "c1"},
	}, true, nil).Times(times)
	client.EXPECT().GetPixels(gomock.Any(), "act_1").Return([]metadomain.AdsPixel{
		{ID: "p1", Name: "Pixel"},
	}, false, nil).Times(times)
}

func TestMetaIntegrator_GetAccountSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	expectStructure(client, 1)

	window := testWindow()
	client.EXPECT().GetInsights(gomock.Any(), "c1", window).Return(&metadomain.Insight{
		Spend:        "700",
		CTR:          "1.1",
		ActionValues: []metadomain.Action{{ActionType: "purchase", Value: "700"}},
	}, nil)
	client.EXPECT().GetInsights(gomock.Any(), "c2", window).Return(nil, &metaclient.FetchError{Message: "timeout", Transient: true})
	client.EXPECT().GetInsights(gomock.Any(), "a1", window).Return(&metadomain.Insight{Frequency: "4.0"}, nil)

	integrator := New(&config.Config{Fetch: config.Fetch{MaxConcurrentFetches: 2}}, client, nil)

	snapshot, err := integrator.GetAccountSnapshot(context.Background(), "act_1", window)
	require.NoError(t, err)

	assert.Equal(t, "act_1", snapshot.ID)
	assert.Equal(t, domain.AccountStatusActive, snapshot.Status)
	assert.Equal(t, "BRL", snapshot.Currency)
	assert.True(t, snapshot.HasPixel)
	assert.Equal(t, 7, snapshot.AnalysisDays)

	require.Len(t, snapshot.Campaigns, 2)
	assert.Equal(t, "c1", snapshot.Campaigns[0].ID)
	assert.Equal(t, domain.Budget{Kind: domain.BudgetKindDaily, Amount: 100}, snapshot.Campaigns[0].Budget)
	assert.Equal(t, 1.0, snapshot.Campaigns[0].ROAS)
	assert.True(t, snapshot.Campaigns[0].Insight.OK())
	assert.True(t, snapshot.Campaigns[1].Insight.Failed())
	assert.True(t, metaclient.IsTransient(snapshot.Campaigns[1].Insight.Err))

	require.Len(t, snapshot.Ads, 1)
	assert.Equal(t, 4.0, snapshot.Ads[0].Frequency)

	// anúncios truncados + uma falha de insight
	assert.Len(t, snapshot.Warnings, 2)
}

func TestMetaIntegrator_AnalysisDaysAcrossDaylightSaving(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	expectStructure(client, 1)
	client.EXPECT().GetInsights(gomock.Any(), gomock.Any(), gomock.Any()).Return(&metadomain.Insight{}, nil).Times(3)

	// 2026-03-08 troca para o horário de verão, a janela tem 143h
	window := domain.NewTrailingWindow(time.Date(2026, 3, 10, 12, 0, 0, 0, newYork), 7)
	integrator := New(&config.Config{Fetch: config.Fetch{MaxConcurrentFetches: 2}}, client, nil)

	snapshot, err := integrator.GetAccountSnapshot(context.Background(), "act_1", window)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, newYork), *window.StartDate)
	assert.Equal(t, 7, snapshot.AnalysisDays)
}

func TestMetaIntegrator_AccountFetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	apiErr := &metaclient.FetchError{StatusCode: 400, Code: 190, Message: "Error validating access token"}
	client.EXPECT().GetAdAccount(gomock.Any(), "act_1").Return(nil, apiErr)

	integrator := New(&config.Config{}, client, nil)

	snapshot, err := integrator.GetAccountSnapshot(context.Background(), "act_1", testWindow())
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrAccountFetch)
	assert.True(t, metaclient.IsTerminal(err))
	assert.Contains(t, err.Error(), "Error validating access token")
}

func TestMetaIntegrator_StructureFetchFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetAdAccount(gomock.Any(), "act_1").Return(&metadomain.AdAccount{ID: "act_1"}, nil)
	client.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return(nil, false, errors.New("boom"))

	integrator := New(&config.Config{}, client, nil)

	_, err := integrator.GetAccountSnapshot(context.Background(), "act_1", testWindow())
	assert.ErrorIs(t, err, ErrStructureFetch)
}

func TestMetaIntegrator_StructureCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	expectStructure(client, 1)
	client.EXPECT().GetInsights(gomock.Any(), gomock.Any(), gomock.Any()).Return(&metadomain.Insight{}, nil).Times(6)

	cache := NewStructureCache(time.Hour)
	integrator := New(&config.Config{}, client, cache)

	first, err := integrator.GetAccountSnapshot(context.Background(), "act_1", testWindow())
	require.NoError(t, err)
	second, err := integrator.GetAccountSnapshot(context.Background(), "act_1", testWindow())
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, len(first.Campaigns), len(second.Campaigns))
	assert.NotSame(t, first.Campaigns[0], second.Campaigns[0])
}
