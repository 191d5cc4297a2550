package meta

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-health-monitor/internal/config"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

var (
	ErrAccountFetch   = errors.New("falha ao buscar a conta de anúncios")
	ErrStructureFetch = errors.New("falha ao buscar a estrutura da conta")
)

type Integrator interface {
	GetAccountSnapshot(ctx context.Context, accountID string, window *domain.InsightFilters) (*domain.AccountSnapshot, error)
}

// structure é o conjunto de objetos da conta que muda pouco entre execuções
type structure struct {
	Account   metadomain.AdAccount
	Campaigns []metadomain.Campaign
	AdSets    []metadomain.AdSet
	Ads       []metadomain.Ad
	Pixels    []metadomain.AdsPixel
	Warnings  []string
}

type MetaIntegrator struct {
	Client         metaclient.Client
	cache          *StructureCache
	maxConcurrency int
	now            func() time.Time
}

func New(cfg *config.Config, client metaclient.Client, cache *StructureCache) *MetaIntegrator {
	maxConcurrency := cfg.Fetch.MaxConcurrentFetches
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return &MetaIntegrator{
		Client:         client,
		cache:          cache,
		maxConcurrency: maxConcurrency,
		now:            time.Now,
	}
}

// GetAccountSnapshot monta a fotografia da conta: estrutura (possivelmente em cache) mais os
// insights da janela, buscados por entidade com concorrência limitada.
// Falhas de insight por entidade não abortam; ficam registradas no InsightResult de cada uma.
func (s *MetaIntegrator) GetAccountSnapshot(ctx context.Context, accountID string, window *domain.InsightFilters) (*domain.AccountSnapshot, error) {
	st, err := s.getStructure(ctx, accountID)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.AccountSnapshot{
		ID:        st.Account.ID,
		Name:      st.Account.Name,
		Currency:  st.Account.Currency,
		Timezone:  st.Account.TimezoneName,
		Status:    FactoryAccountStatus(st.Account.AccountStatus),
		Pixels:    make([]domain.Pixel, 0, len(st.Pixels)),
		Campaigns: make([]*domain.Campaign, 0, len(st.Campaigns)),
		AdSets:    make([]*domain.AdSet, 0, len(st.AdSets)),
		Ads:       make([]*domain.Ad, 0, len(st.Ads)),
		Warnings:  append([]string(nil), st.Warnings...),
		FetchedAt: s.now(),
	}
	if snapshot.ID == "" {
		snapshot.ID = accountID
	}
	snapshot.AnalysisDays = window.AnalysisDays()

	for _, p := range st.Pixels {
		snapshot.Pixels = append(snapshot.Pixels, FactoryPixel(p))
	}
	snapshot.HasPixel = len(snapshot.Pixels) > 0

	for _, c := range st.Campaigns {
		snapshot.Campaigns = append(snapshot.Campaigns, FactoryCampaign(c))
	}
	for _, a := range st.AdSets {
		snapshot.AdSets = append(snapshot.AdSets, FactoryAdSet(a))
	}
	for _, a := range st.Ads {
		snapshot.Ads = append(snapshot.Ads, FactoryAd(a))
	}

	s.fetchInsights(ctx, snapshot, window)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("busca de insights interrompida: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": snapshot.ID,
		"campaigns":  len(snapshot.Campaigns),
		"adsets":     len(snapshot.AdSets),
		"ads":        len(snapshot.Ads),
		"pixels":     len(snapshot.Pixels),
		"warnings":   len(snapshot.Warnings),
	}).Info("insights: snapshot da conta montado")

	return snapshot, nil
}

func (s *MetaIntegrator) getStructure(ctx context.Context, accountID string) (*structure, error) {
	if s.cache != nil {
		if st, ok := s.cache.get(accountID); ok {
			logrus.WithField("account_id", accountID).Debug("insights: estrutura da conta obtida do cache")
			return st, nil
		}
	}

	account, err := s.Client.GetAdAccount(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account from API")
		return nil, fmt.Errorf("%w %s: %w", ErrAccountFetch, accountID, err)
	}

	st := &structure{Account: *account, Warnings: make([]string, 0)}

	var truncated bool

	st.Campaigns, truncated, err = s.Client.GetCampaigns(ctx, accountID)
	if err != nil {
		return nil, structureError("campanhas", accountID, err)
	}
	st.addTruncation("campanhas", truncated)

	st.AdSets, truncated, err = s.Client.GetAdSets(ctx, accountID)
	if err != nil {
		return nil, structureError("conjuntos de anúncios", accountID, err)
	}
	st.addTruncation("conjuntos de anúncios", truncated)

	st.Ads, truncated, err = s.Client.GetAds(ctx, accountID)
	if err != nil {
		return nil, structureError("anúncios", accountID, err)
	}
	st.addTruncation("anúncios", truncated)

	st.Pixels, truncated, err = s.Client.GetPixels(ctx, accountID)
	if err != nil {
		return nil, structureError("pixels", accountID, err)
	}
	st.addTruncation("pixels", truncated)

	if s.cache != nil {
		s.cache.set(accountID, st)
	}

	return st, nil
}

func (st *structure) addTruncation(resource string, truncated bool) {
	if truncated {
		st.Warnings = append(st.Warnings, fmt.Sprintf("lista de %s truncada no limite de páginas; resultado parcial", resource))
	}
}

func structureError(resource, accountID string, err error) error {
	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"resource":   resource,
		"error":      err.Error(),
	}).Error("insights: failed to get account structure")
	return fmt.Errorf("%w (%s): %w", ErrStructureFetch, resource, err)
}

// fetchInsights busca os insights de campanhas e anúncios. Cada goroutine escreve apenas no
// próprio slot; o resultado é aplicado depois que todas terminam.
func (s *MetaIntegrator) fetchInsights(ctx context.Context, snapshot *domain.AccountSnapshot, window *domain.InsightFilters) {
	campaignResults := make([]domain.InsightResult, len(snapshot.Campaigns))
	adResults := make([]domain.InsightResult, len(snapshot.Ads))

	semaphore := make(chan struct{}, s.maxConcurrency)
	var wg sync.WaitGroup

	fetch := func(objectID string, slot *domain.InsightResult) {
		defer func() {
			<-semaphore
			wg.Done()
		}()

		if err := ctx.Err(); err != nil {
			*slot = domain.InsightFailed(err)
			return
		}

		raw, err := s.Client.GetInsights(ctx, objectID, window)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"object_id": objectID,
				"error":     err.Error(),
			}).Warn("insights: failed to get insights for entity")
			*slot = domain.InsightFailed(err)
			return
		}

		*slot = domain.InsightOK(FactoryInsight(raw))
	}

	for i, c := range snapshot.Campaigns {
		wg.Add(1)
		semaphore <- struct{}{}
		go fetch(c.ID, &campaignResults[i])
	}
	for i, a := range snapshot.Ads {
		wg.Add(1)
		semaphore <- struct{}{}
		go fetch(a.ID, &adResults[i])
	}

	wg.Wait()

	failed := 0
	for i, c := range snapshot.Campaigns {
		ApplyCampaignInsight(c, campaignResults[i])
		if campaignResults[i].Failed() {
			failed++
		}
	}
	for i, a := range snapshot.Ads {
		ApplyAdInsight(a, adResults[i])
		if adResults[i].Failed() {
			failed++
		}
	}

	if failed > 0 {
		snapshot.Warnings = append(snapshot.Warnings, fmt.Sprintf("%d busca(s) de insight falharam; métricas dessas entidades ficaram zeradas", failed))
	}
}
