package meta

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const DefaultStructureTTL = time.Hour

// StructureCache guarda a estrutura da conta (campanhas, conjuntos, anúncios e pixels) por conta.
// Insights nunca passam por aqui.
type StructureCache struct {
	items *cache.Cache
}

func NewStructureCache(ttl time.Duration) *StructureCache {
	if ttl <= 0 {
		ttl = DefaultStructureTTL
	}
	return &StructureCache{items: cache.New(ttl, 2*ttl)}
}

func (c *StructureCache) get(accountID string) (*structure, bool) {
	v, ok := c.items.Get(accountID)
	if !ok {
		return nil, false
	}
	st, ok := v.(*structure)
	return st, ok
}

func (c *StructureCache) set(accountID string, st *structure) {
	c.items.SetDefault(accountID, st)
}

func (c *StructureCache) Len() int {
	return c.items.ItemCount()
}
