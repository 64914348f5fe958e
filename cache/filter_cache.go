// Package cache holds small in-process TTL caches for storefront
// metadata that changes rarely but is read on every catalog page.
package cache

import (
	"sync"
	"time"

	"github.com/Voltline-Commerce/voltline-backend/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores the full sidebar payload: categories/brands with counts, price
// range, availability counts. Invalidated on any catalog write.

type metaEntry struct {
	data      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func GetFilterMetadata() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return models.FilterMetadata{}, false
}

func SetFilterMetadata(data models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached payload (call on any product/category/brand write).
func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
