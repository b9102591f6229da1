package client

import (
	"sync"

	"github.com/Capryc0rne/CUBE/internal/dto"
)

// CountryCache memoizes the country reference list for a single client.
// It is constructed and owned by the composition root, not shared through
// package state, and can be invalidated on demand.
type CountryCache struct {
	client *Client

	mu        sync.Mutex
	countries []dto.CountryDetail
	loaded    bool
}

func NewCountryCache(client *Client) *CountryCache {
	return &CountryCache{client: client}
}

// Get returns the cached list, fetching it on first use. A failed fetch
// leaves the cache empty so the next call retries.
func (cc *CountryCache) Get() ([]dto.CountryDetail, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.loaded {
		return cc.countries, nil
	}

	countries, err := cc.client.FetchCountries()
	if err != nil {
		return nil, err
	}

	cc.countries = countries
	cc.loaded = true
	return cc.countries, nil
}

func (cc *CountryCache) Invalidate() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.countries = nil
	cc.loaded = false
}
