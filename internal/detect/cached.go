package detect

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/readcoil/strictstrings/internal/cache"
)

// CachedDetector wraps a Detector with a score cache. Remote providers
// are slow and billed per request, so scores for a string are reused
// across runs over the same binary.
type CachedDetector struct {
	inner Detector
	cache cache.Cache
	ttl   time.Duration
}

// NewCached wraps a detector with the given cache
func NewCached(inner Detector, c cache.Cache, ttl time.Duration) *CachedDetector {
	return &CachedDetector{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// Name returns the wrapped provider's name
func (d *CachedDetector) Name() string {
	return d.inner.Name()
}

// Languages returns the wrapped provider's candidate set
func (d *CachedDetector) Languages() []Language {
	return d.inner.Languages()
}

// Scores returns cached scores when present, otherwise delegates and
// stores the result. Cache failures degrade to a plain delegate call.
func (d *CachedDetector) Scores(ctx context.Context, text string) (map[Language]float64, error) {
	key := d.key(text)

	if data, found := d.cache.Get(key); found {
		var scores map[Language]float64
		if err := json.Unmarshal(data, &scores); err == nil {
			return scores, nil
		}
		log.Debug().Str("key", key).Msg("Discarding undecodable cache entry")
		_ = d.cache.Delete(key)
	}

	scores, err := d.inner.Scores(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(scores); err == nil {
		if err := d.cache.Set(key, data, d.ttl); err != nil {
			log.Warn().Err(err).Msg("Failed to cache detector scores")
		}
	}

	return scores, nil
}

// key folds the provider identity and candidate set into the cache key so
// switching detectors or languages never reuses stale scores.
func (d *CachedDetector) key(text string) string {
	langs := make([]string, 0, len(d.inner.Languages()))
	for _, lang := range d.inner.Languages() {
		langs = append(langs, string(lang))
	}
	sort.Strings(langs)

	parts := append([]string{d.inner.Name()}, langs...)
	parts = append(parts, text)
	return cache.Key(parts...)
}
