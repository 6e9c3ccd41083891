package services

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/observability"
)

// blockedImageHost is the storage domain whose URLs are never trusted
const blockedImageHost = "ankorstorageprod.blob.core.windows.net"

// fallbackImagePool backs the service when the image search is unavailable
var fallbackImagePool = []string{
	"https://images.unsplash.com/photo-1500375592092-40eb2168fd21?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1469474968028-d79a25d0ecbe?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1499428665502-503f6c608263?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1493558103817-58b2924bce98?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1511302550-74f4a4b61274?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1495546968767-f0573cca821e?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1494599948593-3fdde6df39c5?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1521207412164-1770be672f6b?auto=format&fit=crop&w=1600&h=900&q=80",
	"https://images.unsplash.com/photo-1517167685282-958d0ba1eeda?auto=format&fit=crop&w=1600&h=900&q=80",
}

// ImageSearcher is the slice of the image search client the service needs
type ImageSearcher interface {
	SearchImageURLs(ctx context.Context) ([]string, error)
}

// ImageService assigns a display image to each catalog record, with a
// process-lifetime fallback pool and a policy for rejecting unusable
// source URLs.
type ImageService struct {
	searcher ImageSearcher
	flags    *FeatureFlags
	metrics  *observability.Metrics

	once sync.Once
	pool []string
}

// NewImageService creates an image service. The feature flags decide whether
// source-provided URLs are ever consulted.
func NewImageService(searcher ImageSearcher, flags *FeatureFlags, metrics *observability.Metrics) *ImageService {
	return &ImageService{
		searcher: searcher,
		flags:    flags,
		metrics:  metrics,
	}
}

// Pool resolves the fallback pool once per process. Concurrent first callers
// share a single in-flight lookup, so a partial pool is never observable.
// Search failures and empty result sets degrade to the built-in list.
func (s *ImageService) Pool(ctx context.Context) []string {
	s.once.Do(func() {
		urls, err := s.searcher.SearchImageURLs(ctx)
		if err == nil && len(urls) > 0 {
			s.pool = urls
			return
		}

		reason := "empty_results"
		if err != nil {
			reason = "lookup_failed"
		}
		log.Warn().
			Err(err).
			Str("reason", reason).
			Msg("image search unavailable, using built-in pool")
		if s.metrics != nil {
			observability.RecordImagePoolFallback(ctx, s.metrics, reason)
		}
		s.pool = fallbackImagePool
	})
	return s.pool
}

// Resolve picks the display image for one record. When source images are
// disabled the raw URL is never consulted; otherwise it is used only if it
// parses, carries an http(s) scheme, and is not hosted on the blocked
// storage domain.
func (s *ImageService) Resolve(rawURL *string, seed int, pool []string) string {
	fallback := selectPoolImage(seed, pool)

	if !s.flags.UseSourceYachtImages() {
		return fallback
	}

	normalized := sanitizeImageURL(rawURL)
	if shouldRejectSource(normalized) {
		return fallback
	}
	return normalized.String()
}

// selectPoolImage maps a batch position onto the pool: stable across
// re-renders of the same fetch and uniformly spread over the pool
func selectPoolImage(seed int, pool []string) string {
	if len(pool) == 0 {
		return fallbackImagePool[0]
	}
	if seed < 0 {
		seed = -seed
	}
	return pool[seed%len(pool)]
}

// sanitizeImageURL parses and re-normalizes the raw URL, decoding any
// percent-escapes in the path
func sanitizeImageURL(rawURL *string) *url.URL {
	if rawURL == nil || *rawURL == "" {
		return nil
	}
	u, err := url.Parse(*rawURL)
	if err != nil {
		return nil
	}
	// url.Parse keeps the wire escaping in RawPath; dropping it makes
	// String re-encode from the decoded path
	u.RawPath = ""
	return u
}

func shouldRejectSource(u *url.URL) bool {
	if u == nil {
		return true
	}
	if strings.HasSuffix(u.Hostname(), blockedImageHost) {
		return true
	}
	return u.Scheme != "http" && u.Scheme != "https"
}
