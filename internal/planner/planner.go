// Package planner turns validated trip parameters into a generated itinerary
// by prompting GigaChat, with a process-memory cache of recent results.
package planner

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"tourgen/internal/trip"
)

// Completer produces a model completion for a finished prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service orchestrates prompt building and completion. Identical trip
// parameters within the cache TTL reuse the previous result instead of
// prompting the model again; nothing is persisted beyond process memory.
type Service struct {
	completer Completer
	results   *cache.Cache // nil when caching is disabled
	logger    *zap.Logger
}

// NewService creates a planner service. A non-positive cacheTTL disables
// result caching.
func NewService(completer Completer, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	var results *cache.Cache
	if cacheTTL > 0 {
		results = cache.New(cacheTTL, 2*cacheTTL)
	}
	return &Service{
		completer: completer,
		results:   results,
		logger:    logger,
	}
}

// Generate renders the prompt for the trip and returns the model's Markdown
// itinerary. Errors from the gateway pass through unchanged so the boundary
// can tell configuration, connectivity, and provider failures apart.
func (s *Service) Generate(ctx context.Context, r trip.Request) (string, error) {
	key := cacheKey(r)
	if s.results != nil {
		if v, ok := s.results.Get(key); ok {
			s.logger.Debug("itinerary served from cache", zap.String("key", key))
			return v.(string), nil
		}
	}

	prompt := trip.BuildPrompt(r)

	start := time.Now()
	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.logger.Info("itinerary generated",
		zap.String("from", r.From),
		zap.String("to", r.To),
		zap.Int("days", r.Days()),
		zap.Duration("duration", time.Since(start)))

	if s.results != nil && content != "" {
		s.results.Set(key, content, cache.DefaultExpiration)
	}
	return content, nil
}

func cacheKey(r trip.Request) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%v",
		r.From, r.To,
		r.DateFrom.Format(trip.DateLayout), r.DateTo.Format(trip.DateLayout),
		r.Guests, r.ChildrenAges)
}
