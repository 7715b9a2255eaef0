package memory

import (
	"time"

	"smepro-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const suggestionTTL = 30 * time.Minute

// SuggestionCache holds the latest persona suggestions per session so the
// client can re-fetch them without another model round trip.
type SuggestionCache struct {
	cache *cache.Cache
}

func NewSuggestionCache() *SuggestionCache {
	c := cache.New(suggestionTTL, 10*time.Minute)
	return &SuggestionCache{
		cache: c,
	}
}

func (s *SuggestionCache) Save(sessionId string, suggestions []entity.SuggestedPersona) {
	s.cache.Set(sessionId, suggestions, cache.DefaultExpiration)
}

func (s *SuggestionCache) Get(sessionId string) ([]entity.SuggestedPersona, bool) {
	if x, found := s.cache.Get(sessionId); found {
		return x.([]entity.SuggestedPersona), true
	}
	return nil, false
}

func (s *SuggestionCache) Delete(sessionId string) {
	s.cache.Delete(sessionId)
}
