package memory

import (
	"time"

	"ai-studybuddy-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionStateRepository struct {
	cache *cache.Cache
}

func NewSessionStateRepository() *SessionStateRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionStateRepository{
		cache: c,
	}
}

func (r *SessionStateRepository) Save(state *store.SessionState) {
	r.cache.Set(state.ID, state, cache.DefaultExpiration)
}

func (r *SessionStateRepository) Get(sessionID string) (*store.SessionState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.SessionState), true
	}
	return nil, false
}

func (r *SessionStateRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
