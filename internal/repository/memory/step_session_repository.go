package memory

import (
	"time"

	"cofoundr-be/pkg/collabflow"

	"github.com/patrickmn/go-cache"
)

// StepSessionRepository keeps open step editor sessions in process memory.
// A user has at most one open session; abandoned drafts expire on their own.
type StepSessionRepository struct {
	cache *cache.Cache
}

func NewStepSessionRepository() *StepSessionRepository {
	// Drafts live for an hour of inactivity, purged every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StepSessionRepository{
		cache: c,
	}
}

func (r *StepSessionRepository) Save(userId string, session *collabflow.Session) {
	r.cache.Set(userId, session, cache.DefaultExpiration)
}

func (r *StepSessionRepository) Get(userId string) (*collabflow.Session, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*collabflow.Session), true
	}
	return nil, false
}

func (r *StepSessionRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
