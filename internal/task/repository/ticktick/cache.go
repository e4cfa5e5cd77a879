package ticktick

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"alice-ticktick/internal/model"
)

// A voice turn routinely triggers several reads of the same account
// (resolve the task, then confirm), so even a short TTL removes most
// round trips. Entries are keyed by access token.
const maxCachedUsers = 1000

type cache struct {
	projects *expirable.LRU[string, []model.Project]
	tasks    *expirable.LRU[string, []model.Task]
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		projects: expirable.NewLRU[string, []model.Project](maxCachedUsers, nil, ttl),
		tasks:    expirable.NewLRU[string, []model.Task](maxCachedUsers, nil, ttl),
	}
}

// invalidate drops the user's cached reads after a mutation.
func (c *cache) invalidate(token string) {
	c.projects.Remove(token)
	c.tasks.Remove(token)
}
