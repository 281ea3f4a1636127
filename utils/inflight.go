package utils

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// InFlightGuard rejects a second mutating operation on the same entity
// while one is still in flight. Locks expire after a TTL so a crashed
// request cannot wedge an entity forever.
type InFlightGuard struct {
	locks *gocache.Cache
	ttl   time.Duration
}

// NewInFlightGuard creates a guard whose locks expire after ttl.
func NewInFlightGuard(ttl time.Duration) *InFlightGuard {
	return &InFlightGuard{
		locks: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Begin claims the lock for an operation on an entity. It returns false
// when the same operation is already in flight for that entity.
func (g *InFlightGuard) Begin(operation string, entityID uint) bool {
	key := fmt.Sprintf("%s:%d", operation, entityID)
	return g.locks.Add(key, struct{}{}, g.ttl) == nil
}

// End releases the lock once the operation's response has been produced.
func (g *InFlightGuard) End(operation string, entityID uint) {
	g.locks.Delete(fmt.Sprintf("%s:%d", operation, entityID))
}
