package topology

import (
	"sync"

	"github.com/mab2k/homebridge-teufel/internal/models"
	"github.com/samber/lo"
)

// Cache holds the most recent zone configuration seen from the gateway.
type Cache struct {
	mu     sync.RWMutex
	latest *models.ZoneConfiguration
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Set(cfg *models.ZoneConfiguration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = cfg
}

func (c *Cache) Latest() *models.ZoneConfiguration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}

// FindRoomByRendererUdn looks a room up in the canonical zone of the latest
// snapshot. Rooms without a renderer are never matched.
func (c *Cache) FindRoomByRendererUdn(rendererUdn string) (models.Room, bool) {
	if rendererUdn == "" {
		return models.Room{}, false
	}
	zone, err := CanonicalZone(c.Latest())
	if err != nil {
		return models.Room{}, false
	}
	return lo.Find(zone.Rooms, func(r models.Room) bool {
		return r.RendererUdn == rendererUdn
	})
}
