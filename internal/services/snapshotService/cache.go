package snapshotService

import "sync"

// Cache holds the latest fetched snapshots. The calculator always reads
// whatever the cache holds at call time; refreshes swap whole snapshots under
// the lock, so readers never see a half-updated dataset.
type Cache struct {
	mu           sync.RWMutex
	inventory    InventorySnapshot
	requirements RequirementSnapshot
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) Inventory() InventorySnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inventory
}

func (c *Cache) Requirements() RequirementSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.requirements
}

func (c *Cache) SetInventory(snap InventorySnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inventory = snap
}

func (c *Cache) SetRequirements(snap RequirementSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requirements = snap
}
