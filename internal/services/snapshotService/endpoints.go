package snapshotService

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Service exposes the snapshot endpoints over a shared cache.
type Service struct {
	Cache     *Cache
	Refresher *Refresher
}

type statusResponse struct {
	InventoryRows        int       `json:"inventoryRows"`
	InventoryFetchedAt   time.Time `json:"inventoryFetchedAt"`
	InventorySource      string    `json:"inventorySource"`
	RequirementRows      int       `json:"requirementRows"`
	RequirementFetchedAt time.Time `json:"requirementFetchedAt"`
	RequirementSource    string    `json:"requirementSource"`
	Warnings             int       `json:"warnings"`
	RefreshInterval      string    `json:"refreshInterval"`
}

func (s *Service) RefreshNow(c *gin.Context, jsonPayload string) (interface{}, error) {
	if err := s.Refresher.RefreshInventory(); err != nil {
		return nil, err
	}
	if err := s.Refresher.RefreshRequirements(); err != nil {
		return nil, err
	}

	return s.Status(c, jsonPayload)
}

func (s *Service) Status(c *gin.Context, jsonPayload string) (interface{}, error) {
	inv := s.Cache.Inventory()
	req := s.Cache.Requirements()

	return statusResponse{
		InventoryRows:        len(inv.Records),
		InventoryFetchedAt:   inv.FetchedAt,
		InventorySource:      inv.Source,
		RequirementRows:      len(req.Records),
		RequirementFetchedAt: req.FetchedAt,
		RequirementSource:    req.Source,
		Warnings:             len(inv.Warnings) + len(req.Warnings),
		RefreshInterval:      RefreshInterval().String(),
	}, nil
}
