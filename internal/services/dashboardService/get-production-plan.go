package dashboardService

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/planService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/snapshotService"
)

type GetProductionPlanRequest struct {
	Parts             []string `json:"parts"`
	AvailableStatuses []string `json:"availableStatuses"`
}

type GetProductionPlanResponse struct {
	Rows                 []PlanRowResponse                 `json:"rows"`
	Warnings             []snapshotService.CoercionWarning `json:"warnings"`
	InventoryFetchedAt   time.Time                         `json:"inventoryFetchedAt"`
	RequirementFetchedAt time.Time                         `json:"requirementFetchedAt"`
}

func (s *Service) GetProductionPlan(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req GetProductionPlanRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	rows, warnings, inv, reqs := s.computePlan(req)

	now := time.Now()
	res := GetProductionPlanResponse{
		Rows:                 make([]PlanRowResponse, 0, len(rows)),
		Warnings:             warnings,
		InventoryFetchedAt:   inv.FetchedAt,
		RequirementFetchedAt: reqs.FetchedAt,
	}

	for _, row := range rows {
		res.Rows = append(res.Rows, PlanRowResponse{
			PartNumber:        row.PartNumber,
			Description:       s.Store.Get(row.PartNumber).Description,
			CurrentInventory:  row.CurrentInventory,
			WeeklyRequirement: row.WeeklyRequirement,
			ShippingDays:      row.ShippingDays,
			DaysOfCoverage:    formatCoverage(row.DaysOfCoverage),
			ShortageUnits:     row.ShortageUnits,
			ShortagePacks:     row.ShortagePacks,
			StdPack:           row.StdPack,
			CycleTime:         row.CycleTime,
			Priority:          row.Priority,
			HasReference:      s.Store.Has(row.PartNumber),
			NextShipmentDate:  nextShipmentDate(now, row.ShippingDays),
		})
	}

	return res, nil
}

// computePlan runs the calculator over the cached snapshots, applying the
// requested part and inventory-status filters.
func (s *Service) computePlan(req GetProductionPlanRequest) ([]planService.ProductionPlanRow, []snapshotService.CoercionWarning, snapshotService.InventorySnapshot, snapshotService.RequirementSnapshot) {
	inv := s.Cache.Inventory()
	reqs := s.Cache.Requirements()

	inventory := filterInventory(inv.Records, req)
	requirements := filterRequirements(reqs.Records, req.Parts)

	rows := planService.ComputePlan(inventory, requirements, s.Store)

	warnings := make([]snapshotService.CoercionWarning, 0, len(inv.Warnings)+len(reqs.Warnings))
	warnings = append(warnings, inv.Warnings...)
	warnings = append(warnings, reqs.Warnings...)

	return rows, warnings, inv, reqs
}

// filterInventory keeps only rows whose status counts as available. The
// status set comes from the request, falling back to the
// inventory_available_statuses env list; with neither set, every row counts.
func filterInventory(records []planService.InventoryRecord, req GetProductionPlanRequest) []planService.InventoryRecord {
	statuses := req.AvailableStatuses
	if len(statuses) == 0 {
		if raw := os.Getenv("inventory_available_statuses"); raw != "" {
			statuses = strings.Split(raw, ",")
		}
	}

	out := records
	if len(statuses) > 0 {
		allowed := map[string]bool{}
		for _, st := range statuses {
			allowed[strings.ToUpper(strings.TrimSpace(st))] = true
		}

		out = nil
		for _, rec := range records {
			if allowed[strings.ToUpper(strings.TrimSpace(rec.Status))] {
				out = append(out, rec)
			}
		}
	}

	if len(req.Parts) > 0 {
		out = filterByPart(out, req.Parts, func(r planService.InventoryRecord) string { return r.PartNumber })
	}

	return out
}

func filterRequirements(records []planService.RequirementRecord, parts []string) []planService.RequirementRecord {
	if len(parts) == 0 {
		return records
	}
	return filterByPart(records, parts, func(r planService.RequirementRecord) string { return r.PartNumber })
}

func filterByPart[T any](records []T, parts []string, key func(T) string) []T {
	wanted := map[string]bool{}
	for _, p := range parts {
		wanted[p] = true
	}

	var out []T
	for _, rec := range records {
		if wanted[key(rec)] {
			out = append(out, rec)
		}
	}
	return out
}
