package dashboardService

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

type GetDashboardSummaryRequest struct {
	Parts             []string `json:"parts"`
	AvailableStatuses []string `json:"availableStatuses"`
}

type GetDashboardSummaryResponse struct {
	TotalParts       int     `json:"totalParts"`
	TotalShort       int     `json:"totalShort"`
	TotalUrgent      int     `json:"totalUrgent"`
	TotalPacks       int     `json:"totalPacks"`
	TotalPieces      float64 `json:"totalPieces"`
	ProductionHours  float64 `json:"productionHours"`
	ShiftsNeeded     float64 `json:"shiftsNeeded"`
	WeekEnd          string  `json:"weekEnd"`
	SnapshotWarnings int     `json:"snapshotWarnings"`
}

const shiftHours = 8.0

// GetDashboardSummary aggregates the plan into the headline figures of the
// planner dashboard. Production time assumes full packs: packs are produced
// whole, so the projected pieces can exceed the raw shortage.
func (s *Service) GetDashboardSummary(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req GetDashboardSummaryRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	rows, warnings, _, _ := s.computePlan(GetProductionPlanRequest(req))

	var res GetDashboardSummaryResponse
	res.TotalParts = len(rows)
	res.SnapshotWarnings = len(warnings)
	res.WeekEnd = utils.GetWeekendDate(time.Now()).Format("2006-01-02")

	for _, row := range rows {
		if row.ShortageUnits > 0 {
			res.TotalShort++
		}
		if isUrgent(row) {
			res.TotalUrgent++
		}

		res.TotalPacks += row.ShortagePacks

		pieces := float64(row.ShortagePacks * row.StdPack)
		res.TotalPieces += pieces
		res.ProductionHours += pieces * row.CycleTime / 3600.0
	}

	if res.ProductionHours > 0 {
		res.ShiftsNeeded = res.ProductionHours / shiftHours
	}

	return res, nil
}
