package dashboardService

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
)

type GetDashboardOverallRequest struct {
	Parts             []string `json:"parts"`
	AvailableStatuses []string `json:"availableStatuses"`
}

type GetDashboardOverallResponse struct {
	TotalParts       int      `json:"totalParts"`
	TotalShort       int      `json:"totalShort"`
	TotalUrgent      int      `json:"totalUrgent"`
	TotalNoReference int      `json:"totalNoReference"`
	ShortParts       []string `json:"shortParts"`
	UrgentParts      []string `json:"urgentParts"`
	NoReferenceParts []string `json:"noReferenceParts"`
}

// GetDashboardOverall lists the parts behind each headline count so the
// dashboard can drill into them.
func (s *Service) GetDashboardOverall(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req GetDashboardOverallRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	rows, _, _, _ := s.computePlan(GetProductionPlanRequest(req))

	var res GetDashboardOverallResponse
	res.TotalParts = len(rows)

	for _, row := range rows {
		if row.ShortageUnits > 0 {
			res.ShortParts = append(res.ShortParts, row.PartNumber)
			res.TotalShort++
		}
		if isUrgent(row) {
			res.UrgentParts = append(res.UrgentParts, row.PartNumber)
			res.TotalUrgent++
		}
		if !s.Store.Has(row.PartNumber) {
			res.NoReferenceParts = append(res.NoReferenceParts, row.PartNumber)
			res.TotalNoReference++
		}
	}

	return res, nil
}
