package dashboardService

import (
	"math"
	"strconv"
	"time"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/planService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/referenceService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/snapshotService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

// Service serves the planning endpoints from the shared snapshot cache and
// reference store.
type Service struct {
	Cache *snapshotService.Cache
	Store *referenceService.Store
}

// PlanRowResponse is the wire form of one plan row. DaysOfCoverage is
// rendered as a string so the INF sentinel (no demand, inventory never
// depletes) survives JSON.
type PlanRowResponse struct {
	PartNumber        string  `json:"partNumber"`
	Description       string  `json:"description"`
	CurrentInventory  float64 `json:"currentInventory"`
	WeeklyRequirement float64 `json:"weeklyRequirement"`
	ShippingDays      int     `json:"shippingDays"`
	DaysOfCoverage    string  `json:"daysOfCoverage"`
	ShortageUnits     float64 `json:"shortageUnits"`
	ShortagePacks     int     `json:"shortagePacks"`
	StdPack           int     `json:"stdPack"`
	CycleTime         float64 `json:"cycleTime"`
	Priority          int     `json:"priority"`
	HasReference      bool    `json:"hasReference"`
	NextShipmentDate  string  `json:"nextShipmentDate"`
}

const coverageInfinite = "INF"

func formatCoverage(v float64) string {
	if math.IsInf(v, 1) {
		return coverageInfinite
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func nextShipmentDate(now time.Time, shippingDays int) string {
	d := now.AddDate(0, 0, shippingDays)
	return d.Format("2006-01-02") + " (" + utils.GetShortWeekday(d) + ")"
}

// isUrgent marks parts whose inventory runs out before the next shipment.
func isUrgent(row planService.ProductionPlanRow) bool {
	return row.DaysOfCoverage < float64(row.ShippingDays)
}
