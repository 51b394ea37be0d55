package planService

import (
	"math"
	"sort"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/referenceService"
)

// ReferenceLookup supplies part attributes by part number with safe defaults
// for unknown parts.
type ReferenceLookup interface {
	Get(partNumber string) referenceService.PartReference
}

// ComputePlan joins the inventory and requirement snapshots with the part
// reference data and returns one recommendation row per demanded part,
// sorted by priority (parts closest to stock-out first).
//
// The computation is stateless: inputs are not mutated and every call
// allocates a fresh result.
func ComputePlan(inventory []InventoryRecord, requirements []RequirementRecord, reference ReferenceLookup) []ProductionPlanRow {
	stock := AggregateInventory(inventory)
	demand := aggregateRequirements(requirements)

	rows := make([]ProductionPlanRow, 0, len(demand))

	for _, req := range demand {
		currentInventory := stock[req.PartNumber]

		// Demand projected over the shipping lead-time window, normalized
		// against a 7-day week. shipping_days 0 yields a zero horizon; kept
		// as the literal arithmetic, pending product-owner confirmation.
		requiredForHorizon := req.WeeklyRequirement * float64(req.ShippingDays) / 7.0

		shortageUnits := requiredForHorizon - currentInventory
		if shortageUnits < 0 {
			shortageUnits = 0
		}

		ref := reference.Get(req.PartNumber)

		shortagePacks := int(shortageUnits)
		if ref.StdPack > 0 {
			shortagePacks = int(math.Ceil(shortageUnits / float64(ref.StdPack)))
		}

		daysOfCoverage := math.Inf(1)
		if req.WeeklyRequirement > 0 {
			daysOfCoverage = currentInventory / (req.WeeklyRequirement / 7.0)
		}

		rows = append(rows, ProductionPlanRow{
			PartNumber:        req.PartNumber,
			CurrentInventory:  currentInventory,
			WeeklyRequirement: req.WeeklyRequirement,
			ShippingDays:      req.ShippingDays,
			DaysOfCoverage:    daysOfCoverage,
			ShortageUnits:     shortageUnits,
			ShortagePacks:     shortagePacks,
			StdPack:           ref.StdPack,
			CycleTime:         ref.CycleTime,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DaysOfCoverage != rows[j].DaysOfCoverage {
			return rows[i].DaysOfCoverage < rows[j].DaysOfCoverage
		}
		return rows[i].PartNumber < rows[j].PartNumber
	})

	for i := range rows {
		rows[i].Priority = i + 1
	}

	return rows
}

// AggregateInventory sums snapshot quantities per part number. Duplicate rows
// are additive; the result does not depend on row order. Rows with a blank
// part number are skipped.
func AggregateInventory(inventory []InventoryRecord) map[string]float64 {
	totals := map[string]float64{}

	for _, rec := range inventory {
		if rec.PartNumber == "" {
			continue
		}
		totals[rec.PartNumber] += rec.Quantity
	}

	return totals
}

// aggregateRequirements collapses duplicate requirement rows per part with a
// last-write-wins policy on ingestion order, preserving the first-seen order
// of parts.
func aggregateRequirements(requirements []RequirementRecord) []RequirementRecord {
	index := map[string]int{}
	out := make([]RequirementRecord, 0, len(requirements))

	for _, rec := range requirements {
		if rec.PartNumber == "" {
			continue
		}
		if i, ok := index[rec.PartNumber]; ok {
			out[i] = rec
			continue
		}
		index[rec.PartNumber] = len(out)
		out = append(out, rec)
	}

	return out
}
