package planService

import (
	"math"
	"testing"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/referenceService"
)

type stubLookup map[string]referenceService.PartReference

func (s stubLookup) Get(partNumber string) referenceService.PartReference {
	if ref, ok := s[partNumber]; ok {
		return ref
	}
	return referenceService.DefaultReference(partNumber)
}

func TestComputePlan_ShortageScenario(t *testing.T) {
	t.Parallel()

	inventory := []InventoryRecord{{PartNumber: "A", Quantity: 10}}
	requirements := []RequirementRecord{{PartNumber: "A", WeeklyRequirement: 14, ShippingDays: 7}}
	lookup := stubLookup{"A": {PartNumber: "A", StdPack: 5}}

	rows := ComputePlan(inventory, requirements, lookup)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.ShortageUnits != 4 {
		t.Fatalf("shortage units want=4 got=%v", row.ShortageUnits)
	}
	if row.ShortagePacks != 1 {
		t.Fatalf("shortage packs want=1 got=%d", row.ShortagePacks)
	}
	if row.CurrentInventory != 10 {
		t.Fatalf("current inventory want=10 got=%v", row.CurrentInventory)
	}
}

func TestComputePlan_ZeroWeeklyRequirement(t *testing.T) {
	t.Parallel()

	inventory := []InventoryRecord{{PartNumber: "B", Quantity: 50}}
	requirements := []RequirementRecord{{PartNumber: "B", WeeklyRequirement: 0, ShippingDays: 3}}

	rows := ComputePlan(inventory, requirements, stubLookup{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.ShortageUnits != 0 {
		t.Fatalf("shortage units want=0 got=%v", row.ShortageUnits)
	}
	if !math.IsInf(row.DaysOfCoverage, 1) {
		t.Fatalf("days of coverage want=+Inf got=%v", row.DaysOfCoverage)
	}
}

func TestComputePlan_ZeroShippingDays(t *testing.T) {
	t.Parallel()

	// shipping_days 0 forces the projected horizon to 0, so the shortage is
	// 0 no matter how large the weekly requirement is.
	requirements := []RequirementRecord{{PartNumber: "C", WeeklyRequirement: 1000, ShippingDays: 0}}

	rows := ComputePlan(nil, requirements, stubLookup{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ShortageUnits != 0 {
		t.Fatalf("shortage units want=0 got=%v", rows[0].ShortageUnits)
	}
}

func TestComputePlan_UnknownPartUsesDefaults(t *testing.T) {
	t.Parallel()

	requirements := []RequirementRecord{{PartNumber: "GHOST", WeeklyRequirement: 7, ShippingDays: 7}}

	rows := ComputePlan(nil, requirements, stubLookup{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.CurrentInventory != 0 {
		t.Fatalf("current inventory want=0 got=%v", row.CurrentInventory)
	}
	if row.StdPack != 1 {
		t.Fatalf("std pack want=1 got=%d", row.StdPack)
	}
	if row.CycleTime != 0 {
		t.Fatalf("cycle time want=0 got=%v", row.CycleTime)
	}
	if row.ShortageUnits != 7 {
		t.Fatalf("shortage units want=7 got=%v", row.ShortageUnits)
	}
	if row.ShortagePacks != 7 {
		t.Fatalf("shortage packs want=7 got=%d", row.ShortagePacks)
	}
}

func TestComputePlan_ShortageNeverNegative(t *testing.T) {
	t.Parallel()

	inventory := []InventoryRecord{{PartNumber: "D", Quantity: 10000}}
	requirements := []RequirementRecord{{PartNumber: "D", WeeklyRequirement: 7, ShippingDays: 7}}

	rows := ComputePlan(inventory, requirements, stubLookup{})
	if rows[0].ShortageUnits != 0 {
		t.Fatalf("shortage units want=0 got=%v", rows[0].ShortageUnits)
	}
	if rows[0].ShortagePacks != 0 {
		t.Fatalf("shortage packs want=0 got=%d", rows[0].ShortagePacks)
	}
}

func TestComputePlan_PackCeiling(t *testing.T) {
	t.Parallel()

	// 5 units short with a pack of 3 needs 2 packs, never a fraction.
	requirements := []RequirementRecord{{PartNumber: "E", WeeklyRequirement: 5, ShippingDays: 7}}
	lookup := stubLookup{"E": {PartNumber: "E", StdPack: 3}}

	rows := ComputePlan(nil, requirements, lookup)
	if rows[0].ShortageUnits != 5 {
		t.Fatalf("shortage units want=5 got=%v", rows[0].ShortageUnits)
	}
	if rows[0].ShortagePacks != 2 {
		t.Fatalf("shortage packs want=2 got=%d", rows[0].ShortagePacks)
	}
}

func TestComputePlan_PriorityOrdering(t *testing.T) {
	t.Parallel()

	inventory := []InventoryRecord{
		{PartNumber: "LOW", Quantity: 1},
		{PartNumber: "HIGH", Quantity: 100},
	}
	requirements := []RequirementRecord{
		{PartNumber: "HIGH", WeeklyRequirement: 7, ShippingDays: 7},
		{PartNumber: "LOW", WeeklyRequirement: 7, ShippingDays: 7},
	}

	rows := ComputePlan(inventory, requirements, stubLookup{})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].PartNumber != "LOW" || rows[0].Priority != 1 {
		t.Fatalf("first row want=LOW/1 got=%s/%d", rows[0].PartNumber, rows[0].Priority)
	}
	if rows[1].PartNumber != "HIGH" || rows[1].Priority != 2 {
		t.Fatalf("second row want=HIGH/2 got=%s/%d", rows[1].PartNumber, rows[1].Priority)
	}
}

func TestComputePlan_PriorityTieBreaksByPartNumber(t *testing.T) {
	t.Parallel()

	inventory := []InventoryRecord{
		{PartNumber: "ZZZ", Quantity: 10},
		{PartNumber: "AAA", Quantity: 10},
	}
	requirements := []RequirementRecord{
		{PartNumber: "ZZZ", WeeklyRequirement: 70, ShippingDays: 7},
		{PartNumber: "AAA", WeeklyRequirement: 70, ShippingDays: 7},
	}

	rows := ComputePlan(inventory, requirements, stubLookup{})
	if rows[0].PartNumber != "AAA" || rows[1].PartNumber != "ZZZ" {
		t.Fatalf("tie break order want=AAA,ZZZ got=%s,%s", rows[0].PartNumber, rows[1].PartNumber)
	}
}

func TestComputePlan_BlankPartNumberSkipped(t *testing.T) {
	t.Parallel()

	requirements := []RequirementRecord{
		{PartNumber: "", WeeklyRequirement: 100, ShippingDays: 7},
		{PartNumber: "F", WeeklyRequirement: 7, ShippingDays: 7},
	}

	rows := ComputePlan(nil, requirements, stubLookup{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PartNumber != "F" {
		t.Fatalf("part want=F got=%s", rows[0].PartNumber)
	}
}

func TestComputePlan_DuplicateRequirementLastWins(t *testing.T) {
	t.Parallel()

	requirements := []RequirementRecord{
		{PartNumber: "G", WeeklyRequirement: 70, ShippingDays: 7},
		{PartNumber: "G", WeeklyRequirement: 14, ShippingDays: 14},
	}

	rows := ComputePlan(nil, requirements, stubLookup{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].WeeklyRequirement != 14 || rows[0].ShippingDays != 14 {
		t.Fatalf("last write should win, got weekly=%v days=%d", rows[0].WeeklyRequirement, rows[0].ShippingDays)
	}
	if rows[0].ShortageUnits != 28 {
		t.Fatalf("shortage units want=28 got=%v", rows[0].ShortageUnits)
	}
}

func TestAggregateInventory_OrderIndependent(t *testing.T) {
	t.Parallel()

	records := []InventoryRecord{
		{PartNumber: "H", Quantity: 5},
		{PartNumber: "I", Quantity: 2},
		{PartNumber: "H", Quantity: 3.5},
		{PartNumber: "H", Quantity: 1.5},
	}

	forward := AggregateInventory(records)

	reversed := make([]InventoryRecord, len(records))
	for i, rec := range records {
		reversed[len(records)-1-i] = rec
	}
	backward := AggregateInventory(reversed)

	if forward["H"] != 10 || backward["H"] != 10 {
		t.Fatalf("H total want=10 got forward=%v backward=%v", forward["H"], backward["H"])
	}
	if forward["I"] != backward["I"] {
		t.Fatalf("aggregation depends on order: %v vs %v", forward["I"], backward["I"])
	}
}

func TestComputePlan_DaysOfCoverage(t *testing.T) {
	t.Parallel()

	inventory := []InventoryRecord{{PartNumber: "J", Quantity: 20}}
	requirements := []RequirementRecord{{PartNumber: "J", WeeklyRequirement: 14, ShippingDays: 7}}

	rows := ComputePlan(inventory, requirements, stubLookup{})
	if rows[0].DaysOfCoverage != 10 {
		t.Fatalf("days of coverage want=10 got=%v", rows[0].DaysOfCoverage)
	}
}

func TestComputePlan_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	requirements := []RequirementRecord{
		{PartNumber: "K", WeeklyRequirement: 7, ShippingDays: 7},
		{PartNumber: "K", WeeklyRequirement: 21, ShippingDays: 7},
	}

	ComputePlan(nil, requirements, stubLookup{})

	if requirements[0].WeeklyRequirement != 7 || requirements[1].WeeklyRequirement != 21 {
		t.Fatalf("input requirements mutated: %+v", requirements)
	}
}
