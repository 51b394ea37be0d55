package planService

// InventoryRecord is one stock row of the current inventory snapshot.
// Several rows may exist per part; the calculator sums them.
type InventoryRecord struct {
	PartNumber string
	Quantity   float64
	Status     string
	Location   string
}

// RequirementRecord is one customer-demand row: pieces pulled per week and
// the lead time in days before the next shipment.
type RequirementRecord struct {
	PartNumber        string
	WeeklyRequirement float64
	ShippingDays      int
}

// ProductionPlanRow is the computed recommendation for one part.
// ShortageUnits is never negative and ShortagePacks is always the ceiling of
// ShortageUnits over StdPack. DaysOfCoverage is +Inf when the part has no
// weekly demand.
type ProductionPlanRow struct {
	PartNumber        string
	CurrentInventory  float64
	WeeklyRequirement float64
	ShippingDays      int
	DaysOfCoverage    float64
	ShortageUnits     float64
	ShortagePacks     int
	StdPack           int
	CycleTime         float64
	Priority          int
}
