package snapshotService

import (
	"math"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/planService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

var inventoryColumns = []string{"part_number", "quantity", "status", "location"}
var requirementColumns = []string{"part_number", "weekly_requirement", "shipping_days"}

// ParseInventoryRows turns header-keyed records into typed inventory rows.
// Extra columns are ignored; a missing required column aborts with a
// SchemaError. Non-numeric quantities become 0 with a warning, rows without
// a part number are dropped.
func ParseInventoryRows(records []map[string]interface{}) ([]planService.InventoryRecord, []CoercionWarning, error) {
	if err := checkColumns(DatasetInventory, records, inventoryColumns); err != nil {
		return nil, nil, err
	}

	var rows []planService.InventoryRecord
	var warnings []CoercionWarning

	for _, rec := range records {
		partNumber := utils.GetString(rec, "part_number")
		if partNumber == "" {
			continue
		}

		quantity, ok := utils.GetFloat(rec, "quantity")
		if !ok {
			warnings = append(warnings, CoercionWarning{
				Dataset:    DatasetInventory,
				PartNumber: partNumber,
				Column:     "quantity",
				Value:      utils.GetString(rec, "quantity"),
			})
			quantity = 0
		}
		if quantity < 0 || math.IsNaN(quantity) {
			quantity = 0
		}

		rows = append(rows, planService.InventoryRecord{
			PartNumber: partNumber,
			Quantity:   quantity,
			Status:     utils.GetString(rec, "status"),
			Location:   utils.GetString(rec, "location"),
		})
	}

	return rows, warnings, nil
}

// ParseRequirementRows turns header-keyed records into typed requirement
// rows under the same coercion rules as ParseInventoryRows.
func ParseRequirementRows(records []map[string]interface{}) ([]planService.RequirementRecord, []CoercionWarning, error) {
	if err := checkColumns(DatasetRequirements, records, requirementColumns); err != nil {
		return nil, nil, err
	}

	var rows []planService.RequirementRecord
	var warnings []CoercionWarning

	for _, rec := range records {
		partNumber := utils.GetString(rec, "part_number")
		if partNumber == "" {
			continue
		}

		weekly, ok := utils.GetFloat(rec, "weekly_requirement")
		if !ok {
			warnings = append(warnings, CoercionWarning{
				Dataset:    DatasetRequirements,
				PartNumber: partNumber,
				Column:     "weekly_requirement",
				Value:      utils.GetString(rec, "weekly_requirement"),
			})
			weekly = 0
		}
		if weekly < 0 || math.IsNaN(weekly) {
			weekly = 0
		}

		shippingDays, ok := utils.GetFloat(rec, "shipping_days")
		if !ok {
			warnings = append(warnings, CoercionWarning{
				Dataset:    DatasetRequirements,
				PartNumber: partNumber,
				Column:     "shipping_days",
				Value:      utils.GetString(rec, "shipping_days"),
			})
			shippingDays = 0
		}
		if shippingDays < 0 || math.IsNaN(shippingDays) {
			shippingDays = 0
		}

		rows = append(rows, planService.RequirementRecord{
			PartNumber:        partNumber,
			WeeklyRequirement: weekly,
			ShippingDays:      int(shippingDays),
		})
	}

	return rows, warnings, nil
}

// checkColumns verifies the header against the required column set using the
// first record; every record of a tabular read shares the same keys.
func checkColumns(dataset string, records []map[string]interface{}, required []string) error {
	if len(records) == 0 {
		return nil
	}

	for _, column := range required {
		if _, ok := records[0][column]; !ok {
			return &SchemaError{Dataset: dataset, Column: column}
		}
	}

	return nil
}
