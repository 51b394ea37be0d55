package snapshotService

import (
	"fmt"
	"time"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/planService"
)

// Dataset names used in errors and warnings.
const (
	DatasetInventory    = "inventory"
	DatasetRequirements = "requirements"
)

// SchemaError reports a required column missing from an input table. A
// missing column aborts the whole dataset; only missing values are
// defaultable.
type SchemaError struct {
	Dataset string
	Column  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %s: required column %q is missing", e.Dataset, e.Column)
}

// CoercionWarning records a cell that failed numeric coercion and was
// substituted with 0. Non-fatal; returned alongside the parsed records.
type CoercionWarning struct {
	Dataset    string `json:"dataset"`
	PartNumber string `json:"part_number"`
	Column     string `json:"column"`
	Value      string `json:"value"`
}

func (w CoercionWarning) String() string {
	return fmt.Sprintf("%s/%s: column %s value %q is not numeric, using 0", w.Dataset, w.PartNumber, w.Column, w.Value)
}

// InventorySnapshot is a parsed, timestamped inventory extract.
type InventorySnapshot struct {
	Records   []planService.InventoryRecord
	Warnings  []CoercionWarning
	FetchedAt time.Time
	Source    string
}

// RequirementSnapshot is a parsed, timestamped customer-requirement extract.
type RequirementSnapshot struct {
	Records   []planService.RequirementRecord
	Warnings  []CoercionWarning
	FetchedAt time.Time
	Source    string
}
