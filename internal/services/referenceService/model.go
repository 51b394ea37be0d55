package referenceService

import "fmt"

// PartReference carries the static attributes of a part used by the
// production calculation and the planning views.
type PartReference struct {
	PartNumber  string  `json:"part_number"`
	StdPack     int     `json:"std_pack"`
	CycleTime   float64 `json:"cycle_time"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	Machine     string  `json:"machine"`
	Location    string  `json:"location"`
	Notes       string  `json:"notes"`
}

// CsvHeader is the column layout of the backing reference file.
var CsvHeader = []string{
	"part_number", "std_pack", "cycle_time", "color",
	"description", "machine", "location", "notes",
}

// DefaultReference is returned when a part has no stored attributes.
// std_pack 1 and cycle_time 0 keep downstream arithmetic safe.
func DefaultReference(partNumber string) PartReference {
	return PartReference{
		PartNumber: partNumber,
		StdPack:    1,
		CycleTime:  0,
	}
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid reference data: %s %s", e.Field, e.Reason)
}
