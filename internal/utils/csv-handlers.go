package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadCsvFile reads a comma-separated file with a header row into
// header-keyed records.
func ReadCsvFile(filePath string) ([]map[string]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer file.Close()

	return ReadCsv(file)
}

func ReadCsv(r io.Reader) ([]map[string]interface{}, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read CSV data: %w", err)
	}

	if len(rows) < 2 {
		return nil, errors.New("no data found in the CSV data")
	}

	return RowsToRecords(rows), nil
}
