package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadExcelUpload reads the first (or named) sheet of an uploaded Excel file
// into header-keyed records.
func ReadExcelUpload(file *multipart.FileHeader, sheetName string) ([]map[string]interface{}, string, error) {
	fileName := file.Filename

	f, err := file.Open()
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	records, err := readExcelReader(f, sheetName)
	if err != nil {
		return nil, fileName, err
	}

	return records, fileName, nil
}

// ReadExcelPath reads a local Excel file into header-keyed records.
func ReadExcelPath(filePath string, sheetName string) ([]map[string]interface{}, error) {
	xlsx, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("unable to read Excel file: %w", err)
	}
	defer xlsx.Close()

	return readExcelRows(xlsx, sheetName)
}

func readExcelReader(r io.Reader, sheetName string) ([]map[string]interface{}, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Excel file: %w", err)
	}
	defer xlsx.Close()

	return readExcelRows(xlsx, sheetName)
}

func readExcelRows(xlsx *excelize.File, sheetName string) ([]map[string]interface{}, error) {
	if sheetName == "" {
		sheets := xlsx.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("no sheet found in the Excel file")
		}
		sheetName = sheets[0]
	}

	rows, err := xlsx.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("unable to read rows from sheet: %w", err)
	}

	if len(rows) < 2 {
		return nil, errors.New("no data found in the Excel file")
	}

	return RowsToRecords(rows), nil
}

// RowsToRecords turns a header row plus data rows into records keyed by the
// trimmed header names. Numeric-looking cells are coerced to float64, blank
// cells become nil.
func RowsToRecords(rows [][]string) []map[string]interface{} {
	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var results []map[string]interface{}

	for _, row := range rows[1:] {
		record := make(map[string]interface{})
		for j := range headers {
			columnName := headers[j]

			if j >= len(row) || strings.TrimSpace(row[j]) == "" {
				record[columnName] = nil
				continue
			}

			cell := strings.TrimSpace(row[j])
			if f, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64); err == nil {
				record[columnName] = f
			} else {
				record[columnName] = cell
			}
		}
		results = append(results, record)
	}

	return results
}
