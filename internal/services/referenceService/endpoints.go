package referenceService

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

// Service exposes the reference management endpoints over a shared store.
type Service struct {
	Store *Store
}

type upsertPartRequest struct {
	Part PartReference `json:"part"`
}

type deletePartRequest struct {
	PartNumber string `json:"part_number"`
}

type importReferenceResponse struct {
	FileName string   `json:"fileName"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func (s *Service) GetAll(c *gin.Context, jsonPayload string) (interface{}, error) {
	return s.Store.All(), nil
}

func (s *Service) UpsertPart(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req upsertPartRequest

	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
	}

	if err := ApplyEdit(s.Store, req.Part); err != nil {
		return nil, err
	}

	return s.Store.Get(req.Part.PartNumber), nil
}

func (s *Service) DeletePart(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req deletePartRequest

	if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
		return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
	}

	deleted, err := s.Store.Delete(req.PartNumber)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, fmt.Errorf("part %s not found", req.PartNumber)
	}

	return gin.H{"deleted": req.PartNumber}, nil
}

// ImportReference merges an uploaded Excel or CSV reference table into the
// store: existing parts are replaced, new parts appended. Rows that fail
// validation are skipped and reported, not written.
func (s *Service) ImportReference(c *gin.Context) (interface{}, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("file upload error: %w", err)
	}

	var records []map[string]interface{}
	fileName := file.Filename

	if strings.HasSuffix(strings.ToLower(fileName), ".csv") {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("unable to open file: %w", err)
		}
		defer f.Close()

		records, err = utils.ReadCsv(f)
		if err != nil {
			return nil, err
		}
	} else {
		records, _, err = utils.ReadExcelUpload(file, "")
		if err != nil {
			return nil, err
		}
	}

	res := importReferenceResponse{FileName: fileName, Errors: []string{}}

	for i, row := range records {
		rec := recordToReference(row)

		if err := ApplyEdit(s.Store, rec); err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		res.Imported++
	}

	log.Printf("reference import %s: %d imported, %d skipped", fileName, res.Imported, res.Skipped)

	return res, nil
}

func recordToReference(row map[string]interface{}) PartReference {
	stdPack, _ := utils.GetFloat(row, "std_pack")
	cycleTime, _ := utils.GetFloat(row, "cycle_time")

	return PartReference{
		PartNumber:  utils.GetString(row, "part_number"),
		StdPack:     int(stdPack),
		CycleTime:   cycleTime,
		Color:       utils.GetString(row, "color"),
		Description: utils.GetString(row, "description"),
		Machine:     utils.GetString(row, "machine"),
		Location:    utils.GetString(row, "location"),
		Notes:       utils.GetString(row, "notes"),
	}
}
