package snapshotService

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/db"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/driveService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/fetchlog"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/sftpService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

const plannerDatabase = "planner"

// DatasetSource describes where one snapshot dataset comes from. Mode is one
// of dir, sftp, drive or db.
type DatasetSource struct {
	Dataset    string
	Mode       string
	Dir        string
	Prefix     string
	RemotePath string
	DriveURL   string
	Query      string
}

// InventorySource reads the inventory dataset source from the environment.
func InventorySource() DatasetSource {
	return datasetSourceFromEnv("inventory", DatasetInventory,
		`select part_number, quantity, status, location from inventory_snapshot`)
}

// RequirementSource reads the requirement dataset source from the environment.
func RequirementSource() DatasetSource {
	return datasetSourceFromEnv("requirement", DatasetRequirements,
		`select part_number, weekly_requirement, shipping_days from requirement_snapshot`)
}

func datasetSourceFromEnv(envPrefix, dataset, defaultQuery string) DatasetSource {
	src := DatasetSource{
		Dataset:    dataset,
		Mode:       os.Getenv(envPrefix + "_source"),
		Dir:        os.Getenv(envPrefix + "_path"),
		Prefix:     os.Getenv(envPrefix + "_prefix"),
		RemotePath: os.Getenv(envPrefix + "_remote_path"),
		DriveURL:   os.Getenv(envPrefix + "_drive_url"),
		Query:      os.Getenv(envPrefix + "_db_query"),
	}

	if src.Mode == "" {
		src.Mode = "dir"
	}
	if src.Dir == "" {
		src.Dir = filepath.Join("data", "snapshots")
	}
	if src.Query == "" {
		src.Query = defaultQuery
	}

	return src
}

// RefreshInterval returns the snapshot refresh cadence, default 5 minutes.
func RefreshInterval() time.Duration {
	raw := os.Getenv("snapshot_refresh_interval")
	if raw == "" {
		return 5 * time.Minute
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid snapshot_refresh_interval %q, using 5m", raw)
		return 5 * time.Minute
	}
	return d
}

// Refresher fetches both datasets into the cache on demand and on the cron
// schedule. A failed fetch keeps the previous snapshot in place.
type Refresher struct {
	Cache *Cache
}

func (r *Refresher) RefreshAll() {
	if err := r.RefreshInventory(); err != nil {
		log.Printf("inventory refresh failed: %v", err)
	}
	if err := r.RefreshRequirements(); err != nil {
		log.Printf("requirement refresh failed: %v", err)
	}
}

func (r *Refresher) RefreshInventory() error {
	src := InventorySource()

	records, source, err := fetchRecords(src)
	if err != nil {
		logFetch(src.Dataset, source, 0, false, err.Error())
		return err
	}

	rows, warnings, err := ParseInventoryRows(records)
	if err != nil {
		logFetch(src.Dataset, source, 0, false, err.Error())
		return err
	}

	snap := InventorySnapshot{
		Records:   rows,
		Warnings:  warnings,
		FetchedAt: time.Now(),
		Source:    source,
	}
	r.Cache.SetInventory(snap)

	logFetch(src.Dataset, source, len(rows), true, "")
	persistInventory(snap)

	log.Printf("inventory snapshot refreshed: %d rows, %d warnings, source %s", len(rows), len(warnings), source)
	return nil
}

func (r *Refresher) RefreshRequirements() error {
	src := RequirementSource()

	records, source, err := fetchRecords(src)
	if err != nil {
		logFetch(src.Dataset, source, 0, false, err.Error())
		return err
	}

	rows, warnings, err := ParseRequirementRows(records)
	if err != nil {
		logFetch(src.Dataset, source, 0, false, err.Error())
		return err
	}

	snap := RequirementSnapshot{
		Records:   rows,
		Warnings:  warnings,
		FetchedAt: time.Now(),
		Source:    source,
	}
	r.Cache.SetRequirements(snap)

	logFetch(src.Dataset, source, len(rows), true, "")
	persistRequirements(snap)

	log.Printf("requirement snapshot refreshed: %d rows, %d warnings, source %s", len(rows), len(warnings), source)
	return nil
}

func fetchRecords(src DatasetSource) ([]map[string]interface{}, string, error) {
	switch src.Mode {
	case "dir":
		path, err := utils.FindLatestFileWithPrefix(src.Dir, src.Prefix)
		if err != nil {
			return nil, src.Dir, err
		}
		records, err := readTabularFile(path)
		return records, path, err

	case "sftp":
		client, sshConn, err := sftpService.NewClient()
		if err != nil {
			return nil, src.RemotePath, err
		}
		defer client.Close()
		defer sshConn.Close()

		localPath, err := sftpService.DownloadLatest(client, src.RemotePath, src.Prefix, src.Dir)
		if err != nil {
			return nil, src.RemotePath, err
		}
		records, err := readTabularFile(localPath)
		return records, localPath, err

	case "drive":
		destPath := filepath.Join(src.Dir, src.Dataset+".csv")
		if err := driveService.DownloadToFile(src.DriveURL, destPath); err != nil {
			return nil, src.DriveURL, err
		}
		records, err := utils.ReadCsvFile(destPath)
		return records, src.DriveURL, err

	case "db":
		sqlxdb, err := db.ConnectSqlx(plannerDatabase)
		if err != nil {
			return nil, plannerDatabase, err
		}
		defer sqlxdb.Close()

		records, err := db.ExecuteQuery(sqlxdb, src.Query)
		return records, plannerDatabase, err

	default:
		return nil, "", fmt.Errorf("unknown snapshot source mode %q", src.Mode)
	}
}

func readTabularFile(path string) ([]map[string]interface{}, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xls" {
		return utils.ReadExcelPath(path, "")
	}
	return utils.ReadCsvFile(path)
}

// logFetch writes a fetch_logs row when the planner database is configured;
// without one it is a no-op.
func logFetch(dataset, source string, rowCount int, ok bool, reason string) {
	if os.Getenv("database_sqlx_url_"+plannerDatabase) == "" {
		return
	}

	sqlxdb, err := db.ConnectSqlx(plannerDatabase)
	if err != nil {
		log.Printf("fetch log skipped: %v", err)
		return
	}
	defer sqlxdb.Close()

	if err := fetchlog.AddFetchLog(sqlxdb, dataset, source, rowCount, ok, reason); err != nil {
		log.Printf("fetch log insert failed: %v", err)
	}
}
