package fetchlog

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/db"
)

// AddFetchLog records one snapshot refresh attempt in the fetch_logs table.
func AddFetchLog(sqlxdb *sqlx.DB, dataset string, source string, rowCount int, fetchStatus bool, fetchReason string) error {
	sql := `INSERT INTO fetch_logs (
		dataset,
		source,
		row_count,
		status,
		fetch_date,
		fetch_reason
	) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := db.ExecuteQuery(sqlxdb, sql,
		dataset,
		source,
		rowCount,
		fetchStatus,
		time.Now().Format(time.RFC3339),
		fetchReason)

	return err
}
