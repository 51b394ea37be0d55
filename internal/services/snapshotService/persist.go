package snapshotService

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/db"
)

func (InventoryRow) TableName() string {
	return "inventory_snapshot_rows"
}

func (RequirementRow) TableName() string {
	return "requirement_snapshot_rows"
}

type InventoryRow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PartNumber string    `gorm:"column:part_number"`
	Quantity   float64   `gorm:"column:quantity"`
	Status     string    `gorm:"column:status"`
	Location   string    `gorm:"column:location"`
	Source     string    `gorm:"column:source"`
	FetchedAt  time.Time `gorm:"column:fetched_at"`
}

type RequirementRow struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	PartNumber        string    `gorm:"column:part_number"`
	WeeklyRequirement float64   `gorm:"column:weekly_requirement"`
	ShippingDays      int       `gorm:"column:shipping_days"`
	Source            string    `gorm:"column:source"`
	FetchedAt         time.Time `gorm:"column:fetched_at"`
}

func persistEnabled() bool {
	return os.Getenv("snapshot_db_persist") == "true"
}

// persistInventory mirrors the freshly fetched snapshot into Postgres,
// replacing the previous one. Persistence failures are logged, never fatal:
// the in-memory cache already holds the snapshot.
func persistInventory(snap InventorySnapshot) {
	if !persistEnabled() {
		return
	}

	gormx, err := db.ConnectGORM(plannerDatabase)
	if err != nil {
		log.Printf("inventory snapshot persist skipped: %v", err)
		return
	}
	defer db.CloseGORM(gormx)

	rows := make([]InventoryRow, 0, len(snap.Records))
	for _, rec := range snap.Records {
		rows = append(rows, InventoryRow{
			PartNumber: rec.PartNumber,
			Quantity:   rec.Quantity,
			Status:     rec.Status,
			Location:   rec.Location,
			Source:     snap.Source,
			FetchedAt:  snap.FetchedAt,
		})
	}

	if err := replaceRows(gormx, "inventory_snapshot_rows", rows); err != nil {
		log.Printf("inventory snapshot persist failed: %v", err)
	}
}

func persistRequirements(snap RequirementSnapshot) {
	if !persistEnabled() {
		return
	}

	gormx, err := db.ConnectGORM(plannerDatabase)
	if err != nil {
		log.Printf("requirement snapshot persist skipped: %v", err)
		return
	}
	defer db.CloseGORM(gormx)

	rows := make([]RequirementRow, 0, len(snap.Records))
	for _, rec := range snap.Records {
		rows = append(rows, RequirementRow{
			PartNumber:        rec.PartNumber,
			WeeklyRequirement: rec.WeeklyRequirement,
			ShippingDays:      rec.ShippingDays,
			Source:            snap.Source,
			FetchedAt:         snap.FetchedAt,
		})
	}

	if err := replaceRows(gormx, "requirement_snapshot_rows", rows); err != nil {
		log.Printf("requirement snapshot persist failed: %v", err)
	}
}

func replaceRows[T any](gormx *gorm.DB, table string, rows []T) error {
	tx := gormx.Begin()

	if err := tx.Exec(`delete from ` + table).Error; err != nil {
		tx.Rollback()
		return err
	}

	if len(rows) > 0 {
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}
