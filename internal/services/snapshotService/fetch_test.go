package snapshotService

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRefreshInventory_FromDirectory(t *testing.T) {
	dir := t.TempDir()

	csv := "part_number,quantity,status,location\nABC123,120,ok,A1\nABC123,30,ok,A2\n"
	if err := os.WriteFile(filepath.Join(dir, "INV_latest.csv"), []byte(csv), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	t.Setenv("inventory_source", "dir")
	t.Setenv("inventory_path", dir)
	t.Setenv("inventory_prefix", "INV_")

	cache := NewCache()
	r := &Refresher{Cache: cache}

	if err := r.RefreshInventory(); err != nil {
		t.Fatalf("RefreshInventory failed: %v", err)
	}

	snap := cache.Inventory()
	if len(snap.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(snap.Records))
	}
	if snap.Records[0].PartNumber != "ABC123" || snap.Records[0].Quantity != 120 {
		t.Fatalf("unexpected first record: %+v", snap.Records[0])
	}
	if snap.FetchedAt.IsZero() {
		t.Fatalf("snapshot must carry a fetch timestamp")
	}
}

func TestRefreshInventory_FailureKeepsPreviousSnapshot(t *testing.T) {
	t.Setenv("inventory_source", "dir")
	t.Setenv("inventory_path", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("inventory_prefix", "INV_")

	cache := NewCache()
	previous := InventorySnapshot{
		Records:   nil,
		FetchedAt: time.Now().Add(-time.Hour),
		Source:    "previous",
	}
	cache.SetInventory(previous)

	r := &Refresher{Cache: cache}
	if err := r.RefreshInventory(); err == nil {
		t.Fatalf("expected an error for a missing source directory")
	}

	if got := cache.Inventory().Source; got != "previous" {
		t.Fatalf("failed refresh must keep the old snapshot, got source %q", got)
	}
}

func TestRefreshRequirements_SchemaErrorAbortsDataset(t *testing.T) {
	dir := t.TempDir()

	csv := "part_number,weekly_requirement\nABC123,120\n"
	if err := os.WriteFile(filepath.Join(dir, "REQ_latest.csv"), []byte(csv), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	t.Setenv("requirement_source", "dir")
	t.Setenv("requirement_path", dir)
	t.Setenv("requirement_prefix", "REQ_")

	cache := NewCache()
	r := &Refresher{Cache: cache}

	err := r.RefreshRequirements()
	if err == nil {
		t.Fatalf("expected a schema error")
	}
	if len(cache.Requirements().Records) != 0 {
		t.Fatalf("a schema error must not publish a snapshot")
	}
}

func TestRefreshInterval_Default(t *testing.T) {
	t.Setenv("snapshot_refresh_interval", "")
	if got := RefreshInterval(); got != 5*time.Minute {
		t.Fatalf("default interval want=5m got=%s", got)
	}

	t.Setenv("snapshot_refresh_interval", "90s")
	if got := RefreshInterval(); got != 90*time.Second {
		t.Fatalf("interval want=90s got=%s", got)
	}

	t.Setenv("snapshot_refresh_interval", "pronto")
	if got := RefreshInterval(); got != 5*time.Minute {
		t.Fatalf("invalid interval must fall back to 5m, got %s", got)
	}
}
