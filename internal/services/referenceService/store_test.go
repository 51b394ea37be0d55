package referenceService

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reference_data.csv")
	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	return store, path
}

func TestOpenStore_CreatesFileWithHeader(t *testing.T) {
	t.Parallel()

	_, path := tempStore(t)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reference file not created: %v", err)
	}
	if !strings.HasPrefix(string(raw), "part_number,std_pack,cycle_time") {
		t.Fatalf("unexpected header: %q", string(raw))
	}
}

func TestStore_GetMissReturnsDefaults(t *testing.T) {
	t.Parallel()

	store, _ := tempStore(t)

	ref := store.Get("UNKNOWN")
	if ref.PartNumber != "UNKNOWN" {
		t.Fatalf("part number want=UNKNOWN got=%s", ref.PartNumber)
	}
	if ref.StdPack != 1 || ref.CycleTime != 0 {
		t.Fatalf("defaults want std_pack=1 cycle_time=0 got %d %v", ref.StdPack, ref.CycleTime)
	}
	if store.Has("UNKNOWN") {
		t.Fatalf("Has should be false for a defaulted part")
	}
}

func TestStore_UpsertRoundTrip(t *testing.T) {
	t.Parallel()

	store, path := tempStore(t)

	rec := PartReference{
		PartNumber:  "ABC123",
		StdPack:     100,
		CycleTime:   30.5,
		Color:       "Negro",
		Description: "Moldura lateral",
		Machine:     "Extrusora 1",
		Location:    "Nave A",
		Notes:       "turno nocturno",
	}

	if err := store.Upsert(rec); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if got := store.Get("ABC123"); got != rec {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", rec, got)
	}

	// A fresh store over the same file must read back identical fields.
	reloaded, err := OpenStore(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := reloaded.Get("ABC123"); got != rec {
		t.Fatalf("persisted round trip mismatch:\nwant %+v\ngot  %+v", rec, got)
	}
}

func TestStore_UpsertReplacesExisting(t *testing.T) {
	t.Parallel()

	store, _ := tempStore(t)

	if err := store.Upsert(PartReference{PartNumber: "X", StdPack: 10}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if err := store.Upsert(PartReference{PartNumber: "X", StdPack: 25}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if got := store.Get("X").StdPack; got != 25 {
		t.Fatalf("std pack want=25 got=%d", got)
	}
	if n := len(store.All()); n != 1 {
		t.Fatalf("part_number must stay unique, got %d records", n)
	}
}

func TestStore_AllKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	store, _ := tempStore(t)

	for _, pn := range []string{"C3", "A1", "B2"} {
		if err := store.Upsert(PartReference{PartNumber: pn, StdPack: 1}); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for i, want := range []string{"C3", "A1", "B2"} {
		if all[i].PartNumber != want {
			t.Fatalf("order[%d] want=%s got=%s", i, want, all[i].PartNumber)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	store, path := tempStore(t)

	if err := store.Upsert(PartReference{PartNumber: "GONE", StdPack: 5}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	deleted, err := store.Delete("GONE")
	if err != nil || !deleted {
		t.Fatalf("Delete want=true,nil got=%v,%v", deleted, err)
	}

	deleted, err = store.Delete("GONE")
	if err != nil || deleted {
		t.Fatalf("second Delete want=false,nil got=%v,%v", deleted, err)
	}

	reloaded, err := OpenStore(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Has("GONE") {
		t.Fatalf("deleted part survived the file")
	}
}
