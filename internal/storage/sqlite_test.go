package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Winner: "X", Starting: "X", Moves: 5, Session: "alice"},
		{Winner: "", Starting: "O", Moves: 9, Session: "alice"},
		{Winner: "O", Starting: "O", Moves: 7, Session: "bob"},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	got, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(got))
	}

	// Newest first
	if got[0].Winner != "O" || got[0].Session != "bob" || got[0].Moves != 7 {
		t.Errorf("Expected newest result first, got %+v", got[0])
	}
	if !got[1].Tie() {
		t.Errorf("Expected second result to be a tie, got %+v", got[1])
	}
	if got[2].Starting != "X" {
		t.Errorf("Expected oldest result last, got %+v", got[2])
	}
	if got[2].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled by the database")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Winner: "X", Starting: "X", Moves: 5 + i})
	}

	got, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(got))
	}
	if got[0].Moves != 9 || got[2].Moves != 7 {
		t.Errorf("Results not in expected order: %+v", got)
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	// No games yet
	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals != (Totals{}) {
		t.Errorf("Expected empty totals, got %+v", totals)
	}

	for _, w := range []string{"X", "X", "O", "", ""} {
		store.SaveResult(Result{Winner: w, Starting: "X", Moves: 9})
	}

	totals, err = store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	want := Totals{Games: 5, WinsX: 2, WinsO: 1, Ties: 2}
	if totals != want {
		t.Errorf("Totals() = %+v, want %+v", totals, want)
	}
}

func TestStoreLastResult(t *testing.T) {
	store := openTestStore(t)

	last, err := store.LastResult()
	if err != nil {
		t.Fatalf("LastResult() failed: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil for empty store, got %+v", last)
	}

	store.SaveResult(Result{Winner: "X", Starting: "X", Moves: 5})
	id, _ := store.SaveResult(Result{Winner: "O", Starting: "O", Moves: 6})

	last, err = store.LastResult()
	if err != nil {
		t.Fatalf("LastResult() failed: %v", err)
	}
	if last == nil || last.ID != id || last.Winner != "O" {
		t.Errorf("LastResult() = %+v, want id %d won by O", last, id)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Winner: "X", Starting: "X", Moves: 5})
	store.SaveResult(Result{Winner: "O", Starting: "X", Moves: 6})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	got, _ := store.RecentResults(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(got))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveResult(Result{Winner: "X", Starting: "X", Moves: 5})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	totals, _ := store.Totals()
	if totals.Games != 1 {
		t.Errorf("Expected 1 game after reopen, got %d", totals.Games)
	}
}
