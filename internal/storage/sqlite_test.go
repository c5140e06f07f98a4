package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/overland/internal/core"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 50, 200} {
		_, err = store.SaveRun("roam", core.RunStats{Score: score, ChunksSeen: score})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Different mode
	_, err = store.SaveRun("rush", core.RunStats{Score: 500, DistanceTiles: 500})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("roam", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v %v %v",
			runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[0].ChunksSeen != 200 {
		t.Errorf("Expected ChunksSeen 200, got %d", runs[0].ChunksSeen)
	}

	rushRuns, err := store.TopRuns("rush", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(rushRuns) != 1 {
		t.Errorf("Expected 1 rush run, got %d", len(rushRuns))
	}
	if rushRuns[0].DistanceTiles != 500 {
		t.Errorf("Expected DistanceTiles 500, got %d", rushRuns[0].DistanceTiles)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun("roam", core.RunStats{Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("roam", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("roam")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.SaveRun("roam", core.RunStats{Score: 100})
	store.SaveRun("roam", core.RunStats{Score: 300})
	store.SaveRun("roam", core.RunStats{Score: 200})

	high, err = store.HighScore("roam")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("roam", core.RunStats{Score: 100})
	store.SaveRun("roam", core.RunStats{Score: 200})
	store.SaveRun("rush", core.RunStats{Score: 300})

	if err := store.ClearRuns("roam"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	roamRuns, _ := store.TopRuns("roam", 10)
	if len(roamRuns) != 0 {
		t.Errorf("Expected 0 roam runs after clear, got %d", len(roamRuns))
	}

	rushRuns, _ := store.TopRuns("rush", 10)
	if len(rushRuns) != 1 {
		t.Errorf("Rush runs should not be affected by clearing roam")
	}
}

func TestStoreModeStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("roam", core.RunStats{Score: 10, ChunksSeen: 10})
	store.SaveRun("roam", core.RunStats{Score: 30, ChunksSeen: 30})

	stats, err := store.GetModeStats("roam")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("Expected high score 30, got %d", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("Expected avg score 20, got %v", stats.AvgScore)
	}
	if stats.TotalChunks != 40 {
		t.Errorf("Expected 40 total chunks, got %d", stats.TotalChunks)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
