package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("hexstar", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("hexstar_scatter", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("hexstar", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	scatterScores, err := store.TopScores("hexstar_scatter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scatterScores) != 1 {
		t.Errorf("Expected 1 scatter score, got %d", len(scatterScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("hexstar")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("hexstar", 100)
	store.SaveScore("hexstar", 300)
	store.SaveScore("hexstar", 200)

	high, err = store.HighScore("hexstar")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hexstar", 100)
	store.SaveScore("hexstar", 200)
	store.SaveScore("hexstar_scatter", 300)

	if err := store.ClearScores("hexstar"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	openScores, _ := store.TopScores("hexstar", 10)
	if len(openScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(openScores))
	}

	scatterScores, _ := store.TopScores("hexstar_scatter", 10)
	if len(scatterScores) != 1 {
		t.Errorf("Other games should not be affected by a clear")
	}
}

func TestStoreSaveAndListRoutes(t *testing.T) {
	store := openTestStore(t)

	routes := []struct{ pathLen, steps int }{
		{4, 3},
		{6, 8},
		{3, 2},
	}
	for _, r := range routes {
		if _, err := store.SaveRoute("hexstar", r.pathLen, r.steps); err != nil {
			t.Fatalf("SaveRoute() failed: %v", err)
		}
	}

	entries, err := store.RecentRoutes("hexstar", 10)
	if err != nil {
		t.Fatalf("RecentRoutes() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 routes, got %d", len(entries))
	}

	// Newest first
	if entries[0].PathLen != 3 || entries[0].Steps != 2 {
		t.Errorf("Expected newest route first, got %+v", entries[0])
	}
	if entries[2].PathLen != 4 || entries[2].Steps != 3 {
		t.Errorf("Expected oldest route last, got %+v", entries[2])
	}
}

func TestStoreRecentRoutesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.SaveRoute("hexstar", i+2, i+1)
	}

	entries, err := store.RecentRoutes("hexstar", 5)
	if err != nil {
		t.Fatalf("RecentRoutes() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("Expected 5 routes with limit, got %d", len(entries))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hexstar", 4)
	store.SaveScore("hexstar", 8)
	store.SaveRoute("hexstar", 4, 4)
	store.SaveRoute("hexstar", 5, 6)

	stats, err := store.GetGameStats("hexstar")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("Expected high score 8, got %d", stats.HighScore)
	}
	if stats.RoutesCount != 2 {
		t.Errorf("Expected 2 routes, got %d", stats.RoutesCount)
	}
	if stats.AvgSteps != 5 {
		t.Errorf("Expected average of 5 steps, got %f", stats.AvgSteps)
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
