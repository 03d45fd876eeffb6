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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("typebrick", 100, false, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("typebrick", 50, false, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("typebrick", 200, true, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// The classic variant keeps a separate ladder
	if _, err := store.SaveScore("typebrick_classic", 500, true, 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("typebrick", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// The winning run keeps its outcome
	if !scores[0].Won || scores[0].LivesLeft != 4 {
		t.Errorf("Expected top entry won with 4 lives, got won=%v lives=%d",
			scores[0].Won, scores[0].LivesLeft)
	}
	if scores[1].Won {
		t.Error("Losing run should not be marked won")
	}

	classicScores, err := store.TopScores("typebrick_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classicScores) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classicScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("typebrick", (i+1)*100, false, 0)
	}

	scores, err := store.TopScores("typebrick", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("typebrick")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("typebrick", 100, false, 0)
	store.SaveScore("typebrick", 300, true, 2)
	store.SaveScore("typebrick", 200, false, 0)

	high, err = store.HighScore("typebrick")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("typebrick", 100, false, 0)
	store.SaveScore("typebrick", 200, false, 0)
	store.SaveScore("typebrick_classic", 300, false, 0)

	if err := store.ClearScores("typebrick"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	letterScores, _ := store.TopScores("typebrick", 10)
	if len(letterScores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(letterScores))
	}

	classicScores, _ := store.TopScores("typebrick_classic", 10)
	if len(classicScores) != 1 {
		t.Error("Classic scores should not be affected by clearing the letter variant")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("typebrick", i*10, false, 0)
	}

	scores, err := store.AllScores("typebrick")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("typebrick", 100, false, 0)
	store.SaveScore("typebrick", 300, true, 5)
	store.SaveScore("typebrick", 200, true, 1)

	stats, err := store.GetGameStats("typebrick")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.WinsCount != 2 {
		t.Errorf("Expected 2 wins, got %d", stats.WinsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("Expected total score 600, got %d", stats.TotalScore)
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
