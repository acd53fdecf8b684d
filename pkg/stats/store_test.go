package stats

import (
	"database/sql"
	"testing"
	"time"

	"github.com/japaniel/kotoba/pkg/dictionary"
	"github.com/japaniel/kotoba/pkg/game"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// An in-memory database exists per connection; keep a single one.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertRoundAndSessionRounds(t *testing.T) {
	db := openTestDB(t)

	now := time.Now().UTC()
	if err := InsertRound(db, 7, 101, "犬", "gloss-to-kana", 2, now); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := InsertRound(db, 7, 102, "猫", "gloss-to-kana", 0, now); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := InsertRound(db, 8, 101, "犬", "kana-to-gloss", 1, now); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := SessionRounds(db, 7)
	if err != nil {
		t.Fatalf("session rounds: %v", err)
	}
	if n != 2 {
		t.Fatalf("session 7 rounds = %d; want 2", n)
	}

	if n, _ := SessionRounds(db, 99); n != 0 {
		t.Fatalf("unknown session rounds = %d; want 0", n)
	}
}

func TestInsertRoundRejectsEmptyWord(t *testing.T) {
	db := openTestDB(t)
	if err := InsertRound(db, 1, 1, "  ", "kana-to-kanji", 0, time.Now()); err == nil {
		t.Fatalf("expected an error for an empty word")
	}
}

func TestWordAccuracyOrdersByMisses(t *testing.T) {
	db := openTestDB(t)

	now := time.Now().UTC()
	rounds := []struct {
		word  string
		wrong int
	}{
		{"犬", 0},
		{"犬", 1},
		{"猫", 4},
		{"鳥", 2},
	}
	for i, r := range rounds {
		if err := InsertRound(db, 1, uint32(i), r.word, "gloss-to-kana", r.wrong, now); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	stats, err := WordAccuracy(db, 2)
	if err != nil {
		t.Fatalf("word accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].Word != "猫" || stats[1].Word != "鳥" {
		t.Fatalf("unexpected order: %+v", stats)
	}
	if got := stats[0].Accuracy(); got != 0.2 {
		t.Fatalf("猫 accuracy = %v; want 0.2", got)
	}
}

func TestRecorderImplementsGameRecorder(t *testing.T) {
	db := openTestDB(t)

	var rec game.Recorder = NewRecorder(db)
	entry := &dictionary.Entry{
		ID:       55,
		Kanjis:   []dictionary.Kanji{{Text: "魚", Level: dictionary.N4}},
		Readings: []dictionary.Reading{{Text: "さかな", Level: dictionary.N4}},
	}
	if err := rec.RecordRound(3, entry, game.KanjiToKana, 1); err != nil {
		t.Fatalf("record round: %v", err)
	}

	var word, mode string
	err := db.QueryRow(`SELECT word, mode FROM rounds WHERE session_key = 3`).Scan(&word, &mode)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if word != "魚" || mode != game.KanjiToKana.String() {
		t.Fatalf("stored (%q, %q)", word, mode)
	}
}
