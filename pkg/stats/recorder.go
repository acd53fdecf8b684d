package stats

import (
	"database/sql"
	"time"

	"github.com/japaniel/kotoba/pkg/dictionary"
	"github.com/japaniel/kotoba/pkg/game"
)

// Recorder persists resolved rounds to SQLite. It satisfies game.Recorder;
// database/sql serializes access so concurrent sessions are safe.
type Recorder struct {
	DB *sql.DB
}

// NewRecorder wraps an initialized database handle.
func NewRecorder(db *sql.DB) *Recorder {
	return &Recorder{DB: db}
}

// RecordRound implements game.Recorder.
func (r *Recorder) RecordRound(key game.Key, entry *dictionary.Entry, mode game.Mode, wrongGuesses int) error {
	return InsertRound(r.DB, uint64(key), entry.ID, entry.Word(), mode.String(), wrongGuesses, time.Now().UTC())
}
