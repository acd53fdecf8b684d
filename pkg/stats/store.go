package stats

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InsertRound stores one resolved quiz round.
func InsertRound(db DBExecutor, sessionKey uint64, entryID uint32, word, mode string, wrongGuesses int, answeredAt time.Time) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return fmt.Errorf("word must be non-empty")
	}
	_, err := db.Exec(
		`INSERT INTO rounds (session_key, entry_id, word, mode, wrong_guesses, answered_at) VALUES (?, ?, ?, ?, ?, ?)`,
		sessionKey, entryID, word, mode, wrongGuesses, answeredAt,
	)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// WordStat aggregates a word's quiz history.
type WordStat struct {
	Word         string
	Rounds       int
	WrongGuesses int
}

// Accuracy is the share of guesses that were correct. Every round ends with
// exactly one correct guess, so the total guess count is Rounds plus the
// accumulated misses.
func (s WordStat) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Rounds) / float64(s.Rounds+s.WrongGuesses)
}

// WordAccuracy lists the hardest words first: those with the most wrong
// guesses across all sessions, limited to the given number of rows.
func WordAccuracy(db DBExecutor, limit int) ([]WordStat, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT word, COUNT(*), SUM(wrong_guesses)
		 FROM rounds
		 GROUP BY word
		 ORDER BY SUM(wrong_guesses) DESC, COUNT(*) DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query word accuracy: %w", err)
	}
	defer rows.Close()

	var out []WordStat
	for rows.Next() {
		var s WordStat
		if err := rows.Scan(&s.Word, &s.Rounds, &s.WrongGuesses); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SessionRounds reports how many rounds a session key has resolved.
func SessionRounds(db DBExecutor, sessionKey uint64) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM rounds WHERE session_key = ?`, sessionKey).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("query session rounds: %w", err)
	}
	return n, nil
}
