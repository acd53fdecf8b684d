package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
)

// Lexicon is the immutable in-memory word list the quiz draws from.
type Lexicon struct {
	entries []*Entry
	// index maps every kanji spelling and reading text to the entries that
	// carry it. Built once at load; read-only afterwards.
	index map[string][]*Entry
}

// Load reads a line-delimited JSON snapshot from path.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lex, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lex, nil
}

// Read parses a snapshot, one JSON entry per line.
func Read(r io.Reader) (*Lexicon, error) {
	scanner := bufio.NewScanner(r)
	// Entries with many senses can exceed the default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var entries []*Entry
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(e.Readings) == 0 {
			return nil, fmt.Errorf("line %d: entry %d has no readings", line, e.ID)
		}
		entries = append(entries, &e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(entries), nil
}

// New builds a lexicon over the given entries. The entries are shared, not
// copied; callers must not mutate them afterwards.
func New(entries []*Entry) *Lexicon {
	idx := make(map[string][]*Entry)
	for _, e := range entries {
		for _, k := range e.Kanjis {
			idx[k.Text] = append(idx[k.Text], e)
		}
		for _, r := range e.Readings {
			idx[r.Text] = append(idx[r.Text], e)
		}
	}
	return &Lexicon{entries: entries, index: idx}
}

// Len returns the number of entries.
func (l *Lexicon) Len() int { return len(l.entries) }

// Entries returns the full entry list. Read-only.
func (l *Lexicon) Entries() []*Entry { return l.entries }

// Lookup returns the entries whose kanji or reading text equals text.
func (l *Lexicon) Lookup(text string) []*Entry {
	return l.index[text]
}

// Sample returns a shuffled subset of entries that carry at least one of the
// given levels and have at least one sense matching one of the given
// part-of-speech tags. An empty result is valid and signals pool exhaustion.
func (l *Lexicon) Sample(rng *rand.Rand, levels []Level, pos []Pos) []*Entry {
	var sample []*Entry
	for _, e := range l.entries {
		if !matchesLevel(e, levels) {
			continue
		}
		if !matchesPos(e, pos) {
			continue
		}
		sample = append(sample, e)
	}
	rng.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	return sample
}

func matchesLevel(e *Entry, levels []Level) bool {
	for _, el := range e.Levels() {
		for _, l := range levels {
			if el == l {
				return true
			}
		}
	}
	return false
}

func matchesPos(e *Entry, pos []Pos) bool {
	for i := range e.Senses {
		for _, p := range pos {
			if e.Senses[i].HasPos(p) {
				return true
			}
		}
	}
	return false
}
