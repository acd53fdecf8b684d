package dictgen

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// Run builds dictionary.jsonl in dir: it downloads (or reuses) the JMDict
// export, annotates it with the JLPT vocabulary lists found in dir, and
// writes out the annotated entries. Unless overwrite is set, an existing
// output file is an error.
func Run(ctx context.Context, dir string, overwrite, refresh bool) error {
	jmdictPath, err := EnsureJMdict(ctx, dir, refresh)
	if err != nil {
		return err
	}
	entries, err := loadJMdict(jmdictPath)
	if err != nil {
		return err
	}
	words, err := loadJLPT(dir)
	if err != nil {
		return err
	}

	annotate(indexByReading(entries), words)

	return writeAnnotated(filepath.Join(dir, "dictionary.jsonl"), entries, overwrite)
}

// indexByReading maps every reading text to the entries carrying it. A
// reading shared by several entries maps to all of them.
func indexByReading(entries []*dictionary.Entry) map[string][]*dictionary.Entry {
	index := make(map[string][]*dictionary.Entry)
	for _, e := range entries {
		for _, r := range e.Readings {
			index[r.Text] = append(index[r.Text], e)
		}
	}
	return index
}

// annotate stamps each JLPT word's level onto the dictionary entry it names.
// A reading shared by several entries is ambiguous; the word's kanji breaks
// the tie. Words that stay ambiguous are left unannotated rather than
// guessed at.
func annotate(index map[string][]*dictionary.Entry, words []jlptWord) {
	for _, w := range words {
		matches := index[w.Kana]
		if len(matches) == 0 {
			continue
		}

		if len(matches) == 1 {
			matches[0].SetLevel(w.Kana, w.Level)
			continue
		}

		if w.Kanji != "" {
			if m, ok := singleKanjiMatch(matches, w.Kanji); ok {
				m.SetLevel(w.Kana, w.Level)
			}
			continue
		}

		if m, ok := singleKanaOnlyMatch(matches); ok {
			m.SetLevel(w.Kana, w.Level)
		}
	}
}

func singleKanjiMatch(entries []*dictionary.Entry, kanji string) (*dictionary.Entry, bool) {
	var found *dictionary.Entry
	for _, e := range entries {
		for _, k := range e.Kanjis {
			if k.Text == kanji {
				if found != nil {
					return nil, false
				}
				found = e
				break
			}
		}
	}
	return found, found != nil
}

func singleKanaOnlyMatch(entries []*dictionary.Entry) (*dictionary.Entry, bool) {
	var found *dictionary.Entry
	for _, e := range entries {
		if len(e.Kanjis) == 0 {
			if found != nil {
				return nil, false
			}
			found = e
		}
	}
	return found, found != nil
}

// writeAnnotated writes the annotated subset of entries as JSONL, ordered by
// id so reruns produce identical files.
func writeAnnotated(path string, entries []*dictionary.Entry, overwrite bool) error {
	var annotated []*dictionary.Entry
	for _, e := range entries {
		if e.IsAnnotated() {
			annotated = append(annotated, e)
		}
	}
	sort.Slice(annotated, func(i, j int) bool { return annotated[i].ID < annotated[j].ID })

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, e := range annotated {
		line, err := json.Marshal(e)
		if err != nil {
			f.Close()
			return err
		}
		w.Write(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
