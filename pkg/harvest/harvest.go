package harvest

import (
	"context"
	"regexp"
	"sync"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// Harvester turns running Japanese text into a quiz pool: every word in the
// text that the lexicon knows becomes a pool entry, in order of first
// appearance.
type Harvester struct {
	lex      *dictionary.Lexicon
	analyzer *Analyzer

	// Workers is the tokenization parallelism. Zero means one worker.
	Workers int
}

// NewHarvester builds a harvester over the given lexicon.
func NewHarvester(lex *dictionary.Lexicon) (*Harvester, error) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		return nil, err
	}
	return &Harvester{lex: lex, analyzer: analyzer}, nil
}

var asciiOnly = regexp.MustCompile(`^[a-zA-Z0-9\s[:punct:]]+$`)

// Pool extracts lexicon entries from text. Sentences are tokenized
// concurrently; the result preserves first-appearance order and contains
// each entry once.
func (h *Harvester) Pool(ctx context.Context, text string) ([]*dictionary.Entry, error) {
	sentences := h.analyzer.AnalyzeDocument(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	workers := h.Workers
	if workers <= 0 {
		workers = 1
	}
	wp := NewWorkerPool(workers, workers*2)
	wp.Start(ctx)

	// Results land in a per-sentence slot so concurrent completion cannot
	// reorder the pool.
	matched := make([][]*dictionary.Entry, len(sentences))
	var mu sync.Mutex

	for i, sent := range sentences {
		i, sent := i, sent
		err := wp.Submit(ctx, func(context.Context) error {
			entries := h.matchSentence(sent)
			mu.Lock()
			matched[i] = entries
			mu.Unlock()
			return nil
		})
		if err != nil {
			wp.Close()
			return nil, err
		}
	}
	wp.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var pool []*dictionary.Entry
	seen := make(map[uint32]bool)
	for _, entries := range matched {
		for _, e := range entries {
			if seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			pool = append(pool, e)
		}
	}
	return pool, nil
}

// matchSentence maps a sentence's tokens onto lexicon entries. Symbols,
// particles, auxiliaries, numbers and pure-ASCII tokens carry no quizzable
// content and are skipped; the rest are looked up by lemma.
func (h *Harvester) matchSentence(sent Sentence) []*dictionary.Entry {
	var entries []*dictionary.Entry
	for _, t := range sent.Tokens {
		if t.PrimaryPOS == "記号" || t.PrimaryPOS == "補助記号" || t.PrimaryPOS == "助詞" || t.PrimaryPOS == "助動詞" {
			continue
		}
		if len(t.Features) > 1 && t.Features[1] == "数" {
			continue
		}
		if asciiOnly.MatchString(t.Surface) {
			continue
		}

		lemma := t.Surface
		if t.BaseForm != "" && t.BaseForm != "*" {
			lemma = t.BaseForm
		}

		matches := h.lex.Lookup(lemma)
		if len(matches) == 0 && t.Reading != "" {
			matches = h.lex.Lookup(ToHiragana(t.Reading))
		}
		entries = append(entries, matches...)
	}
	return entries
}
