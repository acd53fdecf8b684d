package game

import (
	"math/rand/v2"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// maxScrambleTries bounds the search for a distractor that isn't already an
// option. After that the fixed sentinel is used instead of failing the round.
const (
	maxScrambleTries = 1000
	scrambleSentinel = "OPTION"
	alternateOptions = 4
)

// Question is one round's content: a prompt, its candidate answers, and the
// index of the correct one. Built fresh per round and owned by its menu.
type Question struct {
	Prompt  string
	Options []string
	Answer  int
}

// NewQuestion builds a question from entry for the given direction and
// part-of-speech tag. Returns nil when the entry cannot yield the required
// (source, target) pair under that tag; callers try their next tag.
func NewQuestion(rng *rand.Rand, entry *dictionary.Entry, mode Mode, pos dictionary.Pos, lex *dictionary.Lexicon) *Question {
	switch mode {
	case GlossToKana:
		return newGlossToKana(rng, entry, pos)
	case KanaToGloss:
		return newKanaToGloss(rng, entry, pos, lex)
	case KanaToKanji:
		return newKanaToKanji(rng, entry, pos, lex)
	case KanjiToKana:
		return newKanjiToKana(rng, entry, pos)
	case KanjiToGloss:
		return newKanjiToGloss(rng, entry, pos, lex)
	case GlossToKanji:
		return newGlossToKanji(rng, entry, pos, lex)
	}
	return nil
}

func newGlossToKana(rng *rand.Rand, entry *dictionary.Entry, pos dictionary.Pos) *Question {
	reading, sense := readingSensePair(entry, pos)
	if reading == nil {
		return nil
	}
	opts, answer := readingOptions(rng, reading.Text)
	return &Question{Prompt: sense.Gloss[0], Options: opts, Answer: answer}
}

func newKanaToGloss(rng *rand.Rand, entry *dictionary.Entry, pos dictionary.Pos, lex *dictionary.Lexicon) *Question {
	reading, sense := readingSensePair(entry, pos)
	if reading == nil {
		return nil
	}
	opts, answer := alternateFill(rng, lex, entry.ID, sense.Gloss[0], glossPick(pos))
	return &Question{Prompt: reading.Text, Options: opts, Answer: answer}
}

func newKanaToKanji(rng *rand.Rand, entry *dictionary.Entry, pos dictionary.Pos, lex *dictionary.Lexicon) *Question {
	kanji, reading := kanjiReadingPair(entry, pos)
	if kanji == nil {
		return nil
	}
	opts, answer := alternateFill(rng, lex, entry.ID, kanji.Text, kanjiPick(pos))
	return &Question{Prompt: reading.Text, Options: opts, Answer: answer}
}

func newKanjiToKana(rng *rand.Rand, entry *dictionary.Entry, pos dictionary.Pos) *Question {
	kanji, reading := kanjiReadingPair(entry, pos)
	if kanji == nil {
		return nil
	}
	opts, answer := readingOptions(rng, reading.Text)
	return &Question{Prompt: kanji.Text, Options: opts, Answer: answer}
}

func newKanjiToGloss(rng *rand.Rand, entry *dictionary.Entry, pos dictionary.Pos, lex *dictionary.Lexicon) *Question {
	kanji, sense := kanjiGlossPair(entry, pos)
	if kanji == nil {
		return nil
	}
	opts, answer := alternateFill(rng, lex, entry.ID, sense.Gloss[0], glossPick(pos))
	return &Question{Prompt: kanji.Text, Options: opts, Answer: answer}
}

func newGlossToKanji(rng *rand.Rand, entry *dictionary.Entry, pos dictionary.Pos, lex *dictionary.Lexicon) *Question {
	kanji, sense := kanjiGlossPair(entry, pos)
	if kanji == nil {
		return nil
	}
	opts, answer := alternateFill(rng, lex, entry.ID, kanji.Text, kanjiPick(pos))
	return &Question{Prompt: sense.Gloss[0], Options: opts, Answer: answer}
}

// readingSensePair extracts a reading and a correlated sense where the sense
// carries pos and has at least one gloss. Nil, nil when no extraction exists.
func readingSensePair(entry *dictionary.Entry, pos dictionary.Pos) (*dictionary.Reading, *dictionary.Sense) {
	var sense *dictionary.Sense
	for i := range entry.Senses {
		if entry.Senses[i].HasPos(pos) && len(entry.Senses[i].Gloss) > 0 {
			sense = &entry.Senses[i]
			break
		}
	}
	if sense == nil {
		return nil, nil
	}
	for i := range entry.Readings {
		r := &entry.Readings[i]
		if len(sense.RelevantReading) == 0 || contains(sense.RelevantReading, r.Text) {
			return r, sense
		}
	}
	return nil, nil
}

// kanjiReadingPair extracts the first kanji spelling and a reading that
// applies both to that spelling and to a sense carrying pos. The first
// spelling is chosen deterministically.
func kanjiReadingPair(entry *dictionary.Entry, pos dictionary.Pos) (*dictionary.Kanji, *dictionary.Reading) {
	var sense *dictionary.Sense
	for i := range entry.Senses {
		if entry.Senses[i].HasPos(pos) {
			sense = &entry.Senses[i]
			break
		}
	}
	if sense == nil || len(entry.Kanjis) == 0 {
		return nil, nil
	}
	kanji := &entry.Kanjis[0]
	for i := range entry.Readings {
		r := &entry.Readings[i]
		if len(r.RelevantTo) > 0 && !contains(r.RelevantTo, kanji.Text) {
			continue
		}
		if len(sense.RelevantReading) > 0 && !contains(sense.RelevantReading, r.Text) {
			continue
		}
		return kanji, r
	}
	return nil, nil
}

// kanjiGlossPair extracts the first kanji spelling and a sense carrying pos
// with at least one gloss.
func kanjiGlossPair(entry *dictionary.Entry, pos dictionary.Pos) (*dictionary.Kanji, *dictionary.Sense) {
	if len(entry.Kanjis) == 0 {
		return nil, nil
	}
	for i := range entry.Senses {
		if entry.Senses[i].HasPos(pos) && len(entry.Senses[i].Gloss) > 0 {
			return &entry.Kanjis[0], &entry.Senses[i]
		}
	}
	return nil, nil
}

// glossPick selects an alternate gloss from another entry: the first sense
// carrying pos with a non-empty gloss list.
func glossPick(pos dictionary.Pos) func(*dictionary.Entry) (string, bool) {
	return func(e *dictionary.Entry) (string, bool) {
		for i := range e.Senses {
			if e.Senses[i].HasPos(pos) && len(e.Senses[i].Gloss) > 0 {
				return e.Senses[i].Gloss[0], true
			}
		}
		return "", false
	}
}

// kanjiPick selects an alternate kanji spelling from another entry that has
// a sense carrying pos.
func kanjiPick(pos dictionary.Pos) func(*dictionary.Entry) (string, bool) {
	return func(e *dictionary.Entry) (string, bool) {
		if len(e.Kanjis) == 0 {
			return "", false
		}
		for i := range e.Senses {
			if e.Senses[i].HasPos(pos) {
				return e.Kanjis[0].Text, true
			}
		}
		return "", false
	}
}

// alternateFill builds the option list: the correct value plus up to four
// alternates drawn from other lexicon entries by reservoir sampling. When
// fewer than four alternates exist the option list is left short rather than
// padded. Returns the shuffled options and the correct index.
func alternateFill(rng *rand.Rand, lex *dictionary.Lexicon, skip uint32, correct string, pick func(*dictionary.Entry) (string, bool)) ([]string, int) {
	slots := make([]string, alternateOptions)
	filled := 0
	seen := 0
	for _, e := range lex.Entries() {
		if e.ID == skip {
			continue
		}
		v, ok := pick(e)
		if !ok {
			continue
		}
		seen++
		if seen <= len(slots) {
			slots[seen-1] = v
			filled = seen
			continue
		}
		if j := rng.IntN(seen); j < len(slots) {
			slots[j] = v
		}
	}

	opts := append([]string{correct}, slots[:filled]...)
	return shuffleOptions(rng, opts, 0)
}

// readingOptions builds five options for a kana target: the reading itself
// plus four scrambles, each retried until unique among the chosen options or
// replaced by the sentinel. Returns the shuffled options and the correct
// index.
func readingOptions(rng *rand.Rand, reading string) ([]string, int) {
	opts := make([]string, 5)
	opts[0] = reading

outer:
	for i := 1; i < len(opts); i++ {
		for try := 0; try < maxScrambleTries; try++ {
			s := scramble(rng, reading)
			if !contains(opts, s) {
				opts[i] = s
				continue outer
			}
		}
		opts[i] = scrambleSentinel
	}

	return shuffleOptions(rng, opts, 0)
}

// shuffleOptions shuffles opts in place while tracking where the answer
// lands. Tracking by index, not text, keeps duplicate option text sound.
func shuffleOptions(rng *rand.Rand, opts []string, answer int) ([]string, int) {
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
		switch answer {
		case i:
			answer = j
		case j:
			answer = i
		}
	})
	return opts, answer
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
