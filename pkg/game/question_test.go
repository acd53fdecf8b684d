package game

import (
	"math/rand/v2"
	"testing"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

func questionLexicon() *dictionary.Lexicon {
	return dictionary.New([]*dictionary.Entry{
		{
			ID:       1,
			Kanjis:   []dictionary.Kanji{{Text: "犬", Level: dictionary.N4}},
			Readings: []dictionary.Reading{{Text: "いぬ", Level: dictionary.N4}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"dog"}}},
		},
		{
			ID:       2,
			Kanjis:   []dictionary.Kanji{{Text: "猫", Level: dictionary.N4}},
			Readings: []dictionary.Reading{{Text: "ねこ", Level: dictionary.N4}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"cat"}}},
		},
		{
			ID:       3,
			Kanjis:   []dictionary.Kanji{{Text: "鳥", Level: dictionary.N4}},
			Readings: []dictionary.Reading{{Text: "とり", Level: dictionary.N4}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"bird"}}},
		},
		{
			ID:       4,
			Kanjis:   []dictionary.Kanji{{Text: "魚", Level: dictionary.N4}},
			Readings: []dictionary.Reading{{Text: "さかな", Level: dictionary.N4}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"fish"}}},
		},
		{
			ID:       5,
			Kanjis:   []dictionary.Kanji{{Text: "木", Level: dictionary.N4}},
			Readings: []dictionary.Reading{{Text: "き", Level: dictionary.N4}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"tree"}}},
		},
		{
			ID:       6,
			Kanjis:   []dictionary.Kanji{{Text: "走る", Level: dictionary.N3}},
			Readings: []dictionary.Reading{{Text: "はしる", Level: dictionary.N3}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"v5r"}, Gloss: []string{"to run"}}},
		},
	})
}

func questionRand() *rand.Rand {
	return rand.New(rand.NewPCG(3, 9))
}

func countEqual(opts []string, s string) int {
	n := 0
	for _, o := range opts {
		if o == s {
			n++
		}
	}
	return n
}

func TestGlossToKanaOptionIntegrity(t *testing.T) {
	lex := questionLexicon()
	q := NewQuestion(questionRand(), lex.Entries()[0], GlossToKana, "n", lex)
	if q == nil {
		t.Fatalf("expected a question")
	}
	if q.Prompt != "dog" {
		t.Fatalf("prompt = %q; want dog", q.Prompt)
	}
	if len(q.Options) != 5 {
		t.Fatalf("expected 5 options, got %d", len(q.Options))
	}
	if q.Options[q.Answer] != "いぬ" {
		t.Fatalf("answer option = %q; want いぬ", q.Options[q.Answer])
	}
	if countEqual(q.Options, "いぬ") != 1 {
		t.Fatalf("reading appears more than once: %v", q.Options)
	}
}

func TestKanaToGlossDrawsAlternatesFromOtherEntries(t *testing.T) {
	lex := questionLexicon()
	q := NewQuestion(questionRand(), lex.Entries()[0], KanaToGloss, "n", lex)
	if q == nil {
		t.Fatalf("expected a question")
	}
	if q.Prompt != "いぬ" {
		t.Fatalf("prompt = %q; want いぬ", q.Prompt)
	}
	if len(q.Options) != 5 {
		t.Fatalf("expected 5 options, got %d", len(q.Options))
	}
	if q.Options[q.Answer] != "dog" {
		t.Fatalf("answer option = %q; want dog", q.Options[q.Answer])
	}
	valid := map[string]bool{"cat": true, "bird": true, "fish": true, "tree": true}
	for i, o := range q.Options {
		if i == q.Answer {
			continue
		}
		if !valid[o] {
			t.Fatalf("alternate %q not drawn from same-tag entries", o)
		}
	}
}

func TestAlternateFillLeavesShortListWhenFewCandidates(t *testing.T) {
	lex := dictionary.New([]*dictionary.Entry{
		{
			ID:       1,
			Kanjis:   []dictionary.Kanji{{Text: "犬"}},
			Readings: []dictionary.Reading{{Text: "いぬ"}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"dog"}}},
		},
		{
			ID:       2,
			Kanjis:   []dictionary.Kanji{{Text: "猫"}},
			Readings: []dictionary.Reading{{Text: "ねこ"}},
			Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"cat"}}},
		},
	})
	q := NewQuestion(questionRand(), lex.Entries()[0], KanaToGloss, "n", lex)
	if q == nil {
		t.Fatalf("expected a question")
	}
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options, got %d: %v", len(q.Options), q.Options)
	}
	if q.Options[q.Answer] != "dog" {
		t.Fatalf("answer option = %q; want dog", q.Options[q.Answer])
	}
}

func TestKanaToKanjiOptionIntegrity(t *testing.T) {
	lex := questionLexicon()
	q := NewQuestion(questionRand(), lex.Entries()[1], KanaToKanji, "n", lex)
	if q == nil {
		t.Fatalf("expected a question")
	}
	if q.Prompt != "ねこ" {
		t.Fatalf("prompt = %q; want ねこ", q.Prompt)
	}
	if q.Options[q.Answer] != "猫" {
		t.Fatalf("answer option = %q; want 猫", q.Options[q.Answer])
	}
}

func TestKanjiToGlossAndGlossToKanji(t *testing.T) {
	lex := questionLexicon()
	q := NewQuestion(questionRand(), lex.Entries()[2], KanjiToGloss, "n", lex)
	if q == nil || q.Prompt != "鳥" || q.Options[q.Answer] != "bird" {
		t.Fatalf("kanji-to-gloss: %+v", q)
	}
	q = NewQuestion(questionRand(), lex.Entries()[2], GlossToKanji, "n", lex)
	if q == nil || q.Prompt != "bird" || q.Options[q.Answer] != "鳥" {
		t.Fatalf("gloss-to-kanji: %+v", q)
	}
}

func TestNewQuestionFailsOnMissingExtraction(t *testing.T) {
	lex := questionLexicon()

	// Wrong tag for the entry.
	if q := NewQuestion(questionRand(), lex.Entries()[0], KanaToGloss, "v5r", lex); q != nil {
		t.Fatalf("expected nil question for mismatched tag")
	}

	// Sense without glosses is excluded from question generation.
	noGloss := &dictionary.Entry{
		ID:       7,
		Readings: []dictionary.Reading{{Text: "むご"}},
		Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}}},
	}
	if q := NewQuestion(questionRand(), noGloss, GlossToKana, "n", lex); q != nil {
		t.Fatalf("expected nil question for glossless sense")
	}

	// Kana-only entry cannot ask for kanji.
	kanaOnly := &dictionary.Entry{
		ID:       8,
		Readings: []dictionary.Reading{{Text: "テスト"}},
		Senses:   []dictionary.Sense{{Pos: []dictionary.Pos{"n"}, Gloss: []string{"test"}}},
	}
	if q := NewQuestion(questionRand(), kanaOnly, KanaToKanji, "n", lex); q != nil {
		t.Fatalf("expected nil question for kana-only entry")
	}
}

func TestKanjiReadingPairHonorsRestrictions(t *testing.T) {
	// The only reading applies to the second spelling, not the first; the
	// first spelling is chosen deterministically, so extraction must fail.
	restricted := &dictionary.Entry{
		ID:     9,
		Kanjis: []dictionary.Kanji{{Text: "空く"}, {Text: "開く"}},
		Readings: []dictionary.Reading{
			{Text: "あく", RelevantTo: []string{"開く"}},
		},
		Senses: []dictionary.Sense{{Pos: []dictionary.Pos{"v5k"}, Gloss: []string{"to open"}}},
	}
	if kanji, _ := kanjiReadingPair(restricted, "v5k"); kanji != nil {
		t.Fatalf("expected no pair when reading excludes the first spelling")
	}

	// Add an unrestricted reading; extraction now succeeds with it.
	restricted.Readings = append(restricted.Readings, dictionary.Reading{Text: "すく"})
	kanji, reading := kanjiReadingPair(restricted, "v5k")
	if kanji == nil || kanji.Text != "空く" || reading.Text != "すく" {
		t.Fatalf("unexpected pair: %+v %+v", kanji, reading)
	}
}

func TestReadingSensePairHonorsRelevantReading(t *testing.T) {
	e := &dictionary.Entry{
		ID: 10,
		Readings: []dictionary.Reading{
			{Text: "はな"},
			{Text: "ばな"},
		},
		Senses: []dictionary.Sense{
			{Pos: []dictionary.Pos{"n"}, Gloss: []string{"flower"}, RelevantReading: []string{"ばな"}},
		},
	}
	reading, sense := readingSensePair(e, "n")
	if reading == nil || reading.Text != "ばな" {
		t.Fatalf("expected restricted reading ばな, got %+v", reading)
	}
	if sense.Gloss[0] != "flower" {
		t.Fatalf("unexpected sense: %+v", sense)
	}
}

func TestReadingOptionsUniqueAndShuffled(t *testing.T) {
	opts, answer := readingOptions(questionRand(), "しんかんせん")
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
	if opts[answer] != "しんかんせん" {
		t.Fatalf("answer option = %q", opts[answer])
	}
	seen := map[string]bool{}
	for _, o := range opts {
		if seen[o] {
			t.Fatalf("duplicate option %q in %v", o, opts)
		}
		seen[o] = true
	}
}
