package dictionary

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func testEntries() []*Entry {
	return []*Entry{
		{
			ID:       1,
			Kanjis:   []Kanji{{Text: "犬", Level: N4}},
			Readings: []Reading{{Text: "いぬ", Level: N4}},
			Senses:   []Sense{{Pos: []Pos{"n"}, Gloss: []string{"dog"}}},
		},
		{
			ID:       2,
			Kanjis:   []Kanji{{Text: "走る", Level: N3}},
			Readings: []Reading{{Text: "はしる", Level: N3}},
			Senses:   []Sense{{Pos: []Pos{"v5r", "vi"}, Gloss: []string{"to run"}}},
		},
		{
			ID:       3,
			Readings: []Reading{{Text: "テスト", Level: N2}},
			Senses:   []Sense{{Pos: []Pos{"n", "vs"}, Gloss: []string{"test"}}},
		},
		{
			// Unannotated; must never be sampled.
			ID:       4,
			Kanjis:   []Kanji{{Text: "猫"}},
			Readings: []Reading{{Text: "ねこ"}},
			Senses:   []Sense{{Pos: []Pos{"n"}, Gloss: []string{"cat"}}},
		},
	}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSampleFiltersLevelAndPos(t *testing.T) {
	lex := New(testEntries())

	sample := lex.Sample(testRand(), []Level{N4, N3}, []Pos{"n"})
	if len(sample) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sample))
	}
	if sample[0].ID != 1 {
		t.Fatalf("expected entry 1, got %d", sample[0].ID)
	}

	sample = lex.Sample(testRand(), []Level{N2, N3, N4}, []Pos{"n", "v5r"})
	if len(sample) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sample))
	}
}

func TestSampleEmptyIsNotAnError(t *testing.T) {
	lex := New(testEntries())
	if got := lex.Sample(testRand(), []Level{N1}, []Pos{"n"}); len(got) != 0 {
		t.Fatalf("expected empty sample, got %d entries", len(got))
	}
}

func TestLookup(t *testing.T) {
	lex := New(testEntries())
	if got := lex.Lookup("走る"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("lookup by kanji failed: %+v", got)
	}
	if got := lex.Lookup("テスト"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("lookup by reading failed: %+v", got)
	}
	if got := lex.Lookup("未知"); got != nil {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestReadSnapshot(t *testing.T) {
	snapshot := `{"id":10,"kanji":[{"text":"水","level":4}],"readings":[{"text":"みず","level":4}],"senses":[{"pos":["n"],"gloss":["water"]}]}

{"id":11,"readings":[{"text":"ここ","level":4}],"senses":[{"pos":["pn"],"gloss":["here"]}]}
`
	lex, err := Read(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if lex.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", lex.Len())
	}
	e := lex.Lookup("水")
	if len(e) != 1 || e[0].Readings[0].Level != N4 {
		t.Fatalf("unexpected entry for 水: %+v", e)
	}
}

func TestReadRejectsEntryWithoutReadings(t *testing.T) {
	_, err := Read(strings.NewReader(`{"id":1,"senses":[]}`))
	if err == nil {
		t.Fatalf("expected error for entry without readings")
	}
}
