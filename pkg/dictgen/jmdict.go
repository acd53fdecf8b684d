package dictgen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// Raw JMDict JSONL entries. Field names follow the JMDict XML element names
// the upstream export preserves (ent_seq, k_ele, r_ele and friends).
type rawEntry struct {
	EntSeq   uint32       `json:"ent_seq"`
	Kanjis   []rawKanji   `json:"k_ele"`
	Readings []rawReading `json:"r_ele"`
	Senses   []rawSense   `json:"sense"`
}

type rawKanji struct {
	Keb  string   `json:"keb"`
	Tags []string `json:"ke_inf"`
}

type rawReading struct {
	Reb        string   `json:"reb"`
	RelevantTo []string `json:"re_restr"`
	Tags       []string `json:"re_inf"`
}

type rawSense struct {
	RelevantKanji   []string   `json:"stagk"`
	RelevantReading []string   `json:"stagr"`
	Pos             []string   `json:"pos"`
	Gloss           []rawGloss `json:"gloss"`
}

type rawGloss struct {
	Content string `json:"content"`
}

// loadJMdict parses a JMDict JSONL export into unannotated entries.
func loadJMdict(path string) ([]*dictionary.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readJMdict(f)
}

func readJMdict(r io.Reader) ([]*dictionary.Entry, error) {
	var entries []*dictionary.Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var raw rawEntry
		if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
			return nil, fmt.Errorf("jmdict line %d: %w", line, err)
		}
		entries = append(entries, convertEntry(&raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func convertEntry(raw *rawEntry) *dictionary.Entry {
	e := &dictionary.Entry{ID: raw.EntSeq}

	for _, k := range raw.Kanjis {
		e.Kanjis = append(e.Kanjis, dictionary.Kanji{Text: k.Keb, Tags: entityTags(k.Tags)})
	}
	for _, r := range raw.Readings {
		e.Readings = append(e.Readings, dictionary.Reading{
			Text:       r.Reb,
			RelevantTo: r.RelevantTo,
			Tags:       entityTags(r.Tags),
		})
	}
	for _, s := range raw.Senses {
		e.Senses = append(e.Senses, dictionary.Sense{
			RelevantKanji:   s.RelevantKanji,
			RelevantReading: s.RelevantReading,
			Pos:             entityPos(s.Pos),
			Gloss:           glossTexts(s.Gloss),
		})
	}
	return e
}

// entityPos resolves "&n;"-style entity tags into part-of-speech tags,
// dropping anything unknown to the tag table.
func entityPos(tags []string) []dictionary.Pos {
	var out []dictionary.Pos
	for _, t := range tags {
		if p, err := dictionary.ParsePosEntity(t); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func entityTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		out = append(out, trimEntity(t))
	}
	return out
}

func trimEntity(tag string) string {
	if len(tag) >= 2 && tag[0] == '&' && tag[len(tag)-1] == ';' {
		return tag[1 : len(tag)-1]
	}
	return tag
}

func glossTexts(glosses []rawGloss) []string {
	var out []string
	for _, g := range glosses {
		if g.Content != "" {
			out = append(out, g.Content)
		}
	}
	return out
}
