package dictionary

// Entry is one dictionary record from the prepared snapshot. Entries are
// loaded once at startup and shared read-only between sessions; nothing may
// mutate them after load.
type Entry struct {
	ID       uint32    `json:"id"`
	Kanjis   []Kanji   `json:"kanji,omitempty"`
	Readings []Reading `json:"readings"`
	Senses   []Sense   `json:"senses"`
}

// Kanji is one spelling of an entry.
type Kanji struct {
	Text  string   `json:"text"`
	Level Level    `json:"level,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Reading is one kana rendering of an entry. RelevantTo, when non-empty,
// restricts the reading to the listed kanji spellings.
type Reading struct {
	Text       string   `json:"text"`
	RelevantTo []string `json:"relevant_to,omitempty"`
	Level      Level    `json:"level,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Sense is one meaning of an entry. A sense with no glosses exists in the
// data but is never used for question generation.
type Sense struct {
	RelevantKanji   []string `json:"relevant_kanji,omitempty"`
	RelevantReading []string `json:"relevant_reading,omitempty"`
	Pos             []Pos    `json:"pos,omitempty"`
	Gloss           []string `json:"gloss,omitempty"`
}

// HasPos reports whether the sense carries the given part-of-speech tag.
func (s *Sense) HasPos(p Pos) bool {
	for _, sp := range s.Pos {
		if sp == p {
			return true
		}
	}
	return false
}

// Levels collects the JLPT levels attached to the entry's readings and
// kanji spellings. Unknown levels are skipped.
func (e *Entry) Levels() []Level {
	var levels []Level
	for _, r := range e.Readings {
		if r.Level != LevelUnknown {
			levels = append(levels, r.Level)
		}
	}
	for _, k := range e.Kanjis {
		if k.Level != LevelUnknown {
			levels = append(levels, k.Level)
		}
	}
	return levels
}

// IsAnnotated reports whether any reading or kanji carries a JLPT level.
func (e *Entry) IsAnnotated() bool {
	return len(e.Levels()) > 0
}

// Word returns the entry's display form: the first kanji spelling when one
// exists, the first reading otherwise.
func (e *Entry) Word() string {
	if len(e.Kanjis) > 0 {
		return e.Kanjis[0].Text
	}
	if len(e.Readings) > 0 {
		return e.Readings[0].Text
	}
	return ""
}

// SetLevel annotates the reading with the given kana text, propagating the
// level to the kanji spellings that reading applies to. A reading with an
// empty RelevantTo list applies to every spelling.
func (e *Entry) SetLevel(kana string, level Level) {
	var reading *Reading
	for i := range e.Readings {
		if e.Readings[i].Text == kana {
			reading = &e.Readings[i]
			break
		}
	}
	if reading == nil {
		return
	}

	reading.Level = level

	if len(reading.RelevantTo) == 0 {
		for i := range e.Kanjis {
			e.Kanjis[i].Level = level
		}
		return
	}
	for i := range e.Kanjis {
		for _, rel := range reading.RelevantTo {
			if e.Kanjis[i].Text == rel {
				e.Kanjis[i].Level = level
			}
		}
	}
}
