package game

import "fmt"

// Mode is a quiz direction: which attribute is prompted and which is asked.
type Mode uint8

const (
	// GlossToKana prompts an English gloss and asks for the kana reading.
	GlossToKana Mode = iota
	// KanaToGloss prompts a kana reading and asks for the English gloss.
	KanaToGloss
	// KanaToKanji prompts a kana reading and asks for the kanji spelling.
	KanaToKanji
	// KanjiToKana prompts a kanji spelling and asks for the kana reading.
	KanjiToKana
	// KanjiToGloss prompts a kanji spelling and asks for the English gloss.
	KanjiToGloss
	// GlossToKanji prompts an English gloss and asks for the kanji spelling.
	GlossToKanji
)

func (m Mode) String() string {
	switch m {
	case GlossToKana:
		return "gloss-to-kana"
	case KanaToGloss:
		return "kana-to-gloss"
	case KanaToKanji:
		return "kana-to-kanji"
	case KanjiToKana:
		return "kanji-to-kana"
	case KanjiToGloss:
		return "kanji-to-gloss"
	case GlossToKanji:
		return "gloss-to-kanji"
	}
	return "unknown"
}

// ParseMode parses the string form produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{GlossToKana, KanaToGloss, KanaToKanji, KanjiToKana, KanjiToGloss, GlossToKanji} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}
