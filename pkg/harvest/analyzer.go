package harvest

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is a single analyzed unit of text.
type Token struct {
	Surface  string   // the text as it appears (e.g. "行っ")
	BaseForm string   // the dictionary form (e.g. "行く")
	Reading  string   // pronunciation in katakana (e.g. "イッ")
	Features []string // raw Kagome IPA feature row
	// PrimaryPOS is the first feature: the coarse part of speech label.
	PrimaryPOS string
}

// Sentence is one sentence with its tokens.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Analyzer segments Japanese text into tokens.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer builds a tokenizer over the bundled IPA dictionary.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Analyze breaks text into tokens with readings and base forms.
//
// Kagome IPA feature rows: 0 part of speech, 1-3 sub-POS, 4 conjugation
// type, 5 conjugation form, 6 base form, 7 reading, 8 pronunciation.
func (a *Analyzer) Analyze(text string) []Token {
	var result []Token
	for _, token := range a.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}

		features := token.Features()

		base := token.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			reading = features[7]
		}
		primary := ""
		if len(features) > 0 {
			primary = features[0]
		}

		result = append(result, Token{
			Surface:    token.Surface,
			BaseForm:   base,
			Reading:    reading,
			Features:   features,
			PrimaryPOS: primary,
		})
	}
	return result
}

// AnalyzeDocument splits the text into sentences and tokenizes each one.
func (a *Analyzer) AnalyzeDocument(text string) []Sentence {
	var result []Sentence
	for _, s := range splitSentences(text) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		result = append(result, Sentence{Text: s, Tokens: a.Analyze(s)})
	}
	return result
}

// splitSentences cuts on the common Japanese delimiters and newlines:
// 。(3002), ！(FF01), ？(FF1F).
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '。' || r == '！' || r == '？' || r == '\n' {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby strips ruby annotations (<rt>, <rp>) from HTML. Readability
// otherwise extracts furigana inline and duplicates every annotated word.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, nil)
	return reRP.ReplaceAll(cleaned, nil)
}

// ToHiragana converts katakana runes to hiragana, leaving the rest alone.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
