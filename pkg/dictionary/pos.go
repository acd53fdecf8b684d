package dictionary

import (
	"fmt"
	"strings"
)

// Pos is a JMDict part-of-speech tag in its canonical short form ("n",
// "v5k", "adj-i", ...). The set of valid tags is closed; see posTable.
type Pos string

// Describe returns the human-readable description of the tag, or "" if the
// tag is not in the table.
func (p Pos) Describe() string {
	return posTable[p]
}

// Valid reports whether p is a known JMDict tag.
func (p Pos) Valid() bool {
	_, ok := posTable[p]
	return ok
}

// ParsePos validates a canonical short tag.
func ParsePos(tag string) (Pos, error) {
	p := Pos(tag)
	if !p.Valid() {
		return "", fmt.Errorf("unknown part-of-speech tag %q", tag)
	}
	return p, nil
}

// ParsePosEntity maps a JMDict XML entity form like "&v5k;" to its canonical
// tag. The raw JMDict dump uses entity forms; the snapshot uses short tags.
func ParsePosEntity(entity string) (Pos, error) {
	tag := strings.TrimSuffix(strings.TrimPrefix(entity, "&"), ";")
	return ParsePos(tag)
}

// Categories are named tag sets used as quiz filters. They cover the modern,
// commonly quizzed tags; archaic Nidan/Yodan conjugation classes are only
// reachable by passing their tags explicitly.
var (
	Nouns       = []Pos{"n", "n-adv", "n-pr", "n-pref", "n-suf", "n-t", "pn"}
	Verbs       = []Pos{"v1", "v1-s", "v5aru", "v5b", "v5g", "v5k", "v5k-s", "v5m", "v5n", "v5r", "v5r-i", "v5s", "v5t", "v5u", "v5u-s", "v5uru", "vi", "vk", "vn", "vr", "vs", "vs-i", "vs-s", "vt", "vz"}
	Prenominals = []Pos{"adj-f", "adj-i", "adj-ix", "adj-na", "adj-no", "adj-pn", "adj-t"}
)

// Category resolves a category name to its tag set.
func Category(name string) ([]Pos, bool) {
	switch strings.ToLower(name) {
	case "nouns":
		return Nouns, true
	case "verbs":
		return Verbs, true
	case "prenominals":
		return Prenominals, true
	}
	return nil, false
}

var posTable = map[Pos]string{
	"adj-f":     "noun or verb acting prenominally",
	"adj-i":     "adjective (keiyoushi)",
	"adj-ix":    "adjective (keiyoushi) - yoi/ii class",
	"adj-kari":  "'kari' adjective (archaic)",
	"adj-ku":    "'ku' adjective (archaic)",
	"adj-na":    "adjectival nouns or quasi-adjectives (keiyodoshi)",
	"adj-nari":  "archaic/formal form of na-adjective",
	"adj-no":    "nouns which may take the genitive case particle 'no'",
	"adj-pn":    "pre-noun adjectival (rentaishi)",
	"adj-shiku": "'shiku' adjective (archaic)",
	"adj-t":     "'taru' adjective",
	"adv":       "adverb (fukushi)",
	"adv-to":    "adverb taking the 'to' particle",
	"aux":       "auxiliary",
	"aux-adj":   "auxiliary adjective",
	"aux-v":     "auxiliary verb",
	"conj":      "conjunction",
	"cop":       "copula",
	"ctr":       "counter",
	"exp":       "expressions (phrases, clauses, etc.)",
	"int":       "interjection (kandoushi)",
	"n":         "noun (common) (futsuumeishi)",
	"n-adv":     "adverbial noun (fukushitekimeishi)",
	"n-pr":      "proper noun",
	"n-pref":    "noun, used as a prefix",
	"n-suf":     "noun, used as a suffix",
	"n-t":       "noun (temporal) (jisoumeishi)",
	"num":       "numeric",
	"pn":        "pronoun",
	"pref":      "prefix",
	"prt":       "particle",
	"suf":       "suffix",
	"unc":       "unclassified",
	"v-unspec":  "verb unspecified",
	"v1":        "Ichidan verb",
	"v1-s":      "Ichidan verb - kureru special class",
	"v2a-s":     "Nidan verb with 'u' ending (archaic)",
	"v2b-k":     "Nidan verb (upper class) with 'bu' ending (archaic)",
	"v2b-s":     "Nidan verb (lower class) with 'bu' ending (archaic)",
	"v2d-k":     "Nidan verb (upper class) with 'dzu' ending (archaic)",
	"v2d-s":     "Nidan verb (lower class) with 'dzu' ending (archaic)",
	"v2g-k":     "Nidan verb (upper class) with 'gu' ending (archaic)",
	"v2g-s":     "Nidan verb (lower class) with 'gu' ending (archaic)",
	"v2h-k":     "Nidan verb (upper class) with 'hu/fu' ending (archaic)",
	"v2h-s":     "Nidan verb (lower class) with 'hu/fu' ending (archaic)",
	"v2k-k":     "Nidan verb (upper class) with 'ku' ending (archaic)",
	"v2k-s":     "Nidan verb (lower class) with 'ku' ending (archaic)",
	"v2m-k":     "Nidan verb (upper class) with 'mu' ending (archaic)",
	"v2m-s":     "Nidan verb (lower class) with 'mu' ending (archaic)",
	"v2n-s":     "Nidan verb (lower class) with 'nu' ending (archaic)",
	"v2r-k":     "Nidan verb (upper class) with 'ru' ending (archaic)",
	"v2r-s":     "Nidan verb (lower class) with 'ru' ending (archaic)",
	"v2s-s":     "Nidan verb (lower class) with 'su' ending (archaic)",
	"v2t-k":     "Nidan verb (upper class) with 'tsu' ending (archaic)",
	"v2t-s":     "Nidan verb (lower class) with 'tsu' ending (archaic)",
	"v2w-s":     "Nidan verb (lower class) with 'u' ending and 'we' conjugation (archaic)",
	"v2y-k":     "Nidan verb (upper class) with 'yu' ending (archaic)",
	"v2y-s":     "Nidan verb (lower class) with 'yu' ending (archaic)",
	"v2z-s":     "Nidan verb (lower class) with 'zu' ending (archaic)",
	"v4b":       "Yodan verb with 'bu' ending (archaic)",
	"v4g":       "Yodan verb with 'gu' ending (archaic)",
	"v4h":       "Yodan verb with 'hu/fu' ending (archaic)",
	"v4k":       "Yodan verb with 'ku' ending (archaic)",
	"v4m":       "Yodan verb with 'mu' ending (archaic)",
	"v4n":       "Yodan verb with 'nu' ending (archaic)",
	"v4r":       "Yodan verb with 'ru' ending (archaic)",
	"v4s":       "Yodan verb with 'su' ending (archaic)",
	"v4t":       "Yodan verb with 'tsu' ending (archaic)",
	"v5aru":     "Godan verb - -aru special class",
	"v5b":       "Godan verb with 'bu' ending",
	"v5g":       "Godan verb with 'gu' ending",
	"v5k":       "Godan verb with 'ku' ending",
	"v5k-s":     "Godan verb - Iku/Yuku special class",
	"v5m":       "Godan verb with 'mu' ending",
	"v5n":       "Godan verb with 'nu' ending",
	"v5r":       "Godan verb with 'ru' ending",
	"v5r-i":     "Godan verb with 'ru' ending (irregular verb)",
	"v5s":       "Godan verb with 'su' ending",
	"v5t":       "Godan verb with 'tsu' ending",
	"v5u":       "Godan verb with 'u' ending",
	"v5u-s":     "Godan verb with 'u' ending (special class)",
	"v5uru":     "Godan verb - Uru old class verb (old form of Eru)",
	"vi":        "intransitive verb",
	"vk":        "Kuru verb - special class",
	"vn":        "irregular nu verb",
	"vr":        "irregular ru verb, plain form ends with -ri",
	"vs":        "noun or participle which takes the aux. verb suru",
	"vs-c":      "su verb - precursor to the modern suru",
	"vs-i":      "suru verb - included",
	"vs-s":      "suru verb - special class",
	"vt":        "transitive verb",
	"vz":        "Ichidan verb - zuru verb (alternative form of -jiru verbs)",
}
