package game

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// The scramble distractor works off the gojuon layout: a character may be
// swapped for another in the same consonant row or the same vowel column.
// The wa column and the ya/yu/yo glides fall outside the 5x8 grid and get
// their own substitution groups. Hiragana and katakana charts are
// independent; a character is looked up in whichever chart contains it.

type kanaChart [8][5]rune

var hiraChart = kanaChart{
	{'あ', 'い', 'う', 'え', 'お'},
	{'か', 'き', 'く', 'け', 'こ'},
	{'さ', 'し', 'す', 'せ', 'そ'},
	{'た', 'ち', 'つ', 'て', 'と'},
	{'な', 'に', 'ぬ', 'ね', 'の'},
	{'は', 'ひ', 'ふ', 'へ', 'ほ'},
	{'ま', 'み', 'む', 'め', 'も'},
	{'ら', 'り', 'る', 'れ', 'ろ'},
}

var kataChart = kanaChart{
	{'ア', 'イ', 'ウ', 'エ', 'オ'},
	{'カ', 'キ', 'ク', 'ケ', 'コ'},
	{'サ', 'シ', 'ス', 'セ', 'ソ'},
	{'タ', 'チ', 'ツ', 'テ', 'ト'},
	{'ナ', 'ニ', 'ヌ', 'ネ', 'ノ'},
	{'ハ', 'ヒ', 'フ', 'ヘ', 'ホ'},
	{'マ', 'ミ', 'ム', 'メ', 'モ'},
	{'ラ', 'リ', 'ル', 'レ', 'ロ'},
}

// わ/ワ swap to the first character of every other column.
var (
	hiraWaGroup = []rune{'あ', 'か', 'さ', 'た', 'な', 'は', 'ま', 'や', 'ら'}
	kataWaGroup = []rune{'ア', 'カ', 'サ', 'タ', 'ナ', 'ハ', 'マ', 'ヤ', 'ラ'}
)

// Glide groups, standard and small variants.
var glideGroups = [][]rune{
	{'や', 'ゆ', 'よ'},
	{'ゃ', 'ゅ', 'ょ'},
	{'ヤ', 'ユ', 'ヨ'},
	{'ャ', 'ュ', 'ョ'},
}

// swapPool returns the characters that may replace r in a scramble, or nil
// if r has no substitution group.
func swapPool(r rune) []rune {
	if pool := chartSwapPool(r, &hiraChart); pool != nil {
		return pool
	}
	if pool := chartSwapPool(r, &kataChart); pool != nil {
		return pool
	}
	if r == 'わ' {
		return hiraWaGroup
	}
	if r == 'ワ' {
		return kataWaGroup
	}
	for _, group := range glideGroups {
		for _, g := range group {
			if g == r {
				return others(group, r)
			}
		}
	}
	return nil
}

func chartSwapPool(r rune, chart *kanaChart) []rune {
	row, col, ok := chartCoords(r, chart)
	if !ok {
		return nil
	}
	pool := others(chart[row][:], r)
	for i := range chart {
		if chart[i][col] != r {
			pool = append(pool, chart[i][col])
		}
	}
	return pool
}

func chartCoords(r rune, chart *kanaChart) (row, col int, ok bool) {
	for i := range chart {
		for j, c := range chart[i] {
			if c == r {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func others(group []rune, r rune) []rune {
	pool := make([]rune, 0, len(group))
	for _, g := range group {
		if g != r {
			pool = append(pool, g)
		}
	}
	return pool
}

// swappableRatio is the fraction of characters in s with a swap pool.
func swappableRatio(s string) float64 {
	if s == "" {
		return 0
	}
	swappable, total := 0, 0
	for _, r := range s {
		if swapPool(r) != nil {
			swappable++
		}
		total++
	}
	return float64(swappable) / float64(total)
}

// scramble produces a plausible misreading of reading. Short or mostly
// unswappable strings swap every eligible character so the result is visibly
// different; otherwise each eligible character is swapped on a coin flip.
// Characters with no swap pool pass through unchanged.
func scramble(rng *rand.Rand, reading string) string {
	alwaysSwap := utf8.RuneCountInString(reading) < 4 || swappableRatio(reading) < 0.6

	var b strings.Builder
	b.Grow(len(reading))
	for _, r := range reading {
		pool := swapPool(r)
		if pool != nil && (alwaysSwap || rng.IntN(2) == 0) {
			r = pool[rng.IntN(len(pool))]
		}
		b.WriteRune(r)
	}
	return b.String()
}
