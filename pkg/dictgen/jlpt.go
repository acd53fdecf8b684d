package dictgen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// jlptWord is one line of a JLPT vocabulary list: a kana reading, an
// optional kanji spelling, and the level of the list it came from.
type jlptWord struct {
	Kana  string
	Kanji string
	Level dictionary.Level
}

// loadJLPT reads the four vocabulary lists jlpt-voc-1.utf.txt through
// jlpt-voc-4.utf.txt from dir concurrently. File number N holds the N-level
// vocabulary.
func loadJLPT(dir string) ([]jlptWord, error) {
	var (
		mu    sync.Mutex
		words []jlptWord
	)

	var g errgroup.Group
	for n := 1; n <= 4; n++ {
		level := dictionary.Level(n)
		path := filepath.Join(dir, fmt.Sprintf("jlpt-voc-%d.utf.txt", n))
		g.Go(func() error {
			parsed, err := parseJLPTFile(path, level)
			if err != nil {
				return err
			}
			mu.Lock()
			words = append(words, parsed...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return words, nil
}

func parseJLPTFile(path string, level dictionary.Level) ([]jlptWord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []jlptWord
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word, ok, err := parseJLPTLine(scanner.Text(), level)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), lineNo, err)
		}
		if ok {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// parseJLPTLine extracts a word from one list line. Comment lines, blank
// lines and suffix entries (containing "~") are skipped. A parenthesized
// note at the end of a line is dropped before splitting. One remaining field
// is a kana-only word; two fields are kanji followed by kana.
func parseJLPTLine(line string, level dictionary.Level) (jlptWord, bool, error) {
	if strings.HasPrefix(line, "#") || line == "" || strings.Contains(line, "~") {
		return jlptWord{}, false, nil
	}

	if i := strings.Index(line, "（"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return jlptWord{Kana: fields[0], Level: level}, true, nil
	case 2:
		return jlptWord{Kanji: fields[0], Kana: fields[1], Level: level}, true, nil
	default:
		return jlptWord{}, false, fmt.Errorf("expected 1 or 2 fields, got %d", len(fields))
	}
}
