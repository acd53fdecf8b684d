package main

import (
	"fmt"
	"strings"

	"github.com/japaniel/kotoba/pkg/dictionary"
)

// parseLevels parses a comma-separated JLPT level list like "n4,n3".
func parseLevels(s string) ([]dictionary.Level, error) {
	var levels []dictionary.Level
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lvl, err := dictionary.ParseLevel(part)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels given")
	}
	return levels, nil
}

// parsePos parses a comma-separated list of part-of-speech tags. A category
// name (nouns, verbs, prenominals) expands to its tag set.
func parsePos(s string) ([]dictionary.Pos, error) {
	var tags []dictionary.Pos
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if category, ok := dictionary.Category(part); ok {
			tags = append(tags, category...)
			continue
		}
		p, err := dictionary.ParsePos(part)
		if err != nil {
			return nil, err
		}
		tags = append(tags, p)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("no part-of-speech tags given")
	}
	return tags, nil
}
