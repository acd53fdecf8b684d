package dictionary

import "fmt"

// Level is a JLPT proficiency tier. The zero value means the word has not
// been matched against any JLPT vocabulary list.
type Level uint8

const (
	LevelUnknown Level = iota
	N1
	N2
	N3
	N4
)

func (l Level) String() string {
	switch l {
	case N1:
		return "N1"
	case N2:
		return "N2"
	case N3:
		return "N3"
	case N4:
		return "N4"
	}
	return "unknown"
}

// ParseLevel parses "n1".."n4" (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch s {
	case "n1", "N1":
		return N1, nil
	case "n2", "N2":
		return N2, nil
	case "n3", "N3":
		return N3, nil
	case "n4", "N4":
		return N4, nil
	}
	return LevelUnknown, fmt.Errorf("unknown level %q", s)
}

// AllLevels lists the four JLPT tiers covered by the vocabulary lists.
func AllLevels() []Level {
	return []Level{N1, N2, N3, N4}
}
