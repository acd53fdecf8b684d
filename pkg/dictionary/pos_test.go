package dictionary

import "testing"

func TestParsePosEntity(t *testing.T) {
	tests := []struct {
		entity string
		want   Pos
		ok     bool
	}{
		{"&n;", "n", true},
		{"&v5k;", "v5k", true},
		{"&adj-i;", "adj-i", true},
		{"&bogus;", "", false},
		{"n", "n", true}, // already canonical
	}
	for _, tt := range tests {
		got, err := ParsePosEntity(tt.entity)
		if tt.ok && err != nil {
			t.Errorf("ParsePosEntity(%q) unexpected error: %v", tt.entity, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParsePosEntity(%q) expected error", tt.entity)
		}
		if got != tt.want {
			t.Errorf("ParsePosEntity(%q) = %q; want %q", tt.entity, got, tt.want)
		}
	}
}

func TestCategoriesContainOnlyValidTags(t *testing.T) {
	for name, set := range map[string][]Pos{"nouns": Nouns, "verbs": Verbs, "prenominals": Prenominals} {
		got, ok := Category(name)
		if !ok {
			t.Fatalf("category %s not found", name)
		}
		if len(got) != len(set) {
			t.Fatalf("category %s mismatch", name)
		}
		for _, p := range got {
			if !p.Valid() {
				t.Errorf("category %s contains unknown tag %q", name, p)
			}
		}
	}
	if _, ok := Category("particles"); ok {
		t.Fatalf("unexpected category")
	}
}

func TestDescribe(t *testing.T) {
	if Pos("n").Describe() == "" {
		t.Fatalf("expected description for n")
	}
	if Pos("nope").Describe() != "" {
		t.Fatalf("expected empty description for unknown tag")
	}
}
