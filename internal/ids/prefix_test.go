package ids

import "testing"

func TestMatchPrefix(t *testing.T) {
	ids := []string{"abcd1234", "abxy5678", "zzzz9999"}

	tests := []struct {
		prefix    string
		want      string
		found     bool
		ambiguous bool
	}{
		{"abc", "abcd1234", true, false},
		{"z", "zzzz9999", true, false},
		{"ab", "", false, true},
		{"q", "", false, false},
		{"", "", false, false},
		{"ABC", "abcd1234", true, false},
	}

	for _, tt := range tests {
		match, found, ambiguous := MatchPrefix(ids, tt.prefix)
		if match != tt.want || found != tt.found || ambiguous != tt.ambiguous {
			t.Errorf("MatchPrefix(%q): expected (%q, %v, %v), got (%q, %v, %v)",
				tt.prefix, tt.want, tt.found, tt.ambiguous, match, found, ambiguous)
		}
	}
}

func TestMatchPrefix_ExactMatchBeatsPrefix(t *testing.T) {
	ids := []string{"abcd", "abcd1234"}

	match, found, ambiguous := MatchPrefix(ids, "abcd")
	if !found || ambiguous {
		t.Fatalf("expected exact match, got found=%v ambiguous=%v", found, ambiguous)
	}
	if match != "abcd" {
		t.Errorf("expected abcd, got %q", match)
	}
}

func TestUniquePrefixLengths(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"abcd1234", "abxy5678", "zzzz9999"})

	tests := map[string]int{
		"abcd1234": 3,
		"abxy5678": 3,
		"zzzz9999": 1,
	}
	for id, want := range tests {
		if got := lengths[id]; got != want {
			t.Errorf("expected prefix length %d for %s, got %d", want, id, got)
		}
	}
}

func TestUniquePrefixLengths_SkipsDuplicatesAndEmpty(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"abcd", "abcd", ""})

	if len(lengths) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(lengths))
	}
	if lengths["abcd"] != 1 {
		t.Errorf("expected prefix length 1, got %d", lengths["abcd"])
	}
}
