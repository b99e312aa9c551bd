package ids

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	id := Generate("hello", DefaultLength)
	if len(id) != DefaultLength {
		t.Errorf("expected length %d, got %d", DefaultLength, len(id))
	}

	// Deterministic.
	if again := Generate("hello", DefaultLength); again != id {
		t.Errorf("expected stable output, got %q and %q", id, again)
	}

	// Lowercase base32.
	for _, char := range id {
		if (char < 'a' || char > 'z') && (char < '2' || char > '7') {
			t.Errorf("unexpected character %q in %q", char, id)
		}
	}
}

func TestGenerate_Lengths(t *testing.T) {
	if got := Generate("hello", 0); got != "" {
		t.Errorf("expected empty for length 0, got %q", got)
	}
	if got := Generate("hello", -1); got != "" {
		t.Errorf("expected empty for negative length, got %q", got)
	}
	if got := Generate("hello", 10000); len(got) == 0 {
		t.Error("expected clamped output for oversize length")
	}
}

func TestGenerateWithTimestamp(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	a := GenerateWithTimestamp("hello", now, DefaultLength)
	b := GenerateWithTimestamp("hello", now.Add(time.Nanosecond), DefaultLength)
	if a == b {
		t.Errorf("expected distinct IDs for distinct timestamps, both %q", a)
	}
}
