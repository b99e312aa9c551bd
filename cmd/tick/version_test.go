package main

import (
	"strings"
	"testing"
)

func TestVersionString(t *testing.T) {
	got := versionString()
	if !strings.Contains(got, "version dev") {
		t.Errorf("expected default version, got %q", got)
	}
	if !strings.Contains(got, "commit_id unknown") {
		t.Errorf("expected default commit id, got %q", got)
	}
}
