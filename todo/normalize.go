package todo

import (
	internalstrings "github.com/tmather/ticklist/internal/strings"
)

// normalizeTitle collapses internal whitespace and trims the ends.
// A title that is empty or all-whitespace normalizes to "".
func normalizeTitle(title string) string {
	return internalstrings.NormalizeWhitespace(title)
}

func normalizePriorityInput(priority Priority) (Priority, error) {
	normalized := Priority(internalstrings.NormalizeLowerTrimSpace(string(priority)))
	if err := ValidatePriority(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// NormalizeFilter lowercases and trims a filter value, validating it.
// CLI and config layers accept user-typed filters through this.
func NormalizeFilter(filter Filter) (Filter, error) {
	normalized := Filter(internalstrings.NormalizeLowerTrimSpace(string(filter)))
	if err := ValidateFilter(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
