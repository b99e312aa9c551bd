package ids

import "strings"

// MatchPrefix finds the ID matching a prefix, case-insensitively.
// An exact match wins over prefix matches, so a full ID always
// resolves even when it happens to prefix another.
func MatchPrefix(ids []string, prefix string) (match string, found bool, ambiguous bool) {
	prefixLower := strings.ToLower(prefix)
	if prefixLower == "" {
		return "", false, false
	}

	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == prefixLower {
			return id, true, false
		}
		if !strings.HasPrefix(idLower, prefixLower) {
			continue
		}
		if found {
			return "", false, true
		}
		match = id
		found = true
	}

	return match, found, false
}

// UniquePrefixLengths returns the shortest unique prefix length for each ID.
func UniquePrefixLengths(ids []string) map[string]int {
	uniqueIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		uniqueIDs = append(uniqueIDs, idLower)
	}

	lengths := make(map[string]int, len(uniqueIDs))
	for _, id := range uniqueIDs {
		lengths[id] = uniquePrefixLength(id, uniqueIDs)
	}

	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
