package todo

import (
	"time"

	"github.com/tmather/ticklist/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from a title
// and timestamp. The ID is derived from a SHA-256 hash of the title
// concatenated with the timestamp, so it is practically unique without
// consulting any registry.
func GenerateID(title string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(title, timestamp, ids.DefaultLength)
}
