package ui

import "fmt"

// FormatItemsLeft returns the "N item(s) left" footer text. The
// singular form is used only at exactly one; zero is plural.
func FormatItemsLeft(count int) string {
	if count == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", count)
}
