package export

import (
	"fmt"
	"regexp"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9]`)

// sanitizeName maps every character outside [A-Za-z0-9] to underscore,
// falling back to the given literal for empty names.
func sanitizeName(restaurantName, fallback string) string {
	if restaurantName == "" {
		return fallback
	}
	return unsafeFilenameChars.ReplaceAllString(restaurantName, "_")
}

// MenuFilename builds "<name>_<ISO-date>.xlsx" for the full menu export.
func MenuFilename(restaurantName string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx",
		sanitizeName(restaurantName, "menu"),
		now.UTC().Format("2006-01-02"),
	)
}

// CategoryFilename builds "<name>_categories_<ISO-date>.xlsx".
func CategoryFilename(restaurantName string, now time.Time) string {
	return fmt.Sprintf("%s_categories_%s.xlsx",
		sanitizeName(restaurantName, "categories"),
		now.UTC().Format("2006-01-02"),
	)
}
