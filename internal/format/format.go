// Package format renders numbers and dates for terminal and API output.
package format

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Number renders n with thousands separators ("0,0")
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Relative renders t relative to now, e.g. "3 weeks from now" or "2 days ago"
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Date renders the UTC day of an instant
func Date(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
