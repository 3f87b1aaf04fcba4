package render

import (
	"fmt"
	"time"
)

// Hebrew month names indexed by time.Month.
var hebrewMonths = [...]string{
	time.January:   "ינואר",
	time.February:  "פברואר",
	time.March:     "מרץ",
	time.April:     "אפריל",
	time.May:       "מאי",
	time.June:      "יוני",
	time.July:      "יולי",
	time.August:    "אוגוסט",
	time.September: "ספטמבר",
	time.October:   "אוקטובר",
	time.November:  "נובמבר",
	time.December:  "דצמבר",
}

// FormatApprovalDate renders a timestamp the way the approval emails show
// it: long Hebrew date plus time, e.g. "28 באוגוסט 2026, 14:05".
func FormatApprovalDate(t time.Time) string {
	return fmt.Sprintf("%d ב%s %d, %02d:%02d",
		t.Day(), hebrewMonths[t.Month()], t.Year(), t.Hour(), t.Minute())
}

// FormatContractDate renders a timestamp the way the contract header shows
// it: numeric day.month.year, e.g. "28.8.2026".
func FormatContractDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}
