package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Verdict is the tri-state result of an open/closed check. Text that
// cannot be decided either way resolves to Unknown, never to an error.
type Verdict string

const (
	Open    Verdict = "open"
	Closed  Verdict = "closed"
	Unknown Verdict = "unknown"
)

const closedDayMarker = "定休日"

// Both the spaced and unspaced form show up in scraped hours text.
var allDayMarkers = []string{"24時間営業", "24 時間営業"}

// timeRangePattern matches a single "H時MM分〜H時MM分" range. The 分 suffix
// is optional on either side and the separator can be any of the usual
// dash/wave glyphs seen in venue listings.
var timeRangePattern = regexp.MustCompile(`(\d{1,2})時(\d{2})分?[〜～~ー−–-](\d{1,2})時(\d{2})分?`)

const minutesPerDay = 1440

// WeekdayIndex remaps Go's Sunday=0 weekday to the Monday-first index
// used by weekly hours tables (Monday=0 ... Sunday=6).
func WeekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// IsOpenNow decides whether a venue is open at the given instant from its
// weekly hours table (7 entries, Monday first). Missing or unparseable
// entries resolve to Unknown.
//
// Only the first time range found in a day's text is honored. Venues with
// split hours (separate lunch and dinner ranges on one line) are reported
// from the first range alone; this is a known limitation.
func IsOpenNow(weekly []string, now time.Time) Verdict {
	if len(weekly) == 0 {
		return Unknown
	}

	idx := WeekdayIndex(now.Weekday())
	if idx >= len(weekly) {
		return Unknown
	}

	entry := weekly[idx]
	if strings.TrimSpace(entry) == "" {
		return Unknown
	}

	if strings.Contains(entry, closedDayMarker) {
		return Closed
	}
	for _, marker := range allDayMarkers {
		if strings.Contains(entry, marker) {
			return Open
		}
	}

	m := timeRangePattern.FindStringSubmatch(entry)
	if m == nil {
		return Unknown
	}

	openM := atoi(m[1])*60 + atoi(m[2])
	closeM := atoi(m[3])*60 + atoi(m[4])
	nowM := now.Hour()*60 + now.Minute()

	// close < open means the session runs past midnight into the next day.
	if closeM < openM {
		closeM += minutesPerDay
	}

	if nowM < openM {
		// Possibly inside the early-morning tail of yesterday's session.
		if closeM > minutesPerDay && nowM <= closeM-minutesPerDay {
			return Open
		}
		return Closed
	}

	if nowM <= closeM {
		return Open
	}
	return Closed
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
