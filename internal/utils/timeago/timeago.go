package timeago

import (
	"fmt"
	"time"
)

// Format renders the relative age of a timestamp for story display:
// "N days ago", "N hours ago", "N minutes ago", or "Just now". Each unit
// applies only strictly past its boundary, so exactly one hour is
// "60 minutes ago" and exactly one minute is "Just now".
func Format(t time.Time, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if seconds > 86400 {
		return fmt.Sprintf("%d days ago", seconds/86400)
	}
	if seconds > 3600 {
		return fmt.Sprintf("%d hours ago", seconds/3600)
	}
	if seconds > 60 {
		return fmt.Sprintf("%d minutes ago", seconds/60)
	}
	return "Just now"
}

// Since is Format against the wall clock.
func Since(t time.Time) string {
	return Format(t, time.Now())
}
