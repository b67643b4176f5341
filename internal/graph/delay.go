package graph

import (
	"time"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// DelayDuration converts a DelayData into a time.Duration (§4.2
// "getDelayMs", units s/m/h/d/w). Unknown units fall back to seconds.
func DelayDuration(d domain.DelayData) time.Duration {
	unit := time.Second
	switch d.Unit {
	case domain.DelaySeconds:
		unit = time.Second
	case domain.DelayMinutes:
		unit = time.Minute
	case domain.DelayHours:
		unit = time.Hour
	case domain.DelayDays:
		unit = 24 * time.Hour
	case domain.DelayWeeks:
		unit = 7 * 24 * time.Hour
	}
	return time.Duration(d.Delay) * unit
}
