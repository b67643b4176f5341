// Package ratelimit implements the pure computation behind C4: time-window
// gating (timezone-aware) and the rolling-window connection-request quota
// counter. It is invoked from internal/activities so the math is unit
// testable independent of Temporal and the database.
package ratelimit

import (
	"fmt"
	"time"
)

// WindowCheck is the result of checkTimeWindow (§4.1, §4.4).
type WindowCheck struct {
	InWindow bool
	// WaitMs is positive only when InWindow is false; it is the exact
	// milliseconds until the window next opens.
	WaitMs int64
}

// CheckTimeWindow computes whether "now" (as observed in the campaign's
// timezone) falls within [startTime, endTime) expressed as "HH:MM" local
// strings, per §4.4. It handles windows that cross midnight (§8 property
// 11: 23:59-00:01 crossing midnight).
func CheckTimeWindow(startTime, endTime, timezone string, now time.Time) (WindowCheck, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return WindowCheck{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	local := now.In(loc)

	startMin, err := parseHHMM(startTime)
	if err != nil {
		return WindowCheck{}, err
	}
	endMin, err := parseHHMM(endTime)
	if err != nil {
		return WindowCheck{}, err
	}
	nowMin := local.Hour()*60 + local.Minute()

	var inWindow bool
	if startMin <= endMin {
		inWindow = nowMin >= startMin && nowMin < endMin
	} else {
		// Window crosses midnight, e.g. 23:00-02:00.
		inWindow = nowMin >= startMin || nowMin < endMin
	}

	if inWindow {
		return WindowCheck{InWindow: true, WaitMs: 0}, nil
	}

	nextOpen := nextWindowOpen(local, startMin, nowMin)
	waitMs := nextOpen.Sub(local).Milliseconds()
	if waitMs < 0 {
		waitMs = 0
	}
	return WindowCheck{InWindow: false, WaitMs: waitMs}, nil
}

func parseHHMM(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid HH:MM time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time out of range %q", s)
	}
	return h*60 + m, nil
}

func nextWindowOpen(local time.Time, startMin, nowMin int) time.Time {
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	candidate := dayStart.Add(time.Duration(startMin) * time.Minute)
	if nowMin >= startMin {
		candidate = candidate.Add(24 * time.Hour)
	}
	return candidate
}
