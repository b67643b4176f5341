package ratelimit

import "time"

// Quota caps the number of successful connection-request sends allowed in a
// rolling 24h and 7d window (§4.4). The limiter is keyed per sender account
// per §9 Open Question 5's resolution.
type Quota struct {
	Daily  int
	Weekly int
}

// DefaultQuota matches typical provider connection-request caps.
func DefaultQuota() Quota {
	return Quota{Daily: 20, Weekly: 100}
}

// Check evaluates a rolling-window quota against a history of prior
// successful send timestamps (§4.1 checkConnectionRequestLimits, §4.4).
// sentAt need not be sorted. If the quota is exceeded, WaitUntil is the
// moment the oldest entry inside the binding window expires, so the
// workflow can sleep the exact duration until quota resets (§4.4).
func Check(q Quota, sentAt []time.Time, now time.Time) (canProceed bool, waitUntil time.Time) {
	dayCutoff := now.Add(-24 * time.Hour)
	weekCutoff := now.Add(-7 * 24 * time.Hour)

	var dailyCount, weeklyCount int
	var oldestDaily, oldestWeekly time.Time

	for _, t := range sentAt {
		if t.After(dayCutoff) {
			dailyCount++
			if oldestDaily.IsZero() || t.Before(oldestDaily) {
				oldestDaily = t
			}
		}
		if t.After(weekCutoff) {
			weeklyCount++
			if oldestWeekly.IsZero() || t.Before(oldestWeekly) {
				oldestWeekly = t
			}
		}
	}

	if dailyCount >= q.Daily {
		return false, oldestDaily.Add(24 * time.Hour)
	}
	if weeklyCount >= q.Weekly {
		return false, oldestWeekly.Add(7 * 24 * time.Hour)
	}
	return true, time.Time{}
}
