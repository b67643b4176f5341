package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTimeWindowWithinBounds(t *testing.T) {
	now := time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)
	check, err := CheckTimeWindow("09:00", "17:00", "UTC", now)
	require.NoError(t, err)
	assert.True(t, check.InWindow)
	assert.Zero(t, check.WaitMs)
}

func TestCheckTimeWindowOutsideBoundsReturnsExactWait(t *testing.T) {
	now := time.Date(2026, 7, 31, 20, 0, 0, 0, time.UTC)
	check, err := CheckTimeWindow("09:00", "17:00", "UTC", now)
	require.NoError(t, err)
	assert.False(t, check.InWindow)
	assert.Equal(t, (13 * time.Hour).Milliseconds(), check.WaitMs)
}

func TestCheckTimeWindowCrossesMidnight(t *testing.T) {
	inside := time.Date(2026, 7, 31, 23, 30, 0, 0, time.UTC)
	check, err := CheckTimeWindow("23:00", "02:00", "UTC", inside)
	require.NoError(t, err)
	assert.True(t, check.InWindow)

	afterMidnight := time.Date(2026, 7, 31, 1, 30, 0, 0, time.UTC)
	check, err = CheckTimeWindow("23:00", "02:00", "UTC", afterMidnight)
	require.NoError(t, err)
	assert.True(t, check.InWindow)

	outside := time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)
	check, err = CheckTimeWindow("23:00", "02:00", "UTC", outside)
	require.NoError(t, err)
	assert.False(t, check.InWindow)
}

func TestCheckTimeWindowInvalidTimezone(t *testing.T) {
	_, err := CheckTimeWindow("09:00", "17:00", "Not/AZone", time.Now())
	assert.Error(t, err)
}

func TestQuotaCheckAllowsUnderCap(t *testing.T) {
	now := time.Now()
	canProceed, _ := Check(Quota{Daily: 5, Weekly: 10}, nil, now)
	assert.True(t, canProceed)
}

func TestQuotaCheckBlocksAtDailyCap(t *testing.T) {
	now := time.Now()
	var history []time.Time
	for i := 0; i < 5; i++ {
		history = append(history, now.Add(-time.Duration(i)*time.Hour))
	}
	canProceed, waitUntil := Check(Quota{Daily: 5, Weekly: 100}, history, now)
	assert.False(t, canProceed)
	assert.True(t, waitUntil.After(now))
}

func TestQuotaCheckIgnoresEntriesOutsideWindow(t *testing.T) {
	now := time.Now()
	history := []time.Time{now.Add(-48 * time.Hour)}
	canProceed, _ := Check(Quota{Daily: 1, Weekly: 100}, history, now)
	assert.True(t, canProceed)
}
