package changedetect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

func TestHasRealChangeBothNullishIsFalse(t *testing.T) {
	assert.False(t, HasRealChange(nil, ""))
	assert.False(t, HasRealChange("", nil))
}

func TestHasRealChangeEqualIsFalse(t *testing.T) {
	assert.False(t, HasRealChange("Acme", "Acme"))
	assert.False(t, HasRealChange(5, 5))
}

func TestHasRealChangeDifferentIsTrue(t *testing.T) {
	assert.True(t, HasRealChange("Acme", "Acme Inc"))
	assert.True(t, HasRealChange(nil, "Acme"))
}

func fixedID() string            { return "alert-1" }
func fixedTime() time.Time       { return time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC) }

func TestDetectChangesEmptyDiffProducesNoAlerts(t *testing.T) {
	lead := domain.MonitoredLead{FullName: "Jane Doe", Headline: "Engineer"}
	alerts := DetectChanges(LeadFields(lead, lead), "lead-1", "reporter-1", fixedID, fixedTime)
	assert.Empty(t, alerts)
}

func TestDetectChangesOneAlertPerChangedField(t *testing.T) {
	prev := domain.MonitoredLead{FullName: "Jane Doe", Headline: "Engineer", Location: "NYC"}
	updated := prev
	updated.FullName = "Jane Smith"
	updated.Headline = "Senior Engineer"

	alerts := DetectChanges(LeadFields(prev, updated), "lead-1", "reporter-1", fixedID, fixedTime)
	require.Len(t, alerts, 2)
	titles := []string{alerts[0].Title, alerts[1].Title}
	assert.Contains(t, titles, "Full Name Changed")
	assert.Contains(t, titles, "HeadLine Changed")
}

func TestDetectChangesDeepEqualFieldIgnoresNullishBoth(t *testing.T) {
	prev := domain.MonitoredLead{}
	updated := domain.MonitoredLead{}
	alerts := DetectChanges(LeadFields(prev, updated), "lead-1", "reporter-1", fixedID, fixedTime)
	assert.Empty(t, alerts)
}

func TestDetectChangesDeepEqualFieldFiresOnStructuralDiff(t *testing.T) {
	prev := domain.MonitoredLead{LastExperience: map[string]any{"title": "Engineer"}}
	updated := domain.MonitoredLead{LastExperience: map[string]any{"title": "Manager"}}
	alerts := DetectChanges(LeadFields(prev, updated), "lead-1", "reporter-1", fixedID, fixedTime)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Experience Changed", alerts[0].Title)
}

func TestRotateCounterNoChange(t *testing.T) {
	u := RotateCounter(100, 100)
	assert.False(t, u.Changed)
}

func TestRotateCounterChanged(t *testing.T) {
	u := RotateCounter(100, 150)
	require.True(t, u.Changed)
	assert.Equal(t, 100, u.Previous)
	assert.Equal(t, 150, u.Current)
}
