package changedetect

import "github.com/smilemakc/linkedin-outreach-engine/internal/domain"

// LeadFields builds the comparison table for a monitored lead, matching the
// field/priority table in §4.7 exactly.
func LeadFields(prev, updated domain.MonitoredLead) []Field {
	return []Field{
		{Name: "Full Name", Title: "Full Name Changed", Previous: prev.FullName, Updated: updated.FullName, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Profile Image", Title: "Profile Image Changed", Previous: prev.ProfileImageURL, Updated: updated.ProfileImageURL, Priority: domain.PriorityLow},
		{Name: "HeadLine", Title: "HeadLine Changed", Previous: prev.Headline, Updated: updated.Headline, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Location", Title: "Location Changed", Previous: prev.Location, Updated: updated.Location, Priority: domain.PriorityHigh, Describable: true},
		{Name: "Job Title", Title: "Job Title Changed", Previous: prev.LastJobTitle, Updated: updated.LastJobTitle, Priority: domain.PriorityHigh, Describable: true},
		{Name: "Company Name", Title: "Company Name Changed", Previous: prev.LastCompanyName, Updated: updated.LastCompanyName, Priority: domain.PriorityHigh, Describable: true},
		{Name: "Company ID", Title: "Company Changed", Previous: prev.LastCompanyID, Updated: updated.LastCompanyID, Priority: domain.PriorityHigh, Describable: true},
		{Name: "Experience", Title: "Experience Changed", Previous: prev.LastExperience, Updated: updated.LastExperience, Priority: domain.PriorityHigh, DeepEqual: true},
		{Name: "Education", Title: "Education Changed", Previous: prev.LastEducation, Updated: updated.LastEducation, Priority: domain.PriorityLow, DeepEqual: true},
		{Name: "Company Domain", Title: "Company Domain Changed", Previous: prev.LastCompanyDomain, Updated: updated.LastCompanyDomain, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Company Size", Title: "Company Size Changed", Previous: prev.LastCompanySize, Updated: updated.LastCompanySize, Priority: domain.PriorityLow, Describable: true},
		{Name: "Company Industry", Title: "Company Industry Changed", Previous: prev.LastCompanyIndustry, Updated: updated.LastCompanyIndustry, Priority: domain.PriorityLow, Describable: true},
	}
}

// CompanyFields builds the comparison table for a monitored company,
// matching §4.7's "Company fields" list. Counter fields (employee/followers
// count) are handled separately by RotateCounter since they also stamp a
// *_previous column and *_last_checked_at timestamp.
func CompanyFields(prev, updated domain.MonitoredCompany) []Field {
	return []Field{
		{Name: "Name", Title: "Company Name Changed", Previous: prev.Name, Updated: updated.Name, Priority: domain.PriorityHigh, Describable: true},
		{Name: "Tagline", Title: "Tagline Changed", Previous: prev.Tagline, Updated: updated.Tagline, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Description", Title: "Description Changed", Previous: prev.Description, Updated: updated.Description, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Website", Title: "Website Changed", Previous: prev.Website, Updated: updated.Website, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Employee Range", Title: "Employee Range Changed", Previous: prev.EmployeeRangeCurrent, Updated: updated.EmployeeRangeCurrent, Priority: domain.PriorityMedium, Describable: true},
		{Name: "Industry", Title: "Industry Changed", Previous: prev.Industry, Updated: updated.Industry, Priority: domain.PriorityHigh, Describable: true},
		{Name: "HQ Location", Title: "HQ Location Changed", Previous: prev.HQLocation, Updated: updated.HQLocation, Priority: domain.PriorityHigh, Describable: true},
		{Name: "Logo", Title: "Logo Changed", Previous: prev.LogoURL, Updated: updated.LogoURL, Priority: domain.PriorityLow},
	}
}

// CounterUpdate is the result of rotating a numeric counter (§4.7: "the
// detector additionally rotates the previous value into a *_previous column
// and stamps *_last_checked_at when the counter changed").
type CounterUpdate struct {
	Changed  bool
	Current  int
	Previous int
}

// RotateCounter compares a stored counter to a freshly fetched one and
// reports whether the caller should rotate Previous/Current and stamp
// LastCheckedAt (§4.7).
func RotateCounter(storedCurrent, fetched int) CounterUpdate {
	if storedCurrent == fetched {
		return CounterUpdate{Changed: false, Current: storedCurrent, Previous: storedCurrent}
	}
	return CounterUpdate{Changed: true, Current: fetched, Previous: storedCurrent}
}
