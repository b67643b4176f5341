package activities

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smilemakc/linkedin-outreach-engine/internal/changedetect"
	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// UpdateMonitoredLeadInput / updateProfile for the lead path (§4.1
// updateMonitoredProfile, §4.6 step 3, §4.7). On isInitialFetch the snapshot
// is stored without diffing or alerting.
type UpdateMonitoredLeadInput struct {
	MonitoredLeadID string
	Fields          map[string]any
	IsInitialFetch  bool
}

type UpdateMonitoredLeadOutput struct {
	Alerts []domain.Alert
}

func (a *Activities) UpdateMonitoredLead(ctx context.Context, in UpdateMonitoredLeadInput) (UpdateMonitoredLeadOutput, error) {
	prev, err := a.Store.GetMonitoredLead(ctx, in.MonitoredLeadID)
	if err != nil {
		return UpdateMonitoredLeadOutput{}, err
	}

	updated := prev
	applyLeadFields(&updated, in.Fields)

	if in.IsInitialFetch {
		if err := a.Store.SaveMonitoredLead(ctx, updated); err != nil {
			return UpdateMonitoredLeadOutput{}, err
		}
		return UpdateMonitoredLeadOutput{}, nil
	}

	alerts := changedetect.DetectChanges(changedetect.LeadFields(prev, updated), prev.ID, prev.ReporterUserID, uuid.NewString, time.Now)
	for _, alert := range alerts {
		if err := a.Store.AddAlert(ctx, alert); err != nil {
			return UpdateMonitoredLeadOutput{}, err
		}
	}
	if err := a.Store.SaveMonitoredLead(ctx, updated); err != nil {
		return UpdateMonitoredLeadOutput{}, err
	}
	return UpdateMonitoredLeadOutput{Alerts: alerts}, nil
}

func applyLeadFields(m *domain.MonitoredLead, fields map[string]any) {
	if v, ok := getString(fields, "full_name"); ok {
		m.FullName = v
	}
	if v, ok := getString(fields, "headline"); ok {
		m.Headline = v
	}
	if v, ok := getString(fields, "location"); ok {
		m.Location = v
	}
	if v, ok := getString(fields, "last_job_title"); ok {
		m.LastJobTitle = v
	}
	if v, ok := getString(fields, "last_company_name"); ok {
		m.LastCompanyName = v
	}
	if v, ok := getString(fields, "last_company_id"); ok {
		m.LastCompanyID = v
	}
	if v, ok := getString(fields, "last_company_domain"); ok {
		m.LastCompanyDomain = v
	}
	if v, ok := getString(fields, "last_company_size"); ok {
		m.LastCompanySize = v
	}
	if v, ok := getString(fields, "last_company_industry"); ok {
		m.LastCompanyIndustry = v
	}
	if v, ok := fields["last_experience"]; ok {
		m.LastExperience = v
	}
	if v, ok := fields["last_education"]; ok {
		m.LastEducation = v
	}
	if v, ok := getString(fields, "profile_image_url"); ok {
		m.ProfileImageURL = v
	}
	if v, ok := getString(fields, "industry"); ok {
		m.Industry = v
	}
	m.LastFetchedAt = time.Now()
}

// UpdateMonitoredCompanyInput / updateProfile for the company path.
type UpdateMonitoredCompanyInput struct {
	MonitoredCompanyID string
	Fields              map[string]any
	IsInitialFetch      bool
}

type UpdateMonitoredCompanyOutput struct {
	Alerts []domain.Alert
}

func (a *Activities) UpdateMonitoredCompany(ctx context.Context, in UpdateMonitoredCompanyInput) (UpdateMonitoredCompanyOutput, error) {
	prev, err := a.Store.GetMonitoredCompany(ctx, in.MonitoredCompanyID)
	if err != nil {
		return UpdateMonitoredCompanyOutput{}, err
	}

	updated := prev
	applyCompanyFields(&updated, in.Fields)

	employeeCounter := changedetect.RotateCounter(prev.EmployeeCountCurrent, getInt(in.Fields, "employee_count_current"))
	followersCounter := changedetect.RotateCounter(prev.FollowersCountCurrent, getInt(in.Fields, "followers_count_current"))
	now := time.Now()
	if employeeCounter.Changed {
		updated.EmployeeCountPrevious = employeeCounter.Previous
		updated.EmployeeCountCurrent = employeeCounter.Current
		updated.EmployeeCountLastCheckedAt = now
	}
	if followersCounter.Changed {
		updated.FollowersCountPrevious = followersCounter.Previous
		updated.FollowersCountCurrent = followersCounter.Current
		updated.FollowersCountLastCheckedAt = now
	}

	if in.IsInitialFetch {
		updated.EmployeeCountCurrent = getInt(in.Fields, "employee_count_current")
		updated.FollowersCountCurrent = getInt(in.Fields, "followers_count_current")
		if err := a.Store.SaveMonitoredCompany(ctx, updated); err != nil {
			return UpdateMonitoredCompanyOutput{}, err
		}
		return UpdateMonitoredCompanyOutput{}, nil
	}

	fields := changedetect.CompanyFields(prev, updated)
	if employeeCounter.Changed {
		fields = append(fields, changedetect.Field{
			Name: "Employee Count", Title: "Employee Count Changed",
			Previous: employeeCounter.Previous, Updated: employeeCounter.Current,
			Priority: domain.PriorityMedium, Describable: true,
		})
	}
	if followersCounter.Changed {
		fields = append(fields, changedetect.Field{
			Name: "Followers Count", Title: "Followers Count Changed",
			Previous: followersCounter.Previous, Updated: followersCounter.Current,
			Priority: domain.PriorityLow, Describable: true,
		})
	}

	alerts := changedetect.DetectChanges(fields, prev.ID, prev.ReporterUserID, uuid.NewString, time.Now)
	for _, alert := range alerts {
		if err := a.Store.AddAlert(ctx, alert); err != nil {
			return UpdateMonitoredCompanyOutput{}, err
		}
	}
	if err := a.Store.SaveMonitoredCompany(ctx, updated); err != nil {
		return UpdateMonitoredCompanyOutput{}, err
	}
	return UpdateMonitoredCompanyOutput{Alerts: alerts}, nil
}

func applyCompanyFields(m *domain.MonitoredCompany, fields map[string]any) {
	if v, ok := getString(fields, "name"); ok {
		m.Name = v
	}
	if v, ok := getString(fields, "tagline"); ok {
		m.Tagline = v
	}
	if v, ok := getString(fields, "description"); ok {
		m.Description = v
	}
	if v, ok := getString(fields, "website"); ok {
		m.Website = v
	}
	if v, ok := getString(fields, "employee_range_current"); ok {
		m.EmployeeRangeCurrent = v
	}
	if v, ok := getString(fields, "industry"); ok {
		m.Industry = v
	}
	if v, ok := getString(fields, "hq_location"); ok {
		m.HQLocation = v
	}
	if v, ok := getString(fields, "logo_url"); ok {
		m.LogoURL = v
	}
	m.LastFetchedAt = time.Now()
}

// PushPostIDInput/Output — inserts a post id into the FIFO window and
// persists the result (§4.6 step 3, §8 property 5).
type PushPostIDInput struct {
	EntityKind string // "lead" | "company"
	EntityID   string
	PostID     string
}

func (a *Activities) PushLeadPostID(ctx context.Context, in PushPostIDInput) error {
	ml, err := a.Store.GetMonitoredLead(ctx, in.EntityID)
	if err != nil {
		return err
	}
	ml.Last7PostsIDs = domain.PushPostID(ml.Last7PostsIDs, in.PostID)
	return a.Store.SaveMonitoredLead(ctx, ml)
}

func (a *Activities) PushCompanyPostID(ctx context.Context, in PushPostIDInput) error {
	mc, err := a.Store.GetMonitoredCompany(ctx, in.EntityID)
	if err != nil {
		return err
	}
	mc.Last7PostsIDs = domain.PushPostID(mc.Last7PostsIDs, in.PostID)
	return a.Store.SaveMonitoredCompany(ctx, mc)
}

func getString(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getInt(m map[string]any, key string) int {
	v, ok := m[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
