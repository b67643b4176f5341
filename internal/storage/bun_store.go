package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// BunStore is the Postgres-backed Store, adapted from the teacher's
// bun_store.go: one model struct per table, ToDomain/From* conversion
// helpers, upsert-on-conflict writes.
type BunStore struct {
	db *bun.DB
}

func NewBunStore(dsn string) *BunStore {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	return &BunStore{db: db}
}

func (s *BunStore) InitSchema(ctx context.Context) error {
	models := []interface{}{
		(*CampaignModel)(nil),
		(*LeadModel)(nil),
		(*CampaignStepModel)(nil),
		(*ConnectionRequestModel)(nil),
		(*MonitoredLeadModel)(nil),
		(*MonitoredCompanyModel)(nil),
		(*AlertModel)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *BunStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *BunStore) Close() error                   { return s.db.Close() }

// Campaign

type CampaignModel struct {
	bun.BaseModel `bun:"table:campaigns,alias:c"`

	ID                    string    `bun:"id,pk"`
	OrganizationID        string    `bun:"organization_id"`
	Name                  string    `bun:"name"`
	Description           string    `bun:"description"`
	SenderAccountID       string    `bun:"sender_account_id"`
	ProspectListID        string    `bun:"prospect_list_id"`
	WindowStartTime       string    `bun:"window_start_time"`
	WindowEndTime         string    `bun:"window_end_time"`
	WindowTimezone        string    `bun:"window_timezone"`
	WindowLeadsPerDay     int       `bun:"window_leads_per_day"`
	WorkflowDefinitionRef string    `bun:"workflow_definition_ref"`
	Status                string    `bun:"status"`
	IsDeleted             bool      `bun:"is_deleted"`
	CreatedAt             time.Time `bun:"created_at"`
	UpdatedAt             time.Time `bun:"updated_at"`
}

func (m *CampaignModel) ToDomain() domain.Campaign {
	return domain.Campaign{
		ID:              m.ID,
		OrganizationID:  m.OrganizationID,
		Name:            m.Name,
		Description:     m.Description,
		SenderAccountID: m.SenderAccountID,
		ProspectListID:  m.ProspectListID,
		Window: domain.SendingWindow{
			StartTime:   m.WindowStartTime,
			EndTime:     m.WindowEndTime,
			Timezone:    m.WindowTimezone,
			LeadsPerDay: m.WindowLeadsPerDay,
		},
		WorkflowDefinitionRef: m.WorkflowDefinitionRef,
		Status:                domain.CampaignStatus(m.Status),
		IsDeleted:             m.IsDeleted,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func newCampaignModel(c domain.Campaign) *CampaignModel {
	return &CampaignModel{
		ID:                    c.ID,
		OrganizationID:        c.OrganizationID,
		Name:                  c.Name,
		Description:           c.Description,
		SenderAccountID:       c.SenderAccountID,
		ProspectListID:        c.ProspectListID,
		WindowStartTime:       c.Window.StartTime,
		WindowEndTime:         c.Window.EndTime,
		WindowTimezone:        c.Window.Timezone,
		WindowLeadsPerDay:     c.Window.LeadsPerDay,
		WorkflowDefinitionRef: c.WorkflowDefinitionRef,
		Status:                string(c.Status),
		IsDeleted:             c.IsDeleted,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func (s *BunStore) SaveCampaign(ctx context.Context, c domain.Campaign) error {
	model := newCampaignModel(c)
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	model := new(CampaignModel)
	err := s.db.NewSelect().Model(model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return domain.Campaign{}, err
	}
	return model.ToDomain(), nil
}

func (s *BunStore) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var models []CampaignModel
	err := s.db.NewSelect().Model(&models).
		Where("is_deleted = false").
		Where("status IN (?)", bun.In([]string{string(domain.CampaignActive)})).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, len(models))
	for i, m := range models {
		out[i] = m.ToDomain()
	}
	return out, nil
}

// Lead

type LeadModel struct {
	bun.BaseModel `bun:"table:leads,alias:l"`

	ID         string `bun:"id,pk"`
	CampaignID string `bun:"campaign_id"`
	ProfileURL string `bun:"profile_url"`
	FirstName  string `bun:"first_name"`
	LastName   string `bun:"last_name"`
	Company    string `bun:"company"`
	Status     string `bun:"status"`
}

func (m *LeadModel) ToDomain() domain.Lead {
	return domain.Lead{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		ProfileURL: m.ProfileURL,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Company:    m.Company,
		Status:     domain.LeadStatus(m.Status),
	}
}

func newLeadModel(l domain.Lead) *LeadModel {
	return &LeadModel{
		ID:         l.ID,
		CampaignID: l.CampaignID,
		ProfileURL: l.ProfileURL,
		FirstName:  l.FirstName,
		LastName:   l.LastName,
		Company:    l.Company,
		Status:     string(l.Status),
	}
}

func (s *BunStore) SaveLead(ctx context.Context, l domain.Lead) error {
	model := newLeadModel(l)
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) GetLead(ctx context.Context, id string) (domain.Lead, error) {
	model := new(LeadModel)
	err := s.db.NewSelect().Model(model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return domain.Lead{}, err
	}
	return model.ToDomain(), nil
}

func (s *BunStore) ListLeadsByCampaign(ctx context.Context, campaignID string) ([]domain.Lead, error) {
	var models []LeadModel
	err := s.db.NewSelect().Model(&models).Where("campaign_id = ?", campaignID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Lead, len(models))
	for i, m := range models {
		out[i] = m.ToDomain()
	}
	return out, nil
}

// CampaignStep

type CampaignStepModel struct {
	bun.BaseModel `bun:"table:campaign_steps,alias:cs"`

	ID         string         `bun:"id,pk"`
	CampaignID string         `bun:"campaign_id"`
	LeadID     string         `bun:"lead_id"`
	StepIndex  int            `bun:"step_index"`
	NodeType   string         `bun:"node_type"`
	Config     map[string]any `bun:"config,type:jsonb"`
	Success    bool           `bun:"success"`
	Result     map[string]any `bun:"result,type:jsonb"`
	CreatedAt  time.Time      `bun:"created_at"`
}

func (m *CampaignStepModel) ToDomain() domain.CampaignStep {
	return domain.CampaignStep{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		LeadID:     m.LeadID,
		StepIndex:  m.StepIndex,
		NodeType:   domain.ActionType(m.NodeType),
		Config:     m.Config,
		Success:    m.Success,
		Result:     m.Result,
		CreatedAt:  m.CreatedAt,
	}
}

func (s *BunStore) AppendCampaignStep(ctx context.Context, step domain.CampaignStep) error {
	model := &CampaignStepModel{
		ID:         step.ID,
		CampaignID: step.CampaignID,
		LeadID:     step.LeadID,
		StepIndex:  step.StepIndex,
		NodeType:   string(step.NodeType),
		Config:     step.Config,
		Success:    step.Success,
		Result:     step.Result,
		CreatedAt:  step.CreatedAt,
	}
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) ListCampaignSteps(ctx context.Context, campaignID, leadID string) ([]domain.CampaignStep, error) {
	var models []CampaignStepModel
	err := s.db.NewSelect().Model(&models).
		Where("campaign_id = ?", campaignID).
		Where("lead_id = ?", leadID).
		Order("step_index ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CampaignStep, len(models))
	for i, m := range models {
		out[i] = m.ToDomain()
	}
	return out, nil
}

// ConnectionRequest — tracks successful sends per sender account for the
// rolling quota window (§4.4).

type ConnectionRequestModel struct {
	bun.BaseModel `bun:"table:connection_requests,alias:cr"`

	ID              string    `bun:"id,pk,autoincrement"`
	SenderAccountID string    `bun:"sender_account_id"`
	SentAt          time.Time `bun:"sent_at"`
}

func (s *BunStore) RecordConnectionRequestSent(ctx context.Context, senderAccountID string, at time.Time) error {
	model := &ConnectionRequestModel{SenderAccountID: senderAccountID, SentAt: at}
	_, err := s.db.NewInsert().Model(model).Exec(ctx)
	return err
}

func (s *BunStore) SentConnectionRequestTimestamps(ctx context.Context, senderAccountID string) ([]time.Time, error) {
	var models []ConnectionRequestModel
	err := s.db.NewSelect().Model(&models).
		Where("sender_account_id = ?", senderAccountID).
		Where("sent_at > ?", time.Now().Add(-7*24*time.Hour)).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(models))
	for i, m := range models {
		out[i] = m.SentAt
	}
	return out, nil
}

// MonitoredLead

type MonitoredLeadModel struct {
	bun.BaseModel `bun:"table:monitored_leads,alias:ml"`

	ID                  string    `bun:"id,pk"`
	ReporterUserID      string    `bun:"reporter_user_id"`
	ProfileURL          string    `bun:"profile_url"`
	FullName            string    `bun:"full_name"`
	Headline            string    `bun:"headline"`
	Location            string    `bun:"location"`
	LastJobTitle        string    `bun:"last_job_title"`
	LastCompanyName     string    `bun:"last_company_name"`
	LastCompanyID       string    `bun:"last_company_id"`
	LastCompanyDomain   string    `bun:"last_company_domain"`
	LastCompanySize     string    `bun:"last_company_size"`
	LastCompanyIndustry string    `bun:"last_company_industry"`
	LastExperience      any       `bun:"last_experience,type:jsonb"`
	LastEducation       any       `bun:"last_education,type:jsonb"`
	ProfileImageURL     string    `bun:"profile_image_url"`
	Industry            string    `bun:"industry"`
	LastProfileHash     string    `bun:"last_profile_hash"`
	LastFetchedAt       time.Time `bun:"last_fetched_at"`
	Last7PostsIDs       []string  `bun:"last7_posts_ids,array"`
	IsPaused            bool      `bun:"is_paused"`
}

func (m *MonitoredLeadModel) ToDomain() domain.MonitoredLead {
	return domain.MonitoredLead{
		ID:                  m.ID,
		ReporterUserID:      m.ReporterUserID,
		ProfileURL:          m.ProfileURL,
		FullName:            m.FullName,
		Headline:            m.Headline,
		Location:            m.Location,
		LastJobTitle:        m.LastJobTitle,
		LastCompanyName:     m.LastCompanyName,
		LastCompanyID:       m.LastCompanyID,
		LastCompanyDomain:   m.LastCompanyDomain,
		LastCompanySize:     m.LastCompanySize,
		LastCompanyIndustry: m.LastCompanyIndustry,
		LastExperience:      m.LastExperience,
		LastEducation:       m.LastEducation,
		ProfileImageURL:     m.ProfileImageURL,
		Industry:            m.Industry,
		LastProfileHash:     m.LastProfileHash,
		LastFetchedAt:       m.LastFetchedAt,
		Last7PostsIDs:       m.Last7PostsIDs,
		IsPaused:            m.IsPaused,
	}
}

func newMonitoredLeadModel(ml domain.MonitoredLead) *MonitoredLeadModel {
	return &MonitoredLeadModel{
		ID:                  ml.ID,
		ReporterUserID:      ml.ReporterUserID,
		ProfileURL:          ml.ProfileURL,
		FullName:            ml.FullName,
		Headline:            ml.Headline,
		Location:            ml.Location,
		LastJobTitle:        ml.LastJobTitle,
		LastCompanyName:     ml.LastCompanyName,
		LastCompanyID:       ml.LastCompanyID,
		LastCompanyDomain:   ml.LastCompanyDomain,
		LastCompanySize:     ml.LastCompanySize,
		LastCompanyIndustry: ml.LastCompanyIndustry,
		LastExperience:      ml.LastExperience,
		LastEducation:       ml.LastEducation,
		ProfileImageURL:     ml.ProfileImageURL,
		Industry:            ml.Industry,
		LastProfileHash:     ml.LastProfileHash,
		LastFetchedAt:       ml.LastFetchedAt,
		Last7PostsIDs:       ml.Last7PostsIDs,
		IsPaused:            ml.IsPaused,
	}
}

func (s *BunStore) SaveMonitoredLead(ctx context.Context, ml domain.MonitoredLead) error {
	model := newMonitoredLeadModel(ml)
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) GetMonitoredLead(ctx context.Context, id string) (domain.MonitoredLead, error) {
	model := new(MonitoredLeadModel)
	err := s.db.NewSelect().Model(model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return domain.MonitoredLead{}, err
	}
	return model.ToDomain(), nil
}

func (s *BunStore) ListActiveMonitoredLeads(ctx context.Context) ([]domain.MonitoredLead, error) {
	var models []MonitoredLeadModel
	err := s.db.NewSelect().Model(&models).Where("is_paused = false").Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MonitoredLead, len(models))
	for i, m := range models {
		out[i] = m.ToDomain()
	}
	return out, nil
}

// MonitoredCompany

type MonitoredCompanyModel struct {
	bun.BaseModel `bun:"table:monitored_companies,alias:mc"`

	ID                          string    `bun:"id,pk"`
	ReporterUserID              string    `bun:"reporter_user_id"`
	CompanyURL                  string    `bun:"company_url"`
	Name                        string    `bun:"name"`
	Tagline                     string    `bun:"tagline"`
	Description                 string    `bun:"description"`
	Website                     string    `bun:"website"`
	EmployeeRangeCurrent        string    `bun:"employee_range_current"`
	EmployeeRangePrevious       string    `bun:"employee_range_previous"`
	EmployeeCountCurrent        int       `bun:"employee_count_current"`
	EmployeeCountPrevious       int       `bun:"employee_count_previous"`
	EmployeeCountLastCheckedAt  time.Time `bun:"employee_count_last_checked_at"`
	FollowersCountCurrent       int       `bun:"followers_count_current"`
	FollowersCountPrevious      int       `bun:"followers_count_previous"`
	FollowersCountLastCheckedAt time.Time `bun:"followers_count_last_checked_at"`
	Industry                    string    `bun:"industry"`
	HQLocation                  string    `bun:"hq_location"`
	LogoURL                     string    `bun:"logo_url"`
	LastProfileHash             string    `bun:"last_profile_hash"`
	LastFetchedAt               time.Time `bun:"last_fetched_at"`
	Last7PostsIDs               []string  `bun:"last7_posts_ids,array"`
	IsPaused                    bool      `bun:"is_paused"`
}

func (m *MonitoredCompanyModel) ToDomain() domain.MonitoredCompany {
	return domain.MonitoredCompany{
		ID:                          m.ID,
		ReporterUserID:              m.ReporterUserID,
		CompanyURL:                  m.CompanyURL,
		Name:                        m.Name,
		Tagline:                     m.Tagline,
		Description:                 m.Description,
		Website:                     m.Website,
		EmployeeRangeCurrent:        m.EmployeeRangeCurrent,
		EmployeeRangePrevious:       m.EmployeeRangePrevious,
		EmployeeCountCurrent:        m.EmployeeCountCurrent,
		EmployeeCountPrevious:       m.EmployeeCountPrevious,
		EmployeeCountLastCheckedAt:  m.EmployeeCountLastCheckedAt,
		FollowersCountCurrent:       m.FollowersCountCurrent,
		FollowersCountPrevious:      m.FollowersCountPrevious,
		FollowersCountLastCheckedAt: m.FollowersCountLastCheckedAt,
		Industry:                    m.Industry,
		HQLocation:                  m.HQLocation,
		LogoURL:                     m.LogoURL,
		LastProfileHash:             m.LastProfileHash,
		LastFetchedAt:               m.LastFetchedAt,
		Last7PostsIDs:               m.Last7PostsIDs,
		IsPaused:                    m.IsPaused,
	}
}

func newMonitoredCompanyModel(mc domain.MonitoredCompany) *MonitoredCompanyModel {
	return &MonitoredCompanyModel{
		ID:                          mc.ID,
		ReporterUserID:              mc.ReporterUserID,
		CompanyURL:                  mc.CompanyURL,
		Name:                        mc.Name,
		Tagline:                     mc.Tagline,
		Description:                 mc.Description,
		Website:                     mc.Website,
		EmployeeRangeCurrent:        mc.EmployeeRangeCurrent,
		EmployeeRangePrevious:       mc.EmployeeRangePrevious,
		EmployeeCountCurrent:        mc.EmployeeCountCurrent,
		EmployeeCountPrevious:       mc.EmployeeCountPrevious,
		EmployeeCountLastCheckedAt:  mc.EmployeeCountLastCheckedAt,
		FollowersCountCurrent:       mc.FollowersCountCurrent,
		FollowersCountPrevious:      mc.FollowersCountPrevious,
		FollowersCountLastCheckedAt: mc.FollowersCountLastCheckedAt,
		Industry:                    mc.Industry,
		HQLocation:                  mc.HQLocation,
		LogoURL:                     mc.LogoURL,
		LastProfileHash:             mc.LastProfileHash,
		LastFetchedAt:               mc.LastFetchedAt,
		Last7PostsIDs:               mc.Last7PostsIDs,
		IsPaused:                    mc.IsPaused,
	}
}

func (s *BunStore) SaveMonitoredCompany(ctx context.Context, mc domain.MonitoredCompany) error {
	model := newMonitoredCompanyModel(mc)
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) GetMonitoredCompany(ctx context.Context, id string) (domain.MonitoredCompany, error) {
	model := new(MonitoredCompanyModel)
	err := s.db.NewSelect().Model(model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return domain.MonitoredCompany{}, err
	}
	return model.ToDomain(), nil
}

func (s *BunStore) ListActiveMonitoredCompanies(ctx context.Context) ([]domain.MonitoredCompany, error) {
	var models []MonitoredCompanyModel
	err := s.db.NewSelect().Model(&models).Where("is_paused = false").Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MonitoredCompany, len(models))
	for i, m := range models {
		out[i] = m.ToDomain()
	}
	return out, nil
}

// Alert

type AlertModel struct {
	bun.BaseModel `bun:"table:alerts,alias:a"`

	ID             string    `bun:"id,pk"`
	LeadID         string    `bun:"lead_id"`
	ReporterUserID string    `bun:"reporter_user_id"`
	Title          string    `bun:"title"`
	Description    string    `bun:"description"`
	Priority       string    `bun:"priority"`
	Acknowledged   bool      `bun:"acknowledged"`
	PreviousValue  any       `bun:"previous_value,type:jsonb"`
	UpdatedValue   any       `bun:"updated_value,type:jsonb"`
	CreatedAt      time.Time `bun:"created_at"`
}

func (m *AlertModel) ToDomain() domain.Alert {
	return domain.Alert{
		ID:             m.ID,
		LeadID:         m.LeadID,
		ReporterUserID: m.ReporterUserID,
		Title:          m.Title,
		Description:    m.Description,
		Priority:       domain.AlertPriority(m.Priority),
		Acknowledged:   m.Acknowledged,
		PreviousValue:  m.PreviousValue,
		UpdatedValue:   m.UpdatedValue,
		CreatedAt:      m.CreatedAt,
	}
}

func (s *BunStore) AddAlert(ctx context.Context, a domain.Alert) error {
	model := &AlertModel{
		ID:             a.ID,
		LeadID:         a.LeadID,
		ReporterUserID: a.ReporterUserID,
		Title:          a.Title,
		Description:    a.Description,
		Priority:       string(a.Priority),
		Acknowledged:   a.Acknowledged,
		PreviousValue:  a.PreviousValue,
		UpdatedValue:   a.UpdatedValue,
		CreatedAt:      a.CreatedAt,
	}
	_, err := s.db.NewInsert().Model(model).On("CONFLICT (id) DO UPDATE").Exec(ctx)
	return err
}

func (s *BunStore) ListAlerts(ctx context.Context, leadID string) ([]domain.Alert, error) {
	var models []AlertModel
	err := s.db.NewSelect().Model(&models).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Alert, len(models))
	for i, m := range models {
		out[i] = m.ToDomain()
	}
	return out, nil
}

var _ Store = (*BunStore)(nil)
