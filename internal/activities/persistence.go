package activities

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// GetCampaignStatusInput/Output backs the checkCampaignStatus helper (§4.5):
// per-lead workflows poll this between steps to detect pause/stop/deletion.
type GetCampaignStatusInput struct {
	CampaignID string
}

type GetCampaignStatusOutput struct {
	Status    domain.CampaignStatus
	IsDeleted bool
}

func (a *Activities) GetCampaignStatus(ctx context.Context, in GetCampaignStatusInput) (GetCampaignStatusOutput, error) {
	c, err := a.Store.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return GetCampaignStatusOutput{}, err
	}
	return GetCampaignStatusOutput{Status: c.Status, IsDeleted: c.IsDeleted}, nil
}

// SetCampaignStatusInput / setCampaignStatus: persists the campaign's
// terminal status once C5's dispatch loop finishes (§3 campaign status DAG).
type SetCampaignStatusInput struct {
	CampaignID string
	Status     domain.CampaignStatus
}

func (a *Activities) SetCampaignStatus(ctx context.Context, in SetCampaignStatusInput) error {
	c, err := a.Store.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return err
	}
	c.Status = in.Status
	return a.Store.SaveCampaign(ctx, c)
}

// UpdateLeadInput / updateLead (§4.1): persists the lead's status.
type UpdateLeadInput struct {
	LeadID string
	Status domain.LeadStatus
}

func (a *Activities) UpdateLead(ctx context.Context, in UpdateLeadInput) error {
	lead, err := a.Store.GetLead(ctx, in.LeadID)
	if err != nil {
		return err
	}
	lead.Status = in.Status
	return a.Store.SaveLead(ctx, lead)
}

// AddCampaignStepInput / updateCampaignStep (§4.1): appends the CampaignStep
// record for one executed node. StepIndex is supplied by the caller
// (dequeue-order ordinal, §9 Open Question 3), not recomputed here.
type AddCampaignStepInput struct {
	CampaignID string
	LeadID     string
	StepIndex  int
	NodeType   domain.ActionType
	Config     map[string]any
	Success    bool
	Result     map[string]any
}

func (a *Activities) AddCampaignStep(ctx context.Context, in AddCampaignStepInput) error {
	step := domain.CampaignStep{
		ID:         uuid.NewString(),
		CampaignID: in.CampaignID,
		LeadID:     in.LeadID,
		StepIndex:  in.StepIndex,
		NodeType:   in.NodeType,
		Config:     in.Config,
		Success:    in.Success,
		Result:     in.Result,
		CreatedAt:  time.Now(),
	}
	return a.Store.AppendCampaignStep(ctx, step)
}

// AddAlertInput / addAlert (§4.1).
type AddAlertInput struct {
	LeadID         string
	ReporterUserID string
	Title          string
	Description    string
	Priority       domain.AlertPriority
	PreviousValue  any
	UpdatedValue   any
}

func (a *Activities) AddAlert(ctx context.Context, in AddAlertInput) error {
	alert := domain.Alert{
		ID:             uuid.NewString(),
		LeadID:         in.LeadID,
		ReporterUserID: in.ReporterUserID,
		Title:          in.Title,
		Description:    in.Description,
		Priority:       in.Priority,
		PreviousValue:  in.PreviousValue,
		UpdatedValue:   in.UpdatedValue,
		CreatedAt:      time.Now(),
	}
	return a.Store.AddAlert(ctx, alert)
}

// GetReporterLeadByIDInput/Output — resolves a monitored lead row for C6 step 1.
type GetReporterLeadByIDInput struct {
	ID string
}

func (a *Activities) GetReporterLeadByID(ctx context.Context, in GetReporterLeadByIDInput) (domain.MonitoredLead, error) {
	return a.Store.GetMonitoredLead(ctx, in.ID)
}

// GetReporterCompanyByIDInput/Output — resolves a monitored company row.
type GetReporterCompanyByIDInput struct {
	ID string
}

func (a *Activities) GetReporterCompanyByID(ctx context.Context, in GetReporterCompanyByIDInput) (domain.MonitoredCompany, error) {
	return a.Store.GetMonitoredCompany(ctx, in.ID)
}

// FetchLeadProfileInput/Output — fetchProfile(url) (§4.6 step 2/3) for the
// lead path.
type FetchLeadProfileInput struct {
	ProfileURL string
}

type FetchProfileOutput struct {
	Fields map[string]any
	Posts  []string
}

func (a *Activities) FetchLeadProfile(ctx context.Context, in FetchLeadProfileInput) (FetchProfileOutput, error) {
	snap, posts, err := a.Provider.GetProfile(ctx, in.ProfileURL)
	if err != nil {
		return FetchProfileOutput{}, err
	}
	return FetchProfileOutput{Fields: snap.Fields, Posts: posts}, nil
}

// FetchCompanyProfileInput/Output — fetchProfile(url) for the company path.
type FetchCompanyProfileInput struct {
	CompanyURL string
}

func (a *Activities) FetchCompanyProfile(ctx context.Context, in FetchCompanyProfileInput) (FetchProfileOutput, error) {
	snap, posts, err := a.Provider.GetCompanyProfile(ctx, in.CompanyURL)
	if err != nil {
		return FetchProfileOutput{}, err
	}
	return FetchProfileOutput{Fields: snap.Fields, Posts: posts}, nil
}

// FetchPostInput/Output — one post's text, used before summarizePost.
type FetchPostInput struct {
	PostID string
}

func (a *Activities) FetchPost(ctx context.Context, in FetchPostInput) (string, error) {
	post, err := a.Provider.GetPost(ctx, in.PostID)
	if err != nil {
		return "", err
	}
	return post.Text, nil
}
