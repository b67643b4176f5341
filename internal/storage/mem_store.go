package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// MemStore is a deterministic in-memory Store for unit and workflow tests.
type MemStore struct {
	mu sync.Mutex

	campaigns         map[string]domain.Campaign
	leads             map[string]domain.Lead
	steps             []domain.CampaignStep
	sentConnReqs      map[string][]time.Time
	monitoredLeads    map[string]domain.MonitoredLead
	monitoredCompanies map[string]domain.MonitoredCompany
	alerts            []domain.Alert
}

func NewMemStore() *MemStore {
	return &MemStore{
		campaigns:          make(map[string]domain.Campaign),
		leads:              make(map[string]domain.Lead),
		sentConnReqs:       make(map[string][]time.Time),
		monitoredLeads:     make(map[string]domain.MonitoredLead),
		monitoredCompanies: make(map[string]domain.MonitoredCompany),
	}
}

func (s *MemStore) SaveCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = c
	return nil
}

func (s *MemStore) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, &ErrNotFound{Entity: "campaign", ID: id}
	}
	return c, nil
}

func (s *MemStore) ListActiveCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Campaign
	for _, c := range s.campaigns {
		if !c.IsDeleted && c.Status == domain.CampaignActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) SaveLead(_ context.Context, l domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[l.ID] = l
	return nil
}

func (s *MemStore) GetLead(_ context.Context, id string) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leads[id]
	if !ok {
		return domain.Lead{}, &ErrNotFound{Entity: "lead", ID: id}
	}
	return l, nil
}

func (s *MemStore) ListLeadsByCampaign(_ context.Context, campaignID string) ([]domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Lead
	for _, l := range s.leads {
		if l.CampaignID == campaignID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) AppendCampaignStep(_ context.Context, step domain.CampaignStep) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step)
	return nil
}

func (s *MemStore) ListCampaignSteps(_ context.Context, campaignID, leadID string) ([]domain.CampaignStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.CampaignStep
	for _, step := range s.steps {
		if step.CampaignID == campaignID && step.LeadID == leadID {
			out = append(out, step)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StepIndex < out[j].StepIndex })
	return out, nil
}

func (s *MemStore) SentConnectionRequestTimestamps(_ context.Context, senderAccountID string) ([]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Time, len(s.sentConnReqs[senderAccountID]))
	copy(out, s.sentConnReqs[senderAccountID])
	return out, nil
}

func (s *MemStore) RecordConnectionRequestSent(_ context.Context, senderAccountID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentConnReqs[senderAccountID] = append(s.sentConnReqs[senderAccountID], at)
	return nil
}

func (s *MemStore) SaveMonitoredLead(_ context.Context, ml domain.MonitoredLead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitoredLeads[ml.ID] = ml
	return nil
}

func (s *MemStore) GetMonitoredLead(_ context.Context, id string) (domain.MonitoredLead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ml, ok := s.monitoredLeads[id]
	if !ok {
		return domain.MonitoredLead{}, &ErrNotFound{Entity: "monitored_lead", ID: id}
	}
	return ml, nil
}

func (s *MemStore) ListActiveMonitoredLeads(_ context.Context) ([]domain.MonitoredLead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.MonitoredLead
	for _, ml := range s.monitoredLeads {
		if !ml.IsPaused {
			out = append(out, ml)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) SaveMonitoredCompany(_ context.Context, mc domain.MonitoredCompany) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.monitoredCompanies[mc.ID] = mc
	return nil
}

func (s *MemStore) GetMonitoredCompany(_ context.Context, id string) (domain.MonitoredCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mc, ok := s.monitoredCompanies[id]
	if !ok {
		return domain.MonitoredCompany{}, &ErrNotFound{Entity: "monitored_company", ID: id}
	}
	return mc, nil
}

func (s *MemStore) ListActiveMonitoredCompanies(_ context.Context) ([]domain.MonitoredCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.MonitoredCompany
	for _, mc := range s.monitoredCompanies {
		if !mc.IsPaused {
			out = append(out, mc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) AddAlert(_ context.Context, a domain.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = append(s.alerts, a)
	return nil
}

func (s *MemStore) ListAlerts(_ context.Context, leadID string) ([]domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Alert
	for _, a := range s.alerts {
		if a.LeadID == leadID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var _ Store = (*MemStore)(nil)
