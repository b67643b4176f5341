package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Fake is a deterministic in-memory Provider used by tests and local dry
// runs. Behavior is entirely driven by the scripted responses installed by
// the caller, the way the teacher's examples/customer-support-ai/mock_server.go
// scripts a fake upstream for its own workflow demos.
type Fake struct {
	mu sync.Mutex

	Connected map[string]string // localAccountID -> providerAccountID

	// InvitationStatuses lets tests script the sequence of
	// CheckConnectionStatus results returned per providerID.
	InvitationStatuses map[string][]InvitationStatus

	// ConnectionResults lets tests script SendConnectionRequest outcomes
	// per identifier, consumed in order (one per call).
	ConnectionResults map[string][]ConnectionResult

	Posts    map[string][]string // entity url/id -> ordered recent post ids
	PostText map[string]string   // post id -> text

	Profiles        map[string]ProfileSnapshot
	CompanyProfiles map[string]CompanyProfileSnapshot
}

// NewFake returns an empty Fake ready for test scripting.
func NewFake() *Fake {
	return &Fake{
		Connected:          make(map[string]string),
		InvitationStatuses: make(map[string][]InvitationStatus),
		ConnectionResults:  make(map[string][]ConnectionResult),
		Posts:              make(map[string][]string),
		PostText:           make(map[string]string),
		Profiles:           make(map[string]ProfileSnapshot),
		CompanyProfiles:    make(map[string]CompanyProfileSnapshot),
	}
}

func (f *Fake) VerifyAccount(_ context.Context, localAccountID string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	providerID, ok := f.Connected[localAccountID]
	if !ok {
		return "", false, nil
	}
	return providerID, true, nil
}

func (f *Fake) ExtractProfileIdentifier(_ context.Context, profileURL string) (string, bool, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(profileURL), "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 || strings.HasSuffix(trimmed, "/in") {
		return "", false, nil
	}
	return trimmed[idx+1:], true, nil
}

func (f *Fake) VisitProfile(context.Context, string, string, map[string]any) (SimpleResult, error) {
	return SimpleResult{Success: true}, nil
}

func (f *Fake) LikePost(context.Context, string, string, map[string]any) (SimpleResult, error) {
	return SimpleResult{Success: true}, nil
}

func (f *Fake) CommentPost(context.Context, string, string, map[string]any) (SimpleResult, error) {
	return SimpleResult{Success: true}, nil
}

func (f *Fake) SendFollowup(context.Context, string, string, map[string]any) (SimpleResult, error) {
	return SimpleResult{Success: true}, nil
}

func (f *Fake) WithdrawRequest(context.Context, string, string, map[string]any) (SimpleResult, error) {
	return SimpleResult{Success: true}, nil
}

func (f *Fake) SendInMail(context.Context, string, string, map[string]any) (SimpleResult, error) {
	return SimpleResult{Success: true}, nil
}

func (f *Fake) SendConnectionRequest(_ context.Context, _ string, identifier string, _ map[string]any) (ConnectionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := f.ConnectionResults[identifier]
	if len(queue) == 0 {
		return ConnectionResult{Success: true, ProviderID: "inv-" + identifier}, nil
	}
	next := queue[0]
	f.ConnectionResults[identifier] = queue[1:]
	return next, nil
}

func (f *Fake) CheckConnectionStatus(_ context.Context, _ string, identifier string, providerID string) (InvitationStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := providerID
	if key == "" {
		key = identifier
	}
	queue := f.InvitationStatuses[key]
	if len(queue) == 0 {
		return InvitationPending, nil
	}
	next := queue[0]
	if len(queue) > 1 {
		f.InvitationStatuses[key] = queue[1:]
	}
	return next, nil
}

func (f *Fake) GetProfile(_ context.Context, profileURL string) (ProfileSnapshot, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.Profiles[profileURL]
	if !ok {
		return ProfileSnapshot{}, nil, fmt.Errorf("fake provider: no profile scripted for %s", profileURL)
	}
	return snap, f.Posts[profileURL], nil
}

func (f *Fake) GetCompanyProfile(_ context.Context, companyURL string) (CompanyProfileSnapshot, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.CompanyProfiles[companyURL]
	if !ok {
		return CompanyProfileSnapshot{}, nil, fmt.Errorf("fake provider: no company profile scripted for %s", companyURL)
	}
	return snap, f.Posts[companyURL], nil
}

func (f *Fake) GetRecentPosts(_ context.Context, entityURL string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Posts[entityURL], nil
}

func (f *Fake) GetPost(_ context.Context, postID string) (Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Post{ID: postID, Text: f.PostText[postID]}, nil
}

var _ Provider = (*Fake)(nil)
