// Package provider defines the capability-set interface for the third-party
// social API (§6 "Provider API"). Per spec.md, the provider itself is
// "Deliberately out of scope ... specified only by interface"; this package
// supplies that interface plus a deterministic in-memory Fake used by tests
// and local dry runs (§4.11 of SPEC_FULL.md).
package provider

import "context"

// InvitationStatus is the outcome of a pending connection request (§4.1
// checkConnectionStatus).
type InvitationStatus string

const (
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
	InvitationPending  InvitationStatus = "pending"
)

// ConnectionResult is the outcome of sendConnectionRequest (§4.1).
type ConnectionResult struct {
	Success         bool
	Message         string
	ProviderID      string
	AlreadyConnected bool
	LimitReached    bool
	RetryAfterHours float64
}

// SimpleResult is the outcome shared by the simple one-call actions
// (profileVisit, likePost, commentPost, sendFollowup, withdrawRequest,
// sendInMail) per §4.1.
type SimpleResult struct {
	Success bool
	Message string
	Data    map[string]any
}

// Post is one social post as returned by GetPost (GetRecentPosts returns
// post ids only).
type Post struct {
	ID   string
	Text string
}

// ProfileSnapshot is the provider's raw view of a lead's profile.
type ProfileSnapshot struct {
	Fields map[string]any
}

// CompanyProfileSnapshot is the provider's raw view of a company page.
type CompanyProfileSnapshot struct {
	Fields map[string]any
}

// Account resolves a local sender-account id to the provider's own account
// identifier, or reports that the operator has disconnected it (§4.1
// verifyProviderAccount).
type Account interface {
	VerifyAccount(ctx context.Context, localAccountID string) (providerAccountID string, connected bool, err error)
}

// Outreach is the capability-set used by the graph walker and connection
// polling state machine (§6 "Provider API").
type Outreach interface {
	Account

	ExtractProfileIdentifier(ctx context.Context, profileURL string) (identifier string, ok bool, err error)

	VisitProfile(ctx context.Context, accountID, identifier string, config map[string]any) (SimpleResult, error)
	LikePost(ctx context.Context, accountID, identifier string, config map[string]any) (SimpleResult, error)
	CommentPost(ctx context.Context, accountID, identifier string, config map[string]any) (SimpleResult, error)
	SendFollowup(ctx context.Context, accountID, identifier string, config map[string]any) (SimpleResult, error)
	WithdrawRequest(ctx context.Context, accountID, identifier string, config map[string]any) (SimpleResult, error)
	SendInMail(ctx context.Context, accountID, identifier string, config map[string]any) (SimpleResult, error)

	SendConnectionRequest(ctx context.Context, accountID, identifier string, config map[string]any) (ConnectionResult, error)
	CheckConnectionStatus(ctx context.Context, accountID, identifier, providerID string) (InvitationStatus, error)
}

// Monitoring is the capability-set used by the lead/company monitor loops
// (§6 "Provider API": "get profile, get recent posts, get post ... get
// company profile").
type Monitoring interface {
	GetProfile(ctx context.Context, profileURL string) (ProfileSnapshot, []string, error)
	GetCompanyProfile(ctx context.Context, companyURL string) (CompanyProfileSnapshot, []string, error)
	GetRecentPosts(ctx context.Context, entityURL string) ([]string, error)
	GetPost(ctx context.Context, postID string) (Post, error)
}

// Provider is the full capability-set a worker process wires up (§6).
type Provider interface {
	Outreach
	Monitoring
}
