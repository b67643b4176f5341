// Package activities implements C1: the idempotent, side-effectful units
// Temporal workflows invoke. Each activity wraps exactly one provider call,
// storage write, or pure computation, following the teacher's NodeExecutor
// style of small single-purpose units (node_executors.go) reached through a
// package-level zerolog logger.
package activities

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/smilemakc/linkedin-outreach-engine/internal/config"
	domainerrors "github.com/smilemakc/linkedin-outreach-engine/internal/domain/errors"
	"github.com/smilemakc/linkedin-outreach-engine/internal/objectstore"
	"github.com/smilemakc/linkedin-outreach-engine/internal/provider"
	"github.com/smilemakc/linkedin-outreach-engine/internal/storage"

	"github.com/sashabaranov/go-openai"
)

// Activities bundles the provider client, storage handle, and object store
// every C1 activity method closes over. A Temporal worker registers the
// struct itself (RegisterActivity(a)), which registers every exported method
// as an activity.
type Activities struct {
	Provider    provider.Provider
	Store       storage.Store
	ObjectStore objectstore.Store
	OpenAI      *openai.Client
	Cfg         *config.Config
}

func New(p provider.Provider, store storage.Store, objStore objectstore.Store, cfg *config.Config) *Activities {
	a := &Activities{Provider: p, Store: store, ObjectStore: objStore, Cfg: cfg}
	if cfg != nil && cfg.OpenAIAPIKey != "" {
		a.OpenAI = openai.NewClient(cfg.OpenAIAPIKey)
	}
	return a
}

// ActivityResult is the boundary type workflows see: activities never throw
// raw provider errors across the workflow boundary for expected failure
// modes, they convert to this shape (§7 "Propagation policy").
type ActivityResult struct {
	Success bool
	Message string
	Data    map[string]any
}

// VerifyProviderAccountInput / Output wrap verifyProviderAccount (§4.1).
type VerifyProviderAccountInput struct {
	AccountID string
}

type VerifyProviderAccountOutput struct {
	ProviderAccountID string
	Connected         bool
}

func (a *Activities) VerifyProviderAccount(ctx context.Context, in VerifyProviderAccountInput) (VerifyProviderAccountOutput, error) {
	providerID, connected, err := a.Provider.VerifyAccount(ctx, in.AccountID)
	if err != nil {
		log.Error().Err(err).Str("account_id", in.AccountID).Msg("verifyProviderAccount failed")
		return VerifyProviderAccountOutput{}, err
	}
	return VerifyProviderAccountOutput{ProviderAccountID: providerID, Connected: connected}, nil
}

// ExtractProfileIdentifierInput / Output wrap extractProfileIdentifier (§4.1).
type ExtractProfileIdentifierInput struct {
	ProfileURL string
}

type ExtractProfileIdentifierOutput struct {
	Identifier string
	OK         bool
}

func (a *Activities) ExtractProfileIdentifier(ctx context.Context, in ExtractProfileIdentifierInput) (ExtractProfileIdentifierOutput, error) {
	identifier, ok, err := a.Provider.ExtractProfileIdentifier(ctx, in.ProfileURL)
	if err != nil {
		return ExtractProfileIdentifierOutput{}, domainerrors.NewValidationError("profile_url", err.Error())
	}
	return ExtractProfileIdentifierOutput{Identifier: identifier, OK: ok}, nil
}

// OutreachActionInput is the shared request shape for the simple one-call
// outreach actions (§4.1: profileVisit/likePost/commentPost/sendFollowup/
// withdrawRequest/sendInMail).
type OutreachActionInput struct {
	AccountID  string
	Identifier string
	Config     map[string]any
	CampaignID string
}

func toActivityResult(r provider.SimpleResult) ActivityResult {
	return ActivityResult{Success: r.Success, Message: r.Message, Data: r.Data}
}

func (a *Activities) ProfileVisit(ctx context.Context, in OutreachActionInput) (ActivityResult, error) {
	r, err := a.Provider.VisitProfile(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return ActivityResult{}, err
	}
	return toActivityResult(r), nil
}

func (a *Activities) LikePost(ctx context.Context, in OutreachActionInput) (ActivityResult, error) {
	r, err := a.Provider.LikePost(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return ActivityResult{}, err
	}
	return toActivityResult(r), nil
}

func (a *Activities) CommentPost(ctx context.Context, in OutreachActionInput) (ActivityResult, error) {
	r, err := a.Provider.CommentPost(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return ActivityResult{}, err
	}
	return toActivityResult(r), nil
}

func (a *Activities) SendFollowup(ctx context.Context, in OutreachActionInput) (ActivityResult, error) {
	r, err := a.Provider.SendFollowup(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return ActivityResult{}, err
	}
	return toActivityResult(r), nil
}

func (a *Activities) WithdrawRequest(ctx context.Context, in OutreachActionInput) (ActivityResult, error) {
	r, err := a.Provider.WithdrawRequest(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return ActivityResult{}, err
	}
	return toActivityResult(r), nil
}

func (a *Activities) SendInMail(ctx context.Context, in OutreachActionInput) (ActivityResult, error) {
	r, err := a.Provider.SendInMail(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return ActivityResult{}, err
	}
	return toActivityResult(r), nil
}

// SendConnectionRequestOutput carries the richer shape §4.1 describes:
// providerId / alreadyConnected / the distinguished provider_limit_reached
// error fields.
type SendConnectionRequestOutput struct {
	Success          bool
	Message          string
	ProviderID       string
	AlreadyConnected bool
	LimitReached     bool
	RetryAfterHours  float64
}

func (a *Activities) SendConnectionRequest(ctx context.Context, in OutreachActionInput) (SendConnectionRequestOutput, error) {
	r, err := a.Provider.SendConnectionRequest(ctx, in.AccountID, in.Identifier, in.Config)
	if err != nil {
		return SendConnectionRequestOutput{}, err
	}
	return SendConnectionRequestOutput{
		Success:          r.Success,
		Message:          r.Message,
		ProviderID:       r.ProviderID,
		AlreadyConnected: r.AlreadyConnected,
		LimitReached:     r.LimitReached,
		RetryAfterHours:  r.RetryAfterHours,
	}, nil
}

// CheckConnectionStatusInput / Output wrap checkConnectionStatus (§4.1).
type CheckConnectionStatusInput struct {
	AccountID  string
	Identifier string
	ProviderID string
	CampaignID string
}

type CheckConnectionStatusOutput struct {
	Status provider.InvitationStatus
}

func (a *Activities) CheckConnectionStatus(ctx context.Context, in CheckConnectionStatusInput) (CheckConnectionStatusOutput, error) {
	status, err := a.Provider.CheckConnectionStatus(ctx, in.AccountID, in.Identifier, in.ProviderID)
	if err != nil {
		// Polling treats activity errors as transient hiccups to swallow
		// (§4.3 step 6); report pending so the caller keeps polling.
		log.Warn().Err(err).Str("provider_id", in.ProviderID).Msg("checkConnectionStatus failed, reporting pending")
		return CheckConnectionStatusOutput{Status: provider.InvitationPending}, nil
	}
	return CheckConnectionStatusOutput{Status: status}, nil
}
