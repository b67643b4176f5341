package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeVerifyAccountUnknownIsDisconnected(t *testing.T) {
	f := NewFake()
	_, connected, err := f.VerifyAccount(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestFakeVerifyAccountConnected(t *testing.T) {
	f := NewFake()
	f.Connected["acct-1"] = "provider-acct-1"
	providerID, connected, err := f.VerifyAccount(context.Background(), "acct-1")
	require.NoError(t, err)
	assert.True(t, connected)
	assert.Equal(t, "provider-acct-1", providerID)
}

func TestFakeExtractProfileIdentifierTrailingSegment(t *testing.T) {
	f := NewFake()
	id, ok, err := f.ExtractProfileIdentifier(context.Background(), "https://linkedin.com/in/jane-doe/")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jane-doe", id)
}

func TestFakeExtractProfileIdentifierTrailingSlashOnly(t *testing.T) {
	f := NewFake()
	_, ok, err := f.ExtractProfileIdentifier(context.Background(), "https://linkedin.com/in/")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFakeSendConnectionRequestDefaultsToSuccess(t *testing.T) {
	f := NewFake()
	r, err := f.SendConnectionRequest(context.Background(), "acct-1", "jane-doe", nil)
	require.NoError(t, err)
	assert.True(t, r.Success)
	assert.Equal(t, "inv-jane-doe", r.ProviderID)
}

func TestFakeSendConnectionRequestScriptedQueue(t *testing.T) {
	f := NewFake()
	f.ConnectionResults["jane-doe"] = []ConnectionResult{
		{LimitReached: true, RetryAfterHours: 1},
		{Success: true, ProviderID: "inv-2"},
	}
	r1, err := f.SendConnectionRequest(context.Background(), "acct-1", "jane-doe", nil)
	require.NoError(t, err)
	assert.True(t, r1.LimitReached)

	r2, err := f.SendConnectionRequest(context.Background(), "acct-1", "jane-doe", nil)
	require.NoError(t, err)
	assert.True(t, r2.Success)
	assert.Equal(t, "inv-2", r2.ProviderID)
}

func TestFakeCheckConnectionStatusDefaultsToPending(t *testing.T) {
	f := NewFake()
	status, err := f.CheckConnectionStatus(context.Background(), "acct-1", "jane-doe", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, InvitationPending, status)
}

func TestFakeCheckConnectionStatusScriptedSequenceSticksOnLastEntry(t *testing.T) {
	f := NewFake()
	f.InvitationStatuses["inv-1"] = []InvitationStatus{InvitationPending, InvitationAccepted}

	s1, err := f.CheckConnectionStatus(context.Background(), "acct-1", "jane-doe", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, InvitationPending, s1)

	s2, err := f.CheckConnectionStatus(context.Background(), "acct-1", "jane-doe", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, InvitationAccepted, s2)

	s3, err := f.CheckConnectionStatus(context.Background(), "acct-1", "jane-doe", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, InvitationAccepted, s3)
}

func TestFakeGetProfileUnscriptedReturnsError(t *testing.T) {
	f := NewFake()
	_, _, err := f.GetProfile(context.Background(), "https://linkedin.com/in/unscripted")
	assert.Error(t, err)
}

func TestFakeGetProfileReturnsScriptedPosts(t *testing.T) {
	f := NewFake()
	f.Profiles["https://linkedin.com/in/jane"] = ProfileSnapshot{Fields: map[string]any{"full_name": "Jane Doe"}}
	f.Posts["https://linkedin.com/in/jane"] = []string{"post-1", "post-2"}

	snap, posts, err := f.GetProfile(context.Background(), "https://linkedin.com/in/jane")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", snap.Fields["full_name"])
	assert.Equal(t, []string{"post-1", "post-2"}, posts)
}
