package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/operative-connect-lite/internal/apitest"
	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

func TestClient_FullFlowAgainstFakeAPI(t *testing.T) {
	api := apitest.NewServer(t)
	client := NewClient(api.URL(), 5*time.Second, nil)
	ctx := context.Background()
	creds := domain.Credentials{Username: "alice", Password: "Ab1!defg"}

	require.NoError(t, client.Register(ctx, creds))

	err := client.Register(ctx, creds)
	assert.EqualError(t, err, "Username already exists")

	token, err := client.Login(ctx, creds)
	require.NoError(t, err)
	require.NoError(t, client.ValidateToken(ctx, token))

	refreshed, err := client.Refresh(ctx, token)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed)

	msg, err := client.Protected(ctx, refreshed)
	require.NoError(t, err)
	assert.Equal(t, "Hello alice, you are authorized to access this resource", msg)

	demandID, err := client.CreateOrganization(ctx, refreshed, "Acme")
	require.NoError(t, err)
	supplyID := api.AddOrganization("bob", "Globex")

	orgs, err := client.ListOrganizations(ctx, refreshed)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, demandID, orgs[0].ID)
	assert.Equal(t, "alice", orgs[0].CreatedBy)
	assert.False(t, orgs[0].CreatedAt.IsZero())

	partnershipID, err := client.CreatePartnership(ctx, refreshed, demandID, supplyID)
	require.NoError(t, err)

	partnerships, err := client.ListPartnerships(ctx, refreshed)
	require.NoError(t, err)
	require.Len(t, partnerships, 1)
	assert.Equal(t, partnershipID, partnerships[0].ID)
	assert.Equal(t, "Acme", partnerships[0].Demand.Name)
	assert.Equal(t, "Globex", partnerships[0].Supply.Name)
}

func TestClient_RejectedTokenAgainstFakeAPI(t *testing.T) {
	api := apitest.NewServer(t)
	client := NewClient(api.URL(), 5*time.Second, nil)

	err := client.ValidateToken(context.Background(), api.IssueToken("alice", -time.Minute))

	reqErr := requireRequestError(t, err)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Equal(t, "Token is invalid", reqErr.Message)
}
