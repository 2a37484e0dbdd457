package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullhouse/operative-connect-lite/internal/domain"
)

func TestOrganizationName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "valid", input: "Acme Supply_Co-1"},
		{name: "empty", input: "", wantMsg: MsgOrganizationNameRequired},
		{name: "too short", input: "ab", wantMsg: MsgOrganizationNameLength},
		{name: "short after trimming", input: "  ab  ", wantMsg: MsgOrganizationNameLength},
		{name: "too long", input: strings.Repeat("a", 101), wantMsg: MsgOrganizationNameLength},
		{name: "maximum length", input: strings.Repeat("a", 100)},
		{name: "punctuation", input: "Acme, Inc.", wantMsg: MsgOrganizationNameChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OrganizationName(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			var valErr *domain.ValidationError
			require.True(t, errors.As(err, &valErr), "want ValidationError, got %v", err)
			assert.Equal(t, "organization_name", valErr.Field)
			assert.Equal(t, tt.wantMsg, valErr.Message)
		})
	}
}

func TestPartnershipIDs(t *testing.T) {
	demand := uuid.NewString()
	supply := uuid.NewString()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, PartnershipIDs(demand, supply))
	})

	t.Run("missing demand", func(t *testing.T) {
		err := PartnershipIDs("", supply)
		assert.EqualError(t, err, "Demand organization ID is required")
	})

	t.Run("malformed supply", func(t *testing.T) {
		err := PartnershipIDs(demand, "not-a-uuid")

		var valErr *domain.ValidationError
		require.True(t, errors.As(err, &valErr))
		assert.Equal(t, "supply_org_id", valErr.Field)
		assert.Equal(t, "Supply organization ID must be a valid UUID", valErr.Message)
	})

	t.Run("demand reported before supply", func(t *testing.T) {
		err := PartnershipIDs("bad", "also-bad")
		assert.EqualError(t, err, "Demand organization ID must be a valid UUID")
	})
}
