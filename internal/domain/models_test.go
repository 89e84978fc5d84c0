package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Kind
		expectErr bool
	}{
		{name: "Standard kind", input: "Standard", expected: KindStandard},
		{name: "Substitution kind", input: "Substitution", expected: KindSubstitution},
		{name: "Contingency kind", input: "Contingency", expected: KindContingency},
		{name: "Lowercase is rejected", input: "standard", expectErr: true},
		{name: "Empty string is rejected", input: "", expectErr: true},
		{name: "Unknown kind is rejected", input: "Premium", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Status
		expectErr bool
	}{
		{name: "Pending status", input: "Pending", expected: StatusPending},
		{name: "Unconfirmed status", input: "Unconfirmed", expected: StatusUnconfirmed},
		{name: "Confirmed status", input: "Confirmed", expected: StatusConfirmed},
		{name: "Cancelled status", input: "Cancelled", expected: StatusCancelled},
		{name: "Legacy status", input: "Legacy", expected: StatusLegacy},
		{name: "Unknown status is rejected", input: "Archived", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseStatus(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusLegacy.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusUnconfirmed.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
}

func TestUserQuota(t *testing.T) {
	user := &User{StandardQuota: 2, SubstitutionQuota: 1, ContingencyQuota: 0}

	assert.Equal(t, 2, user.Quota(KindStandard))
	assert.Equal(t, 1, user.Quota(KindSubstitution))
	assert.Equal(t, 0, user.Quota(KindContingency))

	user.AddQuota(KindStandard, -1)
	user.AddQuota(KindContingency, 1)
	assert.Equal(t, 1, user.Quota(KindStandard))
	assert.Equal(t, 1, user.Quota(KindContingency))
}
