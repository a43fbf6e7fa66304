package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cleansweep/cleansweep/internal/domain"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    domain.User
		wantErr bool
	}{
		{
			name: "valid user",
			user: domain.User{UserName: "riverkeeper", Email: "river@example.com"},
		},
		{
			name:    "missing user name",
			user:    domain.User{Email: "river@example.com"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			user:    domain.User{UserName: "riverkeeper", Email: "river@"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewSystemUser(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	system := domain.NewSystemUser(now)

	assert.Equal(t, domain.SystemUserID, system.ID)
	assert.Equal(t, domain.SystemUserID, system.CreatedByUserID)
	assert.Equal(t, domain.SystemUserID, system.LastUpdatedByUserID)
	assert.Equal(t, now, system.CreatedDate)
	assert.NoError(t, system.AuditFields.Validate())
}
