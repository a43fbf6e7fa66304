package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain UserRepository

// User is the identity root of the schema. Every audit envelope in every
// other table points back here, including the user's own (the first row is
// the zero-UUID system user, its own creator and updater).
type User struct {
	ID                         uuid.UUID  `json:"id" db:"id"`
	UserName                   string     `json:"user_name" db:"user_name"`
	Email                      string     `json:"email" db:"email"`
	GivenName                  string     `json:"given_name,omitempty" db:"given_name"`
	Surname                    string     `json:"surname,omitempty" db:"surname"`
	City                       string     `json:"city,omitempty" db:"city"`
	Region                     string     `json:"region,omitempty" db:"region"`
	Country                    string     `json:"country,omitempty" db:"country"`
	PostalCode                 string     `json:"postal_code,omitempty" db:"postal_code"`
	Latitude                   *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude                  *float64   `json:"longitude,omitempty" db:"longitude"`
	PrefersMetric              bool       `json:"prefers_metric" db:"prefers_metric"`
	TravelLimitForLocalEvents  int        `json:"travel_limit_for_local_events" db:"travel_limit_for_local_events"`
	IsOptedOutOfAllEmails      bool       `json:"is_opted_out_of_all_emails" db:"is_opted_out_of_all_emails"`
	IsSiteAdmin                bool       `json:"is_site_admin" db:"is_site_admin"`
	DateAgreedToPrivacyPolicy  *time.Time `json:"date_agreed_to_privacy_policy,omitempty" db:"date_agreed_to_privacy_policy"`
	DateAgreedToTermsOfService *time.Time `json:"date_agreed_to_terms_of_service,omitempty" db:"date_agreed_to_terms_of_service"`
	AuditFields
}

// Validate checks the fields a caller controls before a write is attempted.
func (u *User) Validate() error {
	if u.UserName == "" {
		return NewValidationError("user name is required")
	}
	if !govalidator.IsEmail(u.Email) {
		return NewValidationError("invalid email address")
	}
	return nil
}

// NewSystemUser builds the reserved bootstrap identity. The zero UUID is its
// own creator and updater; no other row may ever use that identity.
func NewSystemUser(now time.Time) *User {
	u := &User{
		ID:       SystemUserID,
		UserName: "system",
		Email:    "system@localhost",
	}
	u.stampSystem(now)
	return u
}

// UserRepository provides access to the users table.
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByUserName retrieves a user by unique user name
	GetByUserName(ctx context.Context, userName string) (*User, error)

	// Update persists profile and preference changes
	Update(ctx context.Context, user *User) error

	// EnsureSystemUser inserts the zero-UUID bootstrap identity if absent
	EnsureSystemUser(ctx context.Context) error
}
