package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_partner_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain PartnerRepository

// Partner is a community, business or government organization. Deleting a
// partner is a terminal administrative action that cascades to everything it
// owns; a partner is never deleted as a side effect of a user deletion.
type Partner struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	PartnerStatusID int       `json:"partner_status_id" db:"partner_status_id"`
	PartnerTypeID   int       `json:"partner_type_id" db:"partner_type_id"`
	Website         string    `json:"website,omitempty" db:"website"`
	PublicNotes     string    `json:"public_notes,omitempty" db:"public_notes"`
	PrivateNotes    string    `json:"private_notes,omitempty" db:"private_notes"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (p *Partner) Validate() error {
	if p.Name == "" {
		return NewValidationError("partner name is required")
	}
	if p.PartnerStatusID == 0 || p.PartnerTypeID == 0 {
		return NewValidationError("partner status and type are required")
	}
	return nil
}

// PartnerLocation is a service location owned by a partner.
type PartnerLocation struct {
	ID            uuid.UUID `json:"id" db:"id"`
	PartnerID     uuid.UUID `json:"partner_id" db:"partner_id"`
	Name          string    `json:"name" db:"name"`
	StreetAddress string    `json:"street_address,omitempty" db:"street_address"`
	City          string    `json:"city,omitempty" db:"city"`
	Region        string    `json:"region,omitempty" db:"region"`
	Country       string    `json:"country,omitempty" db:"country"`
	PostalCode    string    `json:"postal_code,omitempty" db:"postal_code"`
	Latitude      *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64  `json:"longitude,omitempty" db:"longitude"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	AuditFields
}

// PartnerContact is a named point of contact for a partner.
type PartnerContact struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PartnerID uuid.UUID `json:"partner_id" db:"partner_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email,omitempty" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Notes     string    `json:"notes,omitempty" db:"notes"`
	AuditFields
}

// PartnerDocument is an agreement or reference file attached to a partner.
type PartnerDocument struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PartnerID uuid.UUID `json:"partner_id" db:"partner_id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url" db:"url"`
	AuditFields
}

// PartnerSocialMediaAccount links a partner to one of its social handles.
type PartnerSocialMediaAccount struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PartnerID   uuid.UUID `json:"partner_id" db:"partner_id"`
	Platform    string    `json:"platform" db:"platform"`
	AccountName string    `json:"account_name" db:"account_name"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	AuditFields
}

// PartnerPhoto carries the shared moderation sub-state.
type PartnerPhoto struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PartnerID uuid.UUID `json:"partner_id" db:"partner_id"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Caption   string    `json:"caption,omitempty" db:"caption"`
	ModerationState
	AuditFields
}

// PartnerAdmin grants a user admin rights over a partner, one row per pair.
type PartnerAdmin struct {
	PartnerID uuid.UUID `json:"partner_id" db:"partner_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	AuditFields
}

// PartnerAdminInvitation is an email-keyed invite that exists before the
// invitee has an account. Status comes from the invitation_statuses lookup.
type PartnerAdminInvitation struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	PartnerID          uuid.UUID `json:"partner_id" db:"partner_id"`
	Email              string    `json:"email" db:"email"`
	InvitationStatusID int       `json:"invitation_status_id" db:"invitation_status_id"`
	AuditFields
}

// Validate checks the invitation before a write.
func (i *PartnerAdminInvitation) Validate() error {
	if !govalidator.IsEmail(i.Email) {
		return NewValidationError("invalid invitation email address")
	}
	if i.InvitationStatusID == 0 {
		return NewValidationError("invitation status is required")
	}
	return nil
}

// Sponsor is a partner underwriting adoptions or events.
type Sponsor struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PartnerID uuid.UUID `json:"partner_id" db:"partner_id"`
	Name      string    `json:"name" db:"name"`
	Website   string    `json:"website,omitempty" db:"website"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	AuditFields
}

// ProfessionalCompany is a hauling or disposal company associated with a
// partner.
type ProfessionalCompany struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PartnerID uuid.UUID `json:"partner_id" db:"partner_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Email     string    `json:"email,omitempty" db:"email"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	AuditFields
}

// PartnerRepository provides access to partners and everything they own.
type PartnerRepository interface {
	Create(ctx context.Context, partner *Partner) error
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	Update(ctx context.Context, partner *Partner) error

	// Delete removes the partner; locations, contacts, documents, photos,
	// admins, invitations, adoptable areas and their dependents go with it
	// through the declared cascades
	Delete(ctx context.Context, id uuid.UUID) error

	AddLocation(ctx context.Context, location *PartnerLocation) error
	GetLocations(ctx context.Context, partnerID uuid.UUID) ([]*PartnerLocation, error)

	AddContact(ctx context.Context, contact *PartnerContact) error
	AddDocument(ctx context.Context, document *PartnerDocument) error
	AddSocialMediaAccount(ctx context.Context, account *PartnerSocialMediaAccount) error

	AddAdmin(ctx context.Context, admin *PartnerAdmin) error
	CreateAdminInvitation(ctx context.Context, invitation *PartnerAdminInvitation) error
	UpdateAdminInvitationStatus(ctx context.Context, id uuid.UUID, statusID int, actorID uuid.UUID, now time.Time) error
	GetAdminInvitationsByEmail(ctx context.Context, email string) ([]*PartnerAdminInvitation, error)
}
