package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type partnerRepository struct {
	db *sql.DB
}

// NewPartnerRepository creates a new PostgreSQL partner repository
func NewPartnerRepository(db *sql.DB) domain.PartnerRepository {
	return &partnerRepository{db: db}
}

func (r *partnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	query := `
		INSERT INTO partners (
			id, name, partner_status_id, partner_type_id, website, public_notes, private_notes,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		partner.ID,
		partner.Name,
		partner.PartnerStatusID,
		partner.PartnerTypeID,
		nullString(partner.Website),
		nullString(partner.PublicNotes),
		nullString(partner.PrivateNotes),
		partner.CreatedByUserID,
		partner.CreatedDate,
		partner.LastUpdatedByUserID,
		partner.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create partner: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Partner, error) {
	query := `
		SELECT id, name, partner_status_id, partner_type_id, website, public_notes, private_notes,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM partners WHERE id = $1
	`
	var partner domain.Partner
	var website, publicNotes, privateNotes sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&partner.ID,
		&partner.Name,
		&partner.PartnerStatusID,
		&partner.PartnerTypeID,
		&website,
		&publicNotes,
		&privateNotes,
		&partner.CreatedByUserID,
		&partner.CreatedDate,
		&partner.LastUpdatedByUserID,
		&partner.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "partner", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	partner.Website = website.String
	partner.PublicNotes = publicNotes.String
	partner.PrivateNotes = privateNotes.String
	return &partner, nil
}

func (r *partnerRepository) Update(ctx context.Context, partner *domain.Partner) error {
	query := `
		UPDATE partners SET
			name = $2, partner_status_id = $3, partner_type_id = $4, website = $5,
			public_notes = $6, private_notes = $7,
			last_updated_by_user_id = $8, last_updated_date = $9
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		partner.ID,
		partner.Name,
		partner.PartnerStatusID,
		partner.PartnerTypeID,
		nullString(partner.Website),
		nullString(partner.PublicNotes),
		nullString(partner.PrivateNotes),
		partner.LastUpdatedByUserID,
		partner.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "partner", ID: partner.ID.String()}
	}
	return nil
}

// Delete relies on the declared ON DELETE CASCADE constraints: locations,
// contacts, documents, social accounts, photos, admins, invitations and
// adoptable areas go with the parent in one statement.
func (r *partnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "partner", ID: id.String()}
	}
	return nil
}

func (r *partnerRepository) AddLocation(ctx context.Context, location *domain.PartnerLocation) error {
	query := `
		INSERT INTO partner_locations (
			id, partner_id, name, street_address, city, region, country, postal_code,
			latitude, longitude, is_active,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.ExecContext(ctx, query,
		location.ID,
		location.PartnerID,
		location.Name,
		nullString(location.StreetAddress),
		nullString(location.City),
		nullString(location.Region),
		nullString(location.Country),
		nullString(location.PostalCode),
		location.Latitude,
		location.Longitude,
		location.IsActive,
		location.CreatedByUserID,
		location.CreatedDate,
		location.LastUpdatedByUserID,
		location.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add partner location: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) GetLocations(ctx context.Context, partnerID uuid.UUID) ([]*domain.PartnerLocation, error) {
	query := `
		SELECT id, partner_id, name, street_address, city, region, country, postal_code,
			latitude, longitude, is_active,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM partner_locations WHERE partner_id = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner locations: %w", err)
	}
	defer rows.Close()

	var locations []*domain.PartnerLocation
	for rows.Next() {
		var location domain.PartnerLocation
		var streetAddress, city, region, country, postalCode sql.NullString
		if err := rows.Scan(
			&location.ID,
			&location.PartnerID,
			&location.Name,
			&streetAddress,
			&city,
			&region,
			&country,
			&postalCode,
			&location.Latitude,
			&location.Longitude,
			&location.IsActive,
			&location.CreatedByUserID,
			&location.CreatedDate,
			&location.LastUpdatedByUserID,
			&location.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan partner location: %w", err)
		}
		location.StreetAddress = streetAddress.String
		location.City = city.String
		location.Region = region.String
		location.Country = country.String
		location.PostalCode = postalCode.String
		locations = append(locations, &location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate partner locations: %w", err)
	}
	return locations, nil
}

func (r *partnerRepository) AddContact(ctx context.Context, contact *domain.PartnerContact) error {
	query := `
		INSERT INTO partner_contacts (
			id, partner_id, name, email, phone, notes,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		contact.ID,
		contact.PartnerID,
		contact.Name,
		nullString(contact.Email),
		nullString(contact.Phone),
		nullString(contact.Notes),
		contact.CreatedByUserID,
		contact.CreatedDate,
		contact.LastUpdatedByUserID,
		contact.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add partner contact: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) AddDocument(ctx context.Context, document *domain.PartnerDocument) error {
	query := `
		INSERT INTO partner_documents (
			id, partner_id, name, url,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		document.ID,
		document.PartnerID,
		document.Name,
		document.URL,
		document.CreatedByUserID,
		document.CreatedDate,
		document.LastUpdatedByUserID,
		document.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add partner document: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) AddSocialMediaAccount(ctx context.Context, account *domain.PartnerSocialMediaAccount) error {
	query := `
		INSERT INTO partner_social_media_accounts (
			id, partner_id, platform, account_name, is_active,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.PartnerID,
		account.Platform,
		account.AccountName,
		account.IsActive,
		account.CreatedByUserID,
		account.CreatedDate,
		account.LastUpdatedByUserID,
		account.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add partner social media account: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) AddAdmin(ctx context.Context, admin *domain.PartnerAdmin) error {
	query := `
		INSERT INTO partner_admins (
			partner_id, user_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		admin.PartnerID,
		admin.UserID,
		admin.CreatedByUserID,
		admin.CreatedDate,
		admin.LastUpdatedByUserID,
		admin.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add partner admin: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) CreateAdminInvitation(ctx context.Context, invitation *domain.PartnerAdminInvitation) error {
	query := `
		INSERT INTO partner_admin_invitations (
			id, partner_id, email, invitation_status_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		invitation.ID,
		invitation.PartnerID,
		invitation.Email,
		invitation.InvitationStatusID,
		invitation.CreatedByUserID,
		invitation.CreatedDate,
		invitation.LastUpdatedByUserID,
		invitation.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create partner admin invitation: %w", mapConstraintError(err))
	}
	return nil
}

func (r *partnerRepository) UpdateAdminInvitationStatus(ctx context.Context, id uuid.UUID, statusID int, actorID uuid.UUID, now time.Time) error {
	query := `
		UPDATE partner_admin_invitations SET
			invitation_status_id = $2, last_updated_by_user_id = $3, last_updated_date = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, statusID, actorID, now.UTC())
	if err != nil {
		return fmt.Errorf("failed to update invitation status: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check invitation update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "partner admin invitation", ID: id.String()}
	}
	return nil
}

func (r *partnerRepository) GetAdminInvitationsByEmail(ctx context.Context, email string) ([]*domain.PartnerAdminInvitation, error) {
	query := `
		SELECT id, partner_id, email, invitation_status_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM partner_admin_invitations WHERE email = $1
		ORDER BY created_date
	`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations by email: %w", err)
	}
	defer rows.Close()

	var invitations []*domain.PartnerAdminInvitation
	for rows.Next() {
		var invitation domain.PartnerAdminInvitation
		if err := rows.Scan(
			&invitation.ID,
			&invitation.PartnerID,
			&invitation.Email,
			&invitation.InvitationStatusID,
			&invitation.CreatedByUserID,
			&invitation.CreatedDate,
			&invitation.LastUpdatedByUserID,
			&invitation.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &invitation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}
	return invitations, nil
}
