package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, user_name, email, given_name, surname, city, region, country,
		postal_code, latitude, longitude, prefers_metric, travel_limit_for_local_events,
		is_opted_out_of_all_emails, is_site_admin, date_agreed_to_privacy_policy,
		date_agreed_to_terms_of_service, created_by_user_id, created_date,
		last_updated_by_user_id, last_updated_date`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.UserName,
		user.Email,
		nullString(user.GivenName),
		nullString(user.Surname),
		nullString(user.City),
		nullString(user.Region),
		nullString(user.Country),
		nullString(user.PostalCode),
		user.Latitude,
		user.Longitude,
		user.PrefersMetric,
		user.TravelLimitForLocalEvents,
		user.IsOptedOutOfAllEmails,
		user.IsSiteAdmin,
		user.DateAgreedToPrivacyPolicy,
		user.DateAgreedToTermsOfService,
		user.CreatedByUserID,
		user.CreatedDate,
		user.LastUpdatedByUserID,
		user.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", mapConstraintError(err))
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email", email)
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return r.getOne(ctx, "user_name", userName)
}

func (r *userRepository) getOne(ctx context.Context, column string, value interface{}) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`

	row := r.db.QueryRowContext(ctx, query, value)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "user", ID: fmt.Sprintf("%v", value)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			user_name = $2, email = $3, given_name = $4, surname = $5, city = $6,
			region = $7, country = $8, postal_code = $9, latitude = $10, longitude = $11,
			prefers_metric = $12, travel_limit_for_local_events = $13,
			is_opted_out_of_all_emails = $14, is_site_admin = $15,
			date_agreed_to_privacy_policy = $16, date_agreed_to_terms_of_service = $17,
			last_updated_by_user_id = $18, last_updated_date = $19
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.UserName,
		user.Email,
		nullString(user.GivenName),
		nullString(user.Surname),
		nullString(user.City),
		nullString(user.Region),
		nullString(user.Country),
		nullString(user.PostalCode),
		user.Latitude,
		user.Longitude,
		user.PrefersMetric,
		user.TravelLimitForLocalEvents,
		user.IsOptedOutOfAllEmails,
		user.IsSiteAdmin,
		user.DateAgreedToPrivacyPolicy,
		user.DateAgreedToTermsOfService,
		user.LastUpdatedByUserID,
		user.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "user", ID: user.ID.String()}
	}
	return nil
}

func (r *userRepository) EnsureSystemUser(ctx context.Context) error {
	sys := domain.NewSystemUser(time.Now().UTC())
	query := `
		INSERT INTO users (
			id, user_name, email, is_site_admin,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, TRUE, $1, $4, $1, $4)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, sys.ID, sys.UserName, sys.Email, sys.CreatedDate)
	if err != nil {
		return fmt.Errorf("failed to ensure system user: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var givenName, surname, city, region, country, postalCode sql.NullString
	err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&givenName,
		&surname,
		&city,
		&region,
		&country,
		&postalCode,
		&user.Latitude,
		&user.Longitude,
		&user.PrefersMetric,
		&user.TravelLimitForLocalEvents,
		&user.IsOptedOutOfAllEmails,
		&user.IsSiteAdmin,
		&user.DateAgreedToPrivacyPolicy,
		&user.DateAgreedToTermsOfService,
		&user.CreatedByUserID,
		&user.CreatedDate,
		&user.LastUpdatedByUserID,
		&user.LastUpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	user.GivenName = givenName.String
	user.Surname = surname.String
	user.City = city.String
	user.Region = region.String
	user.Country = country.String
	user.PostalCode = postalCode.String
	return &user, nil
}

// nullString maps an empty string onto SQL NULL for optional columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
