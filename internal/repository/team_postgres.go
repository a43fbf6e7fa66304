package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type teamRepository struct {
	db *sql.DB
}

// NewTeamRepository creates a new PostgreSQL team repository
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (
			id, name, description, is_public,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		team.ID,
		team.Name,
		nullString(team.Description),
		team.IsPublic,
		team.CreatedByUserID,
		team.CreatedDate,
		team.LastUpdatedByUserID,
		team.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", mapConstraintError(err))
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	return r.getOne(ctx, "id", id)
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	return r.getOne(ctx, "name", name)
}

func (r *teamRepository) getOne(ctx context.Context, column string, value interface{}) (*domain.Team, error) {
	query := `
		SELECT id, name, description, is_public,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM teams WHERE ` + column + ` = $1`

	var team domain.Team
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&team.ID,
		&team.Name,
		&description,
		&team.IsPublic,
		&team.CreatedByUserID,
		&team.CreatedDate,
		&team.LastUpdatedByUserID,
		&team.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "team", ID: fmt.Sprintf("%v", value)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	team.Description = description.String
	return &team, nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams SET
			name = $2, description = $3, is_public = $4,
			last_updated_by_user_id = $5, last_updated_date = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		team.ID,
		team.Name,
		nullString(team.Description),
		team.IsPublic,
		team.LastUpdatedByUserID,
		team.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "team", ID: team.ID.String()}
	}
	return nil
}

const addMemberQuery = `
		INSERT INTO team_members (
			team_id, user_id, is_team_lead,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

func (r *teamRepository) AddMember(ctx context.Context, member *domain.TeamMember) error {
	_, err := r.db.ExecContext(ctx, addMemberQuery, memberArgs(member)...)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", mapConstraintError(err))
	}
	return nil
}

func (r *teamRepository) AddMemberTx(ctx context.Context, tx *sql.Tx, member *domain.TeamMember) error {
	_, err := tx.ExecContext(ctx, addMemberQuery, memberArgs(member)...)
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", mapConstraintError(err))
	}
	return nil
}

func memberArgs(member *domain.TeamMember) []interface{} {
	return []interface{}{
		member.TeamID,
		member.UserID,
		member.IsTeamLead,
		member.CreatedByUserID,
		member.CreatedDate,
		member.LastUpdatedByUserID,
		member.LastUpdatedDate,
	}
}

func (r *teamRepository) GetMembers(ctx context.Context, teamID uuid.UUID) ([]*domain.TeamMember, error) {
	query := `
		SELECT team_id, user_id, is_team_lead,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM team_members WHERE team_id = $1
		ORDER BY created_date
	`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		var member domain.TeamMember
		if err := rows.Scan(
			&member.TeamID,
			&member.UserID,
			&member.IsTeamLead,
			&member.CreatedByUserID,
			&member.CreatedDate,
			&member.LastUpdatedByUserID,
			&member.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, &member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}
	return members, nil
}

func (r *teamRepository) CreateJoinRequest(ctx context.Context, request *domain.TeamJoinRequest) error {
	query := `
		INSERT INTO team_join_requests (
			id, team_id, user_id, status_id, reviewed_by_user_id, reviewed_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		request.ID,
		request.TeamID,
		request.UserID,
		request.StatusID,
		request.ReviewedByUserID,
		request.ReviewedDate,
		request.CreatedByUserID,
		request.CreatedDate,
		request.LastUpdatedByUserID,
		request.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create join request: %w", mapConstraintError(err))
	}
	return nil
}

func (r *teamRepository) GetJoinRequest(ctx context.Context, id uuid.UUID) (*domain.TeamJoinRequest, error) {
	query := `
		SELECT id, team_id, user_id, status_id, reviewed_by_user_id, reviewed_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM team_join_requests WHERE id = $1
	`
	var request domain.TeamJoinRequest
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&request.ID,
		&request.TeamID,
		&request.UserID,
		&request.StatusID,
		&request.ReviewedByUserID,
		&request.ReviewedDate,
		&request.CreatedByUserID,
		&request.CreatedDate,
		&request.LastUpdatedByUserID,
		&request.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "team join request", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	return &request, nil
}

func (r *teamRepository) UpdateJoinRequestTx(ctx context.Context, tx *sql.Tx, request *domain.TeamJoinRequest) error {
	query := `
		UPDATE team_join_requests SET
			status_id = $2, reviewed_by_user_id = $3, reviewed_date = $4,
			last_updated_by_user_id = $5, last_updated_date = $6
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query,
		request.ID,
		request.StatusID,
		request.ReviewedByUserID,
		request.ReviewedDate,
		request.LastUpdatedByUserID,
		request.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update join request: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "team join request", ID: request.ID.String()}
	}
	return nil
}

func (r *teamRepository) GetPendingJoinRequests(ctx context.Context, teamID uuid.UUID) ([]*domain.TeamJoinRequest, error) {
	query := `
		SELECT id, team_id, user_id, status_id, reviewed_by_user_id, reviewed_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM team_join_requests WHERE team_id = $1 AND status_id = $2
		ORDER BY created_date
	`
	rows, err := r.db.QueryContext(ctx, query, teamID, domain.TeamJoinRequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending join requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.TeamJoinRequest
	for rows.Next() {
		var request domain.TeamJoinRequest
		if err := rows.Scan(
			&request.ID,
			&request.TeamID,
			&request.UserID,
			&request.StatusID,
			&request.ReviewedByUserID,
			&request.ReviewedDate,
			&request.CreatedByUserID,
			&request.CreatedDate,
			&request.LastUpdatedByUserID,
			&request.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan join request: %w", err)
		}
		requests = append(requests, &request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate join requests: %w", err)
	}
	return requests, nil
}

func (r *teamRepository) AddTeamEvent(ctx context.Context, teamEvent *domain.TeamEvent) error {
	query := `
		INSERT INTO team_events (
			team_id, event_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		teamEvent.TeamID,
		teamEvent.EventID,
		teamEvent.CreatedByUserID,
		teamEvent.CreatedDate,
		teamEvent.LastUpdatedByUserID,
		teamEvent.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add team event: %w", mapConstraintError(err))
	}
	return nil
}
