package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/internal/repository/testutil"
	"github.com/google/uuid"
)

func testTeam(now time.Time) *domain.Team {
	team := &domain.Team{
		ID:          uuid.New(),
		Name:        "River Rats",
		Description: "Weekly riverbank cleanups",
		IsPublic:    true,
	}
	team.StampCreate(uuid.New(), now)
	return team
}

func TestTeamCreate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	team := testTeam(now)

	// Test case 1: Successful create
	mock.ExpectExec(`INSERT INTO teams`).
		WithArgs(
			team.ID, team.Name, sqlmock.AnyArg(), team.IsPublic,
			team.CreatedByUserID, team.CreatedDate, team.LastUpdatedByUserID, team.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), team)
	require.NoError(t, err)

	// Test case 2: Duplicate name maps to the typed violation
	mock.ExpectExec(`INSERT INTO teams`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "teams_name_key"})

	err = repo.Create(context.Background(), team)
	require.Error(t, err)
	var unique *domain.ErrUniqueViolation
	require.True(t, errors.As(err, &unique))
	assert.Equal(t, "teams_name_key", unique.Constraint)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamGetByName(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	team := testTeam(now)

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "is_public",
		"created_by_user_id", "created_date", "last_updated_by_user_id", "last_updated_date",
	}).AddRow(
		team.ID.String(), team.Name, team.Description, team.IsPublic,
		team.CreatedByUserID.String(), team.CreatedDate, team.LastUpdatedByUserID.String(), team.LastUpdatedDate,
	)

	mock.ExpectQuery(`SELECT (.+) FROM teams WHERE name = \$1`).
		WithArgs(team.Name).
		WillReturnRows(rows)

	got, err := repo.GetByName(context.Background(), team.Name)
	require.NoError(t, err)
	assert.Equal(t, team.ID, got.ID)
	assert.Equal(t, team.Description, got.Description)

	// Not found
	mock.ExpectQuery(`SELECT (.+) FROM teams WHERE name = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err = repo.GetByName(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, got)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamAddMember(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	member := &domain.TeamMember{
		TeamID:     uuid.New(),
		UserID:     uuid.New(),
		IsTeamLead: true,
	}
	member.StampCreate(member.UserID, now)

	// Test case 1: Successful add
	mock.ExpectExec(`INSERT INTO team_members`).
		WithArgs(
			member.TeamID, member.UserID, member.IsTeamLead,
			member.CreatedByUserID, member.CreatedDate, member.LastUpdatedByUserID, member.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddMember(context.Background(), member)
	require.NoError(t, err)

	// Test case 2: Already a member, composite PK rejects the insert
	mock.ExpectExec(`INSERT INTO team_members`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "team_members_pkey"})

	err = repo.AddMember(context.Background(), member)
	require.Error(t, err)
	var unique *domain.ErrUniqueViolation
	assert.True(t, errors.As(err, &unique))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamJoinRequestFlow(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	request := &domain.TeamJoinRequest{
		ID:       uuid.New(),
		TeamID:   uuid.New(),
		UserID:   uuid.New(),
		StatusID: domain.TeamJoinRequestStatusPending,
	}
	request.StampCreate(request.UserID, now)

	// Create the pending request
	mock.ExpectExec(`INSERT INTO team_join_requests`).
		WithArgs(
			request.ID, request.TeamID, request.UserID, request.StatusID,
			nil, nil,
			request.CreatedByUserID, request.CreatedDate,
			request.LastUpdatedByUserID, request.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateJoinRequest(context.Background(), request)
	require.NoError(t, err)

	// Approve it inside a transaction alongside the membership insert
	reviewer := uuid.New()
	reviewed := now.Add(time.Hour)
	request.StatusID = domain.TeamJoinRequestStatusApproved
	request.ReviewedByUserID = &reviewer
	request.ReviewedDate = &reviewed
	request.StampUpdate(reviewer, reviewed)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE team_join_requests SET`).
		WithArgs(
			request.ID, request.StatusID, sqlmock.AnyArg(), sqlmock.AnyArg(),
			request.LastUpdatedByUserID, request.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO team_members`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	member := &domain.TeamMember{TeamID: request.TeamID, UserID: request.UserID}
	member.StampCreate(reviewer, reviewed)

	err = repo.WithTransaction(context.Background(), func(tx *sql.Tx) error {
		if err := repo.UpdateJoinRequestTx(context.Background(), tx, request); err != nil {
			return err
		}
		return repo.AddMemberTx(context.Background(), tx, member)
	})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamUpdateJoinRequestTx_NotFound(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	request := &domain.TeamJoinRequest{
		ID:       uuid.New(),
		StatusID: domain.TeamJoinRequestStatusRejected,
	}
	request.StampCreate(uuid.New(), now)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE team_join_requests SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.WithTransaction(context.Background(), func(tx *sql.Tx) error {
		return repo.UpdateJoinRequestTx(context.Background(), tx, request)
	})
	require.Error(t, err)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamGetPendingJoinRequests(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTeamRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	teamID := uuid.New()
	actor := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "team_id", "user_id", "status_id", "reviewed_by_user_id", "reviewed_date",
		"created_by_user_id", "created_date", "last_updated_by_user_id", "last_updated_date",
	}).
		AddRow(uuid.NewString(), teamID.String(), uuid.NewString(), domain.TeamJoinRequestStatusPending, nil, nil, actor.String(), now, actor.String(), now).
		AddRow(uuid.NewString(), teamID.String(), uuid.NewString(), domain.TeamJoinRequestStatusPending, nil, nil, actor.String(), now, actor.String(), now)

	mock.ExpectQuery(`SELECT (.+) FROM team_join_requests WHERE team_id = \$1 AND status_id = \$2`).
		WithArgs(teamID, domain.TeamJoinRequestStatusPending).
		WillReturnRows(rows)

	requests, err := repo.GetPendingJoinRequests(context.Background(), teamID)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, domain.TeamJoinRequestStatusPending, requests[0].StatusID)
	assert.Nil(t, requests[0].ReviewedByUserID)

	require.NoError(t, mock.ExpectationsWereMet())
}
