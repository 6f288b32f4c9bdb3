package repository

import (
	"context"
	"database/sql"
	"errors"

	"planit-api/core/database"
	"planit-api/core/logger"
	"planit-api/modules/team/entity"

	"github.com/google/uuid"
)

type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *entity.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error)
	GetByJoinCode(ctx context.Context, joinCode string) (*entity.Team, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Team, error)
	Update(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, teamID, userID uuid.UUID, role string) error
	IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]entity.TeamMember, error)
	MemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)

	CreateInvitation(ctx context.Context, invitation *entity.TeamInvitation) error
	GetInvitation(ctx context.Context, id uuid.UUID) (*entity.TeamInvitation, error)
	UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status string) error

	FindUserIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error)

	CreateMeeting(ctx context.Context, meeting *entity.TeamMeeting) error
	ListMeetings(ctx context.Context, teamID uuid.UUID) ([]entity.TeamMeeting, error)
	DeleteMeeting(ctx context.Context, id, teamID uuid.UUID) error
}

type TeamRepository struct {
	DB database.IDatabase
}

func NewTeamRepository(db database.IDatabase) TeamRepositoryInterface {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entity.Team) error {
	query := `
		INSERT INTO teams (name, slug, join_code, owner_id, start_working_hour, end_working_hour, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		team.Name, team.Slug, team.JoinCode, team.OwnerID,
		team.StartWorkingHour, team.EndWorkingHour,
	).Scan(&team.ID)
	if err != nil {
		logger.Error("TeamRepository:Create:Error:", err)
		return err
	}
	return nil
}

const teamColumns = `
	id, name, slug, join_code, owner_id,
	to_char(start_working_hour, 'HH24:MI') AS start_working_hour,
	to_char(end_working_hour, 'HH24:MI') AS end_working_hour,
	created_at, updated_at
`

func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Team, error) {
	var team entity.Team
	err := r.DB.GetContext(ctx, &team, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("TeamRepository:GetByID:Error:", err)
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetByJoinCode(ctx context.Context, joinCode string) (*entity.Team, error) {
	var team entity.Team
	err := r.DB.GetContext(ctx, &team, `SELECT `+teamColumns+` FROM teams WHERE join_code = $1`, joinCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("TeamRepository:GetByJoinCode:Error:", err)
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		WHERE EXISTS (SELECT 1 FROM team_members tm WHERE tm.team_id = t.id AND tm.user_id = $1)
		ORDER BY t.created_at
	`
	var teams []entity.Team
	if err := r.DB.SelectContext(ctx, &teams, query, userID); err != nil {
		logger.Error("TeamRepository:ListByUser:Error:", err)
		return nil, err
	}
	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entity.Team) error {
	query := `
		UPDATE teams
		SET name = $1, slug = $2, start_working_hour = $3::time, end_working_hour = $4::time, updated_at = NOW()
		WHERE id = $5
	`
	err := r.DB.ExecContext(ctx, query,
		team.Name, team.Slug, team.StartWorkingHour, team.EndWorkingHour, team.ID)
	if err != nil {
		logger.Error("TeamRepository:Update:Error:", err)
	}
	return err
}

func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		logger.Error("TeamRepository:Delete:Error:", err)
	}
	return err
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID uuid.UUID, role string) error {
	query := `
		INSERT INTO team_members (team_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (team_id, user_id) DO NOTHING
	`
	err := r.DB.ExecContext(ctx, query, teamID, userID, role)
	if err != nil {
		logger.Error("TeamRepository:AddMember:Error:", err)
	}
	return err
}

func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`, teamID, userID)
	if err != nil {
		logger.Error("TeamRepository:IsMember:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID uuid.UUID) ([]entity.TeamMember, error) {
	query := `
		SELECT tm.team_id, tm.user_id, u.username, tm.role, tm.joined_at
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at
	`
	var members []entity.TeamMember
	if err := r.DB.SelectContext(ctx, &members, query, teamID); err != nil {
		logger.Error("TeamRepository:ListMembers:Error:", err)
		return nil, err
	}
	return members, nil
}

func (r *TeamRepository) MemberIDs(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.SelectContext(ctx, &ids,
		`SELECT user_id FROM team_members WHERE team_id = $1 ORDER BY joined_at`, teamID)
	if err != nil {
		logger.Error("TeamRepository:MemberIDs:Error:", err)
		return nil, err
	}
	return ids, nil
}

func (r *TeamRepository) CreateInvitation(ctx context.Context, invitation *entity.TeamInvitation) error {
	query := `
		INSERT INTO team_invitations (team_id, inviter_id, invitee_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		invitation.TeamID, invitation.InviterID, invitation.InviteeID, invitation.Status,
	).Scan(&invitation.ID)
	if err != nil {
		logger.Error("TeamRepository:CreateInvitation:Error:", err)
		return err
	}
	return nil
}

func (r *TeamRepository) GetInvitation(ctx context.Context, id uuid.UUID) (*entity.TeamInvitation, error) {
	var invitation entity.TeamInvitation
	err := r.DB.GetContext(ctx, &invitation, `SELECT * FROM team_invitations WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("TeamRepository:GetInvitation:Error:", err)
		return nil, err
	}
	return &invitation, nil
}

func (r *TeamRepository) UpdateInvitationStatus(ctx context.Context, id uuid.UUID, status string) error {
	err := r.DB.ExecContext(ctx,
		`UPDATE team_invitations SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		logger.Error("TeamRepository:UpdateInvitationStatus:Error:", err)
	}
	return err
}

// FindUserIDByEmail resolves an invitee's account by email.
func (r *TeamRepository) FindUserIDByEmail(ctx context.Context, email string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, `SELECT id FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		logger.Error("TeamRepository:FindUserIDByEmail:Error:", err)
		return uuid.Nil, false, err
	}
	return id, true, nil
}

func (r *TeamRepository) CreateMeeting(ctx context.Context, meeting *entity.TeamMeeting) error {
	query := `
		INSERT INTO team_meetings (team_id, created_by, title, meeting_date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::time, $6::time, NOW(), NOW())
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		meeting.TeamID, meeting.CreatedBy, meeting.Title, meeting.MeetingDate,
		meeting.StartTime, meeting.EndTime,
	).Scan(&meeting.ID)
	if err != nil {
		logger.Error("TeamRepository:CreateMeeting:Error:", err)
		return err
	}
	return nil
}

func (r *TeamRepository) ListMeetings(ctx context.Context, teamID uuid.UUID) ([]entity.TeamMeeting, error) {
	query := `
		SELECT id, team_id, created_by, title, meeting_date,
		       to_char(start_time, 'HH24:MI') AS start_time,
		       to_char(end_time, 'HH24:MI') AS end_time,
		       created_at, updated_at
		FROM team_meetings
		WHERE team_id = $1
		ORDER BY meeting_date, start_time
	`
	var meetings []entity.TeamMeeting
	if err := r.DB.SelectContext(ctx, &meetings, query, teamID); err != nil {
		logger.Error("TeamRepository:ListMeetings:Error:", err)
		return nil, err
	}
	return meetings, nil
}

func (r *TeamRepository) DeleteMeeting(ctx context.Context, id, teamID uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM team_meetings WHERE id = $1 AND team_id = $2`, id, teamID)
	if err != nil {
		logger.Error("TeamRepository:DeleteMeeting:Error:", err)
	}
	return err
}
