package service

import (
	"context"
	"time"

	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/core/tasks"
	"planit-api/core/utils"
	schedentity "planit-api/modules/scheduling/entity"
	"planit-api/modules/team/dto"
	"planit-api/modules/team/entity"
	"planit-api/modules/team/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	defaultStartWorkingHour = "09:00"
	defaultEndWorkingHour   = "17:00"
)

type TeamServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, *errors.AppError)
	Get(ctx context.Context, userID, teamID uuid.UUID) (*dto.TeamResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) (*dto.TeamListResponse, *errors.AppError)
	Update(ctx context.Context, userID, teamID uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, *errors.AppError)
	Delete(ctx context.Context, userID, teamID uuid.UUID) *errors.AppError
	Join(ctx context.Context, userID uuid.UUID, req *dto.JoinTeamRequest) (*dto.TeamResponse, *errors.AppError)
	ListMembers(ctx context.Context, userID, teamID uuid.UUID) (*dto.MemberListResponse, *errors.AppError)
	InviteMember(ctx context.Context, userID, teamID uuid.UUID, req *dto.InviteMemberRequest) (*dto.InvitationResponse, *errors.AppError)
	RespondInvitation(ctx context.Context, userID, invitationID uuid.UUID, req *dto.RespondInvitationRequest) *errors.AppError
	CreateMeeting(ctx context.Context, userID, teamID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	ListMeetings(ctx context.Context, userID, teamID uuid.UUID) (*dto.MeetingListResponse, *errors.AppError)
	DeleteMeeting(ctx context.Context, userID, teamID, meetingID uuid.UUID) *errors.AppError
}

type TeamService struct {
	repo repository.TeamRepositoryInterface
}

func NewTeamService(repo repository.TeamRepositoryInterface) TeamServiceInterface {
	return &TeamService{repo: repo}
}

func (service *TeamService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTeamRequest) (*dto.TeamResponse, *errors.AppError) {
	if req.Name == "" {
		return nil, errors.NewValidationError("teamname", "name is required")
	}

	start := req.StartWorkingHour
	if start == "" {
		start = defaultStartWorkingHour
	}
	end := req.EndWorkingHour
	if end == "" {
		end = defaultEndWorkingHour
	}
	if appErr := validateWorkingHours(start, end); appErr != nil {
		return nil, appErr
	}

	team := &entity.Team{
		Name:             req.Name,
		Slug:             slug.Make(req.Name),
		JoinCode:         utils.GenerateJoinCode(),
		OwnerID:          userID,
		StartWorkingHour: start,
		EndWorkingHour:   end,
	}
	if err := service.repo.Create(ctx, team); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create team", err)
	}
	if err := service.repo.AddMember(ctx, team.ID, userID, entity.RoleOwner); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to add owner as member", err)
	}

	resp := dto.ToTeamResponse(team, true)
	return &resp, nil
}

func (service *TeamService) Get(ctx context.Context, userID, teamID uuid.UUID) (*dto.TeamResponse, *errors.AppError) {
	team, appErr := service.memberTeam(ctx, userID, teamID)
	if appErr != nil {
		return nil, appErr
	}

	resp := dto.ToTeamResponse(team, team.OwnerID == userID)
	return &resp, nil
}

func (service *TeamService) List(ctx context.Context, userID uuid.UUID) (*dto.TeamListResponse, *errors.AppError) {
	teams, err := service.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list teams", err)
	}

	resp := &dto.TeamListResponse{Teams: make([]dto.TeamResponse, 0, len(teams))}
	for i := range teams {
		resp.Teams = append(resp.Teams, dto.ToTeamResponse(&teams[i], teams[i].OwnerID == userID))
	}
	return resp, nil
}

func (service *TeamService) Update(ctx context.Context, userID, teamID uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, *errors.AppError) {
	team, appErr := service.ownedTeam(ctx, userID, teamID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.NewValidationError("teamname", "name must not be empty")
		}
		team.Name = *req.Name
		team.Slug = slug.Make(*req.Name)
	}
	if req.StartWorkingHour != nil {
		team.StartWorkingHour = *req.StartWorkingHour
	}
	if req.EndWorkingHour != nil {
		team.EndWorkingHour = *req.EndWorkingHour
	}
	if appErr := validateWorkingHours(team.StartWorkingHour, team.EndWorkingHour); appErr != nil {
		return nil, appErr
	}

	if err := service.repo.Update(ctx, team); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update team", err)
	}

	resp := dto.ToTeamResponse(team, true)
	return &resp, nil
}

func (service *TeamService) Delete(ctx context.Context, userID, teamID uuid.UUID) *errors.AppError {
	if _, appErr := service.ownedTeam(ctx, userID, teamID); appErr != nil {
		return appErr
	}

	if err := service.repo.Delete(ctx, teamID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete team", err)
	}
	return nil
}

func (service *TeamService) Join(ctx context.Context, userID uuid.UUID, req *dto.JoinTeamRequest) (*dto.TeamResponse, *errors.AppError) {
	if req.JoinCode == "" {
		return nil, errors.NewValidationError("joincode", "join code is required")
	}

	team, err := service.repo.GetByJoinCode(ctx, req.JoinCode)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up join code", err)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "invalid join code", nil)
	}

	if err := service.repo.AddMember(ctx, team.ID, userID, entity.RoleMember); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to join team", err)
	}

	resp := dto.ToTeamResponse(team, false)
	return &resp, nil
}

func (service *TeamService) ListMembers(ctx context.Context, userID, teamID uuid.UUID) (*dto.MemberListResponse, *errors.AppError) {
	if _, appErr := service.memberTeam(ctx, userID, teamID); appErr != nil {
		return nil, appErr
	}

	members, err := service.repo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list members", err)
	}

	resp := &dto.MemberListResponse{Members: make([]dto.MemberResponse, 0, len(members))}
	for i := range members {
		resp.Members = append(resp.Members, dto.ToMemberResponse(&members[i]))
	}
	return resp, nil
}

func (service *TeamService) InviteMember(ctx context.Context, userID, teamID uuid.UUID, req *dto.InviteMemberRequest) (*dto.InvitationResponse, *errors.AppError) {
	if _, appErr := service.memberTeam(ctx, userID, teamID); appErr != nil {
		return nil, appErr
	}

	inviteeID, found, err := service.repo.FindUserIDByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up invitee", err)
	}
	if !found {
		return nil, errors.NewAppError(errors.ErrNotFound, "no user with that email", nil)
	}

	already, err := service.repo.IsMember(ctx, teamID, inviteeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check membership", err)
	}
	if already {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "user is already a member", nil)
	}

	invitation := &entity.TeamInvitation{
		TeamID:    teamID,
		InviterID: userID,
		InviteeID: inviteeID,
		Status:    entity.InvitationPending,
	}
	if err := service.repo.CreateInvitation(ctx, invitation); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create invitation", err)
	}

	resp := dto.ToInvitationResponse(invitation)
	return &resp, nil
}

func (service *TeamService) RespondInvitation(ctx context.Context, userID, invitationID uuid.UUID, req *dto.RespondInvitationRequest) *errors.AppError {
	invitation, err := service.repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to get invitation", err)
	}
	if invitation == nil {
		return errors.NewAppError(errors.ErrNotFound, "invitation not found", nil)
	}
	if invitation.InviteeID != userID {
		return errors.NewAppError(errors.ErrForbidden, "invitation belongs to another user", nil)
	}
	if invitation.Status != entity.InvitationPending {
		return errors.NewAppError(errors.ErrAlreadyExists, "invitation already answered", nil)
	}

	status := entity.InvitationDeclined
	if req.Accept {
		status = entity.InvitationAccepted
	}
	if err := service.repo.UpdateInvitationStatus(ctx, invitationID, status); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to update invitation", err)
	}

	if req.Accept {
		if err := service.repo.AddMember(ctx, invitation.TeamID, userID, entity.RoleMember); err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "failed to add member", err)
		}
	}
	return nil
}

// CreateMeeting persists a meeting slot, normally one chosen from the
// scheduling engine's suggestions, and fans out notifications to every
// team member in the background.
func (service *TeamService) CreateMeeting(ctx context.Context, userID, teamID uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	if _, appErr := service.memberTeam(ctx, userID, teamID); appErr != nil {
		return nil, appErr
	}

	if req.Title == "" {
		return nil, errors.NewValidationError("meetingtitle", "title is required")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.NewValidationError("meetingdate", "must be a valid YYYY-MM-DD date")
	}
	startMin, err := schedentity.ParseClock(req.StartTime)
	if err != nil {
		return nil, errors.NewValidationError("meetingstarttime", "must be a valid HH:MM time")
	}
	endMin, err := schedentity.ParseClock(req.EndTime)
	if err != nil {
		return nil, errors.NewValidationError("meetingendtime", "must be a valid HH:MM time")
	}
	if startMin >= endMin {
		return nil, errors.NewValidationError("meetingendtime", "end time must be after start time")
	}

	meeting := &entity.TeamMeeting{
		TeamID:      teamID,
		CreatedBy:   userID,
		Title:       req.Title,
		MeetingDate: date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := service.repo.CreateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create meeting", err)
	}

	memberIDs, err := service.repo.MemberIDs(ctx, teamID)
	if err != nil {
		logger.Error("TeamService:CreateMeeting:MemberIDs:Error:", err)
	} else {
		tasks.EnqueueMeetingNotify(ctx, &tasks.MeetingNotifyPayload{
			MeetingID:      meeting.ID,
			TeamID:         teamID,
			Title:          meeting.Title,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			ParticipantIDs: memberIDs,
		})
	}

	resp := dto.ToMeetingResponse(meeting)
	return &resp, nil
}

func (service *TeamService) ListMeetings(ctx context.Context, userID, teamID uuid.UUID) (*dto.MeetingListResponse, *errors.AppError) {
	if _, appErr := service.memberTeam(ctx, userID, teamID); appErr != nil {
		return nil, appErr
	}

	meetings, err := service.repo.ListMeetings(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list meetings", err)
	}

	resp := &dto.MeetingListResponse{Meetings: make([]dto.MeetingResponse, 0, len(meetings))}
	for i := range meetings {
		resp.Meetings = append(resp.Meetings, dto.ToMeetingResponse(&meetings[i]))
	}
	return resp, nil
}

func (service *TeamService) DeleteMeeting(ctx context.Context, userID, teamID, meetingID uuid.UUID) *errors.AppError {
	if _, appErr := service.memberTeam(ctx, userID, teamID); appErr != nil {
		return appErr
	}

	if err := service.repo.DeleteMeeting(ctx, meetingID, teamID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete meeting", err)
	}
	return nil
}

// memberTeam loads a team and requires the caller to be a member.
func (service *TeamService) memberTeam(ctx context.Context, userID, teamID uuid.UUID) (*entity.Team, *errors.AppError) {
	team, err := service.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get team", err)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "team not found", nil)
	}

	member, err := service.repo.IsMember(ctx, teamID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check membership", err)
	}
	if !member {
		return nil, errors.NewAppError(errors.ErrForbidden, "not a member of this team", nil)
	}
	return team, nil
}

// ownedTeam loads a team and requires the caller to be its owner.
func (service *TeamService) ownedTeam(ctx context.Context, userID, teamID uuid.UUID) (*entity.Team, *errors.AppError) {
	team, err := service.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get team", err)
	}
	if team == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "team not found", nil)
	}
	if team.OwnerID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "only the team owner may do this", nil)
	}
	return team, nil
}

func validateWorkingHours(start, end string) *errors.AppError {
	startMin, err := schedentity.ParseClock(start)
	if err != nil {
		return errors.NewValidationError("teamstartworkinghour", "must be a valid HH:MM time")
	}
	endMin, err := schedentity.ParseClock(end)
	if err != nil {
		return errors.NewValidationError("teamendworkinghour", "must be a valid HH:MM time")
	}
	if startMin >= endMin {
		return errors.NewValidationError("teamendworkinghour", "end must be after start")
	}
	return nil
}
