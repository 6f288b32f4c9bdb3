package dto

import "planit-api/modules/team/entity"

// Field names mirror the original PlanIt client payloads.

type CreateTeamRequest struct {
	Name             string `json:"teamname" validate:"required"`
	StartWorkingHour string `json:"teamstartworkinghour"` // HH:MM, default 09:00
	EndWorkingHour   string `json:"teamendworkinghour"`   // HH:MM, default 17:00
}

type UpdateTeamRequest struct {
	Name             *string `json:"teamname"`
	StartWorkingHour *string `json:"teamstartworkinghour"`
	EndWorkingHour   *string `json:"teamendworkinghour"`
}

type JoinTeamRequest struct {
	JoinCode string `json:"joincode" validate:"required"`
}

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RespondInvitationRequest struct {
	Accept bool `json:"accept"`
}

type CreateMeetingRequest struct {
	Title     string `json:"meetingtitle" validate:"required"`
	Date      string `json:"meetingdate" validate:"required"` // YYYY-MM-DD
	StartTime string `json:"meetingstarttime" validate:"required"`
	EndTime   string `json:"meetingendtime" validate:"required"`
}

type TeamResponse struct {
	ID               string `json:"teamid"`
	Name             string `json:"teamname"`
	Slug             string `json:"teamslug"`
	JoinCode         string `json:"joincode,omitempty"`
	StartWorkingHour string `json:"teamstartworkinghour"`
	EndWorkingHour   string `json:"teamendworkinghour"`
}

type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type MemberResponse struct {
	UserID   string `json:"userid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

type InvitationResponse struct {
	ID     string `json:"invitationid"`
	TeamID string `json:"teamid"`
	Status string `json:"status"`
}

type MeetingResponse struct {
	ID        string `json:"teammeetingid"`
	TeamID    string `json:"teamid"`
	Title     string `json:"meetingtitle"`
	Date      string `json:"meetingdate"`
	StartTime string `json:"meetingstarttime"`
	EndTime   string `json:"meetingendtime"`
}

type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

func ToTeamResponse(t *entity.Team, includeJoinCode bool) TeamResponse {
	resp := TeamResponse{
		ID:               t.ID.String(),
		Name:             t.Name,
		Slug:             t.Slug,
		StartWorkingHour: t.StartWorkingHour,
		EndWorkingHour:   t.EndWorkingHour,
	}
	if includeJoinCode {
		resp.JoinCode = t.JoinCode
	}
	return resp
}

func ToMemberResponse(m *entity.TeamMember) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID.String(),
		Username: m.Username,
		Role:     m.Role,
	}
}

func ToInvitationResponse(inv *entity.TeamInvitation) InvitationResponse {
	return InvitationResponse{
		ID:     inv.ID.String(),
		TeamID: inv.TeamID.String(),
		Status: inv.Status,
	}
}

func ToMeetingResponse(m *entity.TeamMeeting) MeetingResponse {
	return MeetingResponse{
		ID:        m.ID.String(),
		TeamID:    m.TeamID.String(),
		Title:     m.Title,
		Date:      m.MeetingDate.Format("2006-01-02"),
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
}
