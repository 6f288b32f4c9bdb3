package service

import (
	"context"

	"planit-api/core/errors"
	"planit-api/core/logger"
	"planit-api/modules/inbox/dto"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 50
)

// TokenProvider yields a per-user Google token source. The auth module
// satisfies this with its stored OAuth tokens.
type TokenProvider interface {
	GoogleTokenSource(ctx context.Context, userID uuid.UUID) (oauth2.TokenSource, *errors.AppError)
}

type InboxServiceInterface interface {
	ListMessages(ctx context.Context, userID uuid.UUID, query *dto.ListMessagesQuery) (*dto.MessageListResponse, *errors.AppError)
	GetMessage(ctx context.Context, userID uuid.UUID, messageID string) (*dto.MessageResponse, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, messageID string) *errors.AppError
	ExtractEvents(ctx context.Context, userID uuid.UUID, messageID string) (*dto.ExtractionResult, *errors.AppError)
}

type InboxService struct {
	tokens    TokenProvider
	gmail     *GmailClient
	extractor EventExtractor
}

func NewInboxService(tokens TokenProvider, gmail *GmailClient, extractor EventExtractor) InboxServiceInterface {
	return &InboxService{tokens: tokens, gmail: gmail, extractor: extractor}
}

func (service *InboxService) ListMessages(ctx context.Context, userID uuid.UUID, query *dto.ListMessagesQuery) (*dto.MessageListResponse, *errors.AppError) {
	ts, appErr := service.tokens.GoogleTokenSource(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	maxResults := query.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxMaxResults {
		maxResults = maxMaxResults
	}

	list, err := service.gmail.ListMessages(ctx, ts, maxResults, query.Query, query.PageToken)
	if err != nil {
		logger.Error("InboxService:ListMessages:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list messages", err)
	}

	resp := &dto.MessageListResponse{
		Messages:      make([]dto.MessageResponse, 0, len(list.Messages)),
		NextPageToken: list.NextPageToken,
	}
	for _, ref := range list.Messages {
		msg, err := service.gmail.GetMessage(ctx, ts, ref.ID)
		if err != nil {
			logger.Error("InboxService:ListMessages:GetMessage:Error:", err, "message_id", ref.ID)
			continue
		}
		resp.Messages = append(resp.Messages, toMessageResponse(msg, false))
	}
	return resp, nil
}

func (service *InboxService) GetMessage(ctx context.Context, userID uuid.UUID, messageID string) (*dto.MessageResponse, *errors.AppError) {
	ts, appErr := service.tokens.GoogleTokenSource(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	msg, err := service.gmail.GetMessage(ctx, ts, messageID)
	if err != nil {
		logger.Error("InboxService:GetMessage:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get message", err)
	}

	resp := toMessageResponse(msg, true)
	return &resp, nil
}

func (service *InboxService) MarkAsRead(ctx context.Context, userID uuid.UUID, messageID string) *errors.AppError {
	ts, appErr := service.tokens.GoogleTokenSource(ctx, userID)
	if appErr != nil {
		return appErr
	}

	if err := service.gmail.MarkAsRead(ctx, ts, messageID); err != nil {
		logger.Error("InboxService:MarkAsRead:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to mark message as read", err)
	}
	return nil
}

func (service *InboxService) ExtractEvents(ctx context.Context, userID uuid.UUID, messageID string) (*dto.ExtractionResult, *errors.AppError) {
	ts, appErr := service.tokens.GoogleTokenSource(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	msg, err := service.gmail.GetMessage(ctx, ts, messageID)
	if err != nil {
		logger.Error("InboxService:ExtractEvents:GetMessage:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get message", err)
	}

	content := toMessageResponse(msg, true)
	body := content.Body
	if body == "" {
		body = content.Snippet
	}

	result, err := service.extractor.Extract(ctx, "Subject: "+content.Subject+"\n\n"+body)
	if err != nil {
		logger.Error("InboxService:ExtractEvents:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to extract events", err)
	}
	return result, nil
}
