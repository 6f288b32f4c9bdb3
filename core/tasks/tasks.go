package tasks

import (
	"context"
	"encoding/json"

	"planit-api/core/config"
	"planit-api/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task type names.
const (
	TypeMeetingNotify = "meeting:notify"
)

// MeetingNotifyPayload fans a scheduled meeting out to its participants'
// notification inboxes.
type MeetingNotifyPayload struct {
	MeetingID      uuid.UUID   `json:"meeting_id"`
	TeamID         uuid.UUID   `json:"team_id"`
	Title          string      `json:"title"`
	Date           string      `json:"date"`       // YYYY-MM-DD
	StartTime      string      `json:"start_time"` // HH:MM
	EndTime        string      `json:"end_time"`   // HH:MM
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
}

var client *asynq.Client

// InitClient builds the shared asynq client.
func InitClient(cfg config.RedisConfig) *asynq.Client {
	client = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return client
}

// GetClient returns the shared asynq client, nil before InitClient.
func GetClient() *asynq.Client {
	return client
}

// EnqueueMeetingNotify queues one notification fan-out for a new meeting.
// Enqueue failures are logged, not surfaced: notification delivery never
// blocks meeting creation.
func EnqueueMeetingNotify(ctx context.Context, payload *MeetingNotifyPayload) {
	if client == nil {
		logger.Warn("Tasks:EnqueueMeetingNotify:NoClient", "meeting_id", payload.MeetingID)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Tasks:EnqueueMeetingNotify:Marshal:Error:", err)
		return
	}

	task := asynq.NewTask(TypeMeetingNotify, data, asynq.MaxRetry(3))
	info, err := client.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error("Tasks:EnqueueMeetingNotify:Enqueue:Error:", err)
		return
	}
	logger.Info("Tasks:EnqueueMeetingNotify:Queued",
		"task_id", info.ID,
		"meeting_id", payload.MeetingID,
		"participants", len(payload.ParticipantIDs),
	)
}

// NewServer builds the asynq worker that consumes background tasks.
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error("Tasks:Worker:Error:", "error", err, "type", task.Type())
			}),
		},
	)
}
