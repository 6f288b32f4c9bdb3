package dto

import "time"

type ListMessagesQuery struct {
	MaxResults int    `query:"maxResults"`
	Query      string `query:"q"`
	PageToken  string `query:"pageToken"`
}

type MessageResponse struct {
	ID       string    `json:"id"`
	ThreadID string    `json:"threadId"`
	Subject  string    `json:"subject"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Date     time.Time `json:"date"`
	Snippet  string    `json:"snippet"`
	Body     string    `json:"body,omitempty"`
	IsUnread bool      `json:"isUnread"`
}

type MessageListResponse struct {
	Messages      []MessageResponse `json:"messages"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

// ExtractedEvent mirrors the extractor's response schema so extracted
// entries map straight onto activity creation on the client side.
type ExtractedEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`      // YYYY-MM-DD
	StartTime   string `json:"startTime"` // HH:MM
	EndTime     string `json:"endTime"`   // HH:MM
	Category    string `json:"category"`
	Urgency     string `json:"urgency"`
}

type ExtractionResult struct {
	HasEvent bool             `json:"hasEvent"`
	Events   []ExtractedEvent `json:"events"`
}
