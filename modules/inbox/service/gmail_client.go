package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"planit-api/modules/inbox/dto"

	"golang.org/x/oauth2"
)

const gmailBaseURL = "https://gmail.googleapis.com/gmail/v1/users/me"

type gmailMessageRef struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`
}

type gmailListResponse struct {
	Messages      []gmailMessageRef `json:"messages"`
	NextPageToken string            `json:"nextPageToken"`
}

type gmailHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type gmailBody struct {
	Data string `json:"data"`
}

type gmailPart struct {
	MimeType string        `json:"mimeType"`
	Headers  []gmailHeader `json:"headers"`
	Body     gmailBody     `json:"body"`
	Parts    []gmailPart   `json:"parts"`
}

type gmailMessage struct {
	ID           string    `json:"id"`
	ThreadID     string    `json:"threadId"`
	Snippet      string    `json:"snippet"`
	InternalDate string    `json:"internalDate"`
	LabelIDs     []string  `json:"labelIds"`
	Payload      gmailPart `json:"payload"`
}

// GmailClient makes raw Gmail REST calls with a per-user token source.
type GmailClient struct {
	baseURL string
}

func NewGmailClient() *GmailClient {
	return &GmailClient{baseURL: gmailBaseURL}
}

func (c *GmailClient) httpClient(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = 15 * time.Second
	return client
}

func (c *GmailClient) ListMessages(ctx context.Context, ts oauth2.TokenSource, maxResults int, query, pageToken string) (*gmailListResponse, error) {
	params := url.Values{}
	params.Set("maxResults", strconv.Itoa(maxResults))
	if query != "" {
		params.Set("q", query)
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out gmailListResponse
	if err := c.getJSON(ctx, ts, fmt.Sprintf("%s/messages?%s", c.baseURL, params.Encode()), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *GmailClient) GetMessage(ctx context.Context, ts oauth2.TokenSource, id string) (*gmailMessage, error) {
	var out gmailMessage
	if err := c.getJSON(ctx, ts, fmt.Sprintf("%s/messages/%s", c.baseURL, url.PathEscape(id)), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkAsRead removes the UNREAD label from a message.
func (c *GmailClient) MarkAsRead(ctx context.Context, ts oauth2.TokenSource, id string) error {
	body := strings.NewReader(`{"removeLabelIds":["UNREAD"]}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/messages/%s/modify", c.baseURL, url.PathEscape(id)), body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient(ctx, ts).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gmail modify returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *GmailClient) getJSON(ctx context.Context, ts oauth2.TokenSource, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient(ctx, ts).Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gmail returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// toMessageResponse flattens a raw Gmail message into the API shape,
// preferring the HTML part over plain text for the body.
func toMessageResponse(m *gmailMessage, includeBody bool) dto.MessageResponse {
	header := func(name string) string {
		for _, h := range m.Payload.Headers {
			if strings.EqualFold(h.Name, name) {
				return h.Value
			}
		}
		return ""
	}

	subject := header("Subject")
	if subject == "" {
		subject = "(No Subject)"
	}

	var date time.Time
	if millis, err := strconv.ParseInt(m.InternalDate, 10, 64); err == nil {
		date = time.UnixMilli(millis).UTC()
	}

	unread := false
	for _, label := range m.LabelIDs {
		if label == "UNREAD" {
			unread = true
			break
		}
	}

	resp := dto.MessageResponse{
		ID:       m.ID,
		ThreadID: m.ThreadID,
		Subject:  subject,
		From:     header("From"),
		To:       header("To"),
		Date:     date,
		Snippet:  m.Snippet,
		IsUnread: unread,
	}
	if includeBody {
		resp.Body = messageBody(&m.Payload)
	}
	return resp
}

func messageBody(payload *gmailPart) string {
	if len(payload.Parts) > 0 {
		if part := findPart(payload.Parts, "text/html"); part != nil {
			return decodeBody(part.Body.Data)
		}
		if part := findPart(payload.Parts, "text/plain"); part != nil {
			return decodeBody(part.Body.Data)
		}
		return ""
	}
	return decodeBody(payload.Body.Data)
}

func findPart(parts []gmailPart, mimeType string) *gmailPart {
	for i := range parts {
		if parts[i].MimeType == mimeType && parts[i].Body.Data != "" {
			return &parts[i]
		}
		if found := findPart(parts[i].Parts, mimeType); found != nil {
			return found
		}
	}
	return nil
}

func decodeBody(data string) string {
	if data == "" {
		return ""
	}
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return data
	}
	return string(decoded)
}
