package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 60 * time.Second

// ChatRequest is the payload sent to the assistant chat endpoint. The active
// code buffer rides along as context for the model.
type ChatRequest struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	Code      string `json:"code,omitempty"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the assistant chat endpoint's reply. Code carries an
// optional generated snippet the user may insert into the editor.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Code     string `json:"code,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Client talks to the remote assistant service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the assistant service at baseURL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Chat sends one chat exchange and returns the parsed reply. Transport
// failures, non-2xx statuses and malformed bodies all surface as a
// NetworkError.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	endpoint := c.baseURL + "/api/chat"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	LogDebug("HTTP POST %s (session: %s, language: %s)", endpoint, req.SessionID, req.Language)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &NetworkError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(data))),
		}
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, &NetworkError{Endpoint: endpoint, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	return &chatResp, nil
}

// Review asks the assistant for a structured review of code. The review
// travels over the plain chat contract: the client builds the structured
// prompt, then parses the free-text reply into a ReviewResult.
func (c *Client) Review(ctx context.Context, session *Session, language, code string) (*ReviewResult, error) {
	req := ChatRequest{
		Message:   BuildReviewPrompt(language, code),
		Language:  language,
		Code:      code,
		SessionID: session.ID,
	}

	resp, err := c.Chat(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &NetworkError{
			Endpoint: c.baseURL + "/api/chat",
			Err:      fmt.Errorf("assistant rejected review: %s", resp.Error),
		}
	}

	return ParseReviewResponse(resp.Response, language), nil
}
