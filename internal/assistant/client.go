package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/2beens/traintrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Client talks to an OpenAI-compatible API (chat completions plus
// audio transcriptions). The base URL decides which provider is used.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.client.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reqBody, err := json.Marshal(chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal chat response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("chat completion api error: %s", chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion api status: %s", resp.Status)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("chat completion api: no choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (c *Client) Transcribe(ctx context.Context, audio io.Reader, filename string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.client.transcribe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	filePart, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(filePart, audio); err != nil {
		return "", fmt.Errorf("copy audio payload: %w", err)
	}
	if err := mw.WriteField("model", "whisper-1"); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/audio/transcriptions",
		&body,
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcription response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("transcription api returned %s: %s", resp.Status, string(respBytes))
		return "", fmt.Errorf("transcription api status: %s", resp.Status)
	}

	var trResp transcriptionResponse
	if err := json.Unmarshal(respBytes, &trResp); err != nil {
		return "", fmt.Errorf("unmarshal transcription response: %w", err)
	}

	return trResp.Text, nil
}
