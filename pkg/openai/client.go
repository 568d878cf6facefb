// Package openai calls the chat-completions API to draft listing descriptions.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"kikao-backend/pkg/utils"
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type Client struct {
	cfg  utils.OpenAIConfig
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg utils.OpenAIConfig, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
		log:  log.With(zap.String("client", "openai")),
	}
}

// Complete sends one user prompt and returns the model's reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model:    c.cfg.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		c.log.Error("Completion request failed",
			zap.Int("status", res.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("completion returned status %d", res.StatusCode)
	}

	var resp chatResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
