package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Client клиент Gemini для чат-ассистента
type Client struct {
	client *genai.Client
	cfg    Config
	logger Logger
}

// NewClient создает клиент Gemini
func NewClient(ctx context.Context, cfg Config, logger Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrCompletion, err)
	}

	return &Client{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Complete отправляет сообщение с историей и возвращает ответ модели
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	model := c.client.GenerativeModel(c.cfg.Model)
	if strings.TrimSpace(req.System) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}

	cs := model.StartChat()
	cs.History = buildHistory(req.History)

	c.logger.Info("Complete: model=%s, history=%d", c.cfg.Model, len(cs.History))

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		c.logger.Warn("Complete: request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Close освобождает ресурсы клиента
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// buildHistory конвертирует историю в формат genai
// Gemini требует, чтобы история начиналась с сообщения пользователя
func buildHistory(messages []domain.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			continue
		}
		if len(history) == 0 && msg.Role != domain.ChatRoleUser {
			continue
		}

		role := "user"
		if msg.Role == domain.ChatRoleModel {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(text)},
		})
	}
	return history
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
