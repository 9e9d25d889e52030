package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sandevgo/reachout/internal/config"
	"github.com/sandevgo/reachout/internal/core"
	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Groq uses the go-openai client against Groq's OpenAI compatible API.
type Groq struct {
	client *openai.Client
	model  string
}

func NewGroq(apiKey, model string, timeout time.Duration) *Groq {
	return newGroq(groqBaseURL, apiKey, model, timeout)
}

func newGroq(baseURL, apiKey, model string, timeout time.Duration) *Groq {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Groq{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *Groq) Name() string {
	return config.ProviderGroq
}

func (g *Groq) Chat(ctx context.Context, history []core.Message, opts core.ChatOptions) (core.Message, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return core.Message{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return core.Message{}, errors.New("empty choices")
	}

	return core.Message{
		Role:    core.RoleAssistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}
