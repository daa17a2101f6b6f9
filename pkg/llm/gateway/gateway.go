package gateway

import (
	"ai-studybuddy-be/pkg/llm"
	"context"
	"fmt"
	"strings"
)

// DefaultModels is the fallback chain, most capable first.
var DefaultModels = []string{
	"llama-3.3-70b-versatile",
	"llama-3.1-8b-instant",
	"llama3-8b-8192",
}

// Gateway wraps a provider with an ordered model fallback chain.
// A request walks the chain only on retryable (rate limit) errors;
// anything else propagates immediately.
type Gateway struct {
	provider llm.LLMProvider
	models   []string
}

func New(provider llm.LLMProvider, models []string) *Gateway {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &Gateway{
		provider: provider,
		models:   models,
	}
}

// IsRetryable reports whether an upstream error is a rate limit signal.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate_limit_exceeded") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "429")
}

func (g *Gateway) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	var lastErr error
	for _, model := range g.models {
		opts := append([]llm.Option{}, options...)
		opts = append(opts, llm.WithModel(model))

		reply, err := g.provider.Chat(ctx, history, opts...)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		if IsRetryable(err) {
			continue
		}
		return "", err
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", fmt.Errorf("chat completion failed without a specific error")
}

func (g *Gateway) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	messages := []llm.Message{
		{Role: "user", Content: prompt},
	}
	return g.Chat(ctx, messages, options...)
}

var _ llm.LLMProvider = &Gateway{}
