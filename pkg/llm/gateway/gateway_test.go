package gateway

import (
	"ai-studybuddy-be/pkg/llm"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	replies map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{}
	for _, o := range options {
		o(opts)
	}
	f.calls = append(f.calls, opts.Model)
	if err, ok := f.errs[opts.Model]; ok {
		return "", err
	}
	return f.replies[opts.Model], nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestGatewayFallsBackOnRateLimit(t *testing.T) {
	fake := &fakeProvider{
		replies: map[string]string{"model-b": "ok from b"},
		errs:    map[string]error{"model-a": errors.New("groq api error (status 429): rate_limit_exceeded")},
	}
	g := New(fake, []string{"model-a", "model-b"})

	reply, err := g.Generate(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "ok from b", reply)
	assert.Equal(t, []string{"model-a", "model-b"}, fake.calls)
}

func TestGatewayFailsFastOnNonRetryable(t *testing.T) {
	fake := &fakeProvider{
		replies: map[string]string{"model-b": "never reached"},
		errs:    map[string]error{"model-a": errors.New("groq api error (status 401): invalid api key")},
	}
	g := New(fake, []string{"model-a", "model-b"})

	_, err := g.Generate(context.Background(), "hello")
	assert.Error(t, err)
	assert.Equal(t, []string{"model-a"}, fake.calls)
}

func TestGatewayReturnsLastErrorWhenExhausted(t *testing.T) {
	rateErr := errors.New("rate limit reached for model")
	fake := &fakeProvider{
		errs: map[string]error{"model-a": rateErr, "model-b": rateErr},
	}
	g := New(fake, []string{"model-a", "model-b"})

	_, err := g.Generate(context.Background(), "hello")
	assert.ErrorIs(t, err, rateErr)
	assert.Len(t, fake.calls, 2)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("rate_limit_exceeded")))
	assert.True(t, IsRetryable(errors.New("Rate Limit reached")))
	assert.True(t, IsRetryable(errors.New("http status 429")))
	assert.False(t, IsRetryable(errors.New("context deadline exceeded")))
	assert.False(t, IsRetryable(nil))
}
