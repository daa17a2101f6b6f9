package factory

import (
	"ai-studybuddy-be/pkg/llm"
	"ai-studybuddy-be/pkg/llm/gateway"
	"ai-studybuddy-be/pkg/llm/groq"
	"fmt"
)

// NewLLMProvider builds the configured provider wrapped in the model
// fallback gateway. An empty model list uses the gateway defaults.
func NewLLMProvider(providerType, apiKey, baseURL string, models []string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		base := ""
		if len(models) > 0 {
			base = models[0]
		}
		provider := groq.NewGroqProvider(apiKey, baseURL, base)
		return gateway.New(provider, models), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
