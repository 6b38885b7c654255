package factory

import (
	"fmt"

	"dawangi-chatbot-be/pkg/llm"
	"dawangi-chatbot-be/pkg/llm/anthropic"
	"dawangi-chatbot-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, apiKey, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "anthropic":
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return anthropic.NewAnthropicProvider(apiKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
