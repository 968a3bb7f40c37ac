package factory

import (
	"ai-procurement-be/pkg/llm"
	"ai-procurement-be/pkg/llm/ollama"
	"ai-procurement-be/pkg/llm/openai"
	"fmt"
)

func NewLLMProvider(providerType, modelName, apiKey, openAIBaseURL, ollamaBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(apiKey, openAIBaseURL, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
