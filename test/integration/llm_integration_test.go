package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-procurement-be/internal/constant"
	"ai-procurement-be/pkg/dialogue"
	"ai-procurement-be/pkg/llm"
	"ai-procurement-be/pkg/llm/factory"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDialogueTurnAgainstLiveModel sends one real user utterance through the
// procurement prompt and checks that the reply resolves into a turn object.
func TestDialogueTurnAgainstLiveModel(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	provider, err := factory.NewLLMProvider("openai", model, apiKey, os.Getenv("OPENAI_BASE_URL"), "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	raw, err := provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.SystemPromptProcurement},
		{Role: "user", Content: "Ofis için 3 adet monitör almak istiyorum"},
	}, llm.WithTemperature(0.3), llm.WithJSONResponse())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	result, parsed := dialogue.ParseTurnResult(raw)
	t.Logf("Model reply: %s", raw)

	assert.True(t, parsed, "live model should honor the JSON turn contract")
	assert.NotNil(t, result)
	if parsed && result.IsDone {
		assert.NotNil(t, result.PurchaseRequest)
	}
}
