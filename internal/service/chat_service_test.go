package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/repository/memory"
	"ai-procurement-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM replays a fixed queue of replies and records every call it saw.
type scriptedLLM struct {
	mu        sync.Mutex
	replies   []string
	err       error
	histories [][]llm.Message
	options   []llm.Options
}

func (s *scriptedLLM) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := llm.Options{}
	for _, opt := range options {
		opt(&opts)
	}
	s.histories = append(s.histories, history)
	s.options = append(s.options, opts)

	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", errors.New("scripted llm: no replies left")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type capturingPublisher struct {
	mu        sync.Mutex
	sessions  []string
	published []*dto.PurchaseRequest
	err       error
}

func (p *capturingPublisher) PublishPurchaseRequest(sessionID string, request *dto.PurchaseRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sessions = append(p.sessions, sessionID)
	p.published = append(p.published, request)
	return nil
}

const questionReply = `{"type": "question", "message": "Hangi marka ve model laptop istersiniz?", "is_done": false}`

const terminalReply = `{
	"type": "request",
	"is_done": true,
	"purchaseRequest": {
		"title": "Laptop Alımı",
		"description": "Geliştirme ekibi için dizüstü bilgisayar",
		"priority": "High",
		"neededBy": "2026-10-01",
		"items": [
			{
				"type": "good",
				"category": "BT Ekipmanları",
				"subcategory": "Dizüstü Bilgisayar",
				"description": "16GB RAM dizüstü bilgisayar",
				"quantity": 2,
				"unitOfMeasure": "adet"
			}
		]
	}
}`

func newTestChatService(oracle *scriptedLLM, publisher IPublisherService) (*chatService, *memory.ConversationRepository) {
	repo := memory.NewConversationRepository()
	cs := &chatService{
		conversations: repo,
		llmProvider:   oracle,
		publisher:     publisher,
		logger:        noopLogger{},
		now:           func() time.Time { return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC) },
	}
	return cs, repo
}

func TestInteractQuestionTurn(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{questionReply}}
	cs, repo := newTestChatService(oracle, &capturingPublisher{})

	result, err := cs.Interact(context.Background(), "s1", "İki adet laptop istiyorum")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, dto.TurnResultQuestion, result.Type)
	assert.False(t, result.IsDone)
	assert.Equal(t, "Hangi marka ve model laptop istersiniz?", result.Message)
	assert.Nil(t, result.PurchaseRequest)

	// system + user + assistant
	conv, err := repo.GetOrCreate(context.Background(), "s1", "unused")
	require.NoError(t, err)
	assert.Len(t, conv.Turns, 3)
	assert.Equal(t, "İki adet laptop istiyorum", conv.Turns[1].Content)
	assert.Equal(t, questionReply, conv.Turns[2].Content)

	// The oracle saw the full transcript including the new user turn.
	require.Len(t, oracle.histories, 1)
	assert.Len(t, oracle.histories[0], 2)
	assert.Equal(t, "system", oracle.histories[0][0].Role)
	assert.True(t, oracle.options[0].JSONResponse)
}

func TestInteractTerminalTurnClearsSession(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{terminalReply, questionReply}}
	publisher := &capturingPublisher{}
	cs, repo := newTestChatService(oracle, publisher)

	result, err := cs.Interact(context.Background(), "s1", "Evet, talebi oluştur")
	require.NoError(t, err)

	assert.Equal(t, dto.TurnResultRequest, result.Type)
	assert.True(t, result.IsDone)
	require.NotNil(t, result.PurchaseRequest)
	assert.Equal(t, "Laptop Alımı", result.PurchaseRequest.Title)
	assert.Equal(t, dto.PriorityHigh, result.PurchaseRequest.Priority)
	require.Len(t, result.PurchaseRequest.Items, 1)
	assert.Equal(t, 2, result.PurchaseRequest.Items[0].Quantity)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "s1", publisher.sessions[0])

	// The session is gone: the next interaction starts from scratch.
	second, err := cs.Interact(context.Background(), "s1", "Yeni bir talep")
	require.NoError(t, err)
	assert.Equal(t, dto.TurnResultQuestion, second.Type)

	conv, err := repo.GetOrCreate(context.Background(), "s1", "unused")
	require.NoError(t, err)
	assert.Len(t, conv.Turns, 3, "restarted session should only hold the new exchange")
	require.Len(t, oracle.histories, 2)
	assert.Len(t, oracle.histories[1], 2, "finalized history must not leak into the new session")
}

func TestInteractTerminalWithPastDateReQuestions(t *testing.T) {
	pastReply := `{
		"type": "request",
		"is_done": true,
		"purchaseRequest": {
			"title": "Laptop Alımı",
			"priority": "High",
			"neededBy": "2020-01-01",
			"items": [
				{"type": "good", "category": "BT", "subcategory": "Laptop", "description": "laptop", "quantity": 1, "unitOfMeasure": "adet"}
			]
		}
	}`
	oracle := &scriptedLLM{replies: []string{pastReply}}
	publisher := &capturingPublisher{}
	cs, repo := newTestChatService(oracle, publisher)

	result, err := cs.Interact(context.Background(), "s1", "Tarih 2020-01-01 olsun")
	require.NoError(t, err)

	assert.Equal(t, dto.TurnResultQuestion, result.Type)
	assert.False(t, result.IsDone)
	assert.Contains(t, result.Message, "geçmişte")

	assert.Empty(t, publisher.published, "invalid terminal results must not be published")

	// The session survives so the user can correct the date.
	conv, err := repo.GetOrCreate(context.Background(), "s1", "unused")
	require.NoError(t, err)
	assert.Len(t, conv.Turns, 3)
}

func TestInteractOracleFailureRollsBack(t *testing.T) {
	oracle := &scriptedLLM{err: errors.New("upstream timeout")}
	cs, repo := newTestChatService(oracle, &capturingPublisher{})

	_, err := cs.Interact(context.Background(), "s1", "merhaba")
	require.Error(t, err)

	// Only the seeded system turn remains: the user turn was rolled back.
	conv, getErr := repo.GetOrCreate(context.Background(), "s1", "unused")
	require.NoError(t, getErr)
	assert.Len(t, conv.Turns, 1)

	// A retry after recovery sees a clean transcript.
	oracle.mu.Lock()
	oracle.err = nil
	oracle.replies = []string{questionReply}
	oracle.mu.Unlock()

	result, err := cs.Interact(context.Background(), "s1", "merhaba")
	require.NoError(t, err)
	assert.Equal(t, dto.TurnResultQuestion, result.Type)
	assert.Len(t, oracle.histories[1], 2)
}

func TestInteractUnparsableReplyDegradesToQuestion(t *testing.T) {
	prose := "Elbette, size yardımcı olabilirim. Ne satın almak istiyorsunuz?"
	oracle := &scriptedLLM{replies: []string{prose}}
	cs, repo := newTestChatService(oracle, &capturingPublisher{})

	result, err := cs.Interact(context.Background(), "s1", "merhaba")
	require.NoError(t, err)

	assert.Equal(t, dto.TurnResultQuestion, result.Type)
	assert.Equal(t, prose, result.Message)
	assert.False(t, result.IsDone)

	// The raw reply still lands in the transcript for follow-up context.
	conv, err := repo.GetOrCreate(context.Background(), "s1", "unused")
	require.NoError(t, err)
	require.Len(t, conv.Turns, 3)
	assert.Equal(t, prose, conv.Turns[2].Content)
}

func TestInteractPublishFailureDoesNotInvalidateResult(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{terminalReply}}
	publisher := &capturingPublisher{err: errors.New("bus down")}
	cs, _ := newTestChatService(oracle, publisher)

	result, err := cs.Interact(context.Background(), "s1", "Evet")
	require.NoError(t, err)
	assert.True(t, result.IsDone)
	require.NotNil(t, result.PurchaseRequest)
}

func TestInteractSerializesPerSession(t *testing.T) {
	const turns = 20
	replies := make([]string, turns)
	for i := range replies {
		replies[i] = questionReply
	}
	oracle := &scriptedLLM{replies: replies}
	cs, repo := newTestChatService(oracle, &capturingPublisher{})

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := cs.Interact(context.Background(), "s1", fmt.Sprintf("mesaj %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Interleaved calls must never lose turns: system + 20 pairs.
	conv, err := repo.GetOrCreate(context.Background(), "s1", "unused")
	require.NoError(t, err)
	assert.Len(t, conv.Turns, 1+2*turns)

	// Each oracle call saw a strictly longer transcript than the one before.
	require.Len(t, oracle.histories, turns)
	for i, history := range oracle.histories {
		assert.Len(t, history, 2+2*i)
	}
}
