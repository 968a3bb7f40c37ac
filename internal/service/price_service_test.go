package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"ai-procurement-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures warnings so tests can assert on them.
type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Debug(string, string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, string, map[string]interface{})  {}
func (l *recordingLogger) Error(string, string, map[string]interface{}) {}
func (l *recordingLogger) Sync() error                                  { return nil }

func (l *recordingLogger) Warn(_, message string, _ map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, message)
}

func laptopItem() *dto.PurchaseRequestItem {
	return &dto.PurchaseRequestItem{
		Type:          "good",
		Category:      "BT Ekipmanları",
		Subcategory:   "Dizüstü Bilgisayar",
		Description:   "16GB RAM, 512GB SSD dizüstü bilgisayar",
		Quantity:      5,
		UnitOfMeasure: "adet",
	}
}

const estimateReply = `{
	"unitPrice": {"amount": 45000, "currency": "TRY"},
	"totalCost": {"amount": 225000, "currency": "TRY"},
	"justification": "Güncel piyasa fiyatlarına göre orta segment iş bilgisayarı ortalaması.",
	"notes": ["Fiyatlar KDV dahildir", "Toplu alımda indirim mümkündür"]
}`

func TestEstimateReturnsParsedFigure(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{estimateReply}}
	ps := NewPriceService(oracle, noopLogger{}, "gpt-4o-search-preview")

	estimate, err := ps.Estimate(context.Background(), laptopItem())
	require.NoError(t, err)

	assert.Equal(t, 45000.0, estimate.UnitPrice.Amount)
	assert.Equal(t, "TRY", estimate.UnitPrice.Currency)
	assert.Equal(t, 225000.0, estimate.TotalCost.Amount)
	assert.NotEmpty(t, estimate.Justification)
	assert.NotEmpty(t, estimate.Notes)

	// The item travels to the model as JSON alongside the pricing instructions.
	require.Len(t, oracle.histories, 1)
	require.Len(t, oracle.histories[0], 2)
	assert.Equal(t, "system", oracle.histories[0][0].Role)

	var sent dto.PurchaseRequestItem
	require.NoError(t, json.Unmarshal([]byte(oracle.histories[0][1].Content), &sent))
	assert.Equal(t, 5, sent.Quantity)

	assert.Equal(t, "gpt-4o-search-preview", oracle.options[0].Model)
}

func TestEstimateAcceptsFencedReply(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{"```json\n" + estimateReply + "\n```"}}
	ps := NewPriceService(oracle, noopLogger{}, "")

	estimate, err := ps.Estimate(context.Background(), laptopItem())
	require.NoError(t, err)
	assert.Equal(t, 45000.0, estimate.UnitPrice.Amount)
}

func TestEstimateWarnsOnTotalCostDrift(t *testing.T) {
	drifted := `{
		"unitPrice": {"amount": 45000, "currency": "TRY"},
		"totalCost": {"amount": 200000, "currency": "TRY"},
		"justification": "Tahmini toplam maliyet.",
		"notes": []
	}`
	oracle := &scriptedLLM{replies: []string{drifted}}
	logs := &recordingLogger{}
	ps := NewPriceService(oracle, logs, "")

	estimate, err := ps.Estimate(context.Background(), laptopItem())
	require.NoError(t, err)

	// The oracle's figure is flagged, never rewritten.
	assert.Equal(t, 200000.0, estimate.TotalCost.Amount)
	require.Len(t, logs.warnings, 1)
	assert.Contains(t, logs.warnings[0], "Total cost does not match")
}

func TestEstimateConsistentTotalCostDoesNotWarn(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{estimateReply}}
	logs := &recordingLogger{}
	ps := NewPriceService(oracle, logs, "")

	_, err := ps.Estimate(context.Background(), laptopItem())
	require.NoError(t, err)
	assert.Empty(t, logs.warnings)
}

func TestEstimateFailsOnProseReply(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{"Bu ürün için kesin bir fiyat veremiyorum."}}
	ps := NewPriceService(oracle, noopLogger{}, "")

	estimate, err := ps.Estimate(context.Background(), laptopItem())
	require.Error(t, err)
	assert.Nil(t, estimate)
}

func TestEstimateFailsOnMalformedJSON(t *testing.T) {
	oracle := &scriptedLLM{replies: []string{`{"unitPrice": {"amount": "not a number"}}`}}
	ps := NewPriceService(oracle, noopLogger{}, "")

	_, err := ps.Estimate(context.Background(), laptopItem())
	require.Error(t, err)
}

func TestEstimatePropagatesOracleFailure(t *testing.T) {
	oracle := &scriptedLLM{err: errors.New("upstream timeout")}
	ps := NewPriceService(oracle, noopLogger{}, "")

	_, err := ps.Estimate(context.Background(), laptopItem())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle call")
}
