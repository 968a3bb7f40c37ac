package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"ai-procurement-be/internal/constant"
	"ai-procurement-be/internal/dto"
	"ai-procurement-be/internal/pkg/logger"
	"ai-procurement-be/pkg/dialogue"
	"ai-procurement-be/pkg/llm"
)

// IPriceService estimates market pricing for a single item. Stateless: no
// session, no memory across calls.
type IPriceService interface {
	Estimate(ctx context.Context, item *dto.PurchaseRequestItem) (*dto.PriceEstimateResponse, error)
}

type priceService struct {
	llmProvider  llm.LLMProvider
	logger       logger.ILogger
	pricingModel string
}

func NewPriceService(llmProvider llm.LLMProvider, sysLogger logger.ILogger, pricingModel string) IPriceService {
	return &priceService{
		llmProvider:  llmProvider,
		logger:       sysLogger,
		pricingModel: pricingModel,
	}
}

// Estimate serializes the item, pairs it with the pricing instruction set and
// asks the market-grounded model for a figure. Unlike the dialogue path there
// is no parse fallback: a silently wrong price is worse than an explicit
// failure.
func (ps *priceService) Estimate(ctx context.Context, item *dto.PurchaseRequestItem) (*dto.PriceEstimateResponse, error) {
	itemJSON, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal item: %w", err)
	}

	messages := []llm.Message{
		{Role: "system", Content: constant.SystemPromptPricing},
		{Role: "user", Content: string(itemJSON)},
	}

	opts := []llm.Option{}
	if ps.pricingModel != "" {
		opts = append(opts, llm.WithModel(ps.pricingModel))
	}

	raw, err := ps.llmProvider.Chat(ctx, messages, opts...)
	if err != nil {
		ps.logger.Error("price", "Oracle call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("oracle call: %w", err)
	}

	payload := dialogue.ExtractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("price estimate response contained no JSON object")
	}

	var estimate dto.PriceEstimateResponse
	if err := json.Unmarshal([]byte(payload), &estimate); err != nil {
		return nil, fmt.Errorf("parse price estimate: %w", err)
	}

	// totalCost = unitPrice x quantity is expected of the model, not enforced.
	// Flag drift loudly instead of rewriting the figure.
	if item.Quantity > 0 {
		expected := estimate.UnitPrice.Amount * float64(item.Quantity)
		if drift := math.Abs(estimate.TotalCost.Amount - expected); drift > 1e-6*math.Max(1, math.Abs(expected)) {
			ps.logger.Warn("price", "Total cost does not match unit price times quantity", map[string]interface{}{
				"unit_price": estimate.UnitPrice.Amount,
				"quantity":   item.Quantity,
				"total_cost": estimate.TotalCost.Amount,
				"expected":   expected,
			})
		}
	}

	return &estimate, nil
}
