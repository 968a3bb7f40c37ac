package dto

type ChatRequest struct {
	SessionId   string `json:"session_id" validate:"required"`
	UserMessage string `json:"user_message" validate:"required"`
}

// TurnResult is the tagged union every dialogue turn resolves to: either a
// clarifying question or the terminal purchase request.
type TurnResult struct {
	Type            string           `json:"type"` // "question" | "request"
	Message         string           `json:"message,omitempty"`
	PurchaseRequest *PurchaseRequest `json:"purchaseRequest,omitempty"`
	IsDone          bool             `json:"is_done"`
}

const (
	TurnResultQuestion = "question"
	TurnResultRequest  = "request"
)

type ChatResponse struct {
	SessionId     string      `json:"session_id"`
	ModelResponse *TurnResult `json:"model_response"`
}
