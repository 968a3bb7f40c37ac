package dto

// ItemProperty is a single name/value property collected for an item
// (e.g. {"name": "RAM", "value": "16GB"}).
type ItemProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PurchaseRequestItem is one line item (good or service) of a purchase request.
type PurchaseRequestItem struct {
	Type               string         `json:"type" validate:"required,oneof=good service"`
	Category           string         `json:"category" validate:"required"`
	Subcategory        string         `json:"subcategory" validate:"required"`
	Description        string         `json:"description" validate:"required"`
	Quantity           int            `json:"quantity" validate:"required,gt=0"`
	UnitOfMeasure      string         `json:"unitOfMeasure" validate:"required"`
	Notes              string         `json:"notes,omitempty"`
	Properties         []ItemProperty `json:"properties,omitempty"`
	UserInputUnitPrice *float64       `json:"userInputUnitPrice,omitempty" validate:"omitempty,gt=0"`
}

// PurchaseRequest is the finalized multi-item request the dialogue produces.
type PurchaseRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Priority    string                `json:"priority"` // Low | Medium | High
	NeededBy    string                `json:"neededBy,omitempty"`
	Items       []PurchaseRequestItem `json:"items"`
}

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)
