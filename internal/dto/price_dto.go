package dto

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PriceEstimateResponse is the single-shot market estimate for one item.
type PriceEstimateResponse struct {
	UnitPrice     Money    `json:"unitPrice"`
	TotalCost     Money    `json:"totalCost"`
	Justification string   `json:"justification"`
	Notes         []string `json:"notes"`
}
