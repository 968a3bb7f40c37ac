package dialogue

import (
	"errors"
	"testing"
	"time"

	"ai-procurement-be/internal/dto"
)

func validRequest() *dto.PurchaseRequest {
	return &dto.PurchaseRequest{
		Title:       "BT Ekipman Alımı",
		Description: "Geliştirme ekibi için donanım",
		Priority:    dto.PriorityHigh,
		NeededBy:    "2031-01-15",
		Items: []dto.PurchaseRequestItem{
			{
				Type:          "good",
				Category:      "BT Ekipmanları",
				Subcategory:   "Dizüstü Bilgisayar",
				Description:   "16 inç laptop",
				Quantity:      5,
				UnitOfMeasure: "adet",
			},
		},
	}
}

func TestValidatePurchaseRequest(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(pr *dto.PurchaseRequest)
		wantErr error
	}{
		{
			name:    "valid request",
			mutate:  func(pr *dto.PurchaseRequest) {},
			wantErr: nil,
		},
		{
			name:    "nil items",
			mutate:  func(pr *dto.PurchaseRequest) { pr.Items = nil },
			wantErr: ErrNoItems,
		},
		{
			name:    "zero quantity",
			mutate:  func(pr *dto.PurchaseRequest) { pr.Items[0].Quantity = 0 },
			wantErr: ErrBadQuantity,
		},
		{
			name:    "negative quantity",
			mutate:  func(pr *dto.PurchaseRequest) { pr.Items[0].Quantity = -3 },
			wantErr: ErrBadQuantity,
		},
		{
			name: "non-positive user unit price",
			mutate: func(pr *dto.PurchaseRequest) {
				price := 0.0
				pr.Items[0].UserInputUnitPrice = &price
			},
			wantErr: ErrBadUnitPrice,
		},
		{
			name:    "unknown priority",
			mutate:  func(pr *dto.PurchaseRequest) { pr.Priority = "Urgent" },
			wantErr: ErrBadPriority,
		},
		{
			name:    "bad date format",
			mutate:  func(pr *dto.PurchaseRequest) { pr.NeededBy = "31-12-2030" },
			wantErr: ErrBadDateFormat,
		},
		{
			name:    "past date",
			mutate:  func(pr *dto.PurchaseRequest) { pr.NeededBy = "2020-01-01" },
			wantErr: ErrPastDate,
		},
		{
			name:    "today is acceptable",
			mutate:  func(pr *dto.PurchaseRequest) { pr.NeededBy = "2026-08-29" },
			wantErr: nil,
		},
		{
			name:    "empty neededBy is acceptable",
			mutate:  func(pr *dto.PurchaseRequest) { pr.NeededBy = "" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := validRequest()
			tt.mutate(pr)

			err := ValidatePurchaseRequest(pr, now)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePurchaseRequestTodayAcrossZones(t *testing.T) {
	zones := []struct {
		name string
		loc  *time.Location
	}{
		{"utc", time.UTC},
		{"west of utc", time.FixedZone("UTC-5", -5*60*60)},
		{"east of utc", time.FixedZone("UTC+3", 3*60*60)},
	}

	for _, tz := range zones {
		t.Run(tz.name, func(t *testing.T) {
			now := time.Date(2026, time.August, 29, 12, 0, 0, 0, tz.loc)

			pr := validRequest()
			pr.NeededBy = "2026-08-29"
			if err := ValidatePurchaseRequest(pr, now); err != nil {
				t.Errorf("today's date rejected: %v", err)
			}

			pr = validRequest()
			pr.NeededBy = "2026-08-28"
			if err := ValidatePurchaseRequest(pr, now); !errors.Is(err, ErrPastDate) {
				t.Errorf("yesterday's date: error = %v, want %v", err, ErrPastDate)
			}
		})
	}
}

func TestValidatePurchaseRequestNormalizes(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	pr := validRequest()
	pr.Priority = ""
	pr.Title = ""

	if err := ValidatePurchaseRequest(pr, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pr.Priority != dto.PriorityMedium {
		t.Errorf("Priority = %q, want default %q", pr.Priority, dto.PriorityMedium)
	}
	if pr.Title != "BT Ekipmanları Alımı" {
		t.Errorf("Title = %q, want category default", pr.Title)
	}
}
