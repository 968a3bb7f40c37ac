package dialogue

import (
	"errors"
	"fmt"
	"time"

	"ai-procurement-be/internal/dto"
)

// Validation errors for a terminal purchase request. The chat service maps
// each one to the policy's own corrective wording and re-questions instead of
// finalizing.
var (
	ErrNoItems       = errors.New("purchase request has no items")
	ErrBadQuantity   = errors.New("item quantity must be a positive number")
	ErrBadUnitPrice  = errors.New("user supplied unit price must be positive")
	ErrBadPriority   = errors.New("priority must be one of Low, Medium, High")
	ErrBadDateFormat = errors.New("neededBy must use the YYYY-MM-DD format")
	ErrPastDate      = errors.New("neededBy must not be in the past")
)

const dateLayout = "2006-01-02"

// ValidatePurchaseRequest enforces the invariants no terminal result may
// violate, regardless of what the oracle emitted. It normalizes an empty
// priority to Medium and an empty title to the policy's "[Category] Alımı"
// default before checking.
func ValidatePurchaseRequest(pr *dto.PurchaseRequest, now time.Time) error {
	if pr == nil || len(pr.Items) == 0 {
		return ErrNoItems
	}

	for _, item := range pr.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadQuantity, item.Quantity)
		}
		if item.UserInputUnitPrice != nil && *item.UserInputUnitPrice <= 0 {
			return ErrBadUnitPrice
		}
	}

	if pr.Priority == "" {
		pr.Priority = dto.PriorityMedium
	}
	switch pr.Priority {
	case dto.PriorityLow, dto.PriorityMedium, dto.PriorityHigh:
	default:
		return fmt.Errorf("%w: got %q", ErrBadPriority, pr.Priority)
	}

	if pr.Title == "" {
		pr.Title = fmt.Sprintf("%s Alımı", pr.Items[0].Category)
	}

	if pr.NeededBy != "" {
		// Parse in now's location so the midnight comparison below stays
		// within one zone; comparing instants across zones rejects today's
		// date anywhere west of UTC.
		needed, err := time.ParseInLocation(dateLayout, pr.NeededBy, now.Location())
		if err != nil {
			return fmt.Errorf("%w: got %q", ErrBadDateFormat, pr.NeededBy)
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if needed.Before(today) {
			return fmt.Errorf("%w: got %q", ErrPastDate, pr.NeededBy)
		}
	}

	return nil
}
