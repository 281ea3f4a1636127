package utils

import (
	"fmt"
	"time"

	"github.com/Arjun-316/FurniMart/models"
)

// PickupDateLayout is the calendar-date wire format for return pickups.
const PickupDateLayout = "2006-01-02"

// ValidateReturnReason checks the reason against the closed enum.
func ValidateReturnReason(reason string) *FieldValidationError {
	if reason == "" {
		return &FieldValidationError{Field: "reason", Message: "Reason is required"}
	}
	if !models.IsValidReturnReason(reason) {
		return &FieldValidationError{Field: "reason", Message: fmt.Sprintf("Invalid reason %q", reason)}
	}
	return nil
}

// ValidatePickupDate parses the pickup date and checks the return window:
// today <= date <= today+30 days, both bounds inclusive, at calendar-date
// granularity in the given location.
func ValidatePickupDate(raw string, now time.Time) (time.Time, *FieldValidationError) {
	if raw == "" {
		return time.Time{}, &FieldValidationError{Field: "pickup_date", Message: "Pickup date is required"}
	}

	pickup, err := time.ParseInLocation(PickupDateLayout, raw, now.Location())
	if err != nil {
		return time.Time{}, &FieldValidationError{Field: "pickup_date", Message: "Pickup date must be in YYYY-MM-DD format"}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	latest := today.AddDate(0, 0, models.ReturnWindowDays)

	if pickup.Before(today) {
		return time.Time{}, &FieldValidationError{Field: "pickup_date", Message: "Pickup date cannot be in the past"}
	}
	if pickup.After(latest) {
		return time.Time{}, &FieldValidationError{
			Field:   "pickup_date",
			Message: fmt.Sprintf("Pickup date must be within %d days", models.ReturnWindowDays),
		}
	}

	return pickup, nil
}
