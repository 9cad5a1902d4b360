package appointment

import (
	"time"

	"github.com/kenzychew/pet-app-sub000/internal/models"
)

// AppendPrice records a pricing change. Cost is mutable history: the entry
// list is append-only and TotalCost always mirrors the newest entry.
func AppendPrice(ap *models.Appointment, amount float64, reason string, setBy uint, now time.Time) {
	ap.PriceHistory = append(ap.PriceHistory, models.PriceEntry{
		AppointmentID: ap.ID,
		Amount:        amount,
		Reason:        reason,
		SetBy:         setBy,
		CreatedAt:     now,
	})
	ap.TotalCost = amount
}

// SeedBasePrice sets the opening quote from the fixed service catalog.
func SeedBasePrice(ap *models.Appointment, setBy uint, now time.Time) {
	AppendPrice(ap, BaseRate(ap.ServiceType), "base_rate", setBy, now)
	ap.PricingStatus = PricingPending
}

// FinalizePrice is used at completion; a nil amount keeps the latest quote.
func FinalizePrice(ap *models.Appointment, amount *float64, setBy uint, now time.Time) {
	if amount != nil && *amount != ap.TotalCost {
		AppendPrice(ap, *amount, "final_adjustment", setBy, now)
	}
	ap.PricingStatus = PricingFinal
}
