package validation

import "estatien/internal/models"

// Booking validates the stay details attached to a payment request.
func (v *Validator) Booking(b models.BookingData) {
	v.Check(!b.CheckIn.IsZero(), "checkIn", "check-in date is required")
	v.Check(!b.CheckOut.IsZero(), "checkOut", "check-out date is required")
	if !b.CheckIn.IsZero() && !b.CheckOut.IsZero() {
		v.Check(b.CheckIn.Before(b.CheckOut), "checkOut", "check-out must be after check-in")
	}
	v.Check(b.Adults >= 1, "adults", "at least one adult is required")
	v.Check(b.Children >= 0, "children", "children cannot be negative")
	v.Check(b.TotalAmount > 0, "totalAmount", "amount must be greater than 0")
}
