// models/booking.go
package models

// BookingStatus is the single reachable state after creation; there is no
// cancellation or refund transition in this flow.
const BookingStatusConfirmed = "confirmed"

// BookingInput carries the trip details submitted by the client. Destination
// fields are denormalized at submission time.
type BookingInput struct {
	DestinationID       string  `json:"destinationId"`
	DestinationName     string  `json:"destinationName"`
	DestinationLocation string  `json:"destinationLocation"`
	DestinationImage    string  `json:"destinationImage"`
	Duration            string  `json:"duration"`
	Travelers           int     `json:"travelers"`
	StartDate           string  `json:"startDate"`
	FullName            string  `json:"fullName"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	TotalPrice          float64 `json:"totalPrice"`
}

// Booking is the persisted record: the submitted input plus the owning
// identity, status and creation timestamp. Immutable after creation.
type Booking struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	BookingInput
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}
