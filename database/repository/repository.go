// Package repository owns the key layout of the travel store and maps entity
// records to and from their JSON documents.
package repository

// Key prefixes for the store. The user_booking prefix is a secondary index:
// its entries exist only so a user's bookings can be found by prefix scan.
const (
	profileKeyPrefix      = "user:"
	destinationKeyPrefix  = "destination:"
	bookingKeyPrefix      = "booking:"
	userBookingKeyPrefix  = "user_booking:"
	adminSetupCompleteKey = "admin_setup_complete"
	destinationsSeededKey = "destinations_initialized"
)
